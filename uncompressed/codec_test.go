package uncompressed

import (
	"bytes"
	"testing"

	"github.com/cocosip/pixelcodec/codec"
	"github.com/cocosip/pixelcodec/config"
	"github.com/cocosip/pixelcodec/imagedata"
	"github.com/cocosip/pixelcodec/modality"
)

func TestRoundTripBitExact(t *testing.T) {
	img := &imagedata.ImageData{
		Width: 4, Height: 4, BitsPerSample: 8, SamplesPerPixel: 1,
		PhotometricInterpretation: imagedata.Monochrome2,
		PixelBytes: []byte{
			0x00, 0x10, 0x20, 0x30,
			0x40, 0x50, 0x60, 0x70,
			0x80, 0x90, 0xA0, 0xB0,
			0xC0, 0xD0, 0xE0, 0xF0,
		},
	}
	c := New()
	cfg := config.New(config.Uncompressed, config.Lossless, modality.Diagnostic)

	encoded, err := c.Encode(codec.EncodeParams{Image: img, Config: cfg})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(encoded, img.PixelBytes) {
		t.Errorf("expected identity transform, got %v", encoded)
	}

	result, err := c.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !result.Lossless {
		t.Errorf("expected Lossless true")
	}
	if !bytes.Equal(result.Image.PixelBytes, img.PixelBytes) {
		t.Errorf("round trip mismatch: got %v, want %v", result.Image.PixelBytes, img.PixelBytes)
	}
}

func TestEncodeRejectsNonLosslessMode(t *testing.T) {
	img := &imagedata.ImageData{
		Width: 2, Height: 2, BitsPerSample: 8, SamplesPerPixel: 1,
		PixelBytes: make([]byte, 4),
	}
	c := New()
	cfg := config.New(config.Uncompressed, config.Lossy, modality.Diagnostic)
	if _, err := c.Encode(codec.EncodeParams{Image: img, Config: cfg}); err == nil {
		t.Errorf("expected error for lossy mode")
	}
}

func TestUIDRejectsNonLosslessMode(t *testing.T) {
	c := New()
	cfg := config.New(config.Uncompressed, config.NearLossless, modality.Diagnostic)
	if _, err := c.UID(cfg); err == nil {
		t.Errorf("expected error for near-lossless mode")
	}
}

func TestCanEncodeRejectsExcessiveBitDepth(t *testing.T) {
	c := New()
	img := &imagedata.ImageData{BitsPerSample: 40}
	if err := c.CanEncode(img); err == nil {
		t.Errorf("expected error for 40 bits per sample")
	}
}
