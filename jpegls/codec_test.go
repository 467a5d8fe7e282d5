package jpegls

import (
	"testing"

	"github.com/cocosip/pixelcodec/codec"
	"github.com/cocosip/pixelcodec/config"
	"github.com/cocosip/pixelcodec/imagedata"
	"github.com/cocosip/pixelcodec/modality"
)

func scenario2Image() *imagedata.ImageData {
	return &imagedata.ImageData{
		Width: 4, Height: 4, BitsPerSample: 8, SamplesPerPixel: 1,
		PhotometricInterpretation: imagedata.Monochrome2,
		PixelBytes: []byte{
			0x00, 0x10, 0x20, 0x30,
			0x40, 0x50, 0x60, 0x70,
			0x80, 0x90, 0xA0, 0xB0,
			0xC0, 0xD0, 0xE0, 0xF0,
		},
	}
}

func TestLosslessRoundTrip(t *testing.T) {
	img := scenario2Image()
	c := New()
	cfg := config.New(config.JPEGLS, config.Lossless, modality.Diagnostic)

	encoded, err := c.Encode(codec.EncodeParams{Image: img, Config: cfg})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(encoded) < 4 || encoded[0] != 0xFF || encoded[1] != 0xD8 || encoded[2] != 0xFF || encoded[3] != 0xF7 {
		t.Fatalf("expected header to start with FF D8 FF F7, got %X", encoded[:4])
	}
	if encoded[len(encoded)-2] != 0xFF || encoded[len(encoded)-1] != 0xD9 {
		t.Fatalf("expected trailer FF D9, got %X", encoded[len(encoded)-2:])
	}

	result, err := c.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !result.Lossless {
		t.Errorf("expected Lossless true")
	}
	if string(result.Image.PixelBytes) != string(img.PixelBytes) {
		t.Errorf("lossless round trip mismatch: got %v, want %v", result.Image.PixelBytes, img.PixelBytes)
	}
}

func TestNearLosslessRoundTripBoundedError(t *testing.T) {
	img := scenario2Image()
	c := New()
	cfg := config.New(config.JPEGLS, config.NearLossless, modality.Diagnostic).WithNearLossless(2)

	encoded, err := c.Encode(codec.EncodeParams{Image: img, Config: cfg})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	result, err := c.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if result.Lossless {
		t.Errorf("expected Lossless false for near-lossless decode")
	}
	for i, got := range result.Image.PixelBytes {
		want := int(img.PixelBytes[i])
		diff := int(got) - want
		if diff < -2 || diff > 2 {
			t.Errorf("sample %d: got %d, want within 2 of %d", i, got, want)
		}
	}
}

func TestCanEncodeRejectsExcessiveBitDepth(t *testing.T) {
	c := New()
	img := &imagedata.ImageData{BitsPerSample: 24}
	if err := c.CanEncode(img); err == nil {
		t.Errorf("expected error for 24 bits per sample")
	}
}

func TestEncodeRejectsLossyMode(t *testing.T) {
	img := scenario2Image()
	c := New()
	cfg := config.New(config.JPEGLS, config.Lossy, modality.Diagnostic)
	if _, err := c.Encode(codec.EncodeParams{Image: img, Config: cfg}); err == nil {
		t.Errorf("expected error for lossy mode")
	}
}
