package imagedata

import "testing"

func TestValidate(t *testing.T) {
	img := &ImageData{
		Width: 4, Height: 4, BitsPerSample: 8, SamplesPerPixel: 1,
		PhotometricInterpretation: Monochrome2,
		PixelBytes:                make([]byte, 16),
	}
	if err := img.Validate(); err != nil {
		t.Fatalf("expected valid image, got %v", err)
	}

	img.PixelBytes = make([]byte, 15)
	if err := img.Validate(); err == nil {
		t.Errorf("expected error for mismatched pixel buffer length")
	}
}

func TestSamples16RoundTrip(t *testing.T) {
	img := &ImageData{Width: 2, Height: 1, BitsPerSample: 16, SamplesPerPixel: 1}
	img.SetSamples16([]uint16{0x1234, 0xABCD})
	samples := img.Samples16()
	if samples[0] != 0x1234 || samples[1] != 0xABCD {
		t.Errorf("round trip mismatch: %v", samples)
	}
	if img.PixelBytes[0] != 0x34 || img.PixelBytes[1] != 0x12 {
		t.Errorf("expected little-endian byte order, got %v", img.PixelBytes[:2])
	}
}

func TestExpectedLen(t *testing.T) {
	img := &ImageData{Width: 4, Height: 4, BitsPerSample: 16, SamplesPerPixel: 3}
	if got := img.ExpectedLen(); got != 4*4*3*2 {
		t.Errorf("ExpectedLen() = %d, want %d", got, 4*4*3*2)
	}
}
