// Package imagedata defines ImageData, the in-memory uncompressed frame
// record consumed and produced by codecs (spec §3).
package imagedata

import (
	"github.com/cocosip/pixelcodec/errors"
)

// PhotometricInterpretation names the DICOM sample-color convention.
type PhotometricInterpretation string

const (
	Monochrome1 PhotometricInterpretation = "MONOCHROME1"
	Monochrome2 PhotometricInterpretation = "MONOCHROME2"
	RGB         PhotometricInterpretation = "RGB"
)

// ImageData is the in-memory uncompressed frame plus the descriptive
// attributes a codec needs to encode or that a decode produces.
type ImageData struct {
	Width                     int
	Height                    int
	BitsPerSample             int
	SamplesPerPixel           int
	IsSigned                  bool
	PhotometricInterpretation PhotometricInterpretation
	PixelBytes                []byte
}

// BytesPerSample returns ceil(BitsPerSample/8).
func (d *ImageData) BytesPerSample() int {
	return (d.BitsPerSample + 7) / 8
}

// ExpectedLen returns width*height*samplesPerPixel*bytesPerSample, the
// invariant length of PixelBytes per spec §3.
func (d *ImageData) ExpectedLen() int {
	return d.Width * d.Height * d.SamplesPerPixel * d.BytesPerSample()
}

// Validate checks the ImageData invariant: len(PixelBytes) matches the
// dimensions exactly, in little-endian sample order, rows-first.
func (d *ImageData) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return errors.New(errors.ImageData, "invalid dimensions %dx%d", d.Width, d.Height)
	}
	if d.SamplesPerPixel <= 0 {
		return errors.New(errors.ImageData, "invalid samples per pixel %d", d.SamplesPerPixel)
	}
	if d.BitsPerSample <= 0 || d.BitsPerSample > 32 {
		return errors.New(errors.ImageData, "invalid bits per sample %d", d.BitsPerSample)
	}
	want := d.ExpectedLen()
	if len(d.PixelBytes) != want {
		return errors.New(errors.ImageData,
			"pixel buffer length %d does not match width*height*samples*bytesPerSample (%d)",
			len(d.PixelBytes), want)
	}
	return nil
}

// Samples16 returns PixelBytes reinterpreted as little-endian uint16 samples.
// Only valid when BitsPerSample > 8.
func (d *ImageData) Samples16() []uint16 {
	out := make([]uint16, len(d.PixelBytes)/2)
	for i := range out {
		out[i] = uint16(d.PixelBytes[2*i]) | uint16(d.PixelBytes[2*i+1])<<8
	}
	return out
}

// SetSamples16 packs 16-bit little-endian samples back into PixelBytes.
func (d *ImageData) SetSamples16(samples []uint16) {
	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		buf[2*i] = byte(s)
		buf[2*i+1] = byte(s >> 8)
	}
	d.PixelBytes = buf
}
