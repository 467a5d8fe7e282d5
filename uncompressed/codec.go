// Package uncompressed implements the identity codec of spec §4.8: pixel
// bytes pass through unchanged, framed as a native DICOM transfer syntax
// rather than an encapsulated one.
package uncompressed

import (
	"github.com/cocosip/pixelcodec/codec"
	"github.com/cocosip/pixelcodec/config"
	"github.com/cocosip/pixelcodec/errors"
	"github.com/cocosip/pixelcodec/imagedata"
	"github.com/cocosip/pixelcodec/transfer"
)

func init() {
	codec.Register(config.Uncompressed, New())
}

// Codec implements codec.Codec as a no-op transform.
type Codec struct{}

// New returns an identity codec instance.
func New() *Codec { return &Codec{} }

func (*Codec) Name() string { return "uncompressed" }

func (*Codec) Capabilities() codec.Capabilities {
	return codec.Capabilities{
		Version:             "1.0",
		SupportsLossless:    true,
		SupportsSigned:      true,
		SupportsColor:       true,
		SupportsMultiframe:  true,
		MaxBitsPerSample:    32,
		LosslessTransferUID: transfer.ExplicitVRLittleEndian,
	}
}

func (*Codec) CanEncode(img *imagedata.ImageData) error {
	if img.BitsPerSample < 1 || img.BitsPerSample > 32 {
		return errors.New(errors.CompressionConstraint, "uncompressed supports 1-32 bits per sample, got %d", img.BitsPerSample)
	}
	return nil
}

func (c *Codec) UID(cfg *config.CompressionConfig) (string, error) {
	if cfg.Mode != config.Lossless {
		return "", errors.New(errors.CompressionConstraint, "uncompressed has no lossy or near-lossless mode")
	}
	return transfer.ExplicitVRLittleEndian, nil
}

func (c *Codec) Encode(params codec.EncodeParams) ([]byte, error) {
	img := params.Image
	cfg := params.Config
	if err := img.Validate(); err != nil {
		return nil, err
	}
	if err := c.CanEncode(img); err != nil {
		return nil, err
	}
	if cfg.Mode != config.Lossless {
		return nil, errors.New(errors.CompressionConstraint, "uncompressed has no lossy or near-lossless mode")
	}
	out := make([]byte, len(img.PixelBytes))
	copy(out, img.PixelBytes)
	return out, nil
}

func (c *Codec) Decode(data []byte) (*codec.DecodeResult, error) {
	out := make([]byte, len(data))
	copy(out, data)
	return &codec.DecodeResult{Image: &imagedata.ImageData{PixelBytes: out}, Lossless: true}, nil
}
