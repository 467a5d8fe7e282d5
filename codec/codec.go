// Package codec defines the common contract every pixel codec family
// (JPEG 2000, JPEG-LS, uncompressed) implements, and the registry the
// pipeline orchestrator uses to look one up by codec kind
// (spec §3, §4.9).
package codec

import (
	"github.com/cocosip/pixelcodec/config"
	"github.com/cocosip/pixelcodec/imagedata"
)

// EncodeParams bundles an image and the compression request driving one
// Encode call.
type EncodeParams struct {
	Image  *imagedata.ImageData
	Config *config.CompressionConfig
}

// DecodeResult carries the image a Decode call recovered, plus whether the
// codec believes the recovery was exact.
type DecodeResult struct {
	Image    *imagedata.ImageData
	Lossless bool
}

// Capabilities describes what modes and data shapes a codec supports. The
// pipeline does not read it; it gates an encode on CanEncode and UID.
type Capabilities struct {
	Version              string
	SupportsLossless     bool
	SupportsLossy        bool
	SupportsNearLossless bool
	SupportsProgressive  bool
	SupportsROI          bool
	SupportsSigned       bool
	SupportsColor        bool
	SupportsMultiframe   bool
	MaxBitsPerSample     int
	LosslessTransferUID  string
	LossyTransferUID     string
}

// Codec is the contract every pixel codec family implements.
type Codec interface {
	// Encode compresses params.Image per params.Config, returning the
	// framed codestream.
	Encode(params EncodeParams) ([]byte, error)
	// Decode parses a codestream this codec produced and recovers the image.
	Decode(data []byte) (*DecodeResult, error)
	// UID returns the DICOM transfer syntax UID this codec's current mode
	// targets. CanEncode should be checked before relying on it for a
	// specific config.
	UID(cfg *config.CompressionConfig) (string, error)
	// Name returns a short, human-readable codec family name.
	Name() string
	// Capabilities describes what this codec supports.
	Capabilities() Capabilities
	// CanEncode reports whether this codec can represent img at all (bit
	// depth, component count, signedness), independent of cfg.Mode.
	CanEncode(img *imagedata.ImageData) error
}
