package jpeg2000

import (
	"encoding/binary"

	"github.com/cocosip/pixelcodec/codec"
	"github.com/cocosip/pixelcodec/config"
	"github.com/cocosip/pixelcodec/errors"
	"github.com/cocosip/pixelcodec/imagedata"
	"github.com/cocosip/pixelcodec/transfer"
)

func init() {
	codec.Register(config.JPEG2000, New())
}

// Codec implements codec.Codec for the JPEG-2000-family framing of
// spec §4.6.
type Codec struct{}

// New returns a JPEG-2000-family codec instance.
func New() *Codec { return &Codec{} }

func (*Codec) Name() string { return "jpeg2000" }

func (*Codec) Capabilities() codec.Capabilities {
	return codec.Capabilities{
		Version:             "1.0",
		SupportsLossless:    true,
		SupportsLossy:       true,
		SupportsSigned:      true,
		MaxBitsPerSample:    16,
		LosslessTransferUID: transfer.JPEG2000Lossless,
		LossyTransferUID:    transfer.JPEG2000Lossy,
	}
}

func (c *Codec) CanEncode(img *imagedata.ImageData) error {
	if img.BitsPerSample < 1 || img.BitsPerSample > 16 {
		return errors.New(errors.CompressionConstraint, "jpeg2000 supports 1-16 bits per sample, got %d", img.BitsPerSample)
	}
	if img.SamplesPerPixel > 1 {
		return errors.New(errors.CompressionConstraint, "jpeg2000 codec does not support multi-component (color) images, got %d samples per pixel", img.SamplesPerPixel)
	}
	return nil
}

func (c *Codec) UID(cfg *config.CompressionConfig) (string, error) {
	switch cfg.Mode {
	case config.Lossless:
		return transfer.JPEG2000Lossless, nil
	case config.Lossy:
		return transfer.JPEG2000Lossy, nil
	default:
		return "", errors.New(errors.CompressionConstraint, "jpeg2000 has no transfer syntax for mode %s", cfg.Mode)
	}
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
	if cfg.Mode == config.NearLossless {
		return nil, errors.New(errors.CompressionConstraint, "jpeg2000 does not support near-lossless mode")
	}
	bits := img.BitsPerSample

	reversible := cfg.Mode == config.Lossless
	siz := sizSegment{
		Width:  img.Width,
		Height: img.Height,
		Components: []componentSize{
			{BitsPerSample: bits, Signed: img.IsSigned},
		},
	}

	var payload []byte
	if bits <= 8 {
		if reversible {
			payload = encodeLosslessPayload8(img.PixelBytes)
		} else {
			q := quantShift(cfg.TargetRatio, bits)
			payload = encodeLossyPayload8(img.PixelBytes, q)
		}
	} else {
		samples := img.Samples16()
		if reversible {
			payload = encodeLosslessPayload16(samples)
		} else {
			q := quantShift(cfg.TargetRatio, bits)
			payload = encodeLossyPayload16(samples, q)
		}
	}

	var out []byte
	out = appendUint16(out, markerSOC)
	out = append(out, encodeSIZ(siz)...)
	out = append(out, encodeCOD(codSegment{QualityLayers: cfg.QualityLayers, Reversible: reversible})...)
	out = append(out, encodeQCD(reversible)...)
	out = append(out, encodeSOT(len(payload))...)
	out = appendUint16(out, markerSOD)
	out = append(out, payload...)
	out = appendUint16(out, markerEOC)
	return out, nil
}

func (c *Codec) Decode(data []byte) (*codec.DecodeResult, error) {
	if len(data) < 2 || binary.BigEndian.Uint16(data[0:2]) != markerSOC {
		return nil, errors.New(errors.CodecFailure, "missing SOC marker")
	}
	siz, offset, err := decodeSIZ(data, 2)
	if err != nil {
		return nil, errors.Wrap(errors.CodecFailure, err, "decoding SIZ")
	}
	cod, offset, err := decodeCOD(data, offset)
	if err != nil {
		return nil, errors.Wrap(errors.CodecFailure, err, "decoding COD")
	}
	offset, err = decodeQCD(data, offset)
	if err != nil {
		return nil, errors.Wrap(errors.CodecFailure, err, "decoding QCD")
	}
	sotOffset := offset
	sot, offset, err := decodeSOT(data, offset)
	if err != nil {
		return nil, errors.Wrap(errors.CodecFailure, err, "decoding SOT")
	}
	if offset+2 > len(data) || binary.BigEndian.Uint16(data[offset:]) != markerSOD {
		return nil, errors.New(errors.CodecFailure, "missing SOD marker")
	}
	payloadStart := offset + 2
	payloadEnd := sotOffset + sot.Psot
	if payloadEnd < payloadStart || payloadEnd > len(data) {
		return nil, errors.New(errors.CodecFailure, "tile-part length Psot out of bounds")
	}
	payload := data[payloadStart:payloadEnd]

	comp := siz.Components[0]
	lossy := !cod.Reversible && len(payload) > 0 && payload[0] < 16

	var pixelBytes []byte
	if comp.BitsPerSample <= 8 {
		var samples []byte
		if lossy {
			samples, _ = decodeLossyPayload8(payload)
		} else {
			samples = decodeLosslessPayload8(payload)
		}
		pixelBytes = samples
	} else {
		var samples []uint16
		if lossy {
			samples, _ = decodeLossyPayload16(payload)
		} else {
			samples = decodeLosslessPayload16(payload)
		}
		pixelBytes = make([]byte, len(samples)*2)
		for i, s := range samples {
			binary.LittleEndian.PutUint16(pixelBytes[i*2:], s)
		}
	}

	img := &imagedata.ImageData{
		Width:                     siz.Width,
		Height:                    siz.Height,
		BitsPerSample:             comp.BitsPerSample,
		SamplesPerPixel:           len(siz.Components),
		IsSigned:                  comp.Signed,
		PhotometricInterpretation: imagedata.Monochrome2,
		PixelBytes:                pixelBytes,
	}
	return &codec.DecodeResult{Image: img, Lossless: cod.Reversible}, nil
}

func appendUint16(buf []byte, v uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v)
	return append(buf, b...)
}
