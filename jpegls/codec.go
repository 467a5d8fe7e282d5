package jpegls

import (
	"encoding/binary"

	"github.com/cocosip/pixelcodec/codec"
	"github.com/cocosip/pixelcodec/config"
	"github.com/cocosip/pixelcodec/errors"
	"github.com/cocosip/pixelcodec/imagedata"
	"github.com/cocosip/pixelcodec/transfer"
)

func init() {
	codec.Register(config.JPEGLS, New())
}

// Codec implements codec.Codec for the JPEG-LS-family framing of spec §4.7:
// a MED-predicted residual stream, optionally near-lossless quantized,
// wrapped in a frame-faithful SOI/SOF55/[LSE]/SOS/EOI marker sequence.
type Codec struct{}

// New returns a JPEG-LS-family codec instance.
func New() *Codec { return &Codec{} }

func (*Codec) Name() string { return "jpegls" }

func (*Codec) Capabilities() codec.Capabilities {
	return codec.Capabilities{
		Version:              "1.0",
		SupportsLossless:     true,
		SupportsNearLossless: true,
		SupportsSigned:       true,
		SupportsColor:        true,
		MaxBitsPerSample:     16,
		LosslessTransferUID:  transfer.JPEGLSLossless,
	}
}

func (c *Codec) CanEncode(img *imagedata.ImageData) error {
	if img.BitsPerSample < 1 || img.BitsPerSample > 16 {
		return errors.New(errors.CompressionConstraint, "jpegls supports 1-16 bits per sample, got %d", img.BitsPerSample)
	}
	return nil
}

func (c *Codec) UID(cfg *config.CompressionConfig) (string, error) {
	switch cfg.Mode {
	case config.Lossless:
		return transfer.JPEGLSLossless, nil
	case config.NearLossless:
		return transfer.JPEGLSNearLossless, nil
	default:
		return "", errors.New(errors.CompressionConstraint, "jpegls has no transfer syntax for mode %s", cfg.Mode)
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
	if cfg.Mode == config.Lossy {
		return nil, errors.New(errors.CompressionConstraint, "jpegls does not support target-ratio lossy mode, only lossless or near-lossless")
	}
	near := 0
	if cfg.Mode == config.NearLossless {
		near = cfg.NearLossless
	}

	bits := img.BitsPerSample
	components := img.SamplesPerPixel

	var payload []byte
	if bits <= 8 {
		planes := deinterleave8(img.PixelBytes, img.Width, img.Height, components)
		residualPlanes := make([][]byte, components)
		for i, p := range planes {
			residualPlanes[i] = encodePlane8(p, img.Width, img.Height, near)
		}
		for i := 0; i < img.Width*img.Height; i++ {
			for c := 0; c < components; c++ {
				payload = append(payload, residualPlanes[c][i])
			}
		}
	} else {
		samples := img.Samples16()
		intSamples := make([]int, len(samples))
		for i, s := range samples {
			intSamples[i] = int(s)
		}
		planes := deinterleaveInts(intSamples, components)
		residualPlanes := make([][]int, components)
		for i, p := range planes {
			residualPlanes[i] = encodePlane16(p, img.Width, img.Height, near)
		}
		n := img.Width * img.Height
		interleaved := make([]int, n*components)
		for i := 0; i < n; i++ {
			for c := 0; c < components; c++ {
				interleaved[i*components+c] = residualPlanes[c][i]
			}
		}
		payload = make([]byte, len(interleaved)*2)
		for i, v := range interleaved {
			binary.LittleEndian.PutUint16(payload[i*2:], uint16(v))
		}
	}

	var out []byte
	out = appendMarker(out, markerSOI)
	out = append(out, encodeSOF55(sof55Segment{
		BitsPerSample: bits,
		Height:        img.Height,
		Width:         img.Width,
		Components:    components,
	})...)
	if near > 0 {
		out = append(out, encodeLSE()...)
	}
	out = append(out, encodeSOS(sosSegment{Components: components, Near: near})...)
	out = append(out, payload...)
	out = appendMarker(out, markerEOI)
	return out, nil
}

func (c *Codec) Decode(data []byte) (*codec.DecodeResult, error) {
	if len(data) < 2 || binary.BigEndian.Uint16(data[0:2]) != markerSOI {
		return nil, errors.New(errors.CodecFailure, "missing SOI marker")
	}
	sof, offset, err := decodeSOF55(data, 2)
	if err != nil {
		return nil, errors.Wrap(errors.CodecFailure, err, "decoding SOF55")
	}
	if offset+2 <= len(data) && binary.BigEndian.Uint16(data[offset:]) == markerLSE {
		offset, err = decodeLSE(data, offset)
		if err != nil {
			return nil, errors.Wrap(errors.CodecFailure, err, "decoding LSE")
		}
	}
	sos, offset, err := decodeSOS(data, offset)
	if err != nil {
		return nil, errors.Wrap(errors.CodecFailure, err, "decoding SOS")
	}

	bytesPerSample := 1
	if sof.BitsPerSample > 8 {
		bytesPerSample = 2
	}
	payloadLen := sof.Width * sof.Height * sof.Components * bytesPerSample
	if offset+payloadLen > len(data) {
		return nil, errors.New(errors.CodecFailure, "payload shorter than expected frame size")
	}
	payload := data[offset : offset+payloadLen]

	var pixelBytes []byte
	if bytesPerSample == 1 {
		n := sof.Width * sof.Height
		residualPlanes := make([][]byte, sos.Components)
		for c := range residualPlanes {
			residualPlanes[c] = make([]byte, n)
		}
		for i := 0; i < n; i++ {
			for c := 0; c < sos.Components; c++ {
				residualPlanes[c][i] = payload[i*sos.Components+c]
			}
		}
		planes := make([][]int, sos.Components)
		for c := range planes {
			planes[c] = decodePlane8(residualPlanes[c], sof.Width, sof.Height, sos.Near)
		}
		pixelBytes = interleave8(planes, sof.Width, sof.Height)
	} else {
		n := sof.Width * sof.Height
		residualPlanes := make([][]int, sos.Components)
		for c := range residualPlanes {
			residualPlanes[c] = make([]int, n)
		}
		for i := 0; i < n; i++ {
			for c := 0; c < sos.Components; c++ {
				off := (i*sos.Components + c) * 2
				residualPlanes[c][i] = int(binary.LittleEndian.Uint16(payload[off:]))
			}
		}
		planes := make([][]int, sos.Components)
		for c := range planes {
			planes[c] = decodePlane16(residualPlanes[c], sof.Width, sof.Height, sos.Near)
		}
		pixelBytes = interleave16(planes, sof.Width, sof.Height)
	}

	img := &imagedata.ImageData{
		Width:                     sof.Width,
		Height:                    sof.Height,
		BitsPerSample:             sof.BitsPerSample,
		SamplesPerPixel:           sos.Components,
		PhotometricInterpretation: imagedata.Monochrome2,
		PixelBytes:                pixelBytes,
	}
	return &codec.DecodeResult{Image: img, Lossless: sos.Near == 0}, nil
}

func appendMarker(buf []byte, marker uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, marker)
	return append(buf, b...)
}

func deinterleaveInts(samples []int, components int) [][]int {
	n := len(samples) / components
	planes := make([][]int, components)
	for c := range planes {
		planes[c] = make([]int, n)
	}
	for i := 0; i < n; i++ {
		for c := 0; c < components; c++ {
			planes[c][i] = samples[i*components+c]
		}
	}
	return planes
}
