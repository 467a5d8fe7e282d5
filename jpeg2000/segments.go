package jpeg2000

import (
	"encoding/binary"

	"github.com/cocosip/pixelcodec/errors"
)

// sizSegment is the Image and Tile Size marker segment, ISO/IEC
// 15444-1 A.5.1, trimmed to the single-tile-covers-whole-image case this
// codec always emits.
type sizSegment struct {
	Width, Height int
	Components    []componentSize
}

type componentSize struct {
	BitsPerSample int
	Signed        bool
}

func (s componentSize) ssiz() uint8 {
	v := uint8(s.BitsPerSample-1) & 0x7F
	if s.Signed {
		v |= 0x80
	}
	return v
}

func decodeSsiz(b byte) componentSize {
	return componentSize{
		BitsPerSample: int(b&0x7F) + 1,
		Signed:        b&0x80 != 0,
	}
}

func encodeSIZ(s sizSegment) []byte {
	c := len(s.Components)
	lsiz := 38 + 3*c
	buf := make([]byte, 2+lsiz)
	binary.BigEndian.PutUint16(buf[0:], markerSIZ)
	binary.BigEndian.PutUint16(buf[2:], uint16(lsiz))
	pos := 4
	binary.BigEndian.PutUint16(buf[pos:], 0) // Rsiz: baseline profile
	pos += 2
	binary.BigEndian.PutUint32(buf[pos:], uint32(s.Width))
	pos += 4
	binary.BigEndian.PutUint32(buf[pos:], uint32(s.Height))
	pos += 4
	binary.BigEndian.PutUint32(buf[pos:], 0) // XOsiz
	pos += 4
	binary.BigEndian.PutUint32(buf[pos:], 0) // YOsiz
	pos += 4
	binary.BigEndian.PutUint32(buf[pos:], uint32(s.Width)) // XTsiz: one tile
	pos += 4
	binary.BigEndian.PutUint32(buf[pos:], uint32(s.Height)) // YTsiz
	pos += 4
	binary.BigEndian.PutUint32(buf[pos:], 0) // XTOsiz
	pos += 4
	binary.BigEndian.PutUint32(buf[pos:], 0) // YTOsiz
	pos += 4
	binary.BigEndian.PutUint16(buf[pos:], uint16(c))
	pos += 2
	for _, comp := range s.Components {
		buf[pos] = comp.ssiz()
		buf[pos+1] = 1 // XRsiz
		buf[pos+2] = 1 // YRsiz
		pos += 3
	}
	return buf
}

// decodeSIZ reads a SIZ segment starting at data[offset] (the marker
// bytes) and returns the segment plus the offset immediately following it.
func decodeSIZ(data []byte, offset int) (sizSegment, int, error) {
	if offset+4 > len(data) || binary.BigEndian.Uint16(data[offset:]) != markerSIZ {
		return sizSegment{}, 0, errors.New(errors.CodecFailure, "expected SIZ marker")
	}
	lsiz := int(binary.BigEndian.Uint16(data[offset+2:]))
	end := offset + 2 + lsiz
	if end > len(data) {
		return sizSegment{}, 0, errors.New(errors.CodecFailure, "SIZ segment exceeds buffer")
	}
	pos := offset + 4 + 2 // skip marker, Lsiz, Rsiz
	width := int(binary.BigEndian.Uint32(data[pos:]))
	pos += 4
	height := int(binary.BigEndian.Uint32(data[pos:]))
	pos += 4
	pos += 24 // XOsiz, YOsiz, XTsiz, YTsiz, XTOsiz, YTOsiz (4 bytes each)
	c := int(binary.BigEndian.Uint16(data[pos:]))
	pos += 2
	components := make([]componentSize, c)
	for i := 0; i < c; i++ {
		components[i] = decodeSsiz(data[pos])
		pos += 3
	}
	return sizSegment{Width: width, Height: height, Components: components}, end, nil
}

// codSegment is the Coding style default marker segment, ISO/IEC
// 15444-1 A.6.1, trimmed to the fixed parameters this codec always emits
// except QualityLayers and Reversible.
type codSegment struct {
	QualityLayers int
	Reversible    bool
}

func encodeCOD(c codSegment) []byte {
	buf := make([]byte, 14)
	binary.BigEndian.PutUint16(buf[0:], markerCOD)
	binary.BigEndian.PutUint16(buf[2:], 12) // Lcod
	buf[4] = 0                              // Scod
	buf[5] = 0                              // progression order: LRCP
	binary.BigEndian.PutUint16(buf[6:], uint16(c.QualityLayers))
	buf[8] = 0 // MCT
	buf[9] = 5 // decomposition levels
	buf[10] = 4 // code-block width exponent
	buf[11] = 4 // code-block height exponent
	buf[12] = 0 // code-block style
	if c.Reversible {
		buf[13] = 1
	} else {
		buf[13] = 0
	}
	return buf
}

func decodeCOD(data []byte, offset int) (codSegment, int, error) {
	if offset+4 > len(data) || binary.BigEndian.Uint16(data[offset:]) != markerCOD {
		return codSegment{}, 0, errors.New(errors.CodecFailure, "expected COD marker")
	}
	lcod := int(binary.BigEndian.Uint16(data[offset+2:]))
	end := offset + 2 + lcod
	if end > len(data) {
		return codSegment{}, 0, errors.New(errors.CodecFailure, "COD segment exceeds buffer")
	}
	layers := int(binary.BigEndian.Uint16(data[offset+6:]))
	reversible := data[offset+13] == 1
	return codSegment{QualityLayers: layers, Reversible: reversible}, end, nil
}

// encodeQCD writes the Quantization default segment: lossless uses the
// 1-byte step-size form, lossy the 2-byte form, per spec §4.6.
func encodeQCD(reversible bool) []byte {
	if reversible {
		return []byte{byte(markerQCD >> 8), byte(markerQCD & 0xFF), 0, 4, 0x22, 0x00}
	}
	buf := []byte{byte(markerQCD >> 8), byte(markerQCD & 0xFF), 0, 5, 0x42, 0x00, 0x88}
	return buf
}

func decodeQCD(data []byte, offset int) (int, error) {
	if offset+4 > len(data) || binary.BigEndian.Uint16(data[offset:]) != markerQCD {
		return 0, errors.New(errors.CodecFailure, "expected QCD marker")
	}
	lqcd := int(binary.BigEndian.Uint16(data[offset+2:]))
	end := offset + 2 + lqcd
	if end > len(data) {
		return 0, errors.New(errors.CodecFailure, "QCD segment exceeds buffer")
	}
	return end, nil
}

// sotSegment is the Start-of-tile-part marker segment, ISO/IEC 15444-1
// A.4.2, trimmed to the single-tile/single-tile-part case this codec always
// emits.
type sotSegment struct {
	// Psot is the length, in bytes, from the first byte of this SOT marker
	// segment to the end of this tile-part's data (SOD marker plus
	// payload). The decoder uses it to bound the payload exactly, rather
	// than assuming the payload ends where the surrounding container
	// happens to end: a DICOM fragment item pads its declared length to an
	// even byte count, so trailing bytes beyond the real codestream cannot
	// be trusted to be absent.
	Psot int
}

// encodeSOT writes the Start-of-tile-part segment for the codec's single
// tile, tile-part 0 of 1.
func encodeSOT(payloadLen int) []byte {
	buf := make([]byte, 12)
	binary.BigEndian.PutUint16(buf[0:], markerSOT)
	binary.BigEndian.PutUint16(buf[2:], 10) // Lsot
	binary.BigEndian.PutUint16(buf[4:], 0)  // Isot: tile 0
	binary.BigEndian.PutUint32(buf[6:], uint32(12+2+payloadLen))
	buf[10] = 0 // TPsot
	buf[11] = 1 // TNsot
	return buf
}

func decodeSOT(data []byte, offset int) (sotSegment, int, error) {
	if offset+4 > len(data) || binary.BigEndian.Uint16(data[offset:]) != markerSOT {
		return sotSegment{}, 0, errors.New(errors.CodecFailure, "expected SOT marker")
	}
	lsot := int(binary.BigEndian.Uint16(data[offset+2:]))
	end := offset + 2 + lsot
	if end > len(data) {
		return sotSegment{}, 0, errors.New(errors.CodecFailure, "SOT segment exceeds buffer")
	}
	psot := int(binary.BigEndian.Uint32(data[offset+6:]))
	return sotSegment{Psot: psot}, end, nil
}
