package jpegls

import (
	"encoding/binary"

	"github.com/cocosip/pixelcodec/errors"
)

// sof55Segment is the JPEG-LS Start-of-Frame marker segment.
type sof55Segment struct {
	BitsPerSample int
	Height, Width int
	Components    int
}

func encodeSOF55(s sof55Segment) []byte {
	c := s.Components
	length := 8 + 3*c
	buf := make([]byte, 2+length)
	binary.BigEndian.PutUint16(buf[0:], markerSOF55)
	binary.BigEndian.PutUint16(buf[2:], uint16(length))
	buf[4] = byte(s.BitsPerSample)
	binary.BigEndian.PutUint16(buf[5:], uint16(s.Height))
	binary.BigEndian.PutUint16(buf[7:], uint16(s.Width))
	buf[9] = byte(c)
	for i := 0; i < c; i++ {
		offset := 10 + i*3
		buf[offset] = byte(i + 1)   // Ci
		buf[offset+1] = 0x11        // Hi=1, Vi=1
		buf[offset+2] = 0           // Tqi
	}
	return buf
}

func decodeSOF55(data []byte, offset int) (sof55Segment, int, error) {
	if offset+4 > len(data) || binary.BigEndian.Uint16(data[offset:]) != markerSOF55 {
		return sof55Segment{}, 0, errors.New(errors.CodecFailure, "expected SOF55 marker")
	}
	length := int(binary.BigEndian.Uint16(data[offset+2:]))
	end := offset + 2 + length
	if end > len(data) {
		return sof55Segment{}, 0, errors.New(errors.CodecFailure, "SOF55 segment exceeds buffer")
	}
	bits := int(data[offset+4])
	height := int(binary.BigEndian.Uint16(data[offset+5:]))
	width := int(binary.BigEndian.Uint16(data[offset+7:]))
	c := int(data[offset+9])
	return sof55Segment{BitsPerSample: bits, Height: height, Width: width, Components: c}, end, nil
}

// encodeLSE writes the fixed near-lossless preset parameter block of
// spec §4.7: MAXVAL=0x00FF, T1=3, T2=7, T3=21, RESET=64.
func encodeLSE() []byte {
	buf := make([]byte, 2+2+13)
	binary.BigEndian.PutUint16(buf[0:], markerLSE)
	binary.BigEndian.PutUint16(buf[2:], 15) // length field value (includes itself)
	data := buf[4:]
	data[0] = 1 // preset parameters ID
	binary.BigEndian.PutUint16(data[1:], 0x00FF)
	binary.BigEndian.PutUint16(data[3:], 3)
	binary.BigEndian.PutUint16(data[5:], 7)
	binary.BigEndian.PutUint16(data[7:], 21)
	binary.BigEndian.PutUint32(data[9:], 64)
	return buf
}

func decodeLSE(data []byte, offset int) (int, error) {
	if offset+4 > len(data) || binary.BigEndian.Uint16(data[offset:]) != markerLSE {
		return 0, errors.New(errors.CodecFailure, "expected LSE marker")
	}
	length := int(binary.BigEndian.Uint16(data[offset+2:]))
	end := offset + 2 + length
	if end > len(data) {
		return 0, errors.New(errors.CodecFailure, "LSE segment exceeds buffer")
	}
	return end, nil
}

// sosSegment is the Start-of-Scan marker segment.
type sosSegment struct {
	Components int
	Near       int
}

func encodeSOS(s sosSegment) []byte {
	c := s.Components
	length := 6 + 2*c
	buf := make([]byte, 2+length)
	binary.BigEndian.PutUint16(buf[0:], markerSOS)
	binary.BigEndian.PutUint16(buf[2:], uint16(length))
	pos := 4
	buf[pos] = byte(c)
	pos++
	for i := 0; i < c; i++ {
		buf[pos] = byte(i + 1) // Csj
		buf[pos+1] = 0         // Tdj/Taj
		pos += 2
	}
	buf[pos] = byte(s.Near)
	ilv := byte(0)
	if c > 1 {
		ilv = 2
	}
	buf[pos+1] = ilv
	buf[pos+2] = 0 // point transform
	return buf
}

func decodeSOS(data []byte, offset int) (sosSegment, int, error) {
	if offset+4 > len(data) || binary.BigEndian.Uint16(data[offset:]) != markerSOS {
		return sosSegment{}, 0, errors.New(errors.CodecFailure, "expected SOS marker")
	}
	length := int(binary.BigEndian.Uint16(data[offset+2:]))
	end := offset + 2 + length
	if end > len(data) {
		return sosSegment{}, 0, errors.New(errors.CodecFailure, "SOS segment exceeds buffer")
	}
	c := int(data[offset+4])
	near := int(data[end-3])
	return sosSegment{Components: c, Near: near}, end, nil
}
