package jpeg2000

import (
	"encoding/binary"
	"math"
)

// encodeLosslessPayload8 produces the horizontal differential encoding of
// spec §4.6: the first sample verbatim, then each successive sample minus
// its predecessor, wrapping in the sample width.
func encodeLosslessPayload8(samples []byte) []byte {
	out := make([]byte, len(samples))
	if len(samples) == 0 {
		return out
	}
	out[0] = samples[0]
	for i := 1; i < len(samples); i++ {
		out[i] = samples[i] - samples[i-1]
	}
	return out
}

func decodeLosslessPayload8(residuals []byte) []byte {
	out := make([]byte, len(residuals))
	if len(residuals) == 0 {
		return out
	}
	out[0] = residuals[0]
	for i := 1; i < len(residuals); i++ {
		out[i] = out[i-1] + residuals[i]
	}
	return out
}

func encodeLosslessPayload16(samples []uint16) []byte {
	out := make([]byte, len(samples)*2)
	if len(samples) == 0 {
		return out
	}
	binary.LittleEndian.PutUint16(out[0:], samples[0])
	for i := 1; i < len(samples); i++ {
		binary.LittleEndian.PutUint16(out[i*2:], samples[i]-samples[i-1])
	}
	return out
}

func decodeLosslessPayload16(data []byte) []uint16 {
	n := len(data) / 2
	out := make([]uint16, n)
	if n == 0 {
		return out
	}
	out[0] = binary.LittleEndian.Uint16(data[0:])
	for i := 1; i < n; i++ {
		residual := binary.LittleEndian.Uint16(data[i*2:])
		out[i] = out[i-1] + residual
	}
	return out
}

// quantShift computes q = min(floor(log2(targetRatio) * 0.5), bitsPerSample-1),
// the lossy shift amount of spec §4.6.
func quantShift(targetRatio float64, bitsPerSample int) int {
	q := 0
	if targetRatio > 1 {
		q = int(math.Floor(math.Log2(targetRatio) * 0.5))
	}
	if max := bitsPerSample - 1; q > max {
		q = max
	}
	if q < 0 {
		q = 0
	}
	return q
}

func encodeLossyPayload8(samples []byte, q int) []byte {
	shift := q
	if shift > 7 {
		shift = 7
	}
	out := make([]byte, 1+len(samples))
	out[0] = byte(q)
	for i, s := range samples {
		out[1+i] = s >> uint(shift)
	}
	return out
}

func decodeLossyPayload8(data []byte) ([]byte, int) {
	if len(data) == 0 {
		return nil, 0
	}
	q := int(data[0])
	shift := q
	if shift > 7 {
		shift = 7
	}
	out := make([]byte, len(data)-1)
	for i, s := range data[1:] {
		out[i] = s << uint(shift)
	}
	return out, q
}

func encodeLossyPayload16(samples []uint16, q int) []byte {
	shift := q
	if shift > 15 {
		shift = 15
	}
	out := make([]byte, 1+len(samples)*2)
	out[0] = byte(q)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[1+i*2:], s>>uint(shift))
	}
	return out
}

func decodeLossyPayload16(data []byte) ([]uint16, int) {
	if len(data) == 0 {
		return nil, 0
	}
	q := int(data[0])
	shift := q
	if shift > 15 {
		shift = 15
	}
	n := (len(data) - 1) / 2
	out := make([]uint16, n)
	for i := 0; i < n; i++ {
		s := binary.LittleEndian.Uint16(data[1+i*2:])
		out[i] = s << uint(shift)
	}
	return out, q
}
