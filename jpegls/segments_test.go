package jpegls

import "testing"

func TestEncodeSOSLengthMatchesWrittenBytes(t *testing.T) {
	for c := 1; c <= 3; c++ {
		buf := encodeSOS(sosSegment{Components: c, Near: 2})
		length := int(uint16(buf[2])<<8 | uint16(buf[3]))
		if len(buf) != 2+length {
			t.Errorf("components=%d: len(buf)=%d, want 2+length=%d", c, len(buf), 2+length)
		}
		if want := 6 + 2*c; length != want {
			t.Errorf("components=%d: length=%d, want %d", c, length, want)
		}
	}
}

func TestEncodeDecodeSOSRoundTrip(t *testing.T) {
	for c := 1; c <= 3; c++ {
		for _, near := range []int{0, 2, 7} {
			encoded := encodeSOS(sosSegment{Components: c, Near: near})
			decoded, end, err := decodeSOS(encoded, 0)
			if err != nil {
				t.Fatalf("components=%d near=%d: decodeSOS: %v", c, near, err)
			}
			if end != len(encoded) {
				t.Errorf("components=%d near=%d: end=%d, want %d", c, near, end, len(encoded))
			}
			if decoded.Components != c {
				t.Errorf("components=%d near=%d: decoded.Components=%d", c, near, decoded.Components)
			}
			if decoded.Near != near {
				t.Errorf("components=%d near=%d: decoded.Near=%d", c, near, decoded.Near)
			}
		}
	}
}
