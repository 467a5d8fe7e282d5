package transfer

import "testing"

func TestIsLossless(t *testing.T) {
	cases := []struct {
		uid  string
		want bool
	}{
		{ImplicitVRLittleEndian, true},
		{ExplicitVRLittleEndian, true},
		{ExplicitVRBigEndian, true},
		{JPEGLossless, true},
		{JPEGLSLossless, true},
		{JPEGLSNearLossless, false},
		{JPEG2000Lossless, true},
		{JPEG2000Lossy, false},
		{RLELossless, true},
		{"1.2.3.4.5.6.unknown", false},
	}
	for _, c := range cases {
		if got := IsLossless(c.uid); got != c.want {
			t.Errorf("IsLossless(%s) = %v, want %v", c.uid, got, c.want)
		}
	}
}

func TestNameOf(t *testing.T) {
	if NameOf(JPEG2000Lossless) != "JPEG 2000 Lossless" {
		t.Errorf("unexpected name for JPEG2000Lossless")
	}
	if NameOf("bogus") != "Unknown" {
		t.Errorf("expected Unknown for unrecognized uid")
	}
}

func TestKnown(t *testing.T) {
	if !Known(JPEGLSNearLossless) {
		t.Errorf("expected JPEGLSNearLossless to be known")
	}
	if Known("bogus") {
		t.Errorf("expected bogus uid to be unknown")
	}
}
