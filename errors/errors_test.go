package errors

import (
	"errors"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	cases := []struct {
		name string
		err  *Error
		want string
	}{
		{"plain", New(Validation, "MG requires lossless"), "Validation: MG requires lossless"},
		{"withUID", UnsupportedSyntax("1.2.3.4"), "UnsupportedTransferSyntax: transfer syntax not recognized (uid=1.2.3.4)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.err.Error(); got != c.want {
				t.Errorf("Error() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(CodecFailure, cause, "encode failed")
	if !errors.Is(err, cause) {
		t.Errorf("expected errors.Is to find wrapped cause")
	}
	if !Is(err, CodecFailure) {
		t.Errorf("expected Is(err, CodecFailure) to be true")
	}
}

func TestKindString(t *testing.T) {
	if Kind(999).String() != "Unknown" {
		t.Errorf("expected Unknown for out-of-range kind")
	}
}
