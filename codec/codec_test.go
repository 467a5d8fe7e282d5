package codec

import (
	"testing"

	"github.com/cocosip/pixelcodec/config"
	"github.com/cocosip/pixelcodec/imagedata"
)

type stubCodec struct{ name string }

func (s *stubCodec) Encode(EncodeParams) ([]byte, error)           { return nil, nil }
func (s *stubCodec) Decode([]byte) (*DecodeResult, error)          { return nil, nil }
func (s *stubCodec) UID(*config.CompressionConfig) (string, error) { return "1.2.3", nil }
func (s *stubCodec) Name() string                                  { return s.name }
func (s *stubCodec) Capabilities() Capabilities                    { return Capabilities{} }
func (s *stubCodec) CanEncode(*imagedata.ImageData) error          { return nil }

func TestRegisterAndGet(t *testing.T) {
	Register(config.Uncompressed, &stubCodec{name: "stub"})

	c, err := Get(config.Uncompressed)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if c.Name() != "stub" {
		t.Errorf("Name() = %s, want stub", c.Name())
	}
}

func TestGetUnregistered(t *testing.T) {
	if _, err := Get(config.CodecKind(99)); err == nil {
		t.Errorf("expected error for unregistered kind")
	}
}

func TestList(t *testing.T) {
	Register(config.JPEG2000, &stubCodec{name: "j2k"})
	kinds := List()
	found := false
	for _, k := range kinds {
		if k == config.JPEG2000 {
			found = true
		}
	}
	if !found {
		t.Errorf("List() missing JPEG2000, got %v", kinds)
	}
}
