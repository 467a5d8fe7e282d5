package config

import (
	"testing"

	dicomerrors "github.com/cocosip/pixelcodec/errors"
	"github.com/cocosip/pixelcodec/modality"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     *CompressionConfig
		wantErr bool
	}{
		{"lossless ok", New(JPEG2000, Lossless, modality.Diagnostic), false},
		{"lossless with tolerance", (&CompressionConfig{Mode: Lossless, NearLossless: 2}), true},
		{"nearlossless wrong codec", (&CompressionConfig{Mode: NearLossless, Codec: JPEG2000}), true},
		{"nearlossless ok", (&CompressionConfig{Mode: NearLossless, Codec: JPEGLS, NearLossless: 2}), false},
		{"tolerance out of range", (&CompressionConfig{Mode: NearLossless, Codec: JPEGLS, NearLossless: 999}), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.cfg.Validate()
			if (err != nil) != c.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, c.wantErr)
			}
		})
	}
}

func TestValidateForModalityMG(t *testing.T) {
	cfg := New(JPEGLS, Lossy, modality.Standard)
	_, err := cfg.ValidateForModality(modality.MG)
	if err == nil {
		t.Fatalf("expected Validation error for MG + lossy without override")
	}
	if !dicomerrors.Is(err, dicomerrors.Validation) {
		t.Errorf("expected Validation kind, got %v", err)
	}

	cfg.OverrideSafety = true
	warning, err := cfg.ValidateForModality(modality.MG)
	if err != nil {
		t.Fatalf("override-safety should allow the request: %v", err)
	}
	if warning == "" {
		t.Errorf("expected a non-empty warning when override-safety is engaged")
	}
}

func TestValidateForModalityLosslessAlwaysOK(t *testing.T) {
	cfg := New(JPEGLS, Lossless, modality.Diagnostic)
	if _, err := cfg.ValidateForModality(modality.MG); err != nil {
		t.Errorf("lossless request for MG should always succeed: %v", err)
	}
}
