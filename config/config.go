// Package config defines CompressionConfig, the parameter bundle validated
// against modality policy before a codec runs (spec §3, §4.3).
package config

import (
	"github.com/cocosip/pixelcodec/errors"
	"github.com/cocosip/pixelcodec/modality"
)

// CodecKind names one of the three supported codec families.
type CodecKind int

const (
	JPEG2000 CodecKind = iota
	JPEGLS
	Uncompressed
)

func (k CodecKind) String() string {
	switch k {
	case JPEG2000:
		return "jpeg2000"
	case JPEGLS:
		return "jpegls"
	case Uncompressed:
		return "uncompressed"
	default:
		return "unknown"
	}
}

// Mode names the lossiness mode requested for a compression.
type Mode int

const (
	Lossless Mode = iota
	Lossy
	NearLossless
)

func (m Mode) String() string {
	switch m {
	case Lossless:
		return "lossless"
	case Lossy:
		return "lossy"
	case NearLossless:
		return "nearlossless"
	default:
		return "unknown"
	}
}

// CompressionConfig is the parameter bundle a caller provides to the
// pipeline orchestrator (spec §3).
type CompressionConfig struct {
	Codec            CodecKind
	Mode             Mode
	QualityPreset    modality.QualityPreset
	TargetRatio      float64 // ignored unless Mode == Lossy
	QualityLayers    int
	TileSize         int // reserved, always 0
	NearLossless     int // tolerance in [0,255], only meaningful when Mode == NearLossless
	PreserveMetadata bool
	VerifyRoundtrip  bool
	OverrideSafety   bool
}

// New builds a CompressionConfig from a quality preset, filling derived
// fields (target ratio, layer count) from the preset per spec §3.
func New(codec CodecKind, mode Mode, preset modality.QualityPreset) *CompressionConfig {
	return &CompressionConfig{
		Codec:         codec,
		Mode:          mode,
		QualityPreset: preset,
		TargetRatio:   preset.TargetRatio(),
		QualityLayers: preset.QualityLayers(),
	}
}

// WithTargetRatio overrides the derived target ratio and returns the config for chaining.
func (c *CompressionConfig) WithTargetRatio(ratio float64) *CompressionConfig {
	c.TargetRatio = ratio
	return c
}

// WithNearLossless sets the near-lossless tolerance and returns the config for chaining.
func (c *CompressionConfig) WithNearLossless(tolerance int) *CompressionConfig {
	c.NearLossless = tolerance
	return c
}

// WithOverrideSafety sets the override-safety flag and returns the config for chaining.
func (c *CompressionConfig) WithOverrideSafety(override bool) *CompressionConfig {
	c.OverrideSafety = override
	return c
}

// Validate checks the internal invariants of spec §3: lossless mode forbids
// a near-lossless tolerance, near-lossless mode requires a codec that
// supports it, the tolerance lies in [0, 255], and a negative target ratio
// is rejected in lossy mode. No upper bound is placed on the target ratio.
func (c *CompressionConfig) Validate() error {
	if c.Mode == Lossless && c.NearLossless != 0 {
		return errors.New(errors.Configuration, "near-lossless tolerance must be 0 when mode is lossless")
	}
	if c.Mode == NearLossless && c.Codec != JPEGLS {
		return errors.New(errors.Configuration, "near-lossless mode requires the JPEG-LS codec family")
	}
	if c.NearLossless < 0 || c.NearLossless > 255 {
		return errors.New(errors.Configuration, "near-lossless tolerance %d out of range [0,255]", c.NearLossless)
	}
	if c.Mode == Lossy && c.TargetRatio < 0 {
		return errors.New(errors.Configuration, "target ratio %f must be non-negative", c.TargetRatio)
	}
	return nil
}

// ValidateForModality enforces the regulatory gate of spec §4.3: a modality
// that requires lossless rejects any non-lossless request unless
// OverrideSafety is set, in which case the caller should surface the
// returned warning rather than treat it as failure.
func (c *CompressionConfig) ValidateForModality(m modality.Modality) (warning string, err error) {
	if err := c.Validate(); err != nil {
		return "", err
	}
	if m.RequiresLossless() && c.Mode != Lossless {
		if !c.OverrideSafety {
			return "", errors.New(errors.Validation,
				"modality %s requires lossless compression", m.String())
		}
		return "override-safety engaged: modality " + m.String() +
			" normally requires lossless compression", nil
	}
	return "", nil
}
