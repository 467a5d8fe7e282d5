// Package modality implements the modality and quality-preset policy of
// spec §3/§4.3: which modalities require lossless compression, and the
// target ratio / layer count each quality preset maps to.
package modality

import "strings"

// Modality identifies the imaging modality that produced a DICOM instance.
type Modality int

const (
	Other Modality = iota
	CT
	MR
	CR
	DX
	MG
	US
	NM
	PT
	SM
)

// String returns the DICOM modality code, or "OT" for Other.
func (m Modality) String() string {
	switch m {
	case CT:
		return "CT"
	case MR:
		return "MR"
	case CR:
		return "CR"
	case DX:
		return "DX"
	case MG:
		return "MG"
	case US:
		return "US"
	case NM:
		return "NM"
	case PT:
		return "PT"
	case SM:
		return "SM"
	default:
		return "OT"
	}
}

// FromCode maps a DICOM modality code (e.g. "CT", "mg") to a Modality.
// Unrecognized codes map to Other.
func FromCode(code string) Modality {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "CT":
		return CT
	case "MR":
		return MR
	case "CR":
		return CR
	case "DX":
		return DX
	case "MG":
		return MG
	case "US":
		return US
	case "NM":
		return NM
	case "PT":
		return PT
	case "SM":
		return SM
	default:
		return Other
	}
}

// RequiresLossless reports whether this modality forbids non-lossless
// compression absent an explicit safety override (mammography regulatory
// constraint, spec §4.3).
func (m Modality) RequiresLossless() bool {
	return m == MG
}

// RecommendedCodec names the codec family this modality is best served by.
// This is advisory; the pipeline does not enforce it.
func (m Modality) RecommendedCodec() string {
	switch m {
	case MG, CR, DX:
		return "jpegls"
	case CT, MR, PT, NM, SM:
		return "jpeg2000"
	case US:
		return "uncompressed"
	default:
		return "jpeg2000"
	}
}

// DefaultPreset names the quality preset this modality should default to
// absent an explicit caller choice.
func (m Modality) DefaultPreset() QualityPreset {
	if m.RequiresLossless() {
		return Diagnostic
	}
	return HighQuality
}

// QualityPreset names one of the fixed target-ratio/layer-count bundles of
// spec §3.
type QualityPreset int

const (
	Diagnostic QualityPreset = iota
	HighQuality
	Standard
	Preview
)

// TargetRatio returns the preset's target compression ratio, or 0 for
// Diagnostic (no target — lossless only).
func (p QualityPreset) TargetRatio() float64 {
	switch p {
	case Diagnostic:
		return 0
	case HighQuality:
		return 10.0
	case Standard:
		return 20.0
	case Preview:
		return 50.0
	default:
		return 0
	}
}

// QualityLayers returns the preset's quality-layer count.
func (p QualityPreset) QualityLayers() int {
	switch p {
	case Diagnostic:
		return 1
	case HighQuality:
		return 5
	case Standard:
		return 3
	case Preview:
		return 2
	default:
		return 1
	}
}

// String returns the preset name.
func (p QualityPreset) String() string {
	switch p {
	case Diagnostic:
		return "Diagnostic"
	case HighQuality:
		return "HighQuality"
	case Standard:
		return "Standard"
	case Preview:
		return "Preview"
	default:
		return "Unknown"
	}
}
