// Package jpeg2000 implements the JPEG-2000-family codec of spec §4.6: a
// frame-faithful marker-segment codestream whose entropy payload is a
// simplified differential (lossless) or shift-quantized (lossy) scheme
// rather than real EBCOT/wavelet coding.
package jpeg2000

// Marker codes, ISO/IEC 15444-1 Table A.1. Only the subset this codec's
// single-tile, no-wavelet framing emits.
const (
	markerSOC uint16 = 0xFF4F
	markerSIZ uint16 = 0xFF51
	markerCOD uint16 = 0xFF52
	markerQCD uint16 = 0xFF5C
	markerSOT uint16 = 0xFF90
	markerSOD uint16 = 0xFF93
	markerEOC uint16 = 0xFFD9
)
