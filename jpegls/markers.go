// Package jpegls implements the JPEG-LS-family codec of spec §4.7: a
// frame-faithful SOI/SOF55/SOS/EOI marker sequence around an MED-predicted
// residual payload. The payload is emitted raw (no Golomb-Rice entropy
// coding), optionally quantized for near-lossless tolerance.
package jpegls

const (
	markerSOI   uint16 = 0xFFD8
	markerSOF55 uint16 = 0xFFF7
	markerLSE   uint16 = 0xFFF8
	markerSOS   uint16 = 0xFFDA
	markerEOI   uint16 = 0xFFD9
)
