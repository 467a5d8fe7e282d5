package dicom

import (
	"math/big"

	"github.com/google/uuid"
)

// ImplementationClassUID and ImplementationVersionName are the fixed
// identifiers the writer stamps into every File Meta group (spec §4.5).
const (
	ImplementationClassUID   = "1.2.826.0.1.3680043.8.498.1"
	ImplementationVersionName = "PIXELCODEC_1_0"
)

// NewSOPInstanceUID derives a DICOM UID from a freshly generated UUID, per
// PS3.5 Annex B: the "2.25." root followed by the UUID's unsigned 128-bit
// value rendered in decimal. Used to stamp a SOP Instance UID onto
// synthesized instances and test fixtures that have none.
func NewSOPInstanceUID() string {
	id := uuid.New()
	n := new(big.Int).SetBytes(id[:])
	return "2.25." + n.String()
}
