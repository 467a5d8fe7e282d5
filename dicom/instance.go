package dicom

import (
	"github.com/cocosip/pixelcodec/errors"
	"github.com/cocosip/pixelcodec/imagedata"
)

// Instance is the parsed, read-only view of a DICOM file produced by the
// reader and consumed as source metadata by the writer (spec §3).
type Instance struct {
	TransferSyntaxUID string
	SOPClassUID       string
	SOPInstanceUID    string
	Modality          string

	Rows                      uint16
	Columns                   uint16
	BitsAllocated             uint16
	BitsStored                uint16
	HighBit                   uint16
	PixelRepresentation       uint16
	SamplesPerPixel           uint16
	PhotometricInterpretation string

	// PixelData is the raw payload of tag (7FE0,0010): a contiguous byte
	// run for native transfer syntaxes, or, for an encapsulated (compressed)
	// pixel-data element, the bytes of every fragment item after the Basic
	// Offset Table, concatenated.
	PixelData []byte

	// Elements holds every element the reader saw, keyed by tag, verbatim.
	Elements map[Tag]*Element
}

// IsEncapsulated reports whether the source transfer syntax stores pixel
// data in encapsulated (compressed, item-sequence) form.
func (inst *Instance) IsEncapsulated() bool {
	return !isNativeTransferSyntax(inst.TransferSyntaxUID)
}

// GetImageData builds an ImageData record from the parsed attributes and
// pixel payload, per spec §4.4. bits-stored is used when > 0, else
// bits-allocated.
func (inst *Instance) GetImageData() (*imagedata.ImageData, error) {
	if len(inst.PixelData) == 0 {
		return nil, errors.New(errors.DicomParse, "no pixel data")
	}

	bits := int(inst.BitsStored)
	if bits == 0 {
		bits = int(inst.BitsAllocated)
	}
	samples := int(inst.SamplesPerPixel)
	if samples == 0 {
		samples = 1
	}

	photometric := imagedata.PhotometricInterpretation(inst.PhotometricInterpretation)
	if photometric == "" {
		photometric = imagedata.Monochrome2
	}

	img := &imagedata.ImageData{
		Width:                     int(inst.Columns),
		Height:                    int(inst.Rows),
		BitsPerSample:             bits,
		SamplesPerPixel:           samples,
		IsSigned:                  inst.PixelRepresentation != 0,
		PhotometricInterpretation: photometric,
		PixelBytes:                inst.PixelData,
	}
	return img, nil
}
