package dicom

import (
	"bytes"
	"testing"

	"github.com/cocosip/pixelcodec/transfer"
)

func sampleInstance() *Instance {
	return &Instance{
		SOPClassUID:               "1.2.840.10008.5.1.4.1.1.7",
		SOPInstanceUID:            NewSOPInstanceUID(),
		Modality:                  "CT",
		Rows:                      4,
		Columns:                   4,
		BitsAllocated:             8,
		BitsStored:                8,
		HighBit:                   7,
		PixelRepresentation:       0,
		SamplesPerPixel:           1,
		PhotometricInterpretation: "MONOCHROME2",
	}
}

func TestWriteThenParseNativeRoundTrip(t *testing.T) {
	inst := sampleInstance()
	payload := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}

	out, err := Write(inst, payload, transfer.ExplicitVRLittleEndian)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	parsed, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed.TransferSyntaxUID != transfer.ExplicitVRLittleEndian {
		t.Errorf("transfer syntax = %s", parsed.TransferSyntaxUID)
	}
	if parsed.Rows != 4 || parsed.Columns != 4 {
		t.Errorf("geometry mismatch: rows=%d cols=%d", parsed.Rows, parsed.Columns)
	}
	if !bytes.Equal(parsed.PixelData, payload) {
		t.Errorf("pixel data mismatch: got %v want %v", parsed.PixelData, payload)
	}
}

func TestWriteThenParseEncapsulatedRoundTrip(t *testing.T) {
	inst := sampleInstance()
	// Odd-length payload exercises the item-padding path: the fragment
	// item's declared length is always even, so the reader legitimately
	// hands back one trailing zero byte beyond the true payload. Recovering
	// the exact payload length from that point is a codec concern (e.g.
	// jpeg2000's Psot field), not something the generic dataset reader can
	// do on its own.
	payload := []byte{0xFF, 0x4F, 0xFF, 0x51, 0x01, 0x02, 0x03}
	wantPadded := append(append([]byte{}, payload...), 0x00)

	out, err := Write(inst, payload, transfer.JPEG2000Lossless)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	parsed, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed.TransferSyntaxUID != transfer.JPEG2000Lossless {
		t.Errorf("transfer syntax = %s", parsed.TransferSyntaxUID)
	}
	if !parsed.IsEncapsulated() {
		t.Errorf("expected encapsulated transfer syntax")
	}
	if !bytes.Equal(parsed.PixelData, wantPadded) {
		t.Errorf("pixel data mismatch: got %v want %v", parsed.PixelData, wantPadded)
	}
}

func TestWriteUnknownTargetUID(t *testing.T) {
	inst := sampleInstance()
	if _, err := Write(inst, []byte{1}, "9.9.9"); err == nil {
		t.Errorf("expected error for unknown target UID")
	}
}

func TestWriteGeneratesSOPInstanceUIDWhenMissing(t *testing.T) {
	inst := sampleInstance()
	inst.SOPInstanceUID = ""

	out, err := Write(inst, []byte{1, 2}, transfer.ExplicitVRLittleEndian)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	parsed, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed.SOPInstanceUID == "" {
		t.Errorf("expected a generated SOP instance UID")
	}
}
