package dicom

import (
	"bytes"
	"testing"

	"github.com/cocosip/pixelcodec/transfer"
)

func TestParseTooShort(t *testing.T) {
	if _, err := Parse(make([]byte, 10)); err == nil {
		t.Errorf("expected error for undersized input")
	}
}

func TestParseMissingMagic(t *testing.T) {
	data := make([]byte, headerLen+4)
	if _, err := Parse(data); err == nil {
		t.Errorf("expected error for missing DICM magic")
	}
}

func TestParseRejectsCorruptedMagic(t *testing.T) {
	inst := sampleInstance()
	out, err := Write(inst, []byte{1, 2}, transfer.ExplicitVRLittleEndian)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	// Corrupt the magic to confirm the parser actually checks it.
	out[128] = 'X'
	if _, err := Parse(out); err == nil {
		t.Errorf("expected error for corrupted magic")
	}
}

func TestParseStopsOnUndefinedLengthNonPixelElement(t *testing.T) {
	inst := sampleInstance()
	out, err := Write(inst, []byte{1, 2, 3, 4}, transfer.ExplicitVRLittleEndian)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	// Keep header + file meta group intact, then replace the dataset with
	// a single private SQ element carrying an undefined length.
	headerAndMeta := out[:bytes.Index(out, []byte{0x08, 0x00, 0x16, 0x00})]
	elem := make([]byte, 0, 12)
	elem = append(elem, 0x09, 0x00, 0x00, 0x00) // tag (0009,0000)
	elem = append(elem, []byte("SQ")...)
	elem = append(elem, 0, 0) // reserved
	elem = append(elem, 0xFF, 0xFF, 0xFF, 0xFF) // undefined length
	data := append(append([]byte{}, headerAndMeta...), elem...)

	parsed, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed.TransferSyntaxUID != transfer.ExplicitVRLittleEndian {
		t.Errorf("transfer syntax not recovered: %s", parsed.TransferSyntaxUID)
	}
	if len(parsed.PixelData) != 0 {
		t.Errorf("expected no pixel data parsed, got %v", parsed.PixelData)
	}
}
