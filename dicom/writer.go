package dicom

import (
	"encoding/binary"

	"github.com/cocosip/pixelcodec/errors"
	"github.com/cocosip/pixelcodec/transfer"
)

// Write serializes a DICOM Part-10 file carrying encodedPixelData under
// targetUID as its transfer syntax, per spec §4.5. The dataset this
// function emits is the minimal set of attributes this module tracks:
// SOP class/instance, modality, and the image-geometry group, followed by
// the PixelData element.
//
// When targetUID names one of the three native syntaxes (Implicit VR LE,
// Explicit VR LE, Explicit VR BE), PixelData is written as a single
// defined-length value, matching encodedPixelData's own framing. Any other
// targetUID is a compressed family and PixelData is written encapsulated:
// an empty Basic Offset Table item, one fragment item, and a sequence
// delimiter.
func Write(inst *Instance, encodedPixelData []byte, targetUID string) ([]byte, error) {
	if inst == nil {
		return nil, errors.New(errors.Configuration, "nil instance")
	}
	if !transfer.Known(targetUID) {
		return nil, errors.UnsupportedSyntax(targetUID)
	}

	effective := *inst
	if effective.SOPInstanceUID == "" {
		effective.SOPInstanceUID = NewSOPInstanceUID()
	}

	meta := encodeElements(true, false, []*Element{
		{Tag: TagFileMetaInfoVersion, VR: VROB, Value: []byte{0x00, 0x01}},
		{Tag: TagMediaStorageSOPClass, VR: VRUI, Value: padEven([]byte(effective.SOPClassUID), 0)},
		{Tag: TagMediaStorageSOPInst, VR: VRUI, Value: padEven([]byte(effective.SOPInstanceUID), 0)},
		{Tag: TagTransferSyntaxUID, VR: VRUI, Value: padEven([]byte(targetUID), 0)},
		{Tag: TagImplementationClassUID, VR: VRUI, Value: padEven([]byte(ImplementationClassUID), 0)},
		{Tag: TagImplementationVersion, VR: VRSH, Value: padEven([]byte(ImplementationVersionName), 0)},
	})

	groupLength := make([]byte, 4)
	binary.LittleEndian.PutUint32(groupLength, uint32(len(meta)))
	groupLengthElem := encodeElements(true, false, []*Element{
		{Tag: TagFileMetaGroupLength, VR: VRUL, Value: groupLength},
	})

	dataset := encodeDatasetElements(&effective, targetUID)
	var pixelData []byte
	if isNativeTransferSyntax(targetUID) {
		pixelData = encodeElements(isExplicitVR(targetUID), isBigEndian(targetUID), []*Element{
			{Tag: TagPixelData, VR: VROW, Value: encodedPixelData},
		})
	} else {
		pixelData = encodeEncapsulatedPixelData(encodedPixelData)
	}

	out := make([]byte, preambleLen)
	out = append(out, magic[:]...)
	out = append(out, groupLengthElem...)
	out = append(out, meta...)
	out = append(out, dataset...)
	out = append(out, pixelData...)
	return out, nil
}

func encodeDatasetElements(inst *Instance, targetUID string) []byte {
	elems := []*Element{
		{Tag: TagSOPClassUID, VR: VRUI, Value: padEven([]byte(inst.SOPClassUID), 0)},
		{Tag: TagSOPInstanceUID, VR: VRUI, Value: padEven([]byte(inst.SOPInstanceUID), 0)},
		{Tag: TagModality, VR: VRCS, Value: padEven([]byte(inst.Modality), ' ')},
		{Tag: TagSamplesPerPixel, VR: VRUS, Value: uint16Bytes(inst.SamplesPerPixel)},
		{Tag: TagPhotometricInterpretation, VR: VRCS, Value: padEven([]byte(inst.PhotometricInterpretation), ' ')},
		{Tag: TagRows, VR: VRUS, Value: uint16Bytes(inst.Rows)},
		{Tag: TagColumns, VR: VRUS, Value: uint16Bytes(inst.Columns)},
		{Tag: TagBitsAllocated, VR: VRUS, Value: uint16Bytes(inst.BitsAllocated)},
		{Tag: TagBitsStored, VR: VRUS, Value: uint16Bytes(inst.BitsStored)},
		{Tag: TagHighBit, VR: VRUS, Value: uint16Bytes(inst.HighBit)},
		{Tag: TagPixelRepresentation, VR: VRUS, Value: uint16Bytes(inst.PixelRepresentation)},
	}
	return encodeElements(isExplicitVR(targetUID), isBigEndian(targetUID), elems)
}

// encodeElements serializes elems with explicit or implicit VR, and
// little- or big-endian tag and length fields, per the flags, for use in the
// file meta group and dataset. Values are written as given.
func encodeElements(explicit, bigEndian bool, elems []*Element) []byte {
	order := byteOrder(bigEndian)
	var out []byte
	for _, e := range elems {
		value := padEven(e.Value, 0)
		head := make([]byte, 4)
		order.PutUint16(head[0:], e.Tag.Group())
		order.PutUint16(head[2:], e.Tag.Element())
		out = append(out, head...)
		if explicit {
			out = append(out, []byte(e.VR)...)
			if HasLongLength(e.VR) {
				out = append(out, 0, 0)
				length := make([]byte, 4)
				order.PutUint32(length, uint32(len(value)))
				out = append(out, length...)
			} else {
				length := make([]byte, 2)
				order.PutUint16(length, uint16(len(value)))
				out = append(out, length...)
			}
		} else {
			length := make([]byte, 4)
			order.PutUint32(length, uint32(len(value)))
			out = append(out, length...)
		}
		out = append(out, value...)
	}
	return out
}

// encodeEncapsulatedPixelData wraps payload as an undefined-length
// PixelData element: an empty Basic Offset Table item, one fragment item
// carrying payload, and a sequence delimiter item. A fragment's declared
// item length is always even (itemBytes pads the value, per spec §4.5), so
// an odd-length bitstream picks up one trailing zero byte on the wire; a
// codec whose framing depends on knowing the exact payload length (rather
// than scanning from the end of the buffer) must carry that length inside
// its own bitstream, the way jpeg2000's SOT segment carries Psot.
func encodeEncapsulatedPixelData(payload []byte) []byte {
	order := binary.LittleEndian
	var out []byte

	head := make([]byte, 4)
	order.PutUint16(head[0:], TagPixelData.Group())
	order.PutUint16(head[2:], TagPixelData.Element())
	out = append(out, head...)
	out = append(out, []byte(VROB)...)
	out = append(out, 0, 0)
	lengthField := make([]byte, 4)
	order.PutUint32(lengthField, UndefinedLength)
	out = append(out, lengthField...)

	out = append(out, itemBytes(nil)...)
	out = append(out, itemBytes(payload)...)

	delimiter := make([]byte, 8)
	order.PutUint16(delimiter[0:], TagSequenceDelimiter.Group())
	order.PutUint16(delimiter[2:], TagSequenceDelimiter.Element())
	order.PutUint32(delimiter[4:], 0)
	out = append(out, delimiter...)

	return out
}

func itemBytes(value []byte) []byte {
	order := binary.LittleEndian
	padded := padEven(value, 0)
	item := make([]byte, 8)
	order.PutUint16(item[0:], TagItem.Group())
	order.PutUint16(item[2:], TagItem.Element())
	order.PutUint32(item[4:], uint32(len(padded)))
	return append(item, padded...)
}

func uint16Bytes(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}
