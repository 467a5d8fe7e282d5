package dicom

import (
	"encoding/binary"

	"github.com/cocosip/pixelcodec/errors"
)

const (
	preambleLen = 128
	magicLen    = 4
	headerLen   = preambleLen + magicLen
)

var magic = [magicLen]byte{'D', 'I', 'C', 'M'}

// implicitVRDictionary maps the tags this module understands to the VR an
// Implicit VR Little Endian dataset would have used, since implicit-VR
// streams carry no VR bytes of their own. Unlisted tags are treated as UN.
var implicitVRDictionary = map[Tag]VR{
	TagSOPClassUID:                VRUI,
	TagSOPInstanceUID:             VRUI,
	TagModality:                   VRCS,
	TagSamplesPerPixel:            VRUS,
	TagPhotometricInterpretation:  VRCS,
	TagRows:                       VRUS,
	TagColumns:                    VRUS,
	TagBitsAllocated:              VRUS,
	TagBitsStored:                 VRUS,
	TagHighBit:                    VRUS,
	TagPixelRepresentation:        VRUS,
	TagPixelData:                  VROW,
}

// Parse decodes a DICOM Part-10 file into an Instance, per spec §4.4.
//
// The reader is best-effort beyond the elements this module understands:
// an element other than PixelData that carries an undefined length (i.e. a
// sequence this module does not walk) ends dataset parsing early rather
// than aborting, since recovering its true length requires a sequence
// parser this module does not implement.
func Parse(data []byte) (*Instance, error) {
	if len(data) < headerLen {
		return nil, errors.New(errors.InvalidFormat, "file too short: %d bytes", len(data))
	}
	for i := 0; i < magicLen; i++ {
		if data[preambleLen+i] != magic[i] {
			return nil, errors.New(errors.InvalidFormat, "missing DICM magic")
		}
	}

	inst := &Instance{Elements: make(map[Tag]*Element)}
	offset := headerLen

	groupLenElem, n, err := readElement(data, offset, true, false)
	if err != nil {
		return nil, errors.Wrap(errors.DicomParse, err, "reading file meta group length")
	}
	if groupLenElem.Tag != TagFileMetaGroupLength {
		return nil, errors.New(errors.DicomParse, "expected file meta group length, got %s", groupLenElem.Tag)
	}
	offset += n
	groupLength := binary.LittleEndian.Uint32(groupLenElem.Value)
	metaEnd := offset + int(groupLength)
	if metaEnd > len(data) {
		return nil, errors.New(errors.InvalidFormat, "file meta group length exceeds file size")
	}
	inst.Elements[groupLenElem.Tag] = groupLenElem

	for offset < metaEnd {
		elem, n, err := readElement(data, offset, true, false)
		if err != nil {
			return nil, errors.Wrap(errors.DicomParse, err, "reading file meta element")
		}
		offset += n
		inst.Elements[elem.Tag] = elem
		applyMetaElement(inst, elem)
	}

	if inst.TransferSyntaxUID == "" {
		return nil, errors.New(errors.DicomParse, "file meta group missing transfer syntax UID")
	}

	explicit := isExplicitVR(inst.TransferSyntaxUID)
	bigEndian := isBigEndian(inst.TransferSyntaxUID)

	for offset < len(data) {
		elem, n, undefinedNonPixel, err := readDatasetElement(data, offset, explicit, bigEndian)
		if err != nil {
			return nil, errors.Wrap(errors.DicomParse, err, "reading dataset element at offset %d", offset)
		}
		if undefinedNonPixel {
			break
		}
		offset += n
		inst.Elements[elem.Tag] = elem
		applyDatasetElement(inst, elem)
	}

	return inst, nil
}

// applyMetaElement copies a recognized file-meta element into Instance's
// typed fields.
func applyMetaElement(inst *Instance, elem *Element) {
	switch elem.Tag {
	case TagTransferSyntaxUID:
		inst.TransferSyntaxUID = elem.AsString()
	case TagMediaStorageSOPClass:
		if inst.SOPClassUID == "" {
			inst.SOPClassUID = elem.AsString()
		}
	case TagMediaStorageSOPInst:
		if inst.SOPInstanceUID == "" {
			inst.SOPInstanceUID = elem.AsString()
		}
	}
}

// applyDatasetElement copies a recognized dataset element into Instance's
// typed fields.
func applyDatasetElement(inst *Instance, elem *Element) {
	switch elem.Tag {
	case TagSOPClassUID:
		inst.SOPClassUID = elem.AsString()
	case TagSOPInstanceUID:
		inst.SOPInstanceUID = elem.AsString()
	case TagModality:
		inst.Modality = elem.AsString()
	case TagSamplesPerPixel:
		inst.SamplesPerPixel = elem.AsUint16()
	case TagPhotometricInterpretation:
		inst.PhotometricInterpretation = elem.AsString()
	case TagRows:
		inst.Rows = elem.AsUint16()
	case TagColumns:
		inst.Columns = elem.AsUint16()
	case TagBitsAllocated:
		inst.BitsAllocated = elem.AsUint16()
	case TagBitsStored:
		inst.BitsStored = elem.AsUint16()
	case TagHighBit:
		inst.HighBit = elem.AsUint16()
	case TagPixelRepresentation:
		inst.PixelRepresentation = elem.AsUint16()
	case TagPixelData:
		inst.PixelData = elem.Value
	}
}

// readElement reads one element at offset under explicit-VR-LE rules when
// explicit is true (VR bytes present), using bigEndian byte order for the
// tag and length fields. Value bytes are returned as stored, without any
// byte swapping. It returns the element and the number of bytes consumed.
func readElement(data []byte, offset int, explicit, bigEndian bool) (*Element, int, error) {
	order := byteOrder(bigEndian)
	if offset+8 > len(data) {
		return nil, 0, errors.New(errors.InvalidFormat, "truncated element header")
	}
	group := order.Uint16(data[offset:])
	element := order.Uint16(data[offset+2:])
	tag := NewTag(group, element)
	pos := offset + 4

	var vr VR
	var length uint32
	if explicit {
		if pos+2 > len(data) {
			return nil, 0, errors.New(errors.InvalidFormat, "truncated VR")
		}
		vr = VR(data[pos : pos+2])
		pos += 2
		if HasLongLength(vr) {
			pos += 2 // reserved
			if pos+4 > len(data) {
				return nil, 0, errors.New(errors.InvalidFormat, "truncated long length")
			}
			length = order.Uint32(data[pos:])
			pos += 4
		} else {
			if pos+2 > len(data) {
				return nil, 0, errors.New(errors.InvalidFormat, "truncated short length")
			}
			length = uint32(order.Uint16(data[pos:]))
			pos += 2
		}
	} else {
		vr = implicitVRDictionary[tag]
		if vr == "" {
			vr = VRUN
		}
		if pos+4 > len(data) {
			return nil, 0, errors.New(errors.InvalidFormat, "truncated implicit length")
		}
		length = order.Uint32(data[pos:])
		pos += 4
	}

	if length == UndefinedLength {
		return &Element{Tag: tag, VR: vr}, pos - offset, nil
	}
	if pos+int(length) > len(data) {
		return nil, 0, errors.New(errors.InvalidFormat, "element %s value exceeds file size", tag)
	}
	value := data[pos : pos+int(length)]
	pos += int(length)
	return &Element{Tag: tag, VR: vr, Value: value}, pos - offset, nil
}

// readDatasetElement wraps readElement with the encapsulated-PixelData
// special case: an undefined-length PixelData element is a BOT item
// followed by fragment items and a sequence delimiter, all of which this
// function walks and concatenates. An undefined-length element that is not
// PixelData is reported via the undefinedNonPixel return so the caller can
// stop parsing.
func readDatasetElement(data []byte, offset int, explicit, bigEndian bool) (*Element, int, bool, error) {
	order := byteOrder(bigEndian)
	elem, n, err := readElement(data, offset, explicit, bigEndian)
	if err != nil {
		return nil, 0, false, err
	}
	undefinedLength := elem.Value == nil
	if !undefinedLength || elem.Tag != TagPixelData {
		if undefinedLength {
			return nil, 0, true, nil
		}
		return elem, n, false, nil
	}

	// Undefined-length PixelData: walk the item sequence.
	pos := offset + n
	var fragments [][]byte
	for {
		if pos+8 > len(data) {
			return nil, 0, false, errors.New(errors.InvalidFormat, "truncated pixel data item")
		}
		itemGroup := order.Uint16(data[pos:])
		itemElement := order.Uint16(data[pos+2:])
		itemTag := NewTag(itemGroup, itemElement)
		itemLen := order.Uint32(data[pos+4:])
		pos += 8
		if itemTag == TagSequenceDelimiter {
			break
		}
		if itemTag != TagItem {
			return nil, 0, false, errors.New(errors.InvalidFormat, "unexpected tag %s in pixel data sequence", itemTag)
		}
		if pos+int(itemLen) > len(data) {
			return nil, 0, false, errors.New(errors.InvalidFormat, "pixel data item exceeds file size")
		}
		fragments = append(fragments, data[pos:pos+int(itemLen)])
		pos += int(itemLen)
	}

	var payload []byte
	if len(fragments) > 1 {
		for _, f := range fragments[1:] {
			payload = append(payload, f...)
		}
	} else if len(fragments) == 1 {
		payload = fragments[0]
	}
	elem.Value = payload
	return elem, pos - offset, false, nil
}

func byteOrder(bigEndian bool) binary.ByteOrder {
	if bigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}
