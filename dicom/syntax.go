package dicom

import "github.com/cocosip/pixelcodec/transfer"

// nativeTransferSyntaxes store pixel data as a single contiguous value
// rather than an encapsulated item sequence.
var nativeTransferSyntaxes = map[string]bool{
	transfer.ImplicitVRLittleEndian: true,
	transfer.ExplicitVRLittleEndian: true,
	transfer.ExplicitVRBigEndian:    true,
}

func isNativeTransferSyntax(uid string) bool {
	return nativeTransferSyntaxes[uid]
}

// isExplicitVR reports whether uid uses the explicit-VR dataset encoding.
// Implicit VR Little Endian is the one recognized syntax that does not.
func isExplicitVR(uid string) bool {
	return uid != transfer.ImplicitVRLittleEndian
}

// isBigEndian reports whether uid orders multi-byte values big-endian.
func isBigEndian(uid string) bool {
	return uid == transfer.ExplicitVRBigEndian
}
