// Package errors defines the closed failure taxonomy returned by every
// fallible operation in this module. Callers switch on Kind, never on
// message text.
package errors

import "fmt"

// Kind identifies the category of a failure.
type Kind int

const (
	// DicomParse indicates the reader could not make sense of the input bytes.
	DicomParse Kind = iota
	// UnsupportedTransferSyntax indicates a transfer-syntax UID this module does not know.
	UnsupportedTransferSyntax
	// CodecFailure indicates a codec encode/decode step failed.
	CodecFailure
	// InvalidFormat indicates the input is not a Part-10 DICOM file.
	InvalidFormat
	// ImageData indicates the pixel buffer does not match its declared attributes.
	ImageData
	// Configuration indicates a CompressionConfig value is internally inconsistent.
	Configuration
	// Validation indicates a request was rejected by modality/quality policy.
	Validation
	// CompressionConstraint indicates a codec cannot satisfy a requested constraint.
	CompressionConstraint
	// Pipeline indicates the orchestrator could not complete compress/decompress.
	Pipeline
)

// String returns the taxonomy name, used in Error() and useful in tests.
func (k Kind) String() string {
	switch k {
	case DicomParse:
		return "DicomParse"
	case UnsupportedTransferSyntax:
		return "UnsupportedTransferSyntax"
	case CodecFailure:
		return "CodecFailure"
	case InvalidFormat:
		return "InvalidFormat"
	case ImageData:
		return "ImageData"
	case Configuration:
		return "Configuration"
	case Validation:
		return "Validation"
	case CompressionConstraint:
		return "CompressionConstraint"
	case Pipeline:
		return "Pipeline"
	default:
		return "Unknown"
	}
}

// Error is the single error type returned by this module's public API.
// Kind carries the taxonomy; UID is populated only for
// UnsupportedTransferSyntax; Err wraps an underlying cause when one exists.
type Error struct {
	Kind    Kind
	Message string
	UID     string
	Err     error
}

func (e *Error) Error() string {
	if e.UID != "" {
		return fmt.Sprintf("%s: %s (uid=%s)", e.Kind, e.Message, e.UID)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error of the given kind that wraps an underlying cause.
func Wrap(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// UnsupportedSyntax builds an UnsupportedTransferSyntax error carrying the offending UID.
func UnsupportedSyntax(uid string) *Error {
	return &Error{Kind: UnsupportedTransferSyntax, Message: "transfer syntax not recognized", UID: uid}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
