package qrstl

import "errors"

var (
	ErrEncoding      = errors.New("encoding failed")
	ErrSerialization = errors.New("serialization failed")
)

// EncodingError reports input the QR encoder refused, typically a payload
// larger than the code can hold at the configured error correction level.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string { return "encoding failed: " + e.Err.Error() }

func (e *EncodingError) Unwrap() []error { return []error{ErrEncoding, e.Err} }

// SerializationError reports a failure writing or reading a mesh file.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string { return "serialization failed: " + e.Err.Error() }

func (e *SerializationError) Unwrap() []error { return []error{ErrSerialization, e.Err} }
