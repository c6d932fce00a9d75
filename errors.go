package guuid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat indicates that the UUID string format is invalid
	ErrInvalidFormat = errors.New("guuid: invalid UUID format")

	// ErrInvalidLength indicates that the UUID byte slice has incorrect length
	ErrInvalidLength = errors.New("guuid: invalid UUID length (expected 16 bytes)")

	// ErrInvalidArgument indicates a buffer, offset or version tag that the
	// called operation cannot work with. Nothing has been read or written.
	ErrInvalidArgument = errors.New("guuid: invalid argument")

	// ErrInvalidVersion indicates that the UUID version is not supported
	ErrInvalidVersion = errors.New("guuid: invalid or unsupported UUID version")

	// ErrInvalidVariant indicates that the UUID variant is not RFC 4122
	ErrInvalidVariant = errors.New("guuid: invalid UUID variant (expected RFC 4122)")
)

// FormatError describes why a string is not a canonical UUID.
//
// Index is the position of the offending character in Input and Char the
// character found there. For a length mismatch Index is the first position
// past the valid range and Char is 0 when the input ended early.
type FormatError struct {
	Input  string
	Index  int
	Char   rune
	Reason string
}

func (e *FormatError) Error() string {
	if e.Char == 0 {
		return fmt.Sprintf("%v: %s at #%d", ErrInvalidFormat, e.Reason, e.Index)
	}
	return fmt.Sprintf("%v: %s at #%d: %q (value 0x%x)", ErrInvalidFormat, e.Reason, e.Index, e.Char, e.Char)
}

// Unwrap allows errors.Is(err, ErrInvalidFormat).
func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}

// argumentError wraps ErrInvalidArgument with the offending detail.
func argumentError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidArgument}, args...)...)
}
