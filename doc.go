// Package guuid encodes, decodes and classifies Universally Unique
// Identifiers as laid out by RFC 9562.
//
// A UUID is held as two 64-bit halves. The package converts between that
// value, the canonical 36-character string and the 16-byte binary form,
// reads the version and variant fields, and recovers the timestamp embedded
// in time-based UUIDs:
//   - version 1: 60-bit Gregorian tick count, fields stored low-to-high
//   - version 6: the same tick count stored high-to-low, so it sorts by time
//   - version 7: 48-bit Unix milliseconds
//
// It does not generate UUIDs. Generators fill the bits themselves and call
// Construct (or ConstructBytes) to stamp the version and variant.
//
// Basic Usage:
//
//	// Parse a UUID from string
//	id, err := guuid.Parse("017f22e2-79b0-7cc3-98c4-dc0c0c07398f")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Classify it and read its timestamp
//	if v, ok := id.Type(); ok && v.HasTimestamp() {
//	    fmt.Println(v, id.Timestamp(), id.Time())
//	}
//
//	// Binary form, at an offset inside a larger buffer
//	buf := make([]byte, 32)
//	if err := id.PutBytes(buf, 8); err != nil {
//	    log.Fatal(err)
//	}
//	same, _ := guuid.FromBytesAt(buf, 8)
//
// Errors:
//
// Malformed strings fail with a *FormatError that wraps ErrInvalidFormat
// and names the offending index and character. Bad buffers, offsets and
// version tags fail with errors wrapping ErrInvalidArgument. Classification
// never fails: values whose version nibble names no version report false.
//
// Thread Safety:
//
// Every function is pure and UUID is an immutable value, so all operations
// may be used from multiple goroutines without synchronization.
//
// Gregorian tick conversion lives in the epoch sub-package.
package guuid
