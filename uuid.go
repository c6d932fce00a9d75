package guuid

import (
	"database/sql/driver"
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// UUID represents a Universally Unique Identifier as defined by RFC 4122 and RFC 9562.
// The 128 bits are held as two big-endian halves: hi carries bytes 0-7
// (time_low, time_mid, time_hi_and_version) and lo carries bytes 8-15
// (clock_seq_and_variant, node).
//
// UUID is a comparable value type; the zero value is the Nil UUID.
type UUID struct {
	hi uint64
	lo uint64
}

// Variant represents the UUID variant
type Variant byte

const (
	VariantNCS Variant = iota
	VariantRFC4122
	VariantMicrosoft
	VariantFuture
)

var (
	// Nil is the nil UUID (all zeros)
	Nil = UUID{}

	// Max is the max UUID (all ones), RFC 9562 section 5.10.
	Max = UUID{hi: ^uint64(0), lo: ^uint64(0)}
)

// FromHalves builds a UUID from its most and least significant 64 bits.
func FromHalves(hi, lo uint64) UUID {
	return UUID{hi: hi, lo: lo}
}

// High returns the most significant 64 bits.
func (u UUID) High() uint64 {
	return u.hi
}

// Low returns the least significant 64 bits.
func (u UUID) Low() uint64 {
	return u.lo
}

// Version returns the raw version nibble of the UUID without classifying it.
// Use Type to find out whether the nibble names a defined version.
func (u UUID) Version() Version {
	return Version(versionNibble(u.hi))
}

// Variant returns the variant of the UUID
func (u UUID) Variant() Variant {
	b := byte(u.lo >> 56)
	switch {
	case (b & 0x80) == 0x00:
		return VariantNCS
	case (b & 0xc0) == 0x80:
		return VariantRFC4122
	case (b & 0xe0) == 0xc0:
		return VariantMicrosoft
	default:
		return VariantFuture
	}
}

func (v Variant) String() string {
	switch v {
	case VariantNCS:
		return "NCS"
	case VariantRFC4122:
		return "RFC4122"
	case VariantMicrosoft:
		return "Microsoft"
	default:
		return "Future"
	}
}

// String returns the canonical string representation of the UUID
// in the format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (u UUID) String() string {
	var buf [36]byte
	encodeHex(buf[:], u)
	return string(buf[:])
}

// encodeHex encodes UUID to its canonical hex representation
func encodeHex(dst []byte, u UUID) {
	var b [Size]byte
	binary.BigEndian.PutUint64(b[0:8], u.hi)
	binary.BigEndian.PutUint64(b[8:16], u.lo)

	hex.Encode(dst[0:8], b[0:4])
	dst[8] = '-'
	hex.Encode(dst[9:13], b[4:6])
	dst[13] = '-'
	hex.Encode(dst[14:18], b[6:8])
	dst[18] = '-'
	hex.Encode(dst[19:23], b[8:10])
	dst[23] = '-'
	hex.Encode(dst[24:36], b[10:16])
}

// IsNil returns true if the UUID is the nil UUID (all zeros)
func (u UUID) IsNil() bool {
	return u == Nil
}

// IsMax returns true if every bit of the UUID is set.
func (u UUID) IsMax() bool {
	return u == Max
}

// Validate reports whether u is an RFC 9562 UUID: the variant bits must be
// '10' and the version nibble must name a defined version. The Nil and Max
// UUIDs are special values and always valid.
func (u UUID) Validate() error {
	if u.IsNil() || u.IsMax() {
		return nil
	}
	if u.Variant() != VariantRFC4122 {
		return ErrInvalidVariant
	}
	if _, ok := u.Type(); !ok {
		return fmt.Errorf("%w: version nibble %d", ErrInvalidVersion, versionNibble(u.hi))
	}
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface
func (u UUID) MarshalText() ([]byte, error) {
	var buf [36]byte
	encodeHex(buf[:], u)
	return buf[:], nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
func (u *UUID) UnmarshalText(data []byte) error {
	id, err := ParseBytes(data)
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (u UUID) MarshalBinary() ([]byte, error) {
	return u.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (u *UUID) UnmarshalBinary(data []byte) error {
	id, err := FromBytes(data)
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// Scan implements the sql.Scanner interface for database compatibility
func (u *UUID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		id, err := Parse(src)
		if err != nil {
			return err
		}
		*u = id
		return nil
	case []byte:
		if len(src) == Size {
			*u = fromBytes(src)
			return nil
		}
		if len(src) == 0 {
			return nil
		}
		id, err := ParseBytes(src)
		if err != nil {
			return err
		}
		*u = id
		return nil
	default:
		return fmt.Errorf("guuid: cannot scan type %T into UUID", src)
	}
}

// Value implements the driver.Valuer interface for database compatibility
func (u UUID) Value() (driver.Value, error) {
	return u.String(), nil
}

// Compare returns an integer comparing two UUIDs lexicographically.
// The result will be 0 if u==other, -1 if u < other, and +1 if u > other.
func (u UUID) Compare(other UUID) int {
	switch {
	case u.hi < other.hi:
		return -1
	case u.hi > other.hi:
		return 1
	case u.lo < other.lo:
		return -1
	case u.lo > other.lo:
		return 1
	}
	return 0
}

// Equal returns true if u and other represent the same UUID
func (u UUID) Equal(other UUID) bool {
	return u == other
}
