package guuid

import "encoding/binary"

// FromBytes creates a UUID from a byte slice of exactly 16 bytes.
func FromBytes(b []byte) (UUID, error) {
	if len(b) != Size {
		return Nil, ErrInvalidLength
	}
	return fromBytes(b), nil
}

// MustFromBytes is like FromBytes but panics on error
func MustFromBytes(b []byte) UUID {
	uuid, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return uuid
}

// FromBytesAt reads the 16 bytes of a UUID starting at offset. The bytes are
// taken as they are: no version or variant check is made.
func FromBytesAt(b []byte, offset int) (UUID, error) {
	if err := checkBuffer(b, offset); err != nil {
		return Nil, err
	}
	return fromBytes(b[offset:]), nil
}

// PutBytes writes the 16 bytes of u into b starting at offset. The buffer is
// left untouched when the error is non-nil.
func (u UUID) PutBytes(b []byte, offset int) error {
	if err := checkBuffer(b, offset); err != nil {
		return err
	}
	binary.BigEndian.PutUint64(b[offset:], u.hi)
	binary.BigEndian.PutUint64(b[offset+8:], u.lo)
	return nil
}

// AppendBytes appends the 16 bytes of u to b and returns the extended slice.
func (u UUID) AppendBytes(b []byte) []byte {
	b = binary.BigEndian.AppendUint64(b, u.hi)
	return binary.BigEndian.AppendUint64(b, u.lo)
}

// Bytes returns the UUID as a newly allocated 16-byte slice
func (u UUID) Bytes() []byte {
	return u.AppendBytes(make([]byte, 0, Size))
}

// fromBytes assumes len(b) >= Size.
func fromBytes(b []byte) UUID {
	return UUID{
		hi: binary.BigEndian.Uint64(b[0:8]),
		lo: binary.BigEndian.Uint64(b[8:16]),
	}
}

func checkBuffer(b []byte, offset int) error {
	switch {
	case b == nil:
		return argumentError("nil buffer")
	case offset < 0:
		return argumentError("offset %d is negative", offset)
	case offset > len(b)-Size:
		return argumentError("offset %d leaves %d of %d bytes needed in a %d-byte buffer",
			offset, max(len(b)-offset, 0), Size, len(b))
	}
	return nil
}
