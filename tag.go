package guuid

// Construct stamps version v and the RFC variant onto raw bits, for use by
// generators that have already filled hi and lo with timestamp, random or
// hashed content. Only the version nibble and the two variant bits change;
// applying Construct twice with the same v gives the same UUID.
func Construct(v Version, hi, lo uint64) UUID {
	return UUID{hi: InitHigh(hi, v), lo: InitLow(lo)}
}

// ConstructBytes stamps version v and the RFC variant onto the 16 bytes of b
// in place and returns the resulting UUID. b must be exactly 16 bytes long.
func ConstructBytes(v Version, b []byte) (UUID, error) {
	if len(b) != Size {
		return Nil, ErrInvalidLength
	}
	b[OffsetType] = b[OffsetType]&0x0F | byte(v)<<4
	b[OffsetVariant] = b[OffsetVariant]&0x3F | 0x80
	return fromBytes(b), nil
}

// InitHigh writes the version nibble of v into the high half.
func InitHigh(hi uint64, v Version) uint64 {
	return setVersion(hi, byte(v))
}

// InitLow sets the two most significant bits of the low half to '10'.
func InitLow(lo uint64) uint64 {
	return setVariant(lo)
}
