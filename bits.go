package guuid

// Byte offsets of the RFC 9562 fields within the 16-byte layout.
// Clock-high shares its byte with the version and the clock sequence
// shares its byte with the variant.
const (
	OffsetClockLow      = 0
	OffsetClockMid      = 4
	OffsetClockHigh     = 6
	OffsetType          = 6
	OffsetClockSequence = 8
	OffsetVariant       = 8
)

// Size is the length of a UUID in its binary form.
const Size = 16

const (
	versionShift = 12
	versionMask  = uint64(0xF) << versionShift // bits 12-15 of the high half

	variantShift = 62
	variantMask  = uint64(0x3) << variantShift // bits 62-63 of the low half
	variantRFC   = uint64(0x2) << variantShift // '10'
)

// versionNibble returns the 4-bit version field of the high half.
func versionNibble(hi uint64) byte {
	return byte((hi & versionMask) >> versionShift)
}

// clearVersion zeroes the version field, leaving the timestamp bits.
func clearVersion(hi uint64) uint64 {
	return hi &^ versionMask
}

// setVersion overwrites the version field with the low 4 bits of code.
func setVersion(hi uint64, code byte) uint64 {
	return clearVersion(hi) | uint64(code&0xF)<<versionShift
}

// setVariant overwrites the two variant bits with '10'.
func setVariant(lo uint64) uint64 {
	return lo&^variantMask | variantRFC
}
