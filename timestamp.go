package guuid

import (
	"time"

	"github.com/Lzww0608/guuid/v2/epoch"
)

// Timestamp extracts the Unix timestamp (in milliseconds) embedded in a
// version 1, 6 or 7 UUID. It returns 0 for every other version and for
// values that cannot be classified.
func (u UUID) Timestamp() int64 {
	v, ok := u.Type()
	if !ok {
		return 0
	}
	ms, _ := ExtractTimestamp(v, u)
	return ms
}

// ExtractTimestamp returns the Unix timestamp in milliseconds that u carries
// when read as a UUID of version v. Gregorian tick counts (v1, v6) are
// truncated to the millisecond. Versions without a timestamp give 0.
//
// v is trusted: no check is made that it matches the version nibble of u.
// A v outside the defined versions is an argument error.
func ExtractTimestamp(v Version, u UUID) (int64, error) {
	switch v {
	case VersionUnknown, VersionDCESecurity, VersionNameBasedMD5,
		VersionRandom, VersionNameBasedSHA1, VersionCustom:
		return 0, nil
	case VersionTimeBased:
		return epoch.ToUnixMilli(rawTimestampV1(u.hi)), nil
	case VersionTimeReordered:
		return epoch.ToUnixMilli(rawTimestampV6(u.hi)), nil
	case VersionTimeSorted:
		return int64(rawTimestampV7(u.hi)), nil
	}
	return 0, argumentError("unexpected version %d", byte(v))
}

// RawTimestamp returns the timestamp field as stored: 100 ns ticks since
// 1582-10-15 for versions 1 and 6, Unix milliseconds for version 7, and 0
// for anything else.
func (u UUID) RawTimestamp() uint64 {
	switch u.Version() {
	case VersionTimeBased:
		return rawTimestampV1(u.hi)
	case VersionTimeReordered:
		return rawTimestampV6(u.hi)
	case VersionTimeSorted:
		return rawTimestampV7(u.hi)
	}
	return 0
}

// Time returns the embedded timestamp of a version 1, 6 or 7 UUID.
// Versions 1 and 6 keep their 100 ns precision. Other versions return the
// zero time.
func (u UUID) Time() time.Time {
	switch u.Version() {
	case VersionTimeBased:
		return epoch.ToTime(rawTimestampV1(u.hi))
	case VersionTimeReordered:
		return epoch.ToTime(rawTimestampV6(u.hi))
	case VersionTimeSorted:
		return time.UnixMilli(int64(rawTimestampV7(u.hi))).UTC()
	}
	return time.Time{}
}

// rawTimestampV1 reassembles time_hi(12) | time_mid(16) | time_low(32)
// from the v1 layout time_low | time_mid | version | time_hi.
func rawTimestampV1(hi uint64) uint64 {
	hi = clearVersion(hi)
	timeLow := hi >> 32
	timeMid := (hi >> 16) & 0xFFFF
	timeHigh := hi & 0x0FFF
	return timeHigh<<48 | timeMid<<32 | timeLow
}

// rawTimestampV6 reads the v6 layout time_high(32) | time_mid(16) |
// version | time_low(12), which is already in tick order.
func rawTimestampV6(hi uint64) uint64 {
	hi = clearVersion(hi)
	timeHigh := hi >> 32
	timeMid := (hi >> 16) & 0xFFFF
	timeLow := hi & 0x0FFF
	return timeHigh<<28 | timeMid<<12 | timeLow
}

// rawTimestampV7 returns unix_ts_ms, the top 48 bits.
func rawTimestampV7(hi uint64) uint64 {
	return clearVersion(hi) >> 16
}
