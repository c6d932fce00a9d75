// Package epoch converts between the Gregorian tick count embedded in
// version 1 and version 6 UUIDs and Unix time.
//
// A tick is 100 nanoseconds; tick zero is 1582-10-15T00:00:00Z, the start of
// the Gregorian calendar.
package epoch

import "time"

const (
	// GregorianOffset is the number of ticks between 1582-10-15 and 1970-01-01.
	GregorianOffset int64 = 0x01B21DD213814000

	// TicksPerMilli is the number of 100 ns ticks in a millisecond.
	TicksPerMilli = 10000

	ticksPerSecond = 10000000
	nanosPerTick   = 100

	// MaxTicks is the largest tick count a 60-bit timestamp field can hold.
	MaxTicks uint64 = 1<<60 - 1
)

// ToUnixMilli converts a Gregorian tick count to Unix milliseconds,
// truncating toward zero. Counts before 1970 give negative results.
func ToUnixMilli(ticks uint64) int64 {
	return (int64(ticks&MaxTicks) - GregorianOffset) / TicksPerMilli
}

// FromUnixMilli converts Unix milliseconds to a Gregorian tick count.
func FromUnixMilli(ms int64) uint64 {
	return uint64(ms*TicksPerMilli+GregorianOffset) & MaxTicks
}

// ToTime converts a Gregorian tick count to a UTC time at full tick precision.
func ToTime(ticks uint64) time.Time {
	d := int64(ticks&MaxTicks) - GregorianOffset
	return time.Unix(d/ticksPerSecond, (d%ticksPerSecond)*nanosPerTick).UTC()
}

// FromTime converts t to a Gregorian tick count, dropping sub-tick precision.
func FromTime(t time.Time) uint64 {
	d := t.Unix()*ticksPerSecond + int64(t.Nanosecond()/nanosPerTick)
	return uint64(d+GregorianOffset) & MaxTicks
}
