package epoch

import (
	"testing"
	"time"
)

func TestToUnixMilli(t *testing.T) {
	tests := []struct {
		name  string
		ticks uint64
		want  int64
	}{
		{"unix epoch", uint64(GregorianOffset), 0},
		{"gregorian epoch", 0, -12219292800000},
		{"rfc 9562 vector", 0x1EC9414C232AB00, 1645557742000},
		{"truncates sub-millisecond", uint64(GregorianOffset) + 19999, 1},
		{"truncates toward zero before 1970", uint64(GregorianOffset) - 19999, -1},
		{"ignores bits above 60", 1<<63 | uint64(GregorianOffset), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToUnixMilli(tt.ticks); got != tt.want {
				t.Errorf("ToUnixMilli(%#x) = %d, want %d", tt.ticks, got, tt.want)
			}
		})
	}
}

func TestFromUnixMilli(t *testing.T) {
	for _, ms := range []int64{0, 1, 1645557742000, -12219292800000, 32503680000000} {
		ticks := FromUnixMilli(ms)
		if got := ToUnixMilli(ticks); got != ms {
			t.Errorf("ToUnixMilli(FromUnixMilli(%d)) = %d", ms, got)
		}
	}
	if got := FromUnixMilli(1645557742000); got != 0x1EC9414C232AB00 {
		t.Errorf("FromUnixMilli() = %#x, want %#x", got, uint64(0x1EC9414C232AB00))
	}
}

func TestToTime(t *testing.T) {
	tests := []struct {
		name  string
		ticks uint64
		want  time.Time
	}{
		{"gregorian epoch", 0, time.Date(1582, time.October, 15, 0, 0, 0, 0, time.UTC)},
		{"unix epoch", uint64(GregorianOffset), time.Unix(0, 0).UTC()},
		{"one tick", uint64(GregorianOffset) + 1, time.Unix(0, 100).UTC()},
		{"one tick before unix epoch", uint64(GregorianOffset) - 1, time.Unix(0, -100).UTC()},
		{"rfc 9562 vector", 0x1EC9414C232AB00, time.Date(2022, time.February, 22, 19, 22, 22, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToTime(tt.ticks); !got.Equal(tt.want) {
				t.Errorf("ToTime(%#x) = %v, want %v", tt.ticks, got, tt.want)
			}
		})
	}
}

func TestFromTime(t *testing.T) {
	for _, want := range []time.Time{
		time.Date(1582, time.October, 15, 0, 0, 0, 0, time.UTC),
		time.Date(1969, time.December, 31, 23, 59, 59, 999999900, time.UTC),
		time.Date(2022, time.February, 22, 19, 22, 22, 123456700, time.UTC),
		time.Date(3000, time.January, 1, 0, 0, 0, 0, time.UTC),
	} {
		if got := ToTime(FromTime(want)); !got.Equal(want) {
			t.Errorf("ToTime(FromTime(%v)) = %v", want, got)
		}
	}

	// sub-tick precision is dropped
	in := time.Date(2022, time.February, 22, 19, 22, 22, 199, time.UTC)
	if got := ToTime(FromTime(in)); got.Nanosecond() != 100 {
		t.Errorf("ToTime(FromTime()) nanoseconds = %d, want 100", got.Nanosecond())
	}
}
