package guuid

// Version represents the UUID version. Its numeric value is the 4-bit code
// stored in the version field.
type Version byte

const (
	VersionUnknown       Version = iota // Nil UUID only
	VersionTimeBased                    // UUIDv1
	VersionDCESecurity                  // UUIDv2
	VersionNameBasedMD5                 // UUIDv3
	VersionRandom                       // UUIDv4
	VersionNameBasedSHA1                // UUIDv5
	VersionTimeReordered                // UUIDv6
	VersionTimeSorted                   // UUIDv7
	VersionCustom                       // UUIDv8
)

// String returns a short description of the version.
func (v Version) String() string {
	switch v {
	case VersionUnknown:
		return "unknown"
	case VersionTimeBased:
		return "time-based"
	case VersionDCESecurity:
		return "DCE security"
	case VersionNameBasedMD5:
		return "name-based (MD5)"
	case VersionRandom:
		return "random"
	case VersionNameBasedSHA1:
		return "name-based (SHA-1)"
	case VersionTimeReordered:
		return "time-based (reordered)"
	case VersionTimeSorted:
		return "time-based (Unix epoch)"
	case VersionCustom:
		return "custom"
	}
	return "unclassified"
}

// Defined reports whether v is one of the nine version tags above.
func (v Version) Defined() bool {
	return v <= VersionCustom
}

// HasTimestamp reports whether UUIDs of this version embed a timestamp
// that Timestamp can recover.
func (v Version) HasTimestamp() bool {
	return v == VersionTimeBased || v == VersionTimeReordered || v == VersionTimeSorted
}

// Type classifies u by its version nibble. The boolean is false when the
// nibble does not name a version: 9 to 15, or 0 on anything but the Nil
// UUID, which alone reports VersionUnknown. Type never fails.
func (u UUID) Type() (Version, bool) {
	n := versionNibble(u.hi)
	switch {
	case n == 0:
		if u.IsNil() {
			return VersionUnknown, true
		}
		return VersionUnknown, false
	case n <= byte(VersionCustom):
		return Version(n), true
	}
	return VersionUnknown, false
}

// TypeOf is Type for an optional value; a nil pointer is unclassified.
func TypeOf(u *UUID) (Version, bool) {
	if u == nil {
		return VersionUnknown, false
	}
	return u.Type()
}
