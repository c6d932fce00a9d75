package guuid

import (
	"fmt"
	"unicode/utf8"
)

// canonicalLen is the length of xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx.
const canonicalLen = 36

// isHyphenPos reports whether index i of a canonical string must hold '-'.
func isHyphenPos(i int) bool {
	return i == 8 || i == 13 || i == 18 || i == 23
}

// Parse parses a UUID from its canonical 36-character representation
// (xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx). Hex digits may be upper or lower
// case. Any other form, including URN prefixes, braces and hyphen-less hex,
// is rejected; see DecodeFromHex for the latter.
//
// On failure the returned error is a *FormatError and the UUID is Nil.
func Parse(s string) (UUID, error) {
	return parseCanonical(s)
}

// ParseBytes is like Parse but takes a byte slice. A nil slice is a format
// error.
func ParseBytes(b []byte) (UUID, error) {
	if b == nil {
		return Nil, &FormatError{Reason: "nil input"}
	}
	return parseCanonical(b)
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) UUID {
	uuid, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("guuid: Parse(%q): %v", s, err))
	}
	return uuid
}

// parseCanonical walks the input once. Characters are checked before the
// length: a short string with a misplaced hyphen reports the hyphen.
func parseCanonical[T string | []byte](s T) (UUID, error) {
	var hi, lo uint64
	n := len(s)
	if n > canonicalLen {
		n = canonicalLen
	}

	j := 0 // decoded byte count
	for i := 0; i < n; {
		if isHyphenPos(i) {
			if s[i] != '-' {
				return Nil, formatError(s, i, "expected '-'")
			}
			i++
			continue
		}
		if i+1 >= n {
			// odd tail: validate the last digit, then let the length check report
			if _, ok := fromHexChar(s[i]); !ok {
				return Nil, hexError(s, i)
			}
			break
		}
		h, ok := fromHexChar(s[i])
		if !ok {
			return Nil, hexError(s, i)
		}
		l, ok := fromHexChar(s[i+1])
		if !ok {
			return Nil, hexError(s, i+1)
		}
		b := uint64(h<<4 | l)
		if j < 8 {
			hi = hi<<8 | b
		} else {
			lo = lo<<8 | b
		}
		j++
		i += 2
	}

	if len(s) != canonicalLen {
		e := &FormatError{
			Input:  string(s),
			Index:  n,
			Reason: fmt.Sprintf("length %d, expected %d", len(s), canonicalLen),
		}
		if len(s) > canonicalLen {
			e.Char, _ = utf8.DecodeRuneInString(e.Input[canonicalLen:])
		}
		return Nil, e
	}
	return UUID{hi: hi, lo: lo}, nil
}

func formatError[T string | []byte](s T, i int, reason string) *FormatError {
	input := string(s)
	c, _ := utf8.DecodeRuneInString(input[i:])
	return &FormatError{Input: input, Index: i, Char: c, Reason: reason}
}

// hexError reports a character that failed the hex check. A hyphen there
// sits in a digit position.
func hexError[T string | []byte](s T, i int) *FormatError {
	if s[i] == '-' {
		return formatError(s, i, "misplaced '-'")
	}
	return formatError(s, i, "non-hex character")
}

// fromHexChar converts a hex character into its value and a success flag.
func fromHexChar(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
