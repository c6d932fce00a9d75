package guuid

import (
	"encoding/base64"
	"encoding/hex"
)

// EncodeToHex encodes the UUID to a hexadecimal string without hyphens
func (u UUID) EncodeToHex() string {
	return hex.EncodeToString(u.Bytes())
}

// EncodeToBase64 encodes the UUID to a base64 string (URL-safe, no padding)
func (u UUID) EncodeToBase64() string {
	return base64.RawURLEncoding.EncodeToString(u.Bytes())
}

// EncodeToBase64Std encodes the UUID to a standard base64 string
func (u UUID) EncodeToBase64Std() string {
	return base64.StdEncoding.EncodeToString(u.Bytes())
}

// DecodeFromHex decodes a hexadecimal string to UUID
func DecodeFromHex(s string) (UUID, error) {
	var b [Size]byte
	if len(s) != 2*Size {
		return Nil, ErrInvalidFormat
	}
	if _, err := hex.Decode(b[:], []byte(s)); err != nil {
		return Nil, ErrInvalidFormat
	}
	return fromBytes(b[:]), nil
}

// DecodeFromBase64 decodes a base64 string to UUID (URL-safe encoding)
func DecodeFromBase64(s string) (UUID, error) {
	return decodeBase64(base64.RawURLEncoding, s)
}

// DecodeFromBase64Std decodes a standard base64 string to UUID
func DecodeFromBase64Std(s string) (UUID, error) {
	return decodeBase64(base64.StdEncoding, s)
}

func decodeBase64(enc *base64.Encoding, s string) (UUID, error) {
	data, err := enc.DecodeString(s)
	if err != nil {
		return Nil, ErrInvalidFormat
	}
	return FromBytes(data)
}
