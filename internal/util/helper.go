package util

import (
	"encoding/hex"
	"strings"
	"unicode"
)

// CloneSlice clones slice with cloneSize.
// This function will use src length as the clone size if cloneSize is 0.
func CloneSlice[T any](src []T, cloneSize int) []T {
	if cloneSize == 0 {
		cloneSize = len(src)
	}
	clone := make([]T, cloneSize)
	copy(clone, src)

	return clone
}

// DecodeHex decodes a hexadecimal dump such as "41 03 61 62 63" or "0x410361".
// Whitespace, commas and "0x" prefixes are ignored.
func DecodeHex(s string) ([]byte, error) {
	s = strings.ReplaceAll(s, "0x", "")
	s = strings.ReplaceAll(s, "0X", "")
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == ',' {
			return -1
		}
		return r
	}, s)

	return hex.DecodeString(s)
}

// EncodeHex formats data as space separated upper-case hex bytes.
func EncodeHex(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data) * 3)

	const digits = "0123456789ABCDEF"
	for i, b := range data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(digits[b>>4])
		sb.WriteByte(digits[b&0x0F])
	}

	return sb.String()
}
