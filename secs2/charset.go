package secs2

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// Charset is a single-byte character encoding used by text items.
//
// Every character maps to exactly one byte, so the character count of a string
// equals the byte length of its encoding.
type Charset interface {
	// Name returns the name of the character set.
	Name() string
	// Count returns the number of characters of s, or an error if any character
	// cannot be represented.
	Count(s string) (int, error)
	// Encode writes the encoding of s into dst and returns the number of bytes written.
	// dst must be at least Count(s) bytes long.
	Encode(dst []byte, s string) (int, error)
	// Decode converts encoded bytes back to a string.
	Decode(b []byte) (string, error)
}

var (
	// ASCII is the 7-bit US-ASCII character set used by A items.
	ASCII Charset = asciiCharset{}
	// JIS8 is the JIS X 0201 character set used by J items: ASCII-compatible
	// roman characters plus half-width katakana at 0xA1-0xDF.
	JIS8 Charset = jis8Charset{}
)

func charsetOf(f Format) (Charset, bool) {
	switch f { //nolint:exhaustive
	case FormatASCII:
		return ASCII, true
	case FormatJIS8:
		return JIS8, true
	default:
		return nil, false
	}
}

type asciiCharset struct{}

func (asciiCharset) Name() string { return "ASCII" }

func (asciiCharset) Count(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			r, _ := utf8.DecodeRuneInString(s[i:])
			return 0, fmt.Errorf("%w: non-ASCII character %q at byte %d", ErrInvalidText, r, i)
		}
	}

	return len(s), nil
}

func (c asciiCharset) Encode(dst []byte, s string) (int, error) {
	n, err := c.Count(s)
	if err != nil {
		return 0, err
	}
	if len(dst) < n {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrSizeLimit, n, len(dst))
	}

	return copy(dst, s), nil
}

func (asciiCharset) Decode(b []byte) (string, error) {
	for i, ch := range b {
		if ch >= utf8.RuneSelf {
			return "", fmt.Errorf("%w: non-ASCII byte 0x%02X at %d", ErrInvalidText, ch, i)
		}
	}

	return string(b), nil
}

type jis8Charset struct{}

func (jis8Charset) Name() string { return "JIS-8" }

func (c jis8Charset) Count(s string) (int, error) {
	if !utf8.ValidString(s) {
		return 0, fmt.Errorf("%w: invalid UTF-8", ErrInvalidText)
	}

	count := 0
	for _, r := range s {
		if !isJIS8Rune(r) {
			return 0, fmt.Errorf("%w: %q is not a JIS-8 character", ErrInvalidText, r)
		}
		count++
	}

	return count, nil
}

// Encode runs the Shift_JIS encoder into a destination sized for single-byte
// output only, so any double-byte character fails with a short buffer.
func (c jis8Charset) Encode(dst []byte, s string) (int, error) {
	n, err := c.Count(s)
	if err != nil {
		return 0, err
	}
	if len(dst) < n {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrSizeLimit, n, len(dst))
	}

	nDst, nSrc, err := japanese.ShiftJIS.NewEncoder().Transform(dst[:n], []byte(s), true)
	if err != nil || nDst != n || nSrc != len(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidText, s)
	}

	return nDst, nil
}

func (jis8Charset) Decode(b []byte) (string, error) {
	for i, ch := range b {
		if ch >= 0x80 && (ch < 0xA1 || ch > 0xDF) {
			return "", fmt.Errorf("%w: byte 0x%02X at %d is not JIS-8", ErrInvalidText, ch, i)
		}
	}

	s, _, err := transform.String(japanese.ShiftJIS.NewDecoder(), string(b))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidText, err)
	}

	return s, nil
}

// isJIS8Rune reports whether r has a single-byte JIS X 0201 encoding.
func isJIS8Rune(r rune) bool {
	return (r >= 0 && r < utf8.RuneSelf) || (r >= 0xFF61 && r <= 0xFF9F)
}
