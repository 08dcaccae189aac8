package secs2

import "fmt"

// MaxByteSize defines the maximum length an item header can describe:
// the payload byte length of a value item or the child count of a list.
const MaxByteSize = 1<<24 - 1

// HeaderSize returns the number of header bytes needed to describe length:
// one format byte followed by a 1, 2 or 3 byte length field.
//
// It returns 0 when length is negative or exceeds MaxByteSize.
func HeaderSize(length int) int {
	n := lengthByteCount(length)
	if n == 0 {
		return 0
	}

	return 1 + n
}

func lengthByteCount(length int) int {
	switch {
	case length < 0 || length > MaxByteSize:
		return 0
	case length <= 0xFF:
		return 1
	case length <= 0xFFFF:
		return 2
	default:
		return 3
	}
}

// encodeHeader writes the header of an item into a newly allocated buffer.
//
// length is the payload byte length for value items and the child count for lists.
// The returned buffer holds the header followed by room for length payload bytes,
// except for lists, whose buffer is header only.
func encodeHeader(f Format, length int) ([]byte, int, error) {
	if !f.Valid() {
		return nil, 0, fmt.Errorf("%w: undefined format code 0o%s", ErrFormatMismatch, octal(uint8(f)))
	}

	lenByteCount := lengthByteCount(length)
	if lenByteCount == 0 {
		return nil, 0, fmt.Errorf("%w: length %d, max %d", ErrSizeLimit, length, MaxByteSize)
	}

	headerLen := 1 + lenByteCount
	bufLen := headerLen
	if f != FormatList {
		bufLen += length
	}

	buf := make([]byte, bufLen)
	buf[0] = byte(f)<<2 | byte(lenByteCount)
	for i := range lenByteCount {
		buf[headerLen-1-i] = byte(length >> (8 * i))
	}

	return buf, headerLen, nil
}

// emptyHeader returns the fixed two-byte encoding of an item without elements.
func emptyHeader(f Format) []byte {
	return []byte{byte(f)<<2 | 1, 0}
}
