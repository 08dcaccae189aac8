package secs2

import (
	"encoding/binary"
	"fmt"
	"unsafe"
)

var hostLittleEndian = binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 0x0001

// toNetworkOrder rewrites a payload of width-byte elements, laid out in host byte
// order, into big-endian order in place.
func toNetworkOrder(payload []byte, width int) error {
	if width <= 0 || len(payload)%width != 0 {
		return fmt.Errorf("%w: %d bytes, width %d", ErrPayloadWidth, len(payload), width)
	}

	if width == 1 || !hostLittleEndian {
		return nil
	}

	swapBytes(payload, width)

	return nil
}

// swapBytes reverses every width-byte window of buf.
// The caller guarantees len(buf) is a multiple of width.
func swapBytes(buf []byte, width int) {
	switch width {
	case 2:
		for i := 0; i+1 < len(buf); i += 2 {
			buf[i], buf[i+1] = buf[i+1], buf[i]
		}
	case 4:
		for i := 0; i+3 < len(buf); i += 4 {
			buf[i], buf[i+1], buf[i+2], buf[i+3] = buf[i+3], buf[i+2], buf[i+1], buf[i]
		}
	default:
		for i := 0; i+width <= len(buf); i += width {
			for l, r := i, i+width-1; l < r; l, r = l+1, r-1 {
				buf[l], buf[r] = buf[r], buf[l]
			}
		}
	}
}

// hostBytes returns the memory of values as a byte slice in host byte order.
// The result aliases values and must not outlive or modify it.
func hostBytes[T Element](values []T) []byte {
	if len(values) == 0 {
		return nil
	}

	var zero T
	size := len(values) * int(unsafe.Sizeof(zero))

	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(values))), size)
}
