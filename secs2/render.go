package secs2

import (
	"strconv"
	"strings"
)

// renderItem renders "<FORMAT [count] v1 v2 ... >".
// Lists show "..." instead of their children, so the cost does not depend on tree depth.
func renderItem(item Item) string {
	var sb strings.Builder
	sb.Grow(16 + item.Count()*4)

	sb.WriteByte('<')
	sb.WriteString(item.Format().String())
	sb.WriteString(" [")
	sb.WriteString(strconv.Itoa(item.Count()))
	sb.WriteString("] ")

	if !item.IsEmpty() {
		switch v := item.(type) {
		case *ListItem:
			sb.WriteString("... ")
		case *TextItem:
			sb.WriteString(strconv.Quote(v.value))
			sb.WriteByte(' ')
		default:
			var buf [64]byte
			sb.Write(appendElements(buf[:0], item.Format(), item.logicalValue()))
		}
	}

	sb.WriteByte('>')

	return sb.String()
}

const hexDigits = "0123456789ABCDEF"

// appendElements appends every element followed by a space.
func appendElements(dst []byte, f Format, values any) []byte {
	switch v := values.(type) {
	case []byte:
		for _, e := range v {
			if f == FormatBinary {
				dst = append(dst, '0', 'x', hexDigits[e>>4], hexDigits[e&0x0F])
			} else {
				dst = strconv.AppendUint(dst, uint64(e), 10)
			}
			dst = append(dst, ' ')
		}
	case []bool:
		for _, e := range v {
			dst = strconv.AppendBool(dst, e)
			dst = append(dst, ' ')
		}
	case []int8:
		dst = appendInts(dst, v)
	case []int16:
		dst = appendInts(dst, v)
	case []int32:
		dst = appendInts(dst, v)
	case []int64:
		dst = appendInts(dst, v)
	case []uint16:
		dst = appendUints(dst, v)
	case []uint32:
		dst = appendUints(dst, v)
	case []uint64:
		dst = appendUints(dst, v)
	case []float32:
		for _, e := range v {
			dst = strconv.AppendFloat(dst, float64(e), 'g', -1, 32)
			dst = append(dst, ' ')
		}
	case []float64:
		for _, e := range v {
			dst = strconv.AppendFloat(dst, e, 'g', -1, 64)
			dst = append(dst, ' ')
		}
	}

	return dst
}

func appendInts[T int8 | int16 | int32 | int64](dst []byte, values []T) []byte {
	for _, v := range values {
		dst = strconv.AppendInt(dst, int64(v), 10)
		dst = append(dst, ' ')
	}

	return dst
}

func appendUints[T uint16 | uint32 | uint64](dst []byte, values []T) []byte {
	for _, v := range values {
		dst = strconv.AppendUint(dst, uint64(v), 10)
		dst = append(dst, ' ')
	}

	return dst
}
