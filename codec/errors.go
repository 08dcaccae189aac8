package codec

import (
	"errors"

	"github.com/arloliu/go-secs-item/secs2"
)

var (
	// ErrTruncated is returned when the input ends inside a header or payload.
	ErrTruncated = errors.New("codec: unexpected end of input")
	// ErrZeroLengthBytes is returned when a header declares zero length bytes.
	ErrZeroLengthBytes = errors.New("codec: length byte count is zero")
	// ErrUnknownFormat is returned for a format code outside the SECS-II format table.
	ErrUnknownFormat = errors.New("codec: unknown format code")
	// ErrMaxListDepth is returned when lists nest deeper than the decoder allows.
	ErrMaxListDepth = errors.New("codec: list nesting depth exceeds maximum")
	// ErrTrailingData is returned by DecodeItem when bytes remain after the item.
	ErrTrailingData = errors.New("codec: trailing data after item")
)

// errorKind names the reason of a decode failure for metrics.
func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrTruncated):
		return "truncated"
	case errors.Is(err, ErrZeroLengthBytes):
		return "zero_length_bytes"
	case errors.Is(err, ErrUnknownFormat):
		return "unknown_format"
	case errors.Is(err, ErrMaxListDepth):
		return "max_list_depth"
	case errors.Is(err, ErrTrailingData):
		return "trailing_data"
	case errors.Is(err, secs2.ErrPayloadWidth):
		return "payload_width"
	case errors.Is(err, secs2.ErrInvalidText):
		return "invalid_text"
	default:
		return "other"
	}
}
