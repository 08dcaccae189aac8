package codec

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/arloliu/go-secs-item/logger"
	"github.com/arloliu/go-secs-item/secs2"
)

// Decoder decodes SECS-II items from wire bytes.
//
// A Decoder holds only its configuration and is safe for concurrent use.
type Decoder struct {
	maxListDepth int
	logger       logger.Logger
	metrics      *Metrics
}

// NewDecoder creates a Decoder with the given options.
func NewDecoder(opts ...DecoderOption) *Decoder {
	d := &Decoder{maxListDepth: DefaultMaxListDepth}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

var defaultDecoder = NewDecoder()

// DecodeItem decodes a SECS-II item that occupies all of data.
//
// It returns ErrTrailingData if bytes remain after the item.
func DecodeItem(data []byte) (secs2.Item, error) {
	return defaultDecoder.DecodeItem(data)
}

// DecodeItem decodes a SECS-II item that occupies all of data.
func (d *Decoder) DecodeItem(data []byte) (secs2.Item, error) {
	item, n, err := d.Decode(data)
	if err != nil {
		return nil, err
	}

	if n != len(data) {
		err = fmt.Errorf("%w: %d of %d bytes consumed", ErrTrailingData, n, len(data))
		d.reject(data, n, err)

		return nil, err
	}

	return item, nil
}

// Decode decodes one SECS-II item from the front of data and returns it together
// with the number of bytes consumed.
//
// The returned item does not reference data.
func (d *Decoder) Decode(data []byte) (secs2.Item, int, error) {
	state, _ := statePool.Get().(*decodeState)
	state.input = data
	state.pos = 0
	state.depth = 0
	state.maxDepth = d.maxListDepth
	state.metrics = d.metrics

	item, err := state.decodeItem()
	n := state.pos

	state.input = nil
	state.metrics = nil
	statePool.Put(state)

	if err != nil {
		d.reject(data, n, err)
		return nil, 0, err
	}

	return item, n, nil
}

func (d *Decoder) reject(data []byte, pos int, err error) {
	if d.metrics != nil {
		d.metrics.incError(err)
	}
	l := d.logger
	if l == nil {
		l = logger.GetLogger()
	}
	l.Debug("secs2 item rejected", "offset", pos, "size", len(data), "error", err)
}

var statePool = sync.Pool{New: func() any { return new(decodeState) }}

// decodeState is the cursor of a single Decode call.
type decodeState struct {
	input    []byte
	pos      int
	depth    int
	maxDepth int
	metrics  *Metrics
}

func (s *decodeState) remaining() int {
	return len(s.input) - s.pos
}

func (s *decodeState) read(length int) ([]byte, error) {
	if length > s.remaining() {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrTruncated, length, s.pos, s.remaining())
	}
	result := s.input[s.pos : s.pos+length]
	s.pos += length

	return result, nil
}

// readHeader reads the format byte and the length field of the next item.
func (s *decodeState) readHeader() (secs2.Format, int, error) {
	start := s.pos
	header, err := s.read(1)
	if err != nil {
		return 0, 0, err
	}

	formatCode := secs2.Format(header[0] >> 2)
	lenBytesCount := int(header[0] & 0x3)
	if lenBytesCount == 0 {
		return 0, 0, fmt.Errorf("%w: offset %d", ErrZeroLengthBytes, start)
	}

	if !formatCode.Valid() {
		return 0, 0, fmt.Errorf("%w: 0o%02o at offset %d", ErrUnknownFormat, uint8(formatCode), start)
	}

	lenBytes, err := s.read(lenBytesCount)
	if err != nil {
		return 0, 0, err
	}

	length := 0
	for _, b := range lenBytes {
		length = length<<8 | int(b)
	}

	return formatCode, length, nil
}

func (s *decodeState) decodeItem() (secs2.Item, error) {
	f, length, err := s.readHeader()
	if err != nil {
		return nil, err
	}

	var item secs2.Item
	switch f { //nolint:exhaustive
	case secs2.FormatList:
		item, err = s.decodeList(length)
	case secs2.FormatASCII, secs2.FormatJIS8:
		item, err = s.decodeText(f, length)
	default:
		item, err = s.decodeArray(f, length)
	}
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.incItem(f)
	}

	return item, nil
}

func (s *decodeState) decodeList(length int) (secs2.Item, error) {
	s.depth++
	if s.depth > s.maxDepth {
		return nil, fmt.Errorf("%w: %d", ErrMaxListDepth, s.maxDepth)
	}

	// every child needs at least a format byte and one length byte
	if s.remaining() < length*2 {
		return nil, fmt.Errorf("%w: list claims %d items but only %d bytes remain", ErrTruncated, length, s.remaining())
	}

	children := make([]secs2.Item, length)
	for i := range length {
		child, err := s.decodeItem()
		if err != nil {
			return nil, err
		}
		children[i] = child
	}
	s.depth--

	return secs2.NewList(children)
}

func (s *decodeState) decodeText(f secs2.Format, length int) (secs2.Item, error) {
	payload, err := s.read(length)
	if err != nil {
		return nil, err
	}

	cs := secs2.ASCII
	if f == secs2.FormatJIS8 {
		cs = secs2.JIS8
	}

	text, err := cs.Decode(payload)
	if err != nil {
		return nil, err
	}

	return secs2.NewText(f, text)
}

func (s *decodeState) decodeArray(f secs2.Format, length int) (secs2.Item, error) {
	width := f.Width()
	if length%width != 0 {
		return nil, fmt.Errorf("%w: %d bytes for %s item", secs2.ErrPayloadWidth, length, f)
	}

	payload, err := s.read(length)
	if err != nil {
		return nil, err
	}

	switch f { //nolint:exhaustive
	case secs2.FormatBinary, secs2.FormatU1:
		return secs2.NewArray(f, payload)
	case secs2.FormatBoolean:
		return decodeValues(f, payload, 1, func(b []byte) bool { return b[0] != 0 })
	case secs2.FormatI1:
		return decodeValues(f, payload, 1, func(b []byte) int8 { return int8(b[0]) }) //nolint:gosec
	case secs2.FormatI2:
		return decodeValues(f, payload, 2, func(b []byte) int16 { return int16(binary.BigEndian.Uint16(b)) }) //nolint:gosec
	case secs2.FormatI4:
		return decodeValues(f, payload, 4, func(b []byte) int32 { return int32(binary.BigEndian.Uint32(b)) }) //nolint:gosec
	case secs2.FormatI8:
		return decodeValues(f, payload, 8, func(b []byte) int64 { return int64(binary.BigEndian.Uint64(b)) }) //nolint:gosec
	case secs2.FormatU2:
		return decodeValues(f, payload, 2, binary.BigEndian.Uint16)
	case secs2.FormatU4:
		return decodeValues(f, payload, 4, binary.BigEndian.Uint32)
	case secs2.FormatU8:
		return decodeValues(f, payload, 8, binary.BigEndian.Uint64)
	case secs2.FormatF4:
		return decodeValues(f, payload, 4, func(b []byte) float32 { return math.Float32frombits(binary.BigEndian.Uint32(b)) })
	case secs2.FormatF8:
		return decodeValues(f, payload, 8, func(b []byte) float64 { return math.Float64frombits(binary.BigEndian.Uint64(b)) })
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// decodeValues converts a big-endian payload to elements of type T, width bytes each.
func decodeValues[T secs2.Element](f secs2.Format, payload []byte, width int, conv func([]byte) T) (secs2.Item, error) {
	values := make([]T, len(payload)/width)
	for i := range values {
		values[i] = conv(payload[i*width:])
	}

	return secs2.NewArray(f, values)
}
