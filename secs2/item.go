package secs2

import (
	"bytes"
	"fmt"
	"iter"
	"slices"

	"github.com/arloliu/go-secs-item/internal/util"
)

// Element is the set of Go types an array item can hold.
//
// Binary and U1 items both hold bytes; every other format has exactly one element type.
type Element interface {
	byte | bool | int8 | int16 | int32 | int64 | uint16 | uint32 | uint64 | float32 | float64
}

// Item represents an immutable data item in a SECS-II message.
//
// An item is one of three variants:
//   - *ListItem: an ordered list of child items.
//   - *ArrayItem[T]: a fixed-width array of numbers, bytes or booleans.
//   - *TextItem: an ASCII or JIS-8 string.
//
// Every item carries its wire encoding, built once at construction. For value items
// it is the header followed by the big-endian payload; for lists it is the header
// only, and the encodings of the children follow it on the wire.
//
// Items are never modified after construction and can be shared between goroutines
// and between list trees without synchronization.
type Item interface {
	// Format returns the format code of the item.
	Format() Format

	// Count returns the number of elements of a value item, or the number of
	// immediate children of a list.
	Count() int

	// IsEmpty reports whether Count() is zero.
	IsEmpty() bool

	// RawBytes returns the encoded bytes of this node. For lists it is the header only.
	//
	// The returned slice is shared and must not be modified.
	RawBytes() []byte

	// ToList returns the children of a list item.
	// It fails with ErrNotList for value items.
	//
	// The returned slice is shared and must not be modified.
	ToList() ([]Item, error)

	// Get retrieves a nested item at the specified indices, descending one list level
	// per index. Without indices it returns the item itself.
	Get(indices ...int) (Item, error)

	// String returns a short, non-recursive rendering of the item:
	// the format, the count and, for value items, the elements.
	String() string

	logicalValue() any
}

// ListItem is an immutable list of items.
//
// Its size is the number of children, counted non-recursively.
type ListItem struct {
	items []Item
	raw   []byte
}

var _ Item = (*ListItem)(nil)

// NewList creates a list item holding a copy of items.
//
// It returns the shared empty list when items is empty, ErrNilItem when a child is nil,
// and ErrSizeLimit when there are more than MaxByteSize children.
func NewList(items []Item) (Item, error) {
	if len(items) == 0 {
		return Empty(FormatList), nil
	}

	return newList("NewList", util.CloneSlice(items, 0))
}

// newList takes ownership of items.
func newList(op string, items []Item) (Item, error) {
	if len(items) == 0 {
		return Empty(FormatList), nil
	}

	for i, child := range items {
		if child == nil {
			return nil, newItemError(op, FormatList, fmt.Errorf("%w at index %d", ErrNilItem, i))
		}
	}

	raw, _, err := encodeHeader(FormatList, len(items))
	if err != nil {
		return nil, newItemError(op, FormatList, err)
	}

	return &ListItem{items: items, raw: raw}, nil
}

func (item *ListItem) Format() Format   { return FormatList }
func (item *ListItem) Count() int       { return len(item.items) }
func (item *ListItem) IsEmpty() bool    { return len(item.items) == 0 }
func (item *ListItem) RawBytes() []byte { return item.raw }

func (item *ListItem) ToList() ([]Item, error) {
	return item.items, nil
}

// Items returns the children of the list. The slice must not be modified.
func (item *ListItem) Items() []Item {
	return item.items
}

// All returns an iterator over the children of the list in wire order.
func (item *ListItem) All() iter.Seq2[int, Item] {
	return slices.All(item.items)
}

func (item *ListItem) Get(indices ...int) (Item, error) {
	var cur Item = item
	for depth, idx := range indices {
		list, ok := cur.(*ListItem)
		if !ok {
			return nil, newItemError("Get", cur.Format(), fmt.Errorf("%w: indices %v, depth %d", ErrNotList, indices, depth))
		}
		if idx < 0 || idx >= len(list.items) {
			return nil, newItemError("Get", FormatList, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, idx, len(list.items)))
		}
		cur = list.items[idx]
	}

	return cur, nil
}

func (item *ListItem) String() string {
	return renderItem(item)
}

func (item *ListItem) logicalValue() any { return item.items }

// valueItem implements the list-only parts of Item for value items.
type valueItem struct {
	format Format
	raw    []byte
}

func (item *valueItem) Format() Format   { return item.format }
func (item *valueItem) RawBytes() []byte { return item.raw }

func (item *valueItem) ToList() ([]Item, error) {
	return nil, newItemError("ToList", item.format, ErrNotList)
}

func (item *valueItem) get(self Item, indices []int) (Item, error) {
	if len(indices) != 0 {
		return nil, newItemError("Get", item.format, fmt.Errorf("%w: indices %v", ErrNotList, indices))
	}

	return self, nil
}

// ArrayItem is an immutable array of fixed-width values: B, BOOLEAN, I1-I8, U1-U8, F4 or F8.
type ArrayItem[T Element] struct {
	valueItem
	values []T
}

// NewArray creates an array item of format f holding a copy of values.
//
// f must be able to hold T: byte for FormatBinary and FormatU1, bool for FormatBoolean,
// int8..int64 for FormatI1..FormatI8, uint16..uint64 for FormatU2..FormatU8,
// float32 and float64 for FormatF4 and FormatF8. Any other pairing fails with
// ErrFormatMismatch.
//
// It returns the shared empty item of f when values is empty.
func NewArray[T Element](f Format, values []T) (Item, error) {
	return array("NewArray", f, values, false)
}

func array[T Element](op string, f Format, values []T, owned bool) (Item, error) {
	if !formatAccepts[T](f) {
		var zero T
		return nil, newItemError(op, f, fmt.Errorf("%w: %s cannot hold %T", ErrFormatMismatch, f, zero))
	}

	if len(values) == 0 {
		return Empty(f), nil
	}

	if !owned {
		values = util.CloneSlice(values, 0)
	}

	item, err := newArrayItem(f, values)
	if err != nil {
		return nil, newItemError(op, f, err)
	}

	return item, nil
}

// newArrayItem encodes values into a single buffer: the header, then the values
// copied in host order and normalized to network order in place.
func newArrayItem[T Element](f Format, values []T) (*ArrayItem[T], error) {
	width := f.Width()
	if len(values) > MaxByteSize/width {
		return nil, fmt.Errorf("%w: %d elements of %d bytes", ErrSizeLimit, len(values), width)
	}

	byteLen := len(values) * width
	buf, headerLen, err := encodeHeader(f, byteLen)
	if err != nil {
		return nil, err
	}

	copy(buf[headerLen:], hostBytes(values))
	if err := toNetworkOrder(buf[headerLen:], width); err != nil {
		return nil, err
	}

	return &ArrayItem[T]{valueItem: valueItem{format: f, raw: buf}, values: values}, nil
}

func (item *ArrayItem[T]) Count() int    { return len(item.values) }
func (item *ArrayItem[T]) IsEmpty() bool { return len(item.values) == 0 }

// Values returns the elements of the array. The slice must not be modified.
func (item *ArrayItem[T]) Values() []T {
	return item.values
}

func (item *ArrayItem[T]) Get(indices ...int) (Item, error) {
	return item.get(item, indices)
}

func (item *ArrayItem[T]) String() string {
	return renderItem(item)
}

func (item *ArrayItem[T]) logicalValue() any { return item.values }

// formatAccepts reports whether format f stores elements of type T.
func formatAccepts[T Element](f Format) bool {
	var zero T
	switch any(zero).(type) {
	case byte:
		return f == FormatBinary || f == FormatU1
	case bool:
		return f == FormatBoolean
	case int8:
		return f == FormatI1
	case int16:
		return f == FormatI2
	case int32:
		return f == FormatI4
	case int64:
		return f == FormatI8
	case uint16:
		return f == FormatU2
	case uint32:
		return f == FormatU4
	case uint64:
		return f == FormatU8
	case float32:
		return f == FormatF4
	case float64:
		return f == FormatF8
	}

	return false
}

// TextItem is an immutable ASCII (A) or JIS-8 (J) string.
//
// Its count is the number of characters, which equals the number of encoded bytes.
type TextItem struct {
	valueItem
	value string
	count int
}

// NewText creates a text item of format f, which must be FormatASCII or FormatJIS8.
//
// It fails with ErrInvalidText when s contains a character outside the character
// set of f, and returns the shared empty item of f when s is empty.
func NewText(f Format, s string) (Item, error) {
	return text("NewText", f, s)
}

func text(op string, f Format, s string) (Item, error) {
	cs, ok := charsetOf(f)
	if !ok {
		return nil, newItemError(op, f, fmt.Errorf("%w: %s is not a text format", ErrFormatMismatch, f))
	}

	if s == "" {
		return Empty(f), nil
	}

	count, err := cs.Count(s)
	if err != nil {
		return nil, newItemError(op, f, err)
	}

	buf, headerLen, err := encodeHeader(f, count)
	if err != nil {
		return nil, newItemError(op, f, err)
	}

	if _, err := cs.Encode(buf[headerLen:], s); err != nil {
		return nil, newItemError(op, f, err)
	}

	return &TextItem{valueItem: valueItem{format: f, raw: buf}, value: s, count: count}, nil
}

func (item *TextItem) Count() int    { return item.count }
func (item *TextItem) IsEmpty() bool { return item.count == 0 }

// Text returns the string held by the item.
func (item *TextItem) Text() string {
	return item.value
}

// Charset returns the character set of the item.
func (item *TextItem) Charset() Charset {
	cs, _ := charsetOf(item.format)
	return cs
}

func (item *TextItem) Get(indices ...int) (Item, error) {
	return item.get(item, indices)
}

func (item *TextItem) String() string {
	return renderItem(item)
}

func (item *TextItem) logicalValue() any { return item.value }

// Equal reports whether two item trees have the same formats, values and encoding.
func Equal(a, b Item) bool {
	if a == nil || b == nil {
		return a == b
	}

	if a.Format() != b.Format() || a.Count() != b.Count() || !bytes.Equal(a.RawBytes(), b.RawBytes()) {
		return false
	}

	la, ok := a.(*ListItem)
	if !ok {
		return true
	}
	lb, _ := b.(*ListItem)

	for i := range la.items {
		if !Equal(la.items[i], lb.items[i]) {
			return false
		}
	}

	return true
}
