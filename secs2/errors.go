package secs2

import (
	"errors"
	"fmt"
)

var (
	// ErrNotList is returned when a list-only operation is invoked on a non-list item.
	ErrNotList = errors.New("item is not a list")
	// ErrNotValue is returned when a value accessor is invoked on a list item.
	ErrNotValue = errors.New("item is not a value item")
	// ErrIncompatibleType is returned when the requested Go type matches neither the
	// stored element type nor its nullable (pointer) counterpart.
	ErrIncompatibleType = errors.New("item value type is incompatible")
	// ErrEmptyItem is returned by strict accessors on an item with zero elements.
	ErrEmptyItem = errors.New("item has no elements")
	// ErrSizeLimit is returned when a length exceeds the 3-byte length field.
	ErrSizeLimit = errors.New("item size limit exceeded")
	// ErrPayloadWidth is returned when a payload length is not a multiple of the element width.
	ErrPayloadWidth = errors.New("payload length is not a multiple of the element width")
	// ErrFormatMismatch is returned when the Go element type cannot be stored in the requested format.
	ErrFormatMismatch = errors.New("format does not match value type")
	// ErrInvalidText is returned when a string cannot be represented in the item's character set.
	ErrInvalidText = errors.New("text cannot be encoded in the character set")
	// ErrNilItem is returned when a nil child is passed to a list.
	ErrNilItem = errors.New("nil item")
	// ErrIndexOutOfRange is returned by Get when an index does not address a child.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// An ItemError records a failed item operation.
type ItemError struct {
	Op     string // operation, e.g. "GetValue", "U2"
	Format Format // format of the item involved
	Err    error
}

func newItemError(op string, f Format, err error) *ItemError {
	itemErr := &ItemError{}
	if errors.As(err, &itemErr) {
		return &ItemError{Op: op, Format: f, Err: itemErr.Err}
	}

	return &ItemError{Op: op, Format: f, Err: err}
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("secs2: %s %s: %v", e.Op, e.Format, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}
