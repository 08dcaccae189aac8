package secs2

import "fmt"

// GetValue returns the value of a non-list item as type T.
//
// The requested type is resolved in order:
//  1. T is exactly the stored value: string for text items, or the whole
//     element slice (e.g. []int32 for I4) for array items.
//  2. T is the element type: the first element is returned, and an empty
//     item fails with ErrEmptyItem.
//  3. T is a pointer to the element type (the nullable form, e.g. *int32 for I4):
//     a pointer to a copy of the first element is returned, and an empty item
//     fails with ErrEmptyItem.
//
// Any other T fails with ErrIncompatibleType, and list items fail with ErrNotValue.
func GetValue[T any](item Item) (T, error) {
	return resolveValue[T]("GetValue", item, true)
}

// GetValueOrDefault is GetValue without the empty-item failure: when the item
// has no elements it returns the zero value of T, which is nil for pointer types.
//
// It still fails with ErrNotValue for lists and ErrIncompatibleType for types
// the item cannot hold.
func GetValueOrDefault[T any](item Item) (T, error) {
	return resolveValue[T]("GetValueOrDefault", item, false)
}

func resolveValue[T any](op string, item Item, strict bool) (T, error) {
	var zero T
	if item == nil {
		return zero, &ItemError{Op: op, Err: ErrNilItem}
	}

	f := item.Format()
	if f == FormatList {
		return zero, newItemError(op, f, ErrNotValue)
	}

	stored := item.logicalValue()

	if v, ok := stored.(T); ok {
		return v, nil
	}

	if values, ok := stored.([]T); ok {
		if len(values) == 0 {
			if strict {
				return zero, newItemError(op, f, ErrEmptyItem)
			}
			return zero, nil
		}
		return values[0], nil
	}

	if v, matched, empty := firstAsPointer[T](stored); matched {
		if empty && strict {
			return zero, newItemError(op, f, ErrEmptyItem)
		}
		return v, nil
	}

	return zero, newItemError(op, f, fmt.Errorf("%w: cannot get %T from %T", ErrIncompatibleType, zero, stored))
}

// firstAsPointer resolves T = *U against stored values of type []U.
// matched is false when T is not a pointer to the stored element type.
func firstAsPointer[T any](stored any) (v T, matched bool, empty bool) {
	var ptr any
	switch any(v).(type) {
	case *byte:
		ptr, matched, empty = firstPtr[byte](stored)
	case *bool:
		ptr, matched, empty = firstPtr[bool](stored)
	case *int8:
		ptr, matched, empty = firstPtr[int8](stored)
	case *int16:
		ptr, matched, empty = firstPtr[int16](stored)
	case *int32:
		ptr, matched, empty = firstPtr[int32](stored)
	case *int64:
		ptr, matched, empty = firstPtr[int64](stored)
	case *uint16:
		ptr, matched, empty = firstPtr[uint16](stored)
	case *uint32:
		ptr, matched, empty = firstPtr[uint32](stored)
	case *uint64:
		ptr, matched, empty = firstPtr[uint64](stored)
	case *float32:
		ptr, matched, empty = firstPtr[float32](stored)
	case *float64:
		ptr, matched, empty = firstPtr[float64](stored)
	}

	if !matched || empty {
		return v, matched, empty
	}

	v, _ = ptr.(T)

	return v, true, false
}

func firstPtr[U Element](stored any) (any, bool, bool) {
	values, ok := stored.([]U)
	if !ok {
		return nil, false, false
	}

	if len(values) == 0 {
		return nil, true, true
	}

	first := values[0]

	return &first, true, false
}
