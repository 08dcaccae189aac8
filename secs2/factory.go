package secs2

import (
	"iter"
	"slices"
)

// The shortcut constructors below create items in a nested, literal style:
//
//	secs2.L(
//	    secs2.U4(1001),
//	    secs2.A("PPID-01"),
//	    secs2.L(secs2.F8(0.5, 1.5)),
//	)
//
// Called without elements, or with an empty sequence, they return the shared empty
// item of their format.
//
// They panic with an *ItemError when the input breaks the encoding limits
// (more than MaxByteSize payload bytes or list children, a nil child, or text outside
// the character set). Use NewList, NewArray or NewText to get the error instead.

func must(item Item, err error) Item {
	if err != nil {
		panic(err)
	}

	return item
}

// L creates a list item.
func L(items ...Item) Item {
	if len(items) == 0 {
		return Empty(FormatList)
	}

	return must(newList("L", slices.Clone(items)))
}

// LSeq creates a list item from a sequence of items.
func LSeq(seq iter.Seq[Item]) Item {
	return must(newList("LSeq", slices.Collect(seq)))
}

// B creates a binary item.
func B(values ...byte) Item { return must(array("B", FormatBinary, values, false)) }

// BSeq creates a binary item from a sequence of bytes.
func BSeq(seq iter.Seq[byte]) Item { return must(array("BSeq", FormatBinary, slices.Collect(seq), true)) }

// Boolean creates a boolean item.
func Boolean(values ...bool) Item { return must(array("Boolean", FormatBoolean, values, false)) }

// BooleanSeq creates a boolean item from a sequence of booleans.
func BooleanSeq(seq iter.Seq[bool]) Item {
	return must(array("BooleanSeq", FormatBoolean, slices.Collect(seq), true))
}

// I1 creates a 1-byte signed integer item.
func I1(values ...int8) Item { return must(array("I1", FormatI1, values, false)) }

// I2 creates a 2-byte signed integer item.
func I2(values ...int16) Item { return must(array("I2", FormatI2, values, false)) }

// I4 creates a 4-byte signed integer item.
func I4(values ...int32) Item { return must(array("I4", FormatI4, values, false)) }

// I8 creates an 8-byte signed integer item.
func I8(values ...int64) Item { return must(array("I8", FormatI8, values, false)) }

// U1 creates a 1-byte unsigned integer item.
func U1(values ...uint8) Item { return must(array("U1", FormatU1, values, false)) }

// U2 creates a 2-byte unsigned integer item.
func U2(values ...uint16) Item { return must(array("U2", FormatU2, values, false)) }

// U4 creates a 4-byte unsigned integer item.
func U4(values ...uint32) Item { return must(array("U4", FormatU4, values, false)) }

// U8 creates an 8-byte unsigned integer item.
func U8(values ...uint64) Item { return must(array("U8", FormatU8, values, false)) }

// F4 creates a 4-byte floating point item.
func F4(values ...float32) Item { return must(array("F4", FormatF4, values, false)) }

// F8 creates an 8-byte floating point item.
func F8(values ...float64) Item { return must(array("F8", FormatF8, values, false)) }

// Sequence forms of the numeric constructors.

func I1Seq(seq iter.Seq[int8]) Item { return must(array("I1Seq", FormatI1, slices.Collect(seq), true)) }
func I2Seq(seq iter.Seq[int16]) Item { return must(array("I2Seq", FormatI2, slices.Collect(seq), true)) }
func I4Seq(seq iter.Seq[int32]) Item { return must(array("I4Seq", FormatI4, slices.Collect(seq), true)) }
func I8Seq(seq iter.Seq[int64]) Item { return must(array("I8Seq", FormatI8, slices.Collect(seq), true)) }
func U1Seq(seq iter.Seq[uint8]) Item { return must(array("U1Seq", FormatU1, slices.Collect(seq), true)) }
func U2Seq(seq iter.Seq[uint16]) Item { return must(array("U2Seq", FormatU2, slices.Collect(seq), true)) }
func U4Seq(seq iter.Seq[uint32]) Item { return must(array("U4Seq", FormatU4, slices.Collect(seq), true)) }
func U8Seq(seq iter.Seq[uint64]) Item { return must(array("U8Seq", FormatU8, slices.Collect(seq), true)) }
func F4Seq(seq iter.Seq[float32]) Item { return must(array("F4Seq", FormatF4, slices.Collect(seq), true)) }
func F8Seq(seq iter.Seq[float64]) Item { return must(array("F8Seq", FormatF8, slices.Collect(seq), true)) }

// A creates an ASCII item.
func A(value string) Item { return must(text("A", FormatASCII, value)) }

// J creates a JIS-8 item.
//
// JIS-8 is a legacy format that is rarely needed; prefer A unless the equipment
// explicitly requires J items.
func J(value string) Item { return must(text("J", FormatJIS8, value)) }
