package secs2

// emptyItems holds the one empty instance of every format, indexed by format code.
// It is filled during package initialization and never written afterwards.
var emptyItems = func() [formatCodeLimit]Item {
	var t [formatCodeLimit]Item

	t[FormatList] = &ListItem{items: []Item{}, raw: emptyHeader(FormatList)}
	t[FormatASCII] = emptyText(FormatASCII)
	t[FormatJIS8] = emptyText(FormatJIS8)
	t[FormatBinary] = emptyArray[byte](FormatBinary)
	t[FormatBoolean] = emptyArray[bool](FormatBoolean)
	t[FormatI1] = emptyArray[int8](FormatI1)
	t[FormatI2] = emptyArray[int16](FormatI2)
	t[FormatI4] = emptyArray[int32](FormatI4)
	t[FormatI8] = emptyArray[int64](FormatI8)
	t[FormatU1] = emptyArray[uint8](FormatU1)
	t[FormatU2] = emptyArray[uint16](FormatU2)
	t[FormatU4] = emptyArray[uint32](FormatU4)
	t[FormatU8] = emptyArray[uint64](FormatU8)
	t[FormatF4] = emptyArray[float32](FormatF4)
	t[FormatF8] = emptyArray[float64](FormatF8)

	return t
}()

// Empty returns the shared empty item of format f, or nil if f is undefined.
//
// Every call with the same format returns the same instance.
func Empty(f Format) Item {
	if !f.Valid() {
		return nil
	}

	return emptyItems[f]
}

func emptyArray[T Element](f Format) *ArrayItem[T] {
	return &ArrayItem[T]{valueItem: valueItem{format: f, raw: emptyHeader(f)}, values: []T{}}
}

func emptyText(f Format) *TextItem {
	return &TextItem{valueItem: valueItem{format: f, raw: emptyHeader(f)}}
}
