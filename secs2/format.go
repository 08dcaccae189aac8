package secs2

import "strings"

// Format is the 6-bit SECS-II format code of a data item.
//
// The wire format byte of an item is the format code shifted left by two bits,
// with the number of length bytes (1, 2 or 3) stored in the low two bits.
type Format uint8

const (
	FormatList    Format = 0o00
	FormatBinary  Format = 0o10
	FormatBoolean Format = 0o11
	FormatASCII   Format = 0o20
	FormatJIS8    Format = 0o21
	FormatI8      Format = 0o30
	FormatI1      Format = 0o31
	FormatI2      Format = 0o32
	FormatI4      Format = 0o34
	FormatF8      Format = 0o40
	FormatF4      Format = 0o44
	FormatU8      Format = 0o50
	FormatU1      Format = 0o51
	FormatU2      Format = 0o52
	FormatU4      Format = 0o54
)

// formatCodeLimit bounds every 6-bit format code; it sizes the lookup tables.
const formatCodeLimit = 1 << 6

type formatInfo struct {
	name  string
	width int
	valid bool
}

var formatTable = func() [formatCodeLimit]formatInfo {
	var t [formatCodeLimit]formatInfo
	t[FormatList] = formatInfo{name: "L", width: 0, valid: true}
	t[FormatBinary] = formatInfo{name: "B", width: 1, valid: true}
	t[FormatBoolean] = formatInfo{name: "BOOLEAN", width: 1, valid: true}
	t[FormatASCII] = formatInfo{name: "A", width: 1, valid: true}
	t[FormatJIS8] = formatInfo{name: "J", width: 1, valid: true}
	t[FormatI8] = formatInfo{name: "I8", width: 8, valid: true}
	t[FormatI1] = formatInfo{name: "I1", width: 1, valid: true}
	t[FormatI2] = formatInfo{name: "I2", width: 2, valid: true}
	t[FormatI4] = formatInfo{name: "I4", width: 4, valid: true}
	t[FormatF8] = formatInfo{name: "F8", width: 8, valid: true}
	t[FormatF4] = formatInfo{name: "F4", width: 4, valid: true}
	t[FormatU8] = formatInfo{name: "U8", width: 8, valid: true}
	t[FormatU1] = formatInfo{name: "U1", width: 1, valid: true}
	t[FormatU2] = formatInfo{name: "U2", width: 2, valid: true}
	t[FormatU4] = formatInfo{name: "U4", width: 4, valid: true}

	return t
}()

var allFormats = []Format{
	FormatList, FormatBinary, FormatBoolean, FormatASCII, FormatJIS8,
	FormatI1, FormatI2, FormatI4, FormatI8,
	FormatU1, FormatU2, FormatU4, FormatU8,
	FormatF4, FormatF8,
}

// Formats returns every defined format, list first.
func Formats() []Format {
	formats := make([]Format, len(allFormats))
	copy(formats, allFormats)

	return formats
}

// Valid reports whether f is one of the defined SECS-II formats.
func (f Format) Valid() bool {
	return f < formatCodeLimit && formatTable[f].valid
}

// Width returns the byte width of one element of the format.
// It returns 0 for lists and undefined formats.
func (f Format) Width() int {
	if !f.Valid() {
		return 0
	}

	return formatTable[f].width
}

// IsText reports whether f is a character string format (ASCII or JIS-8).
func (f Format) IsText() bool {
	return f == FormatASCII || f == FormatJIS8
}

// String returns the SML tag of the format, e.g. "L", "BOOLEAN", "U4".
func (f Format) String() string {
	if !f.Valid() {
		return "Format(0o" + strings.TrimLeft(octal(uint8(f)), "0") + ")"
	}

	return formatTable[f].name
}

// ParseFormat returns the format named by its SML tag. The lookup is case-insensitive.
func ParseFormat(name string) (Format, bool) {
	name = strings.ToUpper(name)
	for _, f := range allFormats {
		if formatTable[f].name == name {
			return f, true
		}
	}

	return 0, false
}

func octal(v uint8) string {
	return string([]byte{'0' + v>>6, '0' + (v>>3)&7, '0' + v&7})
}
