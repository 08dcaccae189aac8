package sml

import (
	"strconv"
	"strings"

	"github.com/arloliu/go-secs-item/secs2"
)

// Formatter renders items as indented SML.
type Formatter struct {
	quote  rune
	strict bool
	indent string
}

// FormatOption configures a Formatter.
type FormatOption func(*Formatter)

// WithQuote sets the quote character of text items, '"' (the default) or '\''.
// Other characters are ignored.
func WithQuote(quote rune) FormatOption {
	return func(f *Formatter) {
		if quote == '"' || quote == '\'' {
			f.quote = quote
		}
	}
}

// WithStrict enables strict text rendering: the quote character and backslash are
// escaped with a backslash, and control characters are written as 0xNN tokens outside
// the quotes.
//
// Without strict mode text is written between quotes as is, which is only
// reversible when it contains neither the quote character nor control characters.
func WithStrict(enable bool) FormatOption {
	return func(f *Formatter) {
		f.strict = enable
	}
}

// WithIndent sets the string prepended once per nesting level. Defaults to two spaces.
func WithIndent(indent string) FormatOption {
	return func(f *Formatter) {
		f.indent = indent
	}
}

// NewFormatter creates a Formatter with the given options.
func NewFormatter(opts ...FormatOption) *Formatter {
	f := &Formatter{quote: '"', indent: "  "}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

var defaultFormatter = NewFormatter()

// Format renders item as SML with the default options.
//
//	<L[2]
//	  <A[3] "abc">
//	  <U2[1] 7>
//	>
func Format(item secs2.Item) string {
	return defaultFormatter.Format(item)
}

// Format renders item as SML. A nil item renders as an empty string.
func (f *Formatter) Format(item secs2.Item) string {
	if item == nil {
		return ""
	}

	var sb strings.Builder
	f.writeItem(&sb, item, 0)

	return sb.String()
}

func (f *Formatter) writeItem(sb *strings.Builder, item secs2.Item, level int) {
	for range level {
		sb.WriteString(f.indent)
	}

	sb.WriteByte('<')
	sb.WriteString(item.Format().String())
	sb.WriteByte('[')
	sb.WriteString(strconv.Itoa(item.Count()))
	sb.WriteByte(']')

	switch v := item.(type) {
	case *secs2.ListItem:
		if v.IsEmpty() {
			break
		}
		sb.WriteByte('\n')
		for _, child := range v.Items() {
			f.writeItem(sb, child, level+1)
			sb.WriteByte('\n')
		}
		for range level {
			sb.WriteString(f.indent)
		}
	case *secs2.TextItem:
		if v.IsEmpty() {
			break
		}
		if f.strict {
			f.writeTextStrict(sb, v.Text())
		} else {
			sb.WriteByte(' ')
			sb.WriteRune(f.quote)
			sb.WriteString(v.Text())
			sb.WriteRune(f.quote)
		}
	default:
		var buf [32]byte
		writeValues(sb, buf[:0], item)
	}

	sb.WriteByte('>')
}

// writeTextStrict writes printable runs between quotes and control characters as 0xNN.
func (f *Formatter) writeTextStrict(sb *strings.Builder, text string) {
	inRun := false
	for _, ch := range text {
		printable := ch >= 0x20 && ch != 0x7F
		if printable && !inRun {
			sb.WriteByte(' ')
			sb.WriteRune(f.quote)
			inRun = true
		} else if !printable && inRun {
			sb.WriteRune(f.quote)
			inRun = false
		}

		if printable {
			if ch == f.quote || ch == '\\' {
				sb.WriteByte('\\')
			}
			sb.WriteRune(ch)
		} else {
			sb.WriteString(" 0x")
			sb.WriteByte(hexDigits[ch>>4])
			sb.WriteByte(hexDigits[ch&0x0F])
		}
	}

	if inRun {
		sb.WriteRune(f.quote)
	}
}

const hexDigits = "0123456789ABCDEF"

func writeValues(sb *strings.Builder, buf []byte, item secs2.Item) {
	switch v := item.(type) {
	case *secs2.ArrayItem[byte]:
		for _, e := range v.Values() {
			sb.WriteByte(' ')
			if item.Format() == secs2.FormatBinary {
				sb.WriteString("0x")
				sb.WriteByte(hexDigits[e>>4])
				sb.WriteByte(hexDigits[e&0x0F])
			} else {
				sb.Write(strconv.AppendUint(buf, uint64(e), 10))
			}
		}
	case *secs2.ArrayItem[bool]:
		for _, e := range v.Values() {
			if e {
				sb.WriteString(" True")
			} else {
				sb.WriteString(" False")
			}
		}
	case *secs2.ArrayItem[int8]:
		writeInts(sb, buf, v.Values())
	case *secs2.ArrayItem[int16]:
		writeInts(sb, buf, v.Values())
	case *secs2.ArrayItem[int32]:
		writeInts(sb, buf, v.Values())
	case *secs2.ArrayItem[int64]:
		writeInts(sb, buf, v.Values())
	case *secs2.ArrayItem[uint16]:
		writeUints(sb, buf, v.Values())
	case *secs2.ArrayItem[uint32]:
		writeUints(sb, buf, v.Values())
	case *secs2.ArrayItem[uint64]:
		writeUints(sb, buf, v.Values())
	case *secs2.ArrayItem[float32]:
		for _, e := range v.Values() {
			sb.WriteByte(' ')
			sb.Write(strconv.AppendFloat(buf, float64(e), 'g', -1, 32))
		}
	case *secs2.ArrayItem[float64]:
		for _, e := range v.Values() {
			sb.WriteByte(' ')
			sb.Write(strconv.AppendFloat(buf, e, 'g', -1, 64))
		}
	}
}

func writeInts[T int8 | int16 | int32 | int64](sb *strings.Builder, buf []byte, values []T) {
	for _, e := range values {
		sb.WriteByte(' ')
		sb.Write(strconv.AppendInt(buf, int64(e), 10))
	}
}

func writeUints[T uint16 | uint32 | uint64](sb *strings.Builder, buf []byte, values []T) {
	for _, e := range values {
		sb.WriteByte(' ')
		sb.Write(strconv.AppendUint(buf, uint64(e), 10))
	}
}
