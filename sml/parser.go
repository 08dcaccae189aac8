package sml

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/arloliu/go-secs-item/secs2"
)

const eof rune = -1

// ErrSyntax is wrapped by every error returned for malformed SML.
var ErrSyntax = errors.New("sml: syntax error")

// Parser parses SML item text into SECS-II items.
type Parser struct {
	pos        int
	len        int
	input      string
	data       string
	strictMode bool
}

// NewParser creates a new SML item parser.
func NewParser() *Parser {
	return &Parser{}
}

// WithStrictMode sets if backslash escapes are interpreted inside quoted text.
// It pairs with the WithStrict option of Formatter. Defaults to false.
func (p *Parser) WithStrictMode(enable bool) *Parser {
	p.strictMode = enable
	return p
}

// Parse parses a single SML item using a non-strict Parser.
func Parse(input string) (secs2.Item, error) {
	return NewParser().Parse(input)
}

// ParseStrict parses a single SML item using a strict Parser.
func ParseStrict(input string) (secs2.Item, error) {
	return NewParser().WithStrictMode(true).Parse(input)
}

// Parse parses the input, which must hold exactly one item surrounded by optional
// whitespace and comments.
//
// Item text has the form <FORMAT[size] values...>. The size is optional and is either
// a count n or a range n..m, optionally with one side left out; when present, the
// number of parsed elements must fall within it. Numbers are accepted in any Go
// integer base prefix, booleans as T, F, True or False, and text as quoted runs and
// 0xNN character codes.
func (p *Parser) Parse(input string) (secs2.Item, error) {
	p.input = input
	p.data = input
	p.len = len(input)
	p.pos = 0

	p.skipComment()
	if p.peekNonSpaceRune() == eof {
		return nil, p.errorf("empty input")
	}

	item, err := p.parseItem()
	if err != nil {
		return nil, err
	}

	p.skipComment()
	if ch := p.peekNonSpaceRune(); ch != eof {
		return nil, p.errorf("unexpected %q after item", ch)
	}

	return item, nil
}

func (p *Parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", ErrSyntax, p.pos, fmt.Sprintf(format, args...))
}

func (p *Parser) parseItem() (secs2.Item, error) {
	ch := p.nextNonSpaceRune()
	if ch != '<' {
		return nil, p.errorf("expected '<', found %q", ch)
	}

	format, ok := p.parseItemType()
	if !ok {
		return nil, p.errorf("failed to parse item type")
	}
	minSize, maxSize, err := p.parseItemSize()
	if err != nil {
		return nil, err
	}

	p.skipComment()

	var item secs2.Item
	switch format { //nolint:exhaustive
	case secs2.FormatList:
		item, err = p.parseList()
	case secs2.FormatASCII, secs2.FormatJIS8:
		item, err = p.parseText(format)
	case secs2.FormatBoolean:
		item, err = p.parseBoolean()
	case secs2.FormatBinary, secs2.FormatU1:
		item, err = parseUints[byte](p, format, 8)
	case secs2.FormatF4:
		item, err = parseFloats[float32](p, format, 32)
	case secs2.FormatF8:
		item, err = parseFloats[float64](p, format, 64)
	case secs2.FormatI1:
		item, err = parseInts[int8](p, format, 8)
	case secs2.FormatI2:
		item, err = parseInts[int16](p, format, 16)
	case secs2.FormatI4:
		item, err = parseInts[int32](p, format, 32)
	case secs2.FormatI8:
		item, err = parseInts[int64](p, format, 64)
	case secs2.FormatU2:
		item, err = parseUints[uint16](p, format, 16)
	case secs2.FormatU4:
		item, err = parseUints[uint32](p, format, 32)
	case secs2.FormatU8:
		item, err = parseUints[uint64](p, format, 64)
	}
	if err != nil {
		return nil, err
	}

	if maxSize >= 0 && (item.Count() < minSize || item.Count() > maxSize) {
		return nil, p.errorf("%s item has %d elements, declared size is %d..%d", format, item.Count(), minSize, maxSize)
	}

	p.skipComment()

	return item, nil
}

func (p *Parser) parseList() (secs2.Item, error) {
	var childItems []secs2.Item

	for {
		p.skipComment()
		switch ch := p.peekNonSpaceRune(); ch {
		case '<':
			item, err := p.parseItem()
			if err != nil {
				return nil, err
			}
			childItems = append(childItems, item)

		case '>':
			p.forward(1)
			return secs2.NewList(childItems)

		case eof:
			return nil, p.errorf("unexpected end of input in list")

		default:
			return nil, p.errorf("expected child data item or '<', '>', found %q", ch)
		}
	}
}

// parseText parses quoted runs and 0xNN character codes up to the closing '>'.
//
// In strict mode a backslash inside a quoted run escapes the next character.
// Otherwise a run ends at the first matching quote and backslashes are literal.
func (p *Parser) parseText(format secs2.Format) (secs2.Item, error) {
	var sb strings.Builder

	for {
		ch := p.peekNonSpaceRune()
		switch ch {
		case eof:
			return nil, p.errorf("invalid %s item, got EOF before item end", format)

		case '>':
			p.forward(1)
			item, err := secs2.NewText(format, sb.String())
			if err != nil {
				return nil, fmt.Errorf("%w at offset %d: %w", ErrSyntax, p.pos, err)
			}
			return item, nil

		case '"', '\'':
			p.forward(1)
			if err := p.readQuoted(&sb, ch); err != nil {
				return nil, err
			}

		default:
			token := p.nextToken()
			val, err := strconv.ParseUint(token, 0, 8)
			if err != nil {
				return nil, p.errorf("expected quoted text or character code, found %q", token)
			}
			if val > unicode.MaxASCII {
				return nil, p.errorf("character code out of ASCII range, got %d", val)
			}
			sb.WriteByte(byte(val))
		}
	}
}

func (p *Parser) readQuoted(sb *strings.Builder, quote rune) error {
	escaped := false
	for i, ch := range p.data {
		switch {
		case ch == '\n' || ch == '\r':
			return p.errorf("unclosed quote string")
		case escaped:
			sb.WriteRune(ch)
			escaped = false
		case ch == '\\' && p.strictMode:
			escaped = true
		case ch == quote:
			p.forward(i + 1)
			return nil
		default:
			sb.WriteRune(ch)
		}
	}

	return p.errorf("unclosed quote string")
}

func (p *Parser) parseBoolean() (secs2.Item, error) {
	values := p.getItemValueStrings()
	items := make([]bool, 0, len(values))

	for _, val := range values {
		switch strings.ToUpper(val) {
		case "T", "TRUE":
			items = append(items, true)
		case "F", "FALSE":
			items = append(items, false)
		default:
			return nil, p.errorf("expect boolean, found %s", val)
		}
	}

	return secs2.NewArray(secs2.FormatBoolean, items)
}

func parseInts[T int8 | int16 | int32 | int64](p *Parser, format secs2.Format, bitSize int) (secs2.Item, error) {
	values := p.getItemValueStrings()
	items := make([]T, 0, len(values))

	for _, val := range values {
		item, err := strconv.ParseInt(val, 0, bitSize)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return nil, p.errorf("%s range overflow: %s", format, val)
			}
			return nil, p.errorf("expect signed integer, found %s", val)
		}

		items = append(items, T(item))
	}

	return secs2.NewArray(format, items)
}

func parseUints[T byte | uint16 | uint32 | uint64](p *Parser, format secs2.Format, bitSize int) (secs2.Item, error) {
	values := p.getItemValueStrings()
	items := make([]T, 0, len(values))

	for _, val := range values {
		item, err := strconv.ParseUint(val, 0, bitSize)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return nil, p.errorf("%s range overflow: %s", format, val)
			}
			return nil, p.errorf("expect unsigned integer, found %s", val)
		}

		items = append(items, T(item))
	}

	return secs2.NewArray(format, items)
}

func parseFloats[T float32 | float64](p *Parser, format secs2.Format, bitSize int) (secs2.Item, error) {
	values := p.getItemValueStrings()
	items := make([]T, 0, len(values))

	for _, val := range values {
		item, err := strconv.ParseFloat(val, bitSize)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return nil, p.errorf("%s overflow: %s", format, val)
			}
			return nil, p.errorf("expect float, found %s", val)
		}

		items = append(items, T(item))
	}

	return secs2.NewArray(format, items)
}

// getItemValueStrings returns the whitespace separated tokens up to the closing '>'
// and consumes them together with the '>'.
func (p *Parser) getItemValueStrings() []string {
	rabIdx := strings.IndexByte(p.data, '>')
	if rabIdx == -1 {
		return []string{p.data}
	}

	items := strings.Fields(p.data[:rabIdx])
	p.forward(rabIdx + 1)

	return items
}

// parseItemSize parses an optional [n], [n..m], [n..] or [..m] size.
// maxSize is -1 when the item has no size.
func (p *Parser) parseItemSize() (minSize, maxSize int, err error) {
	if p.peekNonSpaceRune() != '[' {
		return 0, -1, nil
	}
	p.forward(1)

	if strings.HasPrefix(p.data, "..") { // no minSize, only maxSize
		p.forward(2)
		maxSize, err = p.nextItemSize()
		if err != nil {
			return 0, 0, err
		}
	} else {
		minSize, err = p.nextItemSize()
		if err != nil {
			return 0, 0, err
		}

		maxSize = minSize
		if strings.HasPrefix(p.data, "..") {
			p.forward(2)
			if p.peekNonSpaceRune() == ']' {
				maxSize = secs2.MaxByteSize
			} else if maxSize, err = p.nextItemSize(); err != nil {
				return 0, 0, err
			}
		}
	}

	if p.nextNonSpaceRune() != ']' {
		return 0, 0, p.errorf("invalid item size")
	}

	if minSize > maxSize {
		return 0, 0, p.errorf("minSize:%d > maxSize:%d", minSize, maxSize)
	}

	return minSize, maxSize, nil
}

// parseItemType reads the format tag, e.g. "L", "BOOLEAN" or "U4".
func (p *Parser) parseItemType() (secs2.Format, bool) {
	p.skipSpace()

	end := strings.IndexFunc(p.data, func(r rune) bool {
		return !(r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	if end <= 0 {
		return 0, false
	}

	format, ok := secs2.ParseFormat(p.data[:end])
	if !ok {
		return 0, false
	}
	p.forward(end)

	return format, true
}

func (p *Parser) forward(n int) bool {
	if p.pos+n <= p.len {
		p.pos += n
		p.data = p.input[p.pos:]
		return true
	}
	return false
}

func (p *Parser) skipSpace() bool {
	for i, r := range p.data {
		switch r {
		case ' ', '\t', '\r', '\n':
			continue
		default:
			return p.forward(i)
		}
	}
	p.forward(len(p.data))

	return false
}

// skipComment skips whitespace and any number of // line and /* block */ comments.
func (p *Parser) skipComment() {
	for p.skipSpace() {
		switch {
		case strings.HasPrefix(p.data, "//"):
			i := strings.IndexByte(p.data, '\n')
			if i < 0 {
				p.forward(len(p.data))
				return
			}
			p.forward(i + 1)
		case strings.HasPrefix(p.data, "/*"):
			i := strings.Index(p.data, "*/")
			if i < 0 {
				p.forward(len(p.data))
				return
			}
			p.forward(i + 2)
		default:
			return
		}
	}
}

func (p *Parser) peekNonSpaceRune() rune {
	if !p.skipSpace() {
		return eof
	}
	return rune(p.data[0])
}

func (p *Parser) nextNonSpaceRune() rune {
	if !p.skipSpace() {
		return eof
	}
	r := rune(p.data[0])
	p.forward(1)

	return r
}

// nextToken consumes characters up to whitespace, a quote or '>'.
func (p *Parser) nextToken() string {
	end := strings.IndexAny(p.data, " \t\r\n'\">")
	if end < 0 {
		end = len(p.data)
	}
	token := p.data[:end]
	p.forward(end)

	return token
}

func (p *Parser) nextItemSize() (int, error) {
	end := strings.IndexFunc(p.data, func(r rune) bool { return r < '0' || r > '9' })
	if end < 0 {
		end = len(p.data)
	}
	if end == 0 {
		return 0, p.errorf("invalid item size")
	}

	size, err := strconv.Atoi(p.data[:end])
	if err != nil || size > secs2.MaxByteSize {
		return 0, p.errorf("invalid item size %q", p.data[:end])
	}
	p.forward(end)

	return size, nil
}
