package sml

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-secs-item/codec"
	"github.com/arloliu/go-secs-item/secs2"
)

func TestParse(t *testing.T) {
	tests := []struct {
		description  string     // test case description
		input        string     // input to the parser
		expectedItem secs2.Item // expected parsed item
	}{
		{description: "empty list", input: "<L>", expectedItem: secs2.L()},
		{description: "empty list with size", input: "<L[0]>", expectedItem: secs2.L()},
		{description: "ASCII", input: `<A[11] "lorem ipsum">`, expectedItem: secs2.A("lorem ipsum")},
		{description: "ASCII single quotes", input: `<A 'say "hi"'>`, expectedItem: secs2.A(`say "hi"`)},
		{description: "ASCII with char codes", input: `<A "ab" 0x0D 10 "c">`, expectedItem: secs2.A("ab\r\nc")},
		{description: "ASCII with >", input: `<A "a>b">`, expectedItem: secs2.A("a>b")},
		{description: "empty ASCII", input: "<A[0]>", expectedItem: secs2.A("")},
		{description: "JIS-8", input: `<J "ｶﾅ">`, expectedItem: secs2.J("ｶﾅ")},
		{description: "binary", input: "<B[3] 0x00 0b1010 255>", expectedItem: secs2.B(0, 10, 255)},
		{description: "boolean", input: "<BOOLEAN[4] T F True false>", expectedItem: secs2.Boolean(true, false, true, false)},
		{description: "I1", input: "<I1 -128 127>", expectedItem: secs2.I1(-128, 127)},
		{description: "I2", input: "<I2 -0x8000>", expectedItem: secs2.I2(-32768)},
		{description: "I4", input: "<I4[2] 0o17 -1>", expectedItem: secs2.I4(15, -1)},
		{description: "I8", input: "<I8 9223372036854775807>", expectedItem: secs2.I8(9223372036854775807)},
		{description: "U1", input: "<U1 1 2>", expectedItem: secs2.U1(1, 2)},
		{description: "U2", input: "<U2 65535>", expectedItem: secs2.U2(65535)},
		{description: "U4", input: "<U4[1..3] 1 2>", expectedItem: secs2.U4(1, 2)},
		{description: "U8", input: "<U8[..2] 0xFFFFFFFFFFFFFFFF>", expectedItem: secs2.U8(18446744073709551615)},
		{description: "F4", input: "<F4 -1.0 0 3.141592>", expectedItem: secs2.F4(-1, 0, 3.141592)},
		{description: "F8", input: "<F8 1e100>", expectedItem: secs2.F8(1e100)},
		{description: "lowercase tag", input: "<u2[1] 7>", expectedItem: secs2.U2(7)},
		{
			description: "nested list with comments",
			input: `
				// equipment constants
				<L[2]
					<A "PPID1"> /* recipe */
					<L[2..]
						<U4 100 200>
						<L>
					>
				>
				// trailing`,
			expectedItem: secs2.L(
				secs2.A("PPID1"),
				secs2.L(secs2.U4(100, 200), secs2.L()),
			),
		},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)

		item, err := Parse(test.input)
		require.NoError(err)
		require.True(secs2.Equal(test.expectedItem, item), "parsed %s", Format(item))
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		description    string
		input          string
		expectedErrStr string
	}{
		{description: "empty input", input: "  // nothing", expectedErrStr: "empty input"},
		{description: "missing <", input: "A 'x'>", expectedErrStr: "expected '<'"},
		{description: "unknown type", input: "<X1 1>", expectedErrStr: "failed to parse item type"},
		{description: "unclosed list", input: "<L <A 'x'>", expectedErrStr: "unexpected end of input"},
		{description: "unclosed quote", input: `<A "abc>`, expectedErrStr: "unclosed quote"},
		{description: "bad boolean", input: "<BOOLEAN yes>", expectedErrStr: "expect boolean"},
		{description: "I1 overflow", input: "<I1 128>", expectedErrStr: "I1 range overflow"},
		{description: "U2 negative", input: "<U2 -1>", expectedErrStr: "expect unsigned integer"},
		{description: "binary overflow", input: "<B 256>", expectedErrStr: "B range overflow"},
		{description: "F4 overflow", input: "<F4 1e40>", expectedErrStr: "F4 overflow"},
		{description: "size mismatch", input: "<U2[3] 1 2>", expectedErrStr: "declared size is 3..3"},
		{description: "bad size range", input: "<U2[3..1] 1 2>", expectedErrStr: "minSize:3 > maxSize:1"},
		{description: "bad size", input: "<U2[x] 1>", expectedErrStr: "invalid item size"},
		{description: "char code out of range", input: "<A 0x80>", expectedErrStr: "out of ASCII range"},
		{description: "kanji in J", input: `<J "漢">`, expectedErrStr: "text cannot be encoded"},
		{description: "trailing item", input: "<L> <L>", expectedErrStr: "after item"},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)

		item, err := Parse(test.input)
		require.Nil(item)
		require.ErrorIs(err, ErrSyntax)
		require.Contains(err.Error(), test.expectedErrStr)
	}

	_, err := Parse(`<J "漢">`)
	require.ErrorIs(err, secs2.ErrInvalidText)
}

func TestParse_ListSizes(t *testing.T) {
	require := require.New(t)

	item, err := Parse("<L[0..]>")
	require.NoError(err)
	require.Same(secs2.Empty(secs2.FormatList), item)

	item, err = Parse("<L[..3] <U1 1>>")
	require.NoError(err)
	require.True(secs2.Equal(secs2.L(secs2.U1(1)), item))

	_, err = Parse("<L[2..] <U1 1>>")
	require.ErrorContains(err, "declared size is 2..16777215")

	_, err = Parse("<L[16777215]>")
	require.ErrorContains(err, "declared size is 16777215..16777215")
}

func TestParse_ListSizeDoesNotPreallocate(t *testing.T) {
	inputs := []string{"<L[0..]>", "<L[16777215]>", "<L[..16777215] <L>>"}

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	for _, input := range inputs {
		_, _ = Parse(input)
	}
	runtime.ReadMemStats(&after)

	require.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(1<<20))
}

func TestParse_Strict(t *testing.T) {
	require := require.New(t)

	item, err := ParseStrict(`<A "a\"b\\c" 0x0D 0x0A>`)
	require.NoError(err)
	require.True(secs2.Equal(secs2.A("a\"b\\c\r\n"), item))

	// non-strict parsing keeps backslashes
	item, err = Parse(`<A "a\b">`)
	require.NoError(err)
	require.True(secs2.Equal(secs2.A(`a\b`), item))
}

func TestParse_RoundTrip(t *testing.T) {
	items := []secs2.Item{
		secs2.L(),
		secs2.L(
			secs2.A("lorem ipsum"),
			secs2.J("ｿﾌﾄ"),
			secs2.B(0, 1, 0xFF),
			secs2.Boolean(true, false),
			secs2.L(
				secs2.I1(-1), secs2.I2(-2), secs2.I4(-4), secs2.I8(-8),
				secs2.U1(1), secs2.U2(2), secs2.U4(4), secs2.U8(8),
			),
			secs2.F4(3.141592, -0.5),
			secs2.F8(2.718281828459045),
			secs2.U4(),
		),
		secs2.A(strings.Repeat("x", 300)),
	}

	require := require.New(t)

	for _, item := range items {
		text := Format(item)
		parsed, err := Parse(text)
		require.NoError(err, text)
		require.Equal(codec.Encode(item), codec.Encode(parsed), text)
	}

	tricky := secs2.A("quote \" back \\ cr \r lf \n tab \t end")
	text := NewFormatter(WithStrict(true)).Format(tricky)
	parsed, err := ParseStrict(text)
	require.NoError(err, text)
	require.Equal(codec.Encode(tricky), codec.Encode(parsed))
}

func BenchmarkParse_AllTypes(b *testing.B) {
	input := Format(secs2.L(
		secs2.A("lorem ipsum"),
		secs2.B(1, 2, 3),
		secs2.Boolean(true, false),
		secs2.I4(1, 2, 3, 4), secs2.U8(5, 6),
		secs2.F8(0.5, 1.5),
		secs2.L(secs2.A("nested")),
	))

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		if _, err := Parse(input); err != nil {
			b.Fatal(err)
		}
	}
}
