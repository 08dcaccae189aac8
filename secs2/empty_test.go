package secs2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmpty(t *testing.T) {
	require := require.New(t)

	for _, f := range Formats() {
		item := Empty(f)
		require.NotNil(item, f.String())
		require.Same(item, Empty(f), f.String())
		require.Equal(f, item.Format())
		require.Equal(0, item.Count())
		require.True(item.IsEmpty())
		require.Equal([]byte{byte(f)<<2 | 1, 0x00}, item.RawBytes(), f.String())
		require.Equal("<"+f.String()+" [0] >", item.String())
	}

	require.Nil(Empty(Format(0o77)))
	require.Nil(Empty(Format(0o01)))
}

func TestEmpty_Constructors(t *testing.T) {
	tests := []struct {
		format Format
		item   Item
	}{
		{FormatList, L()},
		{FormatBinary, B()},
		{FormatBoolean, Boolean()},
		{FormatASCII, A("")},
		{FormatJIS8, J("")},
		{FormatI1, I1()},
		{FormatI2, I2()},
		{FormatI4, I4()},
		{FormatI8, I8()},
		{FormatU1, U1()},
		{FormatU2, U2()},
		{FormatU4, U4()},
		{FormatU8, U8()},
		{FormatF4, F4()},
		{FormatF8, F8()},
		{FormatU2, U2(make([]uint16, 0)...)},
	}

	require := require.New(t)

	for _, test := range tests {
		require.Same(Empty(test.format), test.item, test.format.String())
	}

	list, err := NewList([]Item{})
	require.NoError(err)
	require.Same(Empty(FormatList), list)

	text, err := NewText(FormatJIS8, "")
	require.NoError(err)
	require.Same(Empty(FormatJIS8), text)
}

func TestEmpty_RawBytesFirstByte(t *testing.T) {
	expected := map[Format]byte{
		FormatList:    0x01,
		FormatBinary:  0x21,
		FormatBoolean: 0x25,
		FormatASCII:   0x41,
		FormatJIS8:    0x45,
		FormatI8:      0x61,
		FormatI1:      0x65,
		FormatI2:      0x69,
		FormatI4:      0x71,
		FormatF8:      0x81,
		FormatF4:      0x91,
		FormatU8:      0xA1,
		FormatU1:      0xA5,
		FormatU2:      0xA9,
		FormatU4:      0xB1,
	}

	require := require.New(t)
	require.Len(expected, len(Formats()))

	for f, b := range expected {
		require.Equal(b, Empty(f).RawBytes()[0], f.String())
	}
}
