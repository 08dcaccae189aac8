package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCloneSlice(t *testing.T) {
	require := require.New(t)

	src := []int{1, 2, 3}
	clone := CloneSlice(src, 0)
	require.Equal(src, clone)

	clone[0] = 100
	require.Equal(1, src[0])

	require.Len(CloneSlice(src, 5), 5)
	require.Empty(CloneSlice([]int{}, 0))
}

func TestDecodeHex(t *testing.T) {
	tests := []struct {
		input    string
		expected []byte
	}{
		{input: "", expected: []byte{}},
		{input: "41 03 61 62 63", expected: []byte{0x41, 0x03, 0x61, 0x62, 0x63}},
		{input: "0x41,0x03", expected: []byte{0x41, 0x03}},
		{input: "a9\n04\t00 01", expected: []byte{0xA9, 0x04, 0x00, 0x01}},
	}

	require := require.New(t)

	for _, test := range tests {
		data, err := DecodeHex(test.input)
		require.NoError(err, test.input)
		require.Equal(test.expected, data, test.input)
	}

	_, err := DecodeHex("4")
	require.Error(err)

	_, err = DecodeHex("zz")
	require.Error(err)
}

func TestEncodeHex(t *testing.T) {
	require := require.New(t)

	require.Equal("", EncodeHex(nil))
	require.Equal("A9 04 00 01", EncodeHex([]byte{0xA9, 0x04, 0x00, 0x01}))
}
