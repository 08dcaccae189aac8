package secs2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetValue(t *testing.T) {
	require := require.New(t)

	v, err := GetValue[int32](I4(7, 8))
	require.NoError(err)
	require.Equal(int32(7), v)

	values, err := GetValue[[]int32](I4(7, 8))
	require.NoError(err)
	require.Equal([]int32{7, 8}, values)

	ptr, err := GetValue[*int32](I4(7))
	require.NoError(err)
	require.NotNil(ptr)
	require.Equal(int32(7), *ptr)

	s, err := GetValue[string](A("abc"))
	require.NoError(err)
	require.Equal("abc", s)

	s, err = GetValue[string](A(""))
	require.NoError(err)
	require.Empty(s)

	b, err := GetValue[byte](B(0x10, 0x20))
	require.NoError(err)
	require.Equal(byte(0x10), b)

	u, err := GetValue[uint8](U1(200))
	require.NoError(err)
	require.Equal(uint8(200), u)

	flag, err := GetValue[*bool](Boolean(true))
	require.NoError(err)
	require.True(*flag)
}

func TestGetValue_Errors(t *testing.T) {
	require := require.New(t)

	itemErr := &ItemError{}

	_, err := GetValue[int32](I4())
	require.ErrorIs(err, ErrEmptyItem)
	require.ErrorAs(err, &itemErr)
	require.Equal("GetValue", itemErr.Op)
	require.Equal(FormatI4, itemErr.Format)

	_, err = GetValue[*int32](I4())
	require.ErrorIs(err, ErrEmptyItem)

	_, err = GetValue[string](I4(1))
	require.ErrorIs(err, ErrIncompatibleType)

	_, err = GetValue[int64](I4(1))
	require.ErrorIs(err, ErrIncompatibleType)

	_, err = GetValue[*uint32](I4(1))
	require.ErrorIs(err, ErrIncompatibleType)

	_, err = GetValue[int32](L(I4(1)))
	require.ErrorIs(err, ErrNotValue)

	_, err = GetValue[int32](nil)
	require.ErrorIs(err, ErrNilItem)
}

func TestGetValueOrDefault(t *testing.T) {
	require := require.New(t)

	v, err := GetValueOrDefault[int32](I4())
	require.NoError(err)
	require.Equal(int32(0), v)

	ptr, err := GetValueOrDefault[*int32](I4())
	require.NoError(err)
	require.Nil(ptr)

	ptr, err = GetValueOrDefault[*int32](I4(-5))
	require.NoError(err)
	require.Equal(int32(-5), *ptr)

	_, err = GetValueOrDefault[*int32](U4(5))
	require.ErrorIs(err, ErrIncompatibleType)

	_, err = GetValueOrDefault[int32](L())
	require.ErrorIs(err, ErrNotValue)
}

func TestGetValue_PointerIsCopy(t *testing.T) {
	require := require.New(t)

	item := U2(10, 20)
	ptr, err := GetValue[*uint16](item)
	require.NoError(err)
	*ptr = 99

	v, err := ToUint16(item)
	require.NoError(err)
	require.Equal(uint16(10), v)
	require.Equal([]byte{0xA9, 0x04, 0, 10, 0, 20}, item.RawBytes())
}

func TestCast_Scalars(t *testing.T) {
	require := require.New(t)

	boolVal, err := ToBool(Boolean(true))
	require.NoError(err)
	require.True(boolVal)

	i8, err := ToInt8(I1(-8))
	require.NoError(err)
	require.Equal(int8(-8), i8)

	i16, err := ToInt16(I2(-16))
	require.NoError(err)
	require.Equal(int16(-16), i16)

	i32, err := ToInt32(I4(-32))
	require.NoError(err)
	require.Equal(int32(-32), i32)

	i64, err := ToInt64(I8(-64))
	require.NoError(err)
	require.Equal(int64(-64), i64)

	u8, err := ToUint8(U1(8))
	require.NoError(err)
	require.Equal(uint8(8), u8)

	u8, err = ToUint8(B(9))
	require.NoError(err)
	require.Equal(uint8(9), u8)

	u16, err := ToUint16(U2(16))
	require.NoError(err)
	require.Equal(uint16(16), u16)

	u32, err := ToUint32(U4(32))
	require.NoError(err)
	require.Equal(uint32(32), u32)

	u64, err := ToUint64(U8(64))
	require.NoError(err)
	require.Equal(uint64(64), u64)

	f32, err := ToFloat32(F4(1.25))
	require.NoError(err)
	require.InDelta(1.25, f32, 0)

	f64, err := ToFloat64(F8(2.5))
	require.NoError(err)
	require.InDelta(2.5, f64, 0)

	s, err := ToString(J("ｱ"))
	require.NoError(err)
	require.Equal("ｱ", s)

	_, err = ToFloat64(F4(1))
	require.ErrorIs(err, ErrIncompatibleType)

	_, err = ToBool(Boolean())
	require.ErrorIs(err, ErrEmptyItem)
}

func TestCast_Nullable(t *testing.T) {
	require := require.New(t)

	p, err := ToUint32Ptr(U4())
	require.NoError(err)
	require.Nil(p)

	p, err = ToUint32Ptr(U4(3))
	require.NoError(err)
	require.Equal(uint32(3), *p)

	fp, err := ToFloat64Ptr(F8())
	require.NoError(err)
	require.Nil(fp)

	bp, err := ToBoolPtr(Boolean(false))
	require.NoError(err)
	require.False(*bp)

	_, err = ToInt8Ptr(A("x"))
	require.ErrorIs(err, ErrIncompatibleType)
}

func TestCast_Slices(t *testing.T) {
	require := require.New(t)

	bools, err := ToBools(Boolean(true, false))
	require.NoError(err)
	require.Equal([]bool{true, false}, bools)

	f32s, err := ToFloat32s(F4(1, 2))
	require.NoError(err)
	require.Equal([]float32{1, 2}, f32s)

	u64s, err := ToUint64s(U8())
	require.NoError(err)
	require.Empty(u64s)

	_, err = ToInt16s(I4(1))
	require.ErrorIs(err, ErrIncompatibleType)
}
