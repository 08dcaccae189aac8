package secs2

// ToBool returns the first element of a BOOLEAN item. It fails on an empty item.
func ToBool(item Item) (bool, error) { return GetValue[bool](item) }

// ToInt8 returns the first element of an I1 item. It fails on an empty item.
func ToInt8(item Item) (int8, error) { return GetValue[int8](item) }

// ToInt16 returns the first element of an I2 item. It fails on an empty item.
func ToInt16(item Item) (int16, error) { return GetValue[int16](item) }

// ToInt32 returns the first element of an I4 item. It fails on an empty item.
func ToInt32(item Item) (int32, error) { return GetValue[int32](item) }

// ToInt64 returns the first element of an I8 item. It fails on an empty item.
func ToInt64(item Item) (int64, error) { return GetValue[int64](item) }

// ToUint8 returns the first element of a B or U1 item. It fails on an empty item.
func ToUint8(item Item) (uint8, error) { return GetValue[uint8](item) }

// ToUint16 returns the first element of a U2 item. It fails on an empty item.
func ToUint16(item Item) (uint16, error) { return GetValue[uint16](item) }

// ToUint32 returns the first element of a U4 item. It fails on an empty item.
func ToUint32(item Item) (uint32, error) { return GetValue[uint32](item) }

// ToUint64 returns the first element of a U8 item. It fails on an empty item.
func ToUint64(item Item) (uint64, error) { return GetValue[uint64](item) }

// ToFloat32 returns the first element of an F4 item. It fails on an empty item.
func ToFloat32(item Item) (float32, error) { return GetValue[float32](item) }

// ToFloat64 returns the first element of an F8 item. It fails on an empty item.
func ToFloat64(item Item) (float64, error) { return GetValue[float64](item) }

// ToString returns the string of an A or J item. An empty text item yields "".
func ToString(item Item) (string, error) { return GetValueOrDefault[string](item) }

// ToBoolPtr returns a copy of the first element of a BOOLEAN item, or nil when it is empty.
func ToBoolPtr(item Item) (*bool, error) { return GetValueOrDefault[*bool](item) }

// ToInt8Ptr returns a copy of the first element of an I1 item, or nil when it is empty.
func ToInt8Ptr(item Item) (*int8, error) { return GetValueOrDefault[*int8](item) }

// ToInt16Ptr returns a copy of the first element of an I2 item, or nil when it is empty.
func ToInt16Ptr(item Item) (*int16, error) { return GetValueOrDefault[*int16](item) }

// ToInt32Ptr returns a copy of the first element of an I4 item, or nil when it is empty.
func ToInt32Ptr(item Item) (*int32, error) { return GetValueOrDefault[*int32](item) }

// ToInt64Ptr returns a copy of the first element of an I8 item, or nil when it is empty.
func ToInt64Ptr(item Item) (*int64, error) { return GetValueOrDefault[*int64](item) }

// ToUint8Ptr returns a copy of the first element of a B or U1 item, or nil when it is empty.
func ToUint8Ptr(item Item) (*uint8, error) { return GetValueOrDefault[*uint8](item) }

// ToUint16Ptr returns a copy of the first element of a U2 item, or nil when it is empty.
func ToUint16Ptr(item Item) (*uint16, error) { return GetValueOrDefault[*uint16](item) }

// ToUint32Ptr returns a copy of the first element of a U4 item, or nil when it is empty.
func ToUint32Ptr(item Item) (*uint32, error) { return GetValueOrDefault[*uint32](item) }

// ToUint64Ptr returns a copy of the first element of a U8 item, or nil when it is empty.
func ToUint64Ptr(item Item) (*uint64, error) { return GetValueOrDefault[*uint64](item) }

// ToFloat32Ptr returns a copy of the first element of an F4 item, or nil when it is empty.
func ToFloat32Ptr(item Item) (*float32, error) { return GetValueOrDefault[*float32](item) }

// ToFloat64Ptr returns a copy of the first element of an F8 item, or nil when it is empty.
func ToFloat64Ptr(item Item) (*float64, error) { return GetValueOrDefault[*float64](item) }

// ToBools returns the elements of a BOOLEAN item. The slice must not be modified.
func ToBools(item Item) ([]bool, error) { return GetValue[[]bool](item) }

// ToInt8s returns the elements of an I1 item. The slice must not be modified.
func ToInt8s(item Item) ([]int8, error) { return GetValue[[]int8](item) }

// ToInt16s returns the elements of an I2 item. The slice must not be modified.
func ToInt16s(item Item) ([]int16, error) { return GetValue[[]int16](item) }

// ToInt32s returns the elements of an I4 item. The slice must not be modified.
func ToInt32s(item Item) ([]int32, error) { return GetValue[[]int32](item) }

// ToInt64s returns the elements of an I8 item. The slice must not be modified.
func ToInt64s(item Item) ([]int64, error) { return GetValue[[]int64](item) }

// ToUint8s returns the elements of a B or U1 item. The slice must not be modified.
func ToUint8s(item Item) ([]uint8, error) { return GetValue[[]uint8](item) }

// ToUint16s returns the elements of a U2 item. The slice must not be modified.
func ToUint16s(item Item) ([]uint16, error) { return GetValue[[]uint16](item) }

// ToUint32s returns the elements of a U4 item. The slice must not be modified.
func ToUint32s(item Item) ([]uint32, error) { return GetValue[[]uint32](item) }

// ToUint64s returns the elements of a U8 item. The slice must not be modified.
func ToUint64s(item Item) ([]uint64, error) { return GetValue[[]uint64](item) }

// ToFloat32s returns the elements of an F4 item. The slice must not be modified.
func ToFloat32s(item Item) ([]float32, error) { return GetValue[[]float32](item) }

// ToFloat64s returns the elements of an F8 item. The slice must not be modified.
func ToFloat64s(item Item) ([]float64, error) { return GetValue[[]float64](item) }
