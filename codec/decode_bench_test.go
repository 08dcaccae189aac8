package codec

import (
	"testing"

	"github.com/arloliu/go-secs-item/secs2"
)

func BenchmarkDecodeItem_AllTypes(b *testing.B) {
	data := Encode(secs2.L(
		secs2.A("lorem ipsum"),
		secs2.B(1, 2, 3),
		secs2.Boolean(true, false),
		secs2.I1(-1), secs2.I2(-2), secs2.I4(-4), secs2.I8(-8),
		secs2.U1(1), secs2.U2(2), secs2.U4(4), secs2.U8(8),
		secs2.F4(0.5), secs2.F8(1.5),
		secs2.L(secs2.A("nested")),
	))

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		if _, err := DecodeItem(data); err != nil {
			b.Fatal(err)
		}
	}
}

func benchmarkDecodeU4(b *testing.B, count int) {
	values := make([]uint32, count)
	for i := range values {
		values[i] = uint32(i) //nolint:gosec
	}
	data := Encode(secs2.U4(values...))

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		if _, err := DecodeItem(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeItem_U4_10(b *testing.B)   { benchmarkDecodeU4(b, 10) }
func BenchmarkDecodeItem_U4_1000(b *testing.B) { benchmarkDecodeU4(b, 1000) }
