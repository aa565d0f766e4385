package safenum

import "testing"

// BenchmarkAndFastPath exercises the interval-only fast path: And's result
// interval {0, min(u1,u2)} is always a subset of a same-range unsigned
// operand's own bounds, so rangeCheck never needs the runtime fallback.
// Add has no equivalent non-trivial fast-path case under the Native
// promotion policy, since a sum's interval generally widens past either
// operand's own range — see dispatchBinary's doc comment in operators.go.
func BenchmarkAndFastPath(b *testing.B) {
	x := MustNew[uint8, rByte, nativeP, ignoreE](0b1100)
	y := MustNew[uint8, rByte, nativeP, ignoreE](0b1010)
	for i := 0; i < b.N; i++ {
		_, _ = And(x, y)
	}
}

func BenchmarkAddCheckedPath(b *testing.B) {
	x := MustNew[int16, r0to100, nativeP, ignoreE](60)
	y := MustNew[int16, r0to100, nativeP, ignoreE](60)
	for i := 0; i < b.N; i++ {
		_, _ = Add(x, y)
	}
}

func BenchmarkCheckedMul64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = CheckedMul[int64](1<<40, 3)
	}
}

func BenchmarkLessStaticSeparation(b *testing.B) {
	x := MustNew[int16, r0to10, nativeP, ignoreE](5)
	y := MustNew[int16, r100to200, nativeP, ignoreE](150)
	for i := 0; i < b.N; i++ {
		_ = LessCross[int16, int16, r0to10, r100to200, nativeP, nativeP, ignoreE, ignoreE](x, y)
	}
}
