package safenum

import "golang.org/x/exp/constraints"

// Limits reports the numeric_limits-style min/max of a native integer type.
// Grounded on the type-switch idiom mongodb's mathutil.go uses to dispatch
// on a generic numeric parameter, rather than on bit tricks: it is explicit
// about every width Go defines and costs nothing at the call sites that
// matter (they all resolve at compile time per instantiation).
func Limits[T constraints.Integer]() (min, max T) {
	var zero T
	switch any(zero).(type) {
	case int8:
		lo, hi := int8(-1<<7), int8(1<<7-1)
		return T(lo), T(hi)
	case int16:
		lo, hi := int16(-1<<15), int16(1<<15-1)
		return T(lo), T(hi)
	case int32:
		lo, hi := int32(-1<<31), int32(1<<31-1)
		return T(lo), T(hi)
	case int64:
		lo, hi := int64(-1<<63), int64(1<<63-1)
		return T(lo), T(hi)
	case int:
		lo, hi := minInt, maxInt
		return T(lo), T(hi)
	case uint8:
		hi := uint8(1<<8 - 1)
		return 0, T(hi)
	case uint16:
		hi := uint16(1<<16 - 1)
		return 0, T(hi)
	case uint32:
		hi := uint32(1<<32 - 1)
		return 0, T(hi)
	case uint64:
		return 0, ^T(0)
	case uint:
		return 0, ^T(0)
	case uintptr:
		return 0, ^T(0)
	default:
		panic("safenum: unsupported integer type in Limits")
	}
}

const (
	maxUintSize = 32 << (^uint(0) >> 63) // 32 or 64
	maxInt      = 1<<(maxUintSize-1) - 1
	minInt      = -maxInt - 1
)

// IsSigned reports whether T's zero value belongs to a signed integer type.
func IsSigned[T constraints.Integer]() bool {
	min, _ := Limits[T]()
	return min < 0
}

// Width returns the bit width of T (8, 16, 32, or 64).
func Width[T constraints.Integer]() int {
	var zero T
	switch any(zero).(type) {
	case int8, uint8:
		return 8
	case int16, uint16:
		return 16
	case int32, uint32:
		return 32
	case int64, uint64, int, uint, uintptr:
		return 64
	default:
		panic("safenum: unsupported integer type in Width")
	}
}

// LessThan implements §4.3's safe-compare: the mathematical ordering of two
// native integers of any (possibly different) signedness or width,
// computed without the silent promotion anomalies a bare `a < b` suffers
// when A and B differ in signedness. Both operands are widened into big.Int
// only conceptually — in practice every width Go offers fits in int64 or
// uint64, so the comparison is done by first checking sign disagreement
// (negative values are always less than any non-negative value regardless
// of width) and otherwise comparing within a common unsigned 64-bit domain.
func LessThan[A, B constraints.Integer](a A, b B) bool {
	aNeg := IsSigned[A]() && int64(a) < 0
	bNeg := IsSigned[B]() && int64(b) < 0
	switch {
	case aNeg && !bNeg:
		return true
	case !aNeg && bNeg:
		return false
	case aNeg && bNeg:
		// Both negative: compare as signed 64-bit, safe since no native
		// signed width exceeds 64 bits.
		return int64(a) < int64(b)
	default:
		// Both non-negative: compare in the unsigned 64-bit domain, safe
		// since no native width exceeds 64 bits.
		return uint64(a) < uint64(b)
	}
}

// GreaterThan is the mirror of LessThan.
func GreaterThan[A, B constraints.Integer](a A, b B) bool {
	return LessThan(b, a)
}

// Equal reports mathematical equality of a and b regardless of signedness.
func Equal[A, B constraints.Integer](a A, b B) bool {
	return !LessThan(a, b) && !LessThan(b, a)
}
