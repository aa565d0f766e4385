// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Interval algebra (§4.5): compile-time-only ranges over native integers,
// and the arithmetic that lets the operator dispatcher (operators.go)
// decide whether a runtime check can be elided. Structurally grounded on
// Consensys' go-corset Interval/Bounds types (closed [min,max] pair with a
// constructor that rejects an inverted range) but specialized to fixed-
// width native integers rather than big.Int, since the operand ranges here
// always come from a Safe[...] type's static [MIN, MAX] or a native type's
// numeric_limits.
package safenum

import "golang.org/x/exp/constraints"

// Interval is the closed range [L, U] with L <= U.
type Interval[T constraints.Integer] struct {
	L, U T
}

// NewInterval builds an Interval, panicking if l > u — an inverted interval
// can never arise from a real static range and signals a programming
// error in the caller (a promotion policy or Range implementation), not a
// runtime fault to be reported through ExceptionPolicy.
func NewInterval[T constraints.Integer](l, u T) Interval[T] {
	if l > u {
		panic("safenum: inverted interval")
	}
	return Interval[T]{L: l, U: u}
}

// Point returns the degenerate interval [v, v].
func Point[T constraints.Integer](v T) Interval[T] { return Interval[T]{L: v, U: v} }

// FullInterval returns T's entire representable range as an interval.
func FullInterval[T constraints.Integer]() Interval[T] {
	min, max := Limits[T]()
	return Interval[T]{L: min, U: max}
}

// Includes reports whether this interval is a superset of other (§3).
func (i Interval[T]) Includes(other Interval[T]) bool {
	return i.L <= other.L && other.U <= i.U
}

// ContainsZero reports whether 0 lies in the interval; used by the
// division/modulus fast-path decision.
func (i Interval[T]) ContainsZero() bool {
	return i.L <= 0 && 0 <= i.U
}

// Ordering is the three-valued result of comparing two intervals.
type Ordering int

const (
	Indeterminate Ordering = iota
	True
	False
)

// LessThan implements §4.5's tri-valued ordering: True iff every value of i
// is strictly below every value of j, False iff the reverse strict
// separation holds, Indeterminate if the intervals could overlap.
func (i Interval[T]) LessThan(j Interval[T]) Ordering {
	switch {
	case i.U < j.L:
		return True
	case i.L > j.U:
		return False
	default:
		return Indeterminate
	}
}

// GreaterThan is the mirror of LessThan.
func (i Interval[T]) GreaterThan(j Interval[T]) Ordering {
	return j.LessThan(i)
}

// Equal reports whether equality is staticly decidable: True only when
// both intervals are the same point. False when both are points with
// different values, or when the intervals are strictly separated. Any
// other case returns Indeterminate — overlap without identity doesn't
// prove equality or inequality when the runtime values are unknown.
func (i Interval[T]) Equal(j Interval[T]) Ordering {
	if i.L == i.U && j.L == j.U {
		if i.L == j.L {
			return True
		}
		return False
	}
	if i.LessThan(j) == True || i.GreaterThan(j) == True {
		return False
	}
	return Indeterminate
}

// AddInterval computes the fallible result interval for addition (§4.5):
// {l1+l2, u1+u2}, with faults propagated from the checked endpoint sums.
func AddInterval[T constraints.Integer](a, b Interval[T]) Fallible[Interval[T]] {
	lo := CheckedAdd(a.L, b.L)
	hi := CheckedAdd(a.U, b.U)
	return combine(lo, hi)
}

// SubInterval computes {l1-u2, u1-l2}.
func SubInterval[T constraints.Integer](a, b Interval[T]) Fallible[Interval[T]] {
	lo := CheckedSub(a.L, b.U)
	hi := CheckedSub(a.U, b.L)
	return combine(lo, hi)
}

// MulInterval computes the min/max over the four endpoint products, per
// §4.5 and §9's mandate to treat 0 as a possible endpoint contributor for
// mixed-sign, zero-containing intervals (all four corners are always
// evaluated here, so a zero endpoint naturally participates).
func MulInterval[T constraints.Integer](a, b Interval[T]) Fallible[Interval[T]] {
	corners := [4]Fallible[T]{
		CheckedMul(a.L, b.L),
		CheckedMul(a.L, b.U),
		CheckedMul(a.U, b.L),
		CheckedMul(a.U, b.U),
	}
	for _, c := range corners {
		if c.IsFault() {
			return Fallible[Interval[T]]{fault: c.Fault(), msg: c.Message()}
		}
	}
	lo, hi := corners[0].Value(), corners[0].Value()
	for _, c := range corners[1:] {
		v := c.Value()
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return Ok(Interval[T]{L: lo, U: hi})
}

// DivInterval computes the result interval for division. If b contains
// zero, the operation can't be statically proven safe and the caller must
// take the runtime-checked path; DivInterval reports that with
// DivideByZero rather than attempting a meaningless endpoint combination.
func DivInterval[T constraints.Integer](a, b Interval[T]) Fallible[Interval[T]] {
	if b.ContainsZero() {
		return Err[Interval[T]](DivideByZero, "divisor interval contains zero")
	}
	corners := [4]Fallible[T]{
		CheckedDiv(a.L, b.L),
		CheckedDiv(a.L, b.U),
		CheckedDiv(a.U, b.L),
		CheckedDiv(a.U, b.U),
	}
	for _, c := range corners {
		if c.IsFault() {
			return Fallible[Interval[T]]{fault: c.Fault(), msg: c.Message()}
		}
	}
	lo, hi := corners[0].Value(), corners[0].Value()
	for _, c := range corners[1:] {
		v := c.Value()
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return Ok(Interval[T]{L: lo, U: hi})
}

// ModInterval computes the result bounds {0, max(|u2|,|l2|)-1} for an
// unsigned divisor interval, mirrored with the sign-of-dividend rule for a
// signed one, per §4.5.
func ModInterval[T constraints.Integer](a, b Interval[T]) Fallible[Interval[T]] {
	if b.ContainsZero() {
		return Err[Interval[T]](DivideByZero, "divisor interval contains zero")
	}
	bound := absT(b.L)
	if u := absT(b.U); u > bound {
		bound = u
	}
	if bound == 0 {
		return Err[Interval[T]](DivideByZero, "divisor interval contains zero")
	}
	maxMag := bound - 1
	if !IsSigned[T]() {
		return Ok(Interval[T]{L: 0, U: maxMag})
	}
	// Signed modulus takes the sign of the dividend (Go's %), so the
	// result can be negative whenever the dividend interval can be.
	lo, hi := T(0), maxMag
	if a.L < 0 {
		lo = -maxMag
	}
	if a.U < 0 && hi > 0 {
		hi = 0
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return Ok(Interval[T]{L: lo, U: hi})
}

func absT[T constraints.Integer](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// ShlInterval computes {l1<<l2, u1<<u2} when every shift amount in b's
// range is in [0, width(T)) and a's interval is non-negative; otherwise it
// is a static DomainError, forcing the runtime-checked path.
func ShlInterval[T constraints.Integer](a Interval[T], b Interval[int]) Fallible[Interval[T]] {
	if b.L < 0 || b.U >= Width[T]() {
		return Err[Interval[T]](DomainError, "shift amount interval out of range")
	}
	if IsSigned[T]() && a.L < 0 {
		return Err[Interval[T]](DomainError, "left shift of a possibly-negative value")
	}
	lo := CheckedShl(a.L, b.L)
	hi := CheckedShl(a.U, b.U)
	return combine(lo, hi)
}

// ShrInterval computes {l1>>u2, u1>>l2} under the analogous constraints.
func ShrInterval[T constraints.Integer](a Interval[T], b Interval[int]) Fallible[Interval[T]] {
	if b.L < 0 || b.U >= Width[T]() {
		return Err[Interval[T]](DomainError, "shift amount interval out of range")
	}
	if IsSigned[T]() && a.L < 0 {
		return Err[Interval[T]](DomainError, "right shift of a possibly-negative value")
	}
	lo := CheckedShr(a.L, b.U)
	hi := CheckedShr(a.U, b.L)
	return combine(lo, hi)
}

// roundUpPow2Minus1 returns 2^ceil(log2(v+1)) - 1, the all-ones mask of the
// smallest width that can hold v. Used by Or/XorInterval's conservative
// envelope.
func roundUpPow2Minus1[T constraints.Integer](v T) T {
	if v <= 0 {
		return 0
	}
	u := uint64(v)
	mask := uint64(1)
	for mask < u {
		mask = mask<<1 | 1
	}
	return T(mask)
}

// OrInterval and XorInterval return the conservative envelope
// {0, roundUpPow2(max(u1,u2))-1}; both operands must be unsigned (§4.4).
func OrInterval[T constraints.Integer](a, b Interval[T]) Fallible[Interval[T]] {
	if IsSigned[T]() {
		return Err[Interval[T]](DomainError, "bitwise OR on signed interval")
	}
	m := a.U
	if b.U > m {
		m = b.U
	}
	return Ok(Interval[T]{L: 0, U: roundUpPow2Minus1(m)})
}

func XorInterval[T constraints.Integer](a, b Interval[T]) Fallible[Interval[T]] {
	if IsSigned[T]() {
		return Err[Interval[T]](DomainError, "bitwise XOR on signed interval")
	}
	m := a.U
	if b.U > m {
		m = b.U
	}
	return Ok(Interval[T]{L: 0, U: roundUpPow2Minus1(m)})
}

// AndInterval returns {0, min(u1,u2)}; both operands must be unsigned.
func AndInterval[T constraints.Integer](a, b Interval[T]) Fallible[Interval[T]] {
	if IsSigned[T]() {
		return Err[Interval[T]](DomainError, "bitwise AND on signed interval")
	}
	m := a.U
	if b.U < m {
		m = b.U
	}
	return Ok(Interval[T]{L: 0, U: m})
}

func combine[T constraints.Integer](lo, hi Fallible[T]) Fallible[Interval[T]] {
	if lo.IsFault() {
		return Fallible[Interval[T]]{fault: lo.Fault(), msg: lo.Message()}
	}
	if hi.IsFault() {
		return Fallible[Interval[T]]{fault: hi.Fault(), msg: hi.Message()}
	}
	l, u := lo.Value(), hi.Value()
	if l > u {
		l, u = u, l
	}
	return Ok(Interval[T]{L: l, U: u})
}
