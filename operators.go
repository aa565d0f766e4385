// Copyright 2016 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// The operator dispatcher (§4.7, C7). Go has no operator overloading, so
// §9's "argument-dependent lookup operator injection" becomes a set of
// package-level generic functions that are only callable with Safe[...]
// arguments — they can never shadow a plain `a + b` between native ints.
// Each one follows apd Context's per-operator dispatch shape (compute,
// round/validate, wrap-or-error) from context.go, but the body is §4.7's
// decision procedure: form operand intervals, ask interval.go whether a
// fault is reachable, and only fall to the runtime-checked path when it
// is.
package safenum

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// rangeOf returns the static [MIN,MAX] of a Safe[T,R,*,*] instantiation
// without needing P and E pinned, since bound computation never depends
// on policy.
func rangeOf[T constraints.Integer, R Range[T]]() Interval[T] {
	var bounds R
	return Interval[T]{L: bounds.Min(), U: bounds.Max()}
}

// dispatchBinary is the shared shape of every same-type binary operator:
// try the interval-only fast path, and only call into the checked
// primitive (and the exception policy) when the interval analysis proves
// a fault is reachable.
//
// Under the Native promotion policy (the only one the operator entry
// points below construct) the result shares its operands' static range
// R, so "no fault is reachable" means two things, both required: the
// native T arithmetic itself doesn't overflow (intervalOp's job) AND the
// resulting interval stays inside R (ivl.Includes' job, since ivl IS R
// here). Checking only the former and skipping the latter would let a
// Safe[0,100] addition silently produce 110 on the fast path — the
// checked path below applies the same two-part rule via rangeCheck.
func dispatchBinary[T constraints.Integer, R Range[T], P PromotionPolicy, E ExceptionPolicy](
	a, b Safe[T, R, P, E],
	op string,
	intervalOp func(Interval[T], Interval[T]) Fallible[Interval[T]],
	checkedOp func(T, T) Fallible[T],
	nativeOp func(T, T) T,
) (Safe[T, R, P, E], error) {
	ivl := rangeOf[T, R]()
	r := intervalOp(ivl, ivl)
	if !r.IsFault() && ivl.Includes(r.Value()) {
		// Fast path (§4.7 step 4): no runtime check, direct computation.
		return Safe[T, R, P, E]{value: nativeOp(a.value, b.value)}, nil
	}
	res := checkedOp(a.value, b.value)
	if !res.IsFault() {
		res = rangeCheck(res.Value(), ivl, op)
	}
	res.Dispatch(exceptionOf[E]())
	if res.IsFault() {
		return Safe[T, R, P, E]{value: res.ValueUnchecked()}, errors.Wrap(res.ToError(), op)
	}
	return Safe[T, R, P, E]{value: res.Value()}, nil
}

func exceptionOf[E ExceptionPolicy]() E {
	var e E
	return e
}

// rangeCheck validates that a native arithmetic result (already proven to
// fit T) also fits the Safe destination's declared bounds ivl — the
// Native promotion policy's "result stays in the operands' own range"
// contract. v is preserved in the returned Fallible even on fault so a
// non-aborting ExceptionPolicy's caller can still read the exact
// out-of-range result via ValueUnchecked, matching §8 property 3's
// wraparound-is-still-available contract.
func rangeCheck[T constraints.Integer](v T, ivl Interval[T], op string) Fallible[T] {
	switch {
	case v < ivl.L:
		return Fallible[T]{value: v, fault: NegativeOverflow, msg: op + " result below destination range"}
	case v > ivl.U:
		return Fallible[T]{value: v, fault: PositiveOverflow, msg: op + " result above destination range"}
	default:
		return Ok(v)
	}
}

// Add implements §4.7 for addition.
func Add[T constraints.Integer, R Range[T], P PromotionPolicy, E ExceptionPolicy](a, b Safe[T, R, P, E]) (Safe[T, R, P, E], error) {
	return dispatchBinary(a, b, "Add", AddInterval[T], CheckedAdd[T], func(x, y T) T { return x + y })
}

// Sub implements §4.7 for subtraction.
func Sub[T constraints.Integer, R Range[T], P PromotionPolicy, E ExceptionPolicy](a, b Safe[T, R, P, E]) (Safe[T, R, P, E], error) {
	return dispatchBinary(a, b, "Sub", SubInterval[T], CheckedSub[T], func(x, y T) T { return x - y })
}

// Mul implements §4.7 for multiplication.
func Mul[T constraints.Integer, R Range[T], P PromotionPolicy, E ExceptionPolicy](a, b Safe[T, R, P, E]) (Safe[T, R, P, E], error) {
	return dispatchBinary(a, b, "Mul", MulInterval[T], CheckedMul[T], func(x, y T) T { return x * y })
}

// Div implements §4.7 for division, with the additional divisor-excludes-
// zero requirement on the fast path.
func Div[T constraints.Integer, R Range[T], P PromotionPolicy, E ExceptionPolicy](a, b Safe[T, R, P, E]) (Safe[T, R, P, E], error) {
	ivl := rangeOf[T, R]()
	if !ivl.ContainsZero() {
		r := DivInterval(ivl, ivl)
		if !r.IsFault() && ivl.Includes(r.Value()) {
			return Safe[T, R, P, E]{value: a.value / b.value}, nil
		}
	}
	res := CheckedDiv(a.value, b.value)
	if !res.IsFault() {
		res = rangeCheck(res.Value(), ivl, "Div")
	}
	res.Dispatch(exceptionOf[E]())
	if res.IsFault() {
		return Safe[T, R, P, E]{value: res.ValueUnchecked()}, errors.Wrap(res.ToError(), "Div")
	}
	return Safe[T, R, P, E]{value: res.Value()}, nil
}

// Mod implements §4.7 for the modulus operator, same divisor-excludes-zero
// gate as Div.
func Mod[T constraints.Integer, R Range[T], P PromotionPolicy, E ExceptionPolicy](a, b Safe[T, R, P, E]) (Safe[T, R, P, E], error) {
	ivl := rangeOf[T, R]()
	if !ivl.ContainsZero() {
		r := ModInterval(ivl, ivl)
		if !r.IsFault() && ivl.Includes(r.Value()) {
			return Safe[T, R, P, E]{value: a.value % b.value}, nil
		}
	}
	res := CheckedMod(a.value, b.value)
	if !res.IsFault() {
		res = rangeCheck(res.Value(), ivl, "Mod")
	}
	res.Dispatch(exceptionOf[E]())
	if res.IsFault() {
		return Safe[T, R, P, E]{value: res.ValueUnchecked()}, errors.Wrap(res.ToError(), "Mod")
	}
	return Safe[T, R, P, E]{value: res.Value()}, nil
}

// Shl implements §4.7 for the left-shift operator. The shift amount is a
// plain int, not a Safe, since §4.7 specifically calls out that the left
// operand (never the shift amount) is the one excluded from participating
// when it's not an arithmetic type — the amount itself is validated
// entirely by CheckedShl's domain check.
func Shl[T constraints.Integer, R Range[T], P PromotionPolicy, E ExceptionPolicy](a Safe[T, R, P, E], shift int) (Safe[T, R, P, E], error) {
	ivl := rangeOf[T, R]()
	shiftIvl := Interval[int]{L: shift, U: shift}
	r := ShlInterval(ivl, shiftIvl)
	if !r.IsFault() && ivl.Includes(r.Value()) {
		return Safe[T, R, P, E]{value: a.value << uint(shift)}, nil
	}
	res := CheckedShl(a.value, shift)
	if !res.IsFault() {
		res = rangeCheck(res.Value(), ivl, "Shl")
	}
	res.Dispatch(exceptionOf[E]())
	if res.IsFault() {
		return Safe[T, R, P, E]{value: res.ValueUnchecked()}, errors.Wrap(res.ToError(), "Shl")
	}
	return Safe[T, R, P, E]{value: res.Value()}, nil
}

// Shr implements §4.7 for the right-shift operator.
func Shr[T constraints.Integer, R Range[T], P PromotionPolicy, E ExceptionPolicy](a Safe[T, R, P, E], shift int) (Safe[T, R, P, E], error) {
	ivl := rangeOf[T, R]()
	shiftIvl := Interval[int]{L: shift, U: shift}
	r := ShrInterval(ivl, shiftIvl)
	if !r.IsFault() && ivl.Includes(r.Value()) {
		return Safe[T, R, P, E]{value: a.value >> uint(shift)}, nil
	}
	res := CheckedShr(a.value, shift)
	if !res.IsFault() {
		res = rangeCheck(res.Value(), ivl, "Shr")
	}
	res.Dispatch(exceptionOf[E]())
	if res.IsFault() {
		return Safe[T, R, P, E]{value: res.ValueUnchecked()}, errors.Wrap(res.ToError(), "Shr")
	}
	return Safe[T, R, P, E]{value: res.Value()}, nil
}

// And implements §4.7 for bitwise AND; signed operands are statically
// rejected regardless of destination range, per §4.4 and §9.
func And[T constraints.Integer, R Range[T], P PromotionPolicy, E ExceptionPolicy](a, b Safe[T, R, P, E]) (Safe[T, R, P, E], error) {
	return dispatchBitwise(a, b, "And", AndInterval[T], CheckedAnd[T], func(x, y T) T { return x & y })
}

// Or implements §4.7 for bitwise OR.
func Or[T constraints.Integer, R Range[T], P PromotionPolicy, E ExceptionPolicy](a, b Safe[T, R, P, E]) (Safe[T, R, P, E], error) {
	return dispatchBitwise(a, b, "Or", OrInterval[T], CheckedOr[T], func(x, y T) T { return x | y })
}

// Xor implements §4.7 for bitwise XOR.
func Xor[T constraints.Integer, R Range[T], P PromotionPolicy, E ExceptionPolicy](a, b Safe[T, R, P, E]) (Safe[T, R, P, E], error) {
	return dispatchBitwise(a, b, "Xor", XorInterval[T], CheckedXor[T], func(x, y T) T { return x ^ y })
}

func dispatchBitwise[T constraints.Integer, R Range[T], P PromotionPolicy, E ExceptionPolicy](
	a, b Safe[T, R, P, E],
	op string,
	intervalOp func(Interval[T], Interval[T]) Fallible[Interval[T]],
	checkedOp func(T, T) Fallible[T],
	nativeOp func(T, T) T,
) (Safe[T, R, P, E], error) {
	ivl := rangeOf[T, R]()
	r := intervalOp(ivl, ivl)
	if !r.IsFault() && ivl.Includes(r.Value()) {
		return Safe[T, R, P, E]{value: nativeOp(a.value, b.value)}, nil
	}
	res := checkedOp(a.value, b.value)
	if !res.IsFault() {
		res = rangeCheck(res.Value(), ivl, op)
	}
	res.Dispatch(exceptionOf[E]())
	if res.IsFault() {
		return Safe[T, R, P, E]{value: res.ValueUnchecked()}, errors.Wrap(res.ToError(), op)
	}
	return Safe[T, R, P, E]{value: res.Value()}, nil
}

// LessCross implements §4.7's comparison dispatch between two Safe values
// of possibly different static types: the static range check short-
// circuits whenever a's range and b's range are strictly separated (§4.5's
// tri-valued ordering, applied to the bounds via the cross-sign-safe
// comparisons in compare.go since T1 and T2 may differ in width or
// signedness); otherwise it falls through to safe-compare (§4.3) on the
// runtime values, which is exactly §8 property 6's cross-sign correctness
// requirement.
//
// LessCross/GreaterCross deliberately never call Compose on (P1,P2) or
// (E1,E2): §4.8's policy-composition conflict is a fault reported through
// an ExceptionPolicy hook or a returned error, and a comparison has
// neither — it returns a plain bool. Reconciling the two operands'
// policies here would mean inventing an error channel this operation
// never had; a caller who needs the §4.8 conflict check on two operands
// with differing policies can call Compose directly before comparing.
func LessCross[T1, T2 constraints.Integer, R1 Range[T1], R2 Range[T2], P1, P2 PromotionPolicy, E1, E2 ExceptionPolicy](a Safe[T1, R1, P1, E1], b Safe[T2, R2, P2, E2]) bool {
	var r1 R1
	var r2 R2
	if LessThan(r1.Max(), r2.Min()) {
		return true
	}
	if GreaterThan(r1.Min(), r2.Max()) {
		return false
	}
	return LessThan(a.value, b.value)
}

// Less is LessCross specialized to same-type operands — the common case.
func Less[T constraints.Integer, R Range[T], P PromotionPolicy, E ExceptionPolicy](a, b Safe[T, R, P, E]) bool {
	return LessCross[T, T, R, R, P, P, E, E](a, b)
}

// GreaterCross is the mirror of LessCross.
func GreaterCross[T1, T2 constraints.Integer, R1 Range[T1], R2 Range[T2], P1, P2 PromotionPolicy, E1, E2 ExceptionPolicy](a Safe[T1, R1, P1, E1], b Safe[T2, R2, P2, E2]) bool {
	return LessCross[T2, T1, R2, R1, P2, P1, E2, E1](b, a)
}

// Greater is the mirror of Less.
func Greater[T constraints.Integer, R Range[T], P PromotionPolicy, E ExceptionPolicy](a, b Safe[T, R, P, E]) bool {
	return Less(b, a)
}

// SafeEqual implements §4.7's comparison dispatch for equality.
func SafeEqual[T constraints.Integer, R Range[T], P PromotionPolicy, E ExceptionPolicy](a, b Safe[T, R, P, E]) bool {
	return a.value == b.value
}
