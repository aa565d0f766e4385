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

package safenum

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Range is the zero-sized-tag-type encoding spec.md §9 calls for in a
// language without const generics: MIN and MAX live as the Min()/Max()
// methods of a type with no fields, so "Safe[T, MyRange, P, E]" carries its
// bounds purely in its static type, the same way boost::safe_numerics
// carries them as non-type template parameters.
type Range[T constraints.Integer] interface {
	Min() T
	Max() T
}

// PromotionPolicy is a marker interface identifying how a binary
// operator's result type is chosen. Concrete policies live in policyset/;
// the core only needs to tell two policies apart by name for composition
// (§4.8) — it never inspects behavior. The arithmetic operators in
// operators.go take two operands of one Safe type and return that same
// type; the policy never synthesizes a result type the way a C++ trait
// would.
type PromotionPolicy interface {
	Name() string
}

// ExceptionPolicy is the hook set consumed by Fallible.Dispatch (§6, §4.2).
// Each hook may panic (a throwing policy), return after recording a flag
// (a sticky policy), or simply return (an ignoring policy) — the core
// never inspects which.
type ExceptionPolicy interface {
	OverflowError(msg string)
	UnderflowError(msg string)
	RangeError(msg string)
	DomainError(msg string)
	ArithmeticError(msg string)
	ImplementationDefinedError(msg string)
}

// ComposedPolicy is the record produced by Compose (§3's "Policy
// composition record" / C8).
type ComposedPolicy struct {
	Promotion PromotionPolicy
	Exception ExceptionPolicy
}

// Compose reconciles the policies of two operands per §4.8: a nil operand
// denotes the "absent" policy and yields to the other side; two non-nil,
// differently-named policies are a composition conflict.
//
// The original design rejects a conflicting composition at compile time.
// Go generics have no mechanism to compare two type parameters for
// equality before instantiation, so this module performs the check when
// Compose is called and reports the conflict as a LogicError fault rather
// than a build failure — this is a deliberate, documented redesign (see
// DESIGN.md), not an oversight. No operator in operators.go calls Compose.
func Compose(p1, p2 PromotionPolicy, e1, e2 ExceptionPolicy) (ComposedPolicy, error) {
	promotion, err := composePromotion(p1, p2)
	if err != nil {
		return ComposedPolicy{}, err
	}
	exception, err := composeException(e1, e2)
	if err != nil {
		return ComposedPolicy{}, err
	}
	return ComposedPolicy{Promotion: promotion, Exception: exception}, nil
}

func composePromotion(p1, p2 PromotionPolicy) (PromotionPolicy, error) {
	switch {
	case p1 == nil:
		return p2, nil
	case p2 == nil:
		return p1, nil
	case p1.Name() == p2.Name():
		return p1, nil
	default:
		return nil, &faultError{fault: LogicError, msg: "conflicting promotion policies: " + p1.Name() + " vs " + p2.Name()}
	}
}

func composeException(e1, e2 ExceptionPolicy) (ExceptionPolicy, error) {
	switch {
	case e1 == nil:
		return e2, nil
	case e2 == nil:
		return e1, nil
	case sameException(e1, e2):
		return e1, nil
	default:
		return nil, &faultError{fault: LogicError, msg: "conflicting exception policies"}
	}
}

// sameException compares two ExceptionPolicy values for identity of their
// concrete type, which is the closest Go equivalent of "the same policy
// tag" for policies that don't expose a Name() the way PromotionPolicy
// does (ExceptionPolicy's hook-only interface is §6's contract verbatim,
// and adding a Name method to it would be a core-interface change the
// spec doesn't call for).
func sameException(e1, e2 ExceptionPolicy) bool {
	return fmt.Sprintf("%T", e1) == fmt.Sprintf("%T", e2)
}
