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

// Package codec is the "text/binary I/O" external collaborator spec.md §1
// explicitly places out of core scope ("thin wrappers that consume the
// interfaces defined in §6"). It is grounded on apd's serialization.go,
// which gives Decimal BSON support through github.com/globalsign/mgo.
//
// apd attaches GetBSON/SetBSON as methods on Decimal because Decimal is
// declared in the same package. safenum.Safe[T,R,P,E] is declared in the
// module root, and Go forbids attaching methods to a type from outside
// its own package, so this package exposes the identical behavior as
// free functions instead — the one mechanical consequence of splitting a
// formerly monolithic package into a core plus external collaborators.
package codec

import (
	"github.com/Flamefire/safe-numerics"
	"github.com/globalsign/mgo/bson"
	"golang.org/x/exp/constraints"
)

// GetBSON marshals s as an int64 holding its underlying value, the same
// type SetBSON reads back; it is a plain integer handoff to mgo's bson
// package, not a custom encoding.
func GetBSON[T constraints.Integer, R safenum.Range[T], P safenum.PromotionPolicy, E safenum.ExceptionPolicy](s safenum.Safe[T, R, P, E]) (interface{}, error) {
	return int64(s.Get()), nil
}

// SetBSON unmarshals raw into an int64 and validates it against dst's
// static range via safenum.New, the same range-or-RangeError contract
// every other construction path in this module uses.
//
// The int64 is narrowed to T through safenum.Cast rather than a bare
// conversion: a bare T(v) would silently wrap for any T narrower than
// int64 (e.g. a stored value of 300 truncating to an in-range int8
// instead of being rejected), defeating the point of validating it at
// all. Cast catches that before New ever sees the value.
//
// Note this codec round-trips through int64, so a Safe[uint64, ...]
// holding a value above math.MaxInt64 cannot be represented — an
// acceptable limitation for a thin demonstration wrapper, called out here
// rather than silently mishandled.
func SetBSON[T constraints.Integer, R safenum.Range[T], P safenum.PromotionPolicy, E safenum.ExceptionPolicy](dst *safenum.Safe[T, R, P, E], raw bson.Raw) error {
	var v int64
	if err := raw.Unmarshal(&v); err != nil {
		return err
	}
	narrowed := safenum.Cast[T](v)
	if narrowed.IsFault() {
		return narrowed.ToError()
	}
	s, err := safenum.New[T, R, P, E](narrowed.Value())
	if err != nil {
		return err
	}
	*dst = s
	return nil
}
