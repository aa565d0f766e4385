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

import "golang.org/x/exp/constraints"

// Chain performs a sequence of operations on Safe values and collects the
// first error encountered, skipping every subsequent operation once one
// occurs — the same "collect errors during operations, single check at
// the end" idiom as apd's ErrDecimal (error.go), adapted from apd's
// arbitrary-precision Decimal operands to fixed-range Safe operands.
type Chain[T constraints.Integer, R Range[T], P PromotionPolicy, E ExceptionPolicy] struct {
	Result Safe[T, R, P, E]
	Err    error
}

// Add performs c.Result = Add(x, y).
func (c *Chain[T, R, P, E]) Add(x, y Safe[T, R, P, E]) {
	if c.Err != nil {
		return
	}
	c.Result, c.Err = Add(x, y)
}

// Sub performs c.Result = Sub(x, y).
func (c *Chain[T, R, P, E]) Sub(x, y Safe[T, R, P, E]) {
	if c.Err != nil {
		return
	}
	c.Result, c.Err = Sub(x, y)
}

// Mul performs c.Result = Mul(x, y).
func (c *Chain[T, R, P, E]) Mul(x, y Safe[T, R, P, E]) {
	if c.Err != nil {
		return
	}
	c.Result, c.Err = Mul(x, y)
}

// Div performs c.Result = Div(x, y).
func (c *Chain[T, R, P, E]) Div(x, y Safe[T, R, P, E]) {
	if c.Err != nil {
		return
	}
	c.Result, c.Err = Div(x, y)
}

// Mod performs c.Result = Mod(x, y).
func (c *Chain[T, R, P, E]) Mod(x, y Safe[T, R, P, E]) {
	if c.Err != nil {
		return
	}
	c.Result, c.Err = Mod(x, y)
}

// Shl performs c.Result = Shl(x, shift).
func (c *Chain[T, R, P, E]) Shl(x Safe[T, R, P, E], shift int) {
	if c.Err != nil {
		return
	}
	c.Result, c.Err = Shl(x, shift)
}

// Shr performs c.Result = Shr(x, shift).
func (c *Chain[T, R, P, E]) Shr(x Safe[T, R, P, E], shift int) {
	if c.Err != nil {
		return
	}
	c.Result, c.Err = Shr(x, shift)
}

// And performs c.Result = And(x, y).
func (c *Chain[T, R, P, E]) And(x, y Safe[T, R, P, E]) {
	if c.Err != nil {
		return
	}
	c.Result, c.Err = And(x, y)
}

// Or performs c.Result = Or(x, y).
func (c *Chain[T, R, P, E]) Or(x, y Safe[T, R, P, E]) {
	if c.Err != nil {
		return
	}
	c.Result, c.Err = Or(x, y)
}

// Xor performs c.Result = Xor(x, y).
func (c *Chain[T, R, P, E]) Xor(x, y Safe[T, R, P, E]) {
	if c.Err != nil {
		return
	}
	c.Result, c.Err = Xor(x, y)
}
