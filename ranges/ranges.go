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

// Package ranges holds the zero-sized Range tag types spec.md §1 scopes
// out of the core as a "thin wrapper" collaborator ("the outward-facing
// typedefs for common ranges"). None of these carry any logic; each is
// just a pair of constant-returning methods satisfying safenum.Range[T].
package ranges

import (
	"github.com/Flamefire/safe-numerics"
	"golang.org/x/exp/constraints"
)

// Full spans the entirety of T's native representable range — the "no
// tighter than the machine type" default.
type Full[T constraints.Integer] struct{}

func (Full[T]) Min() T { return limitsMin[T]() }
func (Full[T]) Max() T { return limitsMax[T]() }

func limitsMin[T constraints.Integer]() T {
	min, _ := safenum.Limits[T]()
	return min
}

func limitsMax[T constraints.Integer]() T {
	_, max := safenum.Limits[T]()
	return max
}

// NonNegative spans [0, T's max] — useful for giving a signed Stored type
// unsigned-like bounds without switching the native type.
type NonNegative[T constraints.Integer] struct{}

func (NonNegative[T]) Min() T { return 0 }
func (NonNegative[T]) Max() T { return limitsMax[T]() }

// Int8Full, UInt8Full, ... are the per-width full-range conveniences.
type (
	Int8Full   = Full[int8]
	Int16Full  = Full[int16]
	Int32Full  = Full[int32]
	Int64Full  = Full[int64]
	UInt8Full  = Full[uint8]
	UInt16Full = Full[uint16]
	UInt32Full = Full[uint32]
	UInt64Full = Full[uint64]
)

// Byte spans [0, 255], the archetypal bounded-octet range.
type Byte struct{}

func (Byte) Min() uint8 { return 0 }
func (Byte) Max() uint8 { return 255 }

// Percent spans [0, 100], for quantities meaningfully expressed as a
// percentage.
type Percent struct{}

func (Percent) Min() uint8 { return 0 }
func (Percent) Max() uint8 { return 100 }

// SignedByte spans [-128, 127], the int8 native range.
type SignedByte struct{}

func (SignedByte) Min() int8 { return -128 }
func (SignedByte) Max() int8 { return 127 }

// Port spans [0, 65535], the range of a TCP/UDP port number.
type Port struct{}

func (Port) Min() uint16 { return 0 }
func (Port) Max() uint16 { return 65535 }

// DayOfMonth spans [1, 31].
type DayOfMonth struct{}

func (DayOfMonth) Min() uint8 { return 1 }
func (DayOfMonth) Max() uint8 { return 31 }
