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

package policyset

import (
	"sync/atomic"

	"github.com/pkg/errors"
)

// Strict panics on every hook, the "throwing" exception policy §9 calls
// out as one of the three legitimate ways to make the hook's abort/throw
// choice observable in a systems language.
type Strict struct{}

func (Strict) OverflowError(msg string) { panic(errors.New("overflow: " + msg)) }
func (Strict) UnderflowError(msg string) { panic(errors.New("underflow: " + msg)) }
func (Strict) RangeError(msg string) { panic(errors.New("range: " + msg)) }
func (Strict) DomainError(msg string) { panic(errors.New("domain: " + msg)) }
func (Strict) ArithmeticError(msg string) { panic(errors.New("arithmetic: " + msg)) }
func (Strict) ImplementationDefinedError(msg string) { panic(errors.New("implementation-defined: " + msg)) }

// Ignoring does nothing on every hook, letting callers consult the
// returned (Safe, error) themselves. When the exact result fits T but not
// the Safe's range, the returned Safe holds that exact result. When the
// checked primitive itself overflows T, the returned Safe holds zero; the
// two's-complement wraparound of the exact result is not returned.
type Ignoring struct{}

func (Ignoring) OverflowError(string) {}
func (Ignoring) UnderflowError(string) {}
func (Ignoring) RangeError(string) {}
func (Ignoring) DomainError(string) {}
func (Ignoring) ArithmeticError(string) {}
func (Ignoring) ImplementationDefinedError(string) {}

// stickyFlags is the process-wide state a Sticky policy maintains. §5 is
// explicit that this state's concurrency discipline is the policy's
// responsibility, not the core's — so it's guarded here with a plain
// atomic rather than anything safenum itself knows about.
var stickyFlags atomic.Uint32

const (
	stickyOverflow  = 1 << 0
	stickyUnderflow = 1 << 1
	stickyRange     = 1 << 2
	stickyDomain    = 1 << 3
	stickyArith     = 1 << 4
	stickyImpl      = 1 << 5
)

// Sticky records which fault categories have occurred, process-wide, and
// never aborts. ResetSticky and StickyFlags let a test or a long-running
// server inspect/clear the flag between batches.
type Sticky struct{}

func (Sticky) OverflowError(string) { stickyOr(stickyOverflow) }
func (Sticky) UnderflowError(string) { stickyOr(stickyUnderflow) }
func (Sticky) RangeError(string) { stickyOr(stickyRange) }
func (Sticky) DomainError(string) { stickyOr(stickyDomain) }
func (Sticky) ArithmeticError(string) { stickyOr(stickyArith) }
func (Sticky) ImplementationDefinedError(string) { stickyOr(stickyImpl) }

// stickyOr ORs bit into stickyFlags via a compare-and-swap retry loop.
// atomic.Uint32 only gained Or/And in Go 1.23; this keeps the module
// buildable under the go.mod floor of 1.21.
func stickyOr(bit uint32) {
	for {
		old := stickyFlags.Load()
		if stickyFlags.CompareAndSwap(old, old|bit) {
			return
		}
	}
}

// StickyFlags returns the bitwise OR of every fault category any Sticky
// hook has observed since the last ResetSticky.
func StickyFlags() uint32 { return stickyFlags.Load() }

// ResetSticky clears the process-wide sticky flag state.
func ResetSticky() { stickyFlags.Store(0) }
