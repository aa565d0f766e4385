// Copyright 2022 The Cockroach Authors.
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
	"math/big"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// wideInt is a stack-friendly math/big.Int wrapper, trimmed from apd's
// BigInt to the handful of operations CheckedMul needs for 64-bit operands:
// at that width R*R can itself overflow R, and Go has no native int128 to
// promote into the way the <=32-bit path promotes into int64/uint64. The
// inline backing array and noescape trick are carried verbatim from
// bigint.go so that a single 64-bit multiply overflow check doesn't force
// a heap allocation on every call.
type wideInt struct {
	inner  big.Int
	inline [2]big.Word
	addr   *wideInt
}

func (w *wideInt) copyCheck() {
	if w.addr == nil {
		w.addr = (*wideInt)(noescapeWide(unsafe.Pointer(w)))
	} else if w.addr != w {
		panic("safenum: illegal use of non-zero wideInt copied by value")
	}
}

//go:nosplit
//go:nocheckptr
func noescapeWide(p unsafe.Pointer) unsafe.Pointer {
	x := uintptr(p)
	return unsafe.Pointer(x ^ 0)
}

func (w *wideInt) lazyInit() {
	if w.inner.Bits() == nil {
		w.inline = [2]big.Word{}
		inline := (*[2]big.Word)(noescapeWide(unsafe.Pointer(&w.inline[0])))
		w.inner.SetBits(inline[:0])
	}
}

func (w *wideInt) setInt64(x int64) *wideInt {
	w.copyCheck()
	w.lazyInit()
	w.inner.SetInt64(x)
	return w
}

func (w *wideInt) setUint64(x uint64) *wideInt {
	w.copyCheck()
	w.lazyInit()
	w.inner.SetUint64(x)
	return w
}

func (w *wideInt) mul(x, y *wideInt) *wideInt {
	w.copyCheck()
	w.lazyInit()
	w.inner.Mul(&x.inner, &y.inner)
	return w
}

func (w *wideInt) cmpInt64(v int64) int {
	var o wideInt
	o.setInt64(v)
	return w.inner.Cmp(&o.inner)
}

func (w *wideInt) cmpUint64(v uint64) int {
	var o wideInt
	o.setUint64(v)
	return w.inner.Cmp(&o.inner)
}

// checkedMul64 computes a*b for a 64-bit-wide R, exactly, using wideInt as
// the intermediate domain required by §4.4 ("all overflow tests are
// performed in a domain wider than the operand").
func checkedMul64[R constraints.Integer](a, b, min, max R) Fallible[R] {
	var wa, wb, wr wideInt
	if IsSigned[R]() {
		wa.setInt64(int64(a))
		wb.setInt64(int64(b))
		wr.mul(&wa, &wb)
		if wr.cmpInt64(int64(min)) < 0 {
			return Err[R](NegativeOverflow, "multiplication underflows")
		}
		if wr.cmpInt64(int64(max)) > 0 {
			return Err[R](PositiveOverflow, "multiplication overflows")
		}
		return Ok(R(wr.inner.Int64()))
	}
	wa.setUint64(uint64(a))
	wb.setUint64(uint64(b))
	wr.mul(&wa, &wb)
	if wr.cmpUint64(uint64(max)) > 0 {
		return Err[R](PositiveOverflow, "multiplication overflows")
	}
	return Ok(R(wr.inner.Uint64()))
}
