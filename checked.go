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

// Checked primitive arithmetic (§4.4). Every routine here computes the
// mathematically exact result of one operator and reports the precise
// fault if that result does not fit R. Addition, subtraction and division
// use algebraic pre-checks against R's limits rather than a post-hoc "did
// it wrap" check, following the shape of iotaledger's hive.go/safemath and
// ava-labs/avalanchego's safe_math.go (see other_examples in the retrieval
// pack): compare against the limit before committing the operation, never
// perform the native op speculatively and inspect the sign of the result.
// Multiplication instead forms the exact product in a wider domain, and
// left shift detects lost bits by shifting the result back.
package safenum

import "golang.org/x/exp/constraints"

// CheckedAdd computes a+b exactly and reports whether it fits R.
func CheckedAdd[R constraints.Integer](a, b R) Fallible[R] {
	min, max := Limits[R]()
	if b > 0 {
		if a > max-b {
			return Err[R](PositiveOverflow, "addition overflows")
		}
	} else if b < 0 {
		if a < min-b {
			return Err[R](NegativeOverflow, "addition underflows")
		}
	}
	return Ok(a + b)
}

// CheckedSub computes a-b exactly and reports whether it fits R.
func CheckedSub[R constraints.Integer](a, b R) Fallible[R] {
	min, max := Limits[R]()
	if b < 0 {
		if a > max+b {
			return Err[R](PositiveOverflow, "subtraction overflows")
		}
	} else if b > 0 {
		if a < min+b {
			return Err[R](NegativeOverflow, "subtraction underflows")
		}
	}
	return Ok(a - b)
}

// CheckedMul computes a*b exactly and reports whether it fits R. For widths
// up to 32 bits the product is formed in int64 (signed R) or uint64
// (unsigned R), where it always fits, and compared against R's limits. For
// 64-bit R, where Go has no wider native type to promote into, the product
// is formed in math/big by wide.go's checkedMul64.
func CheckedMul[R constraints.Integer](a, b R) Fallible[R] {
	if a == 0 || b == 0 {
		return Ok[R](0)
	}
	min, max := Limits[R]()
	if Width[R]() == 64 {
		return checkedMul64[R](a, b, min, max)
	}
	// For widths <= 32 the product always fits in int64, so promote and
	// compare once there instead of the four-way sign split.
	wide := int64(a) * int64(b)
	if IsSigned[R]() {
		if wide < int64(min) {
			return Err[R](NegativeOverflow, "multiplication underflows")
		}
		if wide > int64(max) {
			return Err[R](PositiveOverflow, "multiplication overflows")
		}
	} else {
		uwide := uint64(a) * uint64(b)
		if uwide > uint64(max) {
			return Err[R](PositiveOverflow, "multiplication overflows")
		}
		return Ok(R(uwide))
	}
	return Ok(R(wide))
}

// CheckedDiv computes the exact quotient a/b, truncating toward zero as Go
// already does for integer division.
func CheckedDiv[R constraints.Integer](a, b R) Fallible[R] {
	if b == 0 {
		return Err[R](DivideByZero, "division by zero")
	}
	if IsSigned[R]() {
		min, _ := Limits[R]()
		if a == min && b == -R(1) {
			return Err[R](PositiveOverflow, "division overflows: MIN / -1")
		}
	}
	return Ok(a / b)
}

// CheckedMod computes the exact remainder a%b with Go's sign-of-dividend
// convention.
func CheckedMod[R constraints.Integer](a, b R) Fallible[R] {
	if b == 0 {
		return Err[R](DivideByZero, "modulus by zero")
	}
	if IsSigned[R]() {
		min, _ := Limits[R]()
		if a == min && b == -R(1) {
			// a % -1 is always 0 and never overflows, but computing a/b
			// along the way would; short-circuit instead of computing a%b
			// with the native operator under that edge case.
			return Ok[R](0)
		}
	}
	return Ok(a % b)
}

// CheckedShl computes a<<shift, faulting per §4.4: shift out of
// [0, width(R)), a negative operand, or any set bit leaving the
// representable range.
func CheckedShl[R constraints.Integer](a R, shift int) Fallible[R] {
	width := Width[R]()
	if shift < 0 || shift >= width {
		return Err[R](DomainError, "shift amount out of range")
	}
	if IsSigned[R]() && a < 0 {
		return Err[R](DomainError, "left shift of a negative value")
	}
	if a == 0 {
		return Ok[R](0)
	}
	_, max := Limits[R]()
	// Detect loss by shifting back down and comparing; exact because shift
	// < width and a >= 0.
	result := a << uint(shift)
	if result>>uint(shift) != a || uint64(result) > uint64(max) {
		return Err[R](PositiveOverflow, "left shift overflows")
	}
	return Ok(result)
}

// CheckedShr computes a>>shift. A negative operand takes Go's arithmetic
// (sign-extending) shift, which is implementation-compatible per §4.4 but
// is still reported as DomainError under a strict reading; an exception
// policy that wants to allow it can ignore the hook and consult
// ValueUnchecked.
func CheckedShr[R constraints.Integer](a R, shift int) Fallible[R] {
	width := Width[R]()
	if shift < 0 || shift >= width {
		return Err[R](DomainError, "shift amount out of range")
	}
	if IsSigned[R]() && a < 0 {
		return Fallible[R]{value: a >> uint(shift), fault: DomainError, msg: "right shift of a negative value"}
	}
	return Ok(a >> uint(shift))
}

// CheckedAnd, CheckedOr, CheckedXor are defined only for unsigned operands
// of identical width after promotion; a signed operand of either side is a
// DomainError per §4.4, independent of the sign of the result.
func CheckedAnd[R constraints.Integer](a, b R) Fallible[R] {
	if IsSigned[R]() {
		return Err[R](DomainError, "bitwise AND on signed operand")
	}
	return Ok(a & b)
}

func CheckedOr[R constraints.Integer](a, b R) Fallible[R] {
	if IsSigned[R]() {
		return Err[R](DomainError, "bitwise OR on signed operand")
	}
	return Ok(a | b)
}

func CheckedXor[R constraints.Integer](a, b R) Fallible[R] {
	if IsSigned[R]() {
		return Err[R](DomainError, "bitwise XOR on signed operand")
	}
	return Ok(a ^ b)
}

// Cast narrows/widens x of type S into R, reporting PositiveOverflow /
// NegativeOverflow if x's value doesn't fit R's range. Sign mismatches
// (signed source into unsigned destination or vice versa) are handled by
// LessThan/GreaterThan's sign-aware comparison rather than a native
// conversion, which would otherwise silently reinterpret bit patterns.
func Cast[R, S constraints.Integer](x S) Fallible[R] {
	rmin, rmax := Limits[R]()
	if LessThan(x, rmin) {
		return Err[R](NegativeOverflow, "cast underflows destination range")
	}
	if GreaterThan(x, rmax) {
		return Err[R](PositiveOverflow, "cast overflows destination range")
	}
	return Ok(R(x))
}
