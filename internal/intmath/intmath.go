// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package intmath provides checked 64-bit integer arithmetic and
// floor/ceiling division helpers.
package intmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Abs returns the absolute value of a.
// The result is undefined for the minimum value of T.
func Abs[T constraints.Signed](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

// GCD returns the greatest common divisor of |a| and |b|.
// GCD(0, b) is |b| and GCD(a, 0) is |a|.
func GCD[T constraints.Signed](a, b T) T {
	a, b = Abs(a), Abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// AddChecked returns a+b and false if the sum overflows int64.
func AddChecked(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

// MulChecked returns a*b and false if the product overflows int64.
func MulChecked(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}
	prod := a * b
	if prod/b != a {
		return 0, false
	}
	return prod, true
}

// FloorDiv returns a/b rounded toward negative infinity.
// It returns false when b is zero or when the quotient overflows int64.
func FloorDiv(a, b int64) (int64, bool) {
	if b == 0 || (a == math.MinInt64 && b == -1) {
		return 0, false
	}
	quo := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		quo--
	}
	return quo, true
}

// CeilDiv returns a/b rounded toward positive infinity.
// It returns false when b is zero or when the quotient overflows int64.
func CeilDiv(a, b int64) (int64, bool) {
	if b == 0 || (a == math.MinInt64 && b == -1) {
		return 0, false
	}
	quo := a / b
	if a%b != 0 && (a < 0) == (b < 0) {
		quo++
	}
	return quo, true
}

// FloorMod returns a modulo b with the remainder taking the sign of b,
// consistent with FloorDiv: a == FloorDiv(a,b)*b + FloorMod(a,b).
// It returns false when b is zero.
func FloorMod(a, b int64) (int64, bool) {
	if b == 0 {
		return 0, false
	}
	rem := a % b
	if rem != 0 && (rem < 0) != (b < 0) {
		rem += b
	}
	return rem, true
}
