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

package expr

import (
	"math"

	"github.com/gx-org/affine/expr/kind"
	"github.com/gx-org/affine/internal/intmath"
)

// IsSymbolicOrConstant returns true if the expression is made of only
// symbols and constants.
func (e *DimExpr) IsSymbolicOrConstant() bool { return false }

// IsSymbolicOrConstant returns true if the expression is made of only
// symbols and constants.
func (e *SymbolExpr) IsSymbolicOrConstant() bool { return true }

// IsSymbolicOrConstant returns true if the expression is made of only
// symbols and constants.
func (e *ConstantExpr) IsSymbolicOrConstant() bool { return true }

// IsSymbolicOrConstant returns true if the expression is made of only
// symbols and constants.
func (e *BinaryExpr) IsSymbolicOrConstant() bool {
	return e.lhs.IsSymbolicOrConstant() && e.rhs.IsSymbolicOrConstant()
}

// IsPureAffine returns true for a leaf: leaves are always pure.
func (e *DimExpr) IsPureAffine() bool { return true }

// IsPureAffine returns true for a leaf: leaves are always pure.
func (e *SymbolExpr) IsPureAffine() bool { return true }

// IsPureAffine returns true for a leaf: leaves are always pure.
func (e *ConstantExpr) IsPureAffine() bool { return true }

// IsPureAffine returns true if every multiplication, modulo, and
// division in the expression has a constant or symbolic right operand,
// recursively.
func (e *BinaryExpr) IsPureAffine() bool {
	switch e.kind {
	case kind.Add:
		return e.lhs.IsPureAffine() && e.rhs.IsPureAffine()
	case kind.Mul:
		return e.lhs.IsPureAffine() && e.rhs.IsPureAffine() && e.rhs.IsSymbolicOrConstant()
	default: // Mod, FloorDiv, CeilDiv
		return e.lhs.IsPureAffine() && e.rhs.IsSymbolicOrConstant()
	}
}

// LargestKnownDivisor returns the absolute value of the constant. The
// zero constant reports a divisor of zero, which absorbs into any gcd:
// zero is a multiple of every integer.
func (e *ConstantExpr) LargestKnownDivisor() int64 { return divisorOf(e.value) }

// divisorOf returns the magnitude of c as a divisor. The magnitude of
// math.MinInt64 does not fit in an int64; its largest representable
// divisor is 1<<62.
func divisorOf(c int64) int64 {
	if c == math.MinInt64 {
		return 1 << 62
	}
	return intmath.Abs(c)
}

// LargestKnownDivisor returns 1: nothing is known about the values an
// identifier takes.
func (e *DimExpr) LargestKnownDivisor() int64 { return 1 }

// LargestKnownDivisor returns 1: nothing is known about the values an
// identifier takes.
func (e *SymbolExpr) LargestKnownDivisor() int64 { return 1 }

// LargestKnownDivisor returns the greatest integer known to evenly
// divide every value the expression can take. The bound is sound but
// not necessarily tight.
func (e *BinaryExpr) LargestKnownDivisor() int64 {
	switch e.kind {
	case kind.Add:
		return intmath.GCD(e.lhs.LargestKnownDivisor(), e.rhs.LargestKnownDivisor())
	case kind.Mul:
		lhsDiv := e.lhs.LargestKnownDivisor()
		rc, ok := ToConstant(e.rhs)
		if !ok {
			// A symbolic factor brings no multiplicative guarantee.
			return lhsDiv
		}
		prod, ok := intmath.MulChecked(lhsDiv, divisorOf(rc.Value()))
		if !ok {
			return lhsDiv
		}
		return prod
	case kind.Mod:
		if rc, ok := ToConstant(e.rhs); ok {
			return intmath.GCD(e.lhs.LargestKnownDivisor(), divisorOf(rc.Value()))
		}
		return 1
	default: // FloorDiv, CeilDiv
		return 1
	}
}

// IsMultipleOf returns true if the expression is known to be a multiple
// of factor. A factor of zero always returns false.
func (e *BinaryExpr) IsMultipleOf(factor int64) bool {
	return isMultipleOf(e, factor)
}

// IsMultipleOf returns true if the expression is known to be a multiple
// of factor. A factor of zero always returns false.
func (e *DimExpr) IsMultipleOf(factor int64) bool {
	return isMultipleOf(e, factor)
}

// IsMultipleOf returns true if the expression is known to be a multiple
// of factor. A factor of zero always returns false.
func (e *SymbolExpr) IsMultipleOf(factor int64) bool {
	return isMultipleOf(e, factor)
}

// IsMultipleOf returns true if the expression is known to be a multiple
// of factor. A factor of zero always returns false.
func (e *ConstantExpr) IsMultipleOf(factor int64) bool {
	return isMultipleOf(e, factor)
}

func isMultipleOf(e Expr, factor int64) bool {
	if factor == 0 {
		return false
	}
	return e.LargestKnownDivisor()%factor == 0
}
