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

	"github.com/pkg/errors"
	"github.com/gx-org/affine/expr/kind"
	"github.com/gx-org/affine/internal/intmath"
)

// Binary returns the canonical expression for a binary operation over
// two operands. The operands must belong to the same context. Binary
// never returns an unsimplified node: constants are folded, identities
// eliminated, and operands reordered before the node is interned.
func Binary(knd kind.Kind, lhs, rhs Expr) (Expr, error) {
	if lhs.Context() != rhs.Context() {
		return nil, errors.Wrapf(ErrContextMismatch, "cannot build (%s) %s (%s)", lhs, knd, rhs)
	}
	switch knd {
	case kind.Add:
		return buildAdd(lhs, rhs)
	case kind.Mul:
		return buildMul(lhs, rhs)
	case kind.Mod:
		return buildMod(lhs, rhs)
	case kind.FloorDiv, kind.CeilDiv:
		return buildDiv(knd, lhs, rhs)
	}
	return nil, errors.Errorf("%s is not a binary operator", knd)
}

// Add returns the canonical sum of two expressions.
func Add(lhs, rhs Expr) (Expr, error) {
	return Binary(kind.Add, lhs, rhs)
}

// AddConst returns the canonical sum of an expression and a constant.
func AddConst(lhs Expr, value int64) (Expr, error) {
	return Add(lhs, lhs.Context().Constant(value))
}

// Sub returns the canonical difference of two expressions, represented
// as lhs + rhs*(-1).
func Sub(lhs, rhs Expr) (Expr, error) {
	neg, err := Neg(rhs)
	if err != nil {
		return nil, err
	}
	return Add(lhs, neg)
}

// SubConst returns the canonical difference of an expression and a
// constant.
func SubConst(lhs Expr, value int64) (Expr, error) {
	if value == math.MinInt64 {
		return nil, errors.Wrapf(ErrOverflow, "cannot negate %d", value)
	}
	return AddConst(lhs, -value)
}

// Neg returns the canonical negation of an expression, represented as
// lhs*(-1).
func Neg(lhs Expr) (Expr, error) {
	return MulConst(lhs, -1)
}

// Mul returns the canonical product of two expressions. At least one
// operand must be a constant or symbolic expression.
func Mul(lhs, rhs Expr) (Expr, error) {
	return Binary(kind.Mul, lhs, rhs)
}

// MulConst returns the canonical product of an expression and a
// constant.
func MulConst(lhs Expr, value int64) (Expr, error) {
	return Mul(lhs, lhs.Context().Constant(value))
}

// Mod returns the canonical modulo of an expression by a constant or
// symbolic modulus.
func Mod(lhs, rhs Expr) (Expr, error) {
	return Binary(kind.Mod, lhs, rhs)
}

// ModConst returns the canonical modulo of an expression by a constant
// modulus.
func ModConst(lhs Expr, value int64) (Expr, error) {
	return Mod(lhs, lhs.Context().Constant(value))
}

// FloorDiv returns the canonical floor division of an expression by a
// constant or symbolic divisor.
func FloorDiv(lhs, rhs Expr) (Expr, error) {
	return Binary(kind.FloorDiv, lhs, rhs)
}

// FloorDivConst returns the canonical floor division of an expression
// by a constant divisor.
func FloorDivConst(lhs Expr, value int64) (Expr, error) {
	return FloorDiv(lhs, lhs.Context().Constant(value))
}

// CeilDiv returns the canonical ceiling division of an expression by a
// constant or symbolic divisor.
func CeilDiv(lhs, rhs Expr) (Expr, error) {
	return Binary(kind.CeilDiv, lhs, rhs)
}

// CeilDivConst returns the canonical ceiling division of an expression
// by a constant divisor.
func CeilDivConst(lhs Expr, value int64) (Expr, error) {
	return CeilDiv(lhs, lhs.Context().Constant(value))
}

func buildAdd(lhs, rhs Expr) (Expr, error) {
	ctx := lhs.Context()
	lc, lok := ToConstant(lhs)
	rc, rok := ToConstant(rhs)
	if lok && rok {
		sum, ok := intmath.AddChecked(lc.Value(), rc.Value())
		if !ok {
			return nil, errors.Wrapf(ErrOverflow, "cannot fold %s + %s", lhs, rhs)
		}
		return ctx.Constant(sum), nil
	}
	// Constant operands go to the right.
	if lok {
		lhs, rhs = rhs, lhs
		rc, rok = lc, true
	}
	if rok {
		if rc.Value() == 0 {
			return lhs, nil
		}
		// Flatten (x + c1) + c2 into x + (c1+c2).
		if lb, ok := ToBinaryOp(lhs); ok && lb.Kind() == kind.Add {
			if lrc, ok := ToConstant(lb.RHS()); ok {
				sum, okAdd := intmath.AddChecked(lrc.Value(), rc.Value())
				if !okAdd {
					return nil, errors.Wrapf(ErrOverflow, "cannot fold %s + %s", lhs, rhs)
				}
				return buildAdd(lb.LHS(), ctx.Constant(sum))
			}
		}
	}
	return ctx.internBinary(kind.Add, lhs, rhs), nil
}

func buildMul(lhs, rhs Expr) (Expr, error) {
	ctx := lhs.Context()
	lc, lok := ToConstant(lhs)
	rc, rok := ToConstant(rhs)
	if lok && rok {
		prod, ok := intmath.MulChecked(lc.Value(), rc.Value())
		if !ok {
			return nil, errors.Wrapf(ErrOverflow, "cannot fold %s * %s", lhs, rhs)
		}
		return ctx.Constant(prod), nil
	}
	if !lhs.IsSymbolicOrConstant() && !rhs.IsSymbolicOrConstant() {
		return nil, errors.Wrapf(ErrNotAffine, "product of two dimension-dependent expressions: (%s) * (%s)", lhs, rhs)
	}
	// The symbolic or constant factor goes to the right.
	if !rhs.IsSymbolicOrConstant() || (lok && !rok) {
		lhs, rhs = rhs, lhs
		rc, rok = lc, lok
	}
	if rok {
		switch rc.Value() {
		case 0:
			return rc, nil
		case 1:
			return lhs, nil
		}
		// Flatten (x * c1) * c2 into x * (c1*c2).
		if lb, ok := ToBinaryOp(lhs); ok && lb.Kind() == kind.Mul {
			if lrc, ok := ToConstant(lb.RHS()); ok {
				prod, okMul := intmath.MulChecked(lrc.Value(), rc.Value())
				if !okMul {
					return nil, errors.Wrapf(ErrOverflow, "cannot fold %s * %s", lhs, rhs)
				}
				return buildMul(lb.LHS(), ctx.Constant(prod))
			}
		}
	}
	return ctx.internBinary(kind.Mul, lhs, rhs), nil
}

func buildMod(lhs, rhs Expr) (Expr, error) {
	ctx := lhs.Context()
	if !rhs.IsSymbolicOrConstant() {
		return nil, errors.Wrapf(ErrNotAffine, "modulus depends on a dimension: (%s) mod (%s)", lhs, rhs)
	}
	rc, rok := ToConstant(rhs)
	if !rok {
		return ctx.internBinary(kind.Mod, lhs, rhs), nil
	}
	modulus := rc.Value()
	if modulus == 0 {
		return nil, errors.Wrapf(ErrZeroDivisor, "(%s) mod 0", lhs)
	}
	if lc, ok := ToConstant(lhs); ok {
		rem, _ := intmath.FloorMod(lc.Value(), modulus)
		return ctx.Constant(rem), nil
	}
	// An expression known to be a multiple of the modulus reduces to zero.
	if lhs.IsMultipleOf(modulus) {
		return ctx.Constant(0), nil
	}
	return ctx.internBinary(kind.Mod, lhs, rhs), nil
}

func buildDiv(knd kind.Kind, lhs, rhs Expr) (Expr, error) {
	ctx := lhs.Context()
	if !rhs.IsSymbolicOrConstant() {
		return nil, errors.Wrapf(ErrNotAffine, "divisor depends on a dimension: (%s) %s (%s)", lhs, knd, rhs)
	}
	rc, rok := ToConstant(rhs)
	if !rok {
		return ctx.internBinary(knd, lhs, rhs), nil
	}
	divisor := rc.Value()
	if divisor == 0 {
		return nil, errors.Wrapf(ErrZeroDivisor, "(%s) %s 0", lhs, knd)
	}
	if lc, ok := ToConstant(lhs); ok {
		var quo int64
		var okDiv bool
		if knd == kind.FloorDiv {
			quo, okDiv = intmath.FloorDiv(lc.Value(), divisor)
		} else {
			quo, okDiv = intmath.CeilDiv(lc.Value(), divisor)
		}
		if !okDiv {
			return nil, errors.Wrapf(ErrOverflow, "cannot fold %s %s %s", lhs, knd, rhs)
		}
		return ctx.Constant(quo), nil
	}
	if divisor == 1 {
		return lhs, nil
	}
	// Division by -1 is exact for every shape, not just the ones
	// divideExact can prove.
	if divisor == -1 {
		return buildMul(lhs, ctx.Constant(-1))
	}
	// Floor and ceiling division agree when the division is exact.
	if quo, err := divideExact(lhs, divisor); quo != nil || err != nil {
		return quo, err
	}
	return ctx.internBinary(knd, lhs, rhs), nil
}

// divideExact rewrites e divided by divisor when the divisor is known to
// evenly divide every additive term of e. It returns nil when exactness
// cannot be proven, leaving the division to be represented explicitly.
func divideExact(e Expr, divisor int64) (Expr, error) {
	ctx := e.Context()
	switch t := e.(type) {
	case *ConstantExpr:
		if t.Value()%divisor != 0 {
			return nil, nil
		}
		quo, ok := intmath.FloorDiv(t.Value(), divisor)
		if !ok {
			return nil, errors.Wrapf(ErrOverflow, "cannot fold %s floordiv %d", e, divisor)
		}
		return ctx.Constant(quo), nil
	case *BinaryExpr:
		switch t.Kind() {
		case kind.Add:
			lhs, err := divideExact(t.LHS(), divisor)
			if lhs == nil || err != nil {
				return nil, err
			}
			rhs, err := divideExact(t.RHS(), divisor)
			if rhs == nil || err != nil {
				return nil, err
			}
			return buildAdd(lhs, rhs)
		case kind.Mul:
			rc, ok := ToConstant(t.RHS())
			if !ok || rc.Value()%divisor != 0 {
				return nil, nil
			}
			quo, okDiv := intmath.FloorDiv(rc.Value(), divisor)
			if !okDiv {
				return nil, errors.Wrapf(ErrOverflow, "cannot fold %s floordiv %d", e, divisor)
			}
			return buildMul(t.LHS(), ctx.Constant(quo))
		}
	}
	return nil, nil
}
