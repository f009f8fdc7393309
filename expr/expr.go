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

// Package expr represents affine expressions: arithmetic terms over
// dimensional and symbolic identifiers and integer constants, combined
// with addition, multiplication, modulo, and floor/ceiling division by a
// constant or symbolic divisor.
//
// Expressions are immutable and uniqued within a [Context]: two
// structurally equal expressions built in the same context are the same
// node, so == on Expr values is structural equality. Constructors always
// canonicalize before interning, so every expression a caller can obtain
// is in simplified normal form.
package expr

import "github.com/gx-org/affine/expr/kind"

type (
	// Expr is a node in an affine expression tree.
	Expr interface {
		// expr marks a structure as an expression node.
		// It prevents external implementations of the interface.
		expr()

		// Kind of the expression node.
		Kind() kind.Kind

		// Context owning the expression node.
		Context() *Context

		// IsSymbolicOrConstant returns true if the expression is made of
		// only symbols and constants, that is if it does not involve
		// dimensional identifiers.
		IsSymbolicOrConstant() bool

		// IsPureAffine returns true if every multiplication, modulo, and
		// division in the expression only involves a constant or symbolic
		// right operand, recursively.
		IsPureAffine() bool

		// LargestKnownDivisor returns the greatest integer known to evenly
		// divide every value the expression can take.
		LargestKnownDivisor() int64

		// IsMultipleOf returns true if the expression is known to be a
		// multiple of factor.
		IsMultipleOf(factor int64) bool

		// String representation of the expression.
		String() string
	}

	// BinaryExpr is a binary operation: add, mul, mod, floordiv, or
	// ceildiv. Subtraction is represented through a multiply by -1 and an
	// add. Binary expressions are always constructed in simplified form:
	// the two operands are never both constants, and constant operands are
	// always on the right.
	BinaryExpr struct {
		ctx      *Context
		kind     kind.Kind
		lhs, rhs Expr
	}

	// DimExpr is a dimensional identifier.
	DimExpr struct {
		ctx      *Context
		position int
	}

	// SymbolExpr is a symbolic identifier. Symbols live in a namespace
	// disjoint from dimensions.
	SymbolExpr struct {
		ctx      *Context
		position int
	}

	// ConstantExpr is an integer constant.
	ConstantExpr struct {
		ctx   *Context
		value int64
	}
)

var (
	_ Expr = (*BinaryExpr)(nil)
	_ Expr = (*DimExpr)(nil)
	_ Expr = (*SymbolExpr)(nil)
	_ Expr = (*ConstantExpr)(nil)
)

func (e *BinaryExpr) expr()   {}
func (e *DimExpr) expr()      {}
func (e *SymbolExpr) expr()   {}
func (e *ConstantExpr) expr() {}

// Kind of the expression node.
func (e *BinaryExpr) Kind() kind.Kind { return e.kind }

// Kind of the expression node.
func (e *DimExpr) Kind() kind.Kind { return kind.DimID }

// Kind of the expression node.
func (e *SymbolExpr) Kind() kind.Kind { return kind.SymbolID }

// Kind of the expression node.
func (e *ConstantExpr) Kind() kind.Kind { return kind.Constant }

// Context owning the expression node.
func (e *BinaryExpr) Context() *Context { return e.ctx }

// Context owning the expression node.
func (e *DimExpr) Context() *Context { return e.ctx }

// Context owning the expression node.
func (e *SymbolExpr) Context() *Context { return e.ctx }

// Context owning the expression node.
func (e *ConstantExpr) Context() *Context { return e.ctx }

// LHS returns the left operand.
func (e *BinaryExpr) LHS() Expr { return e.lhs }

// RHS returns the right operand.
func (e *BinaryExpr) RHS() Expr { return e.rhs }

// Position of the identifier in the dimension argument list.
func (e *DimExpr) Position() int { return e.position }

// Position of the identifier in the symbol argument list.
func (e *SymbolExpr) Position() int { return e.position }

// Value of the constant.
func (e *ConstantExpr) Value() int64 { return e.value }

// ToBinaryOp views an expression as a binary operation.
// It returns false if the expression is not a binary operation.
func ToBinaryOp(e Expr) (*BinaryExpr, bool) {
	b, ok := e.(*BinaryExpr)
	return b, ok
}

// ToDim views an expression as a dimensional identifier.
// It returns false if the expression is not a dimensional identifier.
func ToDim(e Expr) (*DimExpr, bool) {
	d, ok := e.(*DimExpr)
	return d, ok
}

// ToSymbol views an expression as a symbolic identifier.
// It returns false if the expression is not a symbolic identifier.
func ToSymbol(e Expr) (*SymbolExpr, bool) {
	s, ok := e.(*SymbolExpr)
	return s, ok
}

// ToConstant views an expression as an integer constant.
// It returns false if the expression is not a constant.
func ToConstant(e Expr) (*ConstantExpr, bool) {
	c, ok := e.(*ConstantExpr)
	return c, ok
}
