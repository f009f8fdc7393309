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
	"fmt"

	"github.com/gx-org/affine/base/sync"
	"github.com/gx-org/affine/expr/kind"
)

// Context owns and uniques expression nodes. All the nodes interned by a
// context live as long as the context itself.
//
// Interning is idempotent: requesting the same structure twice returns
// the same node both times, so nodes from one context can be compared
// with ==. Nodes from different contexts never compare equal and cannot
// be combined. All methods are safe for concurrent use.
type Context struct {
	dims      sync.Map[int, *DimExpr]
	symbols   sync.Map[int, *SymbolExpr]
	constants sync.Map[int64, *ConstantExpr]
	binaries  sync.Map[binaryKey, *BinaryExpr]
}

type binaryKey struct {
	kind     kind.Kind
	lhs, rhs Expr
}

// NewContext returns a new empty context.
func NewContext() *Context {
	return &Context{}
}

// Dim returns the dimensional identifier at a position in the dimension
// argument list. Dim panics if the position is negative.
func (ctx *Context) Dim(position int) Expr {
	if position < 0 {
		panic(fmt.Sprintf("expr: negative dimension position %d", position))
	}
	dim, _ := ctx.dims.LoadOrStore(position, &DimExpr{ctx: ctx, position: position})
	return dim
}

// Symbol returns the symbolic identifier at a position in the symbol
// argument list. Symbol panics if the position is negative.
func (ctx *Context) Symbol(position int) Expr {
	if position < 0 {
		panic(fmt.Sprintf("expr: negative symbol position %d", position))
	}
	sym, _ := ctx.symbols.LoadOrStore(position, &SymbolExpr{ctx: ctx, position: position})
	return sym
}

// Constant returns the expression for an integer constant.
func (ctx *Context) Constant(value int64) Expr {
	cst, _ := ctx.constants.LoadOrStore(value, &ConstantExpr{ctx: ctx, value: value})
	return cst
}

// internBinary returns the unique node for a binary operation over two
// already-canonical operands. Callers are responsible for simplification
// and for the per-operator operand invariants.
func (ctx *Context) internBinary(knd kind.Kind, lhs, rhs Expr) Expr {
	key := binaryKey{kind: knd, lhs: lhs, rhs: rhs}
	bin, _ := ctx.binaries.LoadOrStore(key, &BinaryExpr{ctx: ctx, kind: knd, lhs: lhs, rhs: rhs})
	return bin
}

// NumInterned returns the total number of nodes interned by the context.
func (ctx *Context) NumInterned() int {
	return ctx.dims.Size() + ctx.symbols.Size() + ctx.constants.Size() + ctx.binaries.Size()
}
