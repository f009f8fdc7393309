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

import "github.com/gx-org/affine/expr/kind"

// Ref is a by-value handle over an expression node for chaining
// arithmetic without per-step error checks. The first construction
// error rides the chain; every later operation is a no-op and Done
// reports the error.
//
// Comparing two references with Same compares node identities, which is
// structural equality since nodes are uniqued.
type Ref struct {
	x   Expr
	err error
}

// NewRef returns a reference over an expression.
func NewRef(x Expr) Ref {
	return Ref{x: x}
}

// Done returns the expression built by the chain, or the first error
// encountered while building it.
func (r Ref) Done() (Expr, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.x, nil
}

// Expr returns the underlying expression node. It returns nil if the
// chain failed or if the reference is the zero value.
func (r Ref) Expr() Expr {
	if r.err != nil {
		return nil
	}
	return r.x
}

// Err returns the first error encountered by the chain.
func (r Ref) Err() error {
	return r.err
}

// IsNil returns true if the reference does not point to a node.
func (r Ref) IsNil() bool {
	return r.x == nil || r.err != nil
}

// Same returns true if both references point to the same node.
func (r Ref) Same(other Ref) bool {
	return r.err == nil && other.err == nil && r.x == other.x
}

// Kind of the referenced node, or kind.Invalid if the chain failed or
// the reference is the zero value.
func (r Ref) Kind() kind.Kind {
	if r.IsNil() {
		return kind.Invalid
	}
	return r.x.Kind()
}

// String representation of the referenced node, or of the chain error.
func (r Ref) String() string {
	if r.err != nil {
		return "<error: " + r.err.Error() + ">"
	}
	if r.x == nil {
		return "<nil>"
	}
	return r.x.String()
}

func (r Ref) apply(other Ref, f func(lhs, rhs Expr) (Expr, error)) Ref {
	if r.err != nil {
		return r
	}
	if other.err != nil {
		return other
	}
	x, err := f(r.x, other.x)
	return Ref{x: x, err: err}
}

func (r Ref) applyConst(value int64, f func(lhs Expr, value int64) (Expr, error)) Ref {
	if r.err != nil {
		return r
	}
	x, err := f(r.x, value)
	return Ref{x: x, err: err}
}

// Add returns a reference to the sum with another expression.
func (r Ref) Add(other Ref) Ref {
	return r.apply(other, Add)
}

// AddConst returns a reference to the sum with a constant.
func (r Ref) AddConst(value int64) Ref {
	return r.applyConst(value, AddConst)
}

// Sub returns a reference to the difference with another expression.
func (r Ref) Sub(other Ref) Ref {
	return r.apply(other, Sub)
}

// SubConst returns a reference to the difference with a constant.
func (r Ref) SubConst(value int64) Ref {
	return r.applyConst(value, SubConst)
}

// Neg returns a reference to the negation.
func (r Ref) Neg() Ref {
	if r.err != nil {
		return r
	}
	x, err := Neg(r.x)
	return Ref{x: x, err: err}
}

// Mul returns a reference to the product with another expression.
func (r Ref) Mul(other Ref) Ref {
	return r.apply(other, Mul)
}

// MulConst returns a reference to the product with a constant.
func (r Ref) MulConst(value int64) Ref {
	return r.applyConst(value, MulConst)
}

// FloorDiv returns a reference to the floor division by another
// expression.
func (r Ref) FloorDiv(other Ref) Ref {
	return r.apply(other, FloorDiv)
}

// FloorDivConst returns a reference to the floor division by a
// constant.
func (r Ref) FloorDivConst(value int64) Ref {
	return r.applyConst(value, FloorDivConst)
}

// CeilDiv returns a reference to the ceiling division by another
// expression.
func (r Ref) CeilDiv(other Ref) Ref {
	return r.apply(other, CeilDiv)
}

// CeilDivConst returns a reference to the ceiling division by a
// constant.
func (r Ref) CeilDivConst(value int64) Ref {
	return r.applyConst(value, CeilDivConst)
}

// Mod returns a reference to the modulo by another expression.
func (r Ref) Mod(other Ref) Ref {
	return r.apply(other, Mod)
}

// ModConst returns a reference to the modulo by a constant.
func (r Ref) ModConst(value int64) Ref {
	return r.applyConst(value, ModConst)
}
