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
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"github.com/gx-org/affine/expr/kind"
)

// Walk visits e and its operands in pre-order. The traversal stops as
// soon as f returns false.
func Walk(e Expr, f func(Expr) bool) {
	walk(e, f)
}

func walk(e Expr, f func(Expr) bool) bool {
	if !f(e) {
		return false
	}
	b, ok := ToBinaryOp(e)
	if !ok {
		return true
	}
	if !walk(b.LHS(), f) {
		return false
	}
	return walk(b.RHS(), f)
}

// Validate checks that every node of the tree respects the canonical
// form invariants and returns all violations found. Expressions built
// through this package always validate; Validate is a consistency
// oracle for tests and diagnostics.
func Validate(e Expr) error {
	var errs error
	Walk(e, func(sub Expr) bool {
		b, ok := ToBinaryOp(sub)
		if !ok {
			return true
		}
		if err := validateBinary(b); err != nil {
			errs = multierr.Append(errs, err)
		}
		return true
	})
	return errs
}

func validateBinary(b *BinaryExpr) error {
	_, lhsConst := ToConstant(b.LHS())
	rc, rhsConst := ToConstant(b.RHS())
	if lhsConst && rhsConst {
		return errors.Errorf("%s: both operands of %s are constants", b, b.Kind())
	}
	switch b.Kind() {
	case kind.Add:
		if lhsConst {
			return errors.Errorf("%s: constant operand of %s on the left", b, b.Kind())
		}
		if rhsConst && rc.Value() == 0 {
			return errors.Errorf("%s: sum with zero", b)
		}
	case kind.Mul:
		if lhsConst {
			return errors.Errorf("%s: constant operand of %s on the left", b, b.Kind())
		}
		if !b.RHS().IsSymbolicOrConstant() {
			return errors.Errorf("%s: right operand of %s depends on a dimension", b, b.Kind())
		}
		if rhsConst && (rc.Value() == 0 || rc.Value() == 1) {
			return errors.Errorf("%s: product with %d", b, rc.Value())
		}
	case kind.Mod, kind.FloorDiv, kind.CeilDiv:
		if !b.RHS().IsSymbolicOrConstant() {
			return errors.Errorf("%s: right operand of %s depends on a dimension", b, b.Kind())
		}
		if rhsConst && rc.Value() == 0 {
			return errors.Errorf("%s: zero divisor", b)
		}
	}
	return nil
}
