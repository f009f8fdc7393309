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
	"math"
	"strconv"

	"github.com/gx-org/affine/expr/kind"
)

// String returns the identifier in the d<position> form.
func (e *DimExpr) String() string {
	return fmt.Sprintf("d%d", e.position)
}

// String returns the identifier in the s<position> form.
func (e *SymbolExpr) String() string {
	return fmt.Sprintf("s%d", e.position)
}

// String returns the decimal representation of the constant.
func (e *ConstantExpr) String() string {
	return strconv.FormatInt(e.value, 10)
}

// String returns an infix rendering of the operation with minimal
// parentheses. The rendering parses back (see package parse) to the
// same node. Sums with a negated right operand render as subtractions.
func (e *BinaryExpr) String() string {
	p := precedence(e.kind)
	if e.kind == kind.Add {
		if s, ok := e.subString(); ok {
			return s
		}
	}
	return operandString(e.lhs, p, false) + opToken(e.kind) + operandString(e.rhs, p, true)
}

// subString renders a sum as a subtraction when the right operand is a
// negative constant or a multiplication by -1.
func (e *BinaryExpr) subString() (string, bool) {
	p := precedence(e.kind)
	if rc, ok := ToConstant(e.rhs); ok && rc.Value() < 0 && rc.Value() != math.MinInt64 {
		return operandString(e.lhs, p, false) + " - " + strconv.FormatInt(-rc.Value(), 10), true
	}
	rb, ok := ToBinaryOp(e.rhs)
	if !ok || rb.Kind() != kind.Mul {
		return "", false
	}
	rbc, ok := ToConstant(rb.RHS())
	if !ok || rbc.Value() != -1 {
		return "", false
	}
	return operandString(e.lhs, p, false) + " - " + operandString(rb.LHS(), p, true), true
}

func opToken(k kind.Kind) string {
	switch k {
	case kind.Add:
		return " + "
	case kind.Mul:
		return " * "
	case kind.Mod:
		return " mod "
	case kind.FloorDiv:
		return " floordiv "
	case kind.CeilDiv:
		return " ceildiv "
	}
	return " <invalid> "
}

func precedence(k kind.Kind) int {
	if k == kind.Add {
		return 1
	}
	return 2
}

// operandString renders an operand of a binary operation, adding
// parentheses when precedence or left-associativity requires them.
func operandString(e Expr, parentPrecedence int, right bool) string {
	b, ok := ToBinaryOp(e)
	if !ok {
		return e.String()
	}
	p := precedence(b.Kind())
	if p < parentPrecedence || (right && p == parentPrecedence) {
		return "(" + e.String() + ")"
	}
	return e.String()
}
