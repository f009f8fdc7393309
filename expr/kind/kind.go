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

// Package kind defines the kinds of affine expression nodes.
package kind

// Kind classifies an affine expression node.
type Kind uint

// Kinds of expression nodes. The binary operators come first so that
// testing for a binary operator is a single range comparison.
const (
	// Add is the sum of two expressions.
	Add Kind = iota
	// Mul is a product. Its right operand is always a constant or a
	// symbolic expression.
	Mul
	// Mod is a modulo. Its right operand is always a constant or a
	// symbolic expression.
	Mod
	// FloorDiv is a division rounding toward negative infinity. Its right
	// operand is always a constant or a symbolic expression.
	FloorDiv
	// CeilDiv is a division rounding toward positive infinity. Its right
	// operand is always a constant or a symbolic expression.
	CeilDiv

	// Constant is an integer constant.
	Constant
	// DimID is a dimensional identifier.
	DimID
	// SymbolID is a symbolic identifier.
	SymbolID
)

// lastBinaryOp marks the greatest binary operator kind.
const lastBinaryOp = CeilDiv

// Invalid is the kind of no node. It is reported by accessors that
// have no node to classify.
const Invalid = ^Kind(0)

// IsBinaryOp returns true if the kind is a binary operator.
func (k Kind) IsBinaryOp() bool {
	return k <= lastBinaryOp
}

// String returns a string representation of a kind.
func (k Kind) String() string {
	switch k {
	case Add:
		return "add"
	case Mul:
		return "mul"
	case Mod:
		return "mod"
	case FloorDiv:
		return "floordiv"
	case CeilDiv:
		return "ceildiv"
	case Constant:
		return "constant"
	case DimID:
		return "dim"
	case SymbolID:
		return "symbol"
	}
	return "invalid"
}
