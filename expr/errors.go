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

import "github.com/pkg/errors"

// Construction errors. No node is produced when a constructor returns an
// error: an expression is either fully canonicalized and interned, or
// not built at all.
var (
	// ErrZeroDivisor reports a modulo or division by the constant zero.
	ErrZeroDivisor = errors.New("division by zero")

	// ErrNotAffine reports an operand shape the affine form cannot
	// represent, such as a product of two dimension-dependent expressions
	// or a dimension-dependent divisor.
	ErrNotAffine = errors.New("not an affine expression")

	// ErrOverflow reports an int64 overflow while folding constants.
	ErrOverflow = errors.New("integer overflow")

	// ErrContextMismatch reports operands owned by different contexts.
	ErrContextMismatch = errors.New("expressions belong to different contexts")
)
