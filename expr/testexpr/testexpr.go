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

// Package testexpr provides helpers to build affine expressions in tests.
package testexpr

import (
	"testing"

	"github.com/gx-org/affine/expr"
)

// Must returns an expression, failing the test if its construction
// returned an error.
func Must(t *testing.T) func(x expr.Expr, err error) expr.Expr {
	return func(x expr.Expr, err error) expr.Expr {
		t.Helper()
		if err != nil {
			t.Fatalf("cannot build expression: %+v", err)
		}
		return x
	}
}

// MustRef returns the expression built by a reference chain, failing
// the test if the chain failed.
func MustRef(t *testing.T, r expr.Ref) expr.Expr {
	t.Helper()
	x, err := r.Done()
	if err != nil {
		t.Fatalf("cannot build expression: %+v", err)
	}
	return x
}
