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

package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gx-org/affine/internal/cli"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(append(args, "--no-color"))
	err := cmd.Execute()
	return out.String(), err
}

func TestSimplify(t *testing.T) {
	out, err := run(t, "simplify", "3 + d0", "(d0 * 6 + d1 * 9) floordiv 3")
	require.NoError(t, err)
	assert.Equal(t, "d0 + 3\nd0 * 2 + d1 * 3\n", out)
}

func TestSimplifyError(t *testing.T) {
	out, err := run(t, "simplify", "d0 mod 0")
	require.Error(t, err)
	assert.Contains(t, out, "division by zero")
}

func TestAnalyze(t *testing.T) {
	out, err := run(t, "analyze", "d0 * 6 + s0 * 9")
	require.NoError(t, err)
	assert.Contains(t, out, "kind: add")
	assert.Contains(t, out, "pure affine: true")
	assert.Contains(t, out, "largest known divisor: 3")
	assert.Contains(t, out, "dims: 1 symbols: 1")
}

func TestBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	src := `cases:
  - expr: 3 + d0
    want: d0 + 3
  - expr: d0 * 4 mod 2
    want: "0"
  - expr: d0 - d1
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	out, err := run(t, "batch", path)
	require.NoError(t, err)
	assert.Contains(t, out, `ok   "3 + d0" -> "d0 + 3"`)
	assert.Contains(t, out, `ok   "d0 - d1" -> "d0 - d1"`)
}

func TestBatchFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	src := `cases:
  - expr: 3 + d0
    want: 3 + d0
  - expr: d0 mod 0
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	out, err := run(t, "batch", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 2 cases failed")
	assert.Contains(t, out, `FAIL "3 + d0"`)
}
