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

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/gx-org/affine/expr"
	"github.com/gx-org/affine/parse"
)

type batchCase struct {
	Expr string `yaml:"expr"`
	Want string `yaml:"want,omitempty"`
}

type batchFile struct {
	Cases []batchCase `yaml:"cases"`
}

// NewBatchCommand creates the batch subcommand. It reads a YAML file of
// cases, canonicalizes each expression, and checks it against the
// expected rendering when one is given.
func NewBatchCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "batch FILE",
		Short:        "Canonicalize a YAML file of expressions and check expectations",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd.OutOrStdout(), args[0])
		},
	}
}

func runBatch(w io.Writer, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "cannot read %s", path)
	}
	var file batchFile
	if err := yaml.Unmarshal(src, &file); err != nil {
		return errors.Wrapf(err, "cannot parse %s", path)
	}
	ok := color.New(color.FgGreen)
	fail := color.New(color.FgRed)
	ctx := expr.NewContext()
	var errs error
	for i, cse := range file.Cases {
		x, err := parse.Parse(ctx, cse.Expr)
		if err != nil {
			fail.Fprintf(w, "FAIL %q: %v\n", cse.Expr, err)
			errs = multierr.Append(errs, errors.Wrapf(err, "case %d", i))
			continue
		}
		got := x.String()
		if cse.Want != "" && got != cse.Want {
			fail.Fprintf(w, "FAIL %q: got %q, want %q\n", cse.Expr, got, cse.Want)
			errs = multierr.Append(errs, errors.Errorf("case %d: got %q, want %q", i, got, cse.Want))
			continue
		}
		ok.Fprintf(w, "ok   %q", cse.Expr)
		fmt.Fprintf(w, " -> %q\n", got)
	}
	if errs != nil {
		return errors.Wrapf(errs, "%d of %d cases failed", len(multierr.Errors(errs)), len(file.Cases))
	}
	return nil
}
