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

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/gx-org/affine/expr"
	"github.com/gx-org/affine/parse"
)

// NewAnalyzeCommand creates the analyze subcommand. It parses each
// argument and reports the properties of its canonical form.
func NewAnalyzeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "analyze EXPR...",
		Short:        "Report the properties of one or more expressions",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := expr.NewContext()
			for _, src := range args {
				if err := analyze(cmd.OutOrStdout(), ctx, src); err != nil {
					return errors.Wrapf(err, "cannot analyze %q", src)
				}
			}
			return nil
		},
	}
}

func analyze(w io.Writer, ctx *expr.Context, src string) error {
	x, err := parse.Parse(ctx, src)
	if err != nil {
		return err
	}
	dims := map[int]bool{}
	symbols := map[int]bool{}
	expr.Walk(x, func(sub expr.Expr) bool {
		if d, ok := expr.ToDim(sub); ok {
			dims[d.Position()] = true
		}
		if s, ok := expr.ToSymbol(sub); ok {
			symbols[s.Position()] = true
		}
		return true
	})
	color.New(color.Bold).Fprintln(w, x)
	fmt.Fprintf(w, "  kind: %s\n", x.Kind())
	fmt.Fprintf(w, "  pure affine: %t\n", x.IsPureAffine())
	fmt.Fprintf(w, "  symbolic or constant: %t\n", x.IsSymbolicOrConstant())
	fmt.Fprintf(w, "  largest known divisor: %d\n", x.LargestKnownDivisor())
	fmt.Fprintf(w, "  dims: %d symbols: %d\n", len(dims), len(symbols))
	return nil
}
