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

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/gx-org/affine/expr"
	"github.com/gx-org/affine/parse"
)

// NewSimplifyCommand creates the simplify subcommand. It parses each
// argument and prints its canonical form, one per line.
func NewSimplifyCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "simplify EXPR...",
		Short:        "Print the canonical form of one or more expressions",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := expr.NewContext()
			for _, src := range args {
				x, err := parse.Parse(ctx, src)
				if err != nil {
					return errors.Wrapf(err, "cannot simplify %q", src)
				}
				fmt.Fprintln(cmd.OutOrStdout(), x)
			}
			return nil
		},
	}
}
