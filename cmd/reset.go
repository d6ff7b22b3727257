/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gnames/authcheck/pkg/state"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getResetCmd returns the reset command.
func getResetCmd() *cobra.Command {
	var force bool

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all datasets, merges and flags",
		Long: `Delete all imported datasets, merge groups and duplicate flags.
Export merges first if you want to keep them.

Use --force to skip confirmation.

Examples:
  authcheck merge export merges.yaml
  authcheck reset --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withController(func(ctx context.Context, ctrl *state.Controller) error {
				sum := ctrl.Summary()
				if !force {
					gn.Warn("\nWarning: reset deletes %d datasets and %d merge groups.",
						sum.DatasetsNum, sum.MergesNum)
					fmt.Fprint(cmd.OutOrStdout(), "\nDo you want to continue? (yes/no): ")

					reader := bufio.NewReader(cmd.InOrStdin())
					response, err := reader.ReadString('\n')
					if err != nil && !errors.Is(err, io.EOF) {
						gn.Warn("Failed to read user input")
						return err
					}

					response = strings.TrimSpace(strings.ToLower(response))
					if response != "yes" && response != "y" {
						gn.Info("Aborted. No changes made.")
						return nil
					}
				}

				if err := ctrl.Reset(ctx); err != nil {
					return err
				}
				gn.Info("All data removed")
				return nil
			})
		},
	}

	resetCmd.Flags().BoolVarP(&force, "force", "f", false,
		"reset without confirmation")

	return resetCmd
}
