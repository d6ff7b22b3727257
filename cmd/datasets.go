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
	"context"

	"github.com/gnames/authcheck/internal/ioreport"
	"github.com/gnames/authcheck/pkg/report"
	"github.com/gnames/authcheck/pkg/state"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getDatasetsCmd returns the datasets command.
func getDatasetsCmd() *cobra.Command {
	var format string

	datasetsCmd := &cobra.Command{
		Use:   "datasets",
		Short: "List imported datasets",
		Long: `List imported datasets. The current dataset is marked with '*'.
When no dataset is marked, reports combine all of them.

Examples:
  authcheck datasets
  authcheck datasets --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := ioreport.ParseFormat(format)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			return withController(func(_ context.Context, ctrl *state.Controller) error {
				tbl := report.DatasetsTable(ctrl.State())
				return ioreport.Write(cmd.OutOrStdout(), tbl, f)
			})
		},
	}

	formatFlag(datasetsCmd, &format)
	return datasetsCmd
}

// getUseCmd returns the use command.
func getUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use ID|all",
		Short: "Select the dataset used by reports",
		Long: `Select the dataset used by reports and merges. Use 'all' to
combine every imported dataset.

Examples:
  authcheck use 2b1e9c7d-0f4a-5d1e-9b63-8f2a4c1d7e05
  authcheck use all`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return withController(func(ctx context.Context, ctrl *state.Controller) error {
				if err := ctrl.SetCurrentDataset(ctx, args[0]); err != nil {
					return err
				}
				if id := ctrl.State().CurrentDatasetID; id != state.AllDatasets {
					gn.Info("Current dataset is <em>%s</em>", id)
				} else {
					gn.Info("Using <em>all</em> datasets")
				}
				printSummary(ctrl.Summary())
				return nil
			})
		},
	}
}

// getDropCmd returns the drop command.
func getDropCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drop ID",
		Short: "Remove an imported dataset",
		Long: `Remove an imported dataset. Merges and flags are kept. If the
dataset was current, reports switch to all datasets.

Examples:
  authcheck drop 2b1e9c7d-0f4a-5d1e-9b63-8f2a4c1d7e05`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return withController(func(ctx context.Context, ctrl *state.Controller) error {
				if err := ctrl.RemoveDataset(ctx, args[0]); err != nil {
					return err
				}
				gn.Info("Dataset <em>%s</em> removed", args[0])
				return nil
			})
		},
	}
}
