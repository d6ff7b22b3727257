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
	"strings"

	"github.com/gnames/authcheck/internal/ioreport"
	"github.com/gnames/authcheck/pkg/report"
	"github.com/gnames/authcheck/pkg/state"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getReportCmd returns the report command.
func getReportCmd() *cobra.Command {
	var kind, format, output string

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Print or save a report of the current view",
		Long: `Print or save a report about the current dataset, or about all
datasets combined.

Kinds:
  violations   authors over the quota with their papers
  authors      all authors with their paper counts
  submissions  all submissions with warnings
  conflicts    e-mails with several names and names with several e-mails
  summary      totals

Examples:
  authcheck report
  authcheck report --kind submissions --format csv --output flagged.csv
  authcheck report -k summary -q 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, err := report.NewKind(kind)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			if format == "" && output != "" {
				format = string(ioreport.FormatCSV)
				if strings.HasSuffix(strings.ToLower(output), ".json") {
					format = string(ioreport.FormatJSON)
				}
			}
			f, err := ioreport.ParseFormat(format)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}

			return withController(func(_ context.Context, ctrl *state.Controller) error {
				tbl, err := report.Build(ctrl.State(), k, ctrl.Quota())
				if err != nil {
					return err
				}
				if output == "" {
					return ioreport.Write(cmd.OutOrStdout(), tbl, f)
				}
				if err = ioreport.WriteFile(output, tbl, f); err != nil {
					return err
				}
				gn.Info("Saved %s report with <em>%d</em> rows to %s",
					k, len(tbl.Rows), output)
				return nil
			})
		},
	}

	reportCmd.Flags().StringVarP(&kind, "kind", "k", string(report.Violations),
		"report kind: "+kindNames())
	formatFlag(reportCmd, &format)
	reportCmd.Flags().StringVarP(&output, "output", "o", "",
		"save the report to a file instead of printing it")

	return reportCmd
}

func kindNames() string {
	res := make([]string, len(report.Kinds))
	for i, k := range report.Kinds {
		res[i] = string(k)
	}
	return strings.Join(res, ", ")
}
