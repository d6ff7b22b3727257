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
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/authcheck/internal/iosheet"
	"github.com/gnames/authcheck/pkg/state"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
)

// getImportCmd returns the import command.
func getImportCmd() *cobra.Command {
	var label string

	importCmd := &cobra.Command{
		Use:   "import FILE...",
		Short: "Import submissions from CSV or TSV exports",
		Long: `Import one or more spreadsheets exported from a conference
review system.

Each file becomes a separate dataset. Rows above the header (the row
containing "Paper ID") are ignored, rows without a numeric paper ID are
skipped. The last imported dataset becomes the current one.

Files are read concurrently, the number of readers is set by the
jobs_number config option or --jobs flag.

Examples:
  authcheck import papers.csv
  authcheck import --label "Main track" main.tsv
  authcheck import -j 2 track1.csv track2.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args, label)
		},
	}

	importCmd.Flags().StringVarP(&label, "label", "l", "",
		"dataset label (defaults to the file name)")
	importCmd.Flags().IntP("jobs", "j", 0,
		"number of files read concurrently")

	return importCmd
}

func runImport(_ *cobra.Command, args []string, label string) error {
	start := time.Now()

	sheets, err := iosheet.ReadAll(context.Background(), args, cfg.JobsNumber)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	return withController(func(ctx context.Context, ctrl *state.Controller) error {
		for _, sh := range sheets {
			l := label
			if l != "" && len(sheets) > 1 {
				l = fmt.Sprintf("%s (%s)", label, sh.FileName())
			}

			ds, stats, err := ctrl.Import(ctx, l, sh.FileName(), sh.Rows)
			if err != nil {
				return err
			}

			gn.Info(
				"Imported <em>%s</em> as dataset <em>%s</em>",
				sh.FileName(), ds.ID,
			)
			gn.Info(
				"  %s rows, %s submissions, %s skipped",
				humanize.Comma(int64(stats.RowsNum)),
				humanize.Comma(int64(stats.SubmissionsNum)),
				humanize.Comma(int64(stats.SkippedNum)),
			)
			if stats.UnknownNamesNum > 0 || stats.DroppedNamesNum > 0 {
				gn.Warn(
					"  %d authors without names, %d names without e-mails",
					stats.UnknownNamesNum, stats.DroppedNamesNum,
				)
			}
		}

		printSummary(ctrl.Summary())
		gn.Info("Import took %s", gnfmt.TimeString(time.Since(start).Seconds()))
		return nil
	})
}

func printSummary(sum state.Summary) {
	gn.Info(
		"<em>%s</em> authors, <em>%s</em> over quota, %s at the limit",
		humanize.Comma(int64(sum.AuthorsNum)),
		humanize.Comma(int64(sum.ViolatorsNum)),
		humanize.Comma(int64(sum.AtLimitNum)),
	)
	if sum.EmailConflictsNum > 0 || sum.NameConflictsNum > 0 {
		gn.Warn(
			"%d e-mail conflicts and %d name conflicts need review",
			sum.EmailConflictsNum, sum.NameConflictsNum,
		)
	}
}
