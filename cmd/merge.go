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
	"time"

	"github.com/gnames/authcheck/internal/iomerges"
	"github.com/gnames/authcheck/internal/ioreport"
	"github.com/gnames/authcheck/pkg/merge"
	"github.com/gnames/authcheck/pkg/report"
	"github.com/gnames/authcheck/pkg/state"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getMergeCmd returns the merge command with its subcommands.
func getMergeCmd() *cobra.Command {
	mergeCmd := &cobra.Command{
		Use:   "merge",
		Short: "Manage merged author identities",
		Long: `Manage merge groups. A merge group treats several e-mails as
one author under a primary e-mail. An e-mail belongs to at most one
group.

Examples:
  authcheck merge link --primary ann@uni.edu --email alee@gmail.com
  authcheck merge list
  authcheck merge remove alee@gmail.com
  authcheck merge unlink ann@uni.edu
  authcheck merge export merges.yaml
  authcheck merge apply merges.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	mergeCmd.AddCommand(
		getMergeLinkCmd(),
		getMergeUnlinkCmd(),
		getMergeRemoveCmd(),
		getMergeListCmd(),
		getMergeApplyCmd(),
		getMergeExportCmd(),
	)
	return mergeCmd
}

func getMergeLinkCmd() *cobra.Command {
	var primary, name, note string
	var emails []string

	linkCmd := &cobra.Command{
		Use:   "link",
		Short: "Merge e-mails into a primary identity",
		Long: `Create a merge group. Papers of all e-mails are counted for the
primary e-mail. Missing names are taken from imported data.

Examples:
  authcheck merge link --primary ann@uni.edu --email alee@gmail.com
  authcheck merge link -p ann@uni.edu -e a@x.org -e b@y.org --note "ORCID"`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return withController(func(ctx context.Context, ctrl *state.Controller) error {
				others := make([]merge.Identity, 0, len(emails))
				for _, e := range emails {
					others = append(others, merge.Identity{Email: strings.TrimSpace(e)})
				}
				am, err := ctrl.MergeAuthors(ctx,
					merge.Identity{Email: strings.TrimSpace(primary), Name: name},
					others, note,
				)
				if err != nil {
					return err
				}
				gn.Info("Merged <em>%s</em> into <em>%s</em>",
					strings.Join(am.MergedEmails, ", "), am.PrimaryEmail)
				printSummary(ctrl.Summary())
				return nil
			})
		},
	}

	linkCmd.Flags().StringVarP(&primary, "primary", "p", "", "primary e-mail")
	linkCmd.Flags().StringVarP(&name, "name", "n", "", "primary name")
	linkCmd.Flags().StringSliceVarP(&emails, "email", "e", nil,
		"e-mail merged into the primary one (repeatable)")
	linkCmd.Flags().StringVar(&note, "note", "", "reason for the merge")
	linkCmd.MarkFlagRequired("primary")
	linkCmd.MarkFlagRequired("email")

	return linkCmd
}

func getMergeUnlinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unlink EMAIL",
		Short: "Delete the merge group containing an e-mail",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return withController(func(ctx context.Context, ctrl *state.Controller) error {
				if err := ctrl.UnmergeAuthors(ctx, args[0]); err != nil {
					return err
				}
				gn.Info("Merge group of <em>%s</em> removed", args[0])
				printSummary(ctrl.Summary())
				return nil
			})
		},
	}
}

func getMergeRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove EMAIL",
		Short: "Take one e-mail out of its merge group",
		Long: `Take one e-mail out of its merge group. Removing the primary
e-mail promotes the first merged one. A group with nothing left to merge
is deleted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return withController(func(ctx context.Context, ctrl *state.Controller) error {
				if err := ctrl.RemoveAuthorFromMerge(ctx, args[0]); err != nil {
					return err
				}
				gn.Info("<em>%s</em> removed from its merge group", args[0])
				printSummary(ctrl.Summary())
				return nil
			})
		},
	}
}

func getMergeListCmd() *cobra.Command {
	var format string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List merge groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := ioreport.ParseFormat(format)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			return withController(func(_ context.Context, ctrl *state.Controller) error {
				tbl := report.MergesTable(ctrl.State())
				return ioreport.Write(cmd.OutOrStdout(), tbl, f)
			})
		},
	}

	formatFlag(listCmd, &format)
	return listCmd
}

func getMergeApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply FILE",
		Short: "Replace all merge groups with ones from a YAML file",
		Long: `Replace all merge groups with the ones described in a YAML
file. The file is validated as a whole, on error nothing changes. An
example file is in the config directory.

Examples:
  authcheck merge apply merges.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			merges, err := iomerges.Load(args[0], time.Now())
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			return withController(func(ctx context.Context, ctrl *state.Controller) error {
				if err := ctrl.ReplaceMerges(ctx, merges); err != nil {
					return err
				}
				gn.Info("Applied <em>%d</em> merge groups from %s",
					len(merges), args[0])
				printSummary(ctrl.Summary())
				return nil
			})
		},
	}
}

func getMergeExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Save merge groups to a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return withController(func(_ context.Context, ctrl *state.Controller) error {
				merges := ctrl.State().AuthorMerges
				if err := iomerges.Save(args[0], merges); err != nil {
					return err
				}
				gn.Info("Saved <em>%d</em> merge groups to %s",
					len(merges), args[0])
				return nil
			})
		},
	}
}
