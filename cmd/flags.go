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
	"github.com/gnames/authcheck/pkg/config"
	"github.com/spf13/cobra"
)

type funcFlag func(cmd *cobra.Command) []config.Option

// quotaFlag registers the persistent --quota flag.
func quotaFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().IntP("quota", "q", 0,
		"maximum number of submissions per author (overrides config)")
}

func quotaOption(cmd *cobra.Command) []config.Option {
	if !cmd.Flags().Changed("quota") {
		return nil
	}
	quota, err := cmd.Flags().GetInt("quota")
	if err != nil {
		return nil
	}
	return []config.Option{config.OptQuota(quota)}
}

func jobsOption(cmd *cobra.Command) []config.Option {
	f := cmd.Flags().Lookup("jobs")
	if f == nil || !f.Changed {
		return nil
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return nil
	}
	return []config.Option{config.OptJobsNumber(jobs)}
}

// flagOptions collects options from flags set on the command line. They
// take precedence over env vars and config.yaml.
func flagOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	for _, f := range []funcFlag{quotaOption, jobsOption} {
		res = append(res, f(cmd)...)
	}
	return res
}

// formatFlag registers the --format flag of commands that print tables.
func formatFlag(cmd *cobra.Command, format *string) {
	cmd.Flags().StringVarP(format, "format", "f", "",
		"output format: table, csv or json "+
			"(default: table for terminal, csv otherwise)")
}
