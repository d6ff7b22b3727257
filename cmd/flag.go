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

	"github.com/gnames/authcheck/pkg/state"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getFlagCmd returns the flag command.
func getFlagCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flag EMAIL",
		Short: "Toggle the potential duplicate mark of an author",
		Long: `Mark an author as a potential duplicate of somebody else, or
clear the mark if it is already set. Marked authors are listed in
reports until they are merged or unmarked.

Examples:
  authcheck flag alee@gmail.com`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return withController(func(ctx context.Context, ctrl *state.Controller) error {
				flagged, err := ctrl.FlagDuplicate(ctx, args[0])
				if err != nil {
					return err
				}
				if flagged {
					gn.Info("<em>%s</em> is flagged as a potential duplicate", args[0])
				} else {
					gn.Info("<em>%s</em> is not flagged anymore", args[0])
				}
				return nil
			})
		},
	}
}
