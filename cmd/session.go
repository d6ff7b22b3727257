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

	"github.com/gnames/authcheck/internal/iostore"
	"github.com/gnames/authcheck/pkg/state"
	"github.com/gnames/authcheck/pkg/store"
	"github.com/gnames/gn"
)

// openController opens the configured store and loads the saved state.
// The caller closes the returned store.
func openController(
	ctx context.Context,
) (*state.Controller, store.Store, error) {
	st, err := iostore.New(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	ctrl, err := state.NewController(ctx, st, cfg.Quota)
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return ctrl, st, nil
}

// withController runs fn against the saved state and reports errors the
// way all commands do.
func withController(fn func(context.Context, *state.Controller) error) error {
	ctx := context.Background()
	ctrl, st, err := openController(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer st.Close()

	if err = fn(ctx, ctrl); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	return nil
}
