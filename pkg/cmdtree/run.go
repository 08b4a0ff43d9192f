// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdtree

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// maxHelpWidth caps help rendering regardless of terminal size.
const maxHelpWidth = 79

// Dispatch walks the result chain to the deepest resolved level and
// invokes that command's action with its options and argument values.
// The diagnostic fallback for a nil action writes to out, like every
// other boundary output.
func Dispatch(ctx context.Context, res *Result, out io.Writer) error {
	leaf := res.Leaf()
	if leaf.Cmd.Action == nil {
		fmt.Fprintf(out, "command %q not implemented (opts: %v, args: %v)\n",
			displayName(leaf.Path), leaf.Opts, leaf.Args)
		return nil
	}
	return leaf.Cmd.Action(ctx, leaf.Opts, leaf.Args)
}

// Run resolves argv against root and dispatches the selected command,
// writing help and error output to out at the given width. It returns
// the process exit code: 0 after a successful action or a help request,
// 1 on any failure.
func Run(ctx context.Context, root *Command, argv []string, out io.Writer, width int) int {
	res, err := Resolve(root, argv, nil)
	if err != nil {
		return report(err, out, width)
	}
	if err := Dispatch(ctx, res, out); err != nil {
		return report(err, out, width)
	}
	return 0
}

// Main runs root against os.Args and exits the process. It is the only
// exit point; everything below it reports outcomes as values.
func Main(root *Command) {
	os.Exit(Run(context.Background(), root, os.Args[1:], os.Stdout, helpWidth()))
}

func report(err error, out io.Writer, width int) int {
	var help *HelpRequest
	if errors.As(err, &help) {
		fmt.Fprint(out, Help(help.Path).Render(width))
		return 0
	}
	var cle *CommandLineError
	if errors.As(err, &cle) {
		fmt.Fprintln(out, Usage(cle.Path))
		fmt.Fprintf(out, "error: %s\n", cle.Msg)
		return 1
	}
	var ue *UserError
	if errors.As(err, &ue) {
		fmt.Fprintf(out, "error: %s\n", ue.Msg)
		return 1
	}
	fmt.Fprintln(out, err)
	return 1
}

// helpWidth returns the terminal width capped at maxHelpWidth, falling
// back to the cap when stdout is not a terminal.
func helpWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && w < maxHelpWidth {
		return w
	}
	return maxHelpWidth
}
