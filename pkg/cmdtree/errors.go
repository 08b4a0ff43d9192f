// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdtree

import "fmt"

// CommandLineError is a parse-time failure. Path runs from the root to
// the command level where parsing stopped, so callers can render the
// right usage line.
type CommandLineError struct {
	Path []*Command
	Msg  string
}

func (e *CommandLineError) Error() string {
	return e.Msg
}

func clErr(path []*Command, format string, args ...any) error {
	return &CommandLineError{Path: path, Msg: fmt.Sprintf(format, args...)}
}

// UserError is raised deliberately by action code for user-facing
// failures after a successful parse. It is reported without a usage
// block.
type UserError struct {
	Msg string
}

func (e *UserError) Error() string {
	return e.Msg
}

// Userf builds a UserError.
func Userf(format string, args ...any) error {
	return &UserError{Msg: fmt.Sprintf(format, args...)}
}

// HelpRequest is returned as an error when the injected --help flag is
// seen. The resolver performs no output itself; the boundary renders
// help for Path and exits zero.
type HelpRequest struct {
	Path []*Command
}

func (e *HelpRequest) Error() string {
	return "help requested"
}
