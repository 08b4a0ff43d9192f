// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmdtree is a declarative command-line parser and dispatcher.
// A CLI is described as a tree of commands, each with required positional
// arguments, an optional trailing rest argument, and named options; the
// parser resolves argv against the tree and invokes the selected
// command's action with fully resolved values.
//
// The library follows these principles:
//   - Declarative specs: commands are plain struct literals, no
//     registration calls
//   - Predictable value resolution: command-line token > environment
//     variable > declared default, per option
//   - Structured errors that carry the command path where parsing failed
//   - Automatic help at every command level (--help, -h)
//
// # Basic usage
//
// Declare a command and hand it to Main:
//
//	root := &cmdtree.Command{
//	    Name: "greet",
//	    Doc:  "Print a greeting",
//	    Args: []cmdtree.Arg{{Docv: "NAME", Doc: "Who to greet"}},
//	    Options: []cmdtree.Option{
//	        {Name: "shout", Short: "s", Kind: cmdtree.KindBool, Doc: "Upper-case the greeting"},
//	    },
//	    Action: func(ctx context.Context, opts cmdtree.Options, args []any) error {
//	        msg := fmt.Sprintf("hello, %s", args[0])
//	        if opts.Bool("shout") {
//	            msg = strings.ToUpper(msg)
//	        }
//	        fmt.Println(msg)
//	        return nil
//	    },
//	}
//	cmdtree.Main(root)
//
// # Subcommands
//
// Commands nest through the Commands map. The first positional token not
// claimed by a required argument or rest spec selects a subcommand, and
// the rest of the command line belongs to it:
//
//	root := &cmdtree.Command{
//	    Name: "tool",
//	    Commands: map[string]*cmdtree.Command{
//	        "build": buildCmd,
//	        "serve": serveCmd,
//	    },
//	}
//
// # Option kinds
//
// Value options (KindString) keep the raw token; KindFunc options run it
// through a Convert func; KindBool options are flags and take no value.
// Setting Repeat collects every occurrence of a value option into an
// ordered sequence. Options may name an EnvVar and a Default; a token on
// the command line beats the environment, which beats the default.
//
// # Errors and process exit
//
// Resolve is side-effect-free: --help surfaces as a *HelpRequest error
// and parse failures as *CommandLineError values carrying the command
// path. Only Main exits the process; Run returns the exit code, which
// makes whole CLIs testable in-process. Actions report user-facing
// failures with Userf, rendered as "error: ..." without a usage block.
package cmdtree
