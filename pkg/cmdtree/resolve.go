// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdtree

import (
	"os"
	"strings"

	"github.com/yeetrun/cmdtree/pkg/argscan"
)

// EnvFunc looks up an environment variable, reporting whether it is set.
// A nil EnvFunc means os.LookupEnv.
type EnvFunc func(string) (string, bool)

// Resolve tokenizes argv and resolves it against root, descending into
// subcommands. Tokens are consumed left to right, never re-ordered. It
// returns a *HelpRequest error when --help is seen and a
// *CommandLineError on any parse failure.
func Resolve(root *Command, argv []string, env EnvFunc) (*Result, error) {
	if env == nil {
		env = os.LookupEnv
	}
	cur := argscan.NewCursor(argscan.Scan(argv))
	return resolve(root, []*Command{root}, cur, env)
}

// falseEnvValues are the env values a bool option reads as false,
// compared case-insensitively. Anything else set means true.
var falseEnvValues = map[string]bool{
	"no":    true,
	"off":   true,
	"0":     true,
	"false": true,
}

func resolve(cmd *Command, path []*Command, cur *argscan.Cursor, env EnvFunc) (*Result, error) {
	cmd.validate()

	opts := cmd.levelOptions()
	lookup := make(map[string]*Option, len(opts)*2)
	for _, o := range opts {
		// Declared options win over the injected help on a short-name
		// collision; injection put it last.
		if _, ok := lookup[o.Name]; !ok {
			lookup[o.Name] = o
		}
		if o.Short != "" {
			if _, ok := lookup[o.Short]; !ok {
				lookup[o.Short] = o
			}
		}
	}

	res := &Result{Cmd: cmd, Path: path, Opts: Options{}}
	// argi is the next required arg to fill, restBound the number of
	// rest values bound so far.
	argi := 0
	restBound := 0
	fromCLI := make(map[string]bool)

	for cur.More() {
		tok := cur.Next()
		switch tok.Kind {
		case argscan.Option:
			opt, ok := lookup[tok.Name]
			if !ok {
				return nil, clErr(path, "unknown option --%s", tok.Name)
			}
			if opt == &helpOption {
				return nil, &HelpRequest{Path: path}
			}
			if opt.Kind == KindBool {
				// Bools are set by presence alone; --flag=false would
				// otherwise resolve to true.
				if tok.HasValue {
					return nil, clErr(path, "option --%s takes no value", tok.Name)
				}
				res.Opts[opt.Name] = true
				fromCLI[opt.Name] = true
				continue
			}
			raw := tok.Value
			if !tok.HasValue {
				if !cur.More() || cur.Peek().Kind != argscan.Positional {
					return nil, clErr(path, "missing value for option --%s", tok.Name)
				}
				raw = cur.Next().Value
			}
			v, err := opt.value(raw)
			if err != nil {
				return nil, clErr(path, "invalid value for option --%s: %v", tok.Name, err)
			}
			if opt.Repeat {
				seq, _ := res.Opts[opt.Name].([]any)
				res.Opts[opt.Name] = append(seq, v)
			} else {
				// Last occurrence wins.
				res.Opts[opt.Name] = v
			}
			fromCLI[opt.Name] = true

		case argscan.Positional:
			switch {
			case argi < len(cmd.Args):
				a := &cmd.Args[argi]
				v, err := a.value(tok.Value)
				if err != nil {
					return nil, clErr(path, "invalid %s argument: %v", argDocv(a, argi), err)
				}
				res.Args = append(res.Args, v)
				argi++
			case cmd.Rest != nil:
				if !cmd.Rest.Repeat && restBound > 0 {
					return nil, clErr(path, "extra position argument")
				}
				v, err := cmd.Rest.value(tok.Value)
				if err != nil {
					return nil, clErr(path, "invalid %s argument: %v", restDocv(cmd), err)
				}
				res.Args = append(res.Args, v)
				restBound++
			case len(cmd.Commands) > 0:
				sub, ok := cmd.Commands[tok.Value]
				if !ok {
					return nil, clErr(path, "unknown subcommand %s", tok.Value)
				}
				subPath := append(append([]*Command{}, path...), sub)
				next, err := resolve(sub, subPath, cur, env)
				if err != nil {
					return nil, err
				}
				// The recursive call owns the remainder of the stream.
				res.Next = next
			default:
				return nil, clErr(path, "extra position argument")
			}

		case argscan.Terminator:
			// TODO: pass the remaining tokens through as positionals.
			return nil, clErr(path, "unsupported option terminator --")
		}
	}

	if argi < len(cmd.Args) {
		return nil, clErr(path, "missing %s argument", argDocv(&cmd.Args[argi], argi))
	}
	if cmd.Rest != nil && !cmd.Rest.Repeat && restBound == 0 && cmd.Rest.Default != "" {
		v, err := cmd.Rest.value(cmd.Rest.Default)
		if err != nil {
			return nil, clErr(path, "invalid %s argument: %v", restDocv(cmd), err)
		}
		res.Args = append(res.Args, v)
	}

	// Token > env var > default, per option in declaration order.
	for _, opt := range opts {
		if fromCLI[opt.Name] {
			continue
		}
		switch {
		case opt.Repeat:
			if opt.EnvVar != "" {
				if raw, ok := env(opt.EnvVar); ok {
					v, err := opt.value(raw)
					if err != nil {
						return nil, clErr(path, "invalid value for option --%s: %v", opt.Name, err)
					}
					res.Opts[opt.Name] = []any{v}
					continue
				}
			}
			res.Opts[opt.Name] = []any{}
		case opt.Kind == KindBool:
			val := false
			if opt.EnvVar != "" {
				if raw, ok := env(opt.EnvVar); ok {
					val = !falseEnvValues[strings.ToLower(raw)]
				}
			}
			res.Opts[opt.Name] = val
		default:
			raw, ok := "", false
			if opt.EnvVar != "" {
				raw, ok = env(opt.EnvVar)
			}
			if !ok {
				if opt.Default == "" {
					continue // left unset
				}
				raw = opt.Default
			}
			v, err := opt.value(raw)
			if err != nil {
				return nil, clErr(path, "invalid value for option --%s: %v", opt.Name, err)
			}
			res.Opts[opt.Name] = v
		}
	}

	return res, nil
}

// argDocv names a required positional in help and error text, falling
// back to a synthetic ARG<n> placeholder.
func argDocv(a *Arg, i int) string {
	if a.Docv != "" {
		return a.Docv
	}
	return fmtArgPlaceholder(i)
}

func restDocv(cmd *Command) string {
	if cmd.Rest.Docv != "" {
		return cmd.Rest.Docv
	}
	return fmtArgPlaceholder(len(cmd.Args))
}
