// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdtree

import (
	"context"
	"fmt"
)

// OptionKind discriminates how an option's value is produced.
type OptionKind int

const (
	// KindString passes the raw token value through unchanged.
	KindString OptionKind = iota
	// KindBool is a flag: present means true, it never takes a value.
	KindBool
	// KindFunc passes the raw value through the option's Convert func.
	KindFunc
)

// Option declares one named option of a command. Options are matched as
// --name and, when Short is set, -short. A Repeat option collects every
// occurrence into an ordered sequence instead of keeping the last value;
// it cannot be a bool and cannot carry a Default (its unset value is the
// empty sequence).
type Option struct {
	Name  string
	Short string
	Doc   string
	// Docv is the value placeholder shown in help text, e.g. "FILE" for
	// --output FILE. Defaults to the upper-cased option name.
	Docv string
	// EnvVar names an environment variable consulted when no token set
	// the option. A set env var beats Default.
	EnvVar  string
	Default string
	Kind    OptionKind
	// Convert transforms the raw value for KindFunc options.
	Convert func(string) (any, error)
	Repeat  bool
}

// value runs raw through the option's transform, if any.
func (o *Option) value(raw string) (any, error) {
	if o.Kind == KindFunc {
		return o.Convert(raw)
	}
	return raw, nil
}

// Arg declares one required positional argument.
type Arg struct {
	Doc  string
	Docv string
	// Convert transforms the raw token value. Nil passes it through.
	Convert func(string) (any, error)
}

func (a *Arg) value(raw string) (any, error) {
	if a.Convert != nil {
		return a.Convert(raw)
	}
	return raw, nil
}

// Rest declares the trailing positional capture of a command. With Repeat
// set it greedily takes every positional left after the required args
// (zero or more). Without Repeat it takes at most one extra positional
// and may declare a Default bound when no token fills it.
type Rest struct {
	Doc     string
	Docv    string
	Convert func(string) (any, error)
	Repeat  bool
	Default string
}

func (r *Rest) value(raw string) (any, error) {
	if r.Convert != nil {
		return r.Convert(raw)
	}
	return raw, nil
}

// Action is the function invoked for the selected command, with its
// resolved options and positional argument values.
type Action func(ctx context.Context, opts Options, args []any) error

// Command is one node in a command tree. Option declaration order is
// preserved: it drives both env/default resolution order and the help
// listing. Commands maps subcommand names to child nodes; the tree is
// built top-down and must not contain cycles.
type Command struct {
	Name     string
	Doc      string
	Args     []Arg
	Rest     *Rest
	Options  []Option
	Commands map[string]*Command
	// Action runs when this command is the selected leaf. Nil falls back
	// to a diagnostic print of the resolved values.
	Action Action
}

// helpOption is injected at every command level that does not declare an
// option named "help". The resolver detects it by identity.
var helpOption = Option{
	Name:  "help",
	Short: "h",
	Doc:   "Show help message",
	Kind:  KindBool,
}

// levelOptions returns the command's options in declaration order, with
// the synthetic help flag appended when absent.
func (c *Command) levelOptions() []*Option {
	opts := make([]*Option, 0, len(c.Options)+1)
	hasHelp := false
	for i := range c.Options {
		if c.Options[i].Name == "help" {
			hasHelp = true
		}
		opts = append(opts, &c.Options[i])
	}
	if !hasHelp {
		opts = append(opts, &helpOption)
	}
	return opts
}

// validate checks the declared shape of one command level and panics on
// programmer errors, mirroring how conflicting flag declarations fail.
func (c *Command) validate() {
	names := make(map[string]bool)
	shorts := make(map[string]bool)
	for i := range c.Options {
		o := &c.Options[i]
		if o.Name == "" {
			panic(fmt.Sprintf("cmdtree: command %q declares an unnamed option", c.Name))
		}
		if names[o.Name] {
			panic(fmt.Sprintf("cmdtree: command %q declares option %q twice", c.Name, o.Name))
		}
		names[o.Name] = true
		if o.Short != "" {
			if shorts[o.Short] {
				panic(fmt.Sprintf("cmdtree: command %q declares short option %q twice", c.Name, o.Short))
			}
			shorts[o.Short] = true
		}
		if o.Repeat && o.Kind == KindBool {
			panic(fmt.Sprintf("cmdtree: option %q cannot be both repeating and bool", o.Name))
		}
		if o.Repeat && o.Default != "" {
			panic(fmt.Sprintf("cmdtree: repeating option %q cannot declare a default", o.Name))
		}
		if o.Kind == KindFunc && o.Convert == nil {
			panic(fmt.Sprintf("cmdtree: option %q declares KindFunc without a Convert func", o.Name))
		}
	}
	if c.Rest != nil && c.Rest.Repeat && c.Rest.Default != "" {
		panic(fmt.Sprintf("cmdtree: repeating rest of command %q cannot declare a default", c.Name))
	}
}

// Options holds the resolved option values of one command level, keyed by
// option name. Value options left unset by token, env, and default are
// absent from the map.
type Options map[string]any

// Has reports whether the option resolved to a value.
func (o Options) Has(name string) bool {
	_, ok := o[name]
	return ok
}

// String returns the option's value as a string, or "" when unset or not
// a string.
func (o Options) String(name string) string {
	s, _ := o[name].(string)
	return s
}

// Bool returns the option's value as a bool, or false when unset.
func (o Options) Bool(name string) bool {
	b, _ := o[name].(bool)
	return b
}

// Strings returns a repeating option's occurrences as strings, skipping
// values a Convert func turned into non-strings.
func (o Options) Strings(name string) []string {
	vals, _ := o[name].([]any)
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Value returns the raw resolved value.
func (o Options) Value(name string) (any, bool) {
	v, ok := o[name]
	return v, ok
}

// Result is the outcome of resolving one command level. Args holds the
// positional values in declaration order followed by rest expansions.
// Next points at the resolved subcommand level, nil at the leaf that is
// actually invoked.
type Result struct {
	Cmd  *Command
	Path []*Command
	Args []any
	Opts Options
	Next *Result
}

// Leaf returns the deepest resolved level, the command the user selected.
func (r *Result) Leaf() *Result {
	for r.Next != nil {
		r = r.Next
	}
	return r
}
