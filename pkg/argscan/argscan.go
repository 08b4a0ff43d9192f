// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argscan splits raw process arguments into an ordered stream of
// tokens: options (--name, -n, with an optional inline =value), positional
// values, and the "--" option terminator. It attaches no meaning to option
// names; resolving them against a command's declared options is the
// caller's job.
package argscan

import "strings"

// Kind discriminates token types.
type Kind int

const (
	// Positional is a bare value token.
	Positional Kind = iota
	// Option is a --name or -n token, optionally carrying an inline value.
	Option
	// Terminator is the literal "--" token.
	Terminator
)

// Token is one scanned argument.
type Token struct {
	Kind Kind
	// Name is the option name with leading dashes stripped. Empty for
	// non-option tokens.
	Name string
	// Value is the positional value, or the inline value of an option
	// (--name=value). Meaningful for options only when HasValue is set,
	// so that --name= and --name stay distinguishable.
	Value    string
	HasValue bool
}

// Scan tokenizes argv (excluding the program name). Argument order is
// preserved. A lone "-" and negative numbers such as -10 or -3.14 are
// positionals, not options.
func Scan(argv []string) []Token {
	toks := make([]Token, 0, len(argv))
	for _, arg := range argv {
		switch {
		case arg == "--":
			toks = append(toks, Token{Kind: Terminator})
		case strings.HasPrefix(arg, "-") && arg != "-" && !isNumeric(arg):
			name := strings.TrimLeft(arg, "-")
			tok := Token{Kind: Option, Name: name}
			if idx := strings.Index(name, "="); idx != -1 {
				tok.Name = name[:idx]
				tok.Value = name[idx+1:]
				tok.HasValue = true
			}
			toks = append(toks, tok)
		default:
			toks = append(toks, Token{Kind: Positional, Value: arg})
		}
	}
	return toks
}

// isNumeric reports whether s is a plain number (10, -10, 3.14, -3.14).
func isNumeric(s string) bool {
	if len(s) == 0 {
		return false
	}
	start := 0
	if s[0] == '-' || s[0] == '+' {
		if len(s) == 1 {
			return false
		}
		start = 1
	}
	hasDigit := false
	hasDot := false
	for i := start; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			hasDigit = true
		case s[i] == '.':
			if hasDot {
				return false
			}
			hasDot = true
		default:
			return false
		}
	}
	return hasDigit
}

// Cursor is a mutable position into an immutable token slice. Recursive
// consumers share one cursor so that a callee owns the remainder of the
// stream after the caller hands it down.
type Cursor struct {
	toks []Token
	pos  int
}

// NewCursor returns a cursor at the start of toks.
func NewCursor(toks []Token) *Cursor {
	return &Cursor{toks: toks}
}

// More reports whether unconsumed tokens remain.
func (c *Cursor) More() bool {
	return c.pos < len(c.toks)
}

// Peek returns the next token without consuming it. It must not be called
// when More reports false.
func (c *Cursor) Peek() Token {
	return c.toks[c.pos]
}

// Next consumes and returns the next token. It must not be called when
// More reports false.
func (c *Cursor) Next() Token {
	t := c.toks[c.pos]
	c.pos++
	return t
}
