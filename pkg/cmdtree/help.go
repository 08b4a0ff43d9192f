// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdtree

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/yeetrun/cmdtree/pkg/textdoc"
)

// Usage returns the one-line usage string for the command at the end of
// path, e.g. "usage: tool serve [OPTIONS] PORT [DIR]".
func Usage(path []*Command) string {
	cmd := path[len(path)-1]
	var b strings.Builder
	b.WriteString("usage: ")
	b.WriteString(displayName(path))
	b.WriteString(" [OPTIONS]")
	if len(cmd.Commands) > 0 {
		b.WriteString(" COMMAND")
	}
	for i := range cmd.Args {
		b.WriteString(" ")
		b.WriteString(argDocv(&cmd.Args[i], i))
	}
	if cmd.Rest != nil {
		if cmd.Rest.Repeat {
			fmt.Fprintf(&b, " %s...", restDocv(cmd))
		} else {
			fmt.Fprintf(&b, " [%s]", restDocv(cmd))
		}
	}
	return b.String()
}

// Help builds the full help document for the command at the end of path:
// usage line, wrapped doc text, an OPTIONS table, and a COMMANDS table
// when subcommands exist.
func Help(path []*Command) *textdoc.Doc {
	cmd := path[len(path)-1]
	doc := textdoc.New()
	doc.Line(Usage(path))
	doc.Blank()
	if cmd.Doc != "" {
		doc.Para(0, cmd.Doc)
		doc.Blank()
	}

	doc.Line("OPTIONS:")
	rows := make([][2]string, 0, len(cmd.Options)+1)
	for _, opt := range cmd.levelOptions() {
		rows = append(rows, [2]string{optionLabel(opt), optionDoc(opt)})
	}
	doc.Table(4, rows)

	if len(cmd.Commands) > 0 {
		names := make([]string, 0, len(cmd.Commands))
		for name := range cmd.Commands {
			names = append(names, name)
		}
		slices.Sort(names)
		doc.Blank()
		doc.Line("COMMANDS:")
		cmdRows := make([][2]string, 0, len(names))
		for _, name := range names {
			cmdRows = append(cmdRows, [2]string{name, cmd.Commands[name].Doc})
		}
		doc.Table(4, cmdRows)
	}
	return doc
}

// displayName joins the path names into the help display name.
func displayName(path []*Command) string {
	names := make([]string, len(path))
	for i, cmd := range path {
		names[i] = cmd.Name
	}
	return strings.Join(names, " ")
}

// optionLabel renders column one of the options table: "--name, -s DOCV"
// with the placeholder omitted for bools.
func optionLabel(opt *Option) string {
	var b strings.Builder
	b.WriteString("--")
	b.WriteString(opt.Name)
	if opt.Short != "" {
		b.WriteString(", -")
		b.WriteString(opt.Short)
	}
	if opt.Kind != KindBool {
		b.WriteString(" ")
		b.WriteString(optionDocv(opt))
	}
	return b.String()
}

// optionDoc renders column two: the doc text plus default and env var
// annotations, each on its own line.
func optionDoc(opt *Option) string {
	lines := make([]string, 0, 3)
	if opt.Doc != "" {
		lines = append(lines, opt.Doc)
	}
	if opt.Default != "" {
		dflt, _ := json.Marshal(opt.Default)
		lines = append(lines, fmt.Sprintf("(default: %s)", dflt))
	}
	if opt.EnvVar != "" {
		lines = append(lines, fmt.Sprintf("(env var: $%s)", opt.EnvVar))
	}
	return strings.Join(lines, "\n")
}

func optionDocv(opt *Option) string {
	if opt.Docv != "" {
		return opt.Docv
	}
	return strings.ToUpper(opt.Name)
}

func fmtArgPlaceholder(i int) string {
	return fmt.Sprintf("ARG%d", i+1)
}
