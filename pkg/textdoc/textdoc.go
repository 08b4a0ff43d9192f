// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textdoc builds plain-text documents out of verbatim lines,
// soft-wrapped paragraphs, and two-column tables, and renders them at a
// target width. It exists so help text can be assembled structurally and
// laid out in one place.
package textdoc

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

type block interface {
	render(sb *strings.Builder, width int)
}

// Doc is an ordered sequence of layout blocks.
type Doc struct {
	blocks []block
}

// New returns an empty document.
func New() *Doc {
	return &Doc{}
}

// Line appends a verbatim line, never wrapped.
func (d *Doc) Line(s string) *Doc {
	d.blocks = append(d.blocks, lineBlock(s))
	return d
}

// Blank appends an empty line.
func (d *Doc) Blank() *Doc {
	d.blocks = append(d.blocks, lineBlock(""))
	return d
}

// Para appends a paragraph soft-wrapped word by word at render time,
// indented by indent spaces.
func (d *Doc) Para(indent int, text string) *Doc {
	d.blocks = append(d.blocks, paraBlock{indent: indent, text: text})
	return d
}

// Table appends a two-column table indented by indent spaces. Column one
// is right-padded to the longest entry; column two is wrapped into the
// remaining width with continuation lines kept aligned.
func (d *Doc) Table(indent int, rows [][2]string) *Doc {
	d.blocks = append(d.blocks, tableBlock{indent: indent, rows: rows})
	return d
}

// Render lays out the document at the given width. Width values below 20
// are clamped to 20 so pathological terminals still get readable output.
func (d *Doc) Render(width int) string {
	if width < 20 {
		width = 20
	}
	var sb strings.Builder
	for _, b := range d.blocks {
		b.render(&sb, width)
	}
	return sb.String()
}

type lineBlock string

func (l lineBlock) render(sb *strings.Builder, width int) {
	sb.WriteString(string(l))
	sb.WriteByte('\n')
}

type paraBlock struct {
	indent int
	text   string
}

func (p paraBlock) render(sb *strings.Builder, width int) {
	writeWrapped(sb, p.text, p.indent, width)
}

type tableBlock struct {
	indent int
	rows   [][2]string
}

func (t tableBlock) render(sb *strings.Builder, width int) {
	widest := 0
	for _, row := range t.rows {
		if n := len(row[0]); n > widest {
			widest = n
		}
	}
	// Two spaces of gutter between the columns.
	col2 := t.indent + widest + 2
	for _, row := range t.rows {
		pad(sb, t.indent)
		sb.WriteString(row[0])
		if row[1] == "" {
			sb.WriteByte('\n')
			continue
		}
		pad(sb, widest-len(row[0])+2)
		lines := wrapLines(row[1], width-col2)
		for i, line := range lines {
			if i > 0 {
				pad(sb, col2)
			}
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
}

func pad(sb *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		sb.WriteByte(' ')
	}
}

func writeWrapped(sb *strings.Builder, text string, indent, width int) {
	for _, line := range wrapLines(text, width-indent) {
		pad(sb, indent)
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
}

// wrapLines soft-wraps text at the given width, preserving explicit
// newlines in the input.
func wrapLines(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	return strings.Split(wordwrap.WrapString(text, uint(width)), "\n")
}
