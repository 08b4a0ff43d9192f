// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command todo is a small task list CLI built on cmdtree. It shows
// subcommands, repeating options, env-backed defaults, and an optional
// rest argument. Tasks are kept in a YAML file.
package main

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/fatih/color"
	"github.com/yeetrun/cmdtree/pkg/cmdtree"
	"gopkg.in/yaml.v3"
)

type task struct {
	Title string   `yaml:"title"`
	Tags  []string `yaml:"tags,omitempty"`
	Done  bool     `yaml:"done,omitempty"`
}

type store struct {
	Tasks []task `yaml:"tasks"`
}

func loadStore(path string) (*store, error) {
	var s store
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &s, nil
}

func (s *store) save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

var fileOption = cmdtree.Option{
	Name:    "file",
	Short:   "f",
	Docv:    "FILE",
	Doc:     "Task file to read and write",
	EnvVar:  "TODO_FILE",
	Default: "todo.yaml",
}

func root() *cmdtree.Command {
	return &cmdtree.Command{
		Name: "todo",
		Doc:  "Track tasks in a YAML file",
		Commands: map[string]*cmdtree.Command{
			"add": {
				Name:    "add",
				Doc:     "Add a task",
				Args:    []cmdtree.Arg{{Docv: "TITLE", Doc: "Task title"}},
				Options: []cmdtree.Option{fileOption, {Name: "tag", Short: "t", Docv: "TAG", Doc: "Attach a tag, may repeat", Repeat: true}},
				Action:  handleAdd,
			},
			"list": {
				Name:    "list",
				Doc:     "List tasks, optionally filtered by tag",
				Rest:    &cmdtree.Rest{Docv: "TAG", Doc: "Only show tasks carrying TAG"},
				Options: []cmdtree.Option{fileOption, {Name: "all", Short: "a", Kind: cmdtree.KindBool, Doc: "Include finished tasks", EnvVar: "TODO_ALL"}},
				Action:  handleList,
			},
			"done": {
				Name:    "done",
				Doc:     "Mark tasks as finished",
				Rest:    &cmdtree.Rest{Docv: "TITLE", Doc: "Task titles to finish", Repeat: true},
				Options: []cmdtree.Option{fileOption},
				Action:  handleDone,
			},
		},
	}
}

func handleAdd(ctx context.Context, opts cmdtree.Options, args []any) error {
	s, err := loadStore(opts.String("file"))
	if err != nil {
		return err
	}
	title := args[0].(string)
	for _, t := range s.Tasks {
		if t.Title == title {
			return cmdtree.Userf("task %q already exists", title)
		}
	}
	s.Tasks = append(s.Tasks, task{Title: title, Tags: opts.Strings("tag")})
	return s.save(opts.String("file"))
}

func handleList(ctx context.Context, opts cmdtree.Options, args []any) error {
	s, err := loadStore(opts.String("file"))
	if err != nil {
		return err
	}
	var tag string
	if len(args) > 0 {
		tag = args[0].(string)
	}
	for _, t := range s.Tasks {
		if t.Done && !opts.Bool("all") {
			continue
		}
		if tag != "" && !slices.Contains(t.Tags, tag) {
			continue
		}
		mark := " "
		if t.Done {
			mark = color.GreenString("x")
		}
		fmt.Printf("[%s] %s\n", mark, t.Title)
	}
	return nil
}

func handleDone(ctx context.Context, opts cmdtree.Options, args []any) error {
	s, err := loadStore(opts.String("file"))
	if err != nil {
		return err
	}
	for _, a := range args {
		title := a.(string)
		i := slices.IndexFunc(s.Tasks, func(t task) bool { return t.Title == title })
		if i < 0 {
			return cmdtree.Userf("no task named %q", title)
		}
		s.Tasks[i].Done = true
	}
	return s.save(opts.String("file"))
}

func main() {
	cmdtree.Main(root())
}
