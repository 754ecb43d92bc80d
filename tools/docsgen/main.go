// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Command docsgen renders the markdown, man and tldr pages of every lingodiff
// subcommand from docs/templates/lingodiff.yaml.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Subcommands []Subcommand `yaml:"subcommands"`
	Common      Common       `yaml:"common"`
}

type Common struct {
	Flags []Flag `yaml:"flags"`
}

type Subcommand struct {
	ID          string    `yaml:"id"`
	Short       string    `yaml:"short"`
	Description string    `yaml:"description"`
	Usage       string    `yaml:"usage"`
	NoCommon    bool      `yaml:"no_common,omitempty"`
	Flags       []Flag    `yaml:"flags"`
	Examples    []Example `yaml:"examples"`
	Notes       []string  `yaml:"notes,omitempty"`
}

type Flag struct {
	ID          string `yaml:"id"`
	Syntax      string `yaml:"syntax"`
	Description string `yaml:"description"`
	Default     string `yaml:"default,omitempty"`
	More        string `yaml:"more,omitempty"`
}

type Example struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

type TemplateData struct {
	Subcommand
	Date    string
	Version string
	IDUpper string
}

type Outputs struct {
	Template string
	Folder   string
	Prefix   string
	Suffix   string
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen DOCS_DIR")
		os.Exit(1)
	}

	if err := generate(os.Args[1], getVersion(), time.Now()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// generate writes one page per subcommand and output type under docs.
func generate(docs string, version string, now time.Time) error {
	data, err := os.ReadFile(filepath.Join(docs, "templates", "lingodiff.yaml"))
	if err != nil {
		return err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("lingodiff.yaml: %w", err)
	}

	types := []Outputs{
		{Template: "lingodiff.md.tmpl", Folder: "commands", Suffix: ".md"},
		{Template: "lingodiff.man.tmpl", Folder: filepath.Join("man", "share", "man1"), Prefix: "lingodiff-", Suffix: ".1"},
		{Template: "lingodiff.tldr.tmpl", Folder: "tldr", Prefix: "lingodiff-", Suffix: ".md"},
	}

	for _, sub := range config.Subcommands {
		sub.Flags = mergeFlags(config.Common.Flags, sub)

		metadata := TemplateData{
			Subcommand: sub,
			Date:       now.Format("January 2, 2006"),
			Version:    version,
			IDUpper:    strings.ToUpper(sub.ID),
		}

		for _, t := range types {
			folder := filepath.Join(docs, t.Folder)
			if err := os.MkdirAll(folder, 0o755); err != nil {
				return err
			}

			tmpl, err := template.ParseFiles(filepath.Join(docs, "templates", t.Template))
			if err != nil {
				return err
			}

			path := filepath.Join(folder, t.Prefix+sub.ID+t.Suffix)
			fmt.Println("Generating", path)
			if err := render(tmpl, path, metadata); err != nil {
				return err
			}
		}
	}

	return nil
}

// mergeFlags returns the common flags, unless the subcommand opts out, plus
// the subcommand's own, sorted by id.
func mergeFlags(common []Flag, sub Subcommand) []Flag {
	var merged []Flag
	if !sub.NoCommon {
		merged = append(merged, common...)
	}
	merged = append(merged, sub.Flags...)

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].ID < merged[j].ID
	})
	return merged
}

func render(tmpl *template.Template, path string, data TemplateData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := tmpl.Execute(file, data); err != nil {
		file.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return file.Close()
}

// getVersion returns the version string from git tags, stripping the leading
// "v" prefix. Falls back to "dev" if git describe fails.
func getVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}

	version := strings.TrimSpace(string(out))
	return strings.TrimPrefix(version, "v")
}
