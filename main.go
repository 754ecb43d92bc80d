// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lingodiff/lingodiff/internal/cacheutil"
	"github.com/lingodiff/lingodiff/internal/command"
	"github.com/lingodiff/lingodiff/internal/config"
	"github.com/lingodiff/lingodiff/internal/log"
	"github.com/lingodiff/lingodiff/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain(os.Args, os.Stdout, os.Stderr))
}

// handleVersion checks for --version/-v ahead of the subcommand and returns
// whether it was handled.
func handleVersion(args []string, w io.Writer) bool {
	if len(args) > 1 && (args[1] == "--version" || args[1] == "-v") {
		fmt.Fprintln(w, version.String())
		return true
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processCommandArgs handles command-specific argument processing.
func processCommandArgs(args []string) []string {
	if len(args) > 1 && args[1] == "completion" {
		// Short-circuit completion: pass args directly.
		return args
	}

	args = processSetOnly(args)
	log.Debugf("args after set processing: args=%v", args)

	args = deduplicateFlags(args)
	log.Debugf("args after dedup: args=%v", args)

	return args
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string, stdout, stderr io.Writer) int {
	// Pre-create cache directory when caching is enabled, and drop entries
	// older than cache.clean hours.
	if _, ok, err := cacheutil.EnsureBaseDir(); err != nil && ok {
		fmt.Fprintln(stderr, err)
		log.Debugf("cache ensure err: err=%v", err)
	} else if ok {
		if hours, _ := config.GetInt("cache.clean", 0); hours > 0 {
			if err := cacheutil.Purge(hours); err != nil {
				log.Warnf("cache purge: %v", err)
			}
		}
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}
	app.Writer = stdout
	app.ErrWriter = stderr

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain(args []string, stdout, stderr io.Writer) int {
	log.InitLogger()
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args, stdout) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip command processing and let the CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = processCommandArgs(args)
	}

	return initAndRunApp(args, stdout, stderr)
}

// processSetOnly expands a named set of arguments from the config file. An
// explicit @set argument is replaced by <command>.<set>, otherwise
// <command>.defaults goes right after the command.
func processSetOnly(args []string) []string {
	if len(args) < 2 {
		return args
	}

	// Look for an explicit @set argument starting from index 2.
	idx := 2
	set := "defaults"
	for i, a := range args[idx:] {
		if strings.HasPrefix(a, "@") && len(a) > 1 {
			set = a[1:]
			idx += i
			// Remove the @set argument.
			args = append(args[:idx:idx], args[idx+1:]...)
			break
		}
	}

	return injectConfigSet(args, args[1]+"."+set, idx)
}

// injectConfigSet inserts the entries of the config string list key at
// insertIdx. Each entry is split on whitespace.
func injectConfigSet(args []string, key string, insertIdx int) []string {
	entries, _ := config.GetStringSlice(key)
	if len(entries) == 0 {
		return args
	}

	var expanded []string
	for _, entry := range entries {
		expanded = append(expanded, strings.Fields(entry)...)
	}
	log.Debugf("set %s: %v", key, expanded)

	out := make([]string, 0, len(args)+len(expanded))
	out = append(out, args[:insertIdx]...)
	out = append(out, expanded...)
	return append(out, args[insertIdx:]...)
}

// deduplicateFlags drops all but the last occurrence of each flag after the
// command, so flags given on the command line win over those from a set. A
// flag without "=" takes the following argument as its value unless that
// argument is itself a flag.
func deduplicateFlags(args []string) []string {
	if len(args) <= 2 {
		return append([]string{}, args...)
	}

	type group struct {
		name   string
		tokens []string
	}

	var groups []group
	rest := args[2:]
	for i := 0; i < len(rest); i++ {
		tok := rest[i]
		name := flagName(tok)
		if name == "" {
			groups = append(groups, group{tokens: []string{tok}})
			continue
		}
		g := group{name: name, tokens: []string{tok}}
		if !strings.Contains(tok, "=") && i+1 < len(rest) && !strings.HasPrefix(rest[i+1], "-") {
			g.tokens = append(g.tokens, rest[i+1])
			i++
		}
		groups = append(groups, g)
	}

	last := map[string]int{}
	for i, g := range groups {
		if g.name != "" {
			last[g.name] = i
		}
	}

	out := append([]string{}, args[:2]...)
	for i, g := range groups {
		if g.name != "" && last[g.name] != i {
			continue
		}
		out = append(out, g.tokens...)
	}
	return out
}

// flagName returns the name of a flag argument, or "" for anything else.
func flagName(arg string) string {
	if !strings.HasPrefix(arg, "-") {
		return ""
	}
	name := strings.TrimLeft(arg, "-")
	if i := strings.Index(name, "="); i >= 0 {
		name = name[:i]
	}
	return name
}
