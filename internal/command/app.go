// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lingodiff/lingodiff/internal/config"
	"github.com/lingodiff/lingodiff/internal/log"
	"github.com/lingodiff/lingodiff/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	// The arg[1] immediately following the binary (arg[0]) is the lingodiff
	// subcommand and also represents the namespace key to be used when
	// retrieving config values. arg[1] could be -h/--help, so ignore it if it
	// appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}
	config.SetNamespace(ns)

	// A missing config file is normal.
	cfg, err := config.Load()
	if err != nil {
		log.Debugf("config not loaded: %v", err)
	}

	meta := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		RootDir:     sd,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:  "lingodiff",
		Usage: "compare and fill translation documents",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "lingodiff version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		alignCommandBuilder(meta),
		diffCommandBuilder(meta),
		fillCommandBuilder(meta),
		flattenCommandBuilder(meta),
		resetCommandBuilder(meta),
		saveCommandBuilder(meta),
		syncCommandBuilder(meta),
		treeCommandBuilder(meta),
		completionCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
