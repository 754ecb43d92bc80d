// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lingodiff/lingodiff/internal/log"
	"github.com/lingodiff/lingodiff/internal/picker"
	"github.com/lingodiff/lingodiff/internal/tree"
	"github.com/lingodiff/lingodiff/internal/util"
)

// pickArg in place of A and B opens the file picker.
const pickArg = "+"

var errNoTerminal = errors.New("picking files needs a terminal")

// selectFiles runs the interactive picker.
var selectFiles = func(items []picker.Item) ([]string, error) {
	if !isTerminal(os.Stdin) {
		return nil, errNoTerminal
	}
	return picker.SelectFiles(items)
}

func newRootFlag(ns string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "root",
		Aliases: []string{"r"},
		Usage:   "directory the " + pickArg + " picker lists",
		Sources: ConfigSources(ns, "root"),
	}
}

// pairArgs returns the A and B names of a two document command, asking the
// picker for them when the only argument is "+".
func pairArgs(cmd *cli.Command) (string, string, error) {
	args := cmd.Args()
	if args.Len() == 1 && args.First() == pickArg {
		return pickPair(cmd)
	}
	if args.Len() != 2 {
		return "", "", fmt.Errorf("%s needs two documents: A B (or %s to pick them)", cmd.Name, pickArg)
	}
	return args.Get(0), args.Get(1), nil
}

func pickPair(cmd *cli.Command) (string, string, error) {
	root := cmd.String("root")
	if root == "" {
		root = GetMeta(cmd).RootDir
	}
	if root == "" {
		root = "."
	}

	dir, err := util.ResolveDir(root)
	if err != nil {
		return "", "", fmt.Errorf("failed to resolve root (%s): %w", root, err)
	}

	nodes, err := tree.Scan(dir)
	if err != nil {
		return "", "", err
	}

	paths, err := selectFiles(picker.Items(dir, nodes))
	if err != nil {
		return "", "", err
	}
	log.Debugf("picked %v", paths)
	return paths[0], paths[1], nil
}
