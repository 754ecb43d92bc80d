// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/lingodiff/lingodiff/internal/meta"
	"github.com/lingodiff/lingodiff/internal/tree"
	"github.com/lingodiff/lingodiff/internal/util"
)

func treeCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "tree",
		Usage:     "list the documents under a directory",
		UsageText: "lingodiff tree [options] [DIR]",
		Action:    treeAction,
		Meta:      meta,
	}).Build()
}

func treeAction(ctx context.Context, cmd *cli.Command) error {
	dir := cmd.Args().First()
	if dir == "" {
		dir = GetMeta(cmd).RootDir
	}
	if dir == "" {
		dir = "."
	}

	return NewActionRunner("tree",
		[]string{"name,size:size:b,!path,!is_dir,!depth"},
		indentNames,
		func(_ context.Context, _ *cli.Command) (*Result[TreeRow], error) {
			root, err := util.ResolveDir(dir)
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%s: %w", dir, tree.ErrNoDirectory)
			}
			if err != nil {
				return nil, fmt.Errorf("%s: not a directory: %w", dir, err)
			}

			nodes, err := tree.Scan(root)
			if err != nil {
				return nil, err
			}
			if nodes == nil {
				nodes = []tree.FileNode{}
			}

			rows := treeRows(root, nodes)
			var files, total int64
			for _, r := range rows {
				if !r.IsDir {
					files++
					total += r.Size
				}
			}

			return &Result[TreeRow]{
				Raw:    nodes,
				Rows:   rows,
				Header: root,
				Footer: fmt.Sprintf("%s files, %s", humanize.Comma(files), humanize.Bytes(uint64(total))),
			}, nil
		}).Run(ctx, cmd)
}
