// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/lingodiff/lingodiff/internal/differ"
	"github.com/lingodiff/lingodiff/internal/meta"
	"github.com/lingodiff/lingodiff/internal/source"
)

func alignCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "align",
		Usage:     "line up source and target keys side by side",
		UsageText: "lingodiff align [options] A B\nlingodiff align [options] +",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "missing",
				Aliases: []string{"m"},
				Usage:   "only keys the target does not have",
			},
			newRootFlag("align"),
		},
		Action: alignAction,
		Meta:   meta,
	}).Build()
}

func alignAction(ctx context.Context, cmd *cli.Command) error {
	if shortCircuit[AlignRow](ctx, cmd, "align") {
		return nil
	}

	nameA, nameB, err := pairArgs(cmd)
	if err != nil {
		return err
	}

	return NewActionRunner("align",
		[]string{"key,source,target,status"},
		nil,
		func(ctx context.Context, cmd *cli.Command) (*Result[AlignRow], error) {
			a, b, err := source.LoadPair(ctx, nameA, nameB)
			if err != nil {
				return nil, err
			}
			view := differ.Align(a, b)
			if cmd.Bool("missing") {
				view = view.Missing()
			}
			if view == nil {
				view = differ.View{}
			}
			rows := alignRows(view)
			return &Result[AlignRow]{
				Raw:    view,
				Rows:   rows,
				Footer: alignSummary(rows),
			}, nil
		}).Run(ctx, cmd)
}

func alignSummary(rows []AlignRow) string {
	counts := map[string]int64{}
	for _, r := range rows {
		counts[r.Status]++
	}
	return fmt.Sprintf("%s keys, %s missing, %s empty, %s extra",
		humanize.Comma(int64(len(rows))),
		humanize.Comma(counts[statusMissing]),
		humanize.Comma(counts[statusEmpty]),
		humanize.Comma(counts[statusExtra]))
}
