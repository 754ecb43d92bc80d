// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/lingodiff/lingodiff/internal/differ"
	"github.com/lingodiff/lingodiff/internal/document"
	"github.com/lingodiff/lingodiff/internal/meta"
	"github.com/lingodiff/lingodiff/internal/source"
)

// identical is the text footer of an empty diff.
const identical = "Files are identical!"

func diffCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "diff",
		Usage:     "classify the changes between two documents",
		UsageText: "lingodiff diff [options] A B\nlingodiff diff [options] +",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "delta",
				Aliases: []string{"d"},
				Usage:   "show the structural delta instead of classified rows",
			},
			&cli.StringSliceFlag{
				Name:  "ignore",
				Usage: "top level keys left out of the --delta view",
			},
			newRootFlag("diff"),
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "re-run whenever A or B is written",
			},
		},
		Action: diffAction,
		Meta:   meta,
	}).Build()
}

func diffAction(ctx context.Context, cmd *cli.Command) error {
	if shortCircuit[DiffRow](ctx, cmd, "diff") {
		return nil
	}

	nameA, nameB, err := pairArgs(cmd)
	if err != nil {
		return err
	}

	runner := NewActionRunner("diff",
		[]string{diffAttrs(cmd.String("output"))},
		arrowRenames,
		func(ctx context.Context, cmd *cli.Command) (*Result[DiffRow], error) {
			a, b, err := source.LoadPair(ctx, nameA, nameB)
			if err != nil {
				return nil, err
			}
			r := differ.Diff(a, b)
			return &Result[DiffRow]{
				Raw:    r,
				Rows:   diffRows(r),
				Footer: diffSummary(r),
			}, nil
		})

	run := func() error {
		if cmd.Bool("delta") {
			return deltaAction(ctx, cmd, nameA, nameB)
		}
		return runner.Run(ctx, cmd)
	}

	if cmd.Bool("watch") {
		return watchFiles(ctx, []string{nameA, nameB}, stdout(cmd), run)
	}
	return run()
}

// diffAttrs picks the default columns. Text shows a rename as "old → new"
// in the key column, other formats keep the old key in its own field.
func diffAttrs(output string) string {
	if output == "text" {
		return "change,!from,key,old,new"
	}
	return "change,key,from,old,new"
}

// diffSummary counts the changes per kind.
func diffSummary(r differ.Result) string {
	if r.Empty() {
		return identical
	}
	return fmt.Sprintf("%s renamed, %s modified, %s added, %s deleted",
		humanize.Comma(int64(len(r.Renamed))),
		humanize.Comma(int64(len(r.Modified))),
		humanize.Comma(int64(len(r.Added))),
		humanize.Comma(int64(len(r.Deleted))))
}

// deltaAction prints the gojsondiff rendering of A against B.
func deltaAction(ctx context.Context, cmd *cli.Command, nameA, nameB string) error {
	a, b, err := source.LoadPair(ctx, nameA, nameB)
	if err != nil {
		return err
	}

	left, err := document.Encode(a, "")
	if err != nil {
		return err
	}
	right, err := document.Encode(b, "")
	if err != nil {
		return err
	}

	w := stdout(cmd)
	out, changed, err := differ.Delta(left, right, differ.DeltaOptions{
		Ignore:         cmd.StringSlice("ignore"),
		Color:          cmd.Bool("color") && isTerminal(w),
		ShowArrayIndex: true,
	})
	if err != nil {
		return err
	}

	if !changed {
		_, err = fmt.Fprintln(w, identical)
		return err
	}
	_, err = fmt.Fprint(w, out)
	return err
}
