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
	"github.com/lingodiff/lingodiff/internal/editor"
	"github.com/lingodiff/lingodiff/internal/log"
	"github.com/lingodiff/lingodiff/internal/meta"
	"github.com/lingodiff/lingodiff/internal/source"
)

func syncCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "sync",
		Usage:     "report target keys that are missing or extra",
		UsageText: "lingodiff sync [options] A B\nlingodiff sync [options] +",
		Flags: []cli.Flag{
			newRootFlag("sync"),
			&cli.BoolFlag{
				Name:  "write",
				Usage: "rewrite B without its extra keys",
			},
		},
		Action: syncAction,
		Meta:   meta,
	}).Build()
}

func syncAction(ctx context.Context, cmd *cli.Command) error {
	if shortCircuit[SyncRow](ctx, cmd, "sync") {
		return nil
	}

	nameA, nameB, err := pairArgs(cmd)
	if err != nil {
		return err
	}

	return NewActionRunner("sync",
		[]string{"key,issue"},
		nil,
		func(ctx context.Context, cmd *cli.Command) (*Result[SyncRow], error) {
			a, b, err := source.LoadPair(ctx, nameA, nameB)
			if err != nil {
				return nil, err
			}

			report, synced := differ.Sync(differ.Align(a, b))
			footer := syncSummary(report)

			if cmd.Bool("write") && len(report.Extra) > 0 {
				if err := writeTarget(ctx, nameB, synced); err != nil {
					return nil, err
				}
				footer += fmt.Sprintf(", %s removed from %s", humanize.Comma(int64(len(report.Extra))), nameB)
			}

			return &Result[SyncRow]{
				Raw:    report,
				Rows:   syncRows(report),
				Footer: footer,
			}, nil
		}).Run(ctx, cmd)
}

func syncSummary(report differ.SyncReport) string {
	if report.InSync() {
		return "in sync"
	}
	return fmt.Sprintf("%s missing, %s extra",
		humanize.Comma(int64(len(report.Missing))),
		humanize.Comma(int64(len(report.Extra))))
}

// writeTarget saves the target side of view to name as indented JSON.
func writeTarget(ctx context.Context, name string, view differ.View) error {
	data, err := document.Encode(differ.TargetDocument(view), editor.Indent)
	if err != nil {
		return err
	}
	log.Debugf("writing %d bytes to %s", len(data)+1, name)
	return source.Save(ctx, name, append(data, '\n'))
}
