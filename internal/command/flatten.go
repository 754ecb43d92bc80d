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

func flattenCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "flatten",
		Usage:     "list the leaves of a document by dotted path",
		UsageText: "lingodiff flatten [options] A",
		Action:    flattenAction,
		Meta:      meta,
	}).Build()
}

func flattenAction(ctx context.Context, cmd *cli.Command) error {
	if shortCircuit[FlatRow](ctx, cmd, "flatten") {
		return nil
	}

	if cmd.Args().Len() != 1 {
		return fmt.Errorf("flatten needs one document")
	}
	name := cmd.Args().First()

	return NewActionRunner("flatten",
		[]string{"key,value,!type"},
		nil,
		func(ctx context.Context, cmd *cli.Command) (*Result[FlatRow], error) {
			doc, err := source.Load(ctx, name)
			if err != nil {
				return nil, err
			}
			flat := differ.Flatten(doc)

			// Raw output is the flat map itself, in path order.
			m := document.NewMapping()
			for _, p := range flat.Paths() {
				m.Set(p, flat[p])
			}

			return &Result[FlatRow]{
				Raw:    document.ObjectValue(m),
				Rows:   flatRows(flat),
				Footer: humanize.Comma(int64(len(flat))) + " keys",
			}, nil
		}).Run(ctx, cmd)
}
