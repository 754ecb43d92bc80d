// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/lingodiff/lingodiff/internal/document"
	"github.com/lingodiff/lingodiff/internal/log"
	"github.com/lingodiff/lingodiff/internal/meta"
	"github.com/lingodiff/lingodiff/internal/source"
	"github.com/lingodiff/lingodiff/internal/util"
)

func saveCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "save",
		Usage:     "write stdin to a document",
		UsageText: "lingodiff save [options] PATH < data",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "check",
				Usage: "refuse input that does not parse as PATH's format",
			},
		},
		Action:        saveAction,
		Meta:          meta,
		NoOutputFlags: true,
	}).Build()
}

func saveAction(ctx context.Context, cmd *cli.Command) error {
	if ShortCircuitTLDR(ctx, cmd, "save") {
		return nil
	}
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("save needs one destination")
	}
	name := cmd.Args().First()
	if util.IsDir(name) {
		return fmt.Errorf("%s is a directory", name)
	}

	data, err := io.ReadAll(stdin(cmd))
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}

	if cmd.Bool("check") {
		if _, err := document.Parse(name, data); err != nil {
			return fmt.Errorf("not saving %s: %w", name, err)
		}
	}

	if err := source.Save(ctx, name, data); err != nil {
		return err
	}
	log.Infof("saved %s to %s", humanize.Bytes(uint64(len(data))), name)
	return nil
}
