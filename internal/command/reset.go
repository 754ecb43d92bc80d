// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lingodiff/lingodiff/internal/log"
	"github.com/lingodiff/lingodiff/internal/meta"
	"github.com/lingodiff/lingodiff/internal/source"
)

func resetCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:          "reset",
		Usage:         "overwrite B with the text of A",
		UsageText:     "lingodiff reset A B",
		Action:        resetAction,
		Meta:          meta,
		NoOutputFlags: true,
	}).Build()
}

func resetAction(ctx context.Context, cmd *cli.Command) error {
	if ShortCircuitTLDR(ctx, cmd, "reset") {
		return nil
	}
	if cmd.Args().Len() != 2 {
		return fmt.Errorf("reset needs two documents: A B")
	}
	from, to := cmd.Args().Get(0), cmd.Args().Get(1)

	if err := source.Copy(ctx, from, to); err != nil {
		return err
	}
	log.Infof("reset %s from %s", to, from)
	return nil
}
