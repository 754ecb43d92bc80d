// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lingodiff/lingodiff/internal/differ"
	"github.com/lingodiff/lingodiff/internal/editor"
	"github.com/lingodiff/lingodiff/internal/log"
	"github.com/lingodiff/lingodiff/internal/meta"
	"github.com/lingodiff/lingodiff/internal/source"
)

// runEditor runs the fill-in editor.
var runEditor = func(view differ.View, save editor.SaveFunc) (map[string]string, error) {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return nil, errors.New("fill needs a terminal")
	}
	return editor.Run(view, save)
}

func fillCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "fill",
		Usage:     "type in the translations B is missing",
		UsageText: "lingodiff fill [options] A B\nlingodiff fill [options] +",
		Flags: []cli.Flag{
			newRootFlag("fill"),
		},
		Action:        fillAction,
		Meta:          meta,
		NoOutputFlags: true,
	}).Build()
}

func fillAction(ctx context.Context, cmd *cli.Command) error {
	if ShortCircuitTLDR(ctx, cmd, "fill") {
		return nil
	}

	nameA, nameB, err := pairArgs(cmd)
	if err != nil {
		return err
	}

	a, b, err := source.LoadPair(ctx, nameA, nameB)
	if err != nil {
		return err
	}

	save := func(data []byte) error {
		return source.Save(ctx, nameB, data)
	}

	edits, err := runEditor(differ.Align(a, b), save)
	switch {
	case errors.Is(err, editor.ErrNothingToFill):
		fmt.Fprintf(stdout(cmd), "%s has every key of %s.\n", nameB, nameA)
		return nil
	case err != nil:
		return err
	}

	log.Debugf("fill: %d edits", len(edits))
	return nil
}
