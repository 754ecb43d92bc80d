// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/lingodiff/lingodiff/internal/meta"
)

// CommandBuilder is a helper that constructs a cli.Command for the document
// subcommands using a consistent pattern. It accepts the command name, usage
// text, optional UsageText, custom flags, the action handler, and meta. The
// builder wires metadata, adds tldr/schema flags, applies global flags, and
// sets up validators. Interactive commands set NoOutputFlags to skip the
// output flags.
type CommandBuilder struct {
	Name          string
	Usage         string
	UsageText     string
	Flags         []cli.Flag
	Action        func(context.Context, *cli.Command) error
	Meta          meta.Meta
	NoOutputFlags bool
}

// Build returns a configured cli.Command from the builder.
func (cb *CommandBuilder) Build() *cli.Command {
	flags := append(cb.Flags, newTldrFlag())
	if !cb.NoOutputFlags {
		flags = append(flags, newSchemaFlag())
		flags = append(flags, NewGlobalFlags(cb.Name)...)
	}

	return &cli.Command{
		Name:      cb.Name,
		Usage:     cb.Usage,
		UsageText: cb.UsageText,
		Metadata: map[string]any{
			"meta": cb.Meta,
		},
		Flags: flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: cb.Action,
	}
}
