// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"reflect"

	"github.com/urfave/cli/v3"

	"github.com/lingodiff/lingodiff/internal/log"
)

// Result is what a command's FetchFn hands back for output. Raw is written
// as is for --output=raw, Rows feed every other format. Header and Footer
// frame text output.
type Result[T any] struct {
	Raw    any
	Rows   []T
	Header string
	Footer string
}

// ActionRunner[T] encapsulates the common action pattern for the row
// producing subcommands. It handles meta, the short-circuit flags, attrs and
// output, with data loading provided by FetchFn.
type ActionRunner[T any] struct {
	CommandName  string
	SchemaType   reflect.Type
	DefaultAttrs []string
	PostProcess  func([]map[string]interface{}) error
	FetchFn      func(context.Context, *cli.Command) (*Result[T], error)
}

// Run executes the action with the provided context and command.
func (ar *ActionRunner[T]) Run(
	ctx context.Context,
	cmd *cli.Command,
) error {
	// Step 1: GetMeta + debug.
	m := GetMeta(cmd)
	log.Debugf("Executing action for %s %v", ar.CommandName, cmd.Args().Slice())
	log.Tracef("starting dir: %s", m.StartingDir)

	// Step 2: Short-circuit checks.
	if ShortCircuitTLDR(ctx, cmd, ar.CommandName) {
		return nil
	}
	if DumpSchemaIfRequested(cmd, ar.SchemaType) {
		return nil
	}

	// Step 3: BuildAttrs + debug.
	attrs, err := BuildAttrs(cmd, ar.DefaultAttrs...)
	if err != nil {
		return err
	}
	log.Debugf("attrs: %v", attrs)

	// Step 4: Fetch data.
	result, err := ar.FetchFn(ctx, cmd)
	if err != nil {
		return err
	}

	// Step 5: Emit + return.
	if cmd.Metadata == nil {
		cmd.Metadata = map[string]any{}
	}
	cmd.Metadata["header"] = result.Header
	cmd.Metadata["footer"] = result.Footer

	return Emit(result.Raw, result.Rows, attrs, cmd, ar.PostProcess)
}

// NewActionRunner creates an ActionRunner with the provided configuration.
// It's a convenience factory that reduces boilerplate in individual command
// files.
func NewActionRunner[T any](
	commandName string,
	defaultAttrs []string,
	postProcess func([]map[string]interface{}) error,
	fetchFn func(context.Context, *cli.Command) (*Result[T], error),
) *ActionRunner[T] {
	return &ActionRunner[T]{
		CommandName:  commandName,
		SchemaType:   reflect.TypeOf((*T)(nil)).Elem(),
		DefaultAttrs: defaultAttrs,
		PostProcess:  postProcess,
		FetchFn:      fetchFn,
	}
}
