// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"reflect"

	"github.com/urfave/cli/v3"

	"github.com/lingodiff/lingodiff/internal/attrs"
	"github.com/lingodiff/lingodiff/internal/meta"
	"github.com/lingodiff/lingodiff/internal/output"
)

// BuildAttrs constructs an AttrList with defaults and optional extras from
// --attrs, then applies the global transform spec.
func BuildAttrs(cmd *cli.Command, defaults ...string) (al attrs.AttrList, err error) {
	for _, d := range defaults {
		if err = al.Set(d); err != nil {
			return nil, err
		}
	}
	if extras := cmd.String("attrs"); extras != "" {
		if err = al.Set(extras); err != nil {
			return nil, fmt.Errorf("--attrs: %w", err)
		}
	}
	err = al.SetGlobalTransformSpec()
	return
}

// DumpSchemaIfRequested writes the row schema for the provided type when
// --schema is set, and returns true if it handled the request.
func DumpSchemaIfRequested(cmd *cli.Command, t reflect.Type) bool {
	if cmd.Bool("schema") {
		output.DumpSchema("", t, stdout(cmd))
		return true
	}
	return false
}

// Emit marshals raw and rows and passes them to the common output routine.
func Emit(raw any, rows any, al attrs.AttrList, cmd *cli.Command,
	postProcess func([]map[string]interface{}) error) error {

	rawJSON, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	rowsJSON, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to marshal rows: %w", err)
	}

	ds := output.Dataset{Raw: append(rawJSON, '\n'), Rows: rowsJSON}
	return output.SliceDiceSpit(ds, al, cmd, stdout(cmd), withChop(cmd, postProcess))
}

// withChop runs the --chop shortening ahead of postProcess.
func withChop(cmd *cli.Command, postProcess func([]map[string]interface{}) error) func([]map[string]interface{}) error {
	if !cmd.Bool("chop") {
		return postProcess
	}
	return func(rows []map[string]interface{}) error {
		chopPrefix(rows, "key", "from")
		if postProcess != nil {
			return postProcess(rows)
		}
		return nil
	}
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr lingodiff <subcmd>` and returns true so the caller can exit
// early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "lingodiff", subcmd)
			c.Stdout = stdout(cmd)
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}

// shortCircuit handles --tldr and --schema for a command producing T rows
// ahead of argument checks.
func shortCircuit[T any](ctx context.Context, cmd *cli.Command, subcmd string) bool {
	return ShortCircuitTLDR(ctx, cmd, subcmd) ||
		DumpSchemaIfRequested(cmd, reflect.TypeOf((*T)(nil)).Elem())
}

// stdout is where command output goes. Tests swap the root's Writer.
func stdout(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}

// stdin is where commands read piped input from.
func stdin(cmd *cli.Command) io.Reader {
	if root := cmd.Root(); root != nil && root.Reader != nil {
		return root.Reader
	}
	return os.Stdin
}
