// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Local is a file on the local filesystem.
type Local struct {
	Path string
}

func (l Local) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(l.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", l.Path, ErrNotFound)
	}
	return data, err
}

// Write replaces the file with data, creating parent directories.
func (l Local) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dir := filepath.Dir(l.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
			return err
		}
	}
	return os.WriteFile(l.Path, data, 0o644) //nolint:mnd
}

func (l Local) String() string { return l.Path }
