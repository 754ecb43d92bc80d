// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lingodiff/lingodiff/internal/document"
	"github.com/lingodiff/lingodiff/internal/log"
)

// Load reads and parses the document called name.
func Load(ctx context.Context, name string, opts ...Option) (document.Value, error) {
	src, err := Open(ctx, name, opts...)
	if err != nil {
		return document.Value{}, err
	}
	data, err := src.Read(ctx)
	if err != nil {
		return document.Value{}, err
	}
	return document.Parse(name, data)
}

// LoadPair reads and parses both documents concurrently. A missing a is an
// error. A missing b is an empty mapping so new translations can start from
// nothing, but a b that exists and does not parse is an error.
func LoadPair(ctx context.Context, nameA, nameB string, opts ...Option) (a, b document.Value, err error) {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		a, err = loadSide(gctx, "A", nameA, opts)
		return err
	})

	g.Go(func() error {
		var err error
		b, err = loadSide(gctx, "B", nameB, opts)
		if errors.Is(err, ErrNotFound) {
			log.Debugf("file B %s does not exist, using empty document", nameB)
			b, err = document.Empty(), nil
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return document.Value{}, document.Value{}, err
	}
	return a, b, nil
}

func loadSide(ctx context.Context, side, name string, opts []Option) (document.Value, error) {
	src, err := Open(ctx, name, opts...)
	if err != nil {
		return document.Value{}, fmt.Errorf("error opening file %s: %w", side, err)
	}

	data, err := src.Read(ctx)
	if err != nil {
		return document.Value{}, fmt.Errorf("error reading file %s: %w", side, err)
	}

	v, err := document.Parse(name, data)
	if err != nil {
		return document.Value{}, fmt.Errorf("error parsing file %s: %w", side, err)
	}
	return v, nil
}

// Copy writes the raw text of from over to.
func Copy(ctx context.Context, from, to string, opts ...Option) error {
	src, err := Open(ctx, from, opts...)
	if err != nil {
		return err
	}
	dst, err := Open(ctx, to, opts...)
	if err != nil {
		return err
	}

	data, err := src.Read(ctx)
	if err != nil {
		return err
	}
	return dst.Write(ctx, data)
}

// Save writes data to name.
func Save(ctx context.Context, name string, data []byte, opts ...Option) error {
	dst, err := Open(ctx, name, opts...)
	if err != nil {
		return err
	}
	return dst.Write(ctx, data)
}
