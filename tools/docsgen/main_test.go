// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeFlags(t *testing.T) {
	common := []Flag{{ID: "output"}, {ID: "attrs"}}

	got := mergeFlags(common, Subcommand{Flags: []Flag{{ID: "delta"}}})
	ids := make([]string, 0, len(got))
	for _, f := range got {
		ids = append(ids, f.ID)
	}
	assert.Equal(t, []string{"attrs", "delta", "output"}, ids)

	got = mergeFlags(common, Subcommand{NoCommon: true, Flags: []Flag{{ID: "check"}}})
	require.Len(t, got, 1)
	assert.Equal(t, "check", got[0].ID)
}

func TestGenerateRepoDocs(t *testing.T) {
	// Render the real templates into a scratch copy of docs/.
	docs := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(docs, "templates"), 0o755))

	src := filepath.Join("..", "..", "docs", "templates")
	entries, err := os.ReadDir(src)
	require.NoError(t, err)
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(src, e.Name()))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(docs, "templates", e.Name()), data, 0o600))
	}

	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, generate(docs, "1.2.3", now))

	md, err := os.ReadFile(filepath.Join(docs, "commands", "diff.md"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(md), "# lingodiff diff"))
	assert.Contains(t, string(md), "--delta")

	tldr, err := os.ReadFile(filepath.Join(docs, "tldr", "lingodiff-diff.md"))
	require.NoError(t, err)
	assert.Contains(t, string(tldr), "lingodiff diff")

	man, err := os.ReadFile(filepath.Join(docs, "man", "share", "man1", "lingodiff-save.1"))
	require.NoError(t, err)
	assert.Contains(t, string(man), "1.2.3")
	assert.Contains(t, string(man), "March 1, 2026")
	assert.NotContains(t, string(man), "--padding")
}
