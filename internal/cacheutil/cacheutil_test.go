// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// no-cloc
package cacheutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempCache(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "cache")
	t.Setenv(EnvDir, dir)
	t.Setenv(EnvEnabled, "")
	return dir
}

func TestDir(t *testing.T) {
	dir := useTempCache(t)
	got, ok := Dir()
	assert.True(t, ok)
	assert.Equal(t, dir, got)

	t.Setenv(EnvDir, "")
	got, ok = Dir()
	if ok {
		assert.True(t, filepath.IsAbs(got))
		assert.Equal(t, "lingodiff", filepath.Base(got))
	}
}

func TestEnabled(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"", true},
		{"1", true},
		{"yes", true},
		{"0", false},
		{"false", false},
		{"FALSE", false},
	}

	for _, tt := range tests {
		t.Run("value="+tt.value, func(t *testing.T) {
			t.Setenv(EnvEnabled, tt.value)
			assert.Equal(t, tt.expected, Enabled())
		})
	}
}

func TestEnsureBaseDir(t *testing.T) {
	dir := useTempCache(t)

	base, ok, err := EnsureBaseDir()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, dir, base)
	assert.DirExists(t, dir)

	t.Setenv(EnvEnabled, "0")
	base, ok, err = EnsureBaseDir()
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, base)
}

func TestWriteRead(t *testing.T) {
	useTempCache(t)
	key := Key("bucket", "path/en.json", `"etag"`)
	subdirs := []string{"s3", "bucket"}

	_, ok := Read(subdirs, key)
	assert.False(t, ok)

	data := []byte("{\n  \"a\": 1\n}\n")
	require.NoError(t, Write(subdirs, key, data))

	entry, ok := Read(subdirs, key)
	require.True(t, ok)
	assert.Equal(t, data, entry.Data)
	assert.Equal(t, key, entry.Key)
	assert.Len(t, entry.EncodedKey, 64)

	p, exists := EntryPath(subdirs, key)
	assert.True(t, exists)
	assert.Equal(t, p, entry.Path)

	t.Setenv(EnvEnabled, "false")
	_, ok = Read(subdirs, key)
	assert.False(t, ok)
	assert.NoError(t, Write(subdirs, "other", data))
	_, exists = EntryPath(subdirs, "other")
	assert.False(t, exists)
}

func TestPurge(t *testing.T) {
	useTempCache(t)
	require.NoError(t, Write([]string{"s3"}, "old", []byte("x")))
	require.NoError(t, Write([]string{"s3"}, "new", []byte("y")))

	oldPath, _ := EntryPath([]string{"s3"}, "old")
	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(oldPath, past, past))

	require.NoError(t, Purge(0))
	_, exists := EntryPath([]string{"s3"}, "old")
	assert.True(t, exists)

	require.NoError(t, Purge(24))
	_, exists = EntryPath([]string{"s3"}, "old")
	assert.False(t, exists)
	_, exists = EntryPath([]string{"s3"}, "new")
	assert.True(t, exists)
}

func TestPurgeMissingDir(t *testing.T) {
	useTempCache(t)
	assert.NoError(t, Purge(1))
}
