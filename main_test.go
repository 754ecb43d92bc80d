// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingodiff/lingodiff/internal/config"
)

func TestDeduplicateFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "empty args",
			args:     []string{},
			expected: []string{},
		},
		{
			name:     "only program and command",
			args:     []string{"lingodiff", "diff"},
			expected: []string{"lingodiff", "diff"},
		},
		{
			name:     "no duplicates",
			args:     []string{"lingodiff", "diff", "--output", "text", "--titles"},
			expected: []string{"lingodiff", "diff", "--output", "text", "--titles"},
		},
		{
			name:     "duplicate flag with value - last wins",
			args:     []string{"lingodiff", "diff", "--output", "json", "--titles", "--output", "text"},
			expected: []string{"lingodiff", "diff", "--titles", "--output", "text"},
		},
		{
			name:     "duplicate boolean flag",
			args:     []string{"lingodiff", "diff", "--titles", "--chop", "--titles"},
			expected: []string{"lingodiff", "diff", "--chop", "--titles"},
		},
		{
			name:     "duplicate flag with equals syntax",
			args:     []string{"lingodiff", "diff", "--output=json", "--titles", "--output=text"},
			expected: []string{"lingodiff", "diff", "--titles", "--output=text"},
		},
		{
			name:     "mixed equals and space syntax - same flag",
			args:     []string{"lingodiff", "diff", "--output=json", "--output", "text"},
			expected: []string{"lingodiff", "diff", "--output", "text"},
		},
		{
			name:     "positional args preserved",
			args:     []string{"lingodiff", "diff", "--output", "json", "a.json", "b.json", "--output", "text"},
			expected: []string{"lingodiff", "diff", "a.json", "b.json", "--output", "text"},
		},
		{
			name:     "short flags deduplicated",
			args:     []string{"lingodiff", "diff", "-o", "json", "-o", "text"},
			expected: []string{"lingodiff", "diff", "-o", "text"},
		},
		{
			name:     "stdin dash is positional",
			args:     []string{"lingodiff", "save", "-", "-"},
			expected: []string{"lingodiff", "save", "-", "-"},
		},
		{
			name:     "triple duplicate",
			args:     []string{"lingodiff", "diff", "--sort", "a", "--sort", "b", "--sort", "c"},
			expected: []string{"lingodiff", "diff", "--sort", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, deduplicateFlags(tt.args))
		})
	}
}

// useConfig points the config file at a temp file holding text.
func useConfig(t *testing.T, text string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lingodiff.yaml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	t.Setenv(config.EnvFile, path)
	config.Config = config.Type{}
	_, err := config.Load()
	require.NoError(t, err)
	t.Cleanup(func() { config.Config = config.Type{} })
}

func TestProcessSetOnly(t *testing.T) {
	useConfig(t, `
diff:
  defaults:
    - --titles
  wide:
    - --padding 4
    - --sort key
`)

	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "defaults injected after command",
			args:     []string{"lingodiff", "diff", "a.json", "b.json"},
			expected: []string{"lingodiff", "diff", "--titles", "a.json", "b.json"},
		},
		{
			name:     "named set replaces its argument",
			args:     []string{"lingodiff", "diff", "a.json", "@wide", "b.json"},
			expected: []string{"lingodiff", "diff", "a.json", "--padding", "4", "--sort", "key", "b.json"},
		},
		{
			name:     "unknown set is dropped",
			args:     []string{"lingodiff", "diff", "@nope", "a.json"},
			expected: []string{"lingodiff", "diff", "a.json"},
		},
		{
			name:     "command without sets",
			args:     []string{"lingodiff", "tree"},
			expected: []string{"lingodiff", "tree"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, processSetOnly(tt.args))
		})
	}
}

func TestSetThenCommandLineWins(t *testing.T) {
	useConfig(t, `
flatten:
  defaults:
    - --output json
`)
	args := processCommandArgs([]string{"lingodiff", "flatten", "--output", "yaml", "a.json"})
	assert.Equal(t, []string{"lingodiff", "flatten", "--output", "yaml", "a.json"}, args)
}

func TestRealMain(t *testing.T) {
	t.Setenv(config.EnvFile, "")
	t.Setenv("LINGODIFF_CACHE", "false")
	config.Config = config.Type{}

	dir := t.TempDir()
	a := filepath.Join(dir, "en.json")
	b := filepath.Join(dir, "de.json")
	require.NoError(t, os.WriteFile(a, []byte(`{"hello":"Hello","bye":"Bye"}`), 0o600))
	require.NoError(t, os.WriteFile(b, []byte(`{"hello":"Hallo"}`), 0o600))

	var stdout, stderr bytes.Buffer
	code := realMain([]string{"lingodiff", "diff", "--output", "json", a, b}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t,
		`[{"change":"modified","key":"hello","old":"Hello","new":"Hallo"},{"change":"deleted","key":"bye","old":"Bye"}]`+"\n",
		stdout.String())

	stdout.Reset()
	stderr.Reset()
	code = realMain([]string{"lingodiff", "diff", a}, &stdout, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "needs two documents")

	stdout.Reset()
	code = realMain([]string{"lingodiff", "--version"}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(stdout.String(), "lingodiff "))
}
