// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchFilesReruns(t *testing.T) {
	orig := watchDebounce
	watchDebounce = 20 * time.Millisecond
	t.Cleanup(func() { watchDebounce = orig })

	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	other := filepath.Join(dir, "other.json")
	require.NoError(t, os.WriteFile(a, []byte(`{}`), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runs atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- watchFiles(ctx, []string{a}, io.Discard, func() error {
			runs.Add(1)
			return errors.New("keeps going")
		})
	}()

	require.Eventually(t, func() bool { return runs.Load() == 1 }, 2*time.Second, 10*time.Millisecond)

	// Files that are not watched do not trigger a run.
	require.NoError(t, os.WriteFile(other, []byte(`{}`), 0o600))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())

	require.NoError(t, os.WriteFile(a, []byte(`{"a":1}`), 0o600))
	require.Eventually(t, func() bool { return runs.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestWatchFilesRejectsS3(t *testing.T) {
	err := watchFiles(context.Background(), []string{"s3://bucket/en.json"}, io.Discard, func() error { return nil })
	assert.ErrorContains(t, err, "only works with local files")
}
