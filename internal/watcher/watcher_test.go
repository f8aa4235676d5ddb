package watcher

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfoliohub/hub-server/internal/logger"
)

func TestWatcherFiresOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blog.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	var fired atomic.Int32
	w, err := New(path, func() { fired.Add(1) }, logger.Discard().Logger)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"1"}]`), 0o644))

	assert.Eventually(t, func() bool {
		return fired.Load() >= 1
	}, 5*time.Second, 50*time.Millisecond)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blog.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	var fired atomic.Int32
	w, err := New(path, func() { fired.Add(1) }, logger.Discard().Logger)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0o644))

	time.Sleep(settleDelay + 200*time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

func TestWatcherFiresOnAtomicRename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blog.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	var fired atomic.Int32
	w, err := New(path, func() { fired.Add(1) }, logger.Discard().Logger)
	require.NoError(t, err)
	defer w.Close()

	tmp := filepath.Join(dir, "blog.json.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte(`[{"id":"2"}]`), 0o644))
	require.NoError(t, os.Rename(tmp, path))

	assert.Eventually(t, func() bool {
		return fired.Load() >= 1
	}, 5*time.Second, 50*time.Millisecond)
}
