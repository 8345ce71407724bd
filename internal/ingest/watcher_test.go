package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect drains events until every expected path was seen or the deadline
// passes, then returns the distinct paths observed.
func collect(t *testing.T, events <-chan string, want int, deadline time.Duration) map[string]bool {
	t.Helper()
	seen := map[string]bool{}
	timeout := time.After(deadline)
	for len(seen) < want {
		select {
		case p, ok := <-events:
			if !ok {
				return seen
			}
			seen[p] = true
		case <-timeout:
			return seen
		}
	}
	return seen
}

func TestWatcherEmitsCreatedPDF(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: 10 * time.Millisecond,
	}, nil)
	require.NoError(t, err)

	path := filepath.Join(dir, "contrato.pdf")
	writePDF(t, path, "%PDF-1.4 uno")

	seen := collect(t, events, 1, 5*time.Second)
	assert.True(t, seen[path])
}

func TestWatcherDebouncesWriteBursts(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: 5 * time.Millisecond,
	}, nil)
	require.NoError(t, err)

	// rapid create+rewrite bursts across many files; every path must come
	// out exactly identifiable, and nothing may crash mid-burst
	const files = 40
	paths := make([]string, 0, files)
	for i := 0; i < files; i++ {
		p := filepath.Join(dir, fmt.Sprintf("doc-%03d.pdf", i))
		paths = append(paths, p)
		writePDF(t, p, "%PDF-1.4 v1")
	}
	for _, p := range paths {
		writePDF(t, p, "%PDF-1.4 v2 con mas contenido")
	}

	seen := collect(t, events, files, 10*time.Second)
	for _, p := range paths {
		assert.True(t, seen[p], "missing %s", p)
	}
}

func TestWatcherIgnoresNonPDF(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: 5 * time.Millisecond,
	}, nil)
	require.NoError(t, err)

	writePDF(t, filepath.Join(dir, "notas.txt"), "no es un pdf")
	pdf := filepath.Join(dir, "orden.pdf")
	writePDF(t, pdf, "%PDF-1.4")

	seen := collect(t, events, 1, 5*time.Second)
	assert.True(t, seen[pdf])
	assert.Len(t, seen, 1)
}

func TestWatcherClosesCleanlyWithPendingDebounce(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())

	events, errs, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: time.Second,
	}, nil)
	require.NoError(t, err)

	// cancel while a debounce window is still open; the channels must close
	// without any late delivery attempt
	writePDF(t, filepath.Join(dir, "tarde.pdf"), "%PDF-1.4")
	time.Sleep(20 * time.Millisecond)
	cancel()

	deadline := time.After(5 * time.Second)
	for events != nil || errs != nil {
		select {
		case _, ok := <-events:
			if !ok {
				events = nil
			}
		case _, ok := <-errs:
			if !ok {
				errs = nil
			}
		case <-deadline:
			t.Fatal("watcher channels did not close after cancel")
		}
	}
}

func TestWatcherInitialScanEmitsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "previo", "acta.pdf")
	writePDF(t, existing, "%PDF-1.4 previo")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, WatchConfig{
		Roots:       []string{dir},
		InitialScan: true,
		Debounce:    5 * time.Millisecond,
	}, nil)
	require.NoError(t, err)

	seen := collect(t, events, 1, 5*time.Second)
	assert.True(t, seen[existing])
}
