package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/31d4r/Raven/internal/logger"
	"github.com/31d4r/Raven/internal/model"
)

type collector struct {
	mu    sync.Mutex
	paths []string
}

func (c *collector) handle(ctx context.Context, filePath string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paths = append(c.paths, filepath.Base(filePath))
	return nil
}

func (c *collector) seen() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.paths...)
}

func TestWatcherHandlesSupportedFiles(t *testing.T) {
	dir := t.TempDir()
	c := &collector{}

	w, err := New(Options{Dir: dir, SettleDelay: 10 * time.Millisecond, Filter: SupportedMedia}, c.handle, logger.Nop())
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	// Give the event loop a moment to start.
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "lecture.mp3"), []byte("id3"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden.png"), []byte("x"), 0644))

	assert.Eventually(t, func() bool {
		return len(c.seen()) == 1
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after cancel")
	}

	assert.Equal(t, []string{"lecture.mp3"}, c.seen())
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(Options{Dir: filepath.Join(t.TempDir(), "nope")}, func(context.Context, string) error { return nil }, logger.Nop())
	assert.Error(t, err)
}

func TestSupportedMedia(t *testing.T) {
	tests := map[string]bool{
		"/in/a.PNG":    true,
		"/in/b.pdf":    true,
		"/in/c.mkv":    true,
		"/in/d.docx":   false,
		"/in/no_ext":   false,
		"/in/song.m4a": true,
	}
	for path, want := range tests {
		assert.Equal(t, want, SupportedMedia(path), path)
	}
}

type fakeAdder struct {
	err   error
	calls [][]string
}

func (f *fakeAdder) AddFiles(ctx context.Context, projectID int64, paths []string) ([]model.FileRecord, error) {
	f.calls = append(f.calls, paths)
	if f.err != nil {
		return nil, f.err
	}
	return []model.FileRecord{{ID: 1, ProjectID: projectID, Name: filepath.Base(paths[0])}}, nil
}

type countingRecorder struct {
	outcomes map[string]int
}

func (r *countingRecorder) ObserveImport(outcome string) {
	r.outcomes[outcome]++
}

func TestImportInto(t *testing.T) {
	recorder := &countingRecorder{outcomes: map[string]int{}}

	ok := &fakeAdder{}
	require.NoError(t, ImportInto(ok, 3, recorder, logger.Nop())(context.Background(), "/inbox/a.png"))
	assert.Equal(t, [][]string{{"/inbox/a.png"}}, ok.calls)

	failing := &fakeAdder{err: errors.New("disk full")}
	assert.Error(t, ImportInto(failing, 3, recorder, logger.Nop())(context.Background(), "/inbox/b.png"))

	assert.Equal(t, 1, recorder.outcomes[ImportOK])
	assert.Equal(t, 1, recorder.outcomes[ImportFailed])

	// nil recorder is allowed
	assert.NoError(t, ImportInto(ok, 3, nil, logger.Nop())(context.Background(), "/inbox/c.png"))
}

func TestWatcherLimitsConcurrentImports(t *testing.T) {
	dir := t.TempDir()

	var (
		mu       sync.Mutex
		inFlight int
		peak     int
		handled  int
	)
	release := make(chan struct{})
	handler := func(ctx context.Context, filePath string) error {
		mu.Lock()
		inFlight++
		if inFlight > peak {
			peak = inFlight
		}
		mu.Unlock()

		<-release

		mu.Lock()
		inFlight--
		handled++
		mu.Unlock()
		return nil
	}

	w, err := New(Options{Dir: dir, MaxConcurrent: 2, SettleDelay: time.Millisecond}, handler, logger.Nop())
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Start(ctx) }()
	time.Sleep(50 * time.Millisecond)

	for _, name := range []string{"a.png", "b.png", "c.png", "d.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return inFlight == 2
	}, 2*time.Second, 10*time.Millisecond)
	close(release)

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return handled == 4
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, peak)
}
