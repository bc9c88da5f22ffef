package main

// Test infrastructure shared by the command tests: a recording converter,
// a pool handing it out, and an Environment writing to buffers.

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	scriptpdf "github.com/alnah/go-scriptpdf"
)

// testScript is a small valid script with inline characters.
const testScript = `[
  {"id": "_meta", "name": "Tiny Town", "author": "Someone"},
  {"id": "washerwoman", "name": "Washerwoman", "team": "townsfolk",
   "ability": "You start knowing that 1 of 2 players is a particular Townsfolk.",
   "firstNight": 33, "firstNightReminder": "Show the Townsfolk."},
  {"id": "imp", "name": "Imp", "team": "demon",
   "ability": "Each night*, choose a player: they die.",
   "otherNight": 24, "otherNightReminder": "The Imp chooses a player."}
]`

// ---------------------------------------------------------------------------
// Mock converter and pool
// ---------------------------------------------------------------------------

// mockConverter records every Input and returns fixed output.
type mockConverter struct {
	mu          sync.Mutex
	calls       []scriptpdf.Input
	convertFunc func(ctx context.Context, input scriptpdf.Input) (*scriptpdf.Result, error)
}

func newMockConverter() *mockConverter {
	return &mockConverter{}
}

func (m *mockConverter) Convert(ctx context.Context, input scriptpdf.Input) (*scriptpdf.Result, error) {
	m.mu.Lock()
	m.calls = append(m.calls, input)
	m.mu.Unlock()

	if m.convertFunc != nil {
		return m.convertFunc(ctx, input)
	}

	res := &scriptpdf.Result{
		HTML: []byte("<html>mock</html>"),
		Plan: scriptpdf.Plan{Sides: []scriptpdf.Side{{}, {}}},
	}
	if !input.HTMLOnly {
		res.PDF = []byte("%PDF-1.4 mock")
	}
	return res, nil
}

func (m *mockConverter) getCalls() []scriptpdf.Input {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]scriptpdf.Input{}, m.calls...)
}

// testPool hands out one shared mock converter.
type testPool struct {
	mock       *mockConverter
	size       int
	acquireErr error
	opts       []scriptpdf.Option

	mu       sync.Mutex
	released int
	closed   bool
}

func (p *testPool) Acquire() (CLIConverter, error) {
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	return p.mock, nil
}

func (p *testPool) Release(CLIConverter) {
	p.mu.Lock()
	p.released++
	p.mu.Unlock()
}

func (p *testPool) Size() int { return p.size }

func (p *testPool) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	return nil
}

// ---------------------------------------------------------------------------
// Environment
// ---------------------------------------------------------------------------

// testEnv is an Environment with captured output and a fake pool.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	pool   *testPool
}

// newTestEnv returns an Environment without SCRIPTPDF_* variables whose
// pool serves mock.
func newTestEnv(mock *mockConverter, environ ...string) *testEnv {
	te := &testEnv{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		pool:   &testPool{mock: mock, size: 2},
	}
	te.Environment = &Environment{
		Now:     DefaultEnv().Now,
		Stdout:  te.stdout,
		Stderr:  te.stderr,
		Environ: func() []string { return environ },
		NewPool: func(size int, opts ...scriptpdf.Option) Pool {
			te.pool.size = size
			te.pool.opts = opts
			return te.pool
		},
	}
	return te
}

// setupTestDir creates a temp directory with the given file structure.
// Files map paths to content. Returns the temp directory path.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	tempDir := t.TempDir()

	for path, content := range files {
		fullPath := filepath.Join(tempDir, path)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
			t.Fatalf("failed to create dir for %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}

	return tempDir
}

// errConvert is a conversion failure unrelated to any sentinel.
var errConvert = errors.New("conversion exploded")
