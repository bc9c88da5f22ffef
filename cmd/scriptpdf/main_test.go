package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	scriptpdf "github.com/alnah/go-scriptpdf"
	"github.com/alnah/go-scriptpdf/internal/config"
	"github.com/alnah/go-scriptpdf/internal/yamlutil"
)

func run(te *testEnv, args ...string) int {
	return runMain(context.Background(), append([]string{"scriptpdf"}, args...), te.Environment)
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestRunMain_Dispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"no command", nil, ExitUsage, "", "Usage: scriptpdf"},
		{"version", []string{"version"}, ExitSuccess, "scriptpdf dev", ""},
		{"help", []string{"help"}, ExitSuccess, "Commands:", ""},
		{"help convert", []string{"help", "convert"}, ExitSuccess, "scriptpdf convert <input>", ""},
		{"help plan", []string{"help", "plan"}, ExitSuccess, "--format", ""},
		{"help unknown", []string{"help", "bake"}, ExitSuccess, "", "Unknown command: bake"},
		{"unknown command", []string{"bake"}, ExitUsage, "", "Unknown command: bake"},
		{"convert -h", []string{"convert", "-h"}, ExitSuccess, "", "Usage: scriptpdf convert"},
		{"bad flag", []string{"convert", "--frobnicate"}, ExitUsage, "", "unknown flag"},
		{"convert without input", []string{"convert"}, ExitIO, "", ErrNoInput.Error()},
		{"too many workers", []string{"convert", "-w", "99", "x.json"}, ExitUsage, "", "invalid worker count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			te := newTestEnv(newMockConverter())
			code := run(te, tt.args...)

			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr: %s)", code, tt.wantCode, te.stderr)
			}
			if !strings.Contains(te.stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want it to contain %q", te.stdout, tt.wantStdout)
			}
			if !strings.Contains(te.stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", te.stderr, tt.wantStderr)
			}
		})
	}
}

func TestRunMain_WarnsUnknownEnv(t *testing.T) {
	t.Parallel()

	te := newTestEnv(newMockConverter(), "SCRIPTPDF_WORKRES=2")
	run(te, "version")

	if !strings.Contains(te.stderr.String(), "unknown environment variable SCRIPTPDF_WORKRES") {
		t.Errorf("stderr = %q, want a typo warning", te.stderr)
	}
}

// ---------------------------------------------------------------------------
// convert
// ---------------------------------------------------------------------------

func TestConvert_SingleFile(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"tb.json": testScript})
	mock := newMockConverter()
	te := newTestEnv(mock)

	code := run(te, "convert", "-n", "3", "--overleaf", "infoSheet", "--no-swirls", filepath.Join(dir, "tb.json"))
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, te.stderr)
	}

	pdf, err := os.ReadFile(filepath.Join(dir, "tb.pdf"))
	if err != nil {
		t.Fatalf("PDF not written: %v", err)
	}
	if string(pdf) != "%PDF-1.4 mock" {
		t.Errorf("PDF content = %q", pdf)
	}
	if !strings.Contains(te.stdout.String(), "Created "+filepath.Join(dir, "tb.pdf")) {
		t.Errorf("stdout = %q", te.stdout)
	}

	calls := mock.getCalls()
	if len(calls) != 1 {
		t.Fatalf("got %d conversions, want 1", len(calls))
	}
	in := calls[0]
	if string(in.Script) != testScript {
		t.Error("script content not passed through")
	}
	if in.Options.NumberOfCharacterSheets != 3 || in.Options.Overleaf != scriptpdf.OverleafInfo || in.Options.ShowSwirls {
		t.Errorf("options not merged from flags: %+v", in.Options)
	}
	if in.HTMLOnly {
		t.Error("HTMLOnly set without --html-only")
	}
	if !te.pool.closed {
		t.Error("pool not closed after the batch")
	}
}

func TestConvert_Directory(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{
		"a.json":        testScript,
		"nested/b.json": testScript,
		"c.txt":         "ignored",
	})
	out := filepath.Join(t.TempDir(), "print")
	mock := newMockConverter()
	te := newTestEnv(mock)

	code := run(te, "convert", "-o", out, "-w", "4", dir)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, te.stderr)
	}
	for _, p := range []string{"a.pdf", filepath.Join("nested", "b.pdf")} {
		if _, err := os.Stat(filepath.Join(out, p)); err != nil {
			t.Errorf("missing output %s: %v", p, err)
		}
	}
	if got := len(mock.getCalls()); got != 2 {
		t.Errorf("got %d conversions, want 2", got)
	}
	if te.pool.size != 2 {
		t.Errorf("pool size = %d, want 2 (capped at file count)", te.pool.size)
	}
	if !strings.Contains(te.stdout.String(), "2 succeeded, 0 failed") {
		t.Errorf("stdout = %q, want summary", te.stdout)
	}
}

func TestConvert_HTMLOnly(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"tb.json": testScript})
	mock := newMockConverter()
	te := newTestEnv(mock)

	if code := run(te, "convert", "--html-only", filepath.Join(dir, "tb.json")); code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, te.stderr)
	}
	if _, err := os.Stat(filepath.Join(dir, "tb.html")); err != nil {
		t.Errorf("HTML not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "tb.pdf")); !os.IsNotExist(err) {
		t.Error("PDF written with --html-only")
	}
	if calls := mock.getCalls(); len(calls) != 1 || !calls[0].HTMLOnly {
		t.Errorf("calls = %+v, want one HTML-only conversion", calls)
	}
}

func TestConvert_ConfigEnvAndFlags(t *testing.T) {
	t.Parallel()

	const club = `sheet:
  numberOfCharacterSheets: 2
  overleaf: none
  showNightSheet: false
render:
  timeout: 20s
`
	dir := setupTestDir(t, map[string]string{
		"tb.json":   testScript,
		"extra.css": ".title { letter-spacing: 0; }",
		"club.yaml": club,
	})
	mock := newMockConverter()
	te := newTestEnv(mock,
		"SCRIPTPDF_CONFIG="+filepath.Join(dir, "club.yaml"),
		"SCRIPTPDF_OUTPUT_DIR="+filepath.Join(dir, "env-out"),
	)

	code := run(te, "convert", "--css", filepath.Join(dir, "extra.css"), "--teensy", filepath.Join(dir, "tb.json"))
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, te.stderr)
	}

	in := mock.getCalls()[0]
	if in.Options.NumberOfCharacterSheets != 2 || in.Options.Overleaf != scriptpdf.OverleafNone || in.Options.ShowNightSheet {
		t.Errorf("config file not applied: %+v", in.Options)
	}
	if !in.Options.Teensy {
		t.Error("--teensy not applied on top of the config file")
	}
	if in.CSS != ".title { letter-spacing: 0; }" {
		t.Errorf("CSS = %q", in.CSS)
	}
	if _, err := os.Stat(filepath.Join(dir, "env-out", "tb.pdf")); err != nil {
		t.Errorf("SCRIPTPDF_OUTPUT_DIR not used: %v", err)
	}
	if len(te.pool.opts) == 0 {
		t.Error("pool built without converter options")
	}
}

func TestConvert_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		convertErr error
		acquireErr error
		args       []string
		wantCode   int
		wantStderr string
	}{
		{
			name:       "invalid script is a usage error with a hint",
			convertErr: fmt.Errorf("%w: not an array", scriptpdf.ErrInvalidScript),
			wantCode:   ExitUsage,
			wantStderr: "hint:",
		},
		{
			name:       "browser failure",
			convertErr: fmt.Errorf("converting to PDF: %w", scriptpdf.ErrBrowserConnect),
			wantCode:   ExitBrowser,
			wantStderr: "FAILED",
		},
		{
			name:       "unexpected failure",
			convertErr: errConvert,
			wantCode:   ExitGeneral,
			wantStderr: "conversion exploded",
		},
		{
			name:       "converter cannot be built",
			acquireErr: scriptpdf.ErrTemplateSetNotFound,
			wantCode:   ExitUsage,
			wantStderr: "failed to initialize converter",
		},
		{
			name:       "invalid options fail before converting",
			args:       []string{"--overleaf", "sideways"},
			wantCode:   ExitUsage,
			wantStderr: "sheet.overleaf",
		},
		{
			name:       "invalid colour",
			args:       []string{"--color", "red"},
			wantCode:   ExitUsage,
			wantStderr: "sheet.colors",
		},
		{
			name:       "missing css",
			args:       []string{"--css", "/nonexistent/extra.css"},
			wantCode:   ExitIO,
			wantStderr: ErrReadCSS.Error(),
		},
		{
			name:       "missing config",
			args:       []string{"-c", "/nonexistent/club.yaml"},
			wantCode:   ExitUsage,
			wantStderr: "config file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := setupTestDir(t, map[string]string{"tb.json": testScript})
			mock := newMockConverter()
			if tt.convertErr != nil {
				mock.convertFunc = func(context.Context, scriptpdf.Input) (*scriptpdf.Result, error) {
					return nil, tt.convertErr
				}
			}
			te := newTestEnv(mock)
			te.pool.acquireErr = tt.acquireErr

			args := append([]string{"convert"}, tt.args...)
			code := run(te, append(args, filepath.Join(dir, "tb.json"))...)

			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr: %s)", code, tt.wantCode, te.stderr)
			}
			if !strings.Contains(te.stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", te.stderr, tt.wantStderr)
			}
			if _, err := os.Stat(filepath.Join(dir, "tb.pdf")); !os.IsNotExist(err) {
				t.Error("PDF written for a failed conversion")
			}
		})
	}
}

func TestConvert_BareScriptPath(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"tb.json": testScript})
	mock := newMockConverter()
	te := newTestEnv(mock)

	if code := run(te, filepath.Join(dir, "tb.json")); code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, te.stderr)
	}
	if len(mock.getCalls()) != 1 {
		t.Error("bare script path did not run convert")
	}
}

// ---------------------------------------------------------------------------
// plan
// ---------------------------------------------------------------------------

func TestPlan_Formats(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"tb.json": testScript})
	script := filepath.Join(dir, "tb.json")
	want := scriptpdf.Plan{Sides: []scriptpdf.Side{
		{Sheets: []scriptpdf.SheetDescriptor{{Content: scriptpdf.ContentCharacterFront}}},
		{Sheets: []scriptpdf.SheetDescriptor{{Content: scriptpdf.ContentBackingSheet}}},
		{Sheets: []scriptpdf.SheetDescriptor{{Content: scriptpdf.ContentCharacterFront, DuplicateOfFirst: true}}},
		{Sheets: []scriptpdf.SheetDescriptor{{Content: scriptpdf.ContentBackingSheet, DuplicateOfFirst: true}}},
	}}
	flags := []string{"-n", "2", "--no-night-sheet"}

	t.Run("text", func(t *testing.T) {
		t.Parallel()

		te := newTestEnv(newMockConverter())
		if code := run(te, append([]string{"plan", script}, flags...)...); code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr: %s", code, te.stderr)
		}
		out := te.stdout.String()
		for _, s := range []string{"4 pages, full size", "characterFront (copy)", "backingSheet"} {
			if !strings.Contains(out, s) {
				t.Errorf("output missing %q:\n%s", s, out)
			}
		}
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		te := newTestEnv(newMockConverter())
		if code := run(te, append([]string{"plan", "-f", "json", script}, flags...)...); code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr: %s", code, te.stderr)
		}
		var got scriptpdf.Plan
		if err := json.Unmarshal(te.stdout.Bytes(), &got); err != nil {
			t.Fatalf("output is not JSON: %v\n%s", err, te.stdout)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("plan mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		te := newTestEnv(newMockConverter())
		if code := run(te, append([]string{"plan", "--format", "yaml", script}, flags...)...); code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr: %s", code, te.stderr)
		}
		var got scriptpdf.Plan
		if err := yamlutil.UnmarshalStrict(te.stdout.Bytes(), &got); err != nil {
			t.Fatalf("output is not YAML: %v\n%s", err, te.stdout)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("plan mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestPlan_Errors(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{
		"tb.json":  testScript,
		"bad.json": `{"id": "not-an-array"}`,
	})

	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{"no script", []string{"plan"}, ExitIO},
		{"unknown format", []string{"plan", "-f", "xml", filepath.Join(dir, "tb.json")}, ExitUsage},
		{"invalid script", []string{"plan", filepath.Join(dir, "bad.json")}, ExitUsage},
		{"missing script", []string{"plan", filepath.Join(dir, "gone.json")}, ExitIO},
		{"invalid sheets", []string{"plan", "-n", "101", filepath.Join(dir, "tb.json")}, ExitUsage},
		{"missing catalog", []string{"plan", "--catalog", filepath.Join(dir, "roles.json"), filepath.Join(dir, "tb.json")}, ExitIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			te := newTestEnv(newMockConverter())
			if code := run(te, tt.args...); code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr: %s)", code, tt.wantCode, te.stderr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Hints
// ---------------------------------------------------------------------------

func TestHintFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"page load suggests timeout", scriptpdf.ErrPageLoad, "--timeout"},
		{"config not found", config.ErrConfigNotFound, "--config"},
		{"too many characters", scriptpdf.ErrTooManyCharacters, "at most 100"},
		{"invalid script", scriptpdf.ErrInvalidScript, "JSON array"},
		{"unknown style lists built-ins", scriptpdf.ErrStyleNotFound, "default"},
		{"output directory", ErrWriteOutput, "writable"},
		{"no hint", errConvert, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(fmt.Errorf("wrapped: %w", tt.err))
			if tt.want == "" {
				if got != "" {
					t.Errorf("hintFor() = %q, want none", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("hintFor() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}
