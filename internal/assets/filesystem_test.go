package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates path under dir with its parent directories.
func writeFile(t *testing.T, dir, path, content string) {
	t.Helper()
	full := filepath.Join(dir, path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(full), err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", full, err)
	}
}

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"directory", t.TempDir(), false},
		{"empty", "", true},
		{"missing", filepath.Join(t.TempDir(), "nope"), true},
		{"file", file, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loader, err := NewFilesystemLoader(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidBasePath) {
					t.Errorf("NewFilesystemLoader(%q) error = %v, want ErrInvalidBasePath", tt.path, err)
				}
				return
			}
			if err != nil || loader == nil {
				t.Fatalf("NewFilesystemLoader(%q) = %v, %v", tt.path, loader, err)
			}
		})
	}
}

func TestFilesystemLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "styles/parchment.css", "body { color: brown; }")

	loader, err := NewFilesystemLoader(dir)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	got, err := loader.LoadStyle("parchment")
	if err != nil {
		t.Fatalf("LoadStyle() error = %v", err)
	}
	if got != "body { color: brown; }" {
		t.Errorf("LoadStyle() = %q", got)
	}

	if _, err := loader.LoadStyle("missing"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle(missing) error = %v, want ErrStyleNotFound", err)
	}
	for _, name := range []string{"", "../secret", `..\secret`, "style.evil"} {
		if _, err := loader.LoadStyle(name); !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadStyle(%q) error = %v, want ErrInvalidAssetName", name, err)
		}
	}
}

func TestFilesystemLoader_LoadTemplateSet(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "templates/full/document.html", "<html>{{.Title}}</html>")
	writeFile(t, dir, "templates/full/sheets.html", `{{define "sheet"}}{{end}}`)
	writeFile(t, dir, "templates/nodoc/sheets.html", `{{define "sheet"}}{{end}}`)
	writeFile(t, dir, "templates/nosheets/document.html", "<html></html>")

	loader, err := NewFilesystemLoader(dir)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	set, err := loader.LoadTemplateSet("full")
	if err != nil {
		t.Fatalf("LoadTemplateSet(full) error = %v", err)
	}
	if set.Document != "<html>{{.Title}}</html>" || set.Sheets != `{{define "sheet"}}{{end}}` {
		t.Errorf("LoadTemplateSet(full) = %+v", set)
	}

	tests := []struct {
		name    string
		wantErr error
	}{
		{"missing", ErrTemplateSetNotFound},
		{"nodoc", ErrIncompleteTemplateSet},
		{"nosheets", ErrIncompleteTemplateSet},
		{"../full", ErrInvalidAssetName},
	}
	for _, tt := range tests {
		if _, err := loader.LoadTemplateSet(tt.name); !errors.Is(err, tt.wantErr) {
			t.Errorf("LoadTemplateSet(%q) error = %v, want %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestFilesystemLoader_SymlinkEscape(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "styles"), 0o755); err != nil {
		t.Fatal(err)
	}
	secret := filepath.Join(t.TempDir(), "secret.css")
	if err := os.WriteFile(secret, []byte("secret"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(secret, filepath.Join(dir, "styles", "evil.css")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	loader, err := NewFilesystemLoader(dir)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}
	if _, err := loader.LoadStyle("evil"); !errors.Is(err, ErrPathTraversal) {
		t.Errorf("LoadStyle(evil) error = %v, want ErrPathTraversal", err)
	}
}
