package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	scriptpdf "github.com/alnah/go-scriptpdf"
	"github.com/alnah/go-scriptpdf/internal/fileutil"
)

// scriptExt is the extension of script files.
const scriptExt = ".json"

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("script must have a .json extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles finds all script files to convert. A directory is walked
// recursively and its layout mirrored under outputDir.
func discoverFiles(inputPath, outputDir string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateScriptExtension(inputPath); err != nil {
			return nil, err
		}
		outPath := resolveOutputPath(inputPath, outputDir, "")
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), scriptExt) {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath)
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the PDF output path for a script file.
// An outputDir ending in .pdf names the output file itself.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	if strings.HasSuffix(outputDir, ".pdf") {
		return outputDir
	}

	if outputDir != "" && baseInputDir != "" {
		if relDir, err := filepath.Rel(baseInputDir, filepath.Dir(inputPath)); err == nil {
			outputDir = filepath.Join(outputDir, relDir)
		}
	}

	return fileutil.OutputPath(inputPath, outputDir, ".pdf")
}

// validateScriptExtension checks that the file has a .json extension.
func validateScriptExtension(path string) error {
	if ext := filepath.Ext(path); !strings.EqualFold(ext, scriptExt) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > scriptpdf.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, scriptpdf.MaxPoolSize)
	}
	return nil
}

// htmlOutputPath returns the HTML path corresponding to a PDF path.
func htmlOutputPath(pdfPath string) string {
	return strings.TrimSuffix(pdfPath, ".pdf") + ".html"
}
