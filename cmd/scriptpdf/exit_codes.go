package main

import (
	"errors"
	"os"

	scriptpdf "github.com/alnah/go-scriptpdf"
	"github.com/alnah/go-scriptpdf/internal/config"
	"github.com/alnah/go-scriptpdf/internal/fileutil"
	"github.com/alnah/go-scriptpdf/internal/logging"
)

// Exit codes for the scriptpdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, options or script
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if scriptpdf.IsBrowserError(err) {
		return ExitBrowser
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, fileutil.ErrFileTooLarge) ||
		errors.Is(err, ErrReadScript) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrReadCatalog) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidEnv) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, logging.ErrInvalidLevel) ||
		errors.Is(err, scriptpdf.ErrInvalidOptions) ||
		errors.Is(err, scriptpdf.ErrInvalidScript) ||
		errors.Is(err, scriptpdf.ErrTooManyCharacters) ||
		errors.Is(err, scriptpdf.ErrScriptTooLarge) ||
		errors.Is(err, scriptpdf.ErrInvalidCatalog) ||
		errors.Is(err, scriptpdf.ErrStyleNotFound) ||
		errors.Is(err, scriptpdf.ErrTemplateSetNotFound) ||
		errors.Is(err, scriptpdf.ErrInvalidAssetPath) ||
		errors.Is(err, scriptpdf.ErrInvalidAssetBase) {
		return ExitUsage
	}

	return ExitGeneral
}
