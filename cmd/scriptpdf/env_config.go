package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	goenv "github.com/caarlos0/env/v11"

	"github.com/alnah/go-scriptpdf/internal/config"
)

// envPrefix is shared by every variable the CLI reads.
const envPrefix = "SCRIPTPDF_"

// ErrInvalidEnv is returned when a SCRIPTPDF_* variable cannot be parsed.
var ErrInvalidEnv = errors.New("invalid environment variable")

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        `env:"CONFIG"`
	Timeout    time.Duration `env:"TIMEOUT"`
	Workers    int           `env:"WORKERS"`

	AssetBase       string `env:"ASSET_BASE"`
	IconURLTemplate string `env:"ICON_URL_TEMPLATE"`
	Catalog         string `env:"CATALOG"`
	OutputDir       string `env:"OUTPUT_DIR"`

	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
	LogFile   string `env:"LOG_FILE"`
}

// knownEnvVars lists valid SCRIPTPDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"SCRIPTPDF_CONFIG":            true,
	"SCRIPTPDF_TIMEOUT":           true,
	"SCRIPTPDF_WORKERS":           true,
	"SCRIPTPDF_ASSET_BASE":        true,
	"SCRIPTPDF_ICON_URL_TEMPLATE": true,
	"SCRIPTPDF_CATALOG":           true,
	"SCRIPTPDF_OUTPUT_DIR":        true,
	"SCRIPTPDF_LOG_LEVEL":         true,
	"SCRIPTPDF_LOG_FORMAT":        true,
	"SCRIPTPDF_LOG_FILE":          true,
}

// loadEnvConfig reads the SCRIPTPDF_* variables from environ.
func loadEnvConfig(environ []string) (*envConfig, error) {
	var cfg envConfig
	err := goenv.ParseWithOptions(&cfg, goenv.Options{
		Prefix:      envPrefix,
		Environment: goenv.ToMap(environ),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnv, err)
	}
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("%w: %sTIMEOUT must be positive, got %s", ErrInvalidEnv, envPrefix, cfg.Timeout)
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("%w: %sWORKERS must not be negative, got %d", ErrInvalidEnv, envPrefix, cfg.Workers)
	}
	return &cfg, nil
}

// warnUnknownEnvVars prints a warning for each unrecognized SCRIPTPDF_*
// variable, e.g. SCRIPTPDF_WORKER instead of SCRIPTPDF_WORKERS.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Timeout > 0 && cfg.Render.Timeout == "" {
		cfg.Render.Timeout = env.Timeout.String()
	}
	if env.Workers > 0 && cfg.Render.Workers == 0 {
		cfg.Render.Workers = env.Workers
	}

	if env.AssetBase != "" && cfg.Render.AssetBase == "" {
		cfg.Render.AssetBase = env.AssetBase
	}
	if env.IconURLTemplate != "" && cfg.Render.IconURLTemplate == "" {
		cfg.Render.IconURLTemplate = env.IconURLTemplate
	}
	if env.Catalog != "" && cfg.Render.Catalog == "" {
		cfg.Render.Catalog = env.Catalog
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}

	if env.LogLevel != "" && cfg.Logging.Level == "" {
		cfg.Logging.Level = env.LogLevel
	}
	if env.LogFormat != "" && cfg.Logging.Format == "" {
		cfg.Logging.Format = env.LogFormat
	}
	if env.LogFile != "" && cfg.Logging.File == "" {
		cfg.Logging.File = env.LogFile
	}
}
