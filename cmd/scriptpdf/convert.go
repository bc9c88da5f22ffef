package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	scriptpdf "github.com/alnah/go-scriptpdf"
	"github.com/alnah/go-scriptpdf/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage         = errors.New("invalid usage")
	ErrNoInput       = errors.New("no input specified")
	ErrReadScript    = errors.New("failed to read script file")
	ErrReadCSS       = errors.New("failed to read CSS file")
	ErrReadCatalog   = errors.New("failed to read catalog file")
	ErrWriteOutput   = errors.New("failed to write output file")
	ErrConverterInit = errors.New("failed to initialize converter")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// runConvertCmd parses convert flags and runs the batch.
func runConvertCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return runConvert(ctx, positional, flags, env)
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := loadSettings(&flags.common, env)
	if err != nil {
		return err
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	s, err := finishSettings(cfg, &flags.common, env)
	if err != nil {
		return err
	}
	defer s.closeLogger(env.Stderr)

	if err := validateWorkers(cfg.Render.Workers); err != nil {
		return err
	}

	options := buildOptions(cfg)
	if err := options.Validate(); err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}
	outputDir := resolveOutputDir(flags.output, cfg)

	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no script files found in %s", ErrNoInput, inputPath)
	}

	css, err := readUserCSS(cfg.Render.CSS)
	if err != nil {
		return err
	}

	convOpts, err := converterOptions(cfg, s.logger)
	if err != nil {
		return err
	}

	poolSize := min(scriptpdf.ResolvePoolSize(cfg.Render.Workers), len(files))
	s.logger.Debug("starting conversion",
		"files", len(files),
		"workers", poolSize,
		"gomaxprocs", runtime.GOMAXPROCS(0),
		"htmlOnly", flags.outputMode.htmlOnly)

	pool := env.NewPool(poolSize, convOpts...)
	defer func() {
		if err := pool.Close(); err != nil {
			s.logger.Warn("closing converter pool", "error", err)
		}
	}()

	params := &conversionParams{
		options:    options,
		css:        css,
		htmlOnly:   flags.outputMode.htmlOnly,
		htmlOutput: flags.outputMode.html,
	}
	results := convertBatch(ctx, pool, files, params)

	failedCount := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d conversion(s) failed: %w", failedCount, firstError(results))
	}

	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	mergeSheetFlags(&flags.sheet, cfg)
	mergeRenderFlags(&flags.render, cfg)

	if flags.timeout != "" {
		cfg.Render.Timeout = flags.timeout
	}
	if flags.workers > 0 {
		cfg.Render.Workers = flags.workers
	}
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}
