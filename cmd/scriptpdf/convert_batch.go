package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	scriptpdf "github.com/alnah/go-scriptpdf"
)

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	options    *scriptpdf.Options
	css        string
	htmlOnly   bool
	htmlOutput bool
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Pages      int
	Err        error
	Duration   time.Duration
}

// convertBatch converts files on up to pool.Size() workers, each holding
// one converter for its whole run. results[i] belongs to files[i].
func convertBatch(ctx context.Context, pool Pool, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	results := make([]ConversionResult, len(files))
	jobs := make(chan int, len(files))
	for i := range files {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	for range min(pool.Size(), len(files)) {
		wg.Go(func() {
			runWorker(ctx, pool, jobs, files, results, params)
		})
	}
	wg.Wait()
	return results
}

// runWorker drains jobs with a single converter. Without a converter it
// still drains, failing each job, so no file is left without a result.
func runWorker(ctx context.Context, pool Pool, jobs <-chan int, files []FileToConvert, results []ConversionResult, params *conversionParams) {
	conv, acquireErr := pool.Acquire()
	if acquireErr == nil {
		defer pool.Release(conv)
	}

	for idx := range jobs {
		f := files[idx]
		switch {
		case acquireErr != nil:
			results[idx] = ConversionResult{InputPath: f.InputPath, Err: fmt.Errorf("%w: %w", ErrConverterInit, acquireErr)}
		case ctx.Err() != nil:
			results[idx] = ConversionResult{InputPath: f.InputPath, Err: ctx.Err()}
		default:
			results[idx] = convertFile(ctx, conv, f, params)
		}
	}
}

// convertFile converts one script and writes its outputs.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{InputPath: f.InputPath, OutputPath: f.OutputPath}

	out, pages, err := convertAndWrite(ctx, conv, f, params)
	result.Duration = time.Since(start)
	if err != nil {
		result.Err = err
		return result
	}
	result.OutputPath = out
	result.Pages = pages
	return result
}

// convertAndWrite returns the path of the main output written: the PDF,
// or the HTML in HTML-only mode.
func convertAndWrite(ctx context.Context, conv CLIConverter, f FileToConvert, params *conversionParams) (string, int, error) {
	script, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return "", 0, fmt.Errorf("%w: %w", ErrReadScript, err)
	}
	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return "", 0, fmt.Errorf("%w: creating output directory: %w", ErrWriteOutput, err)
	}

	res, err := conv.Convert(ctx, scriptpdf.Input{
		Script:   script,
		Options:  params.options,
		CSS:      params.css,
		HTMLOnly: params.htmlOnly,
	})
	if err != nil {
		return "", 0, err
	}
	pages := res.Plan.Pages()

	if params.htmlOnly || params.htmlOutput {
		htmlPath := htmlOutputPath(f.OutputPath)
		if err := writeOutput(htmlPath, res.HTML); err != nil {
			return "", 0, err
		}
		if params.htmlOnly {
			return htmlPath, pages, nil
		}
	}
	if err := writeOutput(f.OutputPath, res.PDF); err != nil {
		return "", 0, err
	}
	return f.OutputPath, pages, nil
}

func writeOutput(path string, data []byte) error {
	// #nosec G306 -- sheets are meant to be shared
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// firstError returns the error of the first failed conversion, or nil.
func firstError(results []ConversionResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

// printResultsWithWriter reports each conversion, failures on stderr, and
// returns the number of failures.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if !verbose {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
			continue
		}
		fmt.Fprintf(env.Stdout, "%s -> %s (%d pages, %v)\n",
			r.InputPath, r.OutputPath, r.Pages, r.Duration.Round(time.Millisecond))
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
