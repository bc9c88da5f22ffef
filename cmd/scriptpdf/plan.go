package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	scriptpdf "github.com/alnah/go-scriptpdf"
	"github.com/alnah/go-scriptpdf/internal/yamlutil"
)

// Plan output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// runPlanCmd parses plan flags and prints the page layout of one script.
func runPlanCmd(_ context.Context, args []string, env *Environment) error {
	flags, positional, err := parsePlanFlags(args, env.Stderr)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return runPlan(positional, flags, env)
}

// runPlan lays out a script without rendering. No browser is started.
func runPlan(positionalArgs []string, flags *planFlags, env *Environment) error {
	switch flags.format {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("%w: --format %q (must be text, json or yaml)", ErrUsage, flags.format)
	}
	if len(positionalArgs) != 1 {
		return fmt.Errorf("%w: plan takes exactly one script file", ErrNoInput)
	}
	path := positionalArgs[0]
	if err := validateScriptExtension(path); err != nil {
		return err
	}

	cfg, err := loadSettings(&flags.common, env)
	if err != nil {
		return err
	}
	mergeSheetFlags(&flags.sheet, cfg)
	mergeRenderFlags(&flags.render, cfg)

	s, err := finishSettings(cfg, &flags.common, env)
	if err != nil {
		return err
	}
	defer s.closeLogger(env.Stderr)

	convOpts, err := converterOptions(cfg, s.logger)
	if err != nil {
		return err
	}
	conv, err := scriptpdf.NewConverter(convOpts...)
	if err != nil {
		return err
	}
	defer func() { _ = conv.Close() }()

	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadScript, err)
	}

	plan, err := conv.Plan(scriptpdf.Input{Script: content, Options: buildOptions(cfg)})
	if err != nil {
		return err
	}

	return writePlan(env.Stdout, path, plan, flags.format)
}

// writePlan prints plan in the requested format.
func writePlan(w io.Writer, name string, plan scriptpdf.Plan, format string) error {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case formatYAML:
		data, err := yamlutil.Marshal(plan)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	layout := "full size"
	if plan.Teensy {
		layout = "teensy"
	}
	fmt.Fprintf(w, "%s: %d pages, %s\n", name, plan.Pages(), layout)
	for i, side := range plan.Sides {
		fmt.Fprintf(w, "  %3d  %s\n", i+1, describeSide(side))
	}
	return nil
}

// describeSide lists the sheets of a side, left to right.
func describeSide(side scriptpdf.Side) string {
	names := make([]string, len(side.Sheets))
	for i, s := range side.Sheets {
		names[i] = string(s.Content)
		if s.DuplicateOfFirst {
			names[i] += " (copy)"
		}
	}
	return strings.Join(names, " | ")
}
