package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config    string
	quiet     bool
	verbose   bool
	logLevel  string
	logFormat string
}

// sheetFlags holds the layout and appearance flags of a script document.
// Options that default to true are turned off with a --no-* flag.
type sheetFlags struct {
	copies         int
	overleaf       string
	teensy         bool
	noNightSheet   bool
	colors         []string
	logo           string
	noLogo         bool
	noTitle        bool
	noAuthor       bool
	noJinxes       bool
	oldJinxes      bool
	noSwirls       bool
	includeMargins bool
	solidTitle     bool
	appearance     string
	iconScale      float64
	minorWords     bool
	noNightOrder   bool
	noPlayerCounts bool
	jinxIcons      string
	titleFont      string
	fontURL        string
	width          float64
	height         float64
	margin         float64
	bleed          float64
}

// renderFlags holds asset and catalog flags.
type renderFlags struct {
	assetBase string
	assetPath string
	iconURL   string
	style     string
	template  string
	css       string
	catalog   string
}

// outputFlags holds output mode flags for debugging.
type outputFlags struct {
	html     bool // Output HTML alongside PDF
	htmlOnly bool // Output HTML only, skip PDF
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common     commonFlags
	output     string
	workers    int
	timeout    string
	sheet      sheetFlags
	render     renderFlags
	outputMode outputFlags
}

// planFlags holds all flags for the plan command.
type planFlags struct {
	common commonFlags
	format string
	sheet  sheetFlags
	render renderFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing and debug logs")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: text, json")
}

// addSheetFlags adds sheet layout and appearance flags to a FlagSet.
func addSheetFlags(fs *flag.FlagSet, f *sheetFlags) {
	fs.IntVarP(&f.copies, "sheets", "n", 0, "character sheet copies (1-100, default 1)")
	fs.StringVar(&f.overleaf, "overleaf", "", "back of the character sheet: none, backingSheet, infoSheet")
	fs.BoolVar(&f.teensy, "teensy", false, "half-size sheets, two per landscape page")
	fs.BoolVar(&f.noNightSheet, "no-night-sheet", false, "omit the night order sheets")
	fs.StringSliceVar(&f.colors, "color", nil, "sheet colour as hex, repeat for a gradient")
	fs.StringVar(&f.logo, "logo", "", "logo URL overriding the script's")
	fs.BoolVar(&f.noLogo, "no-logo", false, "hide the logo")
	fs.BoolVar(&f.noTitle, "no-title", false, "hide the title")
	fs.BoolVar(&f.noAuthor, "no-author", false, "hide the author")
	fs.BoolVar(&f.noJinxes, "no-jinxes", false, "hide jinxes")
	fs.BoolVar(&f.oldJinxes, "old-jinxes", false, "use the previous wording of jinxes")
	fs.BoolVar(&f.noSwirls, "no-swirls", false, "hide the decorative swirls")
	fs.BoolVar(&f.includeMargins, "include-margins", false, "keep a printer-safe margin")
	fs.BoolVar(&f.solidTitle, "solid-title", false, "draw the title without texture")
	fs.StringVar(&f.appearance, "appearance", "", "density: normal, compact, super-compact, mega-compact")
	fs.Float64Var(&f.iconScale, "icon-scale", 0, "character icon scale (default 1.7)")
	fs.BoolVar(&f.minorWords, "format-minor-words", false, "shrink minor words in the title")
	fs.BoolVar(&f.noNightOrder, "no-night-order", false, "hide night order numbers on the character sheet")
	fs.BoolVar(&f.noPlayerCounts, "no-player-counts", false, "hide the player count table")
	fs.StringVar(&f.jinxIcons, "jinx-icons", "", "inline jinx icons: none, primary, both")
	fs.StringVar(&f.titleFont, "title-font", "", "title font family")
	fs.StringVar(&f.fontURL, "font-url", "", "stylesheet URL loading a custom title font")
	fs.Float64Var(&f.width, "width", 0, "sheet width in mm (default 210)")
	fs.Float64Var(&f.height, "height", 0, "sheet height in mm (default 297)")
	fs.Float64Var(&f.margin, "margin", 0, "printer-safe margin in mm")
	fs.Float64Var(&f.bleed, "bleed", 0, "bleed in mm")
}

// addRenderFlags adds asset-related flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVar(&f.assetBase, "asset-base", "", "directory or URL serving /images and /fonts")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory overriding styles and templates")
	fs.StringVar(&f.iconURL, "icon-url", "", "character icon URL template, must contain {id}")
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.template, "template", "", "template set name")
	fs.StringVar(&f.css, "css", "", "extra CSS file applied last")
	fs.StringVar(&f.catalog, "catalog", "", "character catalog JSON file")
}

// addOutputFlags adds output mode flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.BoolVar(&f.html, "html", false, "output HTML alongside PDF")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "output HTML only, skip PDF")
}

// newConvertFlagSet registers the convert flags. Usage goes to usage.
func newConvertFlagSet(usage io.Writer) (*flag.FlagSet, *convertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &convertFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "page load timeout (e.g., 30s, 2m)")

	addCommonFlags(fs, &f.common)
	addSheetFlags(fs, &f.sheet)
	addRenderFlags(fs, &f.render)
	addOutputFlags(fs, &f.outputMode)

	fs.Usage = func() { printConvertUsage(usage) }
	return fs, f
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, usage io.Writer) (*convertFlags, []string, error) {
	fs, f := newConvertFlagSet(usage)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// newPlanFlagSet registers the plan flags. Usage goes to usage.
func newPlanFlagSet(usage io.Writer) (*flag.FlagSet, *planFlags) {
	fs := flag.NewFlagSet("plan", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &planFlags{}

	fs.StringVarP(&f.format, "format", "f", formatText, "output format: text, json, yaml")

	addCommonFlags(fs, &f.common)
	addSheetFlags(fs, &f.sheet)
	addRenderFlags(fs, &f.render)

	fs.Usage = func() { printPlanUsage(usage) }
	return fs, f
}

// parsePlanFlags parses plan command flags and returns positional args.
func parsePlanFlags(args []string, usage io.Writer) (*planFlags, []string, error) {
	fs, f := newPlanFlagSet(usage)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
