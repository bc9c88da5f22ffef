package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: scriptpdf <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert script JSON files to printable PDF sheets")
	fmt.Fprintln(w, "  plan       Show the page layout of a script without rendering")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'scriptpdf help <command>' for details on a specific command.")
}

// printSheetUsage prints the sheet flags shared by convert and plan.
func printSheetUsage(w io.Writer) {
	fmt.Fprintln(w, "Layout:")
	fmt.Fprintln(w, "  -n, --sheets <n>          Character sheet copies (1-100)")
	fmt.Fprintln(w, "      --overleaf <s>        Back side: none, backingSheet, infoSheet")
	fmt.Fprintln(w, "      --teensy              Half-size sheets, two per landscape page")
	fmt.Fprintln(w, "      --no-night-sheet      Omit the night order sheets")
	fmt.Fprintln(w, "      --width <mm>          Sheet width (default 210)")
	fmt.Fprintln(w, "      --height <mm>         Sheet height (default 297)")
	fmt.Fprintln(w, "      --margin <mm>         Printer-safe margin")
	fmt.Fprintln(w, "      --bleed <mm>          Bleed area")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Appearance:")
	fmt.Fprintln(w, "      --color <hex>         Sheet colour, repeat for a gradient")
	fmt.Fprintln(w, "      --appearance <s>      normal, compact, super-compact, mega-compact")
	fmt.Fprintln(w, "      --icon-scale <f>      Character icon scale (default 1.7)")
	fmt.Fprintln(w, "      --jinx-icons <s>      Inline jinx icons: none, primary, both")
	fmt.Fprintln(w, "      --title-font <s>      Title font family")
	fmt.Fprintln(w, "      --font-url <url>      Stylesheet loading a custom title font")
	fmt.Fprintln(w, "      --logo <url>          Logo overriding the script's")
	fmt.Fprintln(w, "      --old-jinxes          Use the previous jinx wording")
	fmt.Fprintln(w, "      --include-margins     Keep a printer-safe margin")
	fmt.Fprintln(w, "      --solid-title         Title without texture")
	fmt.Fprintln(w, "      --format-minor-words  Shrink minor words in the title")
	fmt.Fprintln(w, "      --no-logo, --no-title, --no-author, --no-jinxes, --no-swirls,")
	fmt.Fprintln(w, "      --no-night-order, --no-player-counts")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assets:")
	fmt.Fprintln(w, "      --catalog <path>      Character catalog JSON for bare ids and jinxes")
	fmt.Fprintln(w, "      --asset-base <s>      Directory or URL serving /images and /fonts")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory overriding styles and templates")
	fmt.Fprintln(w, "      --icon-url <tmpl>     Icon URL template, must contain {id}")
	fmt.Fprintln(w, "      --style <s>           CSS style name or file path")
	fmt.Fprintln(w, "      --template <s>        Template set name")
	fmt.Fprintln(w, "      --css <path>          Extra CSS file applied last")
}

// printCommonUsage prints the flags every command accepts.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing and debug logs")
	fmt.Fprintln(w, "      --log-level <s>       debug, info, warn, error")
	fmt.Fprintln(w, "      --log-format <s>      text, json")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: scriptpdf convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert script JSON files to printable PDF sheets.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Script file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>         Page load timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --html                Write HTML alongside the PDF")
	fmt.Fprintln(w, "      --html-only           Write HTML only, skip the browser")
	fmt.Fprintln(w)
	printSheetUsage(w)
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printPlanUsage prints usage for the plan command.
func printPlanUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: scriptpdf plan <script.json> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Show the pages a conversion would print, without starting a browser.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -f, --format <s>          Output format: text, json, yaml")
	fmt.Fprintln(w)
	printSheetUsage(w)
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case cmdConvert:
		printConvertUsage(env.Stdout)
	case cmdPlan:
		printPlanUsage(env.Stdout)
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: scriptpdf version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: scriptpdf help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
