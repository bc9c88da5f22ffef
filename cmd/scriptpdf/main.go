package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	scriptpdf "github.com/alnah/go-scriptpdf"
	"github.com/alnah/go-scriptpdf/internal/assets"
	"github.com/alnah/go-scriptpdf/internal/config"
	"github.com/alnah/go-scriptpdf/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Command names.
const (
	cmdConvert = "convert"
	cmdPlan    = "plan"
	cmdVersion = "version"
	cmdHelp    = "help"
)

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	undo, _ := maxprocs.Set(maxprocs.Logger(func(string, ...any) {}))
	defer undo()

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain dispatches a command and returns the process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	warnUnknownEnvVars(env.Stderr, env.Environ())

	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	var err error
	switch cmd, rest := args[1], args[2:]; cmd {
	case cmdConvert:
		err = runConvertCmd(ctx, rest, env)
	case cmdPlan:
		err = runPlanCmd(ctx, rest, env)
	case cmdVersion, "--version":
		fmt.Fprintf(env.Stdout, "scriptpdf %s\n", Version)
	case cmdHelp, "-h", "--help":
		runHelp(rest, env)
	default:
		// A bare script path is shorthand for convert.
		if isScriptPath(cmd) {
			err = runConvertCmd(ctx, args[1:], env)
			break
		}
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// isScriptPath reports whether arg names a script file rather than a command.
func isScriptPath(arg string) bool {
	return validateScriptExtension(arg) == nil
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, scriptpdf.ErrPageLoad), errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case scriptpdf.IsBrowserError(err):
		return hints.ForBrowserConnect()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(userConfigPaths())
	case errors.Is(err, scriptpdf.ErrTooManyCharacters):
		return hints.ForTooManyCharacters(scriptpdf.MaxCharacters)
	case errors.Is(err, scriptpdf.ErrInvalidScript):
		return hints.ForInvalidScript()
	case errors.Is(err, scriptpdf.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.EmbeddedStyleNames())
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}

// userConfigPaths returns where a named config is looked up in the user
// config directory.
func userConfigPaths() []string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(dir, "scriptpdf", "scriptpdf.yaml")}
}
