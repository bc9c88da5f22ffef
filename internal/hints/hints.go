// Package hints turns common failures into a short remedy, appended to the
// error message as "\n  hint: <text>".
package hints

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alnah/go-scriptpdf/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ciVars are set by the CI systems we know of.
var ciVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL"}

func inCI() bool {
	for _, k := range ciVars {
		if os.Getenv(k) != "" {
			return true
		}
	}
	return false
}

// browserRemedies are checked in order; each applies when its condition
// holds in the current environment.
var browserRemedies = []struct {
	applies func() bool
	text    string
}{
	{
		applies: func() bool { return (inCI() || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" },
		text:    "set ROD_NO_SANDBOX=1 to run Chrome without its sandbox in Docker or CI",
	},
	{
		applies: func() bool { return os.Getenv("ROD_BROWSER_BIN") == "" },
		text:    "set ROD_BROWSER_BIN to an installed Chrome or Chromium",
	},
}

// ForBrowserConnect suggests environment settings when Chrome cannot start.
func ForBrowserConnect() string {
	var remedies []string
	for _, r := range browserRemedies {
		if r.applies() {
			remedies = append(remedies, r.text)
		}
	}
	return hint(remedies...)
}

// ForTimeout suggests a longer timeout or local assets.
func ForTimeout() string {
	return hint("remote icons can be slow to load, raise --timeout or set --asset-base to a local copy")
}

// ForConfigNotFound suggests --config, or creating the user config file
// when it is among searchedPaths.
func ForConfigNotFound(searchedPaths []string) string {
	text := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), ".config/scriptpdf") {
			return hint(text + " or create " + p)
		}
	}
	return hint(text)
}

// ForInvalidScript describes the accepted script shapes.
func ForInvalidScript() string {
	return hint(`a script is a JSON array of character ids or objects, optionally with a {"id": "_meta"} entry`)
}

// ForTooManyCharacters explains the character limit.
func ForTooManyCharacters(limit int) string {
	return hint("split the script, at most " + strconv.Itoa(limit) + " characters are printed")
}

// ForOutputDirectory is shown when output files cannot be written.
func ForOutputDirectory() string {
	return hint("check the output directory exists and is writable")
}

// ForStyleNotFound lists the styles that can be used instead.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return hint("available styles: " + strings.Join(available, ", "))
}

// hint joins remedies into a single hint line; no remedies, no hint.
func hint(remedies ...string) string {
	if len(remedies) == 0 {
		return ""
	}
	return "\n  hint: " + strings.Join(remedies, "; ")
}
