//go:build windows

package process

import (
	"os/exec"
	"strconv"
)

// KillProcessGroup kills the browser tree rooted at pid with taskkill
// (/F force, /T include children).
func KillProcessGroup(pid int) {
	// launcher.Kill still runs afterwards, so the error is not needed.
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run() // #nosec G204 -- pid is numeric
}
