package livebuild

import (
	"os/exec"
	"strconv"
	"strings"

	"github.com/isoforge/isoforge/constants"
)

// Version reports the installed live-build version string.
func Version() (string, error) {
	out, err := exec.Command(constants.LbCommand, "--version").CombinedOutput()
	if err != nil {
		return "", err
	}
	return parseVersion(string(out)), nil
}

func parseVersion(out string) string {
	// `lb --version` prints a single line such as "20230502"
	return strings.TrimSpace(out)
}

// CheckIfVersionSupported checks an lb version against the oldest
// release the config options used here are known to work with.
func CheckIfVersionSupported(version string) bool {
	// live-build switched to date-based versions with 20151215
	v, err := strconv.Atoi(strings.SplitN(version, ".", 2)[0])
	if err != nil {
		return false
	}
	return v >= 20151215
}
