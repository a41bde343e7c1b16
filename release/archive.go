package release

import (
	"os/exec"
	"strings"

	"github.com/go-errors/errors"

	"github.com/isoforge/isoforge/constants"
)

// GitVersion derives the release version from the current tag.
func GitVersion(workDir string) (string, error) {
	cmd := exec.Command(constants.GitCommand, "describe", "--tags", "--always")
	cmd.Dir = workDir

	out, err := cmd.Output()
	if err != nil {
		return "", errors.Errorf("git describe: %v", err)
	}

	version := strings.TrimSpace(string(out))
	if version == "" {
		return "", errors.New("git describe returned an empty version")
	}
	return version, nil
}

// SourceArchive writes a zip archive of revision rev (a tag, normally)
// to dest via `git archive`.
func SourceArchive(workDir, rev, dest string) error {
	cmd := exec.Command(constants.GitCommand, "archive", "--format=zip", "-o", dest, rev)
	cmd.Dir = workDir

	out, err := cmd.CombinedOutput()
	if err != nil {
		return errors.Errorf("git archive %s: %v\n%s", rev, err, out)
	}
	return nil
}
