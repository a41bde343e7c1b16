package util

import (
	"os/exec"

	"github.com/go-errors/errors"
)

// CommandExists reports whether name resolves on $PATH.
func CommandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// RequireCommands returns an error naming the first missing tool.
func RequireCommands(names ...string) error {
	for _, name := range names {
		if !CommandExists(name) {
			return errors.Errorf("required tool %q not found on $PATH", name)
		}
	}
	return nil
}
