// Package livebuild drives the live-build toolchain. The `lb` binary
// is treated as opaque: this package only assembles its command lines,
// streams its output and propagates its exit status.
package livebuild

import (
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/go-errors/errors"

	"github.com/isoforge/isoforge/constants"
	"github.com/isoforge/isoforge/log"
	"github.com/isoforge/isoforge/types"
)

// Builder runs live-build stages inside a working tree.
type Builder struct {
	cmd     *exec.Cmd
	workDir string
	verbose bool
}

// NewBuilder returns a Builder rooted at workDir.
func NewBuilder(workDir string, verbose bool) *Builder {
	return &Builder{workDir: workDir, verbose: verbose}
}

// Stop kills the running lb process, if any.
func (b *Builder) Stop() {
	if b.cmd != nil && b.cmd.Process != nil {
		if err := b.cmd.Process.Kill(); err != nil {
			log.Error(err)
		}

		// do not print errors as the command could be started with Run()
		b.cmd.Wait()
	}
}

func (b *Builder) logv(msg string) {
	if b.verbose {
		log.Info(msg)
	}
}

// command prepares an lb invocation wired to the console and stopped
// on the usual termination signals.
func (b *Builder) command(args ...string) *exec.Cmd {
	b.logv(constants.LbCommand + " " + strings.Join(args, " "))
	b.cmd = exec.Command(constants.LbCommand, args...)
	b.cmd.Dir = b.workDir
	b.cmd.Stdout = os.Stdout
	b.cmd.Stderr = os.Stderr

	c := make(chan os.Signal, 1)
	signal.Notify(c,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)
	go func(chan os.Signal) {
		<-c
		b.Stop()
	}(c)

	return b.cmd
}

func (b *Builder) run(args ...string) error {
	cmd := b.command(args...)
	if err := cmd.Run(); err != nil {
		return errors.Errorf("%s %s: %v", constants.LbCommand, args[0], err)
	}
	return nil
}

// Clean removes every artifact of previous runs, including the cached
// chroot.
func (b *Builder) Clean() error {
	return b.run("clean", "--purge")
}

// Configure writes the live-build config tree for c.
func (b *Builder) Configure(c *types.BuildConfig) error {
	return b.run(ConfigArgs(c)...)
}

// Build runs the bootstrap, chroot, binary and source stages. This is
// the long one.
func (b *Builder) Build() error {
	return b.run("build")
}

// Images returns the live-image-* artifacts present in the working
// tree, produced by a previous Build.
func (b *Builder) Images() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(b.workDir, "live-image-*"))
	if err != nil {
		return nil, err
	}

	images := []string{}
	for _, m := range matches {
		fi, err := os.Stat(m)
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			images = append(images, m)
		}
	}

	if len(images) == 0 {
		return nil, errors.Errorf("no live-image-* artifacts in %s, run build first", b.workDir)
	}

	return images, nil
}
