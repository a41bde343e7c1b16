package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/isoforge/isoforge/constants"
)

// buildDependencies are the OS packages every pipeline stage needs.
var buildDependencies = []string{
	"live-build",
	"debootstrap",
	"xorriso",
	"gnupg",
	"git",
	"zip",
	"virtinst",
	"libvirt-daemon-system",
	"python3-sphinx",
}

// DepsCommand installs the OS packages the pipeline depends on
func DepsCommand() *cobra.Command {
	var cmdDeps = &cobra.Command{
		Use:   "deps",
		Short: "Install the OS packages the build pipeline needs",
		Run:   depsCommandHandler,
	}

	cmdDeps.PersistentFlags().StringArray("package", nil, "additional package to install")
	cmdDeps.PersistentFlags().Bool("dry-run", false, "print the install command instead of running it")

	return cmdDeps
}

func depsCommandHandler(cmd *cobra.Command, args []string) {
	extra, _ := cmd.Flags().GetStringArray("package")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	packages := append(append([]string{}, buildDependencies...), extra...)
	installArgs := append([]string{"install", "--yes"}, packages...)

	if dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), constants.AptGetCommand+" "+strings.Join(installArgs, " "))
		return
	}

	if !runningAsRoot() {
		exitWithError("deps command needs root permission")
	}

	install := exec.Command(constants.AptGetCommand, installArgs...)
	install.Stdout = os.Stdout
	install.Stderr = os.Stderr

	if err := install.Run(); err != nil {
		exitWithError(err.Error())
	}
}

func runningAsRoot() bool {
	cmd := exec.Command("id", "-u")
	output, _ := cmd.Output()
	i, _ := strconv.Atoi(strings.TrimSpace(string(output)))
	return i == 0
}
