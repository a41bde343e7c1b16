package cmd

import (
	"strings"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/isoforge/isoforge/constants"
	"github.com/isoforge/isoforge/livebuild"
	"github.com/isoforge/isoforge/smoketest"
	"github.com/isoforge/isoforge/types"
	"github.com/isoforge/isoforge/util"
)

// SmokeTestCommand verifies the built ISO fits the media and boots
func SmokeTestCommand() *cobra.Command {
	var cmdTest = &cobra.Command{
		Use:   "test [image file]",
		Short: "Check image size and boot it in BIOS and UEFI VMs",
		Args:  cobra.MaximumNArgs(1),
		Run:   smokeTestCommandHandler,
	}

	persistentFlags := cmdTest.PersistentFlags()

	PersistConfigCommandFlags(persistentFlags)
	PersistBuildCommandFlags(persistentFlags)
	PersistSmokeCommandFlags(persistentFlags)

	cmdTest.PersistentFlags().Bool("size-only", false, "skip the VM boot checks")

	return cmdTest
}

func smokeTestCommandHandler(cmd *cobra.Command, args []string) {
	flags := cmd.Flags()

	configFlags := NewConfigCommandFlags(flags)
	globalFlags := NewGlobalCommandFlags(flags)
	buildFlags := NewBuildCommandFlags(flags)
	smokeFlags := NewSmokeCommandFlags(flags)

	c := types.NewConfig()

	mergeConfigContainer := NewMergeConfigContainer(configFlags, globalFlags, buildFlags, smokeFlags)
	err := mergeConfigContainer.Merge(c)
	if err != nil {
		exitWithError(err.Error())
	}

	iso := ""
	if len(args) > 0 {
		iso = args[0]
	} else {
		iso, err = findISO(c)
		if err != nil {
			exitWithError(err.Error())
		}
	}

	sizeOnly, _ := flags.GetBool("size-only")
	if sizeOnly {
		if err := smoketest.CheckSize(iso, constants.MaxImageBytes); err != nil {
			exitWithError(err.Error())
		}
		return
	}

	if err := util.RequireCommands(constants.VirtInstallCommand, constants.VirshCommand); err != nil {
		exitWithError(err.Error())
	}

	runner := smoketest.NewRunner(iso, c.Test)
	if err := runner.Run(); err != nil {
		exitWithError(err.Error())
	}
}

// findISO picks the ISO among the live-build artifacts.
func findISO(c *types.Config) (string, error) {
	builder := livebuild.NewBuilder(c.WorkDir, c.RunConfig.Verbose)

	artifacts, err := builder.Images()
	if err != nil {
		return "", err
	}

	for _, a := range artifacts {
		if strings.HasSuffix(a, ".iso") {
			return a, nil
		}
	}

	return "", errors.Errorf("no .iso artifact in %s", c.WorkDir)
}
