package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/isoforge/isoforge/constants"
	"github.com/isoforge/isoforge/livebuild"
	"github.com/isoforge/isoforge/log"
	"github.com/isoforge/isoforge/types"
	"github.com/isoforge/isoforge/util"
)

// BuildCommand turns the live-build config tree into a bootable image
func BuildCommand() *cobra.Command {
	var cmdBuild = &cobra.Command{
		Use:   "build",
		Short: "Build the live image with live-build",
		Run:   buildCommandHandler,
	}

	persistentFlags := cmdBuild.PersistentFlags()

	PersistConfigCommandFlags(persistentFlags)
	PersistBuildCommandFlags(persistentFlags)

	cmdBuild.PersistentFlags().Bool("skip-clean", false, "reuse the previous live-build state")

	return cmdBuild
}

func buildCommandHandler(cmd *cobra.Command, args []string) {
	flags := cmd.Flags()

	configFlags := NewConfigCommandFlags(flags)
	globalFlags := NewGlobalCommandFlags(flags)
	buildFlags := NewBuildCommandFlags(flags)

	c := types.NewConfig()

	mergeConfigContainer := NewMergeConfigContainer(configFlags, globalFlags, buildFlags)
	err := mergeConfigContainer.Merge(c)
	if err != nil {
		exitWithError(err.Error())
	}

	if err := buildPreflight(c); err != nil {
		exitWithError(err.Error())
	}

	skipClean, _ := flags.GetBool("skip-clean")

	builder := livebuild.NewBuilder(c.WorkDir, c.RunConfig.Verbose)

	if !skipClean {
		if err := builder.Clean(); err != nil {
			exitWithError(err.Error())
		}
	}

	if err := builder.Configure(&c.Build); err != nil {
		exitWithError(err.Error())
	}

	spinner := &util.ProgressSpinner{}
	defer spinner.Close()

	err = spinner.Do(builder.Build, "running lb build, this takes a while")
	if err != nil {
		exitWithError(err.Error())
	}

	images, err := builder.Images()
	if err != nil {
		exitWithError(err.Error())
	}
	for _, image := range images {
		fmt.Printf("Bootable image file:%s\n", image)
	}
}

// buildPreflight fails fast on a host that cannot complete a build.
func buildPreflight(c *types.Config) error {
	if err := util.RequireCommands(constants.LbCommand); err != nil {
		return err
	}

	version, err := livebuild.Version()
	if err != nil {
		return err
	}
	if !livebuild.CheckIfVersionSupported(version) {
		log.Warn("live-build", version, "is older than the oldest supported release")
	}

	free, err := util.FreeDiskSpace(c.WorkDir)
	if err != nil {
		return err
	}
	if free < constants.MinBuildBytes {
		return fmt.Errorf("only %s free in %s, a build needs %s",
			humanize.IBytes(free), c.WorkDir, humanize.IBytes(constants.MinBuildBytes))
	}

	return nil
}
