package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/isoforge/isoforge/constants"
	"github.com/isoforge/isoforge/livebuild"
	"github.com/isoforge/isoforge/release"
	"github.com/isoforge/isoforge/types"
	"github.com/isoforge/isoforge/util"
)

// ReleaseCommand packages the built image into a signed release
func ReleaseCommand() *cobra.Command {
	var cmdRelease = &cobra.Command{
		Use:   "release",
		Short: "Rename, checksum, sign and archive the built image",
		Run:   releaseCommandHandler,
	}

	persistentFlags := cmdRelease.PersistentFlags()

	PersistConfigCommandFlags(persistentFlags)
	PersistBuildCommandFlags(persistentFlags)
	PersistReleaseCommandFlags(persistentFlags)

	cmdRelease.PersistentFlags().Bool("publish", false, "upload the release to the configured mirror")

	return cmdRelease
}

func releaseCommandHandler(cmd *cobra.Command, args []string) {
	flags := cmd.Flags()

	configFlags := NewConfigCommandFlags(flags)
	globalFlags := NewGlobalCommandFlags(flags)
	buildFlags := NewBuildCommandFlags(flags)
	releaseFlags := NewReleaseCommandFlags(flags)

	c := types.NewConfig()

	mergeConfigContainer := NewMergeConfigContainer(configFlags, globalFlags, buildFlags, releaseFlags)
	err := mergeConfigContainer.Merge(c)
	if err != nil {
		exitWithError(err.Error())
	}

	if err := util.RequireCommands(constants.GpgCommand, constants.GitCommand); err != nil {
		exitWithError(err.Error())
	}

	builder := livebuild.NewBuilder(c.WorkDir, c.RunConfig.Verbose)
	artifacts, err := builder.Images()
	if err != nil {
		exitWithError(err.Error())
	}

	r, err := release.New(c)
	if err != nil {
		exitWithError(err.Error())
	}

	if err := r.Run(artifacts); err != nil {
		exitWithError(err.Error())
	}

	fmt.Printf("Release %s packaged in %s\n", r.Version(), r.Dir())

	if err := r.PrintArtifacts(); err != nil {
		exitWithError(err.Error())
	}

	publish, _ := flags.GetBool("publish")
	if publish {
		if err := r.Publish(); err != nil {
			exitWithError(err.Error())
		}
	}
}
