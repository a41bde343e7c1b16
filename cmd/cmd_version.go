package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/isoforge/isoforge/constants"
	"github.com/isoforge/isoforge/livebuild"
)

// VersionCommand provides version command
func VersionCommand() *cobra.Command {
	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Version",
		Run:   printVersion,
	}
	return cmdVersion
}

func printVersion(cmd *cobra.Command, args []string) {
	fmt.Printf("Isoforge version: %s\n", constants.Version)

	if version, err := livebuild.Version(); err == nil {
		fmt.Printf("live-build version: %s\n", version)
	}
}
