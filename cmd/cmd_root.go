package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/isoforge/isoforge/log"
	"github.com/isoforge/isoforge/types"
)

// GetRootCommand provides set all commands for isoforge
func GetRootCommand() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "isoforge",
		Short: "Build, package, test and document Debian live images",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := &types.Config{}

			configFlag, _ := cmd.Flags().GetString("config")
			configFlag = strings.TrimSpace(configFlag)

			if configFlag != "" {
				if err := (&ConfigCommandFlags{Config: configFlag}).MergeToConfig(config); err != nil {
					return err
				}
			}

			globalFlags := NewGlobalCommandFlags(cmd.Flags())
			if err := globalFlags.MergeToConfig(config); err != nil {
				return err
			}

			log.InitDefault(os.Stdout, config)
			return nil
		},
	}

	// persist flags transversal to every command
	PersistGlobalCommandFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(BuildCommand())
	rootCmd.AddCommand(DepsCommand())
	rootCmd.AddCommand(DownloadCommands())
	rootCmd.AddCommand(ReleaseCommand())
	rootCmd.AddCommand(SmokeTestCommand())
	rootCmd.AddCommand(DocCommand())
	rootCmd.AddCommand(ChangelogCommand())
	rootCmd.AddCommand(VersionCommand())

	return rootCmd
}
