package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/isoforge/isoforge/release"
	"github.com/isoforge/isoforge/tracker"
	"github.com/isoforge/isoforge/types"
)

// ChangelogCommand renders the changelog section for a milestone from
// the issue tracker
func ChangelogCommand() *cobra.Command {
	var cmdChangelog = &cobra.Command{
		Use:   "changelog",
		Short: "Render a markdown changelog from the closed tracker issues",
		Run:   changelogCommandHandler,
	}

	persistentFlags := cmdChangelog.PersistentFlags()

	PersistConfigCommandFlags(persistentFlags)
	PersistReleaseCommandFlags(persistentFlags)

	cmdChangelog.PersistentFlags().String("project", "", "tracker project path")
	cmdChangelog.PersistentFlags().String("milestone", "", "tracker milestone, defaults to the release version")
	cmdChangelog.PersistentFlags().StringP("output", "o", "", "write the changelog to a file instead of stdout")

	return cmdChangelog
}

func changelogCommandHandler(cmd *cobra.Command, args []string) {
	flags := cmd.Flags()

	configFlags := NewConfigCommandFlags(flags)
	globalFlags := NewGlobalCommandFlags(flags)
	releaseFlags := NewReleaseCommandFlags(flags)

	c := types.NewConfig()

	mergeConfigContainer := NewMergeConfigContainer(configFlags, globalFlags, releaseFlags)
	err := mergeConfigContainer.Merge(c)
	if err != nil {
		exitWithError(err.Error())
	}

	if project, _ := flags.GetString("project"); project != "" {
		c.Tracker.Project = project
	}
	if c.Tracker.Project == "" {
		exitForCmd(cmd, "no tracker project configured, set --project or the config file")
	}

	version := c.Version
	if version == "" {
		version, err = release.GitVersion(c.WorkDir)
		if err != nil {
			exitWithError(err.Error())
		}
	}

	milestone, _ := flags.GetString("milestone")
	if milestone == "" {
		milestone = version
	}

	client, err := tracker.NewClient(c.Tracker)
	if err != nil {
		exitWithError(err.Error())
	}

	issues, err := client.ClosedIssues(milestone)
	if err != nil {
		exitWithError(err.Error())
	}

	changelog := tracker.RenderChangelog(version, issues)

	output, _ := flags.GetString("output")
	if output == "" {
		fmt.Print(changelog)
		return
	}

	if err := os.WriteFile(output, []byte(changelog), 0644); err != nil {
		exitWithError(err.Error())
	}
}
