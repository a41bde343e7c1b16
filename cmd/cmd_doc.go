package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/isoforge/isoforge/constants"
	"github.com/isoforge/isoforge/docgen"
	"github.com/isoforge/isoforge/livebuild"
	"github.com/isoforge/isoforge/log"
	"github.com/isoforge/isoforge/types"
	"github.com/isoforge/isoforge/util"
)

// DocCommand generates the HTML documentation
func DocCommand() *cobra.Command {
	var cmdDoc = &cobra.Command{
		Use:   "doc",
		Short: "Assemble the doc tree and build the HTML documentation",
		Run:   docCommandHandler,
	}

	persistentFlags := cmdDoc.PersistentFlags()

	PersistConfigCommandFlags(persistentFlags)
	PersistBuildCommandFlags(persistentFlags)

	cmdDoc.PersistentFlags().StringArray("markdown-dir", nil, "directory whose markdown is copied into the doc tree")
	cmdDoc.PersistentFlags().Bool("skip-sphinx", false, "assemble the doc tree without running sphinx-build")

	return cmdDoc
}

func docCommandHandler(cmd *cobra.Command, args []string) {
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

	markdownDirs, _ := flags.GetStringArray("markdown-dir")
	c.Doc.MarkdownDirs = append(c.Doc.MarkdownDirs, markdownDirs...)

	generator := docgen.NewGenerator(afero.NewOsFs(), c.Doc)

	if err := generator.CopyMarkdown(); err != nil {
		exitWithError(err.Error())
	}

	builder := livebuild.NewBuilder(c.WorkDir, c.RunConfig.Verbose)
	packagesFile, err := builder.PackagesFile()
	if err != nil {
		if !os.IsNotExist(err) {
			exitWithError(err.Error())
		}
		log.Warn("no package manifest found, skipping the package list page")
	} else {
		packages, err := livebuild.ReadPackages(packagesFile)
		if err != nil {
			exitWithError(err.Error())
		}
		if err := generator.WritePackageList(packages); err != nil {
			exitWithError(err.Error())
		}
	}

	skipSphinx, _ := flags.GetBool("skip-sphinx")
	if skipSphinx {
		return
	}

	if err := util.RequireCommands(constants.SphinxCommand); err != nil {
		exitWithError(err.Error())
	}

	if err := generator.Sphinx(); err != nil {
		exitWithError(err.Error())
	}
}
