package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/isoforge/isoforge/assets"
	"github.com/isoforge/isoforge/types"
)

// DownloadCommands fetches the third party assets of the config tree
func DownloadCommands() *cobra.Command {
	var cmdDownload = &cobra.Command{
		Use:   "download",
		Short: "Download third party assets listed in the manifest",
		Run:   downloadCommandHandler,
	}

	persistentFlags := cmdDownload.PersistentFlags()

	PersistConfigCommandFlags(persistentFlags)
	PersistBuildCommandFlags(persistentFlags)

	cmdDownload.PersistentFlags().StringP("manifest", "f", "assets.yaml", "asset manifest file")
	cmdDownload.PersistentFlags().Bool("force", false, "re-download assets already present")

	cmdDownload.AddCommand(downloadListCommand())

	return cmdDownload
}

func downloadListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the assets of the manifest",
		Run:   downloadListCommandHandler,
	}
}

// downloadManifestPath picks the manifest to load. An explicit
// --manifest flag wins over the config file; the flag default applies
// only when the config names no manifest.
func downloadManifestPath(flags *pflag.FlagSet, c *types.Config) string {
	if flags.Changed("manifest") || c.AssetManifest == "" {
		path, _ := flags.GetString("manifest")
		return path
	}
	return c.AssetManifest
}

func downloadManifest(cmd *cobra.Command) (*assets.Manifest, *types.Config) {
	flags := cmd.Flags()

	configFlags := NewConfigCommandFlags(flags)
	globalFlags := NewGlobalCommandFlags(flags)
	buildFlags := NewBuildCommandFlags(flags)

	c := types.NewConfig()

	mergeConfigContainer := NewMergeConfigContainer(configFlags, globalFlags, buildFlags)
	if err := mergeConfigContainer.Merge(c); err != nil {
		exitWithError(err.Error())
	}

	c.AssetManifest = downloadManifestPath(flags, c)

	m, err := assets.LoadManifest(c.AssetManifest)
	if err != nil {
		exitWithError(err.Error())
	}

	return m, c
}

func downloadCommandHandler(cmd *cobra.Command, args []string) {
	m, c := downloadManifest(cmd)

	force, _ := cmd.Flags().GetBool("force")

	d := assets.NewDownloader(c.WorkDir, force || c.Force)
	if err := d.DownloadAll(m); err != nil {
		exitWithError(err.Error())
	}
}

func downloadListCommandHandler(cmd *cobra.Command, args []string) {
	m, _ := downloadManifest(cmd)
	assets.PrintManifest(m)
}
