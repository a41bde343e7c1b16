package cmd

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"

	"github.com/isoforge/isoforge/types"
)

func newManifestFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("download", pflag.ContinueOnError)
	flags.StringP("manifest", "f", "assets.yaml", "asset manifest file")
	return flags
}

func TestDownloadManifestPathPrefersConfigFile(t *testing.T) {
	flags := newManifestFlagSet()

	c := types.NewConfig()
	c.AssetManifest = "mirrors/assets.yaml"

	assert.Equal(t, "mirrors/assets.yaml", downloadManifestPath(flags, c))
}

func TestDownloadManifestPathFlagWinsOverConfigFile(t *testing.T) {
	flags := newManifestFlagSet()
	err := flags.Set("manifest", "override.yaml")
	assert.Nil(t, err)

	c := types.NewConfig()
	c.AssetManifest = "mirrors/assets.yaml"

	assert.Equal(t, "override.yaml", downloadManifestPath(flags, c))
}

func TestDownloadManifestPathDefaultsWhenUnset(t *testing.T) {
	flags := newManifestFlagSet()

	c := types.NewConfig()

	assert.Equal(t, "assets.yaml", downloadManifestPath(flags, c))
}
