package cmd

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"

	"github.com/isoforge/isoforge/types"
)

func newReleaseFlagSet() *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("test", 0)
	PersistReleaseCommandFlags(flagSet)
	return flagSet
}

func TestReleaseFlagsMergeToConfig(t *testing.T) {
	flagSet := newReleaseFlagSet()

	flagSet.Set("signing-key", "release@example.org")
	flagSet.Set("tag", "1.2.0")
	flagSet.Set("release-dir", "/srv/releases")
	flagSet.Set("mirror-endpoint", "s3.example.org")
	flagSet.Set("mirror-bucket", "releases")

	releaseFlags := NewReleaseCommandFlags(flagSet)

	c := types.NewConfig()
	err := releaseFlags.MergeToConfig(c)

	assert.Nil(t, err)
	assert.Equal(t, "release@example.org", c.Release.SigningKey)
	assert.Equal(t, "1.2.0", c.Version)
	assert.Equal(t, "/srv/releases", c.Release.Dir)
	assert.Equal(t, "s3.example.org", c.Release.Publish.Endpoint)
	assert.Equal(t, "releases", c.Release.Publish.Bucket)
}

func TestReleaseFlagsSigningKeyFromEnv(t *testing.T) {
	t.Setenv("ISOFORGE_SIGNING_KEY", "env@example.org")

	releaseFlags := NewReleaseCommandFlags(newReleaseFlagSet())

	c := types.NewConfig()
	err := releaseFlags.MergeToConfig(c)

	assert.Nil(t, err)
	assert.Equal(t, "env@example.org", c.Release.SigningKey)
}

func TestReleaseFlagsFlagBeatsEnv(t *testing.T) {
	t.Setenv("ISOFORGE_SIGNING_KEY", "env@example.org")

	flagSet := newReleaseFlagSet()
	flagSet.Set("signing-key", "flag@example.org")

	releaseFlags := NewReleaseCommandFlags(flagSet)

	c := types.NewConfig()
	err := releaseFlags.MergeToConfig(c)

	assert.Nil(t, err)
	assert.Equal(t, "flag@example.org", c.Release.SigningKey)
}
