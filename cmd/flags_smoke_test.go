package cmd

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"

	"github.com/isoforge/isoforge/types"
)

func TestSmokeFlagsMergeToConfig(t *testing.T) {
	flagSet := pflag.NewFlagSet("test", 0)
	PersistSmokeCommandFlags(flagSet)

	flagSet.Set("storage-dir", "/srv/libvirt")
	flagSet.Set("memory", "4096")
	flagSet.Set("boot-timeout", "300")

	smokeFlags := NewSmokeCommandFlags(flagSet)

	c := types.NewConfig()
	err := smokeFlags.MergeToConfig(c)

	assert.Nil(t, err)
	assert.Equal(t, "/srv/libvirt", c.Test.StorageDir)
	assert.Equal(t, 4096, c.Test.Memory)
	assert.Equal(t, 300, c.Test.BootTimeout)

	// defaults survive unset flags
	assert.Equal(t, "debiantesting", c.Test.OSVariant)
}
