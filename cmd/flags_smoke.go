package cmd

import (
	"github.com/spf13/pflag"

	"github.com/isoforge/isoforge/types"
)

// SmokeCommandFlags consolidate the flags configuring the VM smoke
// tests
type SmokeCommandFlags struct {
	StorageDir  string
	Memory      int
	OSVariant   string
	BootTimeout int
}

// MergeToConfig overrides the test configuration from the flags set on the command line
func (flags *SmokeCommandFlags) MergeToConfig(config *types.Config) (err error) {
	if flags.StorageDir != "" {
		config.Test.StorageDir = flags.StorageDir
	}
	if flags.Memory != 0 {
		config.Test.Memory = flags.Memory
	}
	if flags.OSVariant != "" {
		config.Test.OSVariant = flags.OSVariant
	}
	if flags.BootTimeout != 0 {
		config.Test.BootTimeout = flags.BootTimeout
	}

	return
}

// NewSmokeCommandFlags returns an instance of SmokeCommandFlags
func NewSmokeCommandFlags(cmdFlags *pflag.FlagSet) (flags *SmokeCommandFlags) {
	flags = &SmokeCommandFlags{}

	flags.StorageDir, _ = cmdFlags.GetString("storage-dir")
	flags.Memory, _ = cmdFlags.GetInt("memory")
	flags.OSVariant, _ = cmdFlags.GetString("os-variant")
	flags.BootTimeout, _ = cmdFlags.GetInt("boot-timeout")

	return flags
}

// PersistSmokeCommandFlags append the smoke test flags to a command
func PersistSmokeCommandFlags(cmdFlags *pflag.FlagSet) {
	cmdFlags.String("storage-dir", "", "libvirt image storage path for scratch disks")
	cmdFlags.Int("memory", 0, "test VM memory in MiB")
	cmdFlags.String("os-variant", "", "virt-install os variant")
	cmdFlags.Int("boot-timeout", 0, "seconds to wait for a VM to reach running")
}
