package cmd

import (
	"github.com/spf13/pflag"

	"github.com/isoforge/isoforge/types"
)

// BuildCommandFlags consolidate the flags configuring the live-build
// invocation
type BuildCommandFlags struct {
	WorkDir           string
	Distribution      string
	Architecture      string
	BinaryImage       string
	Mirror            string
	Bootappend        string
	InstallRecommends bool
	LbOptions         []string
}

// MergeToConfig overrides the build configuration from the flags set on the command line
func (flags *BuildCommandFlags) MergeToConfig(config *types.Config) (err error) {
	if flags.WorkDir != "" {
		config.WorkDir = flags.WorkDir
	}
	if flags.Distribution != "" {
		config.Build.Distribution = flags.Distribution
	}
	if flags.Architecture != "" {
		config.Build.Architecture = flags.Architecture
	}
	if flags.BinaryImage != "" {
		config.Build.BinaryImage = flags.BinaryImage
	}
	if flags.Mirror != "" {
		config.Build.Mirror = flags.Mirror
	}
	if flags.Bootappend != "" {
		config.Build.Bootappend = flags.Bootappend
	}
	if flags.InstallRecommends {
		config.Build.InstallRecommends = true
	}
	config.Build.ExtraOptions = append(config.Build.ExtraOptions, flags.LbOptions...)

	return
}

// NewBuildCommandFlags returns an instance of BuildCommandFlags
func NewBuildCommandFlags(cmdFlags *pflag.FlagSet) (flags *BuildCommandFlags) {
	flags = &BuildCommandFlags{}

	flags.WorkDir, _ = cmdFlags.GetString("workdir")
	flags.Distribution, _ = cmdFlags.GetString("distribution")
	flags.Architecture, _ = cmdFlags.GetString("arch")
	flags.BinaryImage, _ = cmdFlags.GetString("binary-images")
	flags.Mirror, _ = cmdFlags.GetString("mirror")
	flags.Bootappend, _ = cmdFlags.GetString("bootappend")
	flags.InstallRecommends, _ = cmdFlags.GetBool("apt-recommends")
	flags.LbOptions, _ = cmdFlags.GetStringArray("lb-option")

	return flags
}

// PersistBuildCommandFlags append the build flags to a command
func PersistBuildCommandFlags(cmdFlags *pflag.FlagSet) {
	cmdFlags.StringP("workdir", "w", "", "live-build working tree")
	cmdFlags.StringP("distribution", "d", "", "debian distribution to base the image on")
	cmdFlags.String("arch", "", "image architecture")
	cmdFlags.String("binary-images", "", "live-build binary image type")
	cmdFlags.StringP("mirror", "m", "", "apt mirror for bootstrap and binary stages")
	cmdFlags.String("bootappend", "", "kernel command line of the live system")
	cmdFlags.Bool("apt-recommends", false, "install recommended packages inside the chroot")
	cmdFlags.StringArray("lb-option", nil, "extra option passed to lb config verbatim")
}
