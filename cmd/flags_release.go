package cmd

import (
	"os"

	"github.com/spf13/pflag"

	"github.com/isoforge/isoforge/types"
)

// ReleaseCommandFlags consolidate the flags configuring release
// packaging
type ReleaseCommandFlags struct {
	SigningKey     string
	Version        string
	Dir            string
	MirrorEndpoint string
	MirrorBucket   string
	MirrorInsecure bool
}

// MergeToConfig overrides the release configuration from the flags set on the command line
func (flags *ReleaseCommandFlags) MergeToConfig(config *types.Config) (err error) {
	if flags.SigningKey != "" {
		config.Release.SigningKey = flags.SigningKey
	}
	if config.Release.SigningKey == "" {
		config.Release.SigningKey = os.Getenv("ISOFORGE_SIGNING_KEY")
	}

	if flags.Version != "" {
		config.Version = flags.Version
	}
	if flags.Dir != "" {
		config.Release.Dir = flags.Dir
	}
	if flags.MirrorEndpoint != "" {
		config.Release.Publish.Endpoint = flags.MirrorEndpoint
	}
	if flags.MirrorBucket != "" {
		config.Release.Publish.Bucket = flags.MirrorBucket
	}
	if flags.MirrorInsecure {
		config.Release.Publish.Insecure = true
	}

	return
}

// NewReleaseCommandFlags returns an instance of ReleaseCommandFlags
func NewReleaseCommandFlags(cmdFlags *pflag.FlagSet) (flags *ReleaseCommandFlags) {
	flags = &ReleaseCommandFlags{}

	flags.SigningKey, _ = cmdFlags.GetString("signing-key")
	flags.Version, _ = cmdFlags.GetString("tag")
	flags.Dir, _ = cmdFlags.GetString("release-dir")
	flags.MirrorEndpoint, _ = cmdFlags.GetString("mirror-endpoint")
	flags.MirrorBucket, _ = cmdFlags.GetString("mirror-bucket")
	flags.MirrorInsecure, _ = cmdFlags.GetBool("mirror-insecure")

	return flags
}

// PersistReleaseCommandFlags append the release flags to a command
func PersistReleaseCommandFlags(cmdFlags *pflag.FlagSet) {
	cmdFlags.StringP("signing-key", "k", "", "gpg identity signing the checksum file")
	cmdFlags.StringP("tag", "t", "", "release version, defaults to the current git tag")
	cmdFlags.String("release-dir", "", "directory receiving release artifacts")
	cmdFlags.String("mirror-endpoint", "", "S3-compatible endpoint artifacts are published to")
	cmdFlags.String("mirror-bucket", "", "bucket receiving published artifacts")
	cmdFlags.Bool("mirror-insecure", false, "disable TLS towards the mirror endpoint")
}
