package livebuild

import (
	"fmt"

	"github.com/isoforge/isoforge/types"
)

type option struct {
	flag  string
	value string
}

func (o option) String() string {
	if len(o.value) == 0 {
		return o.flag
	}
	return fmt.Sprintf("%s %s", o.flag, o.value)
}

func boolOption(flag string, value bool) option {
	if value {
		return option{flag: flag, value: "true"}
	}
	return option{flag: flag, value: "false"}
}

// configOptions renders the `lb config` options for c. Options keep a
// stable order so two runs over the same config produce the same tree.
func configOptions(c *types.BuildConfig) []option {
	opts := []option{}

	if len(c.Distribution) > 0 {
		opts = append(opts, option{flag: "--distribution", value: c.Distribution})
	}
	if len(c.Architecture) > 0 {
		opts = append(opts, option{flag: "--architectures", value: c.Architecture})
	}
	if len(c.BinaryImage) > 0 {
		opts = append(opts, option{flag: "--binary-images", value: c.BinaryImage})
	}
	if len(c.Mirror) > 0 {
		opts = append(opts, option{flag: "--mirror-bootstrap", value: c.Mirror})
		opts = append(opts, option{flag: "--mirror-binary", value: c.Mirror})
	}
	if len(c.Bootappend) > 0 {
		opts = append(opts, option{flag: "--bootappend-live", value: c.Bootappend})
	}
	opts = append(opts, boolOption("--apt-recommends", c.InstallRecommends))

	return opts
}

// ConfigArgs renders the full `lb config` argument list for c.
func ConfigArgs(c *types.BuildConfig) []string {
	args := []string{"config"}
	for _, o := range configOptions(c) {
		args = append(args, o.flag)
		if len(o.value) > 0 {
			args = append(args, o.value)
		}
	}
	args = append(args, c.ExtraOptions...)
	return args
}
