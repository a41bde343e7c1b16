package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/pflag"

	"github.com/isoforge/isoforge/types"
)

// ConfigCommandFlags handles config file path flag and build configuration from the file
type ConfigCommandFlags struct {
	Config string
}

// MergeToConfig reads a json configuration file. Without an explicit
// file it falls back to ISOFORGE_DEFAULT_CONFIG or ~/.isoforgerc.
func (flags *ConfigCommandFlags) MergeToConfig(c *types.Config) (err error) {
	conf := flags.Config
	if conf == "" {
		conf = defaultConfigFile()
		if conf == "" {
			return
		}
	}

	data, err := os.ReadFile(conf)
	if err != nil {
		return fmt.Errorf("error reading config: %v", err)
	}

	if err = json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("error config: %v", err)
	}

	return
}

// defaultConfigFile locates the implicit config file, if any.
func defaultConfigFile() string {
	conf := os.Getenv("ISOFORGE_DEFAULT_CONFIG")
	if conf != "" {
		return conf
	}

	usr, err := user.Current()
	if err != nil {
		return ""
	}

	conf = usr.HomeDir + "/.isoforgerc"
	if _, err = os.Stat(conf); err != nil {
		return ""
	}
	return conf
}

// NewConfigCommandFlags returns an instance of ConfigCommandFlags
func NewConfigCommandFlags(cmdFlags *pflag.FlagSet) (flags *ConfigCommandFlags) {
	flags = &ConfigCommandFlags{}
	flags.Config, _ = cmdFlags.GetString("config")
	return
}

// PersistConfigCommandFlags append a command the config flag
func PersistConfigCommandFlags(cmdFlags *pflag.FlagSet) {
	cmdFlags.StringP("config", "c", "", "isoforge config file")
}
