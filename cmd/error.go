package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/isoforge/isoforge/constants"
)

func exitWithError(errs string) {
	fmt.Println(fmt.Sprintf(constants.ErrorColor, errs))
	os.Exit(1)
}

func exitForCmd(cmd *cobra.Command, errs string) {
	fmt.Println(fmt.Sprintf(constants.ErrorColor, errs))
	cmd.Help()
	os.Exit(1)
}
