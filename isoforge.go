package main

import (
	"os"

	"github.com/isoforge/isoforge/cmd"
	"github.com/isoforge/isoforge/log"
)

func main() {
	if err := cmd.GetRootCommand().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
