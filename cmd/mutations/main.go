package main

import (
	"os"

	"github.com/bft-labs/mutations/internal/cli"
	"github.com/bft-labs/mutations/internal/cliconfig"
)

func main() {
	log := cliconfig.Logger()

	if err := cli.NewRootCommand().Execute(); err != nil {
		log.Error().Err(err).Msg("mutations")
		os.Exit(1)
	}
}
