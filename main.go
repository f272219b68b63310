package main

import (
	"os"

	"github.com/rodentlab/trapfetch/cmd"
	"github.com/rodentlab/trapfetch/pkg/logging"
)

func main() {
	logging.SetupLogger()
	rootCMD := cmd.GetRootCommand()

	if err := rootCMD.Execute(); err != nil {
		os.Exit(1)
	}
}
