package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rodentlab/trapfetch/cmd/datasets"
	"github.com/rodentlab/trapfetch/cmd/root"
	"github.com/rodentlab/trapfetch/cmd/version"
	"github.com/rodentlab/trapfetch/cmd/videos"
)

func GetRootCommand() *cobra.Command {
	rootCMD := root.GetCommand()
	rootCMD.AddCommand(videos.GetCommand())
	rootCMD.AddCommand(datasets.GetCommand())
	rootCMD.AddCommand(version.VersionCMD)
	return rootCMD
}
