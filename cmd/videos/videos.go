package videos

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	trapfetch "github.com/rodentlab/trapfetch/pkg"
	"github.com/rodentlab/trapfetch/pkg/config"
	"github.com/rodentlab/trapfetch/pkg/video"
)

const longDesc = `
'videos' runs only the video half of the batch.

With no arguments the built-in page list is used; positional URLs replace it.
Each page is handed to the extraction capability one at a time, and a page
that fails to extract does not stop the rest.
`

func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "videos [url ...]",
		Short: "download camera-trap videos only",
		Long:  longDesc,
		Args:  cobra.ArbitraryArgs,
		RunE:  runVideosCMD,
		Example: `  trapfetch videos
  trapfetch videos https://www.youtube.com/watch?v=CIc-Eeh7IUY`,
	}
}

func runVideosCMD(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	urls := args
	if len(urls) == 0 {
		urls = trapfetch.DefaultVideoURLs
	}

	fetcher := video.NewFetcher()
	fetcher.FetchAll(cmd.Context(), urls, viper.GetString(config.OptVideoDir))
	return nil
}
