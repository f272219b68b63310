package datasets

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	trapfetch "github.com/rodentlab/trapfetch/pkg"
	"github.com/rodentlab/trapfetch/pkg/archive"
	"github.com/rodentlab/trapfetch/pkg/client"
	"github.com/rodentlab/trapfetch/pkg/config"
)

const longDesc = `
'datasets' runs only the dataset half of the batch.

With no arguments the built-in archive list is used; positional URLs replace
it. Archives are streamed one at a time. An archive already present in the
dataset directory is skipped without a request; note that only the filename
is checked, not the file's completeness.
`

func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "datasets [url ...]",
		Short: "download dataset archives only",
		Long:  longDesc,
		Args:  cobra.ArbitraryArgs,
		RunE:  runDatasetsCMD,
		Example: `  trapfetch datasets
  trapfetch datasets https://zenodo.org/record/3636136/files/archive.zip?download=1`,
	}
}

func runDatasetsCMD(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	urls := args
	if len(urls) == 0 {
		urls = trapfetch.DefaultDatasetURLs
	}

	fetcher := archive.NewFetcher(client.Options{ConnectTimeout: viper.GetDuration(config.OptConnTimeout)})
	destDir := viper.GetString(config.OptDatasetDir)
	for _, datasetURL := range urls {
		if _, err := fetcher.Fetch(cmd.Context(), datasetURL, destDir); err != nil {
			log.Error().Err(err).Str("url", datasetURL).Msg("Dataset download failed")
		}
	}
	return nil
}
