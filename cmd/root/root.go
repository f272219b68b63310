package root

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	trapfetch "github.com/rodentlab/trapfetch/pkg"
	"github.com/rodentlab/trapfetch/pkg/archive"
	"github.com/rodentlab/trapfetch/pkg/client"
	"github.com/rodentlab/trapfetch/pkg/config"
	"github.com/rodentlab/trapfetch/pkg/video"
)

const rootLongDesc = `
trapfetch

Trapfetch bulk-downloads the camera-trap rodent research corpus: footage from
web pages with embedded players, and large behavioral dataset archives hosted
on Zenodo and CaltechDATA.

Videos are resolved through an extraction library that picks the best
available combined audio+video stream and names the output after the page
title. Dataset archives are streamed straight to disk with chunked writes and
in-place percentage progress; an archive that already exists locally is
skipped without a request, so re-running the command only fetches what is
missing.

Every item is independent. A page whose video cannot be extracted (licensing,
geo restrictions, unsupported host) or an archive request that fails is
logged and skipped; the batch continues and the process exits normally either
way.
`

func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trapfetch",
		Short: "download the camera-trap rodent video and dataset corpus",
		Long:  rootLongDesc,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.PersistentStartupProcessFlags()
		},
		RunE: runRootCMD,
		Args: cobra.NoArgs,
		Example: `  trapfetch
  trapfetch --dataset-dir /data/archives`,
	}
	err := config.AddRootPersistentFlags(cmd)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	return cmd
}

func runRootCMD(cmd *cobra.Command, args []string) error {
	// After we run through the PreRun functions we want to silence usage from being printed
	// on all errors
	cmd.SilenceUsage = true

	videoDir := viper.GetString(config.OptVideoDir)
	datasetDir := viper.GetString(config.OptDatasetDir)

	log.Info().
		Int("videos", len(trapfetch.DefaultVideoURLs)).
		Int("datasets", len(trapfetch.DefaultDatasetURLs)).
		Str("video_dir", videoDir).
		Str("dataset_dir", datasetDir).
		Msg("Initiating")

	runner := &trapfetch.Runner{
		Archive:     archive.NewFetcher(client.Options{ConnectTimeout: viper.GetDuration(config.OptConnTimeout)}),
		Video:       video.NewFetcher(),
		VideoURLs:   trapfetch.DefaultVideoURLs,
		DatasetURLs: trapfetch.DefaultDatasetURLs,
		VideoDir:    videoDir,
		DatasetDir:  datasetDir,
	}

	// individual failures are logged inside the batch; the run itself
	// always exits zero
	runner.Run(cmd.Context())
	return nil
}
