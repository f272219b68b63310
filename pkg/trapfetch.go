package trapfetch

import (
	"context"
	"fmt"
	"time"

	"github.com/rodentlab/trapfetch/pkg/archive"
	"github.com/rodentlab/trapfetch/pkg/logging"
	"github.com/rodentlab/trapfetch/pkg/video"
)

// Runner orchestrates a full fetch batch: one video extraction pass over the
// page URLs, then one archive transfer per dataset URL. Items run
// sequentially; a failed item is logged and skipped, never fatal.
type Runner struct {
	Archive *archive.Fetcher
	Video   *video.Fetcher

	VideoURLs   []string
	DatasetURLs []string

	VideoDir   string
	DatasetDir string
}

// Summary counts per-item outcomes of a batch run.
type Summary struct {
	VideosOK       int
	VideosFailed   int
	DatasetsOK     int
	DatasetsFailed int
}

// Run executes the batch and returns its summary. The process-level contract
// is that Run never fails: the worst case is a summary with zero successes.
func (r *Runner) Run(ctx context.Context) Summary {
	logger := logging.GetLogger()
	start := time.Now()
	var summary Summary

	results := r.Video.FetchAll(ctx, r.VideoURLs, r.VideoDir)
	for _, result := range results {
		if result.Err != nil {
			summary.VideosFailed++
		} else {
			summary.VideosOK++
		}
	}

	for _, datasetURL := range r.DatasetURLs {
		if _, err := r.Archive.Fetch(ctx, datasetURL, r.DatasetDir); err != nil {
			logger.Error().Err(err).Str("url", datasetURL).Msg("Dataset download failed")
			summary.DatasetsFailed++
			continue
		}
		summary.DatasetsOK++
	}

	logger.Info().
		Int("videos_ok", summary.VideosOK).
		Int("videos_failed", summary.VideosFailed).
		Int("datasets_ok", summary.DatasetsOK).
		Int("datasets_failed", summary.DatasetsFailed).
		Str("elapsed", fmt.Sprintf("%.3fs", time.Since(start).Seconds())).
		Msg("Batch complete")
	return summary
}
