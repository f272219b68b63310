// Package video resolves and saves videos from arbitrary web pages by
// delegating to an extraction capability. The capability is optional: when it
// is absent the batch degrades to a warning instead of failing the process.
package video

import (
	"context"
	"os"

	"github.com/rodentlab/trapfetch/pkg/logging"
)

// Extractor resolves a page URL and saves its media into destDir, returning
// the extracted title.
type Extractor interface {
	Extract(ctx context.Context, pageURL, destDir string) (title string, err error)
}

// Result records the outcome of one page URL in a batch.
type Result struct {
	URL   string
	Title string
	Err   error
}

// Fetcher runs video extraction batches. The zero value has no extraction
// capability and degrades to a no-op; NewFetcher wires the real extractor.
type Fetcher struct {
	Extractor Extractor
}

func NewFetcher() *Fetcher {
	return &Fetcher{Extractor: &YTDLPExtractor{}}
}

// Available reports whether the extraction capability can be used.
func (f *Fetcher) Available() bool {
	return f.Extractor != nil
}

// FetchAll processes each URL sequentially and independently, collecting a
// per-URL outcome. A failed extraction is logged and does not stop the batch;
// callers treat the batch itself as always successful.
//
// When the extraction capability is unavailable, FetchAll warns and returns
// immediately without touching the filesystem.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string, destDir string) []Result {
	logger := logging.GetLogger()

	if !f.Available() {
		logger.Warn().Msg("Video extraction capability is unavailable, skipping video downloads")
		return nil
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		logger.Error().Err(err).Str("dir", destDir).Msg("Cannot create video directory")
		results := make([]Result, 0, len(urls))
		for _, pageURL := range urls {
			results = append(results, Result{URL: pageURL, Err: err})
		}
		return results
	}

	results := make([]Result, 0, len(urls))
	for _, pageURL := range urls {
		logger.Info().Str("url", pageURL).Msg("Downloading video")
		title, err := f.Extractor.Extract(ctx, pageURL, destDir)
		if err != nil {
			logger.Error().Err(err).Str("url", pageURL).Msg("Video download failed")
		} else {
			logger.Info().Str("url", pageURL).Str("title", title).Msg("Video saved")
		}
		results = append(results, Result{URL: pageURL, Title: title, Err: err})
	}
	return results
}
