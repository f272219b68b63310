package video

import (
	"context"
	"net/http"

	"github.com/ytget/ytdlp/v2"
)

// YTDLPExtractor backs the extraction capability with the ytdlp library.
// Configuration is fixed for every invocation: best available combined
// format in an mp4 container, output named after the extracted title,
// playlist URLs resolved to their single item only.
type YTDLPExtractor struct {
	// Client optionally overrides the HTTP client used for extraction
	// and media transfer.
	Client *http.Client
}

var _ Extractor = &YTDLPExtractor{}

func (e *YTDLPExtractor) Extract(ctx context.Context, pageURL, destDir string) (string, error) {
	dl := ytdlp.New().
		WithFormat("best", "mp4").
		WithOutputPath(destDir)
	if e.Client != nil {
		dl = dl.WithHTTPClient(e.Client)
	}

	info, err := dl.Download(ctx, pageURL)
	if err != nil {
		return "", err
	}
	return info.Title, nil
}
