package archive

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/rodentlab/trapfetch/pkg/client"
	"github.com/rodentlab/trapfetch/pkg/logging"
)

// chunkSize is the fixed read/write granularity for archive transfers.
// Progress is reported once per chunk.
const chunkSize = 8 * humanize.KiByte

// fallbackFilename is used when a URL path yields no usable basename.
const fallbackFilename = "downloaded_file"

// Fetcher streams direct-link archive files to disk. Transfers are
// sequential, unauthenticated and never retried; a same-named file already
// on disk short-circuits the whole operation.
type Fetcher struct {
	Client *client.HTTPClient

	// Progress receives the updating in-place percentage display.
	// Defaults to os.Stdout.
	Progress io.Writer
}

func NewFetcher(opts client.Options) *Fetcher {
	return &Fetcher{Client: client.New(opts)}
}

// Filename derives the local filename for a download URL: the percent-decoded
// last segment of the URL path, query string stripped. URLs without a usable
// basename map to a fallback literal.
func Filename(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid url %s: %w", rawURL, err)
	}
	// url.Parse stores the path percent-decoded already
	name := path.Base(parsed.Path)
	if name == "." || name == "/" || name == "" {
		name = fallbackFilename
	}
	return name, nil
}

// Fetch streams url into destDir and returns the path of the file on disk.
//
// If the destination file already exists no request is issued and the
// existing path is returned as-is; its size or integrity is not verified, so
// a file truncated by an interrupted earlier run is treated as complete.
// A fresh transfer always starts from byte zero, there is no resume.
func (f *Fetcher) Fetch(ctx context.Context, rawURL, destDir string) (string, error) {
	logger := logging.GetLogger()
	if f.Client == nil {
		f.Client = client.New(client.Options{})
	}

	name, err := Filename(rawURL)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("error creating destination directory %s: %w", destDir, err)
	}
	destPath := filepath.Join(destDir, name)

	if _, err := os.Stat(destPath); err == nil {
		logger.Info().Str("file", name).Msg("Already exists, skipping")
		return destPath, nil
	}

	logger.Info().Str("url", rawURL).Str("dest", destPath).Msg("Downloading archive")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("error creating request for %s: %w", rawURL, err)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error requesting %s: %w", rawURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", ErrUnexpectedHTTPStatus(resp.StatusCode)
	}

	startTime := time.Now()
	written, err := f.writeBody(resp, destPath, name)
	if err != nil {
		return "", err
	}
	elapsed := time.Since(startTime)
	// floor: a near-instant transfer would divide by ~0 below
	if elapsed < time.Millisecond {
		elapsed = time.Millisecond
	}

	throughput := humanize.Bytes(uint64(float64(written) / elapsed.Seconds()))
	logger.Info().
		Str("file", name).
		Str("size", humanize.Bytes(uint64(written))).
		Str("throughput", fmt.Sprintf("%s/s", throughput)).
		Str("elapsed", fmt.Sprintf("%.3fs", elapsed.Seconds())).
		Msg("Complete")
	return destPath, nil
}

// writeBody copies the response body to destPath in fixed-size chunks,
// printing a percentage after each chunk when the total size is known.
// The destination is truncated: an interrupted transfer leaves a partial
// file behind and the next run restarts it from scratch.
func (f *Fetcher) writeBody(resp *http.Response, destPath, name string) (int64, error) {
	out, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, fmt.Errorf("error creating %s: %w", destPath, err)
	}
	defer out.Close()

	progress := f.Progress
	if progress == nil {
		progress = os.Stdout
	}
	totalSize := resp.ContentLength

	var downloaded int64
	buf := make([]byte, chunkSize)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, err := out.Write(buf[:n]); err != nil {
				return downloaded, fmt.Errorf("error writing %s: %w", destPath, err)
			}
			downloaded += int64(n)
			if totalSize > 0 {
				percent := float64(downloaded) * 100.0 / float64(totalSize)
				fmt.Fprintf(progress, "\r    %s: %.2f%%", name, percent)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return downloaded, fmt.Errorf("error reading body of %s: %w", name, readErr)
		}
	}
	if totalSize > 0 {
		fmt.Fprintln(progress)
	}
	return downloaded, nil
}
