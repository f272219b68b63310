package archive_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodentlab/trapfetch/pkg/archive"
	"github.com/rodentlab/trapfetch/pkg/client"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
}

func newTestFetcher(progress *bytes.Buffer) *archive.Fetcher {
	f := archive.NewFetcher(client.Options{})
	f.Progress = progress
	return f
}

func TestFilename(t *testing.T) {
	testCases := []struct {
		name     string
		url      string
		expected string
	}{
		{"plain", "https://host/path/file.zip", "file.zip"},
		{"query stripped", "https://host/path/File%20Name.zip?download=1", "File Name.zip"},
		{"percent decoded", "https://zenodo.org/record/1/files/RGB_D%20Rat.zip", "RGB_D Rat.zip"},
		{"empty path", "https://host", "downloaded_file"},
		{"root path", "https://host/", "downloaded_file"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := archive.Filename(tc.url)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestFetchWithContentLength(t *testing.T) {
	body := bytes.Repeat([]byte("x"), 1000)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// net/http sets Content-Length: 1000 for a single small write
		_, _ = w.Write(body)
	}))
	defer server.Close()

	progress := &bytes.Buffer{}
	fetcher := newTestFetcher(progress)
	destDir := t.TempDir()

	path, err := fetcher.Fetch(context.Background(), server.URL+"/dataset.zip", destDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(destDir, "dataset.zip"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, body, content)

	assert.Equal(t, 1, strings.Count(progress.String(), "100.00%"))
	assert.True(t, strings.HasSuffix(progress.String(), "\n"))
}

func TestFetchWithoutContentLength(t *testing.T) {
	body := bytes.Repeat([]byte("y"), 20000)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher := w.(http.Flusher)
		// force chunked transfer encoding so no Content-Length is reported
		flusher.Flush()
		_, _ = w.Write(body)
	}))
	defer server.Close()

	progress := &bytes.Buffer{}
	fetcher := newTestFetcher(progress)
	destDir := t.TempDir()

	path, err := fetcher.Fetch(context.Background(), server.URL+"/unbounded.zip", destDir)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, body, content)

	// no percentage line is ever printed when the size is unknown
	assert.Empty(t, progress.String())
}

func TestFetchHTTPError(t *testing.T) {
	testCases := []struct {
		name   string
		status int
	}{
		{"not found", http.StatusNotFound},
		{"too many requests", http.StatusTooManyRequests},
		{"internal server error", http.StatusInternalServerError},
		{"bad gateway", http.StatusBadGateway},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, tc.name, tc.status)
			}))
			defer server.Close()

			fetcher := newTestFetcher(&bytes.Buffer{})
			destDir := t.TempDir()

			_, err := fetcher.Fetch(context.Background(), server.URL+"/broken.zip", destDir)
			require.Error(t, err)

			var statusErr archive.HTTPStatusError
			require.True(t, errors.As(err, &statusErr))
			assert.Equal(t, tc.status, statusErr.StatusCode)

			entries, err := os.ReadDir(destDir)
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func TestFetchSkipsExisting(t *testing.T) {
	fetcher := newTestFetcher(&bytes.Buffer{})
	// no responders registered: any request through this client errors out
	httpmock.ActivateNonDefault(fetcher.Client.Client)
	defer httpmock.DeactivateAndReset()

	destDir := t.TempDir()
	existing := filepath.Join(destDir, "dataset.zip")
	require.NoError(t, os.WriteFile(existing, []byte("partial or complete, nobody checks"), 0o644))

	path, err := fetcher.Fetch(context.Background(), "https://example.com/files/dataset.zip?download=1", destDir)
	require.NoError(t, err)
	assert.Equal(t, existing, path)
	assert.Zero(t, httpmock.GetTotalCallCount())
}

func TestFetchCreatesDestDir(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("data"))
	}))
	defer server.Close()

	fetcher := newTestFetcher(&bytes.Buffer{})
	destDir := filepath.Join(t.TempDir(), "nested", "datasets")

	path, err := fetcher.Fetch(context.Background(), server.URL+"/file.zip", destDir)
	require.NoError(t, err)
	assert.FileExists(t, path)
}
