package client_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodentlab/trapfetch/pkg/client"
)

func TestUserAgentHeader(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	c := client.New(client.Options{ConnectTimeout: time.Second})
	resp, err := c.Get(server.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Contains(t, gotUA, "trapfetch/")
}

func TestServerErrorsReturnedWithoutRetry(t *testing.T) {
	var attempts int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := client.New(client.Options{})
	resp, err := c.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	// the 5xx response reaches the caller as a response, not a transport
	// error, and is requested exactly once
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, 1, attempts)
}

func TestFollowsRedirects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/redirect" {
			http.Redirect(w, r, "/final", http.StatusFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := client.New(client.Options{})
	resp, err := c.Get(server.URL + "/redirect")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
