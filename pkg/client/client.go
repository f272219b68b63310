package client

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/rodentlab/trapfetch/pkg/logging"
	"github.com/rodentlab/trapfetch/pkg/version"
)

// Options configures construction of an HTTPClient.
type Options struct {
	// ConnectTimeout bounds connection establishment. Zero means 5s.
	ConnectTimeout time.Duration
}

// HTTPClient is a thin wrapper around http.Client carrying the transport
// settings shared by all archive transfers.
type HTTPClient struct {
	*http.Client
}

type UserAgentTransport struct {
	Transport http.RoundTripper
}

func (t *UserAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", fmt.Sprintf("trapfetch/%s", version.GetVersion()))
	return t.Transport.RoundTrip(req)
}

// New returns an HTTPClient built on the retryablehttp scaffold. RetryMax is
// pinned to zero: a failed transfer is reported to the caller, never replayed.
func New(opts Options) *HTTPClient {
	connTimeout := opts.ConnectTimeout
	if connTimeout == 0 {
		connTimeout = 5 * time.Second
	}
	baseTransport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   connTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	retryClient := &retryablehttp.Client{
		HTTPClient: &http.Client{
			Transport:     &UserAgentTransport{Transport: baseTransport},
			CheckRedirect: checkRedirectFunc,
		},
		Logger:     nil,
		RetryMax:   0,
		CheckRetry: neverRetryPolicy,
		Backoff:    retryablehttp.DefaultBackoff,
	}

	return &HTTPClient{Client: retryClient.StandardClient()}
}

// neverRetryPolicy hands every response, 5xx included, straight back to the
// caller. The default policy would classify 5xx/429 as retryable and, with
// retries off, swallow the response in a generic giving-up error.
func neverRetryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	return false, err
}

// checkRedirectFunc is a wrapper around http.Client.CheckRedirect that allows for printing out redirects
func checkRedirectFunc(req *http.Request, via []*http.Request) error {
	logger := logging.GetLogger()
	logger.Trace().
		Str("redirect_url", req.URL.String()).
		Str("url", via[0].URL.String()).
		Int("status", req.Response.StatusCode).
		Msg("Redirect")
	return nil
}
