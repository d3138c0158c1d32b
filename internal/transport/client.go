// Package transport provides the HTTP client used for all remote
// downloads: trip-log archives from provider buckets and the NTD
// spreadsheet.
package transport

import (
	"context"
	"net/http"

	"github.com/mrdmnd/unicycle/pkg/constants"
	"github.com/mrdmnd/unicycle/pkg/errors"
)

// Client wraps an *http.Client with the defaults used across the system.
type Client struct {
	http *http.Client
}

// New creates a transport client with the default download timeout.
func New() *Client {
	return &Client{
		http: &http.Client{Timeout: constants.DefaultHTTPTimeout},
	}
}

// NewWithHTTPClient creates a transport client around an existing
// *http.Client. Used by tests to point at httptest servers.
func NewWithHTTPClient(hc *http.Client) *Client {
	return &Client{http: hc}
}

// Get performs a GET request for the given URL.
// The caller owns the response body.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapIO("create", "GET "+url, err)
	}
	return c.http.Do(req)
}
