package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	errNoHTTPClient = errors.New("http client not configured")
	errUnexpected   = errors.New("unexpected status code")
)

// doGet performs a single-attempt GET. Provider calls deliberately carry no
// retry, backoff, or circuit breaking: a failed call resolves to an
// unavailable result at the pipeline boundary instead.
func doGet(ctx context.Context, client *http.Client, url string) (*http.Response, error) {
	if client == nil {
		return nil, errNoHTTPClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %d", errUnexpected, resp.StatusCode)
	}

	return resp, nil
}
