package inline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Sentinel errors for remote fetching.
var (
	ErrRemoteStatus   = errors.New("remote fetch returned non-success status")
	ErrRemoteTooLarge = errors.New("remote resource exceeds size limit")
)

// Fetch defaults.
const (
	// DefaultFetchTimeout bounds a single remote resolution so one
	// unreachable host cannot stall the wait-for-all join indefinitely.
	DefaultFetchTimeout = 20 * time.Second

	// DefaultMaxFetchBytes caps remote payloads (32 MiB).
	DefaultMaxFetchBytes = 32 << 20
)

// RemoteResource is the transient result of one remote fetch, consumed
// immediately by the data-URI encoder.
type RemoteResource struct {
	Body        []byte
	ContentType string
}

// Fetcher abstracts the network-fetch collaborator.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*RemoteResource, error)
}

// HTTPFetcher fetches remote resources over plain HTTP(S).
// A single attempt per resource, no retries.
type HTTPFetcher struct {
	Client   *http.Client
	MaxBytes int64
}

// NewHTTPFetcher creates an HTTPFetcher with default timeout and size cap.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		Client:   &http.Client{Timeout: DefaultFetchTimeout},
		MaxBytes: DefaultMaxFetchBytes,
	}
}

// Fetch issues one GET request and returns the payload with its declared
// content type. A missing Content-Type header defaults to image/png.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*RemoteResource, error) {
	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	maxBytes := f.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxFetchBytes
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s (%s)", ErrRemoteStatus, resp.Status, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if int64(len(body)) > maxBytes {
		return nil, fmt.Errorf("%w: %s", ErrRemoteTooLarge, url)
	}

	return &RemoteResource{
		Body:        body,
		ContentType: contentTypeOf(resp.Header.Get("Content-Type")),
	}, nil
}

// contentTypeOf strips parameters from a Content-Type header value and
// applies the image/png default for absent headers.
func contentTypeOf(header string) string {
	ct := strings.TrimSpace(header)
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if ct == "" {
		return defaultMIMEType
	}
	return ct
}

// Compile-time interface check.
var _ Fetcher = (*HTTPFetcher)(nil)
