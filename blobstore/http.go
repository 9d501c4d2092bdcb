package blobstore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// StatusError is returned for unexpected HTTP responses.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("blobstore: %s: unexpected status %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// HTTPStore reads blobs relative to a base URL.
type HTTPStore struct {
	base   *url.URL
	client *http.Client
}

// HTTPOption configures an HTTPStore.
type HTTPOption func(*HTTPStore)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(s *HTTPStore) {
		s.client = c
	}
}

// NewHTTPStore creates a store for blobs below baseURL.
func NewHTTPStore(baseURL string, optFns ...HTTPOption) (*HTTPStore, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("blobstore: base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("blobstore: base url %q: scheme must be http or https", baseURL)
	}

	s := &HTTPStore{base: u, client: http.DefaultClient}
	for _, fn := range optFns {
		fn(s)
	}
	return s, nil
}

// URL returns the absolute URL of name.
func (s *HTTPStore) URL(name string) string {
	return s.base.JoinPath(name).String()
}

// Open issues a HEAD request to learn the blob size.
func (s *HTTPStore) Open(ctx context.Context, name string) (Blob, error) {
	u := s.URL(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	_ = resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, u)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &StatusError{URL: u, StatusCode: resp.StatusCode}
	}

	return &httpBlob{client: s.client, url: u, size: resp.ContentLength}, nil
}

type httpBlob struct {
	client *http.Client
	url    string
	size   int64
}

func (b *httpBlob) Size() int64 { return b.size }

func (b *httpBlob) Close() error { return nil }

func (b *httpBlob) ReadAt(p []byte, off int64) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	rc, err := b.ReadRange(context.Background(), off, int64(len(p)))
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	n, err := io.ReadFull(rc, p)
	if err == io.ErrUnexpectedEOF {
		err = io.EOF
	}
	return n, err
}

func (b *httpBlob) ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error) {
	if b.size >= 0 {
		var err error
		if off, length, err = clampRange(b.size, off, length); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.url, nil)
	if err != nil {
		return nil, err
	}
	switch {
	case length >= 0:
		if length == 0 {
			return io.NopCloser(http.NoBody), nil
		}
		req.Header.Set("Range", fmt.Sprintf("bytes=%d-%d", off, off+length-1))
	case off > 0:
		req.Header.Set("Range", fmt.Sprintf("bytes=%d-", off))
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusPartialContent:
		return resp.Body, nil
	case http.StatusOK:
		// The server ignored the range header.
		if off > 0 {
			if _, err := io.CopyN(io.Discard, resp.Body, off); err != nil {
				_ = resp.Body.Close()
				return nil, err
			}
		}
		if length < 0 {
			return resp.Body, nil
		}
		return readCloser{Reader: io.LimitReader(resp.Body, length), Closer: resp.Body}, nil
	case http.StatusNotFound:
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotFound, b.url)
	default:
		_ = resp.Body.Close()
		return nil, &StatusError{URL: b.url, StatusCode: resp.StatusCode}
	}
}

type readCloser struct {
	io.Reader
	io.Closer
}
