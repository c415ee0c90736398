package core

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Downloader retrieves a URL into a directory and returns the local path.
// Implementations must return an *HTTPStatusError for non-2xx responses so
// callers can tell "not published here" apart from transport failures.
type Downloader interface {
	Download(ctx context.Context, url, destDir string) (string, error)
}

// Compile-time interface satisfaction check.
var _ Downloader = (*HTTPDownloader)(nil)

// HTTPDownloader implements Downloader over net/http.
type HTTPDownloader struct {
	client    *http.Client
	userAgent string
}

// NewHTTPDownloader creates a downloader. A nil client gets a client with
// the given timeout.
func NewHTTPDownloader(client *http.Client, timeout time.Duration, userAgent string) *HTTPDownloader {
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &HTTPDownloader{client: client, userAgent: userAgent}
}

// Download fetches url into destDir/<basename>. The body is streamed to a
// temporary file first so an interrupted transfer never leaves a truncated
// APK at the final path.
func (d *HTTPDownloader) Download(ctx context.Context, url, destDir string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", SanitizeURL(url), err)
	}
	if d.userAgent != "" {
		req.Header.Set("User-Agent", d.userAgent)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("GET %s: %w", SanitizeURL(url), err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &HTTPStatusError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	dest := filepath.Join(destDir, URLBasename(url))
	tmp, err := os.CreateTemp(destDir, "."+filepath.Base(dest)+".*.part")
	if err != nil {
		return "", fmt.Errorf("create download file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("read body of %s: %w", SanitizeURL(url), err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("write %s: %w", dest, err)
	}
	if err := os.Rename(tmpName, dest); err != nil {
		return "", fmt.Errorf("write %s: %w", dest, err)
	}

	return dest, nil
}
