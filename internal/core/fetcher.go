package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/EmundoT/repro-verify/internal/types"
)

// ArtifactFetcher retrieves a published artifact into a local cache directory.
type ArtifactFetcher interface {
	Fetch(ctx context.Context, url, cacheDir string, reuseExisting bool) (string, error)
}

// Compile-time interface satisfaction check.
var _ ArtifactFetcher = (*Fetcher)(nil)

// Fetcher implements ArtifactFetcher with a single archive fallback.
type Fetcher struct {
	downloader Downloader
	fs         FileSystem
	fallback   types.FallbackRewrite
	logger     *slog.Logger
}

// NewFetcher creates a Fetcher. fallback describes the URL rewrite tried
// once when the primary URL answers with an HTTP error.
func NewFetcher(downloader Downloader, fs FileSystem, fallback types.FallbackRewrite, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		downloader: downloader,
		fs:         fs,
		fallback:   fallback,
		logger:     logger,
	}
}

// FallbackURL returns url with the first occurrence of the fallback "from"
// fragment replaced, e.g. .../repo/x.apk -> .../archive/x.apk.
func (f *Fetcher) FallbackURL(url string) string {
	if f.fallback.From == "" {
		return url
	}
	return strings.Replace(url, f.fallback.From, f.fallback.To, 1)
}

// CachedPath returns where a download of url is stored in cacheDir.
func CachedPath(url, cacheDir string) string {
	return filepath.Join(cacheDir, URLBasename(url))
}

// Fetch returns a local copy of url.
//
// With reuseExisting set, an existing cached copy is returned without any
// network access. Otherwise the stale copy is removed and url is downloaded.
// An HTTP status error on the primary URL triggers exactly one attempt at
// FallbackURL(url); if that fails too a *DownloadFailedError is returned.
// Transport errors and cancellation fail immediately.
func (f *Fetcher) Fetch(ctx context.Context, url, cacheDir string, reuseExisting bool) (string, error) {
	cached := CachedPath(url, cacheDir)

	if reuseExisting {
		if _, err := f.fs.Stat(cached); err == nil {
			f.logger.Debug("reusing cached remote artifact", "path", cached)
			return cached, nil
		}
	}

	if err := f.fs.Remove(cached); err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("remove stale %s: %w", cached, err)
	}

	f.logger.Info("retrieving", "url", SanitizeURL(url))
	path, err := f.downloader.Download(ctx, url, cacheDir)
	if err == nil {
		return path, nil
	}
	if !IsHTTPStatus(err) {
		return "", &DownloadFailedError{URL: url, Err: err}
	}

	fallbackURL := f.FallbackURL(url)
	f.logger.Info("primary download failed, trying archive", "url", SanitizeURL(url), "fallback", SanitizeURL(fallbackURL), "error", err)
	path, err = f.downloader.Download(ctx, fallbackURL, cacheDir)
	if err != nil {
		return "", &DownloadFailedError{URL: url, FallbackURL: fallbackURL, Err: err}
	}
	if path != cached {
		// The archive may serve the file under the same basename; keep the
		// cache layout keyed by the primary URL regardless.
		if err := f.fs.Rename(path, cached); err != nil {
			return "", fmt.Errorf("move %s to %s: %w", path, cached, err)
		}
	}
	return cached, nil
}
