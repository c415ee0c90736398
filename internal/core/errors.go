package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions.
// These can be used with errors.Is() for error type checking.
var (
	// ErrNoUnsignedDir indicates there is no unsigned/ directory to verify
	ErrNoUnsignedDir = errors.New("no unsigned directory - nothing to do")

	// ErrComparatorUnavailable indicates a comparator backend cannot run at all
	ErrComparatorUnavailable = errors.New("comparator unavailable")

	// ErrInvalidPublishedName indicates a file name not in <appid>_<vercode>.apk form
	ErrInvalidPublishedName = errors.New("invalid name for published file")

	// ErrStoreReinitDeclined indicates the user declined to reset a corrupt store
	ErrStoreReinitDeclined = errors.New("corrupt store left untouched")
)

// HTTPStatusError is returned by a Downloader when the server answers with a
// non-2xx status. The fetcher uses it to decide on the archive fallback.
type HTTPStatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("GET %s: %s", SanitizeURL(e.URL), e.Status)
}

// IsHTTPStatus reports whether err is (or wraps) an HTTPStatusError.
func IsHTTPStatus(err error) bool {
	var target *HTTPStatusError
	return errors.As(err, &target)
}

// DownloadFailedError is returned when both the primary and the fallback
// URL failed.
type DownloadFailedError struct {
	URL         string
	FallbackURL string
	Err         error
}

func (e *DownloadFailedError) Error() string {
	if e.FallbackURL == "" {
		return fmt.Sprintf("Error: downloading %s failed\nContext: %v\nFix: check network access to the repository",
			SanitizeURL(e.URL), e.Err)
	}
	return fmt.Sprintf("Error: downloading %s failed\nContext: fallback %s also failed: %v\nFix: check that the release is published, or rerun later",
		SanitizeURL(e.URL), SanitizeURL(e.FallbackURL), e.Err)
}

func (e *DownloadFailedError) Unwrap() error { return e.Err }

// IsDownloadFailed reports whether err is (or wraps) a DownloadFailedError.
func IsDownloadFailed(err error) bool {
	var target *DownloadFailedError
	return errors.As(err, &target)
}

// ComparisonFailedError is returned when the comparator ran and the
// artifacts are not identical, or no comparator could run.
type ComparisonFailedError struct {
	Remote  string
	Local   string
	Summary string
}

func (e *ComparisonFailedError) Error() string {
	return fmt.Sprintf("%s and %s differ: %s", e.Remote, e.Local, e.Summary)
}

// IsComparisonFailed reports whether err is (or wraps) a ComparisonFailedError.
func IsComparisonFailed(err error) bool {
	var target *ComparisonFailedError
	return errors.As(err, &target)
}

// IdentityExtractionError is returned when a file is not a well-formed APK.
type IdentityExtractionError struct {
	Path string
	Err  error
}

func (e *IdentityExtractionError) Error() string {
	return fmt.Sprintf("Error: cannot read package identity from %s\nContext: %v\nFix: make sure the file is a complete APK", e.Path, e.Err)
}

func (e *IdentityExtractionError) Unwrap() error { return e.Err }

// IsIdentityExtraction reports whether err is (or wraps) an IdentityExtractionError.
func IsIdentityExtraction(err error) bool {
	var target *IdentityExtractionError
	return errors.As(err, &target)
}

// StoreCorruptError is returned when an on-disk JSON store cannot be parsed
// or exceeds the size limit.
type StoreCorruptError struct {
	Path string
	Err  error
}

func (e *StoreCorruptError) Error() string {
	return fmt.Sprintf("Error: %s is not a usable JSON store\nContext: %v\nFix: repair or remove the file, or rerun with --yes to move it aside", e.Path, e.Err)
}

func (e *StoreCorruptError) Unwrap() error { return e.Err }

// IsStoreCorrupt reports whether err is (or wraps) a StoreCorruptError.
func IsStoreCorrupt(err error) bool {
	var target *StoreCorruptError
	return errors.As(err, &target)
}
