package core

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestHTTPDownloader_Success(t *testing.T) {
	var userAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("apk bytes"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	d := NewHTTPDownloader(nil, 5*time.Second, "repro-verify-test")

	path, err := d.Download(context.Background(), srv.URL+"/repo/app_1.apk", dir)
	if err != nil {
		t.Fatalf("Download() error = %v", err)
	}
	if path != filepath.Join(dir, "app_1.apk") {
		t.Errorf("path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "apk bytes" {
		t.Errorf("content = %q", data)
	}
	if userAgent != "repro-verify-test" {
		t.Errorf("User-Agent = %q", userAgent)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("expected only the downloaded file in %s, got %d entries", dir, len(entries))
	}
}

func TestHTTPDownloader_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	dir := t.TempDir()
	d := NewHTTPDownloader(nil, 5*time.Second, "")

	_, err := d.Download(context.Background(), srv.URL+"/repo/app_1.apk", dir)
	var statusErr *HTTPStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected HTTPStatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d", statusErr.StatusCode)
	}
	if _, err := os.Stat(filepath.Join(dir, "app_1.apk")); !errors.Is(err, os.ErrNotExist) {
		t.Error("no file should be written on HTTP errors")
	}
}

func TestHTTPDownloader_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL + "/repo/app_1.apk"
	srv.Close()

	d := NewHTTPDownloader(nil, 5*time.Second, "")
	_, err := d.Download(context.Background(), url, t.TempDir())
	if err == nil {
		t.Fatal("expected error for closed server")
	}
	if IsHTTPStatus(err) {
		t.Error("transport failure must not look like an HTTP status error")
	}
}

func TestFetcher_WithHTTPServer_FallsBackToArchive(t *testing.T) {
	var primaryHits, archiveHits int32
	mux := http.NewServeMux()
	mux.HandleFunc("/repo/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&primaryHits, 1)
		http.NotFound(w, r)
	})
	mux.HandleFunc("/archive/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&archiveHits, 1)
		_, _ = w.Write([]byte("archived"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	dir := t.TempDir()
	f := NewFetcher(NewHTTPDownloader(srv.Client(), 0, ""), NewOSFileSystem(), testFallback, discardLogger())

	path, err := f.Fetch(context.Background(), srv.URL+"/repo/app_1.apk", dir, false)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if p, a := atomic.LoadInt32(&primaryHits), atomic.LoadInt32(&archiveHits); p != 1 || a != 1 {
		t.Errorf("hits: primary=%d archive=%d, want 1 and 1", p, a)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "archived" {
		t.Errorf("content = %q", data)
	}
}

func TestFetcher_WithHTTPServer_ReplacesStaleCopy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("fresh"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	stale := filepath.Join(dir, "app_1.apk")
	if err := os.WriteFile(stale, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	f := NewFetcher(NewHTTPDownloader(srv.Client(), 0, ""), NewOSFileSystem(), testFallback, discardLogger())

	// reuse: the stale copy is returned untouched
	path, err := f.Fetch(context.Background(), srv.URL+"/repo/app_1.apk", dir, true)
	if err != nil {
		t.Fatalf("Fetch(reuse) error = %v", err)
	}
	if data, _ := os.ReadFile(path); string(data) != "stale" {
		t.Errorf("reuse content = %q, want stale", data)
	}

	// no reuse: downloaded again
	path, err = f.Fetch(context.Background(), srv.URL+"/repo/app_1.apk", dir, false)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if data, _ := os.ReadFile(path); string(data) != "fresh" {
		t.Errorf("content = %q, want fresh", data)
	}
}
