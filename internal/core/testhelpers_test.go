package core

import (
	"archive/zip"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// discardLogger returns a logger that drops everything.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// zipEntry is one file of a test archive.
type zipEntry struct {
	Name string
	Body string
}

// writeZip creates an archive at path with the given entries in order.
func writeZip(t *testing.T, path string, entries ...zipEntry) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	zw := zip.NewWriter(f)
	for _, e := range entries {
		w, err := zw.Create(e.Name)
		if err != nil {
			t.Fatalf("zip create %s: %v", e.Name, err)
		}
		if _, err := io.WriteString(w, e.Body); err != nil {
			t.Fatalf("zip write %s: %v", e.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

// fakeUI records prompts and answers them with a fixed value.
type fakeUI struct {
	SilentUICallback
	autoApprove bool
	answer      bool
	mode        OutputMode
	asked       []string
	warnings    []string
	successes   []string
	errs        []string
	jsonOut     []JSONOutput
}

func (f *fakeUI) AskConfirmation(title, message string) bool {
	f.asked = append(f.asked, title)
	return f.answer
}

func (f *fakeUI) ShowWarning(title, message string) {
	f.warnings = append(f.warnings, title+": "+message)
}

func (f *fakeUI) IsAutoApprove() bool { return f.autoApprove }

func (f *fakeUI) ShowSuccess(message string) { f.successes = append(f.successes, message) }

func (f *fakeUI) ShowError(title, message string) {
	f.errs = append(f.errs, title+": "+message)
}

func (f *fakeUI) GetOutputMode() OutputMode { return f.mode }

func (f *fakeUI) FormatJSON(output JSONOutput) error {
	f.jsonOut = append(f.jsonOut, output)
	return nil
}
