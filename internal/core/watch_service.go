package core

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/EmundoT/repro-verify/internal/types"
)

// DefaultWatchDebounce is how long a file must stay quiet before it is
// verified. Builds tend to write an APK in several chunks.
const DefaultWatchDebounce = 1 * time.Second

// WatchService re-verifies artifacts as they appear in the unsigned
// directory.
type WatchService struct {
	verifier VerifyServiceInterface
	dir      string
	ui       UICallback
	logger   *slog.Logger
	debounce time.Duration

	// verifyMu serializes verification; the audit store is not safe for
	// concurrent writers.
	verifyMu sync.Mutex
}

// NewWatchService creates a watcher over dir.
func NewWatchService(verifier VerifyServiceInterface, dir string, ui UICallback, logger *slog.Logger) *WatchService {
	if ui == nil {
		ui = &SilentUICallback{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &WatchService{
		verifier: verifier,
		dir:      dir,
		ui:       ui,
		logger:   logger,
		debounce: DefaultWatchDebounce,
	}
}

// isWatchedArtifact reports whether an event on name should trigger a run.
func isWatchedArtifact(name string) bool {
	base := filepath.Base(name)
	return strings.HasSuffix(base, ArtifactExt) && !strings.HasPrefix(base, ".")
}

// Watch blocks until ctx is cancelled, verifying each created or rewritten
// APK once it has been quiet for the debounce delay. onResult, if set, is
// called with every result.
func (w *WatchService) Watch(ctx context.Context, opts VerifyOptions, onResult func(types.ArtifactResult)) error {
	info, err := os.Stat(w.dir)
	if err != nil || !info.IsDir() {
		return ErrNoUnsignedDir
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}

	w.logger.Info("watching for new APKs", "dir", w.dir)

	var (
		mu     sync.Mutex
		timers = make(map[string]*time.Timer)
		wg     sync.WaitGroup
	)
	defer func() {
		mu.Lock()
		for _, t := range timers {
			if t.Stop() {
				wg.Done()
			}
		}
		mu.Unlock()
		wg.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isWatchedArtifact(event.Name) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			path := event.Name
			mu.Lock()
			// Debounce: reset timer on each event
			if t, exists := timers[path]; exists && t.Stop() {
				wg.Done()
			}
			wg.Add(1)
			timers[path] = time.AfterFunc(w.debounce, func() {
				defer wg.Done()
				mu.Lock()
				delete(timers, path)
				mu.Unlock()
				w.verify(ctx, path, opts, onResult)
			})
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)
		}
	}
}

func (w *WatchService) verify(ctx context.Context, path string, opts VerifyOptions, onResult func(types.ArtifactResult)) {
	if ctx.Err() != nil {
		return
	}
	if _, err := os.Stat(path); err != nil {
		w.logger.Debug("artifact vanished before verification", "path", path)
		return
	}

	w.verifyMu.Lock()
	defer w.verifyMu.Unlock()

	res, selected := w.verifier.VerifyFile(ctx, path, opts)
	if !selected {
		return
	}
	w.report(res)
	if onResult != nil {
		onResult(res)
	}
}

// report shows one watch result. JSON mode emits a structured line per
// artifact so consumers need not parse the styled messages.
func (w *WatchService) report(res types.ArtifactResult) {
	name := filepath.Base(res.File)
	if w.ui.GetOutputMode() == OutputJSON {
		out := JSONOutput{
			Status: "success",
			Data: map[string]interface{}{
				"file":         res.File,
				"package_name": res.PackageName,
				"version_code": res.VersionCode,
				"status":       res.Status,
			},
		}
		if res.Status != types.ArtifactStatusVerified {
			out.Status = "error"
			out.Data["stage"] = res.Stage
			out.Error = &JSONError{Title: "Not Verified", Message: res.Error}
		}
		if err := w.ui.FormatJSON(out); err != nil {
			w.logger.Warn("cannot write watch result", "file", name, "error", err)
		}
		return
	}

	if res.Status == types.ArtifactStatusVerified {
		w.ui.ShowSuccess(fmt.Sprintf("%s verified", name))
	} else {
		w.ui.ShowError("Not Verified", fmt.Sprintf("%s: %s", name, res.Error))
	}
}
