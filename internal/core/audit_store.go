package core

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/EmundoT/repro-verify/internal/types"
)

// AuditStore persists verification records.
type AuditStore interface {
	Persist(rec types.VerificationRecord) error
	HistoryPath(localFile string) string
}

// Compile-time interface satisfaction check.
var _ AuditStore = (*FileAuditStore)(nil)

// FileAuditStore writes the per-artifact history files and the global
// verified registry. Every Persist call reads each document in full,
// merges in memory and replaces the file. Concurrent writers against the
// same directory are not supported.
type FileAuditStore struct {
	registryPath string
	ui           UICallback
	logger       *slog.Logger
	now          func() time.Time
}

// NewFileAuditStore creates a store writing the registry to registryPath.
func NewFileAuditStore(registryPath string, ui UICallback, logger *slog.Logger) *FileAuditStore {
	if ui == nil {
		ui = &SilentUICallback{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FileAuditStore{
		registryPath: registryPath,
		ui:           ui,
		logger:       logger,
		now:          time.Now,
	}
}

// HistoryPath returns the history file for a local artifact.
func (s *FileAuditStore) HistoryPath(localFile string) string {
	return localFile + HistorySuffix
}

// Persist upserts rec into the artifact's history, keyed by the local
// build's timestamp, and adds verified records to the registry.
func (s *FileAuditStore) Persist(rec types.VerificationRecord) error {
	historyStore := NewJSONStore(s.HistoryPath(rec.Local.File), func() types.History { return types.History{} })
	history, err := loadStore(s, historyStore)
	if err != nil {
		return err
	}
	if history == nil {
		history = types.History{}
	}
	key := history.Upsert(rec)
	if err := historyStore.Save(history); err != nil {
		return err
	}
	s.logger.Debug("history updated", "path", historyStore.Path(), "key", key, "entries", len(history))

	if !rec.Verified {
		return nil
	}

	registryStore := NewJSONStore(s.registryPath, types.NewVerifiedRegistry)
	registry, err := loadStore(s, registryStore)
	if err != nil {
		return err
	}
	if registry == nil {
		registry = types.NewVerifiedRegistry()
	}
	added, err := registry.Add(rec)
	if err != nil {
		return fmt.Errorf("add %s to registry: %w", rec.Local.PackageName, err)
	}
	if err := registryStore.Save(registry); err != nil {
		return err
	}
	s.logger.Debug("registry updated", "path", registryStore.Path(), "package", rec.Local.PackageName, "new", added)

	return nil
}

// loadStore loads a document and applies the corrupt-store policy: the user
// is asked whether to move the unparseable file aside and start empty. A
// refusal fails the current artifact and leaves the file untouched.
func loadStore[T any](s *FileAuditStore, store *JSONStore[T]) (T, error) {
	doc, err := store.Load()
	if err == nil || !IsStoreCorrupt(err) {
		return doc, err
	}

	question := fmt.Sprintf("%s cannot be parsed (%v).\nMove it aside and start a new one?", store.Path(), err)
	if !s.ui.IsAutoApprove() && !s.ui.AskConfirmation("Corrupt Audit Store", question) {
		return doc, fmt.Errorf("%w: %w", ErrStoreReinitDeclined, err)
	}

	moved, mvErr := store.MoveAside(s.now())
	if mvErr != nil {
		return doc, mvErr
	}
	s.logger.Warn("corrupt store moved aside", "path", store.Path(), "moved_to", moved)
	s.ui.ShowWarning("Corrupt Audit Store", fmt.Sprintf("%s moved to %s", store.Path(), moved))
	return doc, nil
}
