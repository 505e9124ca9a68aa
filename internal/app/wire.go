package app

import (
	"log/slog"
	"os"
	"path/filepath"

	"oroid/internal/audit"
	"oroid/internal/domain"
	"oroid/internal/keyring"
	"oroid/internal/services/didmanager"
	"oroid/internal/store"
)

// Wire bundles the stores, keyring and manager for the CLI.
type Wire struct {
	Store   domain.DIDStore
	Keys    domain.KeyStore
	Manager domain.DIDService
	Logger  *slog.Logger

	recorder *audit.JSONLRecorder
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	didStore, err := store.NewFileStore(filepath.Join(cfg.Home, cfg.StoreFile))
	if err != nil {
		return nil, err
	}
	recorder, err := audit.NewJSONLRecorder(filepath.Join(cfg.Home, cfg.AuditFile))
	if err != nil {
		return nil, err
	}
	keys := keyring.NewFileKeyring(cfg.Home)

	manager := didmanager.New(didStore,
		didmanager.WithMethod(cfg.Method),
		didmanager.WithLogger(logger),
		didmanager.WithAuditRecorder(recorder),
	)

	return &Wire{
		Store:    didStore,
		Keys:     keys,
		Manager:  manager,
		Logger:   logger,
		recorder: recorder,
	}, nil
}

// Close releases resources held by the wired graph.
func (w *Wire) Close() error {
	if w.recorder == nil {
		return nil
	}
	return w.recorder.Close()
}
