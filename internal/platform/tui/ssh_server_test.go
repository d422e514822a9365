package tui

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-simon/internal/storage"
)

func TestShutdownClosesStoreAfterSessionsDrain(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	srv := &SSHServer{store: store}

	// A session ending during shutdown records its game
	var saveErr error
	err = srv.drainThenClose(func() error {
		_, saveErr = store.SaveGame(storage.GameRecord{Score: 3, Player: "late"})
		return nil
	})
	if err != nil {
		t.Fatalf("drainThenClose() failed: %v", err)
	}
	if saveErr != nil {
		t.Errorf("game recorded while draining failed: %v", saveErr)
	}

	if _, err := store.HighScore(); err == nil {
		t.Error("store should be closed after shutdown")
	}
}

func TestSSHServerShutdown(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.DBPath = filepath.Join(dir, "scores.db")
	cfg.HostKeyPath = filepath.Join(dir, "host_key")

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown() failed: %v", err)
	}
	if _, err := srv.store.HighScore(); err == nil {
		t.Error("store should be closed after shutdown")
	}
}
