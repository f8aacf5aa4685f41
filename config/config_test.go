package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/queuectl/queuectl/config"
)

func TestLoadWritesDefaultsWhenMissing(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxRetries != config.DefaultMaxRetries || cfg.BackoffBase != config.DefaultBackoffBase {
		t.Fatalf("expected defaults, got %+v", cfg)
	}

	if _, err := os.Stat(config.Path(dir)); err != nil {
		t.Fatalf("expected config file to be written: %v", err)
	}
}

func TestLoadRecoversFromMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(config.Path(dir), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg != config.Default() {
		t.Fatalf("expected defaults after recovery, got %+v", cfg)
	}

	data, err := os.ReadFile(config.Path(dir))
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Fatal("expected defaults to be persisted")
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	want := config.Config{MaxRetries: 7, BackoffBase: 5}

	if err := config.Save(dir, want); err != nil {
		t.Fatal(err)
	}

	got, err := config.Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestSaveLeavesNoTempFilesBehind(t *testing.T) {
	dir := t.TempDir()
	if err := config.Save(dir, config.Default()); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() != filepath.Base(config.Path(dir)) {
			t.Fatalf("unexpected leftover file: %s", e.Name())
		}
	}
}
