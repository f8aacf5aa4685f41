package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	// DefaultMaxRetries is used when config.json is missing or malformed.
	DefaultMaxRetries = 3
	// DefaultBackoffBase is used when config.json is missing or malformed.
	DefaultBackoffBase = 2

	dirName    = ".queuectl"
	fileName   = "config.json"
	dbName     = "jobs.db"
	pidName    = "workers.pid"
)

// Config holds queuectl's tuning knobs.
type Config struct {
	MaxRetries  uint32 `json:"max_retries"`
	BackoffBase uint32 `json:"backoff_base"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MaxRetries:  DefaultMaxRetries,
		BackoffBase: DefaultBackoffBase,
	}
}

// Dir returns the queuectl home directory, ~/.queuectl, creating it if
// necessary.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, dirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// Path returns the path to config.json under dir.
func Path(dir string) string {
	return filepath.Join(dir, fileName)
}

// DBPath returns the path to jobs.db under dir.
func DBPath(dir string) string {
	return filepath.Join(dir, dbName)
}

// PidPath returns the path to workers.pid under dir.
func PidPath(dir string) string {
	return filepath.Join(dir, pidName)
}

// Load reads config.json from dir. If the file is missing or cannot be
// parsed, the defaults are written to dir and returned.
func Load(dir string) (Config, error) {
	path := Path(dir)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return Config{}, err
		}
		def := Default()
		return def, Save(dir, def)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		def := Default()
		return def, Save(dir, def)
	}
	return cfg, nil
}

// Save replaces config.json under dir with cfg, atomically.
//
// The file is written to a temporary path in the same directory and
// renamed into place, so a concurrent reader never observes a partially
// written file.
func Save(dir string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	path := Path(dir)
	tmp, err := os.CreateTemp(dir, fileName+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, path)
}
