package app

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFilename is read from the home directory when present.
const configFilename = "config.yaml"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home      string `yaml:"-"`          // config directory, e.g. $HOME/.oroid
	Method    string `yaml:"method"`     // DID method for newly created nodes
	StoreFile string `yaml:"store_file"` // snapshot filename inside Home
	AuditFile string `yaml:"audit_file"` // operation log filename inside Home
	Verbose   bool   `yaml:"verbose"`    // debug-level logging
}

// Default returns the configuration used when no config file exists.
func Default(home string) Config {
	return Config{
		Home:      home,
		Method:    "oro",
		StoreFile: "identity_store.json",
		AuditFile: "audit.jsonl",
	}
}

// Load reads <home>/config.yaml over the defaults. A missing file is not
// an error; a malformed one is.
func Load(home string) (Config, error) {
	cfg := Default(home)

	b, err := os.ReadFile(filepath.Join(home, configFilename))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.Method == "" {
		cfg.Method = "oro"
	}
	if cfg.StoreFile == "" {
		cfg.StoreFile = "identity_store.json"
	}
	if cfg.AuditFile == "" {
		cfg.AuditFile = "audit.jsonl"
	}
	return cfg, nil
}
