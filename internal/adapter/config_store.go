package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/fromback/internal/model"
)

// ConfigStore loads CLI settings.
type ConfigStore interface {
	// Load reads the config at path. An empty path means m.DefaultConfigPath,
	// which may be absent; an explicit path must exist.
	Load(path m.Path) (m.Config, error)
}

// LocalConfigStore reads YAML config files from disk.
type LocalConfigStore struct{}

// NewConfigStore constructs a ConfigStore implementation.
func NewConfigStore() ConfigStore {
	return &LocalConfigStore{}
}

// Load implements ConfigStore.
func (cs *LocalConfigStore) Load(path m.Path) (m.Config, error) {
	explicit := path != ""
	if !explicit {
		path = m.DefaultConfigPath
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return m.Config{}, nil
		}

		return m.Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg, err := decodeConfig(data)
	if err != nil {
		return m.Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func decodeConfig(data []byte) (m.Config, error) {
	var cfg m.Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return m.Config{}, err
	}

	if cfg.Unit != "" {
		if _, err := m.ParseUnit(string(cfg.Unit)); err != nil {
			return m.Config{}, err
		}
	}

	if cfg.Parallel < 0 {
		return m.Config{}, fmt.Errorf("parallel must not be negative, got %d", cfg.Parallel)
	}

	return cfg, nil
}
