package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	getter "github.com/hashicorp/go-getter"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML or JSON config file. Keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path atomically. A .json extension selects JSON,
// anything else YAML.
func Save(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(cfg, "", "  ")
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// IsRemote reports whether src needs Fetch rather than a plain file read.
func IsRemote(src string) bool {
	return strings.Contains(src, "::") || strings.Contains(src, "://")
}

// Fetch downloads the config at src into dir and returns the local path.
// src is any go-getter address: a path, http(s) URL, git::, s3:: or gcs::.
func Fetch(ctx context.Context, src, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create directory %s: %w", dir, err)
	}
	dst := filepath.Join(dir, "config.yaml")
	if err := getter.GetFile(dst, src, getter.WithContext(ctx)); err != nil {
		return "", fmt.Errorf("fetch config %s: %w", src, err)
	}
	return dst, nil
}

// Open loads the config at src, fetching it first when it is remote.
func Open(ctx context.Context, src string) (*Config, error) {
	if !IsRemote(src) {
		return Load(src)
	}
	dir, err := os.MkdirTemp("", "terrain-config-")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path, err := Fetch(ctx, src, dir)
	if err != nil {
		return nil, err
	}
	return Load(path)
}
