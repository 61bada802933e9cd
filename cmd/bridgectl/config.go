package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
)

// fileConfig tracks the identity of the player within a bridge session.
// Reusing the same file between runs preserves the session on the backend.
type fileConfig struct {
	Identity string `toml:"identity"`
}

// loadIdentity returns the persistent client identity from the config file,
// creating the file with a fresh identity when needed. An empty path yields
// an ephemeral identity; the session then cannot be preserved across runs.
func loadIdentity(path string) (string, error) {
	if path == "" {
		return uuid.NewString(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("read config: %w", err)
	}

	var cfg fileConfig
	if err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return "", fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	identity := strings.TrimSpace(cfg.Identity)
	if identity != "" {
		if _, err := uuid.Parse(identity); err != nil {
			return "", fmt.Errorf("config %s: invalid identity %q: %w", path, identity, err)
		}
		return identity, nil
	}

	identity = uuid.NewString()
	if err := writeConfig(path, fileConfig{Identity: identity}); err != nil {
		return "", err
	}
	return identity, nil
}

func writeConfig(path string, cfg fileConfig) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// loadServerKey reads the CURVE server public key from the first line of the
// key file. An empty path disables transport security.
func loadServerKey(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read server key file: %w", err)
	}
	line, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimSpace(line), nil
}
