package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppName is the application name used for config directories
const AppName = "slafling"

// configDir returns the config directory path (~/.config/slafling)
// Uses XDG_CONFIG_HOME if set, otherwise falls back to ~/.config
func configDir() (string, error) {
	// XDG_CONFIG_HOME を優先
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, AppName), nil
	}

	// フォールバック: ~/.config (XDG仕様のデフォルト)
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", AppName), nil
}

// DefaultPath returns the user config file path (~/.config/slafling/config.toml)
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// initTemplate は init が書き出す設定の雛形。トークンは含めない。
const initTemplate = `[default]
# channel = "#general"
# max_file_size = "100MB"
# confirm = false
# token_store = "keychain"

# [profiles.random]
# channel = "#random"
`

// WriteInit は設定ファイルの雛形を書き出す。既存ファイルは上書きする。
func WriteInit(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(initTemplate), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
