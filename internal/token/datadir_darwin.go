//go:build darwin

package token

import (
	"os"
	"path/filepath"

	"github.com/slafling/slafling/internal/config"
)

// DefaultStore is the compiled-in backend for this platform.
const DefaultStore = config.StoreKeychain

func dataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Library", "Application Support"), nil
}
