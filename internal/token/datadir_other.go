//go:build !darwin

package token

import (
	"os"
	"path/filepath"

	"github.com/slafling/slafling/internal/config"
)

// DefaultStore is the compiled-in backend for this platform.
// Keychain が無いプラットフォームではフラットファイルに落ちる。
const DefaultStore = config.StoreFile

func dataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share"), nil
}
