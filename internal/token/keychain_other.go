//go:build !darwin

package token

import "github.com/slafling/slafling/internal/config"

// Keychain バックエンドは macOS でのみコンパイルされる。
// 他プラットフォームで選択された場合は設定エラーとして扱う。
func newKeychain(string) (Backend, error) {
	return nil, &BackendUnavailableError{
		Store:  config.StoreKeychain,
		Reason: "Keychain is only supported on macOS (use token_store = \"file\")",
	}
}
