package token

import (
	"fmt"

	"github.com/slafling/slafling/internal/config"
)

// MissingTokenError はトークンが見つからなかったことを、取得元付きで表す。
type MissingTokenError struct {
	Location Location
}

func (e *MissingTokenError) Error() string {
	switch e.Location.Source {
	case SourceEnv:
		return config.EnvToken + " is not set"
	case SourceKeychain:
		return fmt.Sprintf("no stored token found in Keychain (account: %s), run 'slafling token set'", e.Location.Account)
	default:
		return fmt.Sprintf("no stored token found at %s, run 'slafling token set'", e.Location.Path)
	}
}

// BackendUnavailableError は選択されたバックエンドがこのプラットフォームで
// 使えないことを表す。
type BackendUnavailableError struct {
	Store  string
	Reason string
}

func (e *BackendUnavailableError) Error() string {
	return fmt.Sprintf("token_store '%s' is not available: %s", e.Store, e.Reason)
}

// PermissionError はシークレットストアへのアクセス拒否を表す。
type PermissionError struct {
	Path string
	Err  error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: %s", e.Path)
}

func (e *PermissionError) Unwrap() error { return e.Err }
