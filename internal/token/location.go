package token

import (
	"fmt"

	"github.com/slafling/slafling/internal/config"
)

// Source はトークンの取得元の種別
type Source int

const (
	// SourceEnv はヘッドレスモードの環境変数オーバーライド
	SourceEnv Source = iota
	// SourceKeychain は macOS Keychain
	SourceKeychain
	// SourceFile はフラットファイル
	SourceFile
)

func (s Source) String() string {
	switch s {
	case SourceEnv:
		return "environment"
	case SourceKeychain:
		return "keychain"
	default:
		return "file"
	}
}

// Location はトークンがどこから解決される（された）かを表す。
// 診断と `token show` 用であり、トークンの値は決して含まれない。
type Location struct {
	Source  Source
	Account string // Keychain のアカウント名（= プロファイル名 or default）
	Path    string // ファイルバックエンドのパス
}

func (l Location) String() string {
	switch l.Source {
	case SourceEnv:
		return config.EnvToken
	case SourceKeychain:
		return fmt.Sprintf("Keychain (service: %s, account: %s)", Service, l.Account)
	default:
		return l.Path
	}
}
