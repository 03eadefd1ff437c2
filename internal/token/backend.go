// Package token stores and resolves the Slack bearer token.
//
// トークンは設定ファイルには決して書かれない。保存先は2種類の
// バックエンド（macOS Keychain / オーナーのみ読めるフラットファイル）の
// いずれかで、どちらを使うかは設定時に決まる。実行時の自動プローブはしない。
package token

import (
	"github.com/slafling/slafling/internal/config"
	"github.com/slafling/slafling/internal/profile"
)

// Service は Keychain のサービス名
const Service = "slafling"

// DefaultAccount はプロファイル未指定時のアカウント名
const DefaultAccount = "default"

// Backend は1つのプロファイルに束縛されたシークレットストア。
type Backend interface {
	Store(value string) error
	Load() (string, error)
	Delete() error

	// Location は保存先の説明を返す。値そのものは含まれない。
	Location() Location
}

// Opener はストア名とプロファイルからバックエンドを作る。
// テストではフェイクに差し替える。
type Opener func(store, profileName string) (Backend, error)

// Open は設定された token_store に対応するバックエンドを開く。
// プロファイル名はパス導出より前に必ず検証する。
func Open(store, profileName string) (Backend, error) {
	if profileName != "" {
		if err := profile.Validate(profileName); err != nil {
			return nil, err
		}
	}
	switch store {
	case config.StoreKeychain:
		return newKeychain(profileName)
	case config.StoreFile:
		return newFile(profileName)
	default:
		return nil, &config.ValidationError{
			Field:  "token_store",
			Reason: "'" + store + "' is not one of: keychain, file",
		}
	}
}

func accountName(profileName string) string {
	if profileName == "" {
		return DefaultAccount
	}
	return profileName
}
