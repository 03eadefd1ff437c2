package token

import (
	"os"

	"github.com/slafling/slafling/internal/config"
)

// Resolver はモードとバックエンドのディスパッチを行う。自由な選択ではない:
//
//   - ヘッドレスモードでは SLAFLING_TOKEN が唯一の取得元。バックエンドは
//     一切プローブしない。
//   - 通常モードでは設定の token_store が指すバックエンドが唯一の取得元。
//     環境変数オーバーライドは意図的に参照しない。放置された export に
//     よって対話実行のクレデンシャルがすり替わることを防ぐ。
type Resolver struct {
	// Open が nil なら実バックエンドの Open を使う。テスト用の差し替え口。
	Open Opener
}

func (r *Resolver) opener() Opener {
	if r.Open != nil {
		return r.Open
	}
	return Open
}

// Backend は通常モードで使うバックエンドを開く。
// settings が nil（設定ファイルがまだ無い init 時）や token_store 未設定の
// 場合はコンパイル時のプラットフォーム既定に落ちる。
func (r *Resolver) Backend(settings *config.Settings, profileName string) (Backend, error) {
	store := ""
	if settings != nil {
		store = settings.TokenStore
	}
	if store == "" {
		store = DefaultStore
	}
	return r.opener()(store, profileName)
}

// Resolve は1回の実行のトークンを解決する唯一の入口。
func (r *Resolver) Resolve(mode config.Mode, settings *config.Settings, profileName string) (string, error) {
	if mode == config.ModeHeadless {
		value := os.Getenv(config.EnvToken)
		if value == "" {
			return "", &MissingTokenError{Location: Location{Source: SourceEnv}}
		}
		return value, nil
	}

	backend, err := r.Backend(settings, profileName)
	if err != nil {
		return "", err
	}
	return backend.Load()
}

// ShowSource は Resolve の読み取り専用版。トークンの値は返さない。
func (r *Resolver) ShowSource(mode config.Mode, settings *config.Settings, profileName string) (Location, error) {
	if mode == config.ModeHeadless {
		return Location{Source: SourceEnv}, nil
	}
	backend, err := r.Backend(settings, profileName)
	if err != nil {
		return Location{}, err
	}
	return backend.Location(), nil
}
