package config

import "os"

// AssembleFromEnv はヘッドレスモード用に、環境変数のみから設定を
// 組み立てる。設定ファイルには一切触れない。各フィールドの文法と
// 既定値は通常モードの検証と共通。
//
// channel 未設定はここではエラーにしない。送信の解決時に
// ErrMissingChannel になる（search は channel を必要としないため）。
func AssembleFromEnv() (*Settings, error) {
	s := &Settings{
		Channel:     os.Getenv(EnvChannel),
		MaxFileSize: DefaultMaxFileSize,
	}
	if err := ApplyEnvOverrides(s); err != nil {
		return nil, err
	}
	return s, nil
}
