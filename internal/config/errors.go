package config

import (
	"errors"
	"fmt"
)

// ErrMissingChannel はマージ後も channel が決まらなかったことを表す。
var ErrMissingChannel = errors.New("channel is not configured (set it in the config file, or SLAFLING_CHANNEL in headless mode)")

// NotFoundError は設定ファイルが存在しないことを表す。
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("config file not found: %s (run 'slafling init' to create one)", e.Path)
}

// ReadError は設定ファイルの読み取り失敗を表す（存在しない場合を除く。
// そちらは NotFoundError になる）。典型的にはパーミッション拒否。
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read config file %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ParseError は設定ファイルの構文エラーを表す。
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError は構造検証の失敗を、フィールド名と理由付きで表す。
// シークレットの値を含むフィールドは存在しないため、値をそのまま
// メッセージに含めてよい。
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// UnknownProfileError は設定に存在しないプロファイルが選択されたことを表す。
type UnknownProfileError struct {
	Name string
}

func (e *UnknownProfileError) Error() string {
	return fmt.Sprintf("profile '%s' not found in config", e.Name)
}
