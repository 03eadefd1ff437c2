// Package profile resolves and validates the active profile name.
// プロファイル名はトークンの保存パス（ファイルバックエンド）の一部に
// なるため、ファイルシステムや Keychain に触れる前に必ず検証する。
package profile

import (
	"fmt"
	"os"
	"strings"

	"github.com/slafling/slafling/internal/config"
)

// InvalidNameError は不正なプロファイル名を表す。
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid profile name %q: %s", e.Name, e.Reason)
}

// Resolve はフラグ > SLAFLING_PROFILE の優先順でプロファイル名を決める。
// どちらもなければ空文字列（= default のみ使用）。
// 非空の候補は必ず Validate を通してから返す。
func Resolve(flag string) (string, error) {
	name := flag
	if name == "" {
		name = os.Getenv(config.EnvProfile)
	}
	if name == "" {
		return "", nil
	}
	if err := Validate(name); err != nil {
		return "", err
	}
	return name, nil
}

// Validate はプロファイル名の不変条件を検査する。
// パストラバーサル対策として、ストレージパスに合流しうる文字列を拒否する。
func Validate(name string) error {
	switch {
	case name == "":
		return &InvalidNameError{Name: name, Reason: "must not be empty"}
	case strings.ContainsAny(name, `/\`):
		return &InvalidNameError{Name: name, Reason: "must not contain path separators"}
	case strings.Contains(name, ".."):
		return &InvalidNameError{Name: name, Reason: "must not contain '..'"}
	case strings.ContainsRune(name, 0):
		return &InvalidNameError{Name: name, Reason: "must not contain null bytes"}
	}
	return nil
}
