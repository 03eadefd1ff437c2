package config

import (
	"os"
	"strings"
)

// Mode は動作モード。プロセス起動時に一度だけ決定され、以後は
// 明示的な値として各コンポーネントに引き回す（グローバルにしない）。
type Mode int

const (
	// ModeNormal は設定ファイルとトークンバックエンドを使う通常モード
	ModeNormal Mode = iota
	// ModeHeadless は環境変数のみから設定を組み立てるモード。
	// 設定ファイルには一切触れない。
	ModeHeadless
)

func (m Mode) String() string {
	if m == ModeHeadless {
		return "headless"
	}
	return "normal"
}

// DetectMode はフラグと SLAFLING_HEADLESS からモードを決定する。
func DetectMode(headlessFlag bool) Mode {
	if headlessFlag || envBool(os.Getenv(EnvHeadless)) {
		return ModeHeadless
	}
	return ModeNormal
}

func envBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
