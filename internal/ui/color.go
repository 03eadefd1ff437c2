package ui

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

var colorEnabled = true

func init() {
	// 色が使えるかチェック
	colorEnabled = term.IsTerminal(int(os.Stderr.Fd()))
}

// SetColorEnabled は色の有効/無効を設定する
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// IsColorEnabled は色が有効かどうかを返す
func IsColorEnabled() bool {
	return colorEnabled
}

const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
)

// Bold は太字にする
func Bold(s string) string {
	if !colorEnabled {
		return s
	}
	return bold + s + reset
}

// Red は赤色にする
func Red(s string) string {
	if !colorEnabled {
		return s
	}
	return red + s + reset
}

// Green は緑色にする
func Green(s string) string {
	if !colorEnabled {
		return s
	}
	return green + s + reset
}

// Yellow は黄色にする
func Yellow(s string) string {
	if !colorEnabled {
		return s
	}
	return yellow + s + reset
}

// Success は成功メッセージを標準エラー出力に表示する
func Success(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, Green("✓ ")+format+"\n", args...)
}

// Error はエラーメッセージを標準エラー出力に表示する
func Error(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, Red("✗ ")+format+"\n", args...)
}

// Warning は警告メッセージを標準エラー出力に表示する
func Warning(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, Yellow("! ")+format+"\n", args...)
}
