package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// バイトサイズは2進単位（KB = 2^10）で解釈する。
// "100MB" = 104,857,600 bytes。上限判定もこの単位で行う。
const (
	KB int64 = 1 << 10
	MB int64 = 1 << 20
	GB int64 = 1 << 30
)

// DefaultMaxFileSize はアップロードサイズの既定値
const DefaultMaxFileSize = 100 * MB

// MaxFileSizeCap は設定可能な上限（Slack側の制限）
const MaxFileSizeCap = 1 * GB

// ParseSize は "100MB" のようなサイズ表記をバイト数に変換する。
// 単位なしはバイト、単位は B / K / KB / M / MB / G / GB を受け付ける。
func ParseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)

	split := len(s)
	for i, c := range s {
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			split = i
			break
		}
	}
	numPart := strings.TrimSpace(s[:split])
	unit := strings.ToUpper(strings.TrimSpace(s[split:]))

	num, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number in file size: '%s'", s)
	}
	if num < 0 {
		return 0, fmt.Errorf("file size must not be negative: '%s'", s)
	}

	var multiplier int64
	switch unit {
	case "", "B":
		multiplier = 1
	case "KB", "K":
		multiplier = KB
	case "MB", "M":
		multiplier = MB
	case "GB", "G":
		multiplier = GB
	default:
		return 0, fmt.Errorf("unknown file size unit: '%s' (use KB, MB, or GB)", unit)
	}

	result := num * float64(multiplier)
	// int64 に収まらない値は変換で負数に折り返すので、変換前に弾く
	if result >= math.MaxInt64 {
		return 0, fmt.Errorf("file size is too large: '%s'", s)
	}
	return int64(result), nil
}

// FormatSize はバイト数を人間向けの表記にする。
func FormatSize(bytes int64) string {
	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.1fGB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.1fMB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1fKB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}
