package config

import (
	"os"
	"strings"
)

// このコアが消費する環境変数。
// EnvToken はヘッドレスモード専用で、通常モードでは意図的に参照しない。
const (
	EnvProfile     = "SLAFLING_PROFILE"
	EnvHeadless    = "SLAFLING_HEADLESS"
	EnvToken       = "SLAFLING_TOKEN"
	EnvChannel     = "SLAFLING_CHANNEL"
	EnvMaxFileSize = "SLAFLING_MAX_FILE_SIZE"
	EnvConfirm     = "SLAFLING_CONFIRM"
	EnvSearchTypes = "SLAFLING_SEARCH_TYPES"
	EnvOutput      = "SLAFLING_OUTPUT"
)

// ApplyEnvOverrides は表示・制限系の環境変数を設定に上書き適用する。
// 文法は設定ファイルの同名フィールドと同一。channel とトークンは
// ここでは扱わない（channel はヘッドレス専用、トークンは TokenResolver 専用）。
func ApplyEnvOverrides(s *Settings) error {
	if v := os.Getenv(EnvMaxFileSize); v != "" {
		size, err := ParseSize(v)
		if err != nil {
			return &ValidationError{Field: EnvMaxFileSize, Reason: err.Error()}
		}
		if size > MaxFileSizeCap {
			return &ValidationError{
				Field:  EnvMaxFileSize,
				Reason: "exceeds the " + FormatSize(MaxFileSizeCap) + " limit",
			}
		}
		s.MaxFileSize = size
	}

	if v := os.Getenv(EnvConfirm); v != "" {
		s.Confirm = envBool(v)
	}

	if v := os.Getenv(EnvSearchTypes); v != "" {
		types := splitCSV(v)
		if err := ValidateSearchTypes(types); err != nil {
			return &ValidationError{Field: EnvSearchTypes, Reason: err.Error()}
		}
		s.SearchTypes = types
	}

	if v := os.Getenv(EnvOutput); v != "" {
		if err := ValidateOutput(v); err != nil {
			return &ValidationError{Field: EnvOutput, Reason: err.Error()}
		}
		s.Output = strings.ToLower(v)
	}

	return nil
}

func splitCSV(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, strings.ToLower(part))
		}
	}
	return out
}
