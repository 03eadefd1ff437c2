package config

import "strings"

// Settings は1回の実行で有効なマージ済み設定。
// Token はここに含まれない。トークンは解決後も Settings とは別に
// 引き回し、コンテキスト構築以外では保持しない。
type Settings struct {
	Channel     string
	MaxFileSize int64
	Confirm     bool
	Output      string   // "" は未設定（呼び出し側でTTY判定にフォールバック）
	SearchTypes []string // nil は未設定
	TokenStore  string   // "" は未設定（プラットフォーム既定にフォールバック）
}

// Merge は default → profile の順でフィールド単位にマージする。
// プロファイル側に値があればそれが勝ち、なければ default にフォールスルー。
// search_types は置き換えであって和集合ではない。
// channel がどちらにもなければ ErrMissingChannel。
func Merge(f *File, profileName string) (*Settings, error) {
	return merge(f, profileName, true)
}

// MergePartial は channel を要求しない以外は Merge と同じ。
// channel が不要な操作（search 等）の解決に使う。
func MergePartial(f *File, profileName string) (*Settings, error) {
	return merge(f, profileName, false)
}

func merge(f *File, profileName string, requireChannel bool) (*Settings, error) {
	def := f.Default

	merged := Settings{
		Channel:     def.Channel,
		Confirm:     def.Confirm != nil && *def.Confirm,
		Output:      strings.ToLower(def.Output),
		SearchTypes: cloneLower(def.SearchTypes),
		TokenStore:  f.TokenStore(),
	}
	sizeStr := def.MaxFileSize

	if profileName != "" {
		p, ok := f.Profiles[profileName]
		if !ok {
			return nil, &UnknownProfileError{Name: profileName}
		}
		if p.Channel != "" {
			merged.Channel = p.Channel
		}
		if p.MaxFileSize != "" {
			sizeStr = p.MaxFileSize
		}
		if p.Confirm != nil {
			merged.Confirm = *p.Confirm
		}
		if p.Output != "" {
			merged.Output = strings.ToLower(p.Output)
		}
		if p.SearchTypes != nil {
			merged.SearchTypes = cloneLower(p.SearchTypes)
		}
		// p.TokenStore は読まない。保存先は [default] のみで決まる。
	}

	if requireChannel && merged.Channel == "" {
		return nil, ErrMissingChannel
	}

	if sizeStr != "" {
		size, err := ParseSize(sizeStr)
		if err != nil {
			return nil, &ValidationError{Field: "max_file_size", Reason: err.Error()}
		}
		merged.MaxFileSize = size
	} else {
		merged.MaxFileSize = DefaultMaxFileSize
	}

	return &merged, nil
}

func cloneLower(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
