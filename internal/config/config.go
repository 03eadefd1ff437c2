package config

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultProfile はプロファイル未指定時に使われるセクション名
const DefaultProfile = "default"

// 出力フォーマット
const (
	OutputTable = "table"
	OutputTSV   = "tsv"
	OutputJSON  = "json"
)

// トークンの保存先
const (
	StoreKeychain = "keychain"
	StoreFile     = "file"
)

var validOutputs = []string{OutputTable, OutputTSV, OutputJSON}
var validSearchTypes = []string{"public_channel", "private_channel", "im", "mpim"}
var validTokenStores = []string{StoreKeychain, StoreFile}

// File は設定ドキュメント全体を表す。
// トークンは意図的に含まれない。シークレットは token パッケージの
// バックエンド経由でのみ保存される。
type File struct {
	Default  Section            `toml:"default"`
	Profiles map[string]Section `toml:"profiles"`
}

// Section は [default] または [profiles.<name>] の1セクション。
// 空文字列 / nil は「未設定」を意味し、マージ時にフォールスルーする。
type Section struct {
	Channel     string   `toml:"channel"`
	MaxFileSize string   `toml:"max_file_size"`
	Confirm     *bool    `toml:"confirm"`
	Output      string   `toml:"output"`
	SearchTypes []string `toml:"search_types"`

	// TokenStore は [default] セクションでのみ意味を持つ。
	// プロファイル側で設定されていても無視される（保存先はインストールの
	// 属性であって、送信先ごとの属性ではない）。
	TokenStore string `toml:"token_store"`
}

// Load は指定パスの設定ファイルを読み込み、構造検証まで行う。
// 検証はファイル内容のみを見る。トークンバックエンドには一切触れない。
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, &ReadError{Path: path, Err: err}
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate は全セクションの構造検証を行う。
func (f *File) Validate() error {
	if err := validateSection("default", &f.Default); err != nil {
		return err
	}
	for name, section := range f.Profiles {
		if err := validateSection("profiles."+name, &section); err != nil {
			return err
		}
	}
	return nil
}

func validateSection(section string, s *Section) error {
	if s.Output != "" {
		if err := ValidateOutput(s.Output); err != nil {
			return &ValidationError{Field: section + ".output", Reason: err.Error()}
		}
	}
	if s.SearchTypes != nil {
		if err := ValidateSearchTypes(s.SearchTypes); err != nil {
			return &ValidationError{Field: section + ".search_types", Reason: err.Error()}
		}
	}
	if s.MaxFileSize != "" {
		size, err := ParseSize(s.MaxFileSize)
		if err != nil {
			return &ValidationError{Field: section + ".max_file_size", Reason: err.Error()}
		}
		if size > MaxFileSizeCap {
			return &ValidationError{
				Field:  section + ".max_file_size",
				Reason: "exceeds the " + FormatSize(MaxFileSizeCap) + " limit",
			}
		}
	}
	// token_store は [default] でのみ検証する。プロファイル側の値は無視
	// されるため、誤った値でもエラーにしない。
	if section == "default" && s.TokenStore != "" {
		if !contains(validTokenStores, strings.ToLower(s.TokenStore)) {
			return &ValidationError{
				Field:  "default.token_store",
				Reason: "must be one of: " + strings.Join(validTokenStores, ", "),
			}
		}
	}
	return nil
}

// ValidateOutput は output の値を検証する（大文字小文字は区別しない）。
func ValidateOutput(v string) error {
	if contains(validOutputs, strings.ToLower(v)) {
		return nil
	}
	return &ValidationError{
		Field:  "output",
		Reason: "'" + v + "' is not one of: " + strings.Join(validOutputs, ", "),
	}
}

// ValidateSearchTypes は search_types の各要素を検証する。
func ValidateSearchTypes(types []string) error {
	for _, v := range types {
		if !contains(validSearchTypes, strings.ToLower(v)) {
			return &ValidationError{
				Field:  "search_types",
				Reason: "'" + v + "' is not one of: " + strings.Join(validSearchTypes, ", "),
			}
		}
	}
	return nil
}

// TokenStore は [default] の token_store を返す。未設定なら空文字列。
func (f *File) TokenStore() string {
	return strings.ToLower(f.Default.TokenStore)
}

// HasProfile はプロファイルが定義されているかを返す。
func (f *File) HasProfile(name string) bool {
	_, ok := f.Profiles[name]
	return ok
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
