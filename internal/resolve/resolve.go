// Package resolve drives one invocation's configuration and credential
// resolution into a single Context.
//
// モードは生成時に一度だけ決まり、以後は変わらない。途中で再判定したり
// もう一方のモードにフォールバックすることはない。
package resolve

import (
	"fmt"

	"github.com/slafling/slafling/internal/config"
	"github.com/slafling/slafling/internal/profile"
	"github.com/slafling/slafling/internal/token"
)

// ModeMismatchError は設定ファイルを必要とする操作がヘッドレスモードで
// 要求されたことを表す。ConfigStore やバックエンドに触れる前に返す。
type ModeMismatchError struct {
	Operation string
}

func (e *ModeMismatchError) Error() string {
	return fmt.Sprintf("%s is not available in headless mode", e.Operation)
}

// Context は解決済みの実行コンテキスト。外部の送信・検索クライアントに
// そのまま渡される。エラー時には部分的な Context を決して公開しない。
type Context struct {
	Mode     config.Mode
	Profile  string // "" は default
	Settings *config.Settings
	Token    string
}

// Orchestrator は ConfigStore → ProfileResolver → TokenResolver の順で
// 解決を進める。順序は固定で、後段が先回りして読むことはない。
type Orchestrator struct {
	mode       config.Mode
	configPath string
	tokens     *token.Resolver
}

// Option は Orchestrator の構成オプション
type Option func(*Orchestrator)

// WithConfigPath は設定ファイルのパスを差し替える（テスト用）。
func WithConfigPath(path string) Option {
	return func(o *Orchestrator) { o.configPath = path }
}

// WithTokenResolver はトークンリゾルバを差し替える（テスト用）。
func WithTokenResolver(r *token.Resolver) Option {
	return func(o *Orchestrator) { o.tokens = r }
}

// New はモードを確定させた Orchestrator を作る。
func New(mode config.Mode, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		mode:   mode,
		tokens: &token.Resolver{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Mode は確定済みのモードを返す。
func (o *Orchestrator) Mode() config.Mode { return o.mode }

// Tokens はトークンリゾルバを返す。token set/delete 等の管理操作が使う。
func (o *Orchestrator) Tokens() *token.Resolver { return o.tokens }

// RequireNormal は設定ファイル前提の操作（init / token / validate）の
// ガード。ヘッドレスモードなら設定にもバックエンドにも触れずに失敗する。
func (o *Orchestrator) RequireNormal(operation string) error {
	if o.mode == config.ModeHeadless {
		return &ModeMismatchError{Operation: operation}
	}
	return nil
}

// ConfigPath は使用する設定ファイルのパスを返す。
func (o *Orchestrator) ConfigPath() (string, error) {
	if o.configPath != "" {
		return o.configPath, nil
	}
	return config.DefaultPath()
}

// LoadConfig は設定を読み込む（通常モード専用）。
func (o *Orchestrator) LoadConfig() (*config.File, error) {
	path, err := o.ConfigPath()
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

// ResolveSend は送信操作のための完全な解決を行う。
func (o *Orchestrator) ResolveSend(profileFlag string) (*Context, error) {
	return o.resolve(profileFlag, true)
}

// ResolveSearch は検索操作のための解決を行う。channel は要求しない。
func (o *Orchestrator) ResolveSearch(profileFlag string) (*Context, error) {
	return o.resolve(profileFlag, false)
}

func (o *Orchestrator) resolve(profileFlag string, requireChannel bool) (*Context, error) {
	if o.mode == config.ModeHeadless {
		return o.resolveHeadless(requireChannel)
	}
	return o.resolveNormal(profileFlag, requireChannel)
}

// resolveHeadless は設定ファイルの有無や内容に関係なく、環境変数のみで
// 解決する。
func (o *Orchestrator) resolveHeadless(requireChannel bool) (*Context, error) {
	settings, err := config.AssembleFromEnv()
	if err != nil {
		return nil, err
	}
	if requireChannel && settings.Channel == "" {
		return nil, config.ErrMissingChannel
	}

	value, err := o.tokens.Resolve(o.mode, settings, "")
	if err != nil {
		return nil, err
	}

	return &Context{
		Mode:     o.mode,
		Settings: settings,
		Token:    value,
	}, nil
}

func (o *Orchestrator) resolveNormal(profileFlag string, requireChannel bool) (*Context, error) {
	file, err := o.LoadConfig()
	if err != nil {
		return nil, err
	}

	profileName, err := profile.Resolve(profileFlag)
	if err != nil {
		return nil, err
	}

	var settings *config.Settings
	if requireChannel {
		settings, err = config.Merge(file, profileName)
	} else {
		settings, err = config.MergePartial(file, profileName)
	}
	if err != nil {
		return nil, err
	}

	if err := config.ApplyEnvOverrides(settings); err != nil {
		return nil, err
	}

	value, err := o.tokens.Resolve(o.mode, settings, profileName)
	if err != nil {
		return nil, err
	}

	return &Context{
		Mode:     o.mode,
		Profile:  profileName,
		Settings: settings,
		Token:    value,
	}, nil
}
