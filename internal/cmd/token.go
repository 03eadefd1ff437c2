package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slafling/slafling/internal/cmdutil"
	"github.com/slafling/slafling/internal/config"
	"github.com/slafling/slafling/internal/profile"
	"github.com/slafling/slafling/internal/resolve"
	"github.com/slafling/slafling/internal/token"
	"github.com/slafling/slafling/internal/ui"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage stored tokens",
	Long: `Manage the stored bot token for a profile.

The storage backend is the token_store from the [default] section of the
config file (Keychain on macOS by default, an owner-only token file
elsewhere). Tokens are stored per profile; without --profile the default
slot is used.`,
}

var tokenSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store a token",
	Args:  cobra.NoArgs,
	RunE:  runTokenSet,
}

var tokenShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show where the token is stored (never the value)",
	Args:  cobra.NoArgs,
	RunE:  runTokenShow,
}

var tokenDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a stored token",
	Args:  cobra.NoArgs,
	RunE:  runTokenDelete,
}

func init() {
	tokenCmd.AddCommand(tokenSetCmd)
	tokenCmd.AddCommand(tokenShowCmd)
	tokenCmd.AddCommand(tokenDeleteCmd)
}

// tokenBackend は token サブコマンド共通の解決: モードガード、
// プロファイル検証、token_store の決定、バックエンドのオープン。
func tokenBackend(cmd *cobra.Command, operation string) (token.Backend, string, error) {
	o := newOrchestrator(cmd)
	if err := o.RequireNormal(operation); err != nil {
		return nil, "", err
	}

	profileName, err := profile.Resolve(profileFlag(cmd))
	if err != nil {
		return nil, "", err
	}

	settings, err := loadTokenSettings(o)
	if err != nil {
		return nil, "", err
	}

	backend, err := o.Tokens().Backend(settings, profileName)
	if err != nil {
		return nil, "", err
	}
	return backend, profileName, nil
}

// loadTokenSettings は token_store の決定のためだけに設定を読む。
// 設定ファイルがまだ無ければ nil を返し、プラットフォーム既定に落ちる。
func loadTokenSettings(o *resolve.Orchestrator) (*config.Settings, error) {
	file, err := o.LoadConfig()
	if err != nil {
		var notFound *config.NotFoundError
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, err
	}
	return &config.Settings{TokenStore: file.TokenStore()}, nil
}

func runTokenSet(cmd *cobra.Command, args []string) error {
	backend, _, err := tokenBackend(cmd, "token set")
	if err != nil {
		return err
	}

	if !cmdutil.StdinIsTerminal() {
		return errors.New("token set requires interactive input (stdin must be a TTY)")
	}
	value, err := ui.Password("Bot Token (xoxb-...):")
	if err != nil {
		return err
	}
	if value == "" {
		return errors.New("token is required")
	}

	if err := backend.Store(value); err != nil {
		return err
	}
	ui.Success("token stored in %s", backend.Location())
	return nil
}

func runTokenShow(cmd *cobra.Command, args []string) error {
	backend, _, err := tokenBackend(cmd, "token show")
	if err != nil {
		return err
	}

	loc := backend.Location()
	// 値は読むが表示しない。存在確認のためだけに Load する。
	if _, err := backend.Load(); err != nil {
		var missing *token.MissingTokenError
		if errors.As(err, &missing) {
			fmt.Printf("not configured: %v\n", err)
			return nil
		}
		return err
	}

	fmt.Printf("source: %s\n", loc.Source)
	fmt.Printf("location: %s\n", loc)
	return nil
}

func runTokenDelete(cmd *cobra.Command, args []string) error {
	backend, profileName, err := tokenBackend(cmd, "token delete")
	if err != nil {
		return err
	}

	// バックエンドの Delete はべき等なので、先に存在を確認して
	// 「何も消していない」ことをユーザーに伝える。
	if _, err := backend.Load(); err != nil {
		var missing *token.MissingTokenError
		if errors.As(err, &missing) {
			name := profileName
			if name == "" {
				name = token.DefaultAccount
			}
			return fmt.Errorf("no stored token found for profile '%s'", name)
		}
		return err
	}

	if err := backend.Delete(); err != nil {
		return err
	}
	ui.Success("deleted token from %s", backend.Location())
	return nil
}
