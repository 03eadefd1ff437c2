package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/slafling/slafling/internal/config"
	"github.com/slafling/slafling/internal/debug"
	"github.com/slafling/slafling/internal/resolve"
	"github.com/slafling/slafling/internal/slack"
)

var (
	Version = "dev"
)

// newClient はテストで差し替えられるようにパッケージ変数にしている
var newClient = slack.New

var rootCmd = &cobra.Command{
	Use:   "slafling",
	Short: "Fling messages to Slack",
	Long: `Slafling sends text and files to one pre-configured Slack channel.

Destinations are never chosen ad hoc: each invocation targets the channel
of the selected profile (or the default section) in the config file.
Tokens are stored in the macOS Keychain or an owner-only token file,
never in the config file itself.

In headless mode (--headless or SLAFLING_HEADLESS=1) the config file is
never read; all settings come from SLAFLING_* environment variables.`,
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// デバッグモードの有効化
		if debugFlag, _ := cmd.Flags().GetBool("debug"); debugFlag {
			debug.Enable()
		}
	},
	RunE: runSend,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newOrchestrator はモードを一度だけ確定させて Orchestrator を作る。
func newOrchestrator(cmd *cobra.Command) *resolve.Orchestrator {
	headless, _ := cmd.Flags().GetBool("headless")
	mode := config.DetectMode(headless)
	debug.Log("mode resolved", "mode", mode.String())
	return resolve.New(mode)
}

func profileFlag(cmd *cobra.Command) string {
	v, _ := cmd.Flags().GetString("profile")
	return v
}

// profileRequested はフラグか環境変数でプロファイルが指定されているか
func profileRequested(cmd *cobra.Command) bool {
	return profileFlag(cmd) != "" || os.Getenv(config.EnvProfile) != ""
}

func init() {
	// グローバルフラグ
	rootCmd.PersistentFlags().StringP("profile", "p", "", "Configuration profile to use")
	rootCmd.PersistentFlags().Bool("headless", false, "Read all settings from SLAFLING_* environment variables")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	// 送信用フラグ（ルートコマンド）
	rootCmd.Flags().StringVarP(&sendText, "text", "t", "", "Message text (empty value reads stdin)")
	rootCmd.Flags().StringVarP(&sendFile, "file", "f", "", "File to upload (empty value reads stdin)")
	rootCmd.Flags().StringVar(&sendFilename, "filename", "upload", "Filename for stdin uploads")
	rootCmd.Flags().BoolVarP(&sendYes, "yes", "y", false, "Skip the confirmation prompt")

	// サブコマンド登録
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(validateCmd)
}
