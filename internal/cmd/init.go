package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slafling/slafling/internal/cmdutil"
	"github.com/slafling/slafling/internal/config"
	"github.com/slafling/slafling/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file and store a token",
	Long: `Create ~/.config/slafling/config.toml interactively.

The bot token is stored in the platform token store (Keychain on macOS,
an owner-only token file elsewhere), never in the config file.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	o := newOrchestrator(cmd)
	if err := o.RequireNormal("init"); err != nil {
		return err
	}

	path, err := o.ConfigPath()
	if err != nil {
		return err
	}

	if fileExists(path) {
		if !cmdutil.StdinIsTerminal() {
			return fmt.Errorf("%s already exists (run interactively to confirm overwrite)", path)
		}
		ok, err := ui.Confirm(path+" already exists. Overwrite?", false)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("aborted")
		}
	}

	if !cmdutil.StdinIsTerminal() {
		return errors.New("init requires interactive input (stdin must be a TTY)")
	}

	value, err := ui.Password("Bot Token (xoxb-...):")
	if err != nil {
		return err
	}
	if value == "" {
		return errors.New("token is required")
	}

	// 設定ファイルはまだ無いのでプラットフォーム既定のストアに保存する
	backend, err := o.Tokens().Backend(nil, "")
	if err != nil {
		return err
	}
	if err := backend.Store(value); err != nil {
		return err
	}
	ui.Success("token stored in %s", backend.Location())

	// トークンを含まない雛形を書き出す
	if err := config.WriteInit(path); err != nil {
		return err
	}

	fmt.Printf("created %s\n", path)
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
