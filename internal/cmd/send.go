package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/slafling/slafling/internal/cmdutil"
	"github.com/slafling/slafling/internal/config"
	"github.com/slafling/slafling/internal/debug"
	"github.com/slafling/slafling/internal/ui"
)

var (
	sendText     string
	sendFile     string
	sendFilename string
	sendYes      bool
)

type fileInput struct {
	name string
	data []byte
}

type sendInput struct {
	text string
	file *fileInput
}

func runSend(cmd *cobra.Command, args []string) error {
	o := newOrchestrator(cmd)

	// ヘッドレスモードではプロファイルは存在しない
	if o.Mode() == config.ModeHeadless && profileRequested(cmd) {
		ui.Warning("--profile is ignored in headless mode")
	}

	rc, err := o.ResolveSend(profileFlag(cmd))
	if err != nil {
		return err
	}
	debug.Log("send resolved", "channel", rc.Settings.Channel, "profile", rc.Profile)

	input, err := readSendInput(cmd)
	if err != nil {
		return err
	}

	// 確認プロンプトより先に入力を検証する。承認させてから
	// サイズ超過で弾くのは二度手間になる。
	if input.file != nil {
		size := int64(len(input.file.data))
		if size > rc.Settings.MaxFileSize {
			return fmt.Errorf("file size (%s) exceeds limit (%s)",
				config.FormatSize(size), config.FormatSize(rc.Settings.MaxFileSize))
		}
	} else if input.text == "" {
		return errors.New("message is empty")
	}

	if rc.Settings.Confirm && !sendYes {
		if err := confirmSend(rc.Settings.Channel, input); err != nil {
			return err
		}
	}

	client := newClient(rc.Token)
	ctx := cmd.Context()

	if input.file != nil {
		return client.UploadFile(ctx, rc.Settings.Channel, input.file.name, input.file.data, input.text)
	}
	return client.PostMessage(ctx, rc.Settings.Channel, input.text)
}

// readSendInput は -t / -f / 標準入力から送信内容を組み立てる。
// フラグなし + パイプ入力は暗黙の -t として扱う。
func readSendInput(cmd *cobra.Command) (*sendInput, error) {
	textSet := cmd.Flags().Changed("text")
	fileSet := cmd.Flags().Changed("file")

	if !textSet && !fileSet {
		if cmdutil.StdinIsTerminal() {
			return nil, errors.New("no input provided (use -t, -f, or pipe via stdin)")
		}
		text, err := readStdinText()
		if err != nil {
			return nil, err
		}
		return &sendInput{text: text}, nil
	}

	textStdin := textSet && sendText == ""
	fileStdin := fileSet && sendFile == ""
	if textStdin && fileStdin {
		return nil, errors.New("both --text and --file require stdin; provide a value for at least one")
	}

	input := &sendInput{}

	if fileSet {
		if fileStdin {
			if cmdutil.StdinIsTerminal() {
				return nil, errors.New("--file requires stdin input but stdin is a terminal")
			}
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return nil, fmt.Errorf("failed to read stdin: %w", err)
			}
			input.file = &fileInput{name: sendFilename, data: data}
		} else {
			data, err := os.ReadFile(sendFile)
			if err != nil {
				return nil, fmt.Errorf("failed to read file %s: %w", sendFile, err)
			}
			input.file = &fileInput{name: filepath.Base(sendFile), data: data}
		}
	}

	if textSet {
		if textStdin {
			if cmdutil.StdinIsTerminal() {
				return nil, errors.New("--text requires stdin input but stdin is a terminal")
			}
			text, err := readStdinText()
			if err != nil {
				return nil, err
			}
			input.text = text
		} else {
			input.text = sendText
		}
	}

	return input, nil
}

func readStdinText() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRightFunc(string(data), unicode.IsSpace), nil
}

// confirmSend は confirm 設定が有効なときの対話確認。
// TTY がなければ確認できないのでエラーにする（-y で抑止できる）。
func confirmSend(channel string, input *sendInput) error {
	if !cmdutil.StdinIsTerminal() {
		return errors.New("confirm is enabled but stdin is not a TTY (pass -y to skip confirmation)")
	}

	var summary string
	if input.file != nil {
		summary = "file: " + input.file.name
		if input.text != "" {
			summary += "\n> " + input.text
		}
	} else {
		summary = "> " + input.text
	}

	fmt.Fprintf(os.Stderr, "Send to %s:\n%s\n", channel, summary)
	ok, err := ui.Confirm("Send?", false)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("aborted")
	}
	return nil
}
