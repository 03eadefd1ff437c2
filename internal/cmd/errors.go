package cmd

import (
	"errors"

	"github.com/slafling/slafling/internal/config"
	"github.com/slafling/slafling/internal/profile"
	"github.com/slafling/slafling/internal/resolve"
	"github.com/slafling/slafling/internal/token"
	"github.com/slafling/slafling/internal/ui"
)

// ExitCode はエラーの終了コード
type ExitCode int

const (
	ExitOK           ExitCode = 0
	ExitError        ExitCode = 1
	ExitToken        ExitCode = 2
	ExitNotFound     ExitCode = 3
	ExitConfig       ExitCode = 4
	ExitModeMismatch ExitCode = 5
)

// HandleError はエラーを処理して適切なメッセージを表示する。
// エラーメッセージにトークンの値が載ることはない（各エラー型が保証する）。
func HandleError(err error) ExitCode {
	if err == nil {
		return ExitOK
	}

	ui.Error("%v", err)
	return classify(err)
}

func classify(err error) ExitCode {
	var (
		mismatch    *resolve.ModeMismatchError
		missing     *token.MissingTokenError
		unavailable *token.BackendUnavailableError
		permission  *token.PermissionError
		unknown     *config.UnknownProfileError
		notFound    *config.NotFoundError
		readErr     *config.ReadError
		parseErr    *config.ParseError
		validation  *config.ValidationError
		badName     *profile.InvalidNameError
	)

	switch {
	case errors.As(err, &mismatch):
		return ExitModeMismatch
	case errors.As(err, &missing),
		errors.As(err, &unavailable),
		errors.As(err, &permission):
		return ExitToken
	case errors.As(err, &unknown):
		return ExitNotFound
	case errors.As(err, &notFound),
		errors.As(err, &readErr),
		errors.As(err, &parseErr),
		errors.As(err, &validation),
		errors.As(err, &badName),
		errors.Is(err, config.ErrMissingChannel):
		return ExitConfig
	default:
		return ExitError
	}
}
