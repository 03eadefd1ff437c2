package token

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// fileBackend はトークンを1ファイル1トークンで保存する。
// パス: <データディレクトリ>/slafling/tokens/<プロファイル名 or default>
type fileBackend struct {
	path    string
	account string
}

func newFile(profileName string) (Backend, error) {
	dir, err := tokenDir()
	if err != nil {
		return nil, err
	}
	account := accountName(profileName)
	return &fileBackend{
		path:    filepath.Join(dir, account),
		account: account,
	}, nil
}

// tokenDir はプラットフォームのユーザーデータディレクトリ配下の
// トークン保存先を返す。XDG_DATA_HOME があれば常にそれを優先する。
func tokenDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, Service, "tokens"), nil
	}
	base, err := dataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, Service, "tokens"), nil
}

// Store はトークンを一時ファイルに書いてから rename で配置する。
// 途中で落ちても他プロセスの Load が途中までのファイルを観測することはない。
// 作成時点でオーナーのみ読み書き可の 0600 にする。
func (b *fileBackend) Store(value string) error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	// 同一ディレクトリに作らないと rename がアトミックにならない
	f, err := os.CreateTemp(dir, ".tmp-")
	if err != nil {
		return wrapPermission(dir, fmt.Errorf("failed to create temp file: %w", err))
	}
	tmp := f.Name()

	ok := false
	defer func() {
		if !ok {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if err := f.Chmod(0o600); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", tmp, err)
	}
	if _, err := f.WriteString(value); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to sync token file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close token file: %w", err)
	}
	if err := os.Rename(tmp, b.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to rename token file into place: %w", err)
	}

	ok = true
	return nil
}

func (b *fileBackend) Load() (string, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &MissingTokenError{Location: b.Location()}
		}
		return "", wrapPermission(b.path, err)
	}
	value := strings.TrimSpace(string(data))
	if value == "" {
		return "", &MissingTokenError{Location: b.Location()}
	}
	return value, nil
}

// Delete はべき等。ファイルが無ければ成功扱い。
func (b *fileBackend) Delete() error {
	err := os.Remove(b.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return wrapPermission(b.path, err)
	}
	return nil
}

func (b *fileBackend) Location() Location {
	return Location{Source: SourceFile, Account: b.account, Path: b.path}
}

func wrapPermission(path string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return &PermissionError{Path: path, Err: err}
	}
	return err
}
