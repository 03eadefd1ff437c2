//go:build darwin

package token

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// keychainBackend は macOS Keychain にトークンを保存する。
// service 固定、account = プロファイル名（未指定なら default）。
type keychainBackend struct {
	account string
}

func newKeychain(profileName string) (Backend, error) {
	return &keychainBackend{account: accountName(profileName)}, nil
}

func (b *keychainBackend) Store(value string) error {
	if err := keyring.Set(Service, b.account, value); err != nil {
		return fmt.Errorf("failed to store token in Keychain: %w", err)
	}
	return nil
}

func (b *keychainBackend) Load() (string, error) {
	value, err := keyring.Get(Service, b.account)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", &MissingTokenError{Location: b.Location()}
		}
		return "", fmt.Errorf("failed to read token from Keychain: %w", err)
	}
	return value, nil
}

// Delete はべき等。エントリが無ければ成功扱い。
func (b *keychainBackend) Delete() error {
	err := keyring.Delete(Service, b.account)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to delete token from Keychain: %w", err)
	}
	return nil
}

func (b *keychainBackend) Location() Location {
	return Location{Source: SourceKeychain, Account: b.account}
}
