package secrets

import (
	"errors"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// "Service" groups the app's secrets in the OS keychain.
	KeyringService = "careerlift"

	sessionCookieAccount = "careerlift:search:session-cookie"
)

// GetSessionCookie returns the stored target-site session cookie, or "" when
// none has been set. The fetch client works without one; a cookie just makes
// the guest endpoints less likely to challenge.
func GetSessionCookie() string {
	v, err := keyring.Get(KeyringService, sessionCookieAccount)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(v)
}

func SetSessionCookie(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("session cookie is empty")
	}
	return keyring.Set(KeyringService, sessionCookieAccount, strings.TrimSpace(value))
}

func DeleteSessionCookie() error {
	return keyring.Delete(KeyringService, sessionCookieAccount)
}
