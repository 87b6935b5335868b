// Package authy understands decrypted Authy token exports: the JSON shape
// they arrive in and the issuer/account bookkeeping needed to turn each
// entry into a usable TOTP credential.
package authy

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "authy")

// Token is a single decrypted TOTP entry. Fields mirror the export file and
// are never modified; resolved issuer and account names live in Resolution.
type Token struct {
	Name          string `json:"name"`
	Issuer        string `json:"issuer"`
	Logo          string `json:"logo"`
	AccountType   string `json:"account_type"`
	DecryptedSeed string `json:"decrypted_seed"`
	Digits        int    `json:"digits"`
}

// Export is the top-level document of a decrypted Authy export.
type Export struct {
	Tokens []Token `json:"decrypted_authenticator_tokens"`
}

// DigitsOrDefault returns the token's OTP length, assuming the usual six
// digits when the export carries none.
func (t Token) DigitsOrDefault() int {
	if t.Digits == 0 {
		return 6
	}
	return t.Digits
}

// LoadExport reads and decodes the export file at path. Decoding errors keep
// their json error types available for errors.As.
func LoadExport(path string) (*Export, error) {

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var export Export
	if err := json.Unmarshal(content, &export); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	logger.Debugf("loaded %d token(s) from %s", len(export.Tokens), path)

	return &export, nil
}

var ErrNoTokens = errors.New("no tokens found in export")
