package authy

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Resolution is the issuer and account name settled for one token. Resolve
// produces it instead of rewriting the Token, so the same export can be
// resolved repeatedly with different prompting.
type Resolution struct {
	Issuer  string
	Account string
}

// InferIssuer picks the most trustworthy issuer a token offers, without any
// cosmetic rewriting. Order: the explicit issuer field, the logo tag, the
// account type, the part of the name before the first ":", the whole name.
// Logo and account type hints are skipped when they carry the generic
// authenticator placeholders instead of a service name.
func InferIssuer(t Token) string {

	if t.Issuer != "" {
		return t.Issuer
	}
	if t.Logo != "" && !strings.HasPrefix(t.Logo, "authenticator_") {
		return t.Logo
	}
	if t.AccountType != "" && !strings.HasPrefix(t.AccountType, "authenticator") {
		return t.AccountType
	}
	if i := strings.IndexByte(t.Name, ':'); i >= 0 {
		if before := strings.TrimSpace(t.Name[:i]); before != "" {
			return before
		}
	}

	return strings.TrimSpace(t.Name)
}

// TitleWords uppercases the first letter of every word that starts with a
// lowercase letter and leaves everything else alone, so acronyms like "ACME"
// or mixed names like "eBay" survive. Whitespace runs collapse to single
// spaces.
func TitleWords(s string) string {

	words := strings.Fields(s)
	for i, word := range words {
		first, size := utf8.DecodeRuneInString(word)
		if unicode.IsLower(first) {
			words[i] = string(unicode.ToUpper(first)) + word[size:]
		}
	}

	return strings.Join(words, " ")
}

// Resolve settles the issuer and account name for a single token. A non-nil
// ask lets the operator confirm the issuer of tokens that carry no explicit
// one, and the account name when it still looks like it embeds an issuer
// after cleaning. An empty reply keeps the proposal. With ask == nil every
// proposal is accepted unattended.
func Resolve(t Token, ask Prompter) (Resolution, error) {

	issuer := TitleWords(InferIssuer(t))

	if ask != nil && t.Issuer == "" {
		logger.Warnf("the account '%s' does not have an issuer", t.Name)
		logger.Infof("proposed issuer: %s", issuer)

		reply, err := ask("press Enter to accept proposed issuer, or type a new one: ")
		if err != nil {
			return Resolution{}, err
		}
		if reply != "" {
			issuer = reply
		}
	}

	account := StripIssuerFromName(t.Name, issuer)
	if account == "" {
		account = strings.TrimSpace(t.Name)
	}

	if ask != nil && strings.Contains(account, ": ") {
		logger.Warnf("the account '%s' may contain the issuer", t.Name)

		reply, err := ask("press Enter to leave the account name untouched, or type a new one: ")
		if err != nil {
			return Resolution{}, err
		}
		if reply != "" {
			account = reply
		}
	}

	return Resolution{Issuer: issuer, Account: account}, nil
}
