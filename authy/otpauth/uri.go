// Package otpauth renders TOTP credentials as otpauth:// URIs in the key
// URI format understood by authenticator apps.
package otpauth

import (
	"strconv"
	"strings"
)

const upperhex = "0123456789ABCDEF"

// URI assembles the otpauth line for one credential.
//
// The label is "issuer:account" percent-encoded as a single opaque path
// token, or just the account when there is no issuer. Query parameters keep
// a fixed order: secret, issuer, digits, algorithm. The secret is copied
// through verbatim, empty secret and issuer are dropped, zero digits are
// dropped, and SHA1 is always announced last. The "?" is emitted even when
// only the algorithm follows.
func URI(issuer, account, secret string, digits int) string {

	label := account
	if issuer != "" {
		label = issuer + ":" + account
	}

	params := make([]string, 0, 4)
	if secret != "" {
		params = append(params, "secret="+secret)
	}
	if issuer != "" {
		params = append(params, "issuer="+escape(issuer))
	}
	if digits != 0 {
		params = append(params, "digits="+strconv.Itoa(digits))
	}
	params = append(params, "algorithm=SHA1")

	return "otpauth://totp/" + escape(label) + "?" + strings.Join(params, "&")
}

// escape percent-encodes every byte outside the RFC 3986 unreserved set,
// with uppercase hex digits. url.PathEscape is not strict enough here: it
// leaves ":" and "&" bare, which would split the label or the query.
func escape(s string) string {

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9',
			c == '-', c == '.', c == '_', c == '~':
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
		}
	}

	return b.String()
}
