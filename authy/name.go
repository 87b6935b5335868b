package authy

import (
	"regexp"
	"strings"
)

// StripIssuerFromName drops a leading issuer from an account name, together
// with the ":", "-" or whitespace separator that follows it. The match is
// case-insensitive and the issuer is taken as literal text, so issuers
// containing regexp metacharacters stay harmless.
func StripIssuerFromName(name, issuer string) string {

	if name == "" {
		return ""
	}
	if issuer == "" {
		return strings.TrimSpace(name)
	}

	// \s alone is ASCII-only here; \p{Zs} keeps the separator as wide as
	// the Unicode-aware trimming in the rest of the pipeline.
	prefix := regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(issuer) + `[\s\p{Zs}]*[:\-\s\p{Zs}][\s\p{Zs}]*`)

	return strings.TrimSpace(prefix.ReplaceAllString(name, ""))
}
