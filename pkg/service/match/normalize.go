package match

import "strings"

// aliasDomains maps consumer-mail domain spellings to the canonical form
// the directory service registers accounts under. The two sources were
// observed to disagree on which spelling they store.
var aliasDomains = map[string]string{
	"@gmail.com": "@googlemail.com",
}

// NormalizeEmail returns the canonical comparison key for an address:
// lower-cased, with known alias domains rewritten to their canonical
// spelling. An empty input is returned unchanged; callers treat it as
// non-matchable.
func NormalizeEmail(email string) string {
	if email == "" {
		return email
	}
	normalized := strings.ToLower(email)
	for alias, canonical := range aliasDomains {
		if strings.HasSuffix(normalized, alias) {
			return strings.TrimSuffix(normalized, alias) + canonical
		}
	}
	return normalized
}
