package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FallbackSlug is used when a name has no slug-able characters.
const FallbackSlug = "listing"

// Slugify converts a display name into a URL-safe token: diacritics are
// folded, letters lowercased, and every run of other characters collapsed
// into a single hyphen.
func Slugify(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	pendingSep := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}

	if b.Len() == 0 {
		return FallbackSlug
	}
	return b.String()
}

// SlugPattern matches the token itself and any numbered variant of it,
// case-insensitively. The repository uses the same expression in SQL.
func SlugPattern(token string) string {
	return `^` + regexp.QuoteMeta(token) + `(-[0-9]+)?$`
}

// AssignSlug picks the slug for name given the slugs already stored that
// match it. The base token is used as-is unless it is taken; otherwise the
// result is token-(k+1) where k is the number of matching slugs.
//
// The count is not a max: if token-2 was deleted while token-3 survives,
// the next assignment is token-3 again and the unique index rejects it.
func AssignSlug(existing []string, name string) string {
	token := Slugify(name)
	pattern := regexp.MustCompile(`(?i)` + SlugPattern(token))

	taken := false
	matches := 0
	for _, s := range existing {
		if !pattern.MatchString(s) {
			continue
		}
		matches++
		if strings.EqualFold(s, token) {
			taken = true
		}
	}

	if !taken {
		return token
	}
	return fmt.Sprintf("%s-%d", token, matches+1)
}
