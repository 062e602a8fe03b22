package matching

import (
	"strings"

	"polifund/grant-matcher/internal/models"
)

var whitespaceReplacer = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")

// Normalize lower-cases, trims, and collapses runs of whitespace so
// that keyword comparisons ignore formatting differences.
func Normalize(s string) string {
	s = whitespaceReplacer.Replace(s)
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}

// TokenSet is the searchable set of normalized company tokens.
type TokenSet map[string]struct{}

func (t TokenSet) add(s string) {
	if n := Normalize(s); n != "" {
		t[n] = struct{}{}
	}
}

// CompanyTokens builds the token set from a company's items, matching
// keywords, and business types.
func CompanyTokens(company *models.CompanyProfile) TokenSet {
	set := make(TokenSet)
	for _, v := range company.Items {
		set.add(v)
	}
	for _, v := range company.IndustryKeywords {
		set.add(v)
	}
	for _, v := range company.BizType {
		set.add(v)
	}
	return set
}

// KeywordMatcher decides whether a criteria keyword matches the
// company's token set. Isolated behind a func type so the containment
// strategy can be swapped for token-set or fuzzy matching later.
type KeywordMatcher func(keyword string, tokens TokenSet) bool

// MatchBidirectional reports a match when the normalized keyword is a
// substring of any token or vice versa. Partial phrase overlaps count
// in either direction; an empty keyword never matches.
func MatchBidirectional(keyword string, tokens TokenSet) bool {
	k := Normalize(keyword)
	if k == "" {
		return false
	}
	for t := range tokens {
		if strings.Contains(t, k) || strings.Contains(k, t) {
			return true
		}
	}
	return false
}

// containsEither is the same bidirectional containment between two
// plain strings, used by the business-type and region filters.
func containsEither(a, b string) bool {
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}
