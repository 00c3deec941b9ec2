package auction

import (
	"strings"
	"unicode"
)

// DefaultMinTokenLen is the shortest token kept by the tokenizer. Shorter
// fragments ("a", "of", "to") behave like stopwords without a stopword list.
const DefaultMinTokenLen = 3

// Tokenize extracts normalized keyword tokens from the given texts:
// lower-cased, split on non-alphanumeric boundaries, deduplicated, and
// filtered to tokens of at least minLen runes. minLen <= 0 falls back to
// DefaultMinTokenLen.
func Tokenize(minLen int, texts ...string) []string {
	if minLen <= 0 {
		minLen = DefaultMinTokenLen
	}

	seen := make(map[string]struct{})
	var tokens []string
	for _, text := range texts {
		fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		for _, f := range fields {
			if len([]rune(f)) < minLen {
				continue
			}
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// TokenSet builds a membership set from Tokenize output.
func TokenSet(minLen int, texts ...string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range Tokenize(minLen, texts...) {
		set[tok] = struct{}{}
	}
	return set
}

// SharesToken reports whether any token extracted from texts is present in set.
func SharesToken(set map[string]struct{}, minLen int, texts ...string) bool {
	if len(set) == 0 {
		return false
	}
	for _, tok := range Tokenize(minLen, texts...) {
		if _, ok := set[tok]; ok {
			return true
		}
	}
	return false
}
