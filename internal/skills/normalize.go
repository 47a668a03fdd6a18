package skills

import (
	"regexp"
	"strings"
)

var nonWordOrSpace = regexp.MustCompile(`[^\w\s]`)

// NormalizeText lowercases text and replaces punctuation with spaces so
// tokenization sees only word characters separated by single spaces.
func NormalizeText(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	lower := strings.ToLower(strings.TrimSpace(text))
	normalized := nonWordOrSpace.ReplaceAllString(lower, " ")
	return strings.Join(strings.Fields(normalized), " ")
}

// Tokenize returns the set of lowercase tokens in text: every word plus every
// adjacent-word bigram. Order is not meaningful.
func Tokenize(text string) map[string]struct{} {
	normalized := NormalizeText(text)
	tokens := make(map[string]struct{})
	if normalized == "" {
		return tokens
	}
	words := strings.Split(normalized, " ")
	for _, w := range words {
		tokens[w] = struct{}{}
	}
	for i := 0; i < len(words)-1; i++ {
		tokens[words[i]+" "+words[i+1]] = struct{}{}
	}
	return tokens
}
