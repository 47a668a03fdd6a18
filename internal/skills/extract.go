package skills

import (
	"sort"
	"strings"
)

// Extractor matches text against an injected dictionary. The dictionary is
// read-only after construction, so a single Extractor is safe for concurrent
// use across requests.
type Extractor struct {
	dict *Dictionary
}

// NewExtractor creates an Extractor over the given dictionary. A nil
// dictionary falls back to the default one.
func NewExtractor(dict *Dictionary) *Extractor {
	if dict == nil {
		dict = DefaultDictionary()
	}
	return &Extractor{dict: dict}
}

// Extract returns the sorted list of distinct dictionary skills present in
// text. Multi-word phrases are matched by substring containment against the
// normalized text; single tokens by set membership. Empty or whitespace-only
// text yields an empty result.
func (e *Extractor) Extract(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	normalized := NormalizeText(text)
	tokens := Tokenize(text)
	found := make(map[string]struct{})

	for _, phrase := range e.dict.Phrases() {
		if strings.Contains(normalized, phrase) {
			found[phrase] = struct{}{}
		}
	}
	for token := range tokens {
		if e.dict.HasWord(token) || e.dict.HasKeyword(token) {
			found[token] = struct{}{}
		}
	}

	matched := make([]string, 0, len(found))
	for skill := range found {
		matched = append(matched, skill)
	}
	sort.Strings(matched)
	return matched
}

// Dictionary returns the dictionary this extractor matches against.
func (e *Extractor) Dictionary() *Dictionary {
	return e.dict
}
