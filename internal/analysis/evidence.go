package analysis

import (
	"regexp"
	"strings"
)

// EvidenceMaxLen caps the length of an evidence snippet.
const EvidenceMaxLen = 120

// Window around a raw-text occurrence when no whole sentence contains the skill.
const (
	evidenceCharsBefore = 40
	evidenceCharsAfter  = 50
)

var sentenceBoundary = regexp.MustCompile(`[.!?]\s+`)

// FindEvidence returns a snippet from resumeText where skill appears,
// preferring the first whole sentence that mentions it, falling back to a
// character window around the first occurrence. Returns "" when the skill
// does not occur at all.
func FindEvidence(resumeText, skill string) string {
	if resumeText == "" || skill == "" {
		return ""
	}
	lowerResume := strings.ToLower(resumeText)
	lowerSkill := strings.ToLower(skill)

	for _, sentence := range splitSentences(resumeText) {
		if strings.Contains(strings.ToLower(sentence), lowerSkill) {
			return truncateAtWord(sentence, EvidenceMaxLen)
		}
	}

	idx := strings.Index(lowerResume, lowerSkill)
	if idx == -1 {
		return ""
	}
	return contextWindow(resumeText, idx, len(skill))
}

// contextWindow returns a capped snippet around the occurrence at idx, with
// ellipses marking truncation at either edge.
func contextWindow(text string, idx, skillLen int) string {
	start := idx - evidenceCharsBefore
	if start < 0 {
		start = 0
	}
	end := idx + skillLen + evidenceCharsAfter
	if end > len(text) {
		end = len(text)
	}
	snippet := strings.TrimSpace(text[start:end])
	if start > 0 {
		snippet = "..." + snippet
	}
	if end < len(text) {
		snippet += "..."
	}
	if len(snippet) > EvidenceMaxLen {
		snippet = snippet[:EvidenceMaxLen-3] + "..."
	}
	return snippet
}

// splitSentences splits on ".", "!" or "?" followed by whitespace, keeping
// the terminating punctuation with each sentence.
func splitSentences(text string) []string {
	raw := strings.TrimSpace(text)
	if raw == "" {
		return nil
	}
	var sentences []string
	prev := 0
	for _, loc := range sentenceBoundary.FindAllStringIndex(raw, -1) {
		sentence := strings.TrimSpace(raw[prev : loc[0]+1])
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		prev = loc[1]
	}
	if tail := strings.TrimSpace(raw[prev:]); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}

// truncateAtWord shortens s to at most max characters, cutting at the last
// word boundary before the limit and appending an ellipsis.
func truncateAtWord(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	cut := s[:max-3]
	if idx := strings.LastIndexAny(cut, " \t\n"); idx > 0 {
		cut = strings.TrimRight(cut[:idx], " \t\n")
	}
	return cut + "..."
}
