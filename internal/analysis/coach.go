package analysis

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/skillgap-coach/internal/llm"
)

const (
	// jobExcerptLimit bounds how much of the job description goes into the prompt.
	jobExcerptLimit = 1500
	// maxCoachedSteps caps how many LLM suggestion lines are kept.
	maxCoachedSteps = 6
)

var errNoUsableLines = errors.New("no usable suggestion lines in response")

// coachSteps asks the completion service for an improved suggestion list.
// It returns an explicit error on any failure so the caller can fall back;
// no retry is performed.
func (a *Analyzer) coachSteps(ctx context.Context, jobDescription string, baseline Result) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.llmTimeout)
	defer cancel()

	prompt := buildCoachPrompt(jobDescription, baseline)
	raw, err := a.coach.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, fmt.Errorf("generate suggestions: %w", err)
	}

	steps := parseSuggestionLines(raw)
	if len(steps) == 0 {
		return nil, errNoUsableLines
	}
	if len(steps) > maxCoachedSteps {
		steps = steps[:maxCoachedSteps]
	}
	return steps, nil
}

// buildCoachPrompt assembles the bounded career-coach prompt from the
// baseline result. Score, overlap, and missing lists always come from
// baseline for consistency.
func buildCoachPrompt(jobDescription string, baseline Result) string {
	excerpt := jobDescription
	if len(excerpt) > jobExcerptLimit {
		excerpt = excerpt[:jobExcerptLimit]
	}
	overlapNames := make([]string, 0, len(baseline.OverlappingSkills))
	for _, s := range baseline.OverlappingSkills {
		overlapNames = append(overlapNames, s.Skill)
	}

	var b strings.Builder
	b.WriteString("You are a career coach. Given:\n")
	fmt.Fprintf(&b, "- Job description (excerpt): %s\n", excerpt)
	fmt.Fprintf(&b, "- Resume skills we detected: %s\n", strings.Join(overlapNames, ", "))
	fmt.Fprintf(&b, "- Missing skills for the job: %s\n", strings.Join(baseline.MissingSkills, ", "))
	fmt.Fprintf(&b, "- Current match score: %d/100\n\n", baseline.MatchScore)
	b.WriteString(`Provide 4-6 short, actionable bullet points as "Suggested next steps" for the candidate. Be specific and practical. One line per bullet. No preamble.`)
	return b.String()
}

var numberedPrefix = regexp.MustCompile(`^\d+[.)]\s+`)

// parseSuggestionLines splits a completion into usable suggestion lines,
// stripping common bullet markers and discarding blanks.
func parseSuggestionLines(content string) []string {
	var steps []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, marker := range []string{"- ", "* ", "• ", "-", "*", "•"} {
			if line == strings.TrimSpace(marker) {
				line = ""
				break
			}
			if strings.HasPrefix(line, marker) {
				line = strings.TrimSpace(strings.TrimPrefix(line, marker))
				break
			}
		}
		line = strings.TrimSpace(numberedPrefix.ReplaceAllString(line, ""))
		if line != "" {
			steps = append(steps, line)
		}
	}
	return steps
}
