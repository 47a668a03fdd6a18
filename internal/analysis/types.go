// Package analysis implements resume vs job description matching: skill
// overlap with evidence snippets, match scoring, and next-step suggestions,
// with an optional LLM-coached suggestion list.
package analysis

// Mode identifies which path produced a Result.
type Mode string

const (
	// ModeBaseline is the deterministic dictionary-based path.
	ModeBaseline Mode = "baseline"
	// ModeLLM means baseline analysis with suggestions replaced by an LLM.
	ModeLLM Mode = "llm"
)

// SkillWithEvidence pairs a matched skill with a snippet from the resume
// showing where it was mentioned. Evidence is never empty: when no snippet
// can be located it holds a "(mentioned: skill)" placeholder.
type SkillWithEvidence struct {
	Skill    string `json:"skill"`
	Evidence string `json:"evidence"`
}

// Result is the outcome of one analysis. It is immutable after construction.
// OverlappingSkills and MissingSkills partition the job's skill set.
type Result struct {
	MatchScore         int                 `json:"match_score"`
	OverlappingSkills  []SkillWithEvidence `json:"overlapping_skills"`
	MissingSkills      []string            `json:"missing_skills"`
	SuggestedNextSteps []string            `json:"suggested_next_steps"`
	Mode               Mode                `json:"mode"`
}
