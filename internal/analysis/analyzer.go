package analysis

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/skillgap-coach/internal/llm"
	"github.com/jonathan/skillgap-coach/internal/skills"
)

// DefaultLLMTimeout bounds the single outbound completion call.
const DefaultLLMTimeout = 20 * time.Second

// Analyzer runs resume vs job description analysis. It is stateless across
// requests: each call is a pure function of the two texts, the injected
// dictionary, and the resolved mode.
type Analyzer struct {
	extractor  *skills.Extractor
	coach      llm.Client
	llmTimeout time.Duration
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithCoach enables LLM mode using the given client. Callers pass a client
// only when the feature flag is set and a credential is present; a nil client
// leaves the analyzer in baseline mode.
func WithCoach(client llm.Client) Option {
	return func(a *Analyzer) {
		a.coach = client
	}
}

// WithLLMTimeout overrides the per-call timeout for the completion service.
func WithLLMTimeout(d time.Duration) Option {
	return func(a *Analyzer) {
		if d > 0 {
			a.llmTimeout = d
		}
	}
}

// New creates an Analyzer over the given extractor. A nil extractor gets the
// default dictionary.
func New(extractor *skills.Extractor, opts ...Option) *Analyzer {
	if extractor == nil {
		extractor = skills.NewExtractor(nil)
	}
	a := &Analyzer{
		extractor:  extractor,
		llmTimeout: DefaultLLMTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Mode reports which path Analyze will take.
func (a *Analyzer) Mode() Mode {
	if a.coach != nil {
		return ModeLLM
	}
	return ModeBaseline
}

// Analyze runs the full analysis. In LLM mode the baseline result is always
// computed first; only the suggestion list may be replaced, and any failure
// of the completion call falls back to the baseline result unchanged.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jobDescription string) Result {
	baseline := a.Baseline(resumeText, jobDescription)
	if a.coach == nil {
		return baseline
	}

	steps, err := a.coachSteps(ctx, jobDescription, baseline)
	if err != nil {
		log.Printf("LLM suggestions unavailable, falling back to baseline: %v", err)
		return baseline
	}

	enriched := baseline
	enriched.SuggestedNextSteps = steps
	enriched.Mode = ModeLLM
	return enriched
}

// Baseline runs the deterministic analysis path.
func (a *Analyzer) Baseline(resumeText, jobDescription string) Result {
	resumeSkills := a.extractor.Extract(resumeText)
	jobSkills := a.extractor.Extract(jobDescription)

	overlapping := overlapWithEvidence(resumeText, jobSkills, resumeSkills)
	missing := missingSkills(jobSkills, resumeSkills)

	overlapNames := make([]string, 0, len(overlapping))
	for _, s := range overlapping {
		overlapNames = append(overlapNames, s.Skill)
	}

	return Result{
		MatchScore:         MatchScore(resumeSkills, jobSkills),
		OverlappingSkills:  overlapping,
		MissingSkills:      missing,
		SuggestedNextSteps: SuggestNextSteps(missing, overlapNames),
		Mode:               ModeBaseline,
	}
}

// overlapWithEvidence builds the sorted overlap of job and resume skills,
// attaching an evidence snippet from the resume to each.
func overlapWithEvidence(resumeText string, jobSkills, resumeSkills []string) []SkillWithEvidence {
	resumeSet := lowerSet(resumeSkills)
	seen := make(map[string]struct{})
	var overlap []string
	for _, skill := range jobSkills {
		lower := strings.ToLower(skill)
		if _, ok := resumeSet[lower]; !ok {
			continue
		}
		if _, dup := seen[lower]; dup {
			continue
		}
		seen[lower] = struct{}{}
		overlap = append(overlap, lower)
	}
	sort.Strings(overlap)

	result := make([]SkillWithEvidence, 0, len(overlap))
	for _, skill := range overlap {
		evidence := FindEvidence(resumeText, skill)
		if evidence == "" {
			evidence = "(mentioned: " + skill + ")"
		}
		result = append(result, SkillWithEvidence{Skill: skill, Evidence: evidence})
	}
	return result
}

// missingSkills returns the sorted job skills absent from the resume.
func missingSkills(jobSkills, resumeSkills []string) []string {
	resumeSet := lowerSet(resumeSkills)
	seen := make(map[string]struct{})
	missing := []string{}
	for _, skill := range jobSkills {
		lower := strings.ToLower(skill)
		if _, ok := resumeSet[lower]; ok {
			continue
		}
		if _, dup := seen[lower]; dup {
			continue
		}
		seen[lower] = struct{}{}
		missing = append(missing, lower)
	}
	sort.Strings(missing)
	return missing
}
