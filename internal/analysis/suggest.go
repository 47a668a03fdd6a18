package analysis

import (
	"fmt"
	"strings"
)

// maxSkillsPerLine limits how many skills a suggestion line names.
const maxSkillsPerLine = 5

// SuggestNextSteps builds a deterministic, templated improvement plan from
// the missing and overlapping skill lists. The output order is fixed:
// missing-focus line(s), overlap-emphasis line, then two closing-advice lines.
func SuggestNextSteps(missingSkills, overlappingSkillNames []string) []string {
	var steps []string
	if len(missingSkills) > 0 {
		steps = append(steps, fmt.Sprintf(
			"Focus on building or highlighting these skills: %s.",
			strings.Join(firstN(missingSkills, maxSkillsPerLine), ", ")))
		if len(missingSkills) > maxSkillsPerLine {
			steps = append(steps, fmt.Sprintf(
				"Plus %d more job-relevant skills to consider.",
				len(missingSkills)-maxSkillsPerLine))
		}
	} else {
		steps = append(steps, "Your resume already covers the main skills mentioned in the job.")
	}
	if len(overlappingSkillNames) > 0 {
		steps = append(steps, fmt.Sprintf(
			"Emphasize your experience with: %s in your summary or top bullet points.",
			strings.Join(firstN(overlappingSkillNames, maxSkillsPerLine), ", ")))
	}
	steps = append(steps,
		"Add concrete outcomes (metrics, impact) for your top 3 matching skills.",
		"Tailor your resume header and summary to mirror keywords from the job description.",
	)
	return steps
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
