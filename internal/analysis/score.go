package analysis

import (
	"math"
	"strings"
)

// MatchScore computes the percentage of job skills found in the resume,
// rounded to the nearest integer and clamped to [0,100]. Comparison is
// case-insensitive and duplicate entries are ignored. An empty job skill
// list scores 100: there is nothing to miss.
func MatchScore(resumeSkills, jobSkills []string) int {
	if len(jobSkills) == 0 {
		return 100
	}
	resumeSet := lowerSet(resumeSkills)
	jobSet := lowerSet(jobSkills)
	overlap := 0
	for skill := range jobSet {
		if _, ok := resumeSet[skill]; ok {
			overlap++
		}
	}
	score := int(math.Round(100 * float64(overlap) / float64(len(jobSet))))
	if score > 100 {
		score = 100
	}
	return score
}

func lowerSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		set[strings.ToLower(s)] = struct{}{}
	}
	return set
}
