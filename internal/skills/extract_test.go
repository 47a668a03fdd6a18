package skills

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_SingleWords(t *testing.T) {
	e := NewExtractor(nil)

	found := e.Extract("I know Python, JavaScript and React.")

	assert.Contains(t, found, "python")
	assert.Contains(t, found, "javascript")
	assert.Contains(t, found, "react")
}

func TestExtract_Phrases(t *testing.T) {
	e := NewExtractor(nil)

	found := e.Extract("Experience with machine learning and data science.")

	assert.Contains(t, found, "machine learning")
	assert.Contains(t, found, "data science")
}

func TestExtract_Empty(t *testing.T) {
	e := NewExtractor(nil)

	assert.Empty(t, e.Extract(""))
	assert.Empty(t, e.Extract("   "))
}

func TestExtract_SortedAndDistinct(t *testing.T) {
	e := NewExtractor(nil)

	found := e.Extract("Docker docker DOCKER, aws and python. Python again.")

	assert.True(t, sort.StringsAreSorted(found))
	seen := make(map[string]int)
	for _, s := range found {
		seen[s]++
	}
	for skill, count := range seen {
		assert.Equal(t, 1, count, "skill %q appears more than once", skill)
	}
}

func TestExtract_Idempotent(t *testing.T) {
	e := NewExtractor(nil)
	text := "Backend engineer. Python, PostgreSQL, Docker, REST APIs. Used FastAPI and git."

	first := e.Extract(text)
	second := e.Extract(text)

	assert.Equal(t, first, second)
}

func TestExtract_KubernetesAndK8sAreDistinct(t *testing.T) {
	e := NewExtractor(nil)

	// The dictionary deliberately keeps these as unrelated tokens.
	assert.Equal(t, []string{"k8s"}, e.Extract("deployed with k8s"))
	assert.Equal(t, []string{"kubernetes"}, e.Extract("deployed with Kubernetes"))
}

func TestExtract_CustomDictionary(t *testing.T) {
	dict := NewDictionary(
		[]string{"cobol", "fortran", "punch cards"},
		[]string{"cobol", "fortran"},
	)
	e := NewExtractor(dict)

	found := e.Extract("Veteran of COBOL, Fortran, and punch cards. No Python here.")

	require.Equal(t, []string{"cobol", "fortran", "punch cards"}, found)
}

func TestDefaultDictionary(t *testing.T) {
	dict := DefaultDictionary()

	assert.True(t, dict.HasKeyword("python"))
	assert.True(t, dict.HasKeyword("machine learning"))
	assert.True(t, dict.HasWord("docker"))
	assert.False(t, dict.HasWord("machine learning"))
	assert.Greater(t, dict.Len(), 50)
}
