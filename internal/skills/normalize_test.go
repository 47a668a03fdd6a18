package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercases and strips punctuation",
			input: "Python, JavaScript & React!",
			want:  "python javascript react",
		},
		{
			name:  "collapses whitespace",
			input: "  Go \t and \n Rust  ",
			want:  "go and rust",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: "   \n\t  ",
			want:  "",
		},
		{
			name:  "keeps digits and underscores",
			input: "k8s and my_tool v2",
			want:  "k8s and my_tool v2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeText(tt.input))
		})
	}
}

func TestTokenize_WordsAndBigrams(t *testing.T) {
	tokens := Tokenize("machine learning with Python")

	assert.Contains(t, tokens, "machine")
	assert.Contains(t, tokens, "learning")
	assert.Contains(t, tokens, "python")
	assert.Contains(t, tokens, "machine learning")
	assert.Contains(t, tokens, "learning with")
	assert.Contains(t, tokens, "with python")
}

func TestTokenize_Empty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("   "))
}

func TestTokenize_SingleWordHasNoBigrams(t *testing.T) {
	tokens := Tokenize("Python")
	assert.Len(t, tokens, 1)
	assert.Contains(t, tokens, "python")
}

func TestTokenize_Deduplicates(t *testing.T) {
	tokens := Tokenize("go go go")
	// "go" once as a word, "go go" once as a bigram
	assert.Len(t, tokens, 2)
}
