// Package skills provides the keyword dictionary and deterministic skill
// extraction used by baseline analysis.
package skills

// Dictionary is an immutable set of canonical skill tokens. Entries are
// lowercase; multi-word phrases contain a single space and are matched by
// substring containment against normalized text.
type Dictionary struct {
	keywords map[string]struct{}
	words    map[string]struct{}
	phrases  []string
}

// NewDictionary builds a Dictionary from a full keyword list and the subset of
// single-word tokens matched via plain tokenization.
func NewDictionary(keywords, words []string) *Dictionary {
	d := &Dictionary{
		keywords: make(map[string]struct{}, len(keywords)),
		words:    make(map[string]struct{}, len(words)),
	}
	for _, kw := range keywords {
		d.keywords[kw] = struct{}{}
		if containsSpace(kw) {
			d.phrases = append(d.phrases, kw)
		}
	}
	for _, w := range words {
		d.words[w] = struct{}{}
	}
	return d
}

// HasKeyword reports whether token is a dictionary entry.
func (d *Dictionary) HasKeyword(token string) bool {
	_, ok := d.keywords[token]
	return ok
}

// HasWord reports whether token is in the single-word set.
func (d *Dictionary) HasWord(token string) bool {
	_, ok := d.words[token]
	return ok
}

// Phrases returns the multi-word dictionary entries.
func (d *Dictionary) Phrases() []string {
	return d.phrases
}

// Len returns the number of dictionary entries.
func (d *Dictionary) Len() int {
	return len(d.keywords)
}

func containsSpace(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			return true
		}
	}
	return false
}

// defaultKeywords is the full fixed skill vocabulary. Note "kubernetes" and
// "k8s" are separate tokens, not synonyms.
var defaultKeywords = []string{
	// Programming languages
	"python", "javascript", "typescript", "java", "csharp", "c#", "cpp", "c++", "go", "golang",
	"rust", "ruby", "php", "swift", "kotlin", "scala", "r", "sql", "html", "css",
	// Frameworks & libraries
	"react", "vue", "angular", "nextjs", "next.js", "node", "nodejs", "express", "django",
	"flask", "fastapi", "spring", "rails", "laravel", "dotnet", ".net", "asp.net",
	// Data & ML
	"machine learning", "ml", "deep learning", "tensorflow", "pytorch", "keras", "pandas",
	"numpy", "scikit", "scikit-learn", "data analysis", "data science", "nlp",
	"natural language processing", "computer vision", "statistics",
	// Cloud & DevOps
	"aws", "azure", "gcp", "google cloud", "docker", "kubernetes", "k8s", "ci/cd",
	"jenkins", "github actions", "terraform", "ansible", "linux", "bash", "shell",
	// Databases
	"postgresql", "postgres", "mysql", "mongodb", "redis", "elasticsearch", "sqlite",
	// Tools & practices
	"git", "rest", "api", "graphql", "microservices", "agile", "scrum", "jira",
	"testing", "unit tests", "tdd", "oop", "design patterns", "clean code",
	// Soft & domain
	"leadership", "communication", "project management", "technical writing",
	"problem solving", "collaboration", "mentoring", "cross-functional",
}

// defaultWords is the single-word subset matched through tokenization.
var defaultWords = []string{
	"python", "javascript", "typescript", "java", "golang", "rust", "ruby", "php",
	"swift", "kotlin", "scala", "react", "vue", "angular", "django", "flask", "fastapi",
	"node", "express", "spring", "rails", "docker", "kubernetes", "terraform", "aws",
	"azure", "gcp", "postgresql", "mysql", "mongodb", "redis", "git", "linux", "bash",
	"tensorflow", "pytorch", "pandas", "numpy", "sql", "html", "css", "rest", "api",
	"agile", "scrum", "jira", "testing", "oop", "nlp", "ml",
}

var defaultDict = NewDictionary(defaultKeywords, defaultWords)

// DefaultDictionary returns the built-in skill dictionary.
func DefaultDictionary() *Dictionary {
	return defaultDict
}
