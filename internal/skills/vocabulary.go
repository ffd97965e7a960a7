package skills

import (
	"sort"
	"strings"
)

// Curated technical-skill reference list. Grouped for readability; the groups
// carry no meaning at runtime.
var builtin = [][]string{
	// languages
	{
		"python", "java", "javascript", "typescript", "c++", "cpp", "c#", "ruby",
		"go", "golang", "rust", "scala", "kotlin", "swift", "php", "perl", "r",
		"matlab", "julia",
	},
	// frameworks and libraries
	{
		"react", "angular", "vue", "django", "flask", "spring", "nodejs",
		"express", "rails", "laravel", "tensorflow", "pytorch", "keras",
		"sklearn", "pandas", "numpy",
	},
	// databases
	{
		"sql", "mysql", "postgresql", "postgres", "mongodb", "redis",
		"elasticsearch", "cassandra", "dynamodb", "oracle", "sqlite",
	},
	// cloud and infrastructure
	{
		"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "gitlab",
		"github", "terraform", "ansible", "chef", "puppet",
	},
	// practices and tooling
	{
		"api", "rest", "restful", "graphql", "microservices", "kafka",
		"rabbitmq", "nginx", "apache", "linux", "unix", "git", "agile",
		"scrum", "cicd", "devops",
	},
}

// Vocabulary is a read-only set of known technical-skill tokens. It is built
// once at startup; Extend may only be called before the first comparison.
type Vocabulary struct {
	set map[string]bool
}

// NewVocabulary builds a vocabulary from the built-in skill list.
func NewVocabulary() *Vocabulary {
	v := &Vocabulary{set: make(map[string]bool, 96)}
	for _, group := range builtin {
		for _, skill := range group {
			v.set[skill] = true
		}
	}
	return v
}

// Extend adds extra skills, normalized to lower case. Empty entries are ignored.
func (v *Vocabulary) Extend(extra ...string) {
	for _, skill := range extra {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" {
			continue
		}
		v.set[skill] = true
	}
}

// Contains reports whether the token is a known technical skill.
func (v *Vocabulary) Contains(token string) bool {
	if v == nil {
		return false
	}
	return v.set[token]
}

// Len returns the number of known skills.
func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}
	return len(v.set)
}

// All returns the skills in alphabetical order.
func (v *Vocabulary) All() []string {
	if v == nil {
		return nil
	}
	all := make([]string, 0, len(v.set))
	for skill := range v.set {
		all = append(all, skill)
	}
	sort.Strings(all)
	return all
}

var defaultVocabulary = NewVocabulary()

// Default returns the process-wide vocabulary.
func Default() *Vocabulary {
	return defaultVocabulary
}
