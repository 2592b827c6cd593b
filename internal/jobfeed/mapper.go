package jobfeed

import "strings"

// Technology terms looked for in posting descriptions.
var descriptionSkills = []string{
	"python", "java", "javascript", "typescript", "react", "angular",
	"vue", "node.js", "django", "flask", "fastapi", "spring", "sql",
	"mongodb", "postgresql", "mysql", "aws", "azure", "gcp", "docker",
	"kubernetes", "git", "ci/cd", "rest api", "graphql", "go", "rust",
	"terraform", "redis", "kafka",
}

var (
	remoteMarkers = []string{"fully remote", "100% remote", "remote work", "work from home"}
	hybridMarkers = []string{"hybrid", "flexible working", "remote option"}
)

// DetectRemoteType classifies a posting from its description text. Defaults
// to onsite when no marker phrase is present.
func DetectRemoteType(description string) string {
	lower := strings.ToLower(description)
	for _, m := range remoteMarkers {
		if strings.Contains(lower, m) {
			return "remote"
		}
	}
	for _, m := range hybridMarkers {
		if strings.Contains(lower, m) {
			return "hybrid"
		}
	}
	return "onsite"
}

// ExtractSkills returns the known technology terms found in the description,
// lower-cased, in dictionary order. Short terms match on word boundaries.
func ExtractSkills(description string) []string {
	lower := strings.ToLower(description)
	found := make([]string, 0, 8)
	for _, skill := range descriptionSkills {
		if containsTerm(lower, skill) {
			found = append(found, skill)
		}
	}
	return found
}

func containsTerm(text, term string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], term)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(term)
		if wordBoundary(text, start-1) && wordBoundary(text, end) {
			return true
		}
		idx = start + 1
	}
}

func wordBoundary(text string, i int) bool {
	if i < 0 || i >= len(text) {
		return true
	}
	b := text[i]
	return !(b >= 'a' && b <= 'z' || b >= '0' && b <= '9')
}
