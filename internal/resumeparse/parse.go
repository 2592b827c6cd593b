package resumeparse

import (
	"regexp"
	"strconv"
	"strings"
)

// Analysis is the structured output of parsing one resume text.
type Analysis struct {
	Email           string
	Phone           string
	LinkedinURL     string
	GithubURL       string
	Skills          []string
	ExperienceYears int
	WordCount       int
}

// Known technology terms matched against the resume text. Multi-word terms
// must appear verbatim.
var techSkills = []string{
	// languages
	"python", "javascript", "typescript", "java", "c++", "c#", "php",
	"ruby", "go", "rust", "swift", "kotlin", "scala", "sql", "bash",
	// frameworks
	"react", "angular", "vue", "svelte", "django", "flask", "fastapi",
	"express", "nestjs", "spring", "laravel", "rails", "nextjs", "nodejs",
	"tailwind", "bootstrap",
	// databases
	"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "sqlite",
	"oracle", "cassandra", "dynamodb", "firebase",
	// cloud and devops
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "ansible",
	"jenkins", "github actions", "nginx", "linux",
	// tools
	"git", "jira", "figma", "postman", "grafana",
}

var (
	emailRe    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe    = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinRe = regexp.MustCompile(`linkedin\.com/in/[A-Za-z0-9-]+`)
	githubRe   = regexp.MustCompile(`github\.com/[A-Za-z0-9-]+`)
	yearsRes   = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s*)?experience`),
		regexp.MustCompile(`(\d+)\+?\s*yrs?\s*(?:of\s*)?experience`),
		regexp.MustCompile(`experience[:\s]*(\d+)\+?\s*years?`),
	}
)

// Parse extracts contact details, known skills and an experience estimate
// from resume text.
func Parse(text string) Analysis {
	lower := strings.ToLower(text)

	return Analysis{
		Email:           emailRe.FindString(text),
		Phone:           strings.TrimSpace(phoneRe.FindString(text)),
		LinkedinURL:     linkedinRe.FindString(lower),
		GithubURL:       githubRe.FindString(lower),
		Skills:          ExtractSkills(lower),
		ExperienceYears: estimateYears(lower),
		WordCount:       len(strings.Fields(text)),
	}
}

// ExtractSkills returns the known technology terms present in lower-cased
// text, in dictionary order. Single-letter-suffixed terms like "go" and "r"
// are matched on word boundaries to avoid substring hits.
func ExtractSkills(lower string) []string {
	found := make([]string, 0, 16)
	for _, skill := range techSkills {
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
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			return true
		}
		idx = start + 1
	}
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	return !isWordByte(text[i-1])
}

func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	return !isWordByte(text[i])
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9'
}

// estimateYears takes the highest "N years experience" style claim found.
func estimateYears(lower string) int {
	best := 0
	for _, re := range yearsRes {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			if n, err := strconv.Atoi(m[1]); err == nil && n > best {
				best = n
			}
		}
	}
	return best
}
