package taxonomy

import "strings"

// SkillInfo describes one skill in the taxonomy
type SkillInfo struct {
	Category   string
	Difficulty string
	Synonyms   []string
	Related    []string
}

// SkillTaxonomy returns the built-in skill taxonomy with categories and synonyms.
// The table is intentionally small; unknown skills fall back to plain string matching.
func SkillTaxonomy() map[string]SkillInfo {
	return map[string]SkillInfo{
		"JavaScript": {
			Category:   "programming",
			Difficulty: "medium",
			Synonyms:   []string{"JS", "ECMAScript", "Node.js", "React", "Vue", "Angular"},
			Related:    []string{"HTML", "CSS", "TypeScript", "JSON"},
		},
		"Python": {
			Category:   "programming",
			Difficulty: "medium",
			Synonyms:   []string{"Python3", "Django", "Flask", "FastAPI", "NumPy", "Pandas"},
			Related:    []string{"SQL", "Machine Learning", "Data Science"},
		},
		"React": {
			Category:   "frontend_framework",
			Difficulty: "medium",
			Synonyms:   []string{"React.js", "ReactJS", "React Native"},
			Related:    []string{"JavaScript", "JSX", "Redux", "Hooks"},
		},
		"AWS": {
			Category:   "cloud_platform",
			Difficulty: "high",
			Synonyms:   []string{"Amazon Web Services", "EC2", "S3", "Lambda", "CloudFormation"},
			Related:    []string{"Docker", "Kubernetes", "DevOps", "Terraform"},
		},
		"Machine Learning": {
			Category:   "ai_ml",
			Difficulty: "high",
			Synonyms:   []string{"ML", "Artificial Intelligence", "AI", "Deep Learning"},
			Related:    []string{"Python", "Statistics", "Data Science", "TensorFlow"},
		},
		"SQL": {
			Category:   "database",
			Difficulty: "medium",
			Synonyms:   []string{"MySQL", "PostgreSQL", "SQLite", "Database", "RDBMS"},
			Related:    []string{"Python", "Data Analysis", "ETL"},
		},
		"Go": {
			Category:   "programming",
			Difficulty: "medium",
			Synonyms:   []string{"Golang"},
			Related:    []string{"Kubernetes", "Docker", "gRPC"},
		},
		"Kubernetes": {
			Category:   "infrastructure",
			Difficulty: "high",
			Synonyms:   []string{"K8s", "Kube"},
			Related:    []string{"Docker", "Helm", "AWS"},
		},
	}
}

// Synonyms returns the synonym list for a skill, or nil if the skill is not in the taxonomy
func Synonyms(skill string) []string {
	if info, ok := SkillTaxonomy()[skill]; ok {
		return info.Synonyms
	}
	return nil
}

// AreSynonyms reports whether two skill names are synonyms of each other
// according to the taxonomy (case-insensitive, symmetric)
func AreSynonyms(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la == lb {
		return true
	}
	for skill, info := range SkillTaxonomy() {
		names := append([]string{skill}, info.Synonyms...)
		foundA, foundB := false, false
		for _, name := range names {
			switch strings.ToLower(name) {
			case la:
				foundA = true
			case lb:
				foundB = true
			}
		}
		if foundA && foundB {
			return true
		}
	}
	return false
}

// skillNormalizations maps common skill name variants to canonical names
var skillNormalizations = map[string]string{
	"golang":     "Go",
	"go lang":    "Go",
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"typescript": "TypeScript",
	"ts":         "TypeScript",
	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
	"react.js":   "React",
	"reactjs":    "React",
	"vue.js":     "Vue",
	"vuejs":      "Vue",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
}

// NormalizeSkillName normalizes a skill name to its canonical form
func NormalizeSkillName(skillName string) string {
	normalized := strings.TrimSpace(skillName)
	if normalized == "" {
		return ""
	}

	lower := strings.ToLower(normalized)
	if canonical, ok := skillNormalizations[lower]; ok {
		return canonical
	}

	// Single lowercase words get a capitalized first letter
	if normalized == lower && !strings.Contains(normalized, " ") {
		return strings.ToUpper(normalized[:1]) + normalized[1:]
	}

	return normalized
}
