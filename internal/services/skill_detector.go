package services

import "strings"

// SkillVocabulary is the ordered list of recognised skills. Detection results
// always follow this order.
var SkillVocabulary = []string{
	"Python", "Java", "Machine Learning", "SQL", "C++", "HTML", "CSS", "JavaScript",
	"Bootstrap", "Tailwind", "React", "Angular", "Vue.js", "Node.js", "Express.js", "Flask", "Django",
	"MySQL", "PostgreSQL", "MongoDB", "SQLite", "Firebase", "Pandas", "NumPy", "Matplotlib", "Seaborn",
	"Scikit-learn", "TensorFlow", "Keras", "PyTorch", "Data Analysis", "Data Visualization", "Deep Learning",
	"Artificial Intelligence", "Natural Language Processing", "Git", "GitHub", "Docker", "AWS", "Google Cloud",
	"Azure", "Jira", "VS Code", "Jupyter", "Linux", "Power BI", "Tableau", "OOP", "DSA", "REST API",
	"Microservices", "Agile", "CI/CD", "Unit Testing", "Cloud Computing", "Communication", "Leadership",
	"Teamwork", "Problem Solving", "Time Management", "Creativity", "Critical Thinking",
}

type SkillDetector interface {
	Detect(text string) []string
}

type skillDetector struct {
	vocabulary []string
}

func NewSkillDetector() SkillDetector {
	return NewSkillDetectorWithVocabulary(SkillVocabulary)
}

func NewSkillDetectorWithVocabulary(vocabulary []string) SkillDetector {
	return &skillDetector{vocabulary: append([]string(nil), vocabulary...)}
}

// Detect does a case-insensitive substring test of every vocabulary entry
// against text. "Java" therefore also matches inside "JavaScript".
func (d *skillDetector) Detect(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	lower := strings.ToLower(text)
	found := make([]string, 0)
	seen := make(map[string]struct{}, len(d.vocabulary))

	for _, skill := range d.vocabulary {
		if _, dup := seen[skill]; dup {
			continue
		}
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
			seen[skill] = struct{}{}
		}
	}

	return found
}

// FirstSkills truncates detected skills to the first k entries.
func FirstSkills(skills []string, k int) []string {
	if k < 0 || len(skills) <= k {
		return skills
	}
	return skills[:k]
}
