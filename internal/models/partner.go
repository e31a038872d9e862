package models

type PartnerCandidate struct {
	Name   string   `yaml:"name" json:"name"`
	Email  string   `yaml:"email" json:"email"`
	Skills []string `yaml:"skills" json:"skills"`
	Score  int      `yaml:"score" json:"score"`
	Bio    string   `yaml:"bio" json:"bio"`
}

type MatchResult struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	SharedSkill *string `json:"shared_skill"`
	Bio         string  `json:"bio"`
}

// NoMatch is returned when every roster entry was excluded.
func NoMatch() MatchResult {
	return MatchResult{Name: "No match"}
}
