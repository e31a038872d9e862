package models

type UploadResponse struct {
	Email         string   `json:"email"`
	Name          string   `json:"name"`
	Skills        []string `json:"skills"`
	QuestionCount int      `json:"question_count"`
	Next          string   `json:"next"`
}

type QuizQuestionView struct {
	Field    string   `json:"field"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Skill    string   `json:"skill,omitempty"`
}

type QuizResponse struct {
	Email     string             `json:"email"`
	Skills    []string           `json:"skills"`
	Questions []QuizQuestionView `json:"questions"`
}

type QuizResultResponse struct {
	Score   int          `json:"score"`
	Total   int          `json:"total"`
	Results []QuizResult `json:"results"`
	Next    string       `json:"next"`
}

type RejectionResponse struct {
	Error    string `json:"error"`
	Kind     string `json:"kind"`
	Redirect string `json:"redirect"`
}
