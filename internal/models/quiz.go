package models

// QuizQuestion is a single multiple-choice question. Answer is the letter
// (A-D) of the correct entry in Options.
type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
	Skill       string   `json:"skill,omitempty"`
}

// QuizResult is the evaluated outcome for one question.
type QuizResult struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
	IsCorrect     bool   `json:"is_correct"`
	Skill         string `json:"skill"`
}

const OptionsPerQuestion = 4

var AnswerLetters = []string{"A", "B", "C", "D"}
