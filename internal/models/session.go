package models

import "time"

// Session holds the state of one user journey: upload, quiz, match.
type Session struct {
	ID        string         `json:"id"`
	UserEmail string         `json:"user_email,omitempty"`
	UserName  string         `json:"user_name,omitempty"`
	Skills    []string       `json:"extracted_skills,omitempty"`
	Questions []QuizQuestion `json:"quiz_questions,omitempty"`
	Score     *int           `json:"user_score,omitempty"`
	Results   []QuizResult   `json:"last_results,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (s *Session) HasQuiz() bool {
	return s != nil && len(s.Questions) > 0
}

func (s *Session) RecordResults(score int, results []QuizResult) {
	s.Score = &score
	s.Results = results
	s.UpdatedAt = time.Now()
}

// Reset drops everything but the identity of the session.
func (s *Session) Reset() {
	s.UserEmail = ""
	s.UserName = ""
	s.Skills = nil
	s.Questions = nil
	s.Score = nil
	s.Results = nil
	s.UpdatedAt = time.Now()
}
