package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildQuizPrompt asks for a strict-JSON multiple choice quiz over the given skills.
func (pb *PromptBuilder) BuildQuizPrompt(skills []string, count int) string {
	return fmt.Sprintf(`Generate %d multiple-choice questions for these skills: %s.
Each MCQ must have exactly 4 options and one correct answer (A-D).

Return STRICT JSON ONLY:

{
  "quiz": [
    {
      "question": "...",
      "options": ["A", "B", "C", "D"],
      "answer": "A"
    }
  ]
}
No explanation. No extra text.`,
		count, strings.Join(skills, ", "))
}

// BuildExplanationPrompt asks why the user's letter was wrong for one question.
func (pb *PromptBuilder) BuildExplanationPrompt(question, userAnswer, correctAnswer string) string {
	return fmt.Sprintf(`Explain why '%s' is incorrect and '%s' is correct for this question:
%s
Give a short 2-3 line explanation.`,
		userAnswer, correctAnswer, question)
}
