package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"alfredoptarigan/studybuddy/internal/models"
)

type QuizEvaluator interface {
	Evaluate(ctx context.Context, questions []models.QuizQuestion, answers []string) (int, int, []models.QuizResult)
}

type quizEvaluator struct {
	chat          ChatClient
	promptBuilder *PromptBuilder
}

// NewQuizEvaluator scores submissions. chat may be nil, in which case wrong
// answers without a stored explanation get an empty one.
func NewQuizEvaluator(chat ChatClient) QuizEvaluator {
	return &quizEvaluator{
		chat:          chat,
		promptBuilder: NewPromptBuilder(),
	}
}

// Evaluate compares normalized letters only. Answers past the end of the
// submission count as empty and therefore wrong.
func (e *quizEvaluator) Evaluate(ctx context.Context, questions []models.QuizQuestion, answers []string) (int, int, []models.QuizResult) {
	score := 0
	results := make([]models.QuizResult, 0, len(questions))

	for i, q := range questions {
		correct := normalizeAnswer(q.Answer)
		user := ""
		if i < len(answers) {
			user = normalizeAnswer(answers[i])
		}

		isCorrect := user == correct
		if isCorrect {
			score++
		}

		explanation := q.Explanation
		if !isCorrect && explanation == "" {
			explanation = e.explain(ctx, q.Question, user, correct)
		}

		results = append(results, models.QuizResult{
			Question:      q.Question,
			UserAnswer:    user,
			CorrectAnswer: correct,
			Explanation:   explanation,
			IsCorrect:     isCorrect,
			Skill:         q.Skill,
		})
	}

	log.Info().Int("score", score).Int("total", len(questions)).Msg("Quiz evaluated")
	return score, len(questions), results
}

func (e *quizEvaluator) explain(ctx context.Context, question, user, correct string) string {
	if e.chat == nil {
		return ""
	}

	prompt := e.promptBuilder.BuildExplanationPrompt(question, user, correct)
	text, err := e.chat.Complete(ctx, prompt)
	if err != nil {
		log.Warn().Err(err).Str("question", truncate(question, 80)).Msg("Explanation request failed")
		return ""
	}
	return strings.TrimSpace(text)
}

func normalizeAnswer(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
