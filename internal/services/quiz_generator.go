package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"alfredoptarigan/studybuddy/internal/models"
)

// Generation failure stages.
const (
	StageRequest = "request"
	StageParse   = "parse"
	StageEmpty   = "empty"
)

var (
	errNoSkills     = errors.New("no skills to quiz on")
	errNoJSON       = errors.New("no balanced JSON block in response")
	errNoUsableQuiz = errors.New("no well-formed questions in response")
	errBadCount     = errors.New("question count must be positive")
)

// GenerationError reports why a quiz could not be produced.
type GenerationError struct {
	Stage string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("quiz generation failed at %s: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

type QuizGenerator interface {
	Generate(ctx context.Context, skills []string, count int) ([]models.QuizQuestion, error)
}

type quizGenerator struct {
	chat          ChatClient
	promptBuilder *PromptBuilder
}

func NewQuizGenerator(chat ChatClient) QuizGenerator {
	return &quizGenerator{
		chat:          chat,
		promptBuilder: NewPromptBuilder(),
	}
}

// Generate makes exactly one chat call. The result may hold fewer than count
// questions when the model under-produces or emits malformed entries.
func (g *quizGenerator) Generate(ctx context.Context, skills []string, count int) ([]models.QuizQuestion, error) {
	if len(skills) == 0 {
		return nil, &GenerationError{Stage: StageEmpty, Err: errNoSkills}
	}
	if count <= 0 {
		return nil, &GenerationError{Stage: StageEmpty, Err: errBadCount}
	}

	prompt := g.promptBuilder.BuildQuizPrompt(skills, count)
	log.Debug().Strs("skills", skills).Int("count", count).Int("prompt_length", len(prompt)).Msg("Requesting quiz")

	raw, err := g.chat.Complete(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Str("provider", g.chat.Name()).Msg("Quiz request failed")
		return nil, &GenerationError{Stage: StageRequest, Err: err}
	}

	payload, ok := RecoverJSON(raw)
	if !ok {
		log.Warn().Str("response", truncate(raw, 200)).Msg("Quiz response was not JSON")
		return nil, &GenerationError{Stage: StageParse, Err: errNoJSON}
	}

	questions := NormalizeQuiz(payload)
	if len(questions) == 0 {
		log.Warn().Str("response", truncate(raw, 200)).Msg("Quiz response held no usable questions")
		return nil, &GenerationError{Stage: StageEmpty, Err: errNoUsableQuiz}
	}

	if len(questions) > count {
		questions = questions[:count]
	}

	log.Info().Int("questions", len(questions)).Msg("Quiz generated")
	return questions, nil
}

// NormalizeQuiz accepts a bare list of questions, a {"quiz": [...]} wrapper or
// either of those serialized into a JSON string. Entries without a question,
// four options and an answer letter are dropped.
func NormalizeQuiz(payload gjson.Result) []models.QuizQuestion {
	return normalizeQuiz(payload, true)
}

func normalizeQuiz(payload gjson.Result, reparse bool) []models.QuizQuestion {
	switch {
	case payload.IsArray():
		var questions []models.QuizQuestion
		payload.ForEach(func(_, item gjson.Result) bool {
			if q, ok := normalizeQuestion(item); ok {
				questions = append(questions, q)
			}
			return true
		})
		return questions
	case payload.IsObject():
		quiz := payload.Get("quiz")
		if !quiz.Exists() {
			return nil
		}
		return normalizeQuiz(quiz, reparse)
	case payload.Type == gjson.String && reparse:
		inner := strings.TrimSpace(payload.String())
		if !gjson.Valid(inner) {
			return nil
		}
		return normalizeQuiz(gjson.Parse(inner), false)
	}
	return nil
}

func normalizeQuestion(item gjson.Result) (models.QuizQuestion, bool) {
	if !item.IsObject() {
		return models.QuizQuestion{}, false
	}

	question := item.Get("question")
	options := item.Get("options")
	answer := item.Get("answer")
	if !question.Exists() || !options.Exists() || !answer.Exists() {
		return models.QuizQuestion{}, false
	}

	text := strings.TrimSpace(question.String())
	if text == "" || !options.IsArray() {
		return models.QuizQuestion{}, false
	}

	opts := make([]string, 0, models.OptionsPerQuestion)
	for _, o := range options.Array() {
		opts = append(opts, strings.TrimSpace(o.String()))
	}
	if len(opts) != models.OptionsPerQuestion {
		return models.QuizQuestion{}, false
	}

	letter, ok := AnswerLetter(answer.String())
	if !ok {
		return models.QuizQuestion{}, false
	}

	return models.QuizQuestion{
		Question:    text,
		Options:     opts,
		Answer:      letter,
		Explanation: strings.TrimSpace(item.Get("explanation").String()),
		Skill:       strings.TrimSpace(item.Get("skill").String()),
	}, true
}

// AnswerLetter reduces "b", " B) ", "C." and similar to a single A-D letter.
func AnswerLetter(raw string) (string, bool) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return "", false
	}

	letter := s[:1]
	if len(s) > 1 {
		switch s[1] {
		case ')', '.', ':', ' ':
		default:
			return "", false
		}
	}

	for _, l := range models.AnswerLetters {
		if l == letter {
			return letter, true
		}
	}
	return "", false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
