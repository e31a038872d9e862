package services

import (
	"context"
	"errors"
	"testing"

	"alfredoptarigan/studybuddy/internal/models"
)

func sampleQuestions() []models.QuizQuestion {
	opts := []string{"w", "x", "y", "z"}
	return []models.QuizQuestion{
		{Question: "Q1", Options: opts, Answer: "B"},
		{Question: "Q2", Options: opts, Answer: "a", Explanation: "stored"},
		{Question: "Q3", Options: opts, Answer: "D", Skill: "SQL"},
	}
}

func TestQuizEvaluator_Score(t *testing.T) {
	chat := &fakeChat{responses: []string{"  because B is right  "}}
	e := NewQuizEvaluator(chat)

	score, total, results := e.Evaluate(context.Background(), sampleQuestions(), []string{" b ", "C"})
	if score != 1 || total != 3 {
		t.Fatalf("score/total = %d/%d, want 1/3", score, total)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	if !results[0].IsCorrect || results[0].UserAnswer != "B" || results[0].Explanation != "" {
		t.Fatalf("unexpected first result: %+v", results[0])
	}
	if results[1].IsCorrect || results[1].CorrectAnswer != "A" || results[1].Explanation != "stored" {
		t.Fatalf("unexpected second result: %+v", results[1])
	}
	if results[2].IsCorrect || results[2].UserAnswer != "" || results[2].Skill != "SQL" {
		t.Fatalf("missing answer should be wrong: %+v", results[2])
	}
	if results[2].Explanation != "because B is right" {
		t.Fatalf("expected trimmed explanation, got %q", results[2].Explanation)
	}

	// Only the wrong answer without a stored explanation asks the model.
	if chat.calls() != 1 {
		t.Fatalf("expected 1 explanation call, got %d", chat.calls())
	}
}

func TestQuizEvaluator_ExplanationFailureIsSwallowed(t *testing.T) {
	e := NewQuizEvaluator(&fakeChat{err: errors.New("down")})

	score, total, results := e.Evaluate(context.Background(), sampleQuestions()[:1], []string{"C"})
	if score != 0 || total != 1 {
		t.Fatalf("unexpected %d/%d", score, total)
	}
	if results[0].Explanation != "" {
		t.Fatalf("expected empty explanation, got %q", results[0].Explanation)
	}
}

func TestQuizEvaluator_NilChat(t *testing.T) {
	e := NewQuizEvaluator(nil)
	_, total, results := e.Evaluate(context.Background(), sampleQuestions(), nil)
	if total != 3 {
		t.Fatalf("total = %d", total)
	}
	for _, r := range results {
		if r.IsCorrect {
			t.Fatalf("no answers submitted, nothing can be correct: %+v", r)
		}
	}
}

func TestQuizEvaluator_NoPartialCredit(t *testing.T) {
	e := NewQuizEvaluator(nil)
	q := []models.QuizQuestion{{Question: "Q", Options: []string{"w", "x", "y", "z"}, Answer: "B"}}

	score, _, _ := e.Evaluate(context.Background(), q, []string{"x"})
	if score != 0 {
		t.Fatalf("option text must not count as the letter")
	}
}
