package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"alfredoptarigan/studybuddy/internal/models"
)

func TestMemorySessionRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepository(time.Hour)

	s, err := repo.Create(ctx)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if s.ID == "" {
		t.Fatalf("expected session id")
	}

	s.UserEmail = "aarav@cmrit.ac.in"
	s.Skills = []string{"Python"}
	s.RecordResults(3, []models.QuizResult{{Question: "Q", IsCorrect: true}})
	if err := repo.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.FindByID(ctx, s.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.UserEmail != "aarav@cmrit.ac.in" || len(got.Skills) != 1 {
		t.Fatalf("unexpected session: %+v", got)
	}
	if got.Score == nil || *got.Score != 3 || len(got.Results) != 1 {
		t.Fatalf("unexpected score/results: %+v", got)
	}

	// stored value is a snapshot
	s.UserEmail = "changed@cmrit.ac.in"
	again, _ := repo.FindByID(ctx, s.ID)
	if again.UserEmail != "aarav@cmrit.ac.in" {
		t.Fatalf("unsaved change leaked into store")
	}

	if err := repo.Delete(ctx, s.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.FindByID(ctx, s.ID); !errors.Is(err, models.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestMemorySessionRepository_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	repo := NewMemorySessionRepository(time.Minute).(*memorySessionRepository)
	repo.now = func() time.Time { return now }

	s, err := repo.Create(ctx)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	now = now.Add(30 * time.Second)
	if _, err := repo.FindByID(ctx, s.ID); err != nil {
		t.Fatalf("session should still be live: %v", err)
	}

	now = now.Add(time.Minute)
	if _, err := repo.FindByID(ctx, s.ID); !errors.Is(err, models.ErrSessionNotFound) {
		t.Fatalf("expected expired session, got %v", err)
	}
}

func TestMemorySessionRepository_UnknownID(t *testing.T) {
	repo := NewMemorySessionRepository(0)
	if _, err := repo.FindByID(context.Background(), "nope"); !errors.Is(err, models.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
