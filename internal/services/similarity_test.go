package services

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-3
}

func TestJaccardScorer(t *testing.T) {
	s := NewJaccardScorer()

	tests := []struct {
		name string
		a, b []string
		want float64
	}{
		{"two of four", []string{"Python", "SQL"}, []string{"Python", "Flask", "SQL"}, 2.0 / 3.0},
		{"case insensitive", []string{"python", "SQL"}, []string{"Python", "sql"}, 1},
		{"one of two", []string{"Python", "SQL"}, []string{"Python"}, 0.5},
		{"empty side", nil, []string{"Python"}, 0},
		{"disjoint", []string{"Go"}, []string{"Rust"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Similarity(tt.a, tt.b); !approx(got, tt.want) {
				t.Fatalf("got %f, want %f", got, tt.want)
			}
		})
	}
}

func TestTFIDFScorer(t *testing.T) {
	s := NewTFIDFScorer()

	if got := s.Similarity([]string{"Python", "SQL"}, []string{"Python", "Flask", "SQL"}); !approx(got, 0.7093) {
		t.Fatalf("got %f, want ~0.7093", got)
	}
	if got := s.Similarity([]string{"Python", "SQL"}, []string{"Python"}); !approx(got, 0.5797) {
		t.Fatalf("got %f, want ~0.5797", got)
	}
	if got := s.Similarity([]string{"Data Analysis"}, []string{"data analysis"}); !approx(got, 1) {
		t.Fatalf("identical phrases should score 1, got %f", got)
	}
	if got := s.Similarity([]string{"Python"}, []string{"React"}); got != 0 {
		t.Fatalf("disjoint phrases should score 0, got %f", got)
	}
}

func TestTFIDFScorer_EmptyVocabularyFallsBack(t *testing.T) {
	s := NewTFIDFScorer()
	// single-letter skills produce no tokens
	if got := s.Similarity([]string{"C"}, []string{"C", "R"}); !approx(got, 0.5) {
		t.Fatalf("expected Jaccard fallback 0.5, got %f", got)
	}
}

func TestNewSimilarityScorer(t *testing.T) {
	tests := map[string]string{
		"":        SimilarityTFIDF,
		"auto":    SimilarityTFIDF,
		"TFIDF":   SimilarityTFIDF,
		"jaccard": SimilarityJaccard,
	}
	for mode, want := range tests {
		s, err := NewSimilarityScorer(mode)
		if err != nil {
			t.Fatalf("mode %q: unexpected err: %v", mode, err)
		}
		if s.Name() != want {
			t.Fatalf("mode %q: got %s, want %s", mode, s.Name(), want)
		}
	}

	if _, err := NewSimilarityScorer("bm25"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
