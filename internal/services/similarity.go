package services

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
)

// Similarity modes accepted by NewSimilarityScorer.
const (
	SimilarityAuto    = "auto"
	SimilarityTFIDF   = "tfidf"
	SimilarityJaccard = "jaccard"
)

// SimilarityScorer rates how close two skill lists are, in [0, 1].
type SimilarityScorer interface {
	Similarity(a, b []string) float64
	Name() string
}

// NewSimilarityScorer picks the strategy once. "auto" keeps TF-IDF only if it
// passes a sanity probe, and falls back to Jaccard otherwise.
func NewSimilarityScorer(mode string) (SimilarityScorer, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case SimilarityTFIDF:
		return NewTFIDFScorer(), nil
	case SimilarityJaccard:
		return NewJaccardScorer(), nil
	case "", SimilarityAuto:
		tfidf := NewTFIDFScorer()
		if probeScorer(tfidf) {
			return tfidf, nil
		}
		log.Warn().Msg("TF-IDF similarity failed probe, using Jaccard")
		return NewJaccardScorer(), nil
	default:
		return nil, fmt.Errorf("unknown similarity mode %q", mode)
	}
}

func probeScorer(s SimilarityScorer) bool {
	same := s.Similarity([]string{"Python", "SQL"}, []string{"Python", "SQL"})
	disjoint := s.Similarity([]string{"Python"}, []string{"Java"})
	return math.Abs(same-1) < 1e-9 && disjoint == 0
}

type jaccardScorer struct{}

func NewJaccardScorer() SimilarityScorer {
	return jaccardScorer{}
}

func (jaccardScorer) Name() string { return SimilarityJaccard }

// Similarity is |A∩B| / |A∪B| over lower-cased skills, 0 if either is empty.
func (jaccardScorer) Similarity(a, b []string) float64 {
	sa := lowerSet(a)
	sb := lowerSet(b)
	if len(sa) == 0 || len(sb) == 0 {
		return 0
	}

	inter := 0
	for s := range sa {
		if _, ok := sb[s]; ok {
			inter++
		}
	}
	union := len(sa) + len(sb) - inter
	return float64(inter) / float64(union)
}

func lowerSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, s := range items {
		set[strings.ToLower(s)] = struct{}{}
	}
	return set
}

// tokenPattern matches runs of two or more word characters.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

type tfidfScorer struct {
	fallback SimilarityScorer
}

func NewTFIDFScorer() SimilarityScorer {
	return tfidfScorer{fallback: NewJaccardScorer()}
}

func (tfidfScorer) Name() string { return SimilarityTFIDF }

// Similarity joins each list into one phrase, builds smoothed TF-IDF vectors
// over the two-phrase corpus and returns their cosine. A pair with no
// tokens at all is scored with Jaccard.
func (t tfidfScorer) Similarity(a, b []string) float64 {
	docA := tokenize(strings.Join(a, " "))
	docB := tokenize(strings.Join(b, " "))
	if len(docA) == 0 && len(docB) == 0 {
		return t.fallback.Similarity(a, b)
	}

	tfA := termCounts(docA)
	tfB := termCounts(docB)

	// idf = ln((1+n)/(1+df)) + 1 with n = 2 documents
	idf := func(term string) float64 {
		df := 0
		if _, ok := tfA[term]; ok {
			df++
		}
		if _, ok := tfB[term]; ok {
			df++
		}
		return math.Log(3/float64(1+df)) + 1
	}

	vecA := weigh(tfA, idf)
	vecB := weigh(tfB, idf)
	normA := norm(vecA)
	normB := norm(vecB)
	if normA == 0 || normB == 0 {
		return 0
	}

	dot := 0.0
	for term, w := range vecA {
		dot += w * vecB[term]
	}
	return dot / (normA * normB)
}

func tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

func termCounts(tokens []string) map[string]float64 {
	counts := make(map[string]float64, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	return counts
}

func weigh(tf map[string]float64, idf func(string) float64) map[string]float64 {
	vec := make(map[string]float64, len(tf))
	for term, count := range tf {
		vec[term] = count * idf(term)
	}
	return vec
}

func norm(vec map[string]float64) float64 {
	sum := 0.0
	for _, w := range vec {
		sum += w * w
	}
	return math.Sqrt(sum)
}
