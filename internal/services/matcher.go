package services

import (
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"alfredoptarigan/studybuddy/internal/models"
	"alfredoptarigan/studybuddy/internal/repositories"
)

const (
	advancedThreshold = 4
	advancedBonus     = 0.12
)

type PartnerMatcher interface {
	Match(score *int, skills []string, email string) models.MatchResult
}

type partnerMatcher struct {
	roster repositories.RosterRepository
	scorer SimilarityScorer
}

func NewPartnerMatcher(roster repositories.RosterRepository, scorer SimilarityScorer) PartnerMatcher {
	return &partnerMatcher{
		roster: roster,
		scorer: scorer,
	}
}

type rankedCandidate struct {
	candidate models.PartnerCandidate
	total     float64
}

// Match ranks the roster by similarity plus the advanced-pair bonus. Equal
// totals keep roster order. score is nil when no quiz has been taken.
func (m *partnerMatcher) Match(score *int, skills []string, email string) models.MatchResult {
	partners := m.roster.All()
	if len(skills) == 0 {
		if len(partners) == 0 {
			return models.NoMatch()
		}
		first := partners[0]
		return models.MatchResult{Name: first.Name, Email: first.Email, Bio: first.Bio}
	}

	ranked := make([]rankedCandidate, 0, len(partners))
	for _, cand := range partners {
		if email != "" && strings.EqualFold(cand.Email, email) {
			continue
		}

		total := m.scorer.Similarity(skills, cand.Skills)
		if score != nil && *score >= advancedThreshold && cand.Score >= advancedThreshold {
			total += advancedBonus
		}
		ranked = append(ranked, rankedCandidate{candidate: cand, total: total})
	}

	if len(ranked) == 0 {
		return models.NoMatch()
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].total > ranked[j].total
	})

	top := ranked[0]
	log.Debug().
		Str("partner", top.candidate.Email).
		Float64("score", top.total).
		Str("scorer", m.scorer.Name()).
		Msg("Partner matched")

	return models.MatchResult{
		Name:        top.candidate.Name,
		Email:       top.candidate.Email,
		SharedSkill: sharedSkill(skills, top.candidate.Skills),
		Bio:         top.candidate.Bio,
	}
}

// sharedSkill is the candidate's first skill the user also has, or the
// candidate's first skill when nothing overlaps.
func sharedSkill(userSkills, candidateSkills []string) *string {
	if len(candidateSkills) == 0 {
		return nil
	}

	user := lowerSet(userSkills)
	for _, s := range candidateSkills {
		if _, ok := user[strings.ToLower(s)]; ok {
			shared := s
			return &shared
		}
	}

	first := candidateSkills[0]
	return &first
}
