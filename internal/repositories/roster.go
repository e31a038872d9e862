package repositories

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"alfredoptarigan/studybuddy/internal/models"
)

//go:embed roster.yaml
var defaultRoster []byte

// RosterRepository serves the fixed list of study partners. The roster is
// loaded once and never mutated afterwards.
type RosterRepository interface {
	All() []models.PartnerCandidate
	Count() int
}

type rosterRepository struct {
	partners []models.PartnerCandidate
}

// NewRosterRepository loads the roster from path, or the built-in roster
// when path is empty.
func NewRosterRepository(path string) (RosterRepository, error) {
	data := defaultRoster
	if strings.TrimSpace(path) != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read roster file: %w", err)
		}
		data = raw
	}

	partners, err := parseRoster(data)
	if err != nil {
		return nil, err
	}

	return &rosterRepository{partners: partners}, nil
}

// NewStaticRosterRepository wraps an in-memory roster as-is.
func NewStaticRosterRepository(partners []models.PartnerCandidate) RosterRepository {
	return &rosterRepository{partners: clonePartners(partners)}
}

func parseRoster(data []byte) ([]models.PartnerCandidate, error) {
	var partners []models.PartnerCandidate
	if err := yaml.Unmarshal(data, &partners); err != nil {
		return nil, fmt.Errorf("failed to parse roster: %w", err)
	}

	for i, p := range partners {
		if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Email) == "" {
			return nil, fmt.Errorf("roster entry %d: name and email are required", i)
		}
		if p.Score < 0 || p.Score > 5 {
			return nil, fmt.Errorf("roster entry %d (%s): score %d out of range 0-5", i, p.Name, p.Score)
		}
	}

	return partners, nil
}

// All implements RosterRepository. Callers get a copy in roster order.
func (r *rosterRepository) All() []models.PartnerCandidate {
	return clonePartners(r.partners)
}

// Count implements RosterRepository.
func (r *rosterRepository) Count() int {
	return len(r.partners)
}

func clonePartners(in []models.PartnerCandidate) []models.PartnerCandidate {
	out := make([]models.PartnerCandidate, len(in))
	for i, p := range in {
		p.Skills = append([]string(nil), p.Skills...)
		out[i] = p
	}
	return out
}
