package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"winterfieldday/logkeeper/internal/contest"
	"winterfieldday/logkeeper/internal/db/repositories"
	"winterfieldday/logkeeper/internal/models/dtos"
)

// ScoringService computes the contest score breakdown. Always a full
// recomputation over the log, so two calls over an unchanged log give
// identical output.
type ScoringService struct {
	contacts   *repositories.ContactRepository
	objectives *repositories.ObjectiveRepository
}

func NewScoringService(contacts *repositories.ContactRepository, objectives *repositories.ObjectiveRepository) *ScoringService {
	return &ScoringService{
		contacts:   contacts,
		objectives: objectives,
	}
}

// Calculate aggregates contact points, the section multiplier, and
// completed objective bonuses:
//
//	base  = points × max(1, distinct sections)
//	final = base × (1 + sum of completed objective multipliers)
func (s *ScoringService) Calculate(ctx context.Context) (*dtos.ScoreBreakdown, error) {
	contacts, err := s.contacts.AllChronological(ctx)
	if err != nil {
		return nil, fmt.Errorf("score calculation: %w", err)
	}

	contactPoints := 0
	uniqueSections := make(map[string]struct{})
	for _, c := range contacts {
		contactPoints += contest.ContactPoints(c.Mode)
		if c.Section != nil && *c.Section != "" {
			uniqueSections[strings.ToUpper(*c.Section)] = struct{}{}
		}
	}

	multipliers := len(uniqueSections)
	if multipliers == 0 {
		multipliers = 1
	}

	baseScore := contactPoints * multipliers

	completed, err := s.objectives.Completed(ctx)
	if err != nil {
		return nil, fmt.Errorf("score calculation: %w", err)
	}

	objectiveMultiplier := 0
	for _, obj := range completed {
		objectiveMultiplier += obj.Multiplier
	}

	sections := make([]string, 0, len(uniqueSections))
	for section := range uniqueSections {
		sections = append(sections, section)
	}
	sort.Strings(sections)

	return &dtos.ScoreBreakdown{
		ContactPoints:       contactPoints,
		Multipliers:         multipliers,
		UniqueSections:      sections,
		BaseScore:           baseScore,
		ObjectiveMultiplier: objectiveMultiplier,
		CompletedObjectives: len(completed),
		FinalScore:          baseScore * (1 + objectiveMultiplier),
	}, nil
}
