package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"winterfieldday/logkeeper/internal/contest"
	"winterfieldday/logkeeper/internal/db/repositories"
	gormModels "winterfieldday/logkeeper/internal/models/gorm"
)

// DuplicateWindow is how far back the exact-duplicate scan looks.
const DuplicateWindow = 10 * time.Minute

// DuplicateCheckResult carries both duplicate dimensions. A contact
// can match either, both, or neither; the checks are independent and
// purely advisory.
type DuplicateCheckResult struct {
	Exact     *gormModels.Contact
	BandLevel *gormModels.Contact
}

// DuplicateService scans the log for collisions with a prospective
// contact. It rescans on every call; at contest volumes the table is
// at most a few thousand rows.
type DuplicateService struct {
	contacts *repositories.ContactRepository
	now      func() time.Time
}

func NewDuplicateService(contacts *repositories.ContactRepository) *DuplicateService {
	return &DuplicateService{
		contacts: contacts,
		now:      time.Now,
	}
}

// Check looks for an exact duplicate (same callsign inside the
// trailing window) and a band-level duplicate (same callsign, same
// band, same mode, any age).
func (s *DuplicateService) Check(ctx context.Context, callsign, frequency, mode string) (*DuplicateCheckResult, error) {
	result := &DuplicateCheckResult{}

	cutoff := s.now().UTC().Add(-DuplicateWindow)
	exact, err := s.contacts.ByCallsignSince(ctx, callsign, cutoff)
	if err != nil {
		return nil, fmt.Errorf("exact duplicate scan: %w", err)
	}
	result.Exact = exact

	band := contest.BandForFrequency(frequency)
	existing, err := s.contacts.AllByCallsign(ctx, callsign)
	if err != nil {
		return nil, fmt.Errorf("band duplicate scan: %w", err)
	}

	for i := range existing {
		c := &existing[i]
		if contest.BandForFrequency(c.Frequency) != band {
			continue
		}
		if !strings.EqualFold(c.Mode, mode) {
			continue
		}
		result.BandLevel = c
		break
	}

	return result, nil
}
