package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"winterfieldday/logkeeper/internal/common"
	"winterfieldday/logkeeper/internal/constants"
	"winterfieldday/logkeeper/internal/contest"
	"winterfieldday/logkeeper/internal/db/repositories"
	"winterfieldday/logkeeper/internal/models/dtos"
	gormModels "winterfieldday/logkeeper/internal/models/gorm"
)

// statsCacheTTL bounds staleness of the analytics aggregations. The
// stats pages poll; recomputing the full log on every poll is wasted
// work during a pileup.
const statsCacheTTL = 30 * time.Second

// StatsService produces the overview summary and the per-band,
// temporal, and per-mode analytics. Aggregations are full scans over
// the log; records that cannot be aggregated are counted in
// SkippedRecords rather than silently dropped.
type StatsService struct {
	stats    *repositories.StatsRepository
	contacts *repositories.ContactRepository
	cache    common.CacheInterface
}

func NewStatsService(stats *repositories.StatsRepository, contacts *repositories.ContactRepository, cache common.CacheInterface) *StatsService {
	return &StatsService{
		stats:    stats,
		contacts: contacts,
		cache:    cache,
	}
}

// Summary returns the overview groupings: totals, per-mode, per-band,
// and per-operator counts.
func (s *StatsService) Summary(ctx context.Context) (*dtos.StatsSummary, error) {
	total, err := s.stats.TotalContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats summary: %w", err)
	}

	modes, err := s.stats.ModeCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats summary: %w", err)
	}

	frequencies, err := s.stats.FrequencyCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats summary: %w", err)
	}

	operators, err := s.stats.OperatorCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats summary: %w", err)
	}

	bands := make(map[string]int64, len(frequencies))
	for freq, count := range frequencies {
		bands[contest.BandForFrequency(freq)] += count
	}

	return &dtos.StatsSummary{
		TotalContacts:  total,
		ModeCounts:     modes,
		BandCounts:     bands,
		OperatorCounts: operators,
	}, nil
}

// Activity runs the three analytics aggregations concurrently and
// bundles them into one report.
func (s *StatsService) Activity(ctx context.Context) (*dtos.ActivityReport, error) {
	report := &dtos.ActivityReport{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		bands, err := s.BandActivity(gctx)
		if err != nil {
			return err
		}
		report.Bands = *bands
		return nil
	})
	g.Go(func() error {
		temporal, err := s.TemporalActivity(gctx)
		if err != nil {
			return err
		}
		report.Temporal = *temporal
		return nil
	})
	g.Go(func() error {
		modes, err := s.ModeStatistics(gctx)
		if err != nil {
			return err
		}
		report.Modes = *modes
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("activity report: %w", err)
	}

	return report, nil
}

// decodeCached recovers a typed aggregation from a cache hit. The
// in-memory cache hands back the stored pointer; the Redis cache hands
// back the JSON-decoded generic form, which re-marshals into the DTO.
func decodeCached[T any](cached interface{}) (*T, bool) {
	if typed, ok := cached.(*T); ok {
		return typed, true
	}
	data, err := json.Marshal(cached)
	if err != nil {
		return nil, false
	}
	out := new(T)
	if err := json.Unmarshal(data, out); err != nil {
		return nil, false
	}
	return out, true
}

// BandActivity returns the cached per-band aggregation, recomputing on
// a miss.
func (s *StatsService) BandActivity(ctx context.Context) (*dtos.BandActivity, error) {
	key := string(constants.CachePrefixBandActivity)
	if cached, found := s.cache.Get(key); found {
		if activity, ok := decodeCached[dtos.BandActivity](cached); ok {
			return activity, nil
		}
	}

	contacts, err := s.contacts.AllChronological(ctx)
	if err != nil {
		return nil, fmt.Errorf("band activity: %w", err)
	}

	activity := s.bandActivity(contacts)
	result := &activity
	s.cache.Set(key, result, statsCacheTTL)
	return result, nil
}

// TemporalActivity returns the cached time-based aggregation.
func (s *StatsService) TemporalActivity(ctx context.Context) (*dtos.TemporalActivity, error) {
	key := string(constants.CachePrefixTemporalActivity)
	if cached, found := s.cache.Get(key); found {
		if activity, ok := decodeCached[dtos.TemporalActivity](cached); ok {
			return activity, nil
		}
	}

	contacts, err := s.contacts.AllChronological(ctx)
	if err != nil {
		return nil, fmt.Errorf("temporal activity: %w", err)
	}

	activity := s.temporalActivity(contacts)
	result := &activity
	s.cache.Set(key, result, statsCacheTTL)
	return result, nil
}

// ModeStatistics returns the cached per-mode aggregation.
func (s *StatsService) ModeStatistics(ctx context.Context) (*dtos.ModeStatistics, error) {
	key := string(constants.CachePrefixModeStats)
	if cached, found := s.cache.Get(key); found {
		if stats, ok := decodeCached[dtos.ModeStatistics](cached); ok {
			return stats, nil
		}
	}

	contacts, err := s.contacts.AllChronological(ctx)
	if err != nil {
		return nil, fmt.Errorf("mode statistics: %w", err)
	}

	stats := s.modeStatistics(contacts)
	result := &stats
	s.cache.Set(key, result, statsCacheTTL)
	return result, nil
}

// InvalidateCaches drops the analytics caches. Called after any write
// to the contact log.
func (s *StatsService) InvalidateCaches() {
	s.cache.Delete(string(constants.CachePrefixBandActivity))
	s.cache.Delete(string(constants.CachePrefixTemporalActivity))
	s.cache.Delete(string(constants.CachePrefixModeStats))
}

// MapData derives the worked-section list, the matching US states, and
// per-section contact counts.
func (s *StatsService) MapData(ctx context.Context) (*dtos.MapData, error) {
	counts, err := s.contacts.SectionCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("map data: %w", err)
	}

	sections := make([]string, 0, len(counts))
	stateSet := make(map[string]struct{})
	for section := range counts {
		sections = append(sections, section)
		if state, ok := constants.SectionStates[section]; ok {
			stateSet[state] = struct{}{}
		}
	}
	sort.Strings(sections)

	states := make([]string, 0, len(stateSet))
	for state := range stateSet {
		states = append(states, state)
	}
	sort.Strings(states)

	return &dtos.MapData{
		States:        states,
		Sections:      sections,
		SectionCounts: counts,
	}, nil
}

func (s *StatsService) bandActivity(contacts []gormModels.Contact) dtos.BandActivity {
	activity := dtos.BandActivity{
		BandCounts:     make(map[string]int),
		ModesPerBand:   make(map[string]map[string]int),
		HourlyActivity: make(map[string][24]int),
	}

	for _, c := range contacts {
		if c.Frequency == "" || c.LoggedAt.IsZero() {
			activity.SkippedRecords++
			continue
		}

		band := contest.BandForFrequency(c.Frequency)
		activity.BandCounts[band]++

		if activity.ModesPerBand[band] == nil {
			activity.ModesPerBand[band] = make(map[string]int)
		}
		activity.ModesPerBand[band][c.Mode]++

		hours := activity.HourlyActivity[band]
		hours[c.LoggedAt.UTC().Hour()]++
		activity.HourlyActivity[band] = hours
	}

	return activity
}

func (s *StatsService) temporalActivity(contacts []gormModels.Contact) dtos.TemporalActivity {
	activity := dtos.TemporalActivity{
		DailyCounts: make(map[string]int),
		Cumulative:  make([]dtos.CumulativePoint, 0, len(contacts)),
	}

	running := 0
	for _, c := range contacts {
		if c.LoggedAt.IsZero() {
			activity.SkippedRecords++
			continue
		}

		logged := c.LoggedAt.UTC()
		activity.HourlyCounts[logged.Hour()]++
		activity.DailyCounts[logged.Format("2006-01-02")]++

		running++
		activity.Cumulative = append(activity.Cumulative, dtos.CumulativePoint{
			Time:  logged.Format("2006-01-02 15:04"),
			Count: running,
		})
	}

	return activity
}

func (s *StatsService) modeStatistics(contacts []gormModels.Contact) dtos.ModeStatistics {
	stats := dtos.ModeStatistics{
		ModeCounts: make(map[string]int),
		ModePoints: make(map[string]int),
		ModeHourly: make(map[string][24]int),
	}

	for _, c := range contacts {
		if c.Mode == "" || c.LoggedAt.IsZero() {
			stats.SkippedRecords++
			continue
		}

		stats.ModeCounts[c.Mode]++
		stats.ModePoints[c.Mode] += contest.ContactPoints(c.Mode)

		hours := stats.ModeHourly[c.Mode]
		hours[c.LoggedAt.UTC().Hour()]++
		stats.ModeHourly[c.Mode] = hours
	}

	return stats
}
