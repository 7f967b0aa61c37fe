package services

import (
	"context"
	"fmt"
	"strings"

	"winterfieldday/logkeeper/internal/contest"
	"winterfieldday/logkeeper/internal/db/repositories"
	"winterfieldday/logkeeper/internal/models/dtos"
)

// StationService derives operating state from the active station
// setup: the operator roster, the resolved timezone, and the default
// exchange.
type StationService struct {
	stations *repositories.StationRepository
}

func NewStationService(stations *repositories.StationRepository) *StationService {
	return &StationService{stations: stations}
}

// Operators returns the selectable operator list for the active setup:
// the primary operator first, then the additional-operator roster, one
// entry per line. A roster line in "Name (CALL)" form yields the
// callsign inside the parentheses; anything else is treated as a bare
// callsign. Empty when no setup is active.
func (s *StationService) Operators(ctx context.Context) ([]dtos.OperatorOption, error) {
	station, err := s.stations.Active(ctx)
	if err != nil {
		return nil, fmt.Errorf("operator roster: %w", err)
	}
	if station == nil {
		return []dtos.OperatorOption{}, nil
	}

	operators := []dtos.OperatorOption{{
		Callsign: station.OperatorCallsign,
		Label:    fmt.Sprintf("%s (%s)", station.OperatorName, station.OperatorCallsign),
	}}

	for _, line := range strings.Split(strings.TrimSpace(station.AdditionalOperators), "\n") {
		entry := strings.TrimSpace(line)
		if entry == "" || entry == station.OperatorCallsign {
			continue
		}

		if start := strings.Index(entry, "("); start >= 0 {
			if end := strings.Index(entry[start:], ")"); end > 0 {
				operators = append(operators, dtos.OperatorOption{
					Callsign: strings.ToUpper(entry[start+1 : start+end]),
					Label:    entry,
				})
				continue
			}
		}

		operators = append(operators, dtos.OperatorOption{
			Callsign: strings.ToUpper(entry),
			Label:    strings.ToUpper(entry),
		})
	}

	return operators, nil
}

// Timezone resolves the active station's timezone. An explicit
// override on the setup wins; otherwise the timezone derives from the
// section. No active setup resolves to Eastern.
func (s *StationService) Timezone(ctx context.Context) (*dtos.TimezoneResponse, error) {
	station, err := s.stations.Active(ctx)
	if err != nil {
		return nil, fmt.Errorf("station timezone: %w", err)
	}

	if station == nil {
		return &dtos.TimezoneResponse{
			Timezone: "America/New_York",
			Section:  nil,
			Label:    "Eastern",
		}, nil
	}

	var tz string
	if station.Timezone != nil && *station.Timezone != "" {
		tz = *station.Timezone
	} else {
		tz = contest.TimezoneForSection(station.Section)
	}

	section := station.Section
	return &dtos.TimezoneResponse{
		Timezone: tz,
		Section:  &section,
		Label:    contest.TimezoneLabel(tz),
	}, nil
}

// DefaultExchange is the exchange-sent string a setup implies.
func DefaultExchange(category, section string) string {
	return strings.TrimSpace(category + " " + section)
}
