package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"winterfieldday/logkeeper/internal/constants"
	"winterfieldday/logkeeper/internal/contest"
	"winterfieldday/logkeeper/internal/db/repositories"
)

// ErrNoActiveStation reports an export that needs station identity
// when no setup is active.
var ErrNoActiveStation = errors.New("no active station setup")

// CabrilloService serializes the full log into the contest-submission
// format. Pure serialization over the chronological contact list plus
// the active station profile; repeated runs over an unchanged log are
// byte-identical.
type CabrilloService struct {
	contacts *repositories.ContactRepository
	stations *repositories.StationRepository
}

func NewCabrilloService(contacts *repositories.ContactRepository, stations *repositories.StationRepository) *CabrilloService {
	return &CabrilloService{
		contacts: contacts,
		stations: stations,
	}
}

// Generate builds the submission file. Fails with ErrNoActiveStation
// when no setup is active, since the header needs station identity.
func (s *CabrilloService) Generate(ctx context.Context) (string, error) {
	station, err := s.stations.Active(ctx)
	if err != nil {
		return "", fmt.Errorf("cabrillo export: %w", err)
	}
	if station == nil {
		return "", ErrNoActiveStation
	}

	contacts, err := s.contacts.AllChronological(ctx)
	if err != nil {
		return "", fmt.Errorf("cabrillo export: %w", err)
	}

	lines := []string{
		"START-OF-LOG: 3.0",
		"LOCATION: " + station.Section,
		"CALLSIGN: " + station.StationCallsign,
		"CONTEST: " + constants.ContestID,
		"CATEGORY-OPERATOR: SINGLE-OP",
		"CATEGORY-ASSISTED: NON-ASSISTED",
		"CATEGORY-BAND: ALL",
		"CATEGORY-MODE: MIXED",
		"CATEGORY-POWER: LOW",
		"CATEGORY-STATION: FIXED",
		"CATEGORY-TRANSMITTER: ONE",
		fmt.Sprintf("CLAIMED-SCORE: %d", len(contacts)),
		"OPERATORS: " + station.OperatorCallsign,
		"NAME: " + station.OperatorName,
		"ADDRESS: ",
		"ADDRESS-CITY: ",
		"ADDRESS-STATE: ",
		"ADDRESS-POSTALCODE: ",
		"ADDRESS-COUNTRY: ",
		"X-EXCHANGE: " + station.Category,
		"SOAPBOX: Generated by " + constants.ProgramID,
		"EMAIL: ",
	}

	for _, c := range contacts {
		freq := contest.CabrilloFrequency(c.Frequency)
		mode := contest.CabrilloMode(c.Mode)
		date := c.LoggedAt.UTC().Format("2006-01-02")
		tm := c.LoggedAt.UTC().Format("1504")

		lines = append(lines, fmt.Sprintf("QSO: %5s %2s %s %s %s %s %s %s %s",
			freq, mode, date, tm,
			station.StationCallsign, station.Category, station.Section,
			c.Callsign, c.ExchangeReceived))
	}

	lines = append(lines, "END-OF-LOG: ")

	return strings.Join(lines, "\n"), nil
}

// Filename derives the download name for the submission file.
func (s *CabrilloService) Filename(ctx context.Context) (string, error) {
	station, err := s.stations.Active(ctx)
	if err != nil {
		return "", err
	}
	if station == nil {
		return "", ErrNoActiveStation
	}
	return fmt.Sprintf("%s_%s.log", station.StationCallsign, constants.ContestEvent), nil
}
