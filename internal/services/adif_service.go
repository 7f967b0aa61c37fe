package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"winterfieldday/logkeeper/internal/constants"
	"winterfieldday/logkeeper/internal/db/repositories"
)

// ADIFService serializes the log into ADIF interchange records. Unlike
// the Cabrillo exporter it works without an active station; the active
// setup only contributes the grid square and the download filename.
type ADIFService struct {
	contacts *repositories.ContactRepository
	stations *repositories.StationRepository
	now      func() time.Time
}

func NewADIFService(contacts *repositories.ContactRepository, stations *repositories.StationRepository) *ADIFService {
	return &ADIFService{
		contacts: contacts,
		stations: stations,
		now:      time.Now,
	}
}

// adifField renders one length-prefixed field. The declared length is
// the UTF-8 byte count, so a reader consuming exactly that many bytes
// recovers the original value even for non-ASCII notes and names.
func adifField(tag, value string) string {
	return fmt.Sprintf("<%s:%d>%s", tag, len(value), value)
}

// Generate builds the ADIF document: header, then one record per
// contact in chronological order.
func (s *ADIFService) Generate(ctx context.Context) (string, error) {
	contacts, err := s.contacts.AllChronological(ctx)
	if err != nil {
		return "", fmt.Errorf("adif export: %w", err)
	}

	station, err := s.stations.Active(ctx)
	if err != nil {
		return "", fmt.Errorf("adif export: %w", err)
	}

	var b strings.Builder
	b.WriteString("ADIF Export from " + constants.ProgramID + "\n")
	b.WriteString("Generated: " + s.now().UTC().Format("2006-01-02 15:04:05") + " UTC\n")
	b.WriteString("\n")
	b.WriteString(adifField("ADIF_VER", constants.ADIFVersion) + "\n")
	b.WriteString(adifField("PROGRAMID", constants.ProgramID) + "\n")
	b.WriteString("<EOH>\n")
	b.WriteString("\n")

	for _, c := range contacts {
		freq := c.Frequency
		if _, err := strconv.ParseFloat(strings.TrimSpace(freq), 64); err != nil {
			freq = strconv.FormatFloat(constants.DefaultADIFFrequency, 'f', -1, 64)
		}

		b.WriteString(adifField("CALL", c.Callsign))
		b.WriteString(adifField("QSO_DATE", c.LoggedAt.UTC().Format("20060102")))
		b.WriteString(adifField("TIME_ON", c.LoggedAt.UTC().Format("150405")))
		b.WriteString(adifField("FREQ", freq))
		b.WriteString(adifField("MODE", strings.ToUpper(c.Mode)))
		b.WriteString(adifField("RST_SENT", c.RSTSent))
		b.WriteString(adifField("RST_RCVD", c.RSTReceived))
		if c.ExchangeReceived != "" {
			b.WriteString(adifField("STX_STRING", c.ExchangeSent))
			b.WriteString(adifField("SRX_STRING", c.ExchangeReceived))
		}
		if c.Section != nil && *c.Section != "" {
			b.WriteString(adifField("STATE", *c.Section))
		}
		if c.Notes != "" {
			b.WriteString(adifField("NOTES", c.Notes))
		}
		b.WriteString(adifField("CONTEST_ID", constants.ContestID))
		if station != nil && station.GridSquare != nil && *station.GridSquare != "" {
			b.WriteString(adifField("GRIDSQUARE", *station.GridSquare))
		}
		b.WriteString("<EOR>\n")
	}

	return b.String(), nil
}

// Filename derives the download name, falling back to a generic one
// when no setup is active.
func (s *ADIFService) Filename(ctx context.Context) (string, error) {
	station, err := s.stations.Active(ctx)
	if err != nil {
		return "", err
	}
	if station == nil {
		return constants.ContestID + "_contacts.adif", nil
	}
	return station.StationCallsign + "_contacts.adif", nil
}
