package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"winterfieldday/logkeeper/internal/common"
	"winterfieldday/logkeeper/internal/contest"
	"winterfieldday/logkeeper/internal/db/repositories"
	"winterfieldday/logkeeper/internal/metrics"
	"winterfieldday/logkeeper/internal/models/dtos"
	gormModels "winterfieldday/logkeeper/internal/models/gorm"
	"winterfieldday/logkeeper/internal/services"
)

const contactsPerPage = 20

func contactResponse(c *gormModels.Contact) *dtos.ContactResponse {
	return &dtos.ContactResponse{
		ID:               c.ID,
		Callsign:         c.Callsign,
		Frequency:        c.Frequency,
		Band:             contest.BandForFrequency(c.Frequency),
		Mode:             c.Mode,
		RSTSent:          c.RSTSent,
		RSTReceived:      c.RSTReceived,
		ExchangeSent:     c.ExchangeSent,
		ExchangeReceived: c.ExchangeReceived,
		Section:          c.Section,
		LoggedAt:         c.LoggedAt,
		Notes:            c.Notes,
		OperatorCallsign: c.OperatorCallsign,
		StationSetupID:   c.StationSetupID,
	}
}

// parseID extracts a positive integer path parameter.
func parseID(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return uint(id), nil
}

// CreateContactHandler handles POST /api/v1/contacts
//
// Validates both exchange strings, derives the section, stamps the log
// time in UTC, and records which setup was active.
func CreateContactHandler(contacts *repositories.ContactRepository, stations *repositories.StationRepository,
	stats *services.StatsService, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.ContactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Invalid request body", http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.Callsign) == "" || strings.TrimSpace(req.Frequency) == "" || strings.TrimSpace(req.Mode) == "" {
			common.RespondError(w, initTime, nil, "callsign, frequency, and mode are required", http.StatusBadRequest)
			return
		}

		if err := contest.ValidateExchange(req.ExchangeSent); err != nil {
			common.RespondError(w, initTime, fmt.Errorf("exchange_sent: %w", err), "", http.StatusBadRequest)
			return
		}
		if err := contest.ValidateExchange(req.ExchangeReceived); err != nil {
			common.RespondError(w, initTime, fmt.Errorf("exchange_received: %w", err), "", http.StatusBadRequest)
			return
		}

		contact := &gormModels.Contact{
			Callsign:         strings.ToUpper(strings.TrimSpace(req.Callsign)),
			Frequency:        strings.TrimSpace(req.Frequency),
			Mode:             req.Mode,
			RSTSent:          req.RSTSent,
			RSTReceived:      req.RSTReceived,
			ExchangeSent:     req.ExchangeSent,
			ExchangeReceived: req.ExchangeReceived,
			LoggedAt:         time.Now().UTC(),
			Notes:            req.Notes,
			OperatorCallsign: req.OperatorCallsign,
		}

		if section, ok := contest.ExtractSection(req.ExchangeReceived); ok {
			contact.Section = &section
		}

		active, err := stations.Active(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to resolve active station")
			return
		}
		if active != nil {
			contact.StationSetupID = &active.ID
		}

		if err := contacts.Create(r.Context(), contact); err != nil {
			common.RespondError(w, initTime, err, "Failed to log contact")
			return
		}

		stats.InvalidateCaches()
		metricsReg.ContactsLoggedTotal.Inc()

		common.RespondSuccess(w, initTime,
			fmt.Sprintf("Contact with %s logged successfully", contact.Callsign),
			contactResponse(contact), http.StatusCreated)
	}
}

// ListContactsHandler handles GET /api/v1/contacts
func ListContactsHandler(contacts *repositories.ContactRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		page := 1
		if qs := r.URL.Query().Get("page"); qs != "" {
			p, err := strconv.Atoi(qs)
			if err != nil || p < 1 {
				common.RespondError(w, initTime, nil, "Invalid page parameter", http.StatusBadRequest)
				return
			}
			page = p
		}

		rows, total, err := contacts.List(r.Context(), page, contactsPerPage)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list contacts")
			return
		}

		list := dtos.ContactListResponse{
			Contacts:   make([]dtos.ContactResponse, 0, len(rows)),
			Total:      total,
			Page:       page,
			PerPage:    contactsPerPage,
			TotalPages: int((total + contactsPerPage - 1) / contactsPerPage),
		}
		for i := range rows {
			list.Contacts = append(list.Contacts, *contactResponse(&rows[i]))
		}

		common.RespondSuccess(w, initTime, "Fetched contacts", list)
	}
}

// GetContactHandler handles GET /api/v1/contacts/{id}
func GetContactHandler(contacts *repositories.ContactRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := parseID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}

		contact, err := contacts.GetByID(r.Context(), id)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch contact")
			return
		}
		if contact == nil {
			common.RespondError(w, initTime, nil, "Contact not found", http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "Fetched contact", contactResponse(contact))
	}
}

// UpdateContactHandler handles PUT /api/v1/contacts/{id}
//
// Revalidates both exchange strings and rederives the section; the
// original logged time is preserved.
func UpdateContactHandler(contacts *repositories.ContactRepository, stats *services.StatsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := parseID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}

		contact, err := contacts.GetByID(r.Context(), id)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch contact")
			return
		}
		if contact == nil {
			common.RespondError(w, initTime, nil, "Contact not found", http.StatusNotFound)
			return
		}

		var req dtos.ContactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Invalid request body", http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.Callsign) == "" || strings.TrimSpace(req.Frequency) == "" || strings.TrimSpace(req.Mode) == "" {
			common.RespondError(w, initTime, nil, "callsign, frequency, and mode are required", http.StatusBadRequest)
			return
		}

		if err := contest.ValidateExchange(req.ExchangeSent); err != nil {
			common.RespondError(w, initTime, fmt.Errorf("exchange_sent: %w", err), "", http.StatusBadRequest)
			return
		}
		if err := contest.ValidateExchange(req.ExchangeReceived); err != nil {
			common.RespondError(w, initTime, fmt.Errorf("exchange_received: %w", err), "", http.StatusBadRequest)
			return
		}

		contact.Callsign = strings.ToUpper(strings.TrimSpace(req.Callsign))
		contact.Frequency = strings.TrimSpace(req.Frequency)
		contact.Mode = req.Mode
		contact.RSTSent = req.RSTSent
		contact.RSTReceived = req.RSTReceived
		contact.ExchangeSent = req.ExchangeSent
		contact.ExchangeReceived = req.ExchangeReceived
		contact.Notes = req.Notes
		contact.OperatorCallsign = req.OperatorCallsign

		contact.Section = nil
		if section, ok := contest.ExtractSection(req.ExchangeReceived); ok {
			contact.Section = &section
		}

		if err := contacts.Update(r.Context(), contact); err != nil {
			common.RespondError(w, initTime, err, "Failed to update contact")
			return
		}

		stats.InvalidateCaches()

		common.RespondSuccess(w, initTime, "Contact updated", contactResponse(contact))
	}
}

// DeleteContactHandler handles DELETE /api/v1/contacts/{id}
func DeleteContactHandler(contacts *repositories.ContactRepository, stats *services.StatsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := parseID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusBadRequest)
			return
		}

		if err := contacts.Delete(r.Context(), id); err != nil {
			if err == gorm.ErrRecordNotFound {
				common.RespondError(w, initTime, nil, "Contact not found", http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Failed to delete contact")
			return
		}

		stats.InvalidateCaches()

		common.RespondSuccess(w, initTime, "Contact deleted", nil)
	}
}

// CheckDuplicateHandler handles GET /api/v1/contacts/check-duplicate
//
// Advisory only; both duplicate dimensions are reported as warnings
// and logging is never blocked. The band-level warning is suppressed
// when an exact duplicate already covers it.
func CheckDuplicateHandler(dupes *services.DuplicateService, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		callsign := strings.ToUpper(r.URL.Query().Get("callsign"))
		frequency := r.URL.Query().Get("frequency")
		mode := r.URL.Query().Get("mode")

		if callsign == "" || frequency == "" || mode == "" {
			common.RespondError(w, initTime, nil, "Missing required parameters", http.StatusBadRequest)
			return
		}

		result, err := dupes.Check(r.Context(), callsign, frequency, mode)
		if err != nil {
			common.RespondError(w, initTime, err, "Duplicate check failed")
			return
		}

		resp := dtos.DuplicateCheckResponse{
			IsDuplicate:     result.Exact != nil,
			IsBandDuplicate: result.BandLevel != nil,
			Warnings:        []dtos.DuplicateWarning{},
		}

		if result.Exact != nil {
			resp.ExactMatch = contactResponse(result.Exact)
			resp.Warnings = append(resp.Warnings, dtos.DuplicateWarning{
				Type: "danger",
				Message: fmt.Sprintf("Possible duplicate: %s worked recently at %s",
					callsign, result.Exact.LoggedAt.UTC().Format("15:04 UTC")),
			})
			metricsReg.DuplicateWarningsTotal.WithLabelValues("exact").Inc()
		}

		if result.BandLevel != nil {
			resp.BandMatch = contactResponse(result.BandLevel)
			if result.Exact == nil {
				resp.Warnings = append(resp.Warnings, dtos.DuplicateWarning{
					Type: "warning",
					Message: fmt.Sprintf("Already worked %s on this band/mode at %s",
						callsign, result.BandLevel.LoggedAt.UTC().Format("15:04 UTC")),
				})
			}
			metricsReg.DuplicateWarningsTotal.WithLabelValues("band").Inc()
		}

		common.RespondSuccess(w, initTime, "Duplicate check complete", resp)
	}
}
