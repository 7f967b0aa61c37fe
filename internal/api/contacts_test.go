package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"winterfieldday/logkeeper/internal/common"
	"winterfieldday/logkeeper/internal/db/repositories"
	"winterfieldday/logkeeper/internal/metrics"
	"winterfieldday/logkeeper/internal/models/dtos"
	gormModels "winterfieldday/logkeeper/internal/models/gorm"
	"winterfieldday/logkeeper/internal/services"
)

var testMetrics = metrics.NewMetricsRegistry()

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Auto migrate
	if err := db.AutoMigrate(
		&gormModels.Contact{},
		&gormModels.StationSetup{},
		&gormModels.StationConfig{},
		&gormModels.Objective{},
	); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func newContactDeps(db *gorm.DB) (*repositories.ContactRepository, *repositories.StationRepository, *services.StatsService) {
	contacts := repositories.NewContactRepository(db)
	stations := repositories.NewStationRepository(db)
	stats := services.NewStatsService(nil, contacts, common.NewCacheService(60, 600))
	return contacts, stations, stats
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	bodyBytes, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", target, bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestCreateContactHandler_Success(t *testing.T) {
	db := setupTestDB(t)
	contacts, stations, stats := newContactDeps(db)

	handler := CreateContactHandler(contacts, stations, stats, testMetrics)
	rr := postJSON(t, handler, "/api/v1/contacts", dtos.ContactRequest{
		Callsign:         "w9xyz",
		Frequency:        "14.250",
		Mode:             "SSB",
		RSTSent:          "59",
		RSTReceived:      "57",
		ExchangeSent:     "2I WI",
		ExchangeReceived: "1H OH",
	})

	if rr.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var response dtos.APIResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Status != "ok" {
		t.Errorf("Expected ok status, got %s", response.Status)
	}

	var stored gormModels.Contact
	if err := db.First(&stored).Error; err != nil {
		t.Fatalf("Expected stored contact: %v", err)
	}
	if stored.Callsign != "W9XYZ" {
		t.Errorf("Expected uppercased callsign, got %s", stored.Callsign)
	}
	if stored.Section == nil || *stored.Section != "OH" {
		t.Errorf("Expected derived section OH, got %v", stored.Section)
	}
	if stored.LoggedAt.IsZero() {
		t.Error("Expected logged_at to be stamped")
	}
}

func TestCreateContactHandler_InvalidExchange(t *testing.T) {
	db := setupTestDB(t)
	contacts, stations, stats := newContactDeps(db)

	handler := CreateContactHandler(contacts, stations, stats, testMetrics)
	rr := postJSON(t, handler, "/api/v1/contacts", dtos.ContactRequest{
		Callsign:         "W9XYZ",
		Frequency:        "14.250",
		Mode:             "SSB",
		ExchangeSent:     "2I WI",
		ExchangeReceived: "XX OH", // bad category
	})

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}

	var count int64
	db.Model(&gormModels.Contact{}).Count(&count)
	if count != 0 {
		t.Error("Expected no contact stored on validation failure")
	}
}

func TestCreateContactHandler_InvalidSentExchange(t *testing.T) {
	db := setupTestDB(t)
	contacts, stations, stats := newContactDeps(db)

	// The sent exchange passes through the same grammar as the
	// received one.
	handler := CreateContactHandler(contacts, stations, stats, testMetrics)
	rr := postJSON(t, handler, "/api/v1/contacts", dtos.ContactRequest{
		Callsign:         "W9XYZ",
		Frequency:        "14.250",
		Mode:             "SSB",
		ExchangeSent:     "garbage not-a-section at-all",
		ExchangeReceived: "1H OH",
	})

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}

	var count int64
	db.Model(&gormModels.Contact{}).Count(&count)
	if count != 0 {
		t.Error("Expected no contact stored on validation failure")
	}
}

func TestCreateContactHandler_UnknownSectionStored(t *testing.T) {
	db := setupTestDB(t)
	contacts, stations, stats := newContactDeps(db)

	// MX is a valid exchange token but not a multiplier section; the
	// contact is stored with its literal section.
	handler := CreateContactHandler(contacts, stations, stats, testMetrics)
	rr := postJSON(t, handler, "/api/v1/contacts", dtos.ContactRequest{
		Callsign:         "XE1ABC",
		Frequency:        "14.250",
		Mode:             "SSB",
		ExchangeSent:     "2I WI",
		ExchangeReceived: "1O MX",
	})

	if rr.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var stored gormModels.Contact
	if err := db.First(&stored).Error; err != nil {
		t.Fatalf("Expected stored contact: %v", err)
	}
	if stored.Section == nil || *stored.Section != "MX" {
		t.Errorf("Expected section MX, got %v", stored.Section)
	}
}

func putJSON(t *testing.T, router http.Handler, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	bodyBytes, _ := json.Marshal(body)
	req := httptest.NewRequest("PUT", target, bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func seedUpdatableContact(t *testing.T, db *gorm.DB) *gormModels.Contact {
	t.Helper()
	contact := &gormModels.Contact{
		Callsign:         "W1AW",
		Frequency:        "14.250",
		Mode:             "SSB",
		RSTSent:          "59",
		RSTReceived:      "59",
		ExchangeSent:     "2I WI",
		ExchangeReceived: "1H OH",
		LoggedAt:         time.Now().UTC(),
	}
	if err := db.Create(contact).Error; err != nil {
		t.Fatalf("Failed to seed contact: %v", err)
	}
	return contact
}

func TestUpdateContactHandler_RequiredFields(t *testing.T) {
	db := setupTestDB(t)
	contacts, _, stats := newContactDeps(db)
	seed := seedUpdatableContact(t, db)

	r := chi.NewRouter()
	r.Put("/api/v1/contacts/{id}", UpdateContactHandler(contacts, stats))

	// A blank callsign must not erase the stored one.
	rr := putJSON(t, r, fmt.Sprintf("/api/v1/contacts/%d", seed.ID), dtos.ContactRequest{
		Callsign:         "",
		Frequency:        "14.250",
		Mode:             "SSB",
		ExchangeSent:     "2I WI",
		ExchangeReceived: "1H OH",
	})

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}

	var stored gormModels.Contact
	if err := db.First(&stored, seed.ID).Error; err != nil {
		t.Fatalf("Expected stored contact: %v", err)
	}
	if stored.Callsign != "W1AW" {
		t.Errorf("Expected callsign untouched, got %q", stored.Callsign)
	}
}

func TestUpdateContactHandler_InvalidSentExchange(t *testing.T) {
	db := setupTestDB(t)
	contacts, _, stats := newContactDeps(db)
	seed := seedUpdatableContact(t, db)

	r := chi.NewRouter()
	r.Put("/api/v1/contacts/{id}", UpdateContactHandler(contacts, stats))

	rr := putJSON(t, r, fmt.Sprintf("/api/v1/contacts/%d", seed.ID), dtos.ContactRequest{
		Callsign:         "W1AW",
		Frequency:        "14.250",
		Mode:             "SSB",
		ExchangeSent:     "not an exchange",
		ExchangeReceived: "1H OH",
	})

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}

	var stored gormModels.Contact
	if err := db.First(&stored, seed.ID).Error; err != nil {
		t.Fatalf("Expected stored contact: %v", err)
	}
	if stored.ExchangeSent != "2I WI" {
		t.Errorf("Expected sent exchange untouched, got %q", stored.ExchangeSent)
	}
}

func TestCheckDuplicateHandler_Warnings(t *testing.T) {
	db := setupTestDB(t)
	contacts, _, _ := newContactDeps(db)

	recent := &gormModels.Contact{
		Callsign:    "W1AW",
		Frequency:   "14.250",
		Mode:        "SSB",
		RSTSent:     "59",
		RSTReceived: "59",
		LoggedAt:    time.Now().UTC().Add(-2 * time.Minute),
	}
	if err := db.Create(recent).Error; err != nil {
		t.Fatalf("Failed to seed contact: %v", err)
	}

	handler := CheckDuplicateHandler(services.NewDuplicateService(contacts), testMetrics)
	req := httptest.NewRequest("GET", "/api/v1/contacts/check-duplicate?callsign=w1aw&frequency=14.250&mode=SSB", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var response struct {
		Data dtos.DuplicateCheckResponse `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if !response.Data.IsDuplicate {
		t.Error("Expected exact duplicate flag")
	}
	if !response.Data.IsBandDuplicate {
		t.Error("Expected band duplicate flag")
	}
	// Exact warning suppresses the band warning.
	if len(response.Data.Warnings) != 1 {
		t.Fatalf("Expected 1 warning, got %v", response.Data.Warnings)
	}
	if response.Data.Warnings[0].Type != "danger" {
		t.Errorf("Expected danger warning, got %+v", response.Data.Warnings[0])
	}
}

func TestCheckDuplicateHandler_MissingParams(t *testing.T) {
	db := setupTestDB(t)
	contacts, _, _ := newContactDeps(db)

	handler := CheckDuplicateHandler(services.NewDuplicateService(contacts), testMetrics)
	req := httptest.NewRequest("GET", "/api/v1/contacts/check-duplicate?callsign=W1AW", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestGetContactHandler_NotFound(t *testing.T) {
	db := setupTestDB(t)
	contacts, _, _ := newContactDeps(db)

	r := chi.NewRouter()
	r.Get("/api/v1/contacts/{id}", GetContactHandler(contacts))

	req := httptest.NewRequest("GET", "/api/v1/contacts/42", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rr.Code)
	}
}
