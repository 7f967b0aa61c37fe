package services

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"winterfieldday/logkeeper/internal/db/repositories"
	gormModels "winterfieldday/logkeeper/internal/models/gorm"
)

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

func seedContact(t *testing.T, db *gorm.DB, callsign, frequency, mode string, loggedAt time.Time) *gormModels.Contact {
	t.Helper()
	contact := &gormModels.Contact{
		Callsign:         callsign,
		Frequency:        frequency,
		Mode:             mode,
		RSTSent:          "59",
		RSTReceived:      "59",
		ExchangeSent:     "2I WI",
		ExchangeReceived: "1H OH",
		LoggedAt:         loggedAt,
	}
	if err := db.Create(contact).Error; err != nil {
		t.Fatalf("Failed to seed contact: %v", err)
	}
	return contact
}

func newDuplicateService(db *gorm.DB, now time.Time) *DuplicateService {
	svc := NewDuplicateService(repositories.NewContactRepository(db))
	svc.now = func() time.Time { return now }
	return svc
}

func TestDuplicateService_ExactMatchInsideWindow(t *testing.T) {
	db := setupTestDB(t)
	now := time.Date(2026, 1, 24, 20, 0, 0, 0, time.UTC)

	seedContact(t, db, "W1AW", "14.250", "SSB", now.Add(-5*time.Minute))

	svc := newDuplicateService(db, now)
	result, err := svc.Check(context.Background(), "W1AW", "7.200", "CW")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Exact == nil {
		t.Fatal("Expected exact duplicate inside the 10 minute window")
	}
	if result.Exact.Callsign != "W1AW" {
		t.Errorf("Expected matched callsign W1AW, got %s", result.Exact.Callsign)
	}
}

func TestDuplicateService_ExactMatchOutsideWindow(t *testing.T) {
	db := setupTestDB(t)
	now := time.Date(2026, 1, 24, 20, 0, 0, 0, time.UTC)

	seedContact(t, db, "W1AW", "14.250", "SSB", now.Add(-11*time.Minute))

	svc := newDuplicateService(db, now)
	result, err := svc.Check(context.Background(), "W1AW", "21.300", "CW")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Exact != nil {
		t.Error("Expected no exact duplicate outside the window")
	}
}

func TestDuplicateService_ExactMatchCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	now := time.Date(2026, 1, 24, 20, 0, 0, 0, time.UTC)

	seedContact(t, db, "W1AW", "14.250", "SSB", now.Add(-2*time.Minute))

	svc := newDuplicateService(db, now)
	result, err := svc.Check(context.Background(), "w1aw", "14.250", "SSB")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Exact == nil {
		t.Error("Expected case-insensitive callsign match")
	}
}

func TestDuplicateService_BandMatchAnyAge(t *testing.T) {
	db := setupTestDB(t)
	now := time.Date(2026, 1, 24, 20, 0, 0, 0, time.UTC)

	// Hours old, same 20m band, same mode.
	seedContact(t, db, "K9ABC", "14.040", "CW", now.Add(-6*time.Hour))

	svc := newDuplicateService(db, now)
	result, err := svc.Check(context.Background(), "K9ABC", "14.060", "CW")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Exact != nil {
		t.Error("Expected no exact duplicate for an hours-old contact")
	}
	if result.BandLevel == nil {
		t.Fatal("Expected band-level duplicate regardless of age")
	}
}

func TestDuplicateService_BandMatchUsesExistingContactBand(t *testing.T) {
	db := setupTestDB(t)
	now := time.Date(2026, 1, 24, 20, 0, 0, 0, time.UTC)

	// Same callsign and mode but on 40m; candidate is on 20m.
	seedContact(t, db, "K9ABC", "7.040", "CW", now.Add(-6*time.Hour))

	svc := newDuplicateService(db, now)
	result, err := svc.Check(context.Background(), "K9ABC", "14.060", "CW")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.BandLevel != nil {
		t.Error("Expected no band duplicate across different bands")
	}
}

func TestDuplicateService_BandMatchModeMismatch(t *testing.T) {
	db := setupTestDB(t)
	now := time.Date(2026, 1, 24, 20, 0, 0, 0, time.UTC)

	seedContact(t, db, "K9ABC", "14.040", "CW", now.Add(-6*time.Hour))

	svc := newDuplicateService(db, now)
	result, err := svc.Check(context.Background(), "K9ABC", "14.250", "SSB")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.BandLevel != nil {
		t.Error("Expected no band duplicate when the mode differs")
	}
}

func TestDuplicateService_EmptyLog(t *testing.T) {
	db := setupTestDB(t)
	now := time.Date(2026, 1, 24, 20, 0, 0, 0, time.UTC)

	svc := newDuplicateService(db, now)
	result, err := svc.Check(context.Background(), "W1AW", "14.250", "SSB")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Exact != nil || result.BandLevel != nil {
		t.Error("Expected no duplicates against an empty log")
	}
}
