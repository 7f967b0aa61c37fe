package services

import (
	"context"
	"testing"

	"winterfieldday/logkeeper/internal/db/repositories"
)

func TestStationService_OperatorsNoActiveStation(t *testing.T) {
	db := setupTestDB(t)

	svc := NewStationService(repositories.NewStationRepository(db))
	operators, err := svc.Operators(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(operators) != 0 {
		t.Errorf("Expected empty roster, got %v", operators)
	}
}

func TestStationService_OperatorsRosterParsing(t *testing.T) {
	db := setupTestDB(t)

	setup := seedActiveStation(t, db)
	setup.AdditionalOperators = "Bob Jones (N9BOB)\nw9qrp\n\nK1ABC\n"
	if err := db.Save(setup).Error; err != nil {
		t.Fatalf("Failed to update setup: %v", err)
	}

	svc := NewStationService(repositories.NewStationRepository(db))
	operators, err := svc.Operators(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Primary operator, the named entry, and the bare callsign. The
	// blank line and the duplicate of the primary are dropped.
	if len(operators) != 3 {
		t.Fatalf("Expected 3 operators, got %v", operators)
	}

	if operators[0].Callsign != "K1ABC" || operators[0].Label != "Jane Smith (K1ABC)" {
		t.Errorf("Unexpected primary operator: %+v", operators[0])
	}
	if operators[1].Callsign != "N9BOB" || operators[1].Label != "Bob Jones (N9BOB)" {
		t.Errorf("Unexpected named operator: %+v", operators[1])
	}
	if operators[2].Callsign != "W9QRP" || operators[2].Label != "W9QRP" {
		t.Errorf("Unexpected bare-callsign operator: %+v", operators[2])
	}
}

func TestStationService_TimezoneNoActiveStation(t *testing.T) {
	db := setupTestDB(t)

	svc := NewStationService(repositories.NewStationRepository(db))
	tz, err := svc.Timezone(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if tz.Timezone != "America/New_York" || tz.Label != "Eastern" || tz.Section != nil {
		t.Errorf("Unexpected default timezone response: %+v", tz)
	}
}

func TestStationService_TimezoneFromSection(t *testing.T) {
	db := setupTestDB(t)
	seedActiveStation(t, db) // section WI

	svc := NewStationService(repositories.NewStationRepository(db))
	tz, err := svc.Timezone(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if tz.Timezone != "America/Chicago" {
		t.Errorf("Expected America/Chicago for WI, got %s", tz.Timezone)
	}
	if tz.Label != "Central" {
		t.Errorf("Expected Central label, got %s", tz.Label)
	}
	if tz.Section == nil || *tz.Section != "WI" {
		t.Errorf("Expected section WI, got %v", tz.Section)
	}
}

func TestStationService_TimezoneOverrideWins(t *testing.T) {
	db := setupTestDB(t)

	setup := seedActiveStation(t, db)
	override := "Pacific/Honolulu"
	setup.Timezone = &override
	if err := db.Save(setup).Error; err != nil {
		t.Fatalf("Failed to update setup: %v", err)
	}

	svc := NewStationService(repositories.NewStationRepository(db))
	tz, err := svc.Timezone(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if tz.Timezone != "Pacific/Honolulu" {
		t.Errorf("Expected override to win, got %s", tz.Timezone)
	}
	if tz.Label != "Hawaii" {
		t.Errorf("Expected Hawaii label, got %s", tz.Label)
	}
}

func TestDefaultExchange(t *testing.T) {
	if got := DefaultExchange("2I", "WI"); got != "2I WI" {
		t.Errorf("Expected '2I WI', got %q", got)
	}
	if got := DefaultExchange("", ""); got != "" {
		t.Errorf("Expected empty exchange, got %q", got)
	}
}
