package repositories

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

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

func createSetup(t *testing.T, repo *StationRepository, name string) *gormModels.StationSetup {
	t.Helper()
	setup := &gormModels.StationSetup{
		SetupName:        name,
		StationCallsign:  "K1ABC",
		OperatorName:     "Jane Smith",
		OperatorCallsign: "K1ABC",
		Category:         "2I",
		Section:          "WI",
		PowerLevel:       "QRP (5W or less)",
	}
	if err := repo.Create(context.Background(), setup); err != nil {
		t.Fatalf("Failed to create setup: %v", err)
	}
	return setup
}

func TestStationRepository_NoActiveByDefault(t *testing.T) {
	repo := NewStationRepository(setupTestDB(t))
	createSetup(t, repo, "First")

	active, err := repo.Active(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if active != nil {
		t.Error("Expected no active setup before explicit activation")
	}
}

func TestStationRepository_ActivateSwitchesExclusively(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStationRepository(db)
	first := createSetup(t, repo, "First")
	second := createSetup(t, repo, "Second")

	if err := repo.Activate(context.Background(), first.ID); err != nil {
		t.Fatalf("Failed to activate first setup: %v", err)
	}
	if err := repo.Activate(context.Background(), second.ID); err != nil {
		t.Fatalf("Failed to activate second setup: %v", err)
	}

	active, err := repo.Active(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if active == nil || active.ID != second.ID {
		t.Errorf("Expected setup %d active, got %+v", second.ID, active)
	}

	// Exactly one config row regardless of how many activations ran.
	var count int64
	if err := db.Model(&gormModels.StationConfig{}).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count config rows: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected exactly 1 config row, got %d", count)
	}
}

func TestStationRepository_ActivateMissingSetup(t *testing.T) {
	repo := NewStationRepository(setupTestDB(t))

	if err := repo.Activate(context.Background(), 42); err != ErrSetupNotFound {
		t.Errorf("Expected ErrSetupNotFound, got %v", err)
	}
}

func TestStationRepository_DeleteActiveRefused(t *testing.T) {
	repo := NewStationRepository(setupTestDB(t))
	setup := createSetup(t, repo, "Only")

	if err := repo.Activate(context.Background(), setup.ID); err != nil {
		t.Fatalf("Failed to activate setup: %v", err)
	}

	if err := repo.Delete(context.Background(), setup.ID); err != ErrSetupActive {
		t.Errorf("Expected ErrSetupActive, got %v", err)
	}

	// Still present.
	got, err := repo.GetByID(context.Background(), setup.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got == nil {
		t.Error("Expected active setup to survive the refused delete")
	}
}

func TestStationRepository_DeleteInactive(t *testing.T) {
	repo := NewStationRepository(setupTestDB(t))
	first := createSetup(t, repo, "First")
	second := createSetup(t, repo, "Second")

	if err := repo.Activate(context.Background(), first.ID); err != nil {
		t.Fatalf("Failed to activate setup: %v", err)
	}

	if err := repo.Delete(context.Background(), second.ID); err != nil {
		t.Fatalf("Expected inactive delete to succeed, got %v", err)
	}

	got, err := repo.GetByID(context.Background(), second.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != nil {
		t.Error("Expected deleted setup to be gone")
	}
}

func TestStationRepository_DeleteMissingSetup(t *testing.T) {
	repo := NewStationRepository(setupTestDB(t))

	if err := repo.Delete(context.Background(), 42); err != ErrSetupNotFound {
		t.Errorf("Expected ErrSetupNotFound, got %v", err)
	}
}
