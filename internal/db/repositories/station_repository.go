package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	gormModels "winterfieldday/logkeeper/internal/models/gorm"
)

// stationConfigID is the primary key of the single configuration row.
const stationConfigID = 1

var (
	// ErrSetupNotFound reports activation or deletion of a missing setup.
	ErrSetupNotFound = errors.New("station setup not found")

	// ErrSetupActive refuses deletion of the active setup.
	ErrSetupActive = errors.New("cannot delete the active station setup")
)

// StationRepository handles station setups and the single-row
// configuration record that names the active one.
type StationRepository struct {
	db *gorm.DB
}

func NewStationRepository(db *gorm.DB) *StationRepository {
	return &StationRepository{db: db}
}

// Create inserts a new setup. New setups are never active until
// explicitly activated.
func (r *StationRepository) Create(ctx context.Context, setup *gormModels.StationSetup) error {
	if err := r.db.WithContext(ctx).Create(setup).Error; err != nil {
		return fmt.Errorf("failed to create station setup: %w", err)
	}
	return nil
}

// GetByID retrieves a setup, nil when it does not exist.
func (r *StationRepository) GetByID(ctx context.Context, id uint) (*gormModels.StationSetup, error) {
	var setup gormModels.StationSetup

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&setup).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch station setup: %w", err)
	}

	return &setup, nil
}

// Update saves an edited setup.
func (r *StationRepository) Update(ctx context.Context, setup *gormModels.StationSetup) error {
	if err := r.db.WithContext(ctx).Save(setup).Error; err != nil {
		return fmt.Errorf("failed to update station setup: %w", err)
	}
	return nil
}

// All returns every setup, newest first.
func (r *StationRepository) All(ctx context.Context) ([]gormModels.StationSetup, error) {
	var setups []gormModels.StationSetup

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&setups).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list station setups: %w", err)
	}

	return setups, nil
}

// ActiveID returns the id of the active setup, nil when none is set.
func (r *StationRepository) ActiveID(ctx context.Context) (*uint, error) {
	var cfg gormModels.StationConfig

	err := r.db.WithContext(ctx).
		Where("id = ?", stationConfigID).
		First(&cfg).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch station config: %w", err)
	}

	return cfg.ActiveStationID, nil
}

// Active returns the active setup, nil when none is set.
func (r *StationRepository) Active(ctx context.Context) (*gormModels.StationSetup, error) {
	id, err := r.ActiveID(ctx)
	if err != nil || id == nil {
		return nil, err
	}
	return r.GetByID(ctx, *id)
}

// Activate makes the setup with the given id the active one. The
// verify-then-set runs in one transaction so concurrent activations
// cannot leave two setups active; exactly one config row ever exists.
func (r *StationRepository) Activate(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var setup gormModels.StationSetup
		if err := tx.Where("id = ?", id).First(&setup).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrSetupNotFound
			}
			return fmt.Errorf("failed to fetch station setup: %w", err)
		}

		cfg := gormModels.StationConfig{ID: stationConfigID, ActiveStationID: &setup.ID}

		var existing gormModels.StationConfig
		err := tx.Where("id = ?", stationConfigID).First(&existing).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			if err := tx.Create(&cfg).Error; err != nil {
				return fmt.Errorf("failed to create station config: %w", err)
			}
		case err != nil:
			return fmt.Errorf("failed to fetch station config: %w", err)
		default:
			if err := tx.Model(&existing).Update("active_station_id", setup.ID).Error; err != nil {
				return fmt.Errorf("failed to update station config: %w", err)
			}
		}

		return nil
	})
}

// Delete removes an inactive setup. Deleting the active setup is
// refused; activate a different one first.
func (r *StationRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cfg gormModels.StationConfig
		err := tx.Where("id = ?", stationConfigID).First(&cfg).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			return fmt.Errorf("failed to fetch station config: %w", err)
		}

		if cfg.ActiveStationID != nil && *cfg.ActiveStationID == id {
			return ErrSetupActive
		}

		result := tx.Delete(&gormModels.StationSetup{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete station setup: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrSetupNotFound
		}
		return nil
	})
}
