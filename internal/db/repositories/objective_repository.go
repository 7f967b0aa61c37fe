package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"winterfieldday/logkeeper/internal/constants"
	gormModels "winterfieldday/logkeeper/internal/models/gorm"
)

// ObjectiveRepository handles the bonus-objective catalog.
type ObjectiveRepository struct {
	db *gorm.DB
}

func NewObjectiveRepository(db *gorm.DB) *ObjectiveRepository {
	return &ObjectiveRepository{db: db}
}

// SeedIfEmpty inserts the fixed catalog when the table has no rows.
// Safe to call on every access.
func (r *ObjectiveRepository) SeedIfEmpty(ctx context.Context) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&gormModels.Objective{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count objectives: %w", err)
	}
	if count > 0 {
		return nil
	}

	objectives := make([]gormModels.Objective, 0, len(constants.ObjectiveCatalog))
	for _, seed := range constants.ObjectiveCatalog {
		objectives = append(objectives, gormModels.Objective{
			Name:        seed.Name,
			Description: seed.Description,
			Multiplier:  seed.Multiplier,
		})
	}

	if err := r.db.WithContext(ctx).Create(&objectives).Error; err != nil {
		return fmt.Errorf("failed to seed objectives: %w", err)
	}
	return nil
}

// All returns the full catalog in insertion order.
func (r *ObjectiveRepository) All(ctx context.Context) ([]gormModels.Objective, error) {
	var objectives []gormModels.Objective

	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&objectives).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list objectives: %w", err)
	}

	return objectives, nil
}

// GetByID retrieves one objective, nil when it does not exist.
func (r *ObjectiveRepository) GetByID(ctx context.Context, id uint) (*gormModels.Objective, error) {
	var objective gormModels.Objective

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&objective).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch objective: %w", err)
	}

	return &objective, nil
}

// Update saves an objective's completion state.
func (r *ObjectiveRepository) Update(ctx context.Context, objective *gormModels.Objective) error {
	if err := r.db.WithContext(ctx).Save(objective).Error; err != nil {
		return fmt.Errorf("failed to update objective: %w", err)
	}
	return nil
}

// Completed returns every completed objective.
func (r *ObjectiveRepository) Completed(ctx context.Context) ([]gormModels.Objective, error) {
	var objectives []gormModels.Objective

	err := r.db.WithContext(ctx).
		Where("completed = ?", true).
		Find(&objectives).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list completed objectives: %w", err)
	}

	return objectives, nil
}
