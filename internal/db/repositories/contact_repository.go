package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	gormModels "winterfieldday/logkeeper/internal/models/gorm"
)

// ContactRepository handles contact table operations using GORM
type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create inserts a new contact.
func (r *ContactRepository) Create(ctx context.Context, contact *gormModels.Contact) error {
	if err := r.db.WithContext(ctx).Create(contact).Error; err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

// GetByID retrieves a contact, nil when it does not exist.
func (r *ContactRepository) GetByID(ctx context.Context, id uint) (*gormModels.Contact, error) {
	var contact gormModels.Contact

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&contact).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch contact: %w", err)
	}

	return &contact, nil
}

// Update saves an edited contact.
func (r *ContactRepository) Update(ctx context.Context, contact *gormModels.Contact) error {
	if err := r.db.WithContext(ctx).Save(contact).Error; err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}
	return nil
}

// Delete removes a contact by id.
func (r *ContactRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&gormModels.Contact{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete contact: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List returns one page of contacts, newest first, plus the total row
// count.
func (r *ContactRepository) List(ctx context.Context, page, perPage int) ([]gormModels.Contact, int64, error) {
	var (
		contacts []gormModels.Contact
		total    int64
	)

	if err := r.db.WithContext(ctx).Model(&gormModels.Contact{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count contacts: %w", err)
	}

	err := r.db.WithContext(ctx).
		Order("logged_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&contacts).Error

	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contacts: %w", err)
	}

	return contacts, total, nil
}

// AllChronological returns every contact ordered oldest first, the
// order both exporters require.
func (r *ContactRepository) AllChronological(ctx context.Context) ([]gormModels.Contact, error) {
	var contacts []gormModels.Contact

	err := r.db.WithContext(ctx).
		Order("logged_at ASC").
		Find(&contacts).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch contacts: %w", err)
	}

	return contacts, nil
}

// ByCallsignSince returns the most recent contact with the callsign
// (case-insensitive) logged at or after the cutoff, nil when none.
func (r *ContactRepository) ByCallsignSince(ctx context.Context, callsign string, since time.Time) (*gormModels.Contact, error) {
	var contact gormModels.Contact

	err := r.db.WithContext(ctx).
		Where("UPPER(callsign) = UPPER(?) AND logged_at >= ?", callsign, since).
		Order("logged_at DESC").
		First(&contact).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan for recent contact: %w", err)
	}

	return &contact, nil
}

// AllByCallsign returns every contact with the callsign, any age,
// case-insensitive.
func (r *ContactRepository) AllByCallsign(ctx context.Context, callsign string) ([]gormModels.Contact, error) {
	var contacts []gormModels.Contact

	err := r.db.WithContext(ctx).
		Where("UPPER(callsign) = UPPER(?)", callsign).
		Find(&contacts).Error

	if err != nil {
		return nil, fmt.Errorf("failed to scan contacts by callsign: %w", err)
	}

	return contacts, nil
}

// SectionCounts returns contacts-per-section for every contact with a
// derived section.
func (r *ContactRepository) SectionCounts(ctx context.Context) (map[string]int, error) {
	type row struct {
		Section string
		Count   int
	}
	var rows []row

	err := r.db.WithContext(ctx).
		Model(&gormModels.Contact{}).
		Select("section, COUNT(id) AS count").
		Where("section IS NOT NULL").
		Group("section").
		Scan(&rows).Error

	if err != nil {
		return nil, fmt.Errorf("failed to count sections: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		if r.Section != "" {
			counts[r.Section] = r.Count
		}
	}
	return counts, nil
}
