package repository

import (
	"errors"

	"serving-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityRepository handles database operations for availability patterns
type AvailabilityRepository struct {
	db *gorm.DB
}

// NewAvailabilityRepository creates a new availability repository
func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

// GetByProfileID retrieves the pattern for a profile, or nil if none exists yet
func (r *AvailabilityRepository) GetByProfileID(profileID uuid.UUID) (*models.AvailabilityPattern, error) {
	var pattern models.AvailabilityPattern
	err := r.db.First(&pattern, "profile_id = ?", profileID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pattern, nil
}

// Upsert replaces the weekly slots for a profile, creating the pattern lazily
// on first write
func (r *AvailabilityRepository) Upsert(profileID uuid.UUID, slots []models.WeeklySlot) (*models.AvailabilityPattern, error) {
	existing, err := r.GetByProfileID(profileID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		pattern := &models.AvailabilityPattern{ProfileID: profileID, Slots: slots}
		if err := r.db.Create(pattern).Error; err != nil {
			return nil, err
		}
		return pattern, nil
	}

	existing.Slots = slots
	if err := r.db.Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}
