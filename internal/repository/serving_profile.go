package repository

import (
	"time"

	"serving-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServingProfileRepository handles database operations for serving profiles
type ServingProfileRepository struct {
	db *gorm.DB
}

// NewServingProfileRepository creates a new serving profile repository
func NewServingProfileRepository(db *gorm.DB) *ServingProfileRepository {
	return &ServingProfileRepository{db: db}
}

// Create creates a new serving profile
func (r *ServingProfileRepository) Create(profile *models.VolunteerServingProfile) error {
	return r.db.Create(profile).Error
}

// GetByID retrieves a serving profile by ID
func (r *ServingProfileRepository) GetByID(id uuid.UUID) (*models.VolunteerServingProfile, error) {
	var profile models.VolunteerServingProfile
	err := r.db.First(&profile, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByVolunteerAndMinistry retrieves the unique profile for a (volunteer, ministry) pair
func (r *ServingProfileRepository) GetByVolunteerAndMinistry(volunteerID string, ministryID uuid.UUID) (*models.VolunteerServingProfile, error) {
	var profile models.VolunteerServingProfile
	err := r.db.First(&profile, "volunteer_id = ? AND ministry_id = ?", volunteerID, ministryID).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetWithBlockouts retrieves a profile with its blockouts and availability pattern preloaded
func (r *ServingProfileRepository) GetWithBlockouts(id uuid.UUID) (*models.VolunteerServingProfile, error) {
	var profile models.VolunteerServingProfile
	err := r.db.Preload("Blockouts").Preload("AvailabilityPattern").First(&profile, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetActiveQualified retrieves all active profiles in a ministry qualified for
// the given position capability, with blockouts and availability preloaded.
// The capability match runs in Go rather than SQL because qualified positions
// live in a jsonb list.
func (r *ServingProfileRepository) GetActiveQualified(ministryID uuid.UUID, capability models.Capability) ([]models.VolunteerServingProfile, error) {
	var profiles []models.VolunteerServingProfile
	err := r.db.
		Preload("Blockouts").
		Preload("AvailabilityPattern").
		Where("ministry_id = ? AND status = ?", ministryID, models.ProfileStatusActive).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}

	qualified := profiles[:0]
	for _, p := range profiles {
		if p.IsQualifiedFor(capability) {
			qualified = append(qualified, p)
		}
	}
	return qualified, nil
}

// GetByMinistryID retrieves all profiles for a ministry with pagination
func (r *ServingProfileRepository) GetByMinistryID(ministryID uuid.UUID, limit, offset int) ([]models.VolunteerServingProfile, int64, error) {
	var profiles []models.VolunteerServingProfile
	var total int64

	if err := r.db.Model(&models.VolunteerServingProfile{}).Where("ministry_id = ?", ministryID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("ministry_id = ?", ministryID).Order("volunteer_id ASC").Limit(limit).Offset(offset).Find(&profiles).Error
	return profiles, total, err
}

// UpdateVersioned applies the given column updates only if the profile is
// still at the expected version, bumping the version in the same statement.
// Returns false when a concurrent writer got there first.
func (r *ServingProfileRepository) UpdateVersioned(id uuid.UUID, version int, updates map[string]interface{}) (bool, error) {
	updates["version"] = version + 1
	res := r.db.Model(&models.VolunteerServingProfile{}).
		Where("id = ? AND version = ?", id, version).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// SetLastServedAt records the service date a volunteer last served on,
// guarded by the profile version
func (r *ServingProfileRepository) SetLastServedAt(id uuid.UUID, version int, servedAt time.Time) (bool, error) {
	return r.UpdateVersioned(id, version, map[string]interface{}{"last_served_at": servedAt})
}
