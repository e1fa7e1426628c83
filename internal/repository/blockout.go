package repository

import (
	"time"

	"serving-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlockoutRepository handles database operations for blockout dates
type BlockoutRepository struct {
	db *gorm.DB
}

// NewBlockoutRepository creates a new blockout repository
func NewBlockoutRepository(db *gorm.DB) *BlockoutRepository {
	return &BlockoutRepository{db: db}
}

// Create creates a new blockout date
func (r *BlockoutRepository) Create(blockout *models.BlockoutDate) error {
	return r.db.Create(blockout).Error
}

// GetByID retrieves a blockout by ID
func (r *BlockoutRepository) GetByID(id uuid.UUID) (*models.BlockoutDate, error) {
	var blockout models.BlockoutDate
	err := r.db.First(&blockout, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &blockout, nil
}

// GetByProfileID retrieves all blockouts for a profile
func (r *BlockoutRepository) GetByProfileID(profileID uuid.UUID) ([]models.BlockoutDate, error) {
	var blockouts []models.BlockoutDate
	err := r.db.Where("profile_id = ?", profileID).Order("start_date ASC").Find(&blockouts).Error
	return blockouts, err
}

// CoversDate reports whether any blockout for the profile covers the given
// date, inclusive on both ends
func (r *BlockoutRepository) CoversDate(profileID uuid.UUID, date time.Time) (bool, error) {
	var count int64
	d := models.DateOnly(date)
	err := r.db.Model(&models.BlockoutDate{}).
		Where("profile_id = ? AND start_date <= ? AND end_date >= ?", profileID, d, d).
		Count(&count).Error
	return count > 0, err
}

// Delete deletes a blockout
func (r *BlockoutRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.BlockoutDate{}, "id = ?", id).Error
}
