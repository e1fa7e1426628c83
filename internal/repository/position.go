package repository

import (
	"serving-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PositionRepository handles database operations for position definitions
type PositionRepository struct {
	db *gorm.DB
}

// NewPositionRepository creates a new position repository
func NewPositionRepository(db *gorm.DB) *PositionRepository {
	return &PositionRepository{db: db}
}

// Create creates a new position definition
func (r *PositionRepository) Create(position *models.PositionDefinition) error {
	return r.db.Create(position).Error
}

// GetByID retrieves a position definition by ID
func (r *PositionRepository) GetByID(id uuid.UUID) (*models.PositionDefinition, error) {
	var position models.PositionDefinition
	err := r.db.First(&position, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &position, nil
}

// GetByName retrieves a position definition by ministry and name
func (r *PositionRepository) GetByName(ministryID uuid.UUID, name string) (*models.PositionDefinition, error) {
	var position models.PositionDefinition
	err := r.db.First(&position, "ministry_id = ? AND name = ?", ministryID, name).Error
	if err != nil {
		return nil, err
	}
	return &position, nil
}

// GetByMinistryID retrieves the ordered position list for a ministry
func (r *PositionRepository) GetByMinistryID(ministryID uuid.UUID) ([]models.PositionDefinition, error) {
	var positions []models.PositionDefinition
	err := r.db.Where("ministry_id = ?", ministryID).Order("display_order ASC, name ASC").Find(&positions).Error
	return positions, err
}

// SetActive soft-disables or re-enables a position
func (r *PositionRepository) SetActive(id uuid.UUID, active bool) error {
	return r.db.Model(&models.PositionDefinition{}).Where("id = ?", id).Update("is_active", active).Error
}
