package repository

import (
	"serving-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MinistryRepository handles database operations for ministries
type MinistryRepository struct {
	db *gorm.DB
}

// NewMinistryRepository creates a new ministry repository
func NewMinistryRepository(db *gorm.DB) *MinistryRepository {
	return &MinistryRepository{db: db}
}

// Create creates a new ministry
func (r *MinistryRepository) Create(ministry *models.Ministry) error {
	return r.db.Create(ministry).Error
}

// GetByID retrieves a ministry by ID
func (r *MinistryRepository) GetByID(id uuid.UUID) (*models.Ministry, error) {
	var ministry models.Ministry
	err := r.db.First(&ministry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ministry, nil
}

// GetByName retrieves a ministry by its unique name
func (r *MinistryRepository) GetByName(name string) (*models.Ministry, error) {
	var ministry models.Ministry
	err := r.db.First(&ministry, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &ministry, nil
}

// GetAll retrieves all ministries with pagination
func (r *MinistryRepository) GetAll(limit, offset int) ([]models.Ministry, int64, error) {
	var ministries []models.Ministry
	var total int64

	if err := r.db.Model(&models.Ministry{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&ministries).Error
	return ministries, total, err
}
