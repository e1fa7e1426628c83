package repository

import (
	"time"

	"serving-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceInstanceRepository handles database operations for service instances
type ServiceInstanceRepository struct {
	db *gorm.DB
}

// NewServiceInstanceRepository creates a new service instance repository
func NewServiceInstanceRepository(db *gorm.DB) *ServiceInstanceRepository {
	return &ServiceInstanceRepository{db: db}
}

// Create creates a new service instance
func (r *ServiceInstanceRepository) Create(instance *models.ServiceInstance) error {
	return r.db.Create(instance).Error
}

// GetByID retrieves a service instance by ID
func (r *ServiceInstanceRepository) GetByID(id uuid.UUID) (*models.ServiceInstance, error) {
	var instance models.ServiceInstance
	err := r.db.First(&instance, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &instance, nil
}

// GetWithRequests retrieves a service instance with its serving requests preloaded
func (r *ServiceInstanceRepository) GetWithRequests(id uuid.UUID) (*models.ServiceInstance, error) {
	var instance models.ServiceInstance
	err := r.db.Preload("ServingRequests").First(&instance, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &instance, nil
}

// ExistsAt reports whether the ministry already has an instance at the exact
// start time. Backs the registry-level uniqueness rule alongside the unique
// index.
func (r *ServiceInstanceRepository) ExistsAt(ministryID uuid.UUID, startsAt time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.ServiceInstance{}).
		Where("ministry_id = ? AND starts_at = ?", ministryID, startsAt).
		Count(&count).Error
	return count > 0, err
}

// GetByMinistryAndRange retrieves instances for a ministry within [from, to],
// requests preloaded, ordered by start time
func (r *ServiceInstanceRepository) GetByMinistryAndRange(ministryID uuid.UUID, from, to time.Time) ([]models.ServiceInstance, error) {
	var instances []models.ServiceInstance
	err := r.db.
		Preload("ServingRequests").
		Where("ministry_id = ? AND starts_at >= ? AND starts_at <= ?", ministryID, from, to).
		Order("starts_at ASC").
		Find(&instances).Error
	return instances, err
}

// Delete deletes a service instance
func (r *ServiceInstanceRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ServiceInstance{}, "id = ?", id).Error
}
