package repository

import (
	"time"

	"serving-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServingRequestRepository handles database operations for serving requests.
// All status writes are conditional on the current status so that concurrent
// responders, admins and the expiry sweep linearize per-request on the row.
type ServingRequestRepository struct {
	db *gorm.DB
}

// NewServingRequestRepository creates a new serving request repository
func NewServingRequestRepository(db *gorm.DB) *ServingRequestRepository {
	return &ServingRequestRepository{db: db}
}

// Create creates a new serving request
func (r *ServingRequestRepository) Create(request *models.ServingRequest) error {
	return r.db.Create(request).Error
}

// GetByID retrieves a serving request by ID
func (r *ServingRequestRepository) GetByID(id uuid.UUID) (*models.ServingRequest, error) {
	var request models.ServingRequest
	err := r.db.First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetWithServiceInstance retrieves a request with its service instance preloaded
func (r *ServingRequestRepository) GetWithServiceInstance(id uuid.UUID) (*models.ServingRequest, error) {
	var request models.ServingRequest
	err := r.db.Preload("ServiceInstance").First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetByServiceInstanceID retrieves all requests attached to a service instance
func (r *ServingRequestRepository) GetByServiceInstanceID(serviceInstanceID uuid.UUID) ([]models.ServingRequest, error) {
	var requests []models.ServingRequest
	err := r.db.Where("service_instance_id = ?", serviceInstanceID).Order("requested_at ASC").Find(&requests).Error
	return requests, err
}

// GetByVolunteerID retrieves all requests for a volunteer with pagination
func (r *ServingRequestRepository) GetByVolunteerID(volunteerID string, limit, offset int) ([]models.ServingRequest, int64, error) {
	var requests []models.ServingRequest
	var total int64

	if err := r.db.Model(&models.ServingRequest{}).Where("volunteer_id = ?", volunteerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("volunteer_id = ?", volunteerID).Order("requested_at DESC").Limit(limit).Offset(offset).Find(&requests).Error
	return requests, total, err
}

// TransitionStatus atomically moves a request from one status to another.
// The UPDATE is guarded on the current status; zero rows affected means a
// concurrent writer already moved the request and the caller lost the race.
// Notes are written unconditionally: a reopen passes empty notes and must
// not leave the previous response text behind.
func (r *ServingRequestRepository) TransitionStatus(id uuid.UUID, from, to models.RequestStatus, respondedAt *time.Time, notes string) (bool, error) {
	updates := map[string]interface{}{
		"status":         to,
		"responded_at":   respondedAt,
		"response_notes": notes,
	}
	res := r.db.Model(&models.ServingRequest{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ExpireDue transitions every pending request whose deadline has passed to
// expired. Safe to run concurrently with responders and with itself: the
// status guard makes it a no-op for anything already terminal.
func (r *ServingRequestRepository) ExpireDue(now time.Time) (int64, error) {
	res := r.db.Model(&models.ServingRequest{}).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at <= ?", models.RequestStatusPending, now).
		Update("status", models.RequestStatusExpired)
	return res.RowsAffected, res.Error
}
