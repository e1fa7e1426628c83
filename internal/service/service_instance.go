package service

import (
	"errors"
	"fmt"
	"time"

	"serving-scheduler-backend/internal/database/models"
	apperrors "serving-scheduler-backend/internal/errors"
	"serving-scheduler-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceInstanceService is the registry of concrete service occurrences and
// the single canonical read path for "what services exist"
type ServiceInstanceService struct {
	repo         *repository.ServiceInstanceRepository
	ministryRepo *repository.MinistryRepository
	validator    *validator.Validate
}

// NewServiceInstanceService creates a new service instance service
func NewServiceInstanceService(repo *repository.ServiceInstanceRepository, ministryRepo *repository.MinistryRepository, validator *validator.Validate) *ServiceInstanceService {
	return &ServiceInstanceService{
		repo:         repo,
		ministryRepo: ministryRepo,
		validator:    validator,
	}
}

// CreateServiceInstanceRequest represents the request to create a service instance
type CreateServiceInstanceRequest struct {
	MinistryID uuid.UUID  `json:"ministry_id" validate:"required"`
	Title      string     `json:"title" validate:"required,max=200"`
	StartsAt   time.Time  `json:"starts_at" validate:"required"`
	EndsAt     *time.Time `json:"ends_at,omitempty"`
	Location   string     `json:"location,omitempty" validate:"max=200"`
}

// RequestSummaryResponse is a serving request nested in a grid or instance view
type RequestSummaryResponse struct {
	ID           uuid.UUID            `json:"id"`
	PositionName string               `json:"position_name"`
	VolunteerID  string               `json:"volunteer_id"`
	Status       models.RequestStatus `json:"status"`
	ExpiresAt    *string              `json:"expires_at,omitempty"`
}

// ServiceInstanceResponse represents the response for service instance operations
type ServiceInstanceResponse struct {
	ID         uuid.UUID                `json:"id"`
	MinistryID uuid.UUID                `json:"ministry_id"`
	Title      string                   `json:"title"`
	StartsAt   string                   `json:"starts_at"`
	EndsAt     *string                  `json:"ends_at,omitempty"`
	Location   string                   `json:"location"`
	Requests   []RequestSummaryResponse `json:"requests"`
}

// ScheduleGridResponse is the date x time projection of a ministry's services
type ScheduleGridResponse struct {
	MinistryID uuid.UUID                                     `json:"ministry_id"`
	From       string                                        `json:"from"`
	To         string                                        `json:"to"`
	Days       map[string]map[string]ServiceInstanceResponse `json:"days"`
	Total      int                                           `json:"total"`
	// Anomalies surfaces grid-key collisions in data predating the
	// uniqueness constraint instead of merging them silently
	Anomalies []string `json:"anomalies,omitempty"`
}

// Create creates a new service instance. A second instance for the same
// ministry at the same start time is rejected as a validation error rather
// than colliding in the grid later.
func (s *ServiceInstanceService) Create(req *CreateServiceInstanceRequest) (*ServiceInstanceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.EndsAt != nil && !req.EndsAt.After(req.StartsAt) {
		return nil, apperrors.NewValidationError("ends_at", "must be after starts_at")
	}

	if _, err := s.ministryRepo.GetByID(req.MinistryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMinistryNotFound
		}
		return nil, fmt.Errorf("failed to verify ministry: %w", err)
	}

	exists, err := s.repo.ExistsAt(req.MinistryID, req.StartsAt)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing instance: %w", err)
	}
	if exists {
		return nil, apperrors.NewValidationError("starts_at", apperrors.ErrServiceInstanceExists.Error())
	}

	instance := &models.ServiceInstance{
		MinistryID: req.MinistryID,
		Title:      req.Title,
		StartsAt:   req.StartsAt,
		EndsAt:     req.EndsAt,
		Location:   req.Location,
	}

	if err := s.repo.Create(instance); err != nil {
		return nil, fmt.Errorf("failed to create service instance: %w", err)
	}

	return toServiceInstanceResponse(instance), nil
}

// GetByID retrieves a service instance with its requests
func (s *ServiceInstanceService) GetByID(id uuid.UUID) (*ServiceInstanceResponse, error) {
	instance, err := s.repo.GetWithRequests(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServiceInstanceNotFound
		}
		return nil, fmt.Errorf("failed to get service instance: %w", err)
	}
	return toServiceInstanceResponse(instance), nil
}

// GetGrid builds the date x time schedule grid for a ministry over [from, to]
func (s *ServiceInstanceService) GetGrid(ministryID uuid.UUID, from, to time.Time) (*ScheduleGridResponse, error) {
	if to.Before(from) {
		return nil, apperrors.ErrInvalidDateRange
	}

	if _, err := s.ministryRepo.GetByID(ministryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMinistryNotFound
		}
		return nil, fmt.Errorf("failed to verify ministry: %w", err)
	}

	// Range is inclusive of the whole end date
	rangeEnd := models.DateOnly(to).Add(24*time.Hour - time.Nanosecond)
	instances, err := s.repo.GetByMinistryAndRange(ministryID, models.DateOnly(from), rangeEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load service instances: %w", err)
	}

	days, anomalies := buildGrid(instances)

	return &ScheduleGridResponse{
		MinistryID: ministryID,
		From:       models.DateOnly(from).Format("2006-01-02"),
		To:         models.DateOnly(to).Format("2006-01-02"),
		Days:       days,
		Total:      len(instances),
		Anomalies:  anomalies,
	}, nil
}

// buildGrid keys instances by (ISO date, HH:MM). Collisions cannot be created
// anymore; when legacy data still collides the last write wins and the
// collision is reported as an anomaly.
func buildGrid(instances []models.ServiceInstance) (map[string]map[string]ServiceInstanceResponse, []string) {
	days := make(map[string]map[string]ServiceInstanceResponse)
	var anomalies []string

	for i := range instances {
		instance := &instances[i]
		dateKey := instance.StartsAt.Format("2006-01-02")
		timeKey := instance.StartsAt.Format("15:04")

		if days[dateKey] == nil {
			days[dateKey] = make(map[string]ServiceInstanceResponse)
		}
		if _, taken := days[dateKey][timeKey]; taken {
			anomalies = append(anomalies, fmt.Sprintf("duplicate service instance at %s %s", dateKey, timeKey))
		}
		days[dateKey][timeKey] = *toServiceInstanceResponse(instance)
	}

	return days, anomalies
}

func toServiceInstanceResponse(instance *models.ServiceInstance) *ServiceInstanceResponse {
	resp := &ServiceInstanceResponse{
		ID:         instance.ID,
		MinistryID: instance.MinistryID,
		Title:      instance.Title,
		StartsAt:   instance.StartsAt.Format("2006-01-02T15:04:05Z07:00"),
		Location:   instance.Location,
		Requests:   make([]RequestSummaryResponse, 0, len(instance.ServingRequests)),
	}

	if instance.EndsAt != nil {
		ends := instance.EndsAt.Format("2006-01-02T15:04:05Z07:00")
		resp.EndsAt = &ends
	}

	for i := range instance.ServingRequests {
		request := &instance.ServingRequests[i]
		summary := RequestSummaryResponse{
			ID:           request.ID,
			PositionName: request.PositionName,
			VolunteerID:  request.VolunteerID,
			Status:       request.Status,
		}
		if request.ExpiresAt != nil {
			expires := request.ExpiresAt.Format("2006-01-02T15:04:05Z07:00")
			summary.ExpiresAt = &expires
		}
		resp.Requests = append(resp.Requests, summary)
	}

	return resp
}
