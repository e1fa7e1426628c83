package service

import (
	"errors"
	"fmt"

	"serving-scheduler-backend/internal/database/models"
	apperrors "serving-scheduler-backend/internal/errors"
	"serving-scheduler-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PositionService handles business logic for position definitions
type PositionService struct {
	repo         *repository.PositionRepository
	ministryRepo *repository.MinistryRepository
	validator    *validator.Validate
}

// NewPositionService creates a new position service
func NewPositionService(repo *repository.PositionRepository, ministryRepo *repository.MinistryRepository, validator *validator.Validate) *PositionService {
	return &PositionService{
		repo:         repo,
		ministryRepo: ministryRepo,
		validator:    validator,
	}
}

// CreatePositionRequest represents the request to create a position definition
type CreatePositionRequest struct {
	MinistryID           uuid.UUID `json:"ministry_id" validate:"required"`
	Name                 string    `json:"name" validate:"required,min=1,max=100"`
	Description          string    `json:"description,omitempty" validate:"max=200"`
	DisplayOrder         int       `json:"display_order,omitempty"`
	RequiredCapabilities []string  `json:"required_capabilities,omitempty"`
}

// PositionResponse represents the response for position operations
type PositionResponse struct {
	ID                   uuid.UUID `json:"id"`
	MinistryID           uuid.UUID `json:"ministry_id"`
	Name                 string    `json:"name"`
	Description          string    `json:"description"`
	DisplayOrder         int       `json:"display_order"`
	RequiredCapabilities []string  `json:"required_capabilities"`
	IsActive             bool      `json:"is_active"`
}

// PositionListResponse represents the ordered position list for a ministry
type PositionListResponse struct {
	Positions []PositionResponse `json:"positions"`
	Total     int                `json:"total"`
}

// Create creates a new position definition
func (s *PositionService) Create(req *CreatePositionRequest) (*PositionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Validate ministry exists
	if _, err := s.ministryRepo.GetByID(req.MinistryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMinistryNotFound
		}
		return nil, fmt.Errorf("failed to verify ministry: %w", err)
	}

	// Reject duplicate position names within the ministry
	if _, err := s.repo.GetByName(req.MinistryID, req.Name); err == nil {
		return nil, apperrors.NewConflictError("position", "already exists with this name in the ministry")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check position name: %w", err)
	}

	capabilities := make(models.CapabilityList, len(req.RequiredCapabilities))
	for i, c := range req.RequiredCapabilities {
		capabilities[i] = models.Capability(c)
	}

	position := &models.PositionDefinition{
		MinistryID:           req.MinistryID,
		Name:                 req.Name,
		Description:          req.Description,
		DisplayOrder:         req.DisplayOrder,
		RequiredCapabilities: capabilities,
		IsActive:             true,
	}

	if err := s.repo.Create(position); err != nil {
		return nil, fmt.Errorf("failed to create position: %w", err)
	}

	return s.toResponse(position), nil
}

// ListByMinistry retrieves the ordered position list for a ministry
func (s *PositionService) ListByMinistry(ministryID uuid.UUID) (*PositionListResponse, error) {
	if _, err := s.ministryRepo.GetByID(ministryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMinistryNotFound
		}
		return nil, fmt.Errorf("failed to verify ministry: %w", err)
	}

	positions, err := s.repo.GetByMinistryID(ministryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get positions: %w", err)
	}

	responses := make([]PositionResponse, len(positions))
	for i := range positions {
		responses[i] = *s.toResponse(&positions[i])
	}

	return &PositionListResponse{Positions: responses, Total: len(responses)}, nil
}

// SetActive soft-disables or re-enables a position. Positions referenced by
// requests are never deleted, only disabled.
func (s *PositionService) SetActive(id uuid.UUID, active bool) (*PositionResponse, error) {
	position, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPositionNotFound
		}
		return nil, fmt.Errorf("failed to get position: %w", err)
	}

	if err := s.repo.SetActive(id, active); err != nil {
		return nil, fmt.Errorf("failed to update position: %w", err)
	}

	position.IsActive = active
	return s.toResponse(position), nil
}

func (s *PositionService) toResponse(position *models.PositionDefinition) *PositionResponse {
	capabilities := make([]string, len(position.RequiredCapabilities))
	for i, c := range position.RequiredCapabilities {
		capabilities[i] = string(c)
	}

	return &PositionResponse{
		ID:                   position.ID,
		MinistryID:           position.MinistryID,
		Name:                 position.Name,
		Description:          position.Description,
		DisplayOrder:         position.DisplayOrder,
		RequiredCapabilities: capabilities,
		IsActive:             position.IsActive,
	}
}
