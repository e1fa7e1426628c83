package service

import (
	"fmt"

	"serving-scheduler-backend/internal/database/models"
	"serving-scheduler-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MinistryService handles business logic for ministries
type MinistryService struct {
	repo      *repository.MinistryRepository
	validator *validator.Validate
}

// NewMinistryService creates a new ministry service
func NewMinistryService(repo *repository.MinistryRepository, validator *validator.Validate) *MinistryService {
	return &MinistryService{repo: repo, validator: validator}
}

// CreateMinistryRequest represents the request to create a ministry
type CreateMinistryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=40"`
	Title       string `json:"title" validate:"required,min=1,max=100"`
	Description string `json:"description,omitempty" validate:"max=200"`
}

// MinistryResponse represents the response for ministry operations
type MinistryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   string    `json:"created_at"`
}

// MinistryListResponse represents a paginated list of ministries
type MinistryListResponse struct {
	Ministries []MinistryResponse `json:"ministries"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
}

// Create creates a new ministry
func (s *MinistryService) Create(req *CreateMinistryRequest) (*MinistryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	ministry := &models.Ministry{
		Name:        req.Name,
		Title:       req.Title,
		Description: req.Description,
	}

	if err := s.repo.Create(ministry); err != nil {
		return nil, fmt.Errorf("failed to create ministry: %w", err)
	}

	return s.toResponse(ministry), nil
}

// GetAll retrieves ministries with pagination
func (s *MinistryService) GetAll(page, pageSize int) (*MinistryListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	ministries, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get ministries: %w", err)
	}

	responses := make([]MinistryResponse, len(ministries))
	for i := range ministries {
		responses[i] = *s.toResponse(&ministries[i])
	}

	return &MinistryListResponse{
		Ministries: responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

func (s *MinistryService) toResponse(ministry *models.Ministry) *MinistryResponse {
	return &MinistryResponse{
		ID:          ministry.ID,
		Name:        ministry.Name,
		Title:       ministry.Title,
		Description: ministry.Description,
		CreatedAt:   ministry.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
