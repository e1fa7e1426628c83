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

// ServingProfileService handles business logic for serving profiles,
// availability patterns and blockouts
type ServingProfileService struct {
	repo             *repository.ServingProfileRepository
	ministryRepo     *repository.MinistryRepository
	blockoutRepo     *repository.BlockoutRepository
	availabilityRepo *repository.AvailabilityRepository
	validator        *validator.Validate
}

// NewServingProfileService creates a new serving profile service
func NewServingProfileService(repo *repository.ServingProfileRepository, ministryRepo *repository.MinistryRepository, blockoutRepo *repository.BlockoutRepository, availabilityRepo *repository.AvailabilityRepository, validator *validator.Validate) *ServingProfileService {
	return &ServingProfileService{
		repo:             repo,
		ministryRepo:     ministryRepo,
		blockoutRepo:     blockoutRepo,
		availabilityRepo: availabilityRepo,
		validator:        validator,
	}
}

// CreateProfileRequest represents a volunteer's opt-in to a ministry
type CreateProfileRequest struct {
	VolunteerID        string   `json:"volunteer_id" validate:"required,max=100"`
	QualifiedPositions []string `json:"qualified_positions,omitempty"`
	RotationWeight     *float64 `json:"rotation_weight,omitempty" validate:"omitempty,gte=0"`
}

// UpdateProfileRequest represents an admin edit to a profile. Writes go
// through the optimistic version check; a stale read returns a conflict.
type UpdateProfileRequest struct {
	QualifiedPositions *[]string             `json:"qualified_positions,omitempty"`
	RotationWeight     *float64              `json:"rotation_weight,omitempty"`
	Status             *models.ProfileStatus `json:"status,omitempty"`
}

// WeeklySlotRequest is one weekly availability window
type WeeklySlotRequest struct {
	Weekday     int `json:"weekday" validate:"gte=0,lte=6"`
	StartMinute int `json:"start_minute" validate:"gte=0,lt=1440"`
	EndMinute   int `json:"end_minute" validate:"gt=0,lte=1440"`
}

// SetAvailabilityRequest replaces a profile's weekly pattern
type SetAvailabilityRequest struct {
	Slots []WeeklySlotRequest `json:"slots" validate:"required,dive"`
}

// CreateBlockoutRequest adds a blockout range to a profile
type CreateBlockoutRequest struct {
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
	Reason    string    `json:"reason,omitempty" validate:"max=200"`
}

// BlockoutResponse represents one blockout range
type BlockoutResponse struct {
	ID        uuid.UUID `json:"id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Reason    string    `json:"reason"`
}

// ProfileResponse represents the response for profile operations
type ProfileResponse struct {
	ID                 uuid.UUID            `json:"id"`
	VolunteerID        string               `json:"volunteer_id"`
	MinistryID         uuid.UUID            `json:"ministry_id"`
	QualifiedPositions []string             `json:"qualified_positions"`
	Status             models.ProfileStatus `json:"status"`
	RotationWeight     float64              `json:"rotation_weight"`
	LastServedAt       *string              `json:"last_served_at"`
	Version            int                  `json:"version"`
	Blockouts          []BlockoutResponse   `json:"blockouts,omitempty"`
	WeeklySlots        []WeeklySlotRequest  `json:"weekly_slots,omitempty"`
}

// Create creates a serving profile on first opt-in to a ministry
func (s *ServingProfileService) Create(ministryID uuid.UUID, req *CreateProfileRequest) (*ProfileResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.ministryRepo.GetByID(ministryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMinistryNotFound
		}
		return nil, fmt.Errorf("failed to verify ministry: %w", err)
	}

	// One profile per (volunteer, ministry)
	if _, err := s.repo.GetByVolunteerAndMinistry(req.VolunteerID, ministryID); err == nil {
		return nil, apperrors.NewConflictError("serving profile", "already exists for this volunteer in the ministry")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}

	weight := 1.0
	if req.RotationWeight != nil {
		if *req.RotationWeight < 0 {
			return nil, apperrors.ErrNegativeWeight
		}
		weight = *req.RotationWeight
	}

	profile := &models.VolunteerServingProfile{
		VolunteerID:        req.VolunteerID,
		MinistryID:         ministryID,
		QualifiedPositions: toCapabilityList(req.QualifiedPositions),
		Status:             models.ProfileStatusActive,
		RotationWeight:     weight,
		Version:            1,
	}

	if err := s.repo.Create(profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return s.toResponse(profile), nil
}

// GetByID retrieves a profile with blockouts and availability pattern
func (s *ServingProfileService) GetByID(id uuid.UUID) (*ProfileResponse, error) {
	profile, err := s.repo.GetWithBlockouts(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServingProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return s.toResponse(profile), nil
}

// Update applies an admin edit through the optimistic version check.
// Deactivation is the soft delete: inactive profiles are never suggested and
// historical requests keep referencing them.
func (s *ServingProfileService) Update(id uuid.UUID, req *UpdateProfileRequest) (*ProfileResponse, error) {
	profile, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServingProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	updates := map[string]interface{}{}

	if req.QualifiedPositions != nil {
		list := toCapabilityList(*req.QualifiedPositions)
		profile.QualifiedPositions = list
		updates["qualified_positions"] = list
	}
	if req.RotationWeight != nil {
		if *req.RotationWeight < 0 {
			return nil, apperrors.ErrNegativeWeight
		}
		profile.RotationWeight = *req.RotationWeight
		updates["rotation_weight"] = *req.RotationWeight
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.NewValidationError("status", "invalid profile status")
		}
		profile.Status = *req.Status
		updates["status"] = *req.Status
	}

	if len(updates) == 0 {
		return s.toResponse(profile), nil
	}

	ok, err := s.repo.UpdateVersioned(id, profile.Version, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	if !ok {
		return nil, apperrors.ErrProfileVersionConflict
	}

	profile.Version++
	return s.toResponse(profile), nil
}

// SetAvailability replaces the weekly availability pattern, creating it
// lazily on first write
func (s *ServingProfileService) SetAvailability(profileID uuid.UUID, req *SetAvailabilityRequest) (*ProfileResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByID(profileID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServingProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	slots := make([]models.WeeklySlot, len(req.Slots))
	for i, slot := range req.Slots {
		if slot.EndMinute <= slot.StartMinute {
			return nil, apperrors.NewValidationError("slots", "slot end must be after start")
		}
		slots[i] = models.WeeklySlot{
			Weekday:     time.Weekday(slot.Weekday),
			StartMinute: slot.StartMinute,
			EndMinute:   slot.EndMinute,
		}
	}

	if _, err := s.availabilityRepo.Upsert(profileID, slots); err != nil {
		return nil, fmt.Errorf("failed to save availability pattern: %w", err)
	}

	return s.GetByID(profileID)
}

// AddBlockout adds an inclusive blockout range to a profile
func (s *ServingProfileService) AddBlockout(profileID uuid.UUID, req *CreateBlockoutRequest) (*BlockoutResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.EndDate.Before(req.StartDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	if _, err := s.repo.GetByID(profileID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServingProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	blockout := &models.BlockoutDate{
		ProfileID: profileID,
		StartDate: models.DateOnly(req.StartDate),
		EndDate:   models.DateOnly(req.EndDate),
		Reason:    req.Reason,
	}

	if err := s.blockoutRepo.Create(blockout); err != nil {
		return nil, fmt.Errorf("failed to create blockout: %w", err)
	}

	return toBlockoutResponse(blockout), nil
}

// RemoveBlockout deletes a blockout range
func (s *ServingProfileService) RemoveBlockout(blockoutID uuid.UUID) error {
	if _, err := s.blockoutRepo.GetByID(blockoutID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBlockoutNotFound
		}
		return fmt.Errorf("failed to get blockout: %w", err)
	}

	if err := s.blockoutRepo.Delete(blockoutID); err != nil {
		return fmt.Errorf("failed to delete blockout: %w", err)
	}

	return nil
}

func toCapabilityList(positions []string) models.CapabilityList {
	list := make(models.CapabilityList, len(positions))
	for i, p := range positions {
		list[i] = models.Capability(p)
	}
	return list
}

func toBlockoutResponse(blockout *models.BlockoutDate) *BlockoutResponse {
	return &BlockoutResponse{
		ID:        blockout.ID,
		StartDate: blockout.StartDate.Format("2006-01-02"),
		EndDate:   blockout.EndDate.Format("2006-01-02"),
		Reason:    blockout.Reason,
	}
}

func (s *ServingProfileService) toResponse(profile *models.VolunteerServingProfile) *ProfileResponse {
	positions := make([]string, len(profile.QualifiedPositions))
	for i, c := range profile.QualifiedPositions {
		positions[i] = string(c)
	}

	resp := &ProfileResponse{
		ID:                 profile.ID,
		VolunteerID:        profile.VolunteerID,
		MinistryID:         profile.MinistryID,
		QualifiedPositions: positions,
		Status:             profile.Status,
		RotationWeight:     profile.RotationWeight,
		Version:            profile.Version,
	}

	if profile.LastServedAt != nil {
		served := profile.LastServedAt.Format("2006-01-02")
		resp.LastServedAt = &served
	}

	for i := range profile.Blockouts {
		resp.Blockouts = append(resp.Blockouts, *toBlockoutResponse(&profile.Blockouts[i]))
	}

	if profile.AvailabilityPattern != nil {
		for _, slot := range profile.AvailabilityPattern.Slots {
			resp.WeeklySlots = append(resp.WeeklySlots, WeeklySlotRequest{
				Weekday:     int(slot.Weekday),
				StartMinute: slot.StartMinute,
				EndMinute:   slot.EndMinute,
			})
		}
	}

	return resp
}
