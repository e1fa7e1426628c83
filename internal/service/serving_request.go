package service

import (
	"errors"
	"fmt"
	"time"

	"serving-scheduler-backend/internal/database/models"
	apperrors "serving-scheduler-backend/internal/errors"
	"serving-scheduler-backend/internal/logger"
	"serving-scheduler-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// lastServedRetries bounds the optimistic-retry loop when recording a serve
// date against a concurrently edited profile
const lastServedRetries = 3

// ServingRequestService owns the invitation state machine:
// pending -> accepted | declined | expired, all terminal. Every transition is
// a conditional update so concurrent responders, admins and the sweep
// serialize on the database row.
type ServingRequestService struct {
	repo         *repository.ServingRequestRepository
	serviceRepo  *repository.ServiceInstanceRepository
	profileRepo  *repository.ServingProfileRepository
	positionRepo *repository.PositionRepository
	events       EventPublisher
	validator    *validator.Validate
	log          *logger.Logger
}

// NewServingRequestService creates a new serving request service
func NewServingRequestService(repo *repository.ServingRequestRepository, serviceRepo *repository.ServiceInstanceRepository, profileRepo *repository.ServingProfileRepository, positionRepo *repository.PositionRepository, events EventPublisher, validator *validator.Validate) *ServingRequestService {
	return &ServingRequestService{
		repo:         repo,
		serviceRepo:  serviceRepo,
		profileRepo:  profileRepo,
		positionRepo: positionRepo,
		events:       events,
		validator:    validator,
		log:          logger.New(),
	}
}

// CreateServingRequestRequest represents the request to invite a volunteer
type CreateServingRequestRequest struct {
	PositionName string     `json:"position_name" validate:"required,max=100"`
	VolunteerID  string     `json:"volunteer_id" validate:"required,max=100"`
	RequestedBy  string     `json:"requested_by" validate:"required,max=100"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	// AllowUnqualified is the explicit, logged override for inviting a
	// volunteer without the position capability. Never the default path.
	AllowUnqualified bool `json:"allow_unqualified,omitempty"`
}

// RespondRequest represents a volunteer's response to an invitation
type RespondRequest struct {
	Status models.RequestStatus `json:"status" validate:"required"`
	Notes  string               `json:"notes,omitempty" validate:"max=500"`
}

// ServingRequestResponse represents the response for serving request operations
type ServingRequestResponse struct {
	ID                  uuid.UUID            `json:"id"`
	ServiceInstanceID   uuid.UUID            `json:"service_instance_id"`
	PositionName        string               `json:"position_name"`
	VolunteerID         string               `json:"volunteer_id"`
	RequestedBy         string               `json:"requested_by"`
	RequestedAt         string               `json:"requested_at"`
	ExpiresAt           *string              `json:"expires_at,omitempty"`
	Status              models.RequestStatus `json:"status"`
	RespondedAt         *string              `json:"responded_at,omitempty"`
	ResponseNotes       string               `json:"response_notes"`
	UnqualifiedOverride bool                 `json:"unqualified_override"`
}

// SweepResponse reports the outcome of one expiry sweep run
type SweepResponse struct {
	Expired int64  `json:"expired"`
	SweptAt string `json:"swept_at"`
}

// Create invites a volunteer to fill a position at a service instance.
// The eligibility filter gates creation; only the unqualified check can be
// overridden, and the override is recorded on the request and logged.
func (s *ServingRequestService) Create(serviceInstanceID uuid.UUID, req *CreateServingRequestRequest) (*ServingRequestResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	instance, err := s.serviceRepo.GetByID(serviceInstanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServiceInstanceNotFound
		}
		return nil, fmt.Errorf("failed to get service instance: %w", err)
	}

	position, err := s.positionRepo.GetByName(instance.MinistryID, req.PositionName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPositionNotFound
		}
		return nil, fmt.Errorf("failed to get position: %w", err)
	}
	if !position.IsActive {
		return nil, apperrors.ErrPositionInactive
	}

	if req.ExpiresAt != nil && !req.ExpiresAt.After(time.Now()) {
		return nil, apperrors.NewValidationError("expires_at", "must be in the future")
	}

	profile, err := s.profileRepo.GetByVolunteerAndMinistry(req.VolunteerID, instance.MinistryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServingProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	profile, err = s.profileRepo.GetWithBlockouts(profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile blockouts: %w", err)
	}

	override := false
	switch result := EvaluateEligibility(profile, position.Capability(), instance.ServiceDate()); result {
	case Eligible:
	case IneligibleUnqualified:
		if !req.AllowUnqualified {
			return nil, apperrors.NewIneligibleVolunteerError(req.VolunteerID, apperrors.IneligibilityUnqualified)
		}
		override = true
		s.log.WithFields(map[string]interface{}{
			"volunteer": req.VolunteerID,
			"position":  position.Name,
			"requester": req.RequestedBy,
		}).Warn("unqualified override used for serving request")
	case IneligibleInactive:
		return nil, apperrors.NewIneligibleVolunteerError(req.VolunteerID, apperrors.IneligibilityInactive)
	case IneligibleBlockedOut:
		return nil, apperrors.NewIneligibleVolunteerError(req.VolunteerID, apperrors.IneligibilityBlockedOut)
	default:
		return nil, fmt.Errorf("unexpected eligibility result: %s", result)
	}

	request := &models.ServingRequest{
		ServiceInstanceID:   instance.ID,
		PositionName:        position.Name,
		VolunteerID:         req.VolunteerID,
		RequestedBy:         req.RequestedBy,
		RequestedAt:         time.Now(),
		ExpiresAt:           req.ExpiresAt,
		Status:              models.RequestStatusPending,
		UnqualifiedOverride: override,
	}

	if err := s.repo.Create(request); err != nil {
		return nil, fmt.Errorf("failed to create serving request: %w", err)
	}

	s.events.RequestCreated(request.ID, request.VolunteerID)

	return toServingRequestResponse(request), nil
}

// GetByID retrieves a serving request, lazily expiring it when its deadline
// has passed. The lazy path and the sweep converge on the same terminal state.
func (s *ServingRequestService) GetByID(id uuid.UUID) (*ServingRequestResponse, error) {
	request, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServingRequestNotFound
		}
		return nil, fmt.Errorf("failed to get serving request: %w", err)
	}

	if request.IsExpiredAt(time.Now()) {
		request, err = s.expireLazily(request)
		if err != nil {
			return nil, err
		}
	}

	return toServingRequestResponse(request), nil
}

// Respond records a volunteer's accept or decline. The transition is a
// conditional update guarded on pending; a losing concurrent writer gets a
// conflict, never a silent overwrite. Accepting feeds rotation fairness by
// stamping the profile's last-served date with the service's date.
func (s *ServingRequestService) Respond(id uuid.UUID, req *RespondRequest) (*ServingRequestResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Status.IsResponse() {
		return nil, apperrors.NewValidationError("status", "must be accepted or declined")
	}

	request, err := s.repo.GetWithServiceInstance(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServingRequestNotFound
		}
		return nil, fmt.Errorf("failed to get serving request: %w", err)
	}

	now := time.Now()

	if request.IsExpiredAt(now) {
		if _, err := s.expireLazily(request); err != nil {
			return nil, err
		}
		return nil, apperrors.ErrRequestExpired
	}
	if request.Status.IsTerminal() {
		return nil, apperrors.NewInvalidStateError("serving request", string(request.Status), "respond to")
	}

	ok, err := s.repo.TransitionStatus(id, models.RequestStatusPending, req.Status, &now, req.Notes)
	if err != nil {
		return nil, fmt.Errorf("failed to transition serving request: %w", err)
	}
	if !ok {
		// Lost the race to another responder or the expiry sweep
		return nil, apperrors.ErrRequestAlreadyResolved
	}

	if req.Status == models.RequestStatusAccepted {
		if err := s.recordServed(request.VolunteerID, &request.ServiceInstance); err != nil {
			// The acceptance itself stands; rotation state converges on
			// the next accept. Surface the failure in the log.
			s.log.WithField("request_id", id).Errorf("failed to record last served date: %v", err)
		}
	}

	s.events.RequestResponded(id, req.Status)

	updated, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload serving request: %w", err)
	}
	return toServingRequestResponse(updated), nil
}

// Reopen is the admin-only path that returns an accepted request to pending,
// distinct from a volunteer decline. The response timestamp and notes are
// cleared; the volunteer's last-served date is deliberately not reverted.
func (s *ServingRequestService) Reopen(id uuid.UUID, adminID string) (*ServingRequestResponse, error) {
	request, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServingRequestNotFound
		}
		return nil, fmt.Errorf("failed to get serving request: %w", err)
	}

	if request.Status != models.RequestStatusAccepted {
		return nil, apperrors.NewInvalidStateError("serving request", string(request.Status), "reopen")
	}

	ok, err := s.repo.TransitionStatus(id, models.RequestStatusAccepted, models.RequestStatusPending, nil, "")
	if err != nil {
		return nil, fmt.Errorf("failed to reopen serving request: %w", err)
	}
	if !ok {
		return nil, apperrors.NewConflictError("serving request", "state changed concurrently")
	}

	s.log.WithFields(map[string]interface{}{
		"request_id": id,
		"admin":      adminID,
	}).Info("serving request reopened")

	updated, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload serving request: %w", err)
	}
	return toServingRequestResponse(updated), nil
}

// Sweep expires every overdue pending request. Idempotent and safe to run
// concurrently with responders and with itself; terminal requests are never
// touched. Exposed over HTTP and driven by the cron job.
func (s *ServingRequestService) Sweep() (*SweepResponse, error) {
	now := time.Now()
	expired, err := s.repo.ExpireDue(now)
	if err != nil {
		return nil, fmt.Errorf("failed to run expiry sweep: %w", err)
	}

	if expired > 0 {
		s.log.WithField("expired", expired).Info("expiry sweep transitioned overdue requests")
	}

	return &SweepResponse{
		Expired: expired,
		SweptAt: now.Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}

// expireLazily attempts the pending -> expired transition and re-reads.
// Losing to a concurrent responder is fine: whatever terminal state won is
// returned.
func (s *ServingRequestService) expireLazily(request *models.ServingRequest) (*models.ServingRequest, error) {
	if _, err := s.repo.TransitionStatus(request.ID, models.RequestStatusPending, models.RequestStatusExpired, nil, ""); err != nil {
		return nil, fmt.Errorf("failed to expire serving request: %w", err)
	}
	updated, err := s.repo.GetByID(request.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload serving request: %w", err)
	}
	return updated, nil
}

// recordServed stamps the profile's last-served date with the service's
// calendar date (not wall-clock now) through the optimistic version check.
// Dates never move backwards: accepting an older service after a newer one
// leaves the more recent date in place.
func (s *ServingRequestService) recordServed(volunteerID string, instance *models.ServiceInstance) error {
	serviceDate := instance.ServiceDate()

	for attempt := 0; attempt < lastServedRetries; attempt++ {
		profile, err := s.profileRepo.GetByVolunteerAndMinistry(volunteerID, instance.MinistryID)
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		if profile.LastServedAt != nil && !serviceDate.After(models.DateOnly(*profile.LastServedAt)) {
			return nil
		}

		ok, err := s.profileRepo.SetLastServedAt(profile.ID, profile.Version, serviceDate)
		if err != nil {
			return fmt.Errorf("failed to set last served date: %w", err)
		}
		if ok {
			return nil
		}
		// Version moved under us (admin edit); reload and retry
	}

	return apperrors.ErrProfileVersionConflict
}

func toServingRequestResponse(request *models.ServingRequest) *ServingRequestResponse {
	resp := &ServingRequestResponse{
		ID:                  request.ID,
		ServiceInstanceID:   request.ServiceInstanceID,
		PositionName:        request.PositionName,
		VolunteerID:         request.VolunteerID,
		RequestedBy:         request.RequestedBy,
		RequestedAt:         request.RequestedAt.Format("2006-01-02T15:04:05Z07:00"),
		Status:              request.Status,
		ResponseNotes:       request.ResponseNotes,
		UnqualifiedOverride: request.UnqualifiedOverride,
	}

	if request.ExpiresAt != nil {
		expires := request.ExpiresAt.Format("2006-01-02T15:04:05Z07:00")
		resp.ExpiresAt = &expires
	}
	if request.RespondedAt != nil {
		responded := request.RespondedAt.Format("2006-01-02T15:04:05Z07:00")
		resp.RespondedAt = &responded
	}

	return resp
}
