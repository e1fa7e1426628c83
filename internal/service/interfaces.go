package service

import (
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// MinistryServiceInterface defines the interface for ministry service
type MinistryServiceInterface interface {
	Create(req *CreateMinistryRequest) (*MinistryResponse, error)
	GetAll(page, pageSize int) (*MinistryListResponse, error)
}

// PositionServiceInterface defines the interface for position service
type PositionServiceInterface interface {
	Create(req *CreatePositionRequest) (*PositionResponse, error)
	ListByMinistry(ministryID uuid.UUID) (*PositionListResponse, error)
	SetActive(id uuid.UUID, active bool) (*PositionResponse, error)
}

// ServingProfileServiceInterface defines the interface for serving profile service
type ServingProfileServiceInterface interface {
	Create(ministryID uuid.UUID, req *CreateProfileRequest) (*ProfileResponse, error)
	GetByID(id uuid.UUID) (*ProfileResponse, error)
	Update(id uuid.UUID, req *UpdateProfileRequest) (*ProfileResponse, error)
	SetAvailability(profileID uuid.UUID, req *SetAvailabilityRequest) (*ProfileResponse, error)
	AddBlockout(profileID uuid.UUID, req *CreateBlockoutRequest) (*BlockoutResponse, error)
	RemoveBlockout(blockoutID uuid.UUID) error
}

// ServiceInstanceServiceInterface defines the interface for the service registry
type ServiceInstanceServiceInterface interface {
	Create(req *CreateServiceInstanceRequest) (*ServiceInstanceResponse, error)
	GetByID(id uuid.UUID) (*ServiceInstanceResponse, error)
	GetGrid(ministryID uuid.UUID, from, to time.Time) (*ScheduleGridResponse, error)
}

// ServingRequestServiceInterface defines the interface for the request lifecycle
type ServingRequestServiceInterface interface {
	Create(serviceInstanceID uuid.UUID, req *CreateServingRequestRequest) (*ServingRequestResponse, error)
	GetByID(id uuid.UUID) (*ServingRequestResponse, error)
	Respond(id uuid.UUID, req *RespondRequest) (*ServingRequestResponse, error)
	Reopen(id uuid.UUID, adminID string) (*ServingRequestResponse, error)
	Sweep() (*SweepResponse, error)
}

// SuggestServiceInterface defines the interface for the auto-suggest engine
type SuggestServiceInterface interface {
	Suggest(serviceInstanceID uuid.UUID, positionName string, maxResults int) (*SuggestionListResponse, error)
}
