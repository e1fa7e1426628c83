package testutils

import (
	"time"

	"serving-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
)

// MinistryFactory provides methods to create test Ministry data
type MinistryFactory struct{}

// NewMinistryFactory creates a new MinistryFactory
func NewMinistryFactory() *MinistryFactory {
	return &MinistryFactory{}
}

// Create creates a test Ministry with default values
func (f *MinistryFactory) Create() *models.Ministry {
	id := uuid.New()
	return &models.Ministry{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "worship-" + id.String()[:8],
		Title:       "Worship Ministry",
		Description: "Sunday worship team",
	}
}

// WithName sets a custom name for the ministry
func (f *MinistryFactory) WithName(name string) *models.Ministry {
	ministry := f.Create()
	ministry.Name = name
	return ministry
}

// PositionFactory provides methods to create test PositionDefinition data
type PositionFactory struct{}

// NewPositionFactory creates a new PositionFactory
func NewPositionFactory() *PositionFactory {
	return &PositionFactory{}
}

// Create creates a test PositionDefinition with default values
func (f *PositionFactory) Create(ministryID uuid.UUID) *models.PositionDefinition {
	return &models.PositionDefinition{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		MinistryID:           ministryID,
		Name:                 "vocalist",
		Description:          "Lead and backing vocals",
		DisplayOrder:         1,
		RequiredCapabilities: models.CapabilityList{"vocalist"},
		IsActive:             true,
	}
}

// WithName sets a custom name for the position
func (f *PositionFactory) WithName(ministryID uuid.UUID, name string) *models.PositionDefinition {
	position := f.Create(ministryID)
	position.Name = name
	position.RequiredCapabilities = models.CapabilityList{models.Capability(name)}
	return position
}

// Inactive creates a soft-disabled position
func (f *PositionFactory) Inactive(ministryID uuid.UUID) *models.PositionDefinition {
	position := f.Create(ministryID)
	position.IsActive = false
	return position
}

// ProfileFactory provides methods to create test VolunteerServingProfile data
type ProfileFactory struct{}

// NewProfileFactory creates a new ProfileFactory
func NewProfileFactory() *ProfileFactory {
	return &ProfileFactory{}
}

// Create creates a test profile with default values: active, qualified as
// vocalist, never served, weight 1
func (f *ProfileFactory) Create(ministryID uuid.UUID) *models.VolunteerServingProfile {
	id := uuid.New()
	return &models.VolunteerServingProfile{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		VolunteerID:        "vol-" + id.String()[:8],
		MinistryID:         ministryID,
		QualifiedPositions: models.CapabilityList{"vocalist"},
		Status:             models.ProfileStatusActive,
		RotationWeight:     1.0,
		Version:            1,
	}
}

// WithVolunteerID sets a custom volunteer ID
func (f *ProfileFactory) WithVolunteerID(ministryID uuid.UUID, volunteerID string) *models.VolunteerServingProfile {
	profile := f.Create(ministryID)
	profile.VolunteerID = volunteerID
	return profile
}

// WithLastServed sets the last served date
func (f *ProfileFactory) WithLastServed(ministryID uuid.UUID, lastServed time.Time) *models.VolunteerServingProfile {
	profile := f.Create(ministryID)
	served := models.DateOnly(lastServed)
	profile.LastServedAt = &served
	return profile
}

// Inactive creates a profile with inactive status
func (f *ProfileFactory) Inactive(ministryID uuid.UUID) *models.VolunteerServingProfile {
	profile := f.Create(ministryID)
	profile.Status = models.ProfileStatusInactive
	return profile
}

// BlockoutFactory provides methods to create test BlockoutDate data
type BlockoutFactory struct{}

// NewBlockoutFactory creates a new BlockoutFactory
func NewBlockoutFactory() *BlockoutFactory {
	return &BlockoutFactory{}
}

// Create creates a blockout covering the given range
func (f *BlockoutFactory) Create(profileID uuid.UUID, start, end time.Time) *models.BlockoutDate {
	return &models.BlockoutDate{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProfileID: profileID,
		StartDate: models.DateOnly(start),
		EndDate:   models.DateOnly(end),
		Reason:    "vacation",
	}
}

// ServiceInstanceFactory provides methods to create test ServiceInstance data
type ServiceInstanceFactory struct{}

// NewServiceInstanceFactory creates a new ServiceInstanceFactory
func NewServiceInstanceFactory() *ServiceInstanceFactory {
	return &ServiceInstanceFactory{}
}

// Create creates a service instance starting at the given time
func (f *ServiceInstanceFactory) Create(ministryID uuid.UUID, startsAt time.Time) *models.ServiceInstance {
	ends := startsAt.Add(90 * time.Minute)
	return &models.ServiceInstance{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		MinistryID: ministryID,
		Title:      "Sunday Service",
		StartsAt:   startsAt,
		EndsAt:     &ends,
		Location:   "Main Hall",
	}
}

// ServingRequestFactory provides methods to create test ServingRequest data
type ServingRequestFactory struct{}

// NewServingRequestFactory creates a new ServingRequestFactory
func NewServingRequestFactory() *ServingRequestFactory {
	return &ServingRequestFactory{}
}

// Create creates a pending serving request
func (f *ServingRequestFactory) Create(serviceInstanceID uuid.UUID, volunteerID string) *models.ServingRequest {
	return &models.ServingRequest{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ServiceInstanceID: serviceInstanceID,
		PositionName:      "vocalist",
		VolunteerID:       volunteerID,
		RequestedBy:       "scheduler-1",
		RequestedAt:       time.Now(),
		Status:            models.RequestStatusPending,
	}
}

// Expiring creates a pending request with the given deadline
func (f *ServingRequestFactory) Expiring(serviceInstanceID uuid.UUID, volunteerID string, expiresAt time.Time) *models.ServingRequest {
	request := f.Create(serviceInstanceID, volunteerID)
	request.ExpiresAt = &expiresAt
	return request
}

// FactorySet provides access to all factories
type FactorySet struct {
	Ministry        *MinistryFactory
	Position        *PositionFactory
	Profile         *ProfileFactory
	Blockout        *BlockoutFactory
	ServiceInstance *ServiceInstanceFactory
	ServingRequest  *ServingRequestFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Ministry:        NewMinistryFactory(),
		Position:        NewPositionFactory(),
		Profile:         NewProfileFactory(),
		Blockout:        NewBlockoutFactory(),
		ServiceInstance: NewServiceInstanceFactory(),
		ServingRequest:  NewServingRequestFactory(),
	}
}
