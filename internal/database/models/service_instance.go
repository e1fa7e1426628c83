package models

import (
	"time"

	"github.com/google/uuid"
)

// ServiceInstance is one concrete calendar occurrence of a recurring service.
// The (ministry_id, starts_at) pair is unique: two instances of one ministry
// at the same instant are rejected at creation instead of colliding in the
// schedule grid.
type ServiceInstance struct {
	BaseModel
	MinistryID uuid.UUID  `json:"ministry_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_services_ministry_starts_at" validate:"required"`
	Title      string     `json:"title" gorm:"size:200;not null" validate:"required,max=200"`
	StartsAt   time.Time  `json:"starts_at" gorm:"not null;uniqueIndex:idx_services_ministry_starts_at" validate:"required"`
	EndsAt     *time.Time `json:"ends_at,omitempty"`
	Location   string     `json:"location" gorm:"size:200" validate:"max=200"`

	// Relationships
	Ministry        Ministry         `json:"ministry,omitempty" gorm:"foreignKey:MinistryID;constraint:OnDelete:CASCADE"`
	ServingRequests []ServingRequest `json:"serving_requests,omitempty" gorm:"foreignKey:ServiceInstanceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ServiceInstance
func (ServiceInstance) TableName() string {
	return "service_instances"
}

// ServiceDate returns the calendar date of the occurrence
func (s *ServiceInstance) ServiceDate() time.Time {
	return DateOnly(s.StartsAt)
}
