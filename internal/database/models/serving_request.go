package models

import (
	"time"

	"github.com/google/uuid"
)

// ServingRequest is one invitation of a volunteer to fill a position at a
// specific service instance.
//
// Status transitions are pending -> accepted | declined | expired, all three
// terminal. Writers go through conditional updates guarded on the current
// status so concurrent responders and the expiry sweep serialize on the
// database row, never on in-process locks.
type ServingRequest struct {
	BaseModel
	ServiceInstanceID uuid.UUID     `json:"service_instance_id" gorm:"type:uuid;not null;index" validate:"required"`
	PositionName      string        `json:"position_name" gorm:"size:100;not null" validate:"required,max=100"`
	VolunteerID       string        `json:"volunteer_id" gorm:"size:100;not null;index" validate:"required,max=100"`
	RequestedBy       string        `json:"requested_by" gorm:"size:100;not null" validate:"required,max=100"`
	RequestedAt       time.Time     `json:"requested_at" gorm:"not null"`
	ExpiresAt         *time.Time    `json:"expires_at,omitempty"`
	Status            RequestStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index" validate:"required"`
	RespondedAt       *time.Time    `json:"responded_at,omitempty"`
	ResponseNotes     string        `json:"response_notes" gorm:"size:500" validate:"max=500"`
	// UnqualifiedOverride records that a scheduler knowingly invited a
	// volunteer without the position capability. Audit trail for the
	// non-default creation path.
	UnqualifiedOverride bool `json:"unqualified_override" gorm:"default:false"`

	// Relationships
	ServiceInstance ServiceInstance `json:"service_instance,omitempty" gorm:"foreignKey:ServiceInstanceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ServingRequest
func (ServingRequest) TableName() string {
	return "serving_requests"
}

// IsExpiredAt reports whether the request should be considered expired at the
// given instant: still pending with a passed deadline
func (r *ServingRequest) IsExpiredAt(now time.Time) bool {
	return r.Status == RequestStatusPending && r.ExpiresAt != nil && !now.Before(*r.ExpiresAt)
}
