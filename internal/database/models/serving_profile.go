package models

import (
	"time"

	"github.com/google/uuid"
)

// VolunteerServingProfile is a volunteer's enrollment record in a ministry.
// The volunteer ID is an opaque key supplied by the external identity
// collaborator and is never validated here.
//
// Version backs optimistic concurrency on rotation state: LastServedAt and
// RotationWeight are only ever written through conditional updates guarded on
// the current version.
type VolunteerServingProfile struct {
	BaseModel
	VolunteerID        string         `json:"volunteer_id" gorm:"size:100;not null;uniqueIndex:idx_profiles_volunteer_ministry" validate:"required,max=100"`
	MinistryID         uuid.UUID      `json:"ministry_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_profiles_volunteer_ministry" validate:"required"`
	QualifiedPositions CapabilityList `json:"qualified_positions" gorm:"serializer:json;type:jsonb"`
	Status             ProfileStatus  `json:"status" gorm:"type:varchar(20);not null;default:'active'" validate:"required"`
	RotationWeight     float64        `json:"rotation_weight" gorm:"not null;default:1" validate:"gte=0"`
	LastServedAt       *time.Time     `json:"last_served_at"`
	Version            int            `json:"version" gorm:"not null;default:1"`

	// Relationships
	Ministry            Ministry             `json:"ministry,omitempty" gorm:"foreignKey:MinistryID;constraint:OnDelete:CASCADE"`
	AvailabilityPattern *AvailabilityPattern `json:"availability_pattern,omitempty" gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	Blockouts           []BlockoutDate       `json:"blockouts,omitempty" gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for VolunteerServingProfile
func (VolunteerServingProfile) TableName() string {
	return "volunteer_serving_profiles"
}

// IsQualifiedFor reports whether the profile holds the given capability
func (p *VolunteerServingProfile) IsQualifiedFor(c Capability) bool {
	return p.QualifiedPositions.Contains(c)
}

// IsBlockedOutOn reports whether any blockout range covers the given date,
// inclusive on both ends. Comparison is on calendar dates, not instants.
func (p *VolunteerServingProfile) IsBlockedOutOn(date time.Time) bool {
	d := DateOnly(date)
	for _, b := range p.Blockouts {
		if !d.Before(DateOnly(b.StartDate)) && !d.After(DateOnly(b.EndDate)) {
			return true
		}
	}
	return false
}

// DateOnly truncates a timestamp to its calendar date in UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
