package models

import "encoding/json"

// Ministry is the organizational unit owning positions, services and profiles
type Ministry struct {
	BaseModel
	Name        string          `json:"name" gorm:"size:40;not null;uniqueIndex" validate:"required,min=1,max=40"`
	Title       string          `json:"title" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Description string          `json:"description" gorm:"size:200" validate:"max=200"`
	Metadata    json.RawMessage `json:"metadata" gorm:"type:jsonb"`

	// Relationships
	Positions        []PositionDefinition     `json:"positions,omitempty" gorm:"foreignKey:MinistryID;constraint:OnDelete:CASCADE"`
	ServiceInstances []ServiceInstance        `json:"service_instances,omitempty" gorm:"foreignKey:MinistryID;constraint:OnDelete:CASCADE"`
	ServingProfiles  []VolunteerServingProfile `json:"serving_profiles,omitempty" gorm:"foreignKey:MinistryID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Ministry
func (Ministry) TableName() string {
	return "ministries"
}
