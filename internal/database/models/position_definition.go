package models

import "github.com/google/uuid"

// PositionDefinition is a named role within a ministry. The name doubles as
// the capability a profile must hold to be qualified for the position.
// Immutable once requests reference it except for the IsActive soft-disable.
type PositionDefinition struct {
	BaseModel
	MinistryID           uuid.UUID      `json:"ministry_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_positions_ministry_name" validate:"required"`
	Name                 string         `json:"name" gorm:"size:100;not null;uniqueIndex:idx_positions_ministry_name" validate:"required,min=1,max=100"`
	Description          string         `json:"description" gorm:"size:200" validate:"max=200"`
	DisplayOrder int `json:"display_order" gorm:"not null;default:0"`
	// RequiredCapabilities is descriptive metadata for admin tooling. It
	// never participates in eligibility matching; Capability() is the sole
	// matching key.
	RequiredCapabilities CapabilityList `json:"required_capabilities" gorm:"serializer:json;type:jsonb"`
	IsActive             bool           `json:"is_active" gorm:"default:true"`

	// Relationships
	Ministry Ministry `json:"ministry,omitempty" gorm:"foreignKey:MinistryID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PositionDefinition
func (PositionDefinition) TableName() string {
	return "position_definitions"
}

// Capability returns the capability a volunteer needs to fill this position
func (p *PositionDefinition) Capability() Capability {
	return Capability(p.Name)
}
