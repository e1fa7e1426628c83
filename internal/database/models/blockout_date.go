package models

import (
	"time"

	"github.com/google/uuid"
)

// BlockoutDate is an explicit date range during which a volunteer is
// unavailable. Both ends are inclusive; a service date inside any blockout
// makes the volunteer ineligible regardless of the weekly pattern.
type BlockoutDate struct {
	BaseModel
	ProfileID uuid.UUID `json:"profile_id" gorm:"type:uuid;not null;index" validate:"required"`
	StartDate time.Time `json:"start_date" gorm:"type:date;not null" validate:"required"`
	EndDate   time.Time `json:"end_date" gorm:"type:date;not null" validate:"required"`
	Reason    string    `json:"reason" gorm:"size:200" validate:"max=200"`
}

// TableName returns the table name for BlockoutDate
func (BlockoutDate) TableName() string {
	return "blockout_dates"
}
