package models

import (
	"time"

	"github.com/google/uuid"
)

// WeeklySlot is one recurring availability window within a week
type WeeklySlot struct {
	Weekday     time.Weekday `json:"weekday" validate:"gte=0,lte=6"`
	StartMinute int          `json:"start_minute" validate:"gte=0,lt=1440"`
	EndMinute   int          `json:"end_minute" validate:"gt=0,lte=1440"`
}

// AvailabilityPattern holds a volunteer's default weekly availability for one
// serving profile. Created lazily on first edit. The pattern is advisory
// context for schedulers; it never hard-excludes a candidate, only explicit
// blockouts do.
type AvailabilityPattern struct {
	BaseModel
	ProfileID uuid.UUID    `json:"profile_id" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`
	Slots     []WeeklySlot `json:"slots" gorm:"serializer:json;type:jsonb"`
}

// TableName returns the table name for AvailabilityPattern
func (AvailabilityPattern) TableName() string {
	return "availability_patterns"
}

// CoversInstant reports whether any weekly slot contains the given time of day
func (a *AvailabilityPattern) CoversInstant(t time.Time) bool {
	minute := t.Hour()*60 + t.Minute()
	for _, slot := range a.Slots {
		if slot.Weekday == t.Weekday() && minute >= slot.StartMinute && minute < slot.EndMinute {
			return true
		}
	}
	return false
}
