package service_test

import (
	"testing"
	"time"

	"serving-scheduler-backend/internal/database/models"
	"serving-scheduler-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func activeProfile(qualified ...models.Capability) *models.VolunteerServingProfile {
	return &models.VolunteerServingProfile{
		VolunteerID:        "vol-1",
		QualifiedPositions: models.CapabilityList(qualified),
		Status:             models.ProfileStatusActive,
		RotationWeight:     1.0,
	}
}

func TestEvaluateEligibility(t *testing.T) {
	serviceDate := date(2026, time.March, 15)

	testCases := []struct {
		name     string
		profile  *models.VolunteerServingProfile
		position models.Capability
		expected service.EligibilityResult
	}{
		{
			name:     "Active and qualified",
			profile:  activeProfile("vocalist"),
			position: "vocalist",
			expected: service.Eligible,
		},
		{
			name: "Inactive profile",
			profile: func() *models.VolunteerServingProfile {
				p := activeProfile("vocalist")
				p.Status = models.ProfileStatusInactive
				return p
			}(),
			position: "vocalist",
			expected: service.IneligibleInactive,
		},
		{
			name:     "Not qualified for position",
			profile:  activeProfile("drummer"),
			position: "vocalist",
			expected: service.IneligibleUnqualified,
		},
		{
			name:     "No qualifications at all",
			profile:  activeProfile(),
			position: "vocalist",
			expected: service.IneligibleUnqualified,
		},
		{
			name: "Inactive wins over unqualified",
			profile: func() *models.VolunteerServingProfile {
				p := activeProfile("drummer")
				p.Status = models.ProfileStatusInactive
				return p
			}(),
			position: "vocalist",
			expected: service.IneligibleInactive,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := service.EvaluateEligibility(tc.profile, tc.position, serviceDate)
			assert.Equal(t, tc.expected, result)
		})
	}
}

// TestEvaluateEligibilityBlockoutBounds pins the inclusive semantics of
// blockout ranges on both ends
func TestEvaluateEligibilityBlockoutBounds(t *testing.T) {
	blockout := models.BlockoutDate{
		StartDate: date(2026, time.March, 10),
		EndDate:   date(2026, time.March, 20),
	}

	testCases := []struct {
		name        string
		serviceDate time.Time
		expected    service.EligibilityResult
	}{
		{"Day before range", date(2026, time.March, 9), service.Eligible},
		{"First day of range", date(2026, time.March, 10), service.IneligibleBlockedOut},
		{"Middle of range", date(2026, time.March, 15), service.IneligibleBlockedOut},
		{"Last day of range", date(2026, time.March, 20), service.IneligibleBlockedOut},
		{"Day after range", date(2026, time.March, 21), service.Eligible},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			profile := activeProfile("vocalist")
			profile.Blockouts = []models.BlockoutDate{blockout}

			result := service.EvaluateEligibility(profile, "vocalist", tc.serviceDate)
			assert.Equal(t, tc.expected, result)
		})
	}
}

// TestEvaluateEligibilityBlockoutSingleDay covers a one-day range where start
// and end coincide
func TestEvaluateEligibilityBlockoutSingleDay(t *testing.T) {
	profile := activeProfile("vocalist")
	profile.Blockouts = []models.BlockoutDate{
		{StartDate: date(2026, time.April, 5), EndDate: date(2026, time.April, 5)},
	}

	assert.Equal(t, service.IneligibleBlockedOut,
		service.EvaluateEligibility(profile, "vocalist", date(2026, time.April, 5)))
	assert.Equal(t, service.Eligible,
		service.EvaluateEligibility(profile, "vocalist", date(2026, time.April, 4)))
	assert.Equal(t, service.Eligible,
		service.EvaluateEligibility(profile, "vocalist", date(2026, time.April, 6)))
}

// TestEvaluateEligibilityIgnoresTimeOfDay verifies comparison happens on
// calendar dates, not instants
func TestEvaluateEligibilityIgnoresTimeOfDay(t *testing.T) {
	profile := activeProfile("vocalist")
	profile.Blockouts = []models.BlockoutDate{
		{StartDate: date(2026, time.May, 1), EndDate: date(2026, time.May, 1)},
	}

	lateEvening := time.Date(2026, time.May, 1, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, service.IneligibleBlockedOut,
		service.EvaluateEligibility(profile, "vocalist", lateEvening))
}

func TestPatternMatch(t *testing.T) {
	sundayMorning := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC) // a Sunday

	t.Run("No pattern returns nil", func(t *testing.T) {
		profile := activeProfile("vocalist")
		assert.Nil(t, service.PatternMatch(profile, sundayMorning))
	})

	t.Run("Pattern covering the slot", func(t *testing.T) {
		profile := activeProfile("vocalist")
		profile.AvailabilityPattern = &models.AvailabilityPattern{
			Slots: []models.WeeklySlot{
				{Weekday: time.Sunday, StartMinute: 9 * 60, EndMinute: 12 * 60},
			},
		}
		match := service.PatternMatch(profile, sundayMorning)
		assert.NotNil(t, match)
		assert.True(t, *match)
	})

	t.Run("Pattern on another weekday", func(t *testing.T) {
		profile := activeProfile("vocalist")
		profile.AvailabilityPattern = &models.AvailabilityPattern{
			Slots: []models.WeeklySlot{
				{Weekday: time.Wednesday, StartMinute: 18 * 60, EndMinute: 21 * 60},
			},
		}
		match := service.PatternMatch(profile, sundayMorning)
		assert.NotNil(t, match)
		assert.False(t, *match)
	})
}
