package service

import (
	"testing"
	"time"

	"serving-scheduler-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
)

func profileServed(volunteerID string, daysAgo int, weight float64, serviceDate time.Time) models.VolunteerServingProfile {
	served := serviceDate.AddDate(0, 0, -daysAgo)
	return models.VolunteerServingProfile{
		VolunteerID:    volunteerID,
		RotationWeight: weight,
		LastServedAt:   &served,
	}
}

func profileNeverServed(volunteerID string, weight float64) models.VolunteerServingProfile {
	return models.VolunteerServingProfile{
		VolunteerID:    volunteerID,
		RotationWeight: weight,
	}
}

func volunteerOrder(ranked []models.VolunteerServingProfile) []string {
	ids := make([]string, len(ranked))
	for i := range ranked {
		ids[i] = ranked[i].VolunteerID
	}
	return ids
}

func TestRankCandidates(t *testing.T) {
	serviceDate := time.Date(2026, time.June, 14, 0, 0, 0, 0, time.UTC)
	const band = 7

	testCases := []struct {
		name     string
		profiles []models.VolunteerServingProfile
		expected []string
	}{
		{
			name: "Large recency gap beats higher weight",
			profiles: []models.VolunteerServingProfile{
				profileServed("vol-b", 2, 10, serviceDate),
				profileServed("vol-a", 20, 1, serviceDate),
			},
			expected: []string{"vol-a", "vol-b"},
		},
		{
			name: "Within the band weight decides",
			profiles: []models.VolunteerServingProfile{
				profileServed("vol-a", 5, 3, serviceDate),
				profileServed("vol-b", 2, 8, serviceDate),
			},
			expected: []string{"vol-b", "vol-a"},
		},
		{
			name: "Gap exactly at the band still uses weight",
			profiles: []models.VolunteerServingProfile{
				profileServed("vol-a", 9, 1, serviceDate),
				profileServed("vol-b", 2, 5, serviceDate),
			},
			expected: []string{"vol-b", "vol-a"},
		},
		{
			name: "Gap one past the band switches to recency",
			profiles: []models.VolunteerServingProfile{
				profileServed("vol-b", 2, 5, serviceDate),
				profileServed("vol-a", 10, 1, serviceDate),
			},
			expected: []string{"vol-a", "vol-b"},
		},
		{
			name: "Never served sorts first",
			profiles: []models.VolunteerServingProfile{
				profileServed("vol-a", 100, 10, serviceDate),
				profileNeverServed("vol-b", 1),
			},
			expected: []string{"vol-b", "vol-a"},
		},
		{
			name: "Two never served tie on weight",
			profiles: []models.VolunteerServingProfile{
				profileNeverServed("vol-a", 1),
				profileNeverServed("vol-b", 5),
			},
			expected: []string{"vol-b", "vol-a"},
		},
		{
			name: "Equal recency and weight break on volunteer ID",
			profiles: []models.VolunteerServingProfile{
				profileServed("vol-b", 3, 2, serviceDate),
				profileServed("vol-a", 3, 2, serviceDate),
			},
			expected: []string{"vol-a", "vol-b"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ranked := rankCandidates(tc.profiles, serviceDate, band)
			assert.Equal(t, tc.expected, volunteerOrder(ranked))
		})
	}
}

func TestRankCandidatesDoesNotMutateInput(t *testing.T) {
	serviceDate := time.Date(2026, time.June, 14, 0, 0, 0, 0, time.UTC)
	profiles := []models.VolunteerServingProfile{
		profileServed("vol-b", 2, 10, serviceDate),
		profileServed("vol-a", 20, 1, serviceDate),
	}

	rankCandidates(profiles, serviceDate, 7)

	assert.Equal(t, "vol-b", profiles[0].VolunteerID)
	assert.Equal(t, "vol-a", profiles[1].VolunteerID)
}

func TestRankCandidatesEmpty(t *testing.T) {
	serviceDate := time.Date(2026, time.June, 14, 0, 0, 0, 0, time.UTC)
	ranked := rankCandidates(nil, serviceDate, 7)
	assert.Empty(t, ranked)
}

func TestDaysSinceServed(t *testing.T) {
	serviceDate := time.Date(2026, time.June, 14, 0, 0, 0, 0, time.UTC)

	t.Run("Never served is maximal", func(t *testing.T) {
		p := profileNeverServed("vol-a", 1)
		assert.Equal(t, neverServedDays, daysSinceServed(&p, serviceDate))
	})

	t.Run("Whole days between dates", func(t *testing.T) {
		p := profileServed("vol-a", 12, 1, serviceDate)
		assert.Equal(t, 12, daysSinceServed(&p, serviceDate))
	})

	t.Run("Served after the service date clamps to zero", func(t *testing.T) {
		p := profileServed("vol-a", -3, 1, serviceDate)
		assert.Equal(t, 0, daysSinceServed(&p, serviceDate))
	})

	t.Run("Time of day on last served is ignored", func(t *testing.T) {
		served := time.Date(2026, time.June, 10, 22, 45, 0, 0, time.UTC)
		p := models.VolunteerServingProfile{VolunteerID: "vol-a", LastServedAt: &served}
		assert.Equal(t, 4, daysSinceServed(&p, serviceDate))
	})
}
