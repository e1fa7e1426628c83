package service

import (
	"fmt"
	"testing"
	"time"

	"serving-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func instanceAt(ministryID uuid.UUID, startsAt time.Time, title string) models.ServiceInstance {
	return models.ServiceInstance{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		MinistryID: ministryID,
		Title:      title,
		StartsAt:   startsAt,
	}
}

func TestBuildGrid(t *testing.T) {
	ministryID := uuid.New()

	t.Run("Empty input yields empty grid", func(t *testing.T) {
		days, anomalies := buildGrid(nil)
		assert.Empty(t, days)
		assert.Empty(t, anomalies)
	})

	t.Run("Instances keyed by date and time", func(t *testing.T) {
		instances := []models.ServiceInstance{
			instanceAt(ministryID, time.Date(2026, time.July, 5, 9, 0, 0, 0, time.UTC), "Early Service"),
			instanceAt(ministryID, time.Date(2026, time.July, 5, 11, 30, 0, 0, time.UTC), "Late Service"),
			instanceAt(ministryID, time.Date(2026, time.July, 12, 9, 0, 0, 0, time.UTC), "Next Week"),
		}

		days, anomalies := buildGrid(instances)

		assert.Empty(t, anomalies)
		assert.Len(t, days, 2)
		assert.Len(t, days["2026-07-05"], 2)
		assert.Len(t, days["2026-07-12"], 1)
		assert.Equal(t, "Early Service", days["2026-07-05"]["09:00"].Title)
		assert.Equal(t, "Late Service", days["2026-07-05"]["11:30"].Title)
		assert.Equal(t, "Next Week", days["2026-07-12"]["09:00"].Title)
	})

	t.Run("Every instance lands in exactly one cell", func(t *testing.T) {
		var instances []models.ServiceInstance
		base := time.Date(2026, time.August, 2, 8, 0, 0, 0, time.UTC)
		for i := 0; i < 6; i++ {
			instances = append(instances, instanceAt(ministryID, base.AddDate(0, 0, i).Add(time.Duration(i)*time.Hour), fmt.Sprintf("Service %d", i)))
		}

		days, anomalies := buildGrid(instances)

		assert.Empty(t, anomalies)
		total := 0
		for _, times := range days {
			total += len(times)
		}
		assert.Equal(t, len(instances), total)
	})

	t.Run("Collision reported as anomaly", func(t *testing.T) {
		at := time.Date(2026, time.July, 5, 9, 0, 0, 0, time.UTC)
		instances := []models.ServiceInstance{
			instanceAt(ministryID, at, "First"),
			instanceAt(ministryID, at, "Second"),
		}

		days, anomalies := buildGrid(instances)

		assert.Len(t, anomalies, 1)
		assert.Contains(t, anomalies[0], "2026-07-05 09:00")
		// Last write wins in the cell itself
		assert.Equal(t, "Second", days["2026-07-05"]["09:00"].Title)
	})
}
