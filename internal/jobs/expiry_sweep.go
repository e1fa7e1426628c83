package jobs

import (
	"fmt"

	"serving-scheduler-backend/internal/logger"
	"serving-scheduler-backend/internal/service"

	"github.com/robfig/cron/v3"
)

// ExpirySweeper periodically expires overdue pending serving requests.
// The sweep is idempotent, so an overlapping HTTP-triggered sweep or a
// restarted instance running its own schedule is harmless.
type ExpirySweeper struct {
	requests service.ServingRequestServiceInterface
	cron     *cron.Cron
	log      *logger.Logger
}

// NewExpirySweeper creates a sweeper that runs every intervalMinutes
func NewExpirySweeper(requests service.ServingRequestServiceInterface, intervalMinutes int) (*ExpirySweeper, error) {
	s := &ExpirySweeper{
		requests: requests,
		cron:     cron.New(),
		log:      logger.New(),
	}

	spec := fmt.Sprintf("@every %dm", intervalMinutes)
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, fmt.Errorf("failed to schedule expiry sweep: %w", err)
	}

	return s, nil
}

// Start begins the sweep schedule in its own goroutine
func (s *ExpirySweeper) Start() {
	s.cron.Start()
	s.log.Info("expiry sweep scheduled")
}

// Stop halts the schedule; a sweep already in flight runs to completion
func (s *ExpirySweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *ExpirySweeper) run() {
	resp, err := s.requests.Sweep()
	if err != nil {
		s.log.Errorf("expiry sweep failed: %v", err)
		return
	}
	if resp.Expired > 0 {
		s.log.WithField("expired", resp.Expired).Info("expiry sweep run complete")
	}
}
