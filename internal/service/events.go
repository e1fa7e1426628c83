package service

import (
	"serving-scheduler-backend/internal/database/models"
	"serving-scheduler-backend/internal/logger"

	"github.com/google/uuid"
)

// EventPublisher receives lifecycle events for external delivery. Push/email
// fan-out is owned entirely by the notification collaborator; the scheduler
// only emits the logical events.
type EventPublisher interface {
	RequestCreated(requestID uuid.UUID, volunteerID string)
	RequestResponded(requestID uuid.UUID, status models.RequestStatus)
}

// LogEventPublisher is the default publisher. It writes events to the
// structured log, which is also where a message-bus publisher would hook in.
type LogEventPublisher struct {
	log *logger.Logger
}

// NewLogEventPublisher creates a log-backed event publisher
func NewLogEventPublisher() *LogEventPublisher {
	return &LogEventPublisher{log: logger.New()}
}

// RequestCreated logs a RequestCreated event
func (p *LogEventPublisher) RequestCreated(requestID uuid.UUID, volunteerID string) {
	p.log.WithFields(map[string]interface{}{
		"event":      "RequestCreated",
		"request_id": requestID,
		"volunteer":  volunteerID,
	}).Info("serving request created")
}

// RequestResponded logs a RequestResponded event
func (p *LogEventPublisher) RequestResponded(requestID uuid.UUID, status models.RequestStatus) {
	p.log.WithFields(map[string]interface{}{
		"event":      "RequestResponded",
		"request_id": requestID,
		"status":     status,
	}).Info("serving request responded")
}
