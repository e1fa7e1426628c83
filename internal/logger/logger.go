package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger carrying the caller identity from the request context
func WithContext(ctx context.Context) *Logger {
	logger := New()

	if scheduler, ok := ctx.Value("scheduler").(string); ok && scheduler != "" {
		logger.Entry = logger.Entry.WithField("scheduler", scheduler)
	} else if volunteer, ok := ctx.Value("volunteer").(string); ok && volunteer != "" {
		logger.Entry = logger.Entry.WithField("volunteer", volunteer)
	} else {
		logger.Entry = logger.Entry.WithField("caller", "unknown")
	}

	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}
