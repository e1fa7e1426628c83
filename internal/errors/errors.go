package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents a lost race on a concurrent state transition
type ConflictError struct {
	Entity  string
	Message string
}

func (e *ConflictError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("conflict on %s: %s", e.Entity, e.Message)
	}
	return fmt.Sprintf("conflict on %s", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// IneligibilityReason classifies why a volunteer failed the eligibility filter
type IneligibilityReason string

const (
	IneligibilityInactive    IneligibilityReason = "inactive"
	IneligibilityUnqualified IneligibilityReason = "unqualified"
	IneligibilityBlockedOut  IneligibilityReason = "blocked_out"
)

// IneligibleVolunteerError is returned when the eligibility filter rejects a
// candidate at request-creation time
type IneligibleVolunteerError struct {
	VolunteerID string
	Reason      IneligibilityReason
}

func (e *IneligibleVolunteerError) Error() string {
	return fmt.Sprintf("volunteer %s is ineligible: %s", e.VolunteerID, e.Reason)
}

// InvalidStateError represents a transition not allowed from the current state
type InvalidStateError struct {
	Entity  string
	Current string
	Action  string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s %s in state %q", e.Action, e.Entity, e.Current)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Entity Not Found Errors
var (
	ErrMinistryNotFound        = &NotFoundError{Entity: "ministry"}
	ErrPositionNotFound        = &NotFoundError{Entity: "position"}
	ErrServingProfileNotFound  = &NotFoundError{Entity: "serving profile"}
	ErrBlockoutNotFound        = &NotFoundError{Entity: "blockout"}
	ErrServiceInstanceNotFound = &NotFoundError{Entity: "service instance"}
	ErrServingRequestNotFound  = &NotFoundError{Entity: "serving request"}
)

// Conflict Errors
var (
	ErrRequestAlreadyResolved = &ConflictError{Entity: "serving request", Message: "already reached a terminal state"}
	ErrProfileVersionConflict = &ConflictError{Entity: "serving profile", Message: "concurrent modification"}
)

// Business Logic Errors
var (
	ErrServiceInstanceExists = errors.New("a service instance already exists for this ministry at this time")
	ErrRequestExpired        = errors.New("serving request has expired")
	ErrPositionInactive      = errors.New("position is no longer active")
	ErrInvalidDateRange      = errors.New("invalid date range")
	ErrNegativeWeight        = errors.New("rotation weight must be non-negative")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsIneligible checks if an error is an IneligibleVolunteerError
func IsIneligible(err error) bool {
	var ineligibleErr *IneligibleVolunteerError
	return errors.As(err, &ineligibleErr)
}

// IsInvalidState checks if an error is an InvalidStateError
func IsInvalidState(err error) bool {
	var invalidStateErr *InvalidStateError
	return errors.As(err, &invalidStateErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError
func NewConflictError(entity, message string) error {
	return &ConflictError{Entity: entity, Message: message}
}

// NewIneligibleVolunteerError creates a new IneligibleVolunteerError
func NewIneligibleVolunteerError(volunteerID string, reason IneligibilityReason) error {
	return &IneligibleVolunteerError{VolunteerID: volunteerID, Reason: reason}
}

// NewInvalidStateError creates a new InvalidStateError
func NewInvalidStateError(entity, current, action string) error {
	return &InvalidStateError{Entity: entity, Current: current, Action: action}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
