package service

import (
	"time"

	"serving-scheduler-backend/internal/database/models"
)

// EligibilityResult is the outcome of running a candidate profile through the
// eligibility filter for a concrete service date and position
type EligibilityResult string

const (
	Eligible              EligibilityResult = "eligible"
	IneligibleInactive    EligibilityResult = "ineligible_inactive"
	IneligibleUnqualified EligibilityResult = "ineligible_unqualified"
	IneligibleBlockedOut  EligibilityResult = "ineligible_blocked_out"
)

// IsEligible reports whether the result is the eligible outcome
func (r EligibilityResult) IsEligible() bool {
	return r == Eligible
}

// EvaluateEligibility runs the hard eligibility checks for one candidate:
// profile status, position qualification, then blockout ranges (inclusive on
// both ends) against the service's calendar date.
//
// The weekly availability pattern is deliberately not consulted here. An
// incomplete pattern is the common case, so the pattern is surfaced as
// advisory context to schedulers while only explicit blockouts hard-exclude.
//
// The profile must carry its blockouts preloaded.
func EvaluateEligibility(profile *models.VolunteerServingProfile, position models.Capability, serviceDate time.Time) EligibilityResult {
	if profile.Status != models.ProfileStatusActive {
		return IneligibleInactive
	}
	if !profile.IsQualifiedFor(position) {
		return IneligibleUnqualified
	}
	if profile.IsBlockedOutOn(serviceDate) {
		return IneligibleBlockedOut
	}
	return Eligible
}

// PatternMatch reports whether the profile's weekly pattern covers the
// service start time. The pointer is nil when the volunteer has never set a
// pattern, so callers can distinguish "unknown" from "does not match".
func PatternMatch(profile *models.VolunteerServingProfile, startsAt time.Time) *bool {
	if profile.AvailabilityPattern == nil {
		return nil
	}
	covers := profile.AvailabilityPattern.CoversInstant(startsAt)
	return &covers
}
