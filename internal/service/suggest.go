package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"serving-scheduler-backend/internal/database/models"
	apperrors "serving-scheduler-backend/internal/errors"
	"serving-scheduler-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// neverServedDays stands in for "days since last served" when a volunteer has
// never served, sorting them ahead of everyone on recency
const neverServedDays = 1 << 30

// SuggestService produces ranked candidate lists for open positions.
// Pure read path: it never creates serving requests.
type SuggestService struct {
	serviceRepo     *repository.ServiceInstanceRepository
	profileRepo     *repository.ServingProfileRepository
	positionRepo    *repository.PositionRepository
	recencyBandDays int
	maxResults      int
}

// NewSuggestService creates a new suggest service. recencyBandDays is the
// tolerance band inside which two candidates count as near-tied on recency
// and rotation weight decides instead; maxResults is the default truncation.
func NewSuggestService(serviceRepo *repository.ServiceInstanceRepository, profileRepo *repository.ServingProfileRepository, positionRepo *repository.PositionRepository, recencyBandDays, maxResults int) *SuggestService {
	return &SuggestService{
		serviceRepo:     serviceRepo,
		profileRepo:     profileRepo,
		positionRepo:    positionRepo,
		recencyBandDays: recencyBandDays,
		maxResults:      maxResults,
	}
}

// CandidateResponse is one ranked suggestion
type CandidateResponse struct {
	Rank            int        `json:"rank"`
	ProfileID       uuid.UUID  `json:"profile_id"`
	VolunteerID     string     `json:"volunteer_id"`
	RotationWeight  float64    `json:"rotation_weight"`
	LastServedAt    *string    `json:"last_served_at"`
	DaysSinceServed *int       `json:"days_since_served"`
	// PatternMatch is advisory: nil when the volunteer has no weekly
	// pattern, otherwise whether the pattern covers the service time.
	PatternMatch *bool `json:"pattern_match"`
}

// SuggestionListResponse is the ranked candidate list for one position slot
type SuggestionListResponse struct {
	ServiceInstanceID uuid.UUID           `json:"service_instance_id"`
	PositionName      string              `json:"position_name"`
	ServiceDate       string              `json:"service_date"`
	Candidates        []CandidateResponse `json:"candidates"`
}

// Suggest returns up to maxResults eligible candidates for the position at
// the given service instance, best fit first. An empty list is a valid
// outcome, not an error. maxResults <= 0 selects the configured default.
func (s *SuggestService) Suggest(serviceInstanceID uuid.UUID, positionName string, maxResults int) (*SuggestionListResponse, error) {
	instance, err := s.serviceRepo.GetByID(serviceInstanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServiceInstanceNotFound
		}
		return nil, fmt.Errorf("failed to get service instance: %w", err)
	}

	position, err := s.positionRepo.GetByName(instance.MinistryID, positionName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPositionNotFound
		}
		return nil, fmt.Errorf("failed to get position: %w", err)
	}

	profiles, err := s.profileRepo.GetActiveQualified(instance.MinistryID, position.Capability())
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate profiles: %w", err)
	}

	serviceDate := instance.ServiceDate()

	// Hard exclusion: blockouts only. The weekly pattern stays advisory.
	eligible := profiles[:0]
	for _, p := range profiles {
		if !p.IsBlockedOutOn(serviceDate) {
			eligible = append(eligible, p)
		}
	}

	ranked := rankCandidates(eligible, serviceDate, s.recencyBandDays)

	if maxResults <= 0 {
		maxResults = s.maxResults
	}
	if len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}

	resp := &SuggestionListResponse{
		ServiceInstanceID: instance.ID,
		PositionName:      position.Name,
		ServiceDate:       serviceDate.Format("2006-01-02"),
		Candidates:        make([]CandidateResponse, len(ranked)),
	}
	for i := range ranked {
		resp.Candidates[i] = toCandidateResponse(&ranked[i], i+1, serviceDate, instance.StartsAt)
	}
	return resp, nil
}

// rankCandidates sorts candidates best fit first using the two-tier
// comparator: days since last served (descending, never-served maximal) when
// the recency gap between two candidates exceeds the band, rotation weight
// (descending) when they are near-tied on recency, volunteer ID as the final
// deterministic tiebreak.
//
// Pure recency would thrash among volunteers served in the same week; pure
// weight would let a high-weight volunteer dominate indefinitely. The band
// balances both.
func rankCandidates(profiles []models.VolunteerServingProfile, serviceDate time.Time, bandDays int) []models.VolunteerServingProfile {
	ranked := make([]models.VolunteerServingProfile, len(profiles))
	copy(ranked, profiles)

	sort.SliceStable(ranked, func(i, j int) bool {
		di := daysSinceServed(&ranked[i], serviceDate)
		dj := daysSinceServed(&ranked[j], serviceDate)

		gap := di - dj
		if gap < 0 {
			gap = -gap
		}
		if gap > bandDays {
			return di > dj
		}
		if ranked[i].RotationWeight != ranked[j].RotationWeight {
			return ranked[i].RotationWeight > ranked[j].RotationWeight
		}
		return ranked[i].VolunteerID < ranked[j].VolunteerID
	})

	return ranked
}

// daysSinceServed computes whole days between the last served date and the
// service date, with never-served treated as maximal
func daysSinceServed(profile *models.VolunteerServingProfile, serviceDate time.Time) int {
	if profile.LastServedAt == nil {
		return neverServedDays
	}
	days := int(models.DateOnly(serviceDate).Sub(models.DateOnly(*profile.LastServedAt)).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return days
}

func toCandidateResponse(profile *models.VolunteerServingProfile, rank int, serviceDate, startsAt time.Time) CandidateResponse {
	resp := CandidateResponse{
		Rank:           rank,
		ProfileID:      profile.ID,
		VolunteerID:    profile.VolunteerID,
		RotationWeight: profile.RotationWeight,
		PatternMatch:   PatternMatch(profile, startsAt),
	}
	if profile.LastServedAt != nil {
		served := profile.LastServedAt.Format("2006-01-02")
		resp.LastServedAt = &served
		days := daysSinceServed(profile, serviceDate)
		resp.DaysSinceServed = &days
	}
	return resp
}
