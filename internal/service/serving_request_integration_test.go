//go:build integration
// +build integration

package service_test

import (
	"testing"
	"time"

	"serving-scheduler-backend/internal/database/models"
	"serving-scheduler-backend/internal/repository"
	"serving-scheduler-backend/internal/service"
	"serving-scheduler-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

// ServingRequestLifecycleTestSuite runs the invitation lifecycle end to end
// against a real database, through the service layer
type ServingRequestLifecycleTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	requests      *service.ServingRequestService
	profileRepo   *repository.ServingProfileRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ServingRequestLifecycleTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	db := suite.baseTestSuite.DB
	requestRepo := repository.NewServingRequestRepository(db)
	instanceRepo := repository.NewServiceInstanceRepository(db)
	positionRepo := repository.NewPositionRepository(db)
	suite.profileRepo = repository.NewServingProfileRepository(db)

	suite.requests = service.NewServingRequestService(requestRepo, instanceRepo, suite.profileRepo, positionRepo, service.NewLogEventPublisher(), validator.New())
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ServingRequestLifecycleTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ServingRequestLifecycleTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ServingRequestLifecycleTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seedMinistry creates a ministry with its vocalist position
func (suite *ServingRequestLifecycleTestSuite) seedMinistry() *models.Ministry {
	ministry := suite.factories.Ministry.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(ministry).Error)

	position := suite.factories.Position.Create(ministry.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(position).Error)
	return ministry
}

func (suite *ServingRequestLifecycleTestSuite) seedInstance(ministry *models.Ministry, startsAt time.Time) *models.ServiceInstance {
	instance := suite.factories.ServiceInstance.Create(ministry.ID, startsAt)
	suite.NoError(suite.baseTestSuite.DB.Create(instance).Error)
	return instance
}

// TestAcceptStampsServiceDate verifies accepting an invitation records the
// service's calendar date on the profile, not the day the volunteer responded
func (suite *ServingRequestLifecycleTestSuite) TestAcceptStampsServiceDate() {
	ministry := suite.seedMinistry()
	profile := suite.factories.Profile.Create(ministry.ID)
	suite.NoError(suite.profileRepo.Create(profile))

	// Service happens ten days from now; the accept happens today
	startsAt := time.Now().UTC().AddDate(0, 0, 10)
	instance := suite.seedInstance(ministry, startsAt)

	created, err := suite.requests.Create(instance.ID, &service.CreateServingRequestRequest{
		PositionName: "vocalist",
		VolunteerID:  profile.VolunteerID,
		RequestedBy:  "scheduler-1",
	})
	suite.NoError(err)

	responded, err := suite.requests.Respond(created.ID, &service.RespondRequest{Status: models.RequestStatusAccepted})
	suite.NoError(err)
	suite.Equal(models.RequestStatusAccepted, responded.Status)

	got, err := suite.profileRepo.GetByID(profile.ID)
	suite.NoError(err)
	suite.NotNil(got.LastServedAt)
	suite.Equal(models.DateOnly(startsAt), models.DateOnly(*got.LastServedAt))
	suite.NotEqual(models.DateOnly(time.Now()), models.DateOnly(*got.LastServedAt))
	suite.Equal(2, got.Version)
}

// TestAcceptNeverMovesLastServedBackwards verifies accepting an older service
// after a newer one leaves the more recent date in place
func (suite *ServingRequestLifecycleTestSuite) TestAcceptNeverMovesLastServedBackwards() {
	ministry := suite.seedMinistry()

	newer := time.Now().UTC().AddDate(0, 0, 20)
	profile := suite.factories.Profile.WithLastServed(ministry.ID, newer)
	suite.NoError(suite.profileRepo.Create(profile))

	older := time.Now().UTC().AddDate(0, 0, 6)
	instance := suite.seedInstance(ministry, older)

	created, err := suite.requests.Create(instance.ID, &service.CreateServingRequestRequest{
		PositionName: "vocalist",
		VolunteerID:  profile.VolunteerID,
		RequestedBy:  "scheduler-1",
	})
	suite.NoError(err)

	_, err = suite.requests.Respond(created.ID, &service.RespondRequest{Status: models.RequestStatusAccepted})
	suite.NoError(err)

	got, err := suite.profileRepo.GetByID(profile.ID)
	suite.NoError(err)
	suite.NotNil(got.LastServedAt)
	suite.Equal(models.DateOnly(newer), models.DateOnly(*got.LastServedAt))
	// No write happened, so the version is untouched
	suite.Equal(1, got.Version)
}

// TestReopenClearsResponse verifies a reopened request returns to pending
// with no leftover response timestamp or notes
func (suite *ServingRequestLifecycleTestSuite) TestReopenClearsResponse() {
	ministry := suite.seedMinistry()
	profile := suite.factories.Profile.Create(ministry.ID)
	suite.NoError(suite.profileRepo.Create(profile))

	instance := suite.seedInstance(ministry, time.Now().UTC().AddDate(0, 0, 10))

	created, err := suite.requests.Create(instance.ID, &service.CreateServingRequestRequest{
		PositionName: "vocalist",
		VolunteerID:  profile.VolunteerID,
		RequestedBy:  "scheduler-1",
	})
	suite.NoError(err)

	_, err = suite.requests.Respond(created.ID, &service.RespondRequest{Status: models.RequestStatusAccepted, Notes: "see you there"})
	suite.NoError(err)

	reopened, err := suite.requests.Reopen(created.ID, "admin-1")
	suite.NoError(err)
	suite.Equal(models.RequestStatusPending, reopened.Status)
	suite.Nil(reopened.RespondedAt)
	suite.Empty(reopened.ResponseNotes)
}

// TestServingRequestLifecycleTestSuite runs the test suite
func TestServingRequestLifecycleTestSuite(t *testing.T) {
	suite.Run(t, new(ServingRequestLifecycleTestSuite))
}
