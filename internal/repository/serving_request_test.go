//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"serving-scheduler-backend/internal/database/models"
	"serving-scheduler-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// ServingRequestRepositoryTestSuite tests the ServingRequestRepository
type ServingRequestRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ServingRequestRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ServingRequestRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewServingRequestRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ServingRequestRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ServingRequestRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ServingRequestRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ServingRequestRepositoryTestSuite) createInstance() *models.ServiceInstance {
	ministry := suite.factories.Ministry.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(ministry).Error)

	instance := suite.factories.ServiceInstance.Create(ministry.ID, time.Now().Add(7*24*time.Hour))
	suite.NoError(suite.baseTestSuite.DB.Create(instance).Error)
	return instance
}

// TestCreateAndGet tests creating and retrieving a request
func (suite *ServingRequestRepositoryTestSuite) TestCreateAndGet() {
	instance := suite.createInstance()
	request := suite.factories.ServingRequest.Create(instance.ID, "vol-1")

	suite.NoError(suite.repo.Create(request))

	got, err := suite.repo.GetByID(request.ID)
	suite.NoError(err)
	suite.Equal(models.RequestStatusPending, got.Status)
	suite.Equal("vol-1", got.VolunteerID)
}

// TestTransitionStatus tests the conditional update path
func (suite *ServingRequestRepositoryTestSuite) TestTransitionStatus() {
	instance := suite.createInstance()
	request := suite.factories.ServingRequest.Create(instance.ID, "vol-1")
	suite.NoError(suite.repo.Create(request))

	now := time.Now()
	ok, err := suite.repo.TransitionStatus(request.ID, models.RequestStatusPending, models.RequestStatusAccepted, &now, "see you there")
	suite.NoError(err)
	suite.True(ok)

	got, err := suite.repo.GetByID(request.ID)
	suite.NoError(err)
	suite.Equal(models.RequestStatusAccepted, got.Status)
	suite.NotNil(got.RespondedAt)
	suite.Equal("see you there", got.ResponseNotes)
}

// TestTransitionStatusClearsNotes verifies returning a request to pending
// wipes the previous response text along with the timestamp
func (suite *ServingRequestRepositoryTestSuite) TestTransitionStatusClearsNotes() {
	instance := suite.createInstance()
	request := suite.factories.ServingRequest.Create(instance.ID, "vol-1")
	suite.NoError(suite.repo.Create(request))

	now := time.Now()
	ok, err := suite.repo.TransitionStatus(request.ID, models.RequestStatusPending, models.RequestStatusAccepted, &now, "see you there")
	suite.NoError(err)
	suite.True(ok)

	ok, err = suite.repo.TransitionStatus(request.ID, models.RequestStatusAccepted, models.RequestStatusPending, nil, "")
	suite.NoError(err)
	suite.True(ok)

	got, err := suite.repo.GetByID(request.ID)
	suite.NoError(err)
	suite.Equal(models.RequestStatusPending, got.Status)
	suite.Nil(got.RespondedAt)
	suite.Empty(got.ResponseNotes)
}

// TestTransitionStatusLostRace verifies a second transition from the same
// origin status reports zero rows affected
func (suite *ServingRequestRepositoryTestSuite) TestTransitionStatusLostRace() {
	instance := suite.createInstance()
	request := suite.factories.ServingRequest.Create(instance.ID, "vol-1")
	suite.NoError(suite.repo.Create(request))

	now := time.Now()
	ok, err := suite.repo.TransitionStatus(request.ID, models.RequestStatusPending, models.RequestStatusAccepted, &now, "")
	suite.NoError(err)
	suite.True(ok)

	// A concurrent decliner arriving second must lose
	ok, err = suite.repo.TransitionStatus(request.ID, models.RequestStatusPending, models.RequestStatusDeclined, &now, "")
	suite.NoError(err)
	suite.False(ok)

	got, err := suite.repo.GetByID(request.ID)
	suite.NoError(err)
	suite.Equal(models.RequestStatusAccepted, got.Status)
}

// TestExpireDue tests the mass expiry sweep
func (suite *ServingRequestRepositoryTestSuite) TestExpireDue() {
	instance := suite.createInstance()
	now := time.Now()

	overdue := suite.factories.ServingRequest.Expiring(instance.ID, "vol-overdue", now.Add(-time.Hour))
	suite.NoError(suite.repo.Create(overdue))

	fresh := suite.factories.ServingRequest.Expiring(instance.ID, "vol-fresh", now.Add(time.Hour))
	suite.NoError(suite.repo.Create(fresh))

	noDeadline := suite.factories.ServingRequest.Create(instance.ID, "vol-open")
	suite.NoError(suite.repo.Create(noDeadline))

	expired, err := suite.repo.ExpireDue(now)
	suite.NoError(err)
	suite.Equal(int64(1), expired)

	got, err := suite.repo.GetByID(overdue.ID)
	suite.NoError(err)
	suite.Equal(models.RequestStatusExpired, got.Status)

	got, err = suite.repo.GetByID(fresh.ID)
	suite.NoError(err)
	suite.Equal(models.RequestStatusPending, got.Status)

	// A second sweep finds nothing left to expire
	expired, err = suite.repo.ExpireDue(now)
	suite.NoError(err)
	suite.Equal(int64(0), expired)
}

// TestExpireDueSkipsTerminal verifies terminal requests are never touched
func (suite *ServingRequestRepositoryTestSuite) TestExpireDueSkipsTerminal() {
	instance := suite.createInstance()
	now := time.Now()

	declined := suite.factories.ServingRequest.Expiring(instance.ID, "vol-1", now.Add(-time.Hour))
	suite.NoError(suite.repo.Create(declined))

	ok, err := suite.repo.TransitionStatus(declined.ID, models.RequestStatusPending, models.RequestStatusDeclined, &now, "")
	suite.NoError(err)
	suite.True(ok)

	expired, err := suite.repo.ExpireDue(now)
	suite.NoError(err)
	suite.Equal(int64(0), expired)

	got, err := suite.repo.GetByID(declined.ID)
	suite.NoError(err)
	suite.Equal(models.RequestStatusDeclined, got.Status)
}

// TestServingRequestRepositoryTestSuite runs the test suite
func TestServingRequestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ServingRequestRepositoryTestSuite))
}
