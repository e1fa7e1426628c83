package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"serving-scheduler-backend/internal/api/handlers"
	apperrors "serving-scheduler-backend/internal/errors"
	"serving-scheduler-backend/internal/mocks"
	"serving-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ServingRequestHandlerTestSuite defines the test suite for ServingRequestHandler
type ServingRequestHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockServingRequestServiceInterface
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *ServingRequestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockServingRequestServiceInterface(suite.ctrl)

	handler := handlers.NewServingRequestHandler(suite.mockService)
	suite.router = gin.New()
	suite.router.POST("/services/:id/requests", handler.CreateServingRequest)
	suite.router.GET("/requests/:id", handler.GetServingRequest)
	suite.router.PATCH("/requests/:id/respond", handler.RespondToRequest)
	suite.router.POST("/requests/:id/reopen", handler.ReopenRequest)
	suite.router.POST("/sweep/expire-requests", handler.SweepRequests)
}

// TearDownTest cleans up after each test
func (suite *ServingRequestHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ServingRequestHandlerTestSuite) makeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)
	return recorder
}

// TestCreateServingRequestSuccess tests creating an invitation
func (suite *ServingRequestHandlerTestSuite) TestCreateServingRequestSuccess() {
	serviceInstanceID := uuid.New()
	body := &service.CreateServingRequestRequest{
		PositionName: "vocalist",
		VolunteerID:  "vol-1",
		RequestedBy:  "scheduler-1",
	}
	expected := &service.ServingRequestResponse{
		ID:                uuid.New(),
		ServiceInstanceID: serviceInstanceID,
		PositionName:      "vocalist",
		VolunteerID:       "vol-1",
		Status:            "pending",
	}

	suite.mockService.EXPECT().Create(serviceInstanceID, gomock.Any()).Return(expected, nil)

	recorder := suite.makeRequest("POST", "/services/"+serviceInstanceID.String()+"/requests", body)

	suite.Equal(http.StatusCreated, recorder.Code)
	var resp service.ServingRequestResponse
	suite.NoError(json.Unmarshal(recorder.Body.Bytes(), &resp))
	suite.Equal(expected.ID, resp.ID)
	suite.Equal("pending", string(resp.Status))
}

// TestCreateServingRequestIneligible maps ineligibility to 422
func (suite *ServingRequestHandlerTestSuite) TestCreateServingRequestIneligible() {
	serviceInstanceID := uuid.New()
	body := &service.CreateServingRequestRequest{
		PositionName: "vocalist",
		VolunteerID:  "vol-1",
		RequestedBy:  "scheduler-1",
	}

	suite.mockService.EXPECT().Create(serviceInstanceID, gomock.Any()).
		Return(nil, apperrors.NewIneligibleVolunteerError("vol-1", apperrors.IneligibilityBlockedOut))

	recorder := suite.makeRequest("POST", "/services/"+serviceInstanceID.String()+"/requests", body)

	suite.Equal(http.StatusUnprocessableEntity, recorder.Code)
}

// TestCreateServingRequestInvalidID rejects a malformed service instance ID
func (suite *ServingRequestHandlerTestSuite) TestCreateServingRequestInvalidID() {
	recorder := suite.makeRequest("POST", "/services/not-a-uuid/requests", &service.CreateServingRequestRequest{
		PositionName: "vocalist",
		VolunteerID:  "vol-1",
		RequestedBy:  "scheduler-1",
	})

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

// TestGetServingRequestNotFound maps a missing request to 404
func (suite *ServingRequestHandlerTestSuite) TestGetServingRequestNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().GetByID(id).Return(nil, apperrors.ErrServingRequestNotFound)

	recorder := suite.makeRequest("GET", "/requests/"+id.String(), nil)

	suite.Equal(http.StatusNotFound, recorder.Code)
}

// TestRespondSuccess records an accept
func (suite *ServingRequestHandlerTestSuite) TestRespondSuccess() {
	id := uuid.New()
	expected := &service.ServingRequestResponse{ID: id, Status: "accepted"}

	suite.mockService.EXPECT().Respond(id, gomock.Any()).Return(expected, nil)

	recorder := suite.makeRequest("PATCH", "/requests/"+id.String()+"/respond", &service.RespondRequest{Status: "accepted"})

	suite.Equal(http.StatusOK, recorder.Code)
	var resp service.ServingRequestResponse
	suite.NoError(json.Unmarshal(recorder.Body.Bytes(), &resp))
	suite.Equal("accepted", string(resp.Status))
}

// TestRespondLostRace maps a lost conditional update to 409
func (suite *ServingRequestHandlerTestSuite) TestRespondLostRace() {
	id := uuid.New()
	suite.mockService.EXPECT().Respond(id, gomock.Any()).Return(nil, apperrors.ErrRequestAlreadyResolved)

	recorder := suite.makeRequest("PATCH", "/requests/"+id.String()+"/respond", &service.RespondRequest{Status: "declined"})

	suite.Equal(http.StatusConflict, recorder.Code)
}

// TestRespondExpired maps an expired request to 409
func (suite *ServingRequestHandlerTestSuite) TestRespondExpired() {
	id := uuid.New()
	suite.mockService.EXPECT().Respond(id, gomock.Any()).Return(nil, apperrors.ErrRequestExpired)

	recorder := suite.makeRequest("PATCH", "/requests/"+id.String()+"/respond", &service.RespondRequest{Status: "accepted"})

	suite.Equal(http.StatusConflict, recorder.Code)
}

// TestReopenSuccess returns an accepted request to pending
func (suite *ServingRequestHandlerTestSuite) TestReopenSuccess() {
	id := uuid.New()
	expected := &service.ServingRequestResponse{ID: id, Status: "pending"}

	suite.mockService.EXPECT().Reopen(id, "admin-1").Return(expected, nil)

	recorder := suite.makeRequest("POST", "/requests/"+id.String()+"/reopen", map[string]string{"admin_id": "admin-1"})

	suite.Equal(http.StatusOK, recorder.Code)
}

// TestReopenWrongState maps a reopen of a non-accepted request to 409
func (suite *ServingRequestHandlerTestSuite) TestReopenWrongState() {
	id := uuid.New()
	suite.mockService.EXPECT().Reopen(id, "admin-1").
		Return(nil, apperrors.NewInvalidStateError("serving request", "declined", "reopen"))

	recorder := suite.makeRequest("POST", "/requests/"+id.String()+"/reopen", map[string]string{"admin_id": "admin-1"})

	suite.Equal(http.StatusConflict, recorder.Code)
}

// TestSweep runs the expiry sweep over HTTP
func (suite *ServingRequestHandlerTestSuite) TestSweep() {
	suite.mockService.EXPECT().Sweep().Return(&service.SweepResponse{Expired: 3, SweptAt: "2026-06-14T10:00:00Z"}, nil)

	recorder := suite.makeRequest("POST", "/sweep/expire-requests", nil)

	suite.Equal(http.StatusOK, recorder.Code)
	var resp service.SweepResponse
	suite.NoError(json.Unmarshal(recorder.Body.Bytes(), &resp))
	suite.Equal(int64(3), resp.Expired)
}

// TestServingRequestHandlerTestSuite runs the test suite
func TestServingRequestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ServingRequestHandlerTestSuite))
}
