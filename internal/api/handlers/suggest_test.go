package handlers_test

import (
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

// SuggestHandlerTestSuite defines the test suite for SuggestHandler
type SuggestHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockSuggestServiceInterface
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *SuggestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockSuggestServiceInterface(suite.ctrl)

	handler := handlers.NewSuggestHandler(suite.mockService)
	suite.router = gin.New()
	suite.router.GET("/services/:id/suggest", handler.SuggestCandidates)
}

// TearDownTest cleans up after each test
func (suite *SuggestHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SuggestHandlerTestSuite) makeRequest(url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", url, nil)
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)
	return recorder
}

// TestSuggestSuccess returns a ranked candidate list
func (suite *SuggestHandlerTestSuite) TestSuggestSuccess() {
	serviceInstanceID := uuid.New()
	expected := &service.SuggestionListResponse{
		ServiceInstanceID: serviceInstanceID,
		PositionName:      "vocalist",
		ServiceDate:       "2026-06-14",
		Candidates: []service.CandidateResponse{
			{Rank: 1, ProfileID: uuid.New(), VolunteerID: "vol-a", RotationWeight: 1},
			{Rank: 2, ProfileID: uuid.New(), VolunteerID: "vol-b", RotationWeight: 2},
		},
	}

	suite.mockService.EXPECT().Suggest(serviceInstanceID, "vocalist", 0).Return(expected, nil)

	recorder := suite.makeRequest("/services/" + serviceInstanceID.String() + "/suggest?position=vocalist")

	suite.Equal(http.StatusOK, recorder.Code)
	var resp service.SuggestionListResponse
	suite.NoError(json.Unmarshal(recorder.Body.Bytes(), &resp))
	suite.Len(resp.Candidates, 2)
	suite.Equal("vol-a", resp.Candidates[0].VolunteerID)
	suite.Equal(1, resp.Candidates[0].Rank)
}

// TestSuggestMaxResults forwards the max query parameter
func (suite *SuggestHandlerTestSuite) TestSuggestMaxResults() {
	serviceInstanceID := uuid.New()
	expected := &service.SuggestionListResponse{
		ServiceInstanceID: serviceInstanceID,
		PositionName:      "vocalist",
		Candidates:        []service.CandidateResponse{},
	}

	suite.mockService.EXPECT().Suggest(serviceInstanceID, "vocalist", 3).Return(expected, nil)

	recorder := suite.makeRequest("/services/" + serviceInstanceID.String() + "/suggest?position=vocalist&max=3")

	suite.Equal(http.StatusOK, recorder.Code)
}

// TestSuggestEmptyListIsOK verifies no candidates is a valid 200 outcome
func (suite *SuggestHandlerTestSuite) TestSuggestEmptyListIsOK() {
	serviceInstanceID := uuid.New()
	expected := &service.SuggestionListResponse{
		ServiceInstanceID: serviceInstanceID,
		PositionName:      "vocalist",
		Candidates:        []service.CandidateResponse{},
	}

	suite.mockService.EXPECT().Suggest(serviceInstanceID, "vocalist", 0).Return(expected, nil)

	recorder := suite.makeRequest("/services/" + serviceInstanceID.String() + "/suggest?position=vocalist")

	suite.Equal(http.StatusOK, recorder.Code)
	var resp service.SuggestionListResponse
	suite.NoError(json.Unmarshal(recorder.Body.Bytes(), &resp))
	suite.Empty(resp.Candidates)
}

// TestSuggestMissingPosition rejects a request without a position parameter
func (suite *SuggestHandlerTestSuite) TestSuggestMissingPosition() {
	recorder := suite.makeRequest("/services/" + uuid.New().String() + "/suggest")

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

// TestSuggestPositionNotFound maps an unknown position to 404
func (suite *SuggestHandlerTestSuite) TestSuggestPositionNotFound() {
	serviceInstanceID := uuid.New()
	suite.mockService.EXPECT().Suggest(serviceInstanceID, "keytar", 0).Return(nil, apperrors.ErrPositionNotFound)

	recorder := suite.makeRequest("/services/" + serviceInstanceID.String() + "/suggest?position=keytar")

	suite.Equal(http.StatusNotFound, recorder.Code)
}

// TestSuggestInvalidID rejects a malformed service instance ID
func (suite *SuggestHandlerTestSuite) TestSuggestInvalidID() {
	recorder := suite.makeRequest("/services/not-a-uuid/suggest?position=vocalist")

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

// TestSuggestHandlerTestSuite runs the test suite
func TestSuggestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SuggestHandlerTestSuite))
}
