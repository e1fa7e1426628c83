package handlers

import (
	"net/http"
	"strconv"

	"serving-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SuggestHandler handles HTTP requests for candidate suggestions
type SuggestHandler struct {
	suggestService service.SuggestServiceInterface
}

// NewSuggestHandler creates a new suggest handler
func NewSuggestHandler(suggestService service.SuggestServiceInterface) *SuggestHandler {
	return &SuggestHandler{suggestService: suggestService}
}

// SuggestCandidates handles GET /services/:id/suggest?position=&max=
// @Summary Suggest ranked candidates for a position at a service
// @Tags suggest
// @Produce json
// @Param id path string true "Service instance ID"
// @Param position query string true "Position name"
// @Param max query int false "Maximum number of candidates"
// @Success 200 {object} service.SuggestionListResponse
// @Failure 404 {object} map[string]interface{} "Service instance or position not found"
// @Router /services/{id}/suggest [get]
func (h *SuggestHandler) SuggestCandidates(c *gin.Context) {
	serviceInstanceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service instance ID"})
		return
	}

	positionName := c.Query("position")
	if positionName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing position query parameter"})
		return
	}

	maxResults, _ := strconv.Atoi(c.DefaultQuery("max", "0"))

	resp, err := h.suggestService.Suggest(serviceInstanceID, positionName, maxResults)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
