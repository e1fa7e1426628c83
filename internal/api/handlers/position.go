package handlers

import (
	"net/http"

	"serving-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PositionHandler handles HTTP requests for position operations
type PositionHandler struct {
	positionService service.PositionServiceInterface
}

// NewPositionHandler creates a new position handler
func NewPositionHandler(positionService service.PositionServiceInterface) *PositionHandler {
	return &PositionHandler{positionService: positionService}
}

// CreatePosition handles POST /positions
// @Summary Create a position definition
// @Tags positions
// @Accept json
// @Produce json
// @Param position body service.CreatePositionRequest true "Position to create"
// @Success 201 {object} service.PositionResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Ministry not found"
// @Router /positions [post]
func (h *PositionHandler) CreatePosition(c *gin.Context) {
	var req service.CreatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.positionService.Create(&req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListPositions handles GET /positions?ministry_id=
// @Summary List positions for a ministry in display order
// @Tags positions
// @Produce json
// @Param ministry_id query string true "Ministry ID"
// @Success 200 {object} service.PositionListResponse
// @Failure 400 {object} map[string]interface{} "Invalid ministry ID"
// @Router /positions [get]
func (h *PositionHandler) ListPositions(c *gin.Context) {
	ministryID, err := uuid.Parse(c.Query("ministry_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ministry_id"})
		return
	}

	resp, err := h.positionService.ListByMinistry(ministryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SetPositionActive handles PATCH /positions/:id/active
// @Summary Soft-disable or re-enable a position
// @Tags positions
// @Accept json
// @Produce json
// @Param id path string true "Position ID"
// @Success 200 {object} service.PositionResponse
// @Failure 404 {object} map[string]interface{} "Position not found"
// @Router /positions/{id}/active [patch]
func (h *PositionHandler) SetPositionActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid position ID"})
		return
	}

	var req struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.positionService.SetActive(id, *req.IsActive)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
