package handlers

import (
	"net/http"
	"strconv"

	"serving-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MinistryHandler handles HTTP requests for ministry operations
type MinistryHandler struct {
	ministryService service.MinistryServiceInterface
}

// NewMinistryHandler creates a new ministry handler
func NewMinistryHandler(ministryService service.MinistryServiceInterface) *MinistryHandler {
	return &MinistryHandler{ministryService: ministryService}
}

// CreateMinistry handles POST /ministries
// @Summary Create a ministry
// @Tags ministries
// @Accept json
// @Produce json
// @Param ministry body service.CreateMinistryRequest true "Ministry to create"
// @Success 201 {object} service.MinistryResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Router /ministries [post]
func (h *MinistryHandler) CreateMinistry(c *gin.Context) {
	var req service.CreateMinistryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.ministryService.Create(&req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListMinistries handles GET /ministries
// @Summary List ministries
// @Tags ministries
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.MinistryListResponse
// @Router /ministries [get]
func (h *MinistryHandler) ListMinistries(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.ministryService.GetAll(page, pageSize)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
