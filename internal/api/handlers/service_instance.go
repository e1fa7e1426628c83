package handlers

import (
	"net/http"
	"time"

	"serving-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ServiceInstanceHandler handles HTTP requests for service instance operations
type ServiceInstanceHandler struct {
	instanceService service.ServiceInstanceServiceInterface
}

// NewServiceInstanceHandler creates a new service instance handler
func NewServiceInstanceHandler(instanceService service.ServiceInstanceServiceInterface) *ServiceInstanceHandler {
	return &ServiceInstanceHandler{instanceService: instanceService}
}

// CreateServiceInstance handles POST /services
// @Summary Create a service instance
// @Tags services
// @Accept json
// @Produce json
// @Param service body service.CreateServiceInstanceRequest true "Service instance to create"
// @Success 201 {object} service.ServiceInstanceResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body or duplicate start time"
// @Failure 404 {object} map[string]interface{} "Ministry not found"
// @Router /services [post]
func (h *ServiceInstanceHandler) CreateServiceInstance(c *gin.Context) {
	var req service.CreateServiceInstanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.instanceService.Create(&req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetServiceInstance handles GET /services/:id
// @Summary Get a service instance with its serving requests
// @Tags services
// @Produce json
// @Param id path string true "Service instance ID"
// @Success 200 {object} service.ServiceInstanceResponse
// @Failure 404 {object} map[string]interface{} "Service instance not found"
// @Router /services/{id} [get]
func (h *ServiceInstanceHandler) GetServiceInstance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service instance ID"})
		return
	}

	resp, err := h.instanceService.GetByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListServices handles GET /services?ministry_id=&from=&to=
// @Summary Get the date x time schedule grid for a ministry
// @Tags services
// @Produce json
// @Param ministry_id query string true "Ministry ID"
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} service.ScheduleGridResponse
// @Failure 400 {object} map[string]interface{} "Invalid date range"
// @Failure 404 {object} map[string]interface{} "Ministry not found"
// @Router /services [get]
func (h *ServiceInstanceHandler) ListServices(c *gin.Context) {
	ministryID, err := uuid.Parse(c.Query("ministry_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ministry_id query parameter is required"})
		return
	}

	h.serveGrid(c, ministryID)
}

// GetScheduleGrid handles GET /ministries/:id/grid?from=&to=
// @Summary Get the date x time schedule grid for a ministry
// @Tags services
// @Produce json
// @Param id path string true "Ministry ID"
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} service.ScheduleGridResponse
// @Failure 400 {object} map[string]interface{} "Invalid date range"
// @Failure 404 {object} map[string]interface{} "Ministry not found"
// @Router /ministries/{id}/grid [get]
func (h *ServiceInstanceHandler) GetScheduleGrid(c *gin.Context) {
	ministryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ministry ID"})
		return
	}

	h.serveGrid(c, ministryID)
}

func (h *ServiceInstanceHandler) serveGrid(c *gin.Context, ministryID uuid.UUID) {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date, expected YYYY-MM-DD"})
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date, expected YYYY-MM-DD"})
		return
	}

	resp, err := h.instanceService.GetGrid(ministryID, from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
