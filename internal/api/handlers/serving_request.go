package handlers

import (
	"net/http"

	"serving-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ServingRequestHandler handles HTTP requests for the invitation lifecycle
type ServingRequestHandler struct {
	requestService service.ServingRequestServiceInterface
}

// NewServingRequestHandler creates a new serving request handler
func NewServingRequestHandler(requestService service.ServingRequestServiceInterface) *ServingRequestHandler {
	return &ServingRequestHandler{requestService: requestService}
}

// CreateServingRequest handles POST /services/:id/requests
// @Summary Invite a volunteer to fill a position at a service
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Service instance ID"
// @Param request body service.CreateServingRequestRequest true "Invitation to create"
// @Success 201 {object} service.ServingRequestResponse
// @Failure 404 {object} map[string]interface{} "Service, position or profile not found"
// @Failure 422 {object} map[string]interface{} "Volunteer not eligible"
// @Router /services/{id}/requests [post]
func (h *ServingRequestHandler) CreateServingRequest(c *gin.Context) {
	serviceInstanceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service instance ID"})
		return
	}

	var req service.CreateServingRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.requestService.Create(serviceInstanceID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetServingRequest handles GET /requests/:id
// @Summary Get a serving request
// @Tags requests
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} service.ServingRequestResponse
// @Failure 404 {object} map[string]interface{} "Request not found"
// @Router /requests/{id} [get]
func (h *ServingRequestHandler) GetServingRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	resp, err := h.requestService.GetByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RespondToRequest handles PATCH /requests/:id/respond
// @Summary Record a volunteer's accept or decline
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param response body service.RespondRequest true "Accept or decline"
// @Success 200 {object} service.ServingRequestResponse
// @Failure 409 {object} map[string]interface{} "Request already resolved or expired"
// @Router /requests/{id}/respond [patch]
func (h *ServingRequestHandler) RespondToRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	var req service.RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.requestService.Respond(id, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ReopenRequest handles POST /requests/:id/reopen
// @Summary Return an accepted request to pending (admin)
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} service.ServingRequestResponse
// @Failure 409 {object} map[string]interface{} "Request not in accepted state"
// @Router /requests/{id}/reopen [post]
func (h *ServingRequestHandler) ReopenRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	var req struct {
		AdminID string `json:"admin_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.requestService.Reopen(id, req.AdminID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SweepRequests handles POST /sweep/expire-requests
// @Summary Expire all overdue pending requests
// @Tags requests
// @Produce json
// @Success 200 {object} service.SweepResponse
// @Router /sweep/expire-requests [post]
func (h *ServingRequestHandler) SweepRequests(c *gin.Context) {
	resp, err := h.requestService.Sweep()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
