package handlers

import (
	"net/http"

	"serving-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProfileHandler handles HTTP requests for serving profile operations
type ProfileHandler struct {
	profileService service.ServingProfileServiceInterface
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService service.ServingProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// CreateProfile handles POST /ministries/:id/profiles
// @Summary Opt a volunteer into a ministry
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path string true "Ministry ID"
// @Param profile body service.CreateProfileRequest true "Profile to create"
// @Success 201 {object} service.ProfileResponse
// @Failure 404 {object} map[string]interface{} "Ministry not found"
// @Failure 409 {object} map[string]interface{} "Profile already exists"
// @Router /ministries/{id}/profiles [post]
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	ministryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ministry ID"})
		return
	}

	var req service.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.profileService.Create(ministryID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetProfile handles GET /profiles/:id
// @Summary Get a serving profile with blockouts and weekly pattern
// @Tags profiles
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} service.ProfileResponse
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /profiles/{id} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile ID"})
		return
	}

	resp, err := h.profileService.GetByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateProfile handles PATCH /profiles/:id
// @Summary Update qualifications, rotation weight or status
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param profile body service.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} service.ProfileResponse
// @Failure 409 {object} map[string]interface{} "Concurrent modification"
// @Router /profiles/{id} [patch]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile ID"})
		return
	}

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.profileService.Update(id, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SetAvailability handles PUT /profiles/:id/availability
// @Summary Replace the weekly availability pattern
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param availability body service.SetAvailabilityRequest true "Weekly slots"
// @Success 200 {object} service.ProfileResponse
// @Router /profiles/{id}/availability [put]
func (h *ProfileHandler) SetAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile ID"})
		return
	}

	var req service.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.profileService.SetAvailability(id, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AddBlockout handles POST /profiles/:id/blockouts
// @Summary Add a blockout date range
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param blockout body service.CreateBlockoutRequest true "Blockout range"
// @Success 201 {object} service.BlockoutResponse
// @Failure 400 {object} map[string]interface{} "Invalid date range"
// @Router /profiles/{id}/blockouts [post]
func (h *ProfileHandler) AddBlockout(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile ID"})
		return
	}

	var req service.CreateBlockoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.profileService.AddBlockout(id, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// RemoveBlockout handles DELETE /blockouts/:id
// @Summary Remove a blockout date range
// @Tags profiles
// @Param id path string true "Blockout ID"
// @Success 204 "Removed"
// @Failure 404 {object} map[string]interface{} "Blockout not found"
// @Router /blockouts/{id} [delete]
func (h *ProfileHandler) RemoveBlockout(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blockout ID"})
		return
	}

	if err := h.profileService.RemoveBlockout(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
