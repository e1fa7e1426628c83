package handlers

import (
	"errors"
	"net/http"

	apperrors "serving-scheduler-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// respondWithError maps the domain error taxonomy onto HTTP status codes.
// NotFound and validation failures are client bugs (logged upstream);
// ineligibility and conflicts are actionable outcomes the UI surfaces.
func respondWithError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err),
		errors.Is(err, apperrors.ErrInvalidDateRange),
		errors.Is(err, apperrors.ErrNegativeWeight),
		errors.Is(err, apperrors.ErrPositionInactive):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsIneligible(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case apperrors.IsConflict(err),
		apperrors.IsInvalidState(err),
		errors.Is(err, apperrors.ErrRequestExpired):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "details": err.Error()})
	}
}
