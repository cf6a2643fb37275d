package handlers

import (
	"errors"
	"net/http"

	apperrors "storefront-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// writeError maps a service error onto its HTTP status. Validation and
// taxonomy errors become client errors; anything unrecognized is a 500.
func writeError(c *gin.Context, err error) {
	var rateErr *apperrors.RateLimitedError
	if errors.As(err, &rateErr) {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":        rateErr.Error(),
			"wait_seconds": rateErr.WaitSeconds,
		})
		return
	}

	var validationErrs validator.ValidationErrors
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err), apperrors.IsBadRequest(err), errors.As(err, &validationErrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsPaymentRequired(err):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
	case apperrors.IsForbidden(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsUnauthenticated(err),
		errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidOTP),
		errors.Is(err, apperrors.ErrOldPasswordMismatch),
		errors.Is(err, apperrors.ErrEmptyOrder),
		errors.Is(err, apperrors.ErrOrderTotalNotSet):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrProductLimitReached),
		errors.Is(err, apperrors.ErrOrderLimitReached):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
