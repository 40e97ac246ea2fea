package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/SscSPs/procurement_backoffice_app/internal/apperrors"
)

// respondWithError maps a service error to an HTTP response. Validation
// failures carry their full violation list so clients can fix the whole
// payload in one round trip.
func respondWithError(c *gin.Context, err error) {
	var ve *apperrors.ValidationErrors
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Validation failed",
			"violations": ve.Violations,
		})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": "Resource already exists"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// bindingViolations converts a JSON binding error into field violations so a
// malformed payload gets the same error shape as a semantically invalid one.
func bindingViolations(err error) *apperrors.ValidationErrors {
	violations := &apperrors.ValidationErrors{}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		violations.Addf(typeErr.Field, "must be of type %s", typeErr.Type.String())
		return violations
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			violations.Addf(strings.ToLower(fe.Field()), "failed on the %q rule", fe.Tag())
		}
		return violations
	}

	violations.Add("body", "is not valid JSON")
	return violations
}
