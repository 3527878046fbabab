package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"adminboard/internal/domain"
)

// respondError maps domain errors to HTTP statuses. Anything unrecognized is
// a store failure and its message is surfaced verbatim.
func respondError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	var dre *domain.DeleteRejectedError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Error(), "missing": verr.Missing})
	case errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.As(err, &dre):
		c.JSON(http.StatusConflict, gin.H{"error": dre.Error(), "reason": dre.Reason})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// respondInvalid is for malformed request bodies and field-level input
// errors caught before any store call; always recoverable by correction.
func respondInvalid(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
