package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/horsesharing/backend/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// currentUser returns the authenticated user set by the auth middleware.
func currentUser(c *gin.Context) (*domain.User, bool) {
	value, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return nil, false
	}
	user, ok := value.(*domain.User)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return nil, false
	}
	return user, true
}

// respondError maps domain errors onto HTTP statuses. Unknown errors are
// reported as a plain 500 without leaking internals.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})
	case errors.Is(err, domain.ErrHorseNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "horse not found"})
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
	case errors.Is(err, domain.ErrMatchNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "match not found"})
	case errors.Is(err, domain.ErrNotProfileOwner):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "not the owner of this resource"})
	case errors.Is(err, domain.ErrProfileAlreadyExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "profile already exists"})
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid token"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
