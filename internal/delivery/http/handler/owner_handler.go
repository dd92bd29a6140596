package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/horsesharing/backend/internal/usecase/owner"
)

type OwnerHandler struct {
	ownerUseCase *owner.OwnerUseCase
}

func NewOwnerHandler(ownerUseCase *owner.OwnerUseCase) *OwnerHandler {
	return &OwnerHandler{
		ownerUseCase: ownerUseCase,
	}
}

// Get handles GET /owner-profile
// @Summary Get my owner profile
// @Tags owner
// @Security BearerAuth
// @Produce json
// @Success 200 {object} owner.OwnerProfileView
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /owner-profile [get]
func (h *OwnerHandler) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	view, err := h.ownerUseCase.Get(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// Save handles POST /owner-profile
// @Summary Create or update my owner profile
// @Tags owner
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body owner.OwnerProfileRequest true "Partial owner profile"
// @Success 200 {object} owner.OwnerProfileView
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /owner-profile [post]
func (h *OwnerHandler) Save(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req owner.OwnerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	view, err := h.ownerUseCase.Save(c.Request.Context(), user, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
