package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/horsesharing/backend/internal/usecase/rider"
)

type RiderHandler struct {
	riderUseCase *rider.RiderUseCase
}

func NewRiderHandler(riderUseCase *rider.RiderUseCase) *RiderHandler {
	return &RiderHandler{
		riderUseCase: riderUseCase,
	}
}

// Get handles GET /rider-profile
// @Summary Get my rider profile
// @Tags rider
// @Security BearerAuth
// @Produce json
// @Success 200 {object} rider.RiderProfileView
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /rider-profile [get]
func (h *RiderHandler) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	view, err := h.riderUseCase.Get(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// Save handles POST /rider-profile
// @Summary Create or update my rider profile
// @Description Partial payload; absent fields keep stored values, a first
// @Description save fills documented defaults
// @Tags rider
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body rider.RiderProfileRequest true "Partial rider profile"
// @Success 200 {object} rider.RiderProfileView
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /rider-profile [post]
func (h *RiderHandler) Save(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req rider.RiderProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	view, err := h.riderUseCase.Save(c.Request.Context(), user, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
