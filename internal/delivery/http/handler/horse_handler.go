package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/horsesharing/backend/internal/usecase/horse"
)

type HorseHandler struct {
	horseUseCase *horse.HorseUseCase
}

func NewHorseHandler(horseUseCase *horse.HorseUseCase) *HorseHandler {
	return &HorseHandler{
		horseUseCase: horseUseCase,
	}
}

// List handles GET /horses
// @Summary List my horse ads
// @Tags horses
// @Security BearerAuth
// @Produce json
// @Success 200 {array} horse.HorseView
// @Failure 401 {object} ErrorResponse
// @Router /horses [get]
func (h *HorseHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	views, err := h.horseUseCase.List(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// Save handles POST /horses
// @Summary Create a horse ad, or update one when the payload carries its id
// @Tags horses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body horse.HorseProfileRequest true "Partial horse ad"
// @Success 200 {object} horse.HorseView
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /horses [post]
func (h *HorseHandler) Save(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req horse.HorseProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	view, err := h.horseUseCase.Save(c.Request.Context(), user, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// Update handles PUT /horses/:id
// @Summary Update one of my horse ads
// @Tags horses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Horse ad ID"
// @Param request body horse.HorseProfileRequest true "Partial horse ad"
// @Success 200 {object} horse.HorseView
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /horses/{id} [put]
func (h *HorseHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	horseID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid horse id",
		})
		return
	}

	var req horse.HorseProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	view, err := h.horseUseCase.Update(c.Request.Context(), user, horseID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
