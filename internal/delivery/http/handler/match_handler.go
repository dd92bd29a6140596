package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/horsesharing/backend/internal/usecase/match"
)

type MatchHandler struct {
	matchUseCase *match.MatchUseCase
}

func NewMatchHandler(matchUseCase *match.MatchUseCase) *MatchHandler {
	return &MatchHandler{
		matchUseCase: matchUseCase,
	}
}

type matchStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending active paused ended"`
}

// List handles GET /matches
// @Summary List my matches
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Match
// @Failure 401 {object} ErrorResponse
// @Router /matches [get]
func (h *MatchHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	matches, err := h.matchUseCase.ListMine(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, matches)
}

// SetStatus handles PUT /matches/:id/status
// @Summary Update match status
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param request body matchStatusRequest true "New status"
// @Success 200 {object} domain.Match
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /matches/{id}/status [put]
func (h *MatchHandler) SetStatus(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	matchID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid match id",
		})
		return
	}

	var req matchStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "status must be one of pending, active, paused, ended",
		})
		return
	}

	m, err := h.matchUseCase.SetStatus(c.Request.Context(), user, matchID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}
