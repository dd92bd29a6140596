package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/horsesharing/backend/internal/usecase/auth"
)

type AuthHandler struct {
	authUseCase *auth.AuthUseCase
}

func NewAuthHandler(authUseCase *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type profileTypeRequest struct {
	ProfileType string `json:"profile_type" binding:"required,oneof=rider owner"`
}

// Me handles GET /auth/me
// @Summary Get current user
// @Description Get the authenticated user's account and onboarding state
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} auth.Me
// @Failure 401 {object} ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	me, err := h.authUseCase.GetMe(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, me)
}

// SetProfileType handles POST /auth/set-profile-type
// @Summary Choose profile type
// @Description Record whether the user onboards as a rider or an owner
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profileTypeRequest true "Profile type"
// @Success 200 {object} auth.Me
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/set-profile-type [post]
func (h *AuthHandler) SetProfileType(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req profileTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "profile_type must be rider or owner",
		})
		return
	}

	if err := h.authUseCase.SetProfileType(c.Request.Context(), user, req.ProfileType); err != nil {
		respondError(c, err)
		return
	}

	me, err := h.authUseCase.GetMe(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, me)
}

// CompleteOnboarding handles POST /auth/complete-onboarding
// @Summary Complete onboarding
// @Description Mark onboarding finished for the chosen profile type
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profileTypeRequest true "Profile type"
// @Success 200 {object} auth.Me
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/complete-onboarding [post]
func (h *AuthHandler) CompleteOnboarding(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req profileTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "profile_type must be rider or owner",
		})
		return
	}

	if err := h.authUseCase.CompleteOnboarding(c.Request.Context(), user, req.ProfileType); err != nil {
		respondError(c, err)
		return
	}

	me, err := h.authUseCase.GetMe(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, me)
}

// ResetProfile handles POST /auth/reset-profile
// @Summary Reset onboarding
// @Description Clear the chosen profile type so onboarding can restart
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} auth.Me
// @Failure 401 {object} ErrorResponse
// @Router /auth/reset-profile [post]
func (h *AuthHandler) ResetProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.authUseCase.ResetProfile(c.Request.Context(), user); err != nil {
		respondError(c, err)
		return
	}

	me, err := h.authUseCase.GetMe(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, me)
}
