package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/horsesharing/backend/internal/usecase/media"
)

type MediaHandler struct {
	mediaUseCase *media.MediaUseCase
}

func NewMediaHandler(mediaUseCase *media.MediaUseCase) *MediaHandler {
	return &MediaHandler{
		mediaUseCase: mediaUseCase,
	}
}

type uploadResponse struct {
	URLs []string `json:"urls"`
}

// UploadPhotos handles POST /media/photos
// @Summary Upload photos
// @Description Accepts multipart form files under the "photos" field and
// @Description returns their public URLs
// @Tags media
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} uploadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /media/photos [post]
func (h *MediaHandler) UploadPhotos(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "expected multipart form data",
		})
		return
	}

	files := form.File["photos"]
	if len(files) == 0 {
		files = form.File["photo"]
	}

	urls, err := h.mediaUseCase.SavePhotos(user.ID, files)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, uploadResponse{URLs: urls})
}
