package media

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/horsesharing/backend/internal/config"
	"github.com/horsesharing/backend/internal/domain"
)

// maxUploadSize caps a single photo at 10 MiB.
const maxUploadSize = 10 << 20

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".heic": true,
}

// MediaUseCase stores uploaded photos on local disk under random names
// and hands back the public URLs the static file route serves them from.
type MediaUseCase struct {
	cfg config.StorageConfig
	log *logrus.Logger
}

func NewMediaUseCase(cfg config.StorageConfig, log *logrus.Logger) *MediaUseCase {
	return &MediaUseCase{cfg: cfg, log: log}
}

// SavePhotos writes each uploaded file to the storage directory and
// returns their URLs in upload order. A failing file aborts the batch.
func (uc *MediaUseCase) SavePhotos(userID int, files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := os.MkdirAll(uc.cfg.Path, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := uc.savePhoto(fh)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	uc.log.WithFields(logrus.Fields{
		"user_id": userID,
		"count":   len(urls),
	}).Info("photos uploaded")
	return urls, nil
}

func (uc *MediaUseCase) savePhoto(fh *multipart.FileHeader) (string, error) {
	if fh.Size > maxUploadSize {
		return "", fmt.Errorf("%w: file %q exceeds size limit", domain.ErrInvalidInput, fh.Filename)
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: unsupported file type %q", domain.ErrInvalidInput, ext)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(uc.cfg.Path, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return strings.TrimRight(uc.cfg.URLPrefix, "/") + "/" + name, nil
}
