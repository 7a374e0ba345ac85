package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kerjahub/hris-portal-go/internal/pkg/storage"
)

type FileService interface {
	// UploadProof stores a clock-in or clock-out proof photo and returns
	// its storage path. boundary is "CLOCK_IN" or "CLOCK_OUT".
	UploadProof(ctx context.Context, employeeID string, date time.Time, file io.Reader, filename string, boundary string) (string, error)

	// DeleteFile removes a stored file.
	DeleteFile(ctx context.Context, path string) error

	// GetFileURL resolves a stored path to a servable URL.
	GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// UploadProof stores an attendance proof photo under
// proofs/<employee>/<date>/<boundary>-<uuid>.<ext>.
func (s *fileServiceImpl) UploadProof(ctx context.Context, employeeID string, date time.Time, file io.Reader, filename string, boundary string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return "", fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
	}

	contentType := "image/jpeg"
	if ext == ".png" {
		contentType = "image/png"
	}

	newFilename := fmt.Sprintf("%s-%s%s", strings.ToLower(boundary), uuid.New().String(), ext)
	path := filepath.Join("proofs", employeeID, date.Format("2006-01-02"), newFilename)

	uploadedPath, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload attendance proof: %w", err)
	}

	return uploadedPath, nil
}

func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	if err := s.storage.Delete(ctx, path); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	url, err := s.storage.GetURL(ctx, path, expiry)
	if err != nil {
		return "", fmt.Errorf("failed to resolve file URL: %w", err)
	}
	return url, nil
}
