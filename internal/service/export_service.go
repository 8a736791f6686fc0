package service

import (
	"context"
	"encoding/json"
	"fmt"

	"betonfit/coach-app/internal/storage"
)

// ExportService turns a stored programme into a downloadable JSON object in
// the export bucket.
type ExportService interface {
	// ExportProgramme uploads the programme as JSON and returns a presigned
	// download URL.
	ExportProgramme(ctx context.Context, programmeID string) (string, error)
}

type exportService struct {
	programmes  PlannerService
	fileStorage storage.FileStorage
}

// NewExportService creates a new export service.
func NewExportService(programmes PlannerService, fileStorage storage.FileStorage) ExportService {
	return &exportService{
		programmes:  programmes,
		fileStorage: fileStorage,
	}
}

func (s *exportService) ExportProgramme(ctx context.Context, programmeID string) (string, error) {
	programme, err := s.programmes.GetByID(ctx, programmeID)
	if err != nil {
		return "", err
	}

	body, err := json.MarshalIndent(programme, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal programme export: %w", err)
	}

	objectKey := fmt.Sprintf("exports/%s/%s.json", programme.Email, programme.ID)
	if err := s.fileStorage.UploadObject(ctx, objectKey, "application/json", body); err != nil {
		return "", fmt.Errorf("upload programme export: %w", err)
	}

	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", fmt.Errorf("presign programme export: %w", err)
	}
	return url, nil
}
