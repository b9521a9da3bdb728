package services

import (
	"context"
	"errors"
	"log"
	"net/http"

	"itemBack/internal/models"
	"itemBack/internal/repositories"
	"itemBack/utils"
)

// FileService persists upload metadata and, when an object store is
// configured, mirrors the bytes there. The mirror is best effort: a failed
// mirror does not fail the upload.
type FileService struct {
	FileRepo *repositories.FileRepository
	Storage  *utils.S3Storage
	ErrorLog *log.Logger
}

func (s *FileService) SaveUpload(ctx context.Context, file models.File, data []byte) (models.File, error) {
	created, err := s.FileRepo.CreateFile(ctx, file)
	if err != nil {
		return models.File{}, models.InternalError("Failed to save file.")
	}

	if s.Storage != nil {
		if _, err := s.Storage.Upload(data, created.FileName, "files", created.FileType); err != nil && s.ErrorLog != nil {
			s.ErrorLog.Printf("s3 mirror failed for file %d: %v", created.ID, err)
		}
	}
	return created, nil
}

func (s *FileService) GetFileByID(ctx context.Context, id int) (models.File, error) {
	file, err := s.FileRepo.GetFileByID(ctx, id)
	if errors.Is(err, models.ErrFileNotFound) {
		return models.File{}, models.NewAPIError(http.StatusNotFound, models.CodeNotFound, "File not found.")
	}
	if err != nil {
		return models.File{}, models.InternalError("Failed to fetch file.")
	}
	return file, nil
}
