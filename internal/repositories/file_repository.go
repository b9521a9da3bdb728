package repositories

import (
	"context"
	"database/sql"

	"itemBack/internal/models"
)

type FileRepository struct {
	DB *sql.DB
}

func (r *FileRepository) CreateFile(ctx context.Context, file models.File) (models.File, error) {
	query := `
		INSERT INTO files (original_name, file_name, file_path, file_size, file_type, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, NOW(), NOW())
	`
	result, err := r.DB.ExecContext(ctx, query,
		file.OriginalName, file.FileName, file.FilePath, file.FileSize, file.FileType,
	)
	if err != nil {
		return models.File{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.File{}, err
	}
	return r.GetFileByID(ctx, int(id))
}

func (r *FileRepository) GetFileByID(ctx context.Context, id int) (models.File, error) {
	var file models.File
	query := `SELECT id, original_name, file_name, file_path, file_size, file_type, created_at, updated_at FROM files WHERE id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&file.ID, &file.OriginalName, &file.FileName, &file.FilePath,
		&file.FileSize, &file.FileType, &file.CreatedAt, &file.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.File{}, models.ErrFileNotFound
	}
	if err != nil {
		return models.File{}, err
	}
	return file, nil
}
