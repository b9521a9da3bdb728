package models

import (
	"time"
)

type File struct {
	ID           int        `json:"id"`
	OriginalName string     `json:"original_name"`
	FileName     string     `json:"file_name"`
	FilePath     string     `json:"file_path"`
	FileSize     int64      `json:"file_size"`
	FileType     string     `json:"file_type"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}
