package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"itemBack/internal/models"
	"itemBack/internal/services"
)

const maxUploadSize = 32 << 20 // 32MB

type FileHandler struct {
	Service   *services.FileService
	UploadDir string
}

func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeBadRequest(w, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeBadRequest(w, "No file uploaded")
		return
	}
	defer file.Close()

	saved, err := h.saveOne(r, file, header)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "File uploaded successfully", saved)
}

func (h *FileHandler) UploadMultiple(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeBadRequest(w, "Invalid multipart form")
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		writeBadRequest(w, "No files uploaded")
		return
	}

	saved := make([]models.File, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			writeError(w, models.InternalError("Failed to open uploaded file."))
			return
		}
		record, err := h.saveOne(r, file, header)
		file.Close()
		if err != nil {
			writeError(w, err)
			return
		}
		saved = append(saved, record)
	}
	writeSuccess(w, http.StatusCreated, "Files uploaded successfully", saved)
}

func (h *FileHandler) saveOne(r *http.Request, file multipart.File, header *multipart.FileHeader) (models.File, error) {
	if err := os.MkdirAll(h.UploadDir, 0755); err != nil {
		return models.File{}, models.InternalError("Failed to create upload directory.")
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return models.File{}, models.InternalError("Failed to read uploaded file.")
	}

	storedName := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(header.Filename))
	storedPath := filepath.Join(h.UploadDir, storedName)
	if err := os.WriteFile(storedPath, data, 0644); err != nil {
		return models.File{}, models.InternalError("Failed to store uploaded file.")
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	record := models.File{
		OriginalName: header.Filename,
		FileName:     storedName,
		FilePath:     storedPath,
		FileSize:     header.Size,
		FileType:     contentType,
	}
	saved, err := h.Service.SaveUpload(r.Context(), record, data)
	if err != nil {
		// The metadata row failed; the orphaned bytes on disk are removed.
		os.Remove(storedPath)
		return models.File{}, err
	}
	return saved, nil
}

func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "Invalid file ID")
		return
	}

	record, err := h.Service.GetFileByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	if _, err := os.Stat(record.FilePath); os.IsNotExist(err) {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse(models.CodeNotFound, "File not found on server"))
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", record.OriginalName))
	http.ServeFile(w, r, record.FilePath)
}

func (h *FileHandler) ServeImage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "Invalid file ID")
		return
	}

	record, err := h.Service.GetFileByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	if !strings.HasPrefix(record.FileType, "image/") {
		writeBadRequest(w, "Requested file is not an image")
		return
	}

	if _, err := os.Stat(record.FilePath); os.IsNotExist(err) {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse(models.CodeNotFound, "Image file not found on server"))
		return
	}

	w.Header().Set("Content-Type", record.FileType)
	http.ServeFile(w, r, record.FilePath)
}
