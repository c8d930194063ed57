package handlers

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"resume-screener/internal/models"
	"resume-screener/internal/services"
	"resume-screener/internal/utils"

	"github.com/gorilla/mux"
)

const (
	// MaxBatchSize caps a whole upload batch.
	MaxBatchSize = 64 << 20 // 64MB
)

type ScreeningHandler struct {
	service     services.ScreeningService
	logger      *utils.Logger
	maxFileSize int64
}

func NewScreeningHandler(service services.ScreeningService, logger *utils.Logger, maxFileSize int64) *ScreeningHandler {
	return &ScreeningHandler{
		service:     service,
		logger:      logger,
		maxFileSize: maxFileSize,
	}
}

// FilterByInstitute accepts a multipart batch under the "resumes" field
// and returns accepted candidates grouped by institute tier.
func (h *ScreeningHandler) FilterByInstitute(w http.ResponseWriter, r *http.Request) {
	files, ok := h.readBatch(w, r)
	if !ok {
		return
	}

	result, err := h.service.FilterByInstitute(r.Context(), files)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// MatchRole accepts a multipart batch plus "job_title" and "skills"
// form fields and returns every candidate scoring above 0%.
func (h *ScreeningHandler) MatchRole(w http.ResponseWriter, r *http.Request) {
	files, ok := h.readBatch(w, r)
	if !ok {
		return
	}

	jobTitle := r.FormValue("job_title")
	skills := r.FormValue("skills")

	result, err := h.service.MatchRole(r.Context(), files, jobTitle, skills)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// History returns all persisted candidate records, newest first.
func (h *ScreeningHandler) History(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.History(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}

	if records == nil {
		records = []models.CandidateRecord{}
	}

	h.respondJSON(w, http.StatusOK, records)
}

// GetFile streams back a stored resume by its sanitized filename.
func (h *ScreeningHandler) GetFile(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	filename := vars["filename"]

	if filename == "" {
		h.respondError(w, utils.NewBadRequestError("Filename is required"))
		return
	}

	data, err := h.service.GetFile(r.Context(), filename)
	if err != nil {
		h.respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// readBatch parses the multipart form and reads every "resumes" part
// into memory. Oversized individual files are dropped from the batch,
// matching the silent-skip contract for rejected files.
func (h *ScreeningHandler) readBatch(w http.ResponseWriter, r *http.Request) ([]models.UploadedFile, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBatchSize)

	if err := r.ParseMultipartForm(MaxBatchSize); err != nil {
		h.respondError(w, utils.NewBadRequestError("Invalid form data"))
		return nil, false
	}

	if r.MultipartForm == nil || len(r.MultipartForm.File["resumes"]) == 0 {
		h.respondError(w, utils.NewBadRequestError("No files provided"))
		return nil, false
	}

	var files []models.UploadedFile
	for _, header := range r.MultipartForm.File["resumes"] {
		data, ok := h.readPart(header)
		if !ok {
			continue
		}
		files = append(files, models.UploadedFile{
			Data:     data,
			Filename: header.Filename,
		})
	}

	return files, true
}

func (h *ScreeningHandler) readPart(header *multipart.FileHeader) ([]byte, bool) {
	if header.Size > h.maxFileSize {
		h.logger.Warn("Skipping oversized file", "filename", header.Filename, "size", header.Size)
		return nil, false
	}

	file, err := header.Open()
	if err != nil {
		h.logger.Warn("Skipping unreadable file part", "error", err, "filename", header.Filename)
		return nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxFileSize+1))
	if err != nil || int64(len(data)) > h.maxFileSize {
		h.logger.Warn("Skipping unreadable file part", "filename", header.Filename)
		return nil, false
	}

	return data, true
}

func (h *ScreeningHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", "error", err)
	}
}

func (h *ScreeningHandler) respondError(w http.ResponseWriter, err error) {
	var status int
	var message string

	switch e := err.(type) {
	case *utils.AppError:
		status = e.StatusCode
		message = e.Message
	default:
		status = http.StatusInternalServerError
		message = "Internal server error"
	}

	h.logger.Error("Request error", "status", status, "error", message)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
