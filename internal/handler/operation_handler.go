// Package handler provides HTTP handlers for the API.
package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"pdf-toolkit/internal/domain"
	apperrors "pdf-toolkit/pkg/errors"
)

// multipartMemoryLimit is the in-memory threshold for multipart parsing;
// larger parts spill to disk and are removed by net/http after the request.
const multipartMemoryLimit = 32 << 20

var (
	pdfExtensions   = map[string]bool{".pdf": true}
	imageExtensions = map[string]bool{".png": true, ".jpg": true, ".jpeg": true}
)

// OperationHandler handles the document operation HTTP requests
type OperationHandler struct {
	operations domain.OperationService
	config     domain.Config
	logger     domain.Logger
}

// NewOperationHandler creates a new operation handler
func NewOperationHandler(operations domain.OperationService, config domain.Config, logger domain.Logger) *OperationHandler {
	return &OperationHandler{
		operations: operations,
		config:     config,
		logger:     logger,
	}
}

// Convert handles image-to-PDF conversion
func (h *OperationHandler) Convert(w http.ResponseWriter, r *http.Request) {
	files, err := h.formFiles(r, "files", imageExtensions)
	if err != nil {
		h.writeOperationError(w, err)
		return
	}

	result, err := h.operations.ConvertImages(files)
	if err != nil {
		h.writeOperationError(w, err)
		return
	}

	h.writePDF(w, result, outputName("converted"))
}

// Merge handles PDF concatenation
func (h *OperationHandler) Merge(w http.ResponseWriter, r *http.Request) {
	files, err := h.formFiles(r, "files", pdfExtensions)
	if err != nil {
		h.writeOperationError(w, err)
		return
	}

	result, err := h.operations.Merge(files)
	if err != nil {
		h.writeOperationError(w, err)
		return
	}

	h.writePDF(w, result, outputName("merged"))
}

// Compress handles PDF optimization
func (h *OperationHandler) Compress(w http.ResponseWriter, r *http.Request) {
	file, err := h.formFile(r, "file", pdfExtensions)
	if err != nil {
		h.writeOperationError(w, err)
		return
	}

	result, err := h.operations.Compress(file)
	if err != nil {
		h.writeOperationError(w, err)
		return
	}

	h.writePDF(w, result, outputName("compressed"))
}

// Split handles page extraction
func (h *OperationHandler) Split(w http.ResponseWriter, r *http.Request) {
	file, err := h.formFile(r, "file", pdfExtensions)
	if err != nil {
		h.writeOperationError(w, err)
		return
	}

	result, err := h.operations.Split(file, r.FormValue("pages"))
	if err != nil {
		h.writeOperationError(w, err)
		return
	}

	h.writePDF(w, result, outputName("split"))
}

// Rotate handles page rotation
func (h *OperationHandler) Rotate(w http.ResponseWriter, r *http.Request) {
	file, err := h.formFile(r, "file", pdfExtensions)
	if err != nil {
		h.writeOperationError(w, err)
		return
	}

	angleValue := strings.TrimSpace(r.FormValue("angle"))
	angle, convErr := strconv.Atoi(angleValue)
	if convErr != nil {
		h.writeOperationError(w, apperrors.NewValidationError("rotation angle must be an integer", angleValue))
		return
	}

	result, err := h.operations.Rotate(file, angle, r.FormValue("pages"))
	if err != nil {
		h.writeOperationError(w, err)
		return
	}

	h.writePDF(w, result, outputName("rotated"))
}

// Secure handles password encryption and decryption
func (h *OperationHandler) Secure(w http.ResponseWriter, r *http.Request) {
	file, err := h.formFile(r, "file", pdfExtensions)
	if err != nil {
		h.writeOperationError(w, err)
		return
	}

	mode, ok := domain.ParseSecureMode(r.FormValue("mode"))
	if !ok {
		h.writeOperationError(w, apperrors.NewValidationError("mode must be encrypt or decrypt", r.FormValue("mode")))
		return
	}

	result, err := h.operations.Secure(file, mode, r.FormValue("password"))
	if err != nil {
		h.writeOperationError(w, err)
		return
	}

	h.writePDF(w, result, outputName(string(mode)+"ed"))
}

// formFiles reads every uploaded file under the given form field.
func (h *OperationHandler) formFiles(r *http.Request, field string, allowedExt map[string]bool) ([]domain.UploadedFile, error) {
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		return nil, apperrors.NewValidationError("invalid or oversized multipart request", err.Error())
	}

	headers := r.MultipartForm.File[field]
	files := make([]domain.UploadedFile, 0, len(headers))
	for _, header := range headers {
		file, err := h.readFile(header, allowedExt)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, nil
}

// formFile reads a single required uploaded file.
func (h *OperationHandler) formFile(r *http.Request, field string, allowedExt map[string]bool) (domain.UploadedFile, error) {
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		return domain.UploadedFile{}, apperrors.NewValidationError("invalid or oversized multipart request", err.Error())
	}

	headers := r.MultipartForm.File[field]
	if len(headers) == 0 {
		return domain.UploadedFile{}, apperrors.NewValidationError("file is required")
	}
	return h.readFile(headers[0], allowedExt)
}

// readFile validates one multipart file and loads it into memory.
func (h *OperationHandler) readFile(header *multipart.FileHeader, allowedExt map[string]bool) (domain.UploadedFile, error) {
	// Sanitize filename (strip any path components)
	name := strings.TrimSpace(filepath.Base(header.Filename))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "document"
	}

	// Validate extension (strict allow-list)
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" || !allowedExt[ext] {
		return domain.UploadedFile{}, apperrors.NewValidationError("unsupported file type", name)
	}

	// Validate file size
	if header.Size > h.config.GetMaxFileSize() {
		return domain.UploadedFile{}, apperrors.NewValidationError("file too large", name)
	}

	part, err := header.Open()
	if err != nil {
		return domain.UploadedFile{}, apperrors.NewInternalError("failed to open uploaded file", err)
	}
	defer part.Close()

	data, err := io.ReadAll(part)
	if err != nil {
		return domain.UploadedFile{}, apperrors.NewInternalError("failed to read uploaded file", err)
	}

	return domain.UploadedFile{
		Filename:    name,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// writeOperationError maps an operation error onto an HTTP response.
func (h *OperationHandler) writeOperationError(w http.ResponseWriter, err error) {
	status := apperrors.GetStatusCode(err)
	message := "internal server error"

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
		if appErr.Details != "" {
			message += ": " + appErr.Details
		}
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error("Operation failed", err)
	} else {
		h.logger.Debug("Operation rejected", "status", status, "reason", message)
	}

	writeError(w, status, message)
}

// writePDF streams the result document as a download.
func (h *OperationHandler) writePDF(w http.ResponseWriter, data []byte, filename string) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// outputName builds a download filename with a short unique suffix.
func outputName(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8] + ".pdf"
}
