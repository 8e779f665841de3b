// Package service implements the document operation business logic.
package service

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"pdf-toolkit/internal/domain"
	apperrors "pdf-toolkit/pkg/errors"
)

// OperationService implements domain.OperationService. Each call stages its
// inputs in a request-scoped scratch directory, runs a single engine
// operation and reads the result back; the directory is removed on every
// exit path.
type OperationService struct {
	engine domain.DocumentEngine
	config domain.Config
	logger domain.Logger
}

// NewOperationService creates a new operation service.
func NewOperationService(engine domain.DocumentEngine, config domain.Config, logger domain.Logger) *OperationService {
	return &OperationService{
		engine: engine,
		config: config,
		logger: logger,
	}
}

// ConvertImages converts one or more PNG/JPEG images into a single PDF,
// one page per image, in upload order.
func (s *OperationService) ConvertImages(files []domain.UploadedFile) ([]byte, error) {
	if len(files) == 0 {
		return nil, apperrors.NewValidationError("at least one image file is required")
	}

	ws, err := s.newWorkspace()
	if err != nil {
		return nil, err
	}
	defer ws.cleanup(s.logger)

	paths, err := ws.stageAll(files)
	if err != nil {
		return nil, err
	}

	out := ws.outputPath()
	if err := s.engine.ImagesToPDF(paths, out); err != nil {
		return nil, apperrors.NewProcessingError("image conversion failed", err)
	}

	s.logger.Info("Converted images to PDF", "images", len(files))
	return ws.readResult(out)
}

// Merge concatenates two or more PDF documents in input order.
func (s *OperationService) Merge(files []domain.UploadedFile) ([]byte, error) {
	if len(files) < 2 {
		return nil, apperrors.NewValidationError("merge requires at least two PDF files")
	}

	ws, err := s.newWorkspace()
	if err != nil {
		return nil, err
	}
	defer ws.cleanup(s.logger)

	paths, err := ws.stageAll(files)
	if err != nil {
		return nil, err
	}

	out := ws.outputPath()
	if err := s.engine.Merge(paths, out); err != nil {
		return nil, apperrors.NewProcessingError("merge failed; one of the documents may be corrupt", err)
	}

	s.logger.Info("Merged documents", "documents", len(files))
	return ws.readResult(out)
}

// Compress rewrites a PDF with its resources optimized.
func (s *OperationService) Compress(file domain.UploadedFile) ([]byte, error) {
	ws, err := s.newWorkspace()
	if err != nil {
		return nil, err
	}
	defer ws.cleanup(s.logger)

	in, err := ws.stage(file, 0)
	if err != nil {
		return nil, err
	}
	if err := s.engine.Validate(in); err != nil {
		return nil, apperrors.NewProcessingError("unreadable or corrupt PDF document", err)
	}

	out := ws.outputPath()
	if err := s.engine.Optimize(in, out); err != nil {
		return nil, apperrors.NewProcessingError("compression failed", err)
	}

	result, err := ws.readResult(out)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Compressed document", "bytes_in", len(file.Data), "bytes_out", len(result))
	return result, nil
}

// Split extracts the pages named by pageRange into a new PDF, ascending.
func (s *OperationService) Split(file domain.UploadedFile, pageRange string) ([]byte, error) {
	ws, err := s.newWorkspace()
	if err != nil {
		return nil, err
	}
	defer ws.cleanup(s.logger)

	in, err := ws.stage(file, 0)
	if err != nil {
		return nil, err
	}

	pageCount, err := s.engine.PageCount(in)
	if err != nil {
		return nil, apperrors.NewProcessingError("unreadable or corrupt PDF document", err)
	}
	pages, err := domain.ParsePageRange(pageRange, pageCount)
	if err != nil {
		return nil, err
	}

	out := ws.outputPath()
	if err := s.engine.CollectPages(in, out, pages); err != nil {
		return nil, apperrors.NewProcessingError("page extraction failed", err)
	}

	s.logger.Info("Split document", "source_pages", pageCount, "selected_pages", len(pages))
	return ws.readResult(out)
}

// Rotate rotates the selected pages (all pages when pageRange is empty)
// clockwise by angle degrees.
func (s *OperationService) Rotate(file domain.UploadedFile, angle int, pageRange string) ([]byte, error) {
	if !domain.ValidRotationAngle(angle) {
		return nil, apperrors.NewValidationError("rotation angle must be 90, 180 or 270", strconv.Itoa(angle))
	}

	ws, err := s.newWorkspace()
	if err != nil {
		return nil, err
	}
	defer ws.cleanup(s.logger)

	in, err := ws.stage(file, 0)
	if err != nil {
		return nil, err
	}

	var pages []int
	if strings.TrimSpace(pageRange) != "" {
		pageCount, err := s.engine.PageCount(in)
		if err != nil {
			return nil, apperrors.NewProcessingError("unreadable or corrupt PDF document", err)
		}
		pages, err = domain.ParsePageRange(pageRange, pageCount)
		if err != nil {
			return nil, err
		}
	}

	out := ws.outputPath()
	if err := s.engine.RotatePages(in, out, angle, pages); err != nil {
		return nil, apperrors.NewProcessingError("rotation failed", err)
	}

	s.logger.Info("Rotated document", "angle", angle, "selected_pages", len(pages))
	return ws.readResult(out)
}

// Secure encrypts or decrypts a PDF with the given password.
func (s *OperationService) Secure(file domain.UploadedFile, mode domain.SecureMode, password string) ([]byte, error) {
	if password == "" {
		return nil, apperrors.NewValidationError("password is required")
	}

	ws, err := s.newWorkspace()
	if err != nil {
		return nil, err
	}
	defer ws.cleanup(s.logger)

	in, err := ws.stage(file, 0)
	if err != nil {
		return nil, err
	}

	out := ws.outputPath()
	switch mode {
	case domain.SecureModeEncrypt:
		if err := s.engine.Encrypt(in, out, password); err != nil {
			return nil, apperrors.NewProcessingError("encryption failed", err)
		}
	case domain.SecureModeDecrypt:
		if err := s.engine.Decrypt(in, out, password); err != nil {
			return nil, apperrors.NewProcessingError("decryption failed; check the password", err)
		}
	default:
		return nil, apperrors.NewValidationError("mode must be encrypt or decrypt", string(mode))
	}

	s.logger.Info("Secured document", "mode", string(mode))
	return ws.readResult(out)
}

// workspace is the scratch directory for a single request. Everything the
// engine reads or writes lives under dir.
type workspace struct {
	dir string
}

func (s *OperationService) newWorkspace() (*workspace, error) {
	dir, err := os.MkdirTemp(s.config.GetTempPath(), "pdf-toolkit-*")
	if err != nil {
		return nil, apperrors.NewInternalError("failed to create scratch directory", err)
	}
	return &workspace{dir: dir}, nil
}

func (w *workspace) cleanup(logger domain.Logger) {
	if err := os.RemoveAll(w.dir); err != nil {
		logger.Warn("Failed to remove scratch directory", "dir", w.dir, "error", err)
	}
}

// stage writes an uploaded file into the workspace, keeping the original
// extension so the engine can detect the format.
func (w *workspace) stage(file domain.UploadedFile, index int) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	path := filepath.Join(w.dir, "in-"+strconv.Itoa(index)+ext)
	if err := os.WriteFile(path, file.Data, 0o600); err != nil {
		return "", apperrors.NewInternalError("failed to stage uploaded file", err)
	}
	return path, nil
}

func (w *workspace) stageAll(files []domain.UploadedFile) ([]string, error) {
	paths := make([]string, 0, len(files))
	for i, f := range files {
		path, err := w.stage(f, i)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (w *workspace) outputPath() string {
	return filepath.Join(w.dir, "out-"+uuid.NewString()+".pdf")
}

// readResult loads the engine output before the workspace is removed.
func (w *workspace) readResult(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to read result document", err)
	}
	return data, nil
}
