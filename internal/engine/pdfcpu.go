// Package engine adapts the pdfcpu library to the domain.DocumentEngine
// interface. Every method is a thin wrapper around a single library call;
// the service layer owns all file staging and cleanup.
package engine

import (
	"fmt"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"pdf-toolkit/internal/domain"
)

// importDescription places each image centered on an A4 page, scaled to
// fit while preserving its aspect ratio.
const importDescription = "form:A4, pos:c, scale:1.0 rel"

// PDFCPUEngine implements domain.DocumentEngine using pdfcpu.
type PDFCPUEngine struct {
	logger domain.Logger
}

// NewPDFCPUEngine creates a new pdfcpu-backed engine.
func NewPDFCPUEngine(logger domain.Logger) *PDFCPUEngine {
	return &PDFCPUEngine{logger: logger}
}

// newConfiguration returns a fresh pdfcpu configuration per call.
// Configurations carry per-operation state (passwords, command), so they
// are never shared.
func newConfiguration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// ImagesToPDF renders one page per image, in input order.
func (e *PDFCPUEngine) ImagesToPDF(imagePaths []string, outPath string) error {
	imp, err := pdfcpu.ParseImportDetails(importDescription, types.POINTS)
	if err != nil {
		return fmt.Errorf("parsing import details: %w", err)
	}
	e.logger.Debug("Importing images", "count", len(imagePaths))
	return api.ImportImagesFile(imagePaths, outPath, imp, newConfiguration())
}

// Merge concatenates the input documents in the given order.
func (e *PDFCPUEngine) Merge(inPaths []string, outPath string) error {
	e.logger.Debug("Merging documents", "count", len(inPaths))
	return api.MergeCreateFile(inPaths, outPath, false, newConfiguration())
}

// Optimize rewrites the document with duplicate resources removed and
// streams recompressed. Raster content is kept intact, but the output is
// not byte-identical to the input.
func (e *PDFCPUEngine) Optimize(inPath, outPath string) error {
	return api.OptimizeFile(inPath, outPath, newConfiguration())
}

// CollectPages writes a new document containing exactly the given 1-based
// pages, in the given order.
func (e *PDFCPUEngine) CollectPages(inPath, outPath string, pages []int) error {
	return api.CollectFile(inPath, outPath, pageStrings(pages), newConfiguration())
}

// RotatePages rotates the given pages clockwise by angle degrees. An empty
// page list rotates the whole document.
func (e *PDFCPUEngine) RotatePages(inPath, outPath string, angle int, pages []int) error {
	var selected []string
	if len(pages) > 0 {
		selected = pageStrings(pages)
	}
	return api.RotateFile(inPath, outPath, angle, selected, newConfiguration())
}

// Encrypt protects the document with the given password for both the user
// and owner roles.
func (e *PDFCPUEngine) Encrypt(inPath, outPath, password string) error {
	conf := newConfiguration()
	conf.UserPW = password
	conf.OwnerPW = password
	return api.EncryptFile(inPath, outPath, conf)
}

// Decrypt removes password protection. Fails if the password is wrong.
func (e *PDFCPUEngine) Decrypt(inPath, outPath, password string) error {
	conf := newConfiguration()
	conf.UserPW = password
	conf.OwnerPW = password
	return api.DecryptFile(inPath, outPath, conf)
}

// PageCount returns the number of pages in the document.
func (e *PDFCPUEngine) PageCount(inPath string) (int, error) {
	return api.PageCountFile(inPath)
}

// Validate checks that the document is a readable PDF.
func (e *PDFCPUEngine) Validate(inPath string) error {
	return api.ValidateFile(inPath, newConfiguration())
}

func pageStrings(pages []int) []string {
	s := make([]string, len(pages))
	for i, p := range pages {
		s[i] = strconv.Itoa(p)
	}
	return s
}
