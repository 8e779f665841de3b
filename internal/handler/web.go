package handler

import (
	"embed"
	"html/template"
	"net/http"

	"pdf-toolkit/internal/domain"
)

//go:embed static/index.html
var staticFS embed.FS

// WebHandler serves the embedded form page.
type WebHandler struct {
	config domain.Config
	logger domain.Logger
	tmpl   *template.Template
}

// NewWebHandler creates a new web handler with the page template parsed.
func NewWebHandler(config domain.Config, logger domain.Logger) *WebHandler {
	return &WebHandler{
		config: config,
		logger: logger,
		tmpl:   template.Must(template.ParseFS(staticFS, "static/index.html")),
	}
}

// Index renders the operations form page.
func (h *WebHandler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, struct{ Title string }{Title: h.config.GetAppTitle()}); err != nil {
		h.logger.Error("Failed to render index page", err)
	}
}
