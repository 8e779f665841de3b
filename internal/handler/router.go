package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"pdf-toolkit/internal/domain"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(operationHandler *OperationHandler, webHandler *WebHandler, config domain.Config, logger domain.Logger) http.Handler {
	router := mux.NewRouter()
	router.Use(RequestLogger(logger))

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "pdf-toolkit"})
	}).Methods("GET")

	// Web form page
	router.HandleFunc("/", webHandler.Index).Methods("GET")

	// Operation routes
	operations := router.PathPrefix("/api/v1/operations").Subrouter()
	// Merge and convert accept several files per request, so the body cap
	// is a multiple of the per-file limit.
	operations.Use(BodyLimit(config.GetMaxFileSize() * 8))
	operations.HandleFunc("/convert", operationHandler.Convert).Methods("POST")
	operations.HandleFunc("/merge", operationHandler.Merge).Methods("POST")
	operations.HandleFunc("/compress", operationHandler.Compress).Methods("POST")
	operations.HandleFunc("/split", operationHandler.Split).Methods("POST")
	operations.HandleFunc("/rotate", operationHandler.Rotate).Methods("POST")
	operations.HandleFunc("/secure", operationHandler.Secure).Methods("POST")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: config.GetAllowedOrigins(),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		ExposedHeaders: []string{
			"Content-Disposition",
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
