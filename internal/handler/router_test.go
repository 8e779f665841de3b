package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestRouter() http.Handler {
	cfg := &stubConfig{}
	logger := nopLogger{}
	operationHandler := NewOperationHandler(NewMockOperationService(), cfg, logger)
	webHandler := NewWebHandler(cfg, logger)
	return NewRouter(operationHandler, webHandler, cfg, logger)
}

func TestNewRouter_Health(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestNewRouter_IndexPage(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected html content type, got %s", ct)
	}
	if !strings.Contains(rr.Body.String(), "PDF Toolkit") {
		t.Fatal("expected page title in response body")
	}
}

func TestNewRouter_OperationsRequirePost(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{
		"/api/v1/operations/convert",
		"/api/v1/operations/merge",
		"/api/v1/operations/compress",
		"/api/v1/operations/split",
		"/api/v1/operations/rotate",
		"/api/v1/operations/secure",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s: expected status %d, got %d", path, http.StatusMethodNotAllowed, rr.Code)
		}
	}
}
