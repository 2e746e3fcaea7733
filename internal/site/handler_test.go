package site_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aperezm/liftlog/internal/site"
)

func TestHandler_Version(t *testing.T) {
	handler := site.NewHandler("v1.2.3", "")
	router := mux.NewRouter()
	handler.SetupRoutes(router)

	req := httptest.NewRequest("GET", "/version", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v1.2.3", rec.Body.String())
}

func TestHandler_RootWithoutStaticRoot(t *testing.T) {
	handler := site.NewHandler("v1.2.3", "")
	router := mux.NewRouter()
	handler.SetupRoutes(router)

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "I'm OK")
}

func TestHandler_StaticFiles(t *testing.T) {
	staticRoot := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(staticRoot, "index.html"),
		[]byte("<html><body>entrenamientos</body></html>"),
		0o644,
	))

	handler := site.NewHandler("v1.2.3", staticRoot)
	router := mux.NewRouter()
	handler.SetupRoutes(router)

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "entrenamientos")

	req = httptest.NewRequest("GET", "/nope.html", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
