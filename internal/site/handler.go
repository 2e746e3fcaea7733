package site

import (
	"net/http"

	"github.com/aperezm/liftlog/internal/telemetry/tracing"
	"github.com/aperezm/liftlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// Handler serves the static site pages and a couple of plumbing endpoints.
// The dashboard page itself is just one of the static files; its data comes
// from the dashboard API.
type Handler struct {
	versionInfo    string
	staticRootPath string
}

func NewHandler(versionInfo, staticRootPath string) *Handler {
	return &Handler{
		versionInfo:    versionInfo,
		staticRootPath: staticRootPath,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")

	if handler.staticRootPath == "" {
		router.HandleFunc("/", handler.handleRoot).Methods("GET", "OPTIONS").Name("root")
		return
	}

	if exists, err := pkg.PathExists(handler.staticRootPath, true); err != nil || !exists {
		log.Warnf("static root path [%s] not found, static pages will 404", handler.staticRootPath)
	}

	// catch-all, registered last so the API routes take precedence
	router.PathPrefix("/").
		Handler(http.FileServer(http.Dir(handler.staticRootPath))).
		Name("static")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.site.version")
	defer span.End()

	pkg.WriteTextResponseOK(w, handler.versionInfo)
}
