package dashboard

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/aperezm/liftlog/internal/telemetry/metrics"
	"github.com/aperezm/liftlog/internal/telemetry/tracing"
	"github.com/aperezm/liftlog/internal/workout"
	"github.com/aperezm/liftlog/pkg"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=dashboard_test

type statsService interface {
	Dataset() *workout.Dataset
	Status() Status
}

// view responses over an immutable dataset never go stale; only the
// frequency calendar depends on the current day, so it expires
const (
	cacheNoExpire        = 0
	frequencyCacheExpire = 10 * 60 // seconds
)

type Handler struct {
	service        statsService
	cache          *freecache.Cache
	metricsManager *metrics.Manager
}

func NewHandler(
	service statsService,
	cache *freecache.Cache,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		service:        service,
		cache:          cache,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/dashboard/status", handler.HandleStatus).Methods("GET", "OPTIONS").Name("dashboard-status")
	router.HandleFunc("/dashboard/progression", handler.HandleProgression).Methods("GET", "OPTIONS").Name("dashboard-progression")
	router.HandleFunc("/dashboard/volume", handler.HandleVolume).Methods("GET", "OPTIONS").Name("dashboard-volume")
	router.HandleFunc("/dashboard/frequency", handler.HandleFrequency).Methods("GET", "OPTIONS").Name("dashboard-frequency")
	router.HandleFunc("/dashboard/records", handler.HandleRecords).Methods("GET", "OPTIONS").Name("dashboard-records")
	router.HandleFunc("/dashboard/table", handler.HandleTable).Methods("GET", "OPTIONS").Name("dashboard-table")
}

func (handler *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.status")
	defer span.End()

	statusJson, err := json.Marshal(handler.service.Status())
	if err != nil {
		log.Errorf("failed to marshal dashboard status: %s", err)
		http.Error(w, "failed to marshal dashboard status", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statusJson, http.StatusOK)
}

func (handler *Handler) HandleProgression(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.progression")
	defer span.End()

	dataset, ok := handler.dataset(w)
	if !ok {
		return
	}

	selected := DefaultProgressionSelection(dataset)
	if exercisesParam := r.URL.Query().Get("exercises"); exercisesParam != "" {
		selected = nil
		for _, exercise := range strings.Split(exercisesParam, ",") {
			if exercise = strings.TrimSpace(exercise); exercise != "" {
				selected = append(selected, exercise)
			}
		}
		// an empty selection can never blank the chart, it falls back
		// to the default selection
		if len(selected) == 0 {
			selected = DefaultProgressionSelection(dataset)
		}
	}

	handler.respondCached(w, r, cacheNoExpire, func() (interface{}, error) {
		return WeightProgression(ctx, dataset, selected), nil
	})
}

func (handler *Handler) HandleVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.volume")
	defer span.End()

	dataset, ok := handler.dataset(w)
	if !ok {
		return
	}

	mode, err := ParseVolumeMode(r.URL.Query().Get("mode"))
	if err != nil {
		log.Tracef("volume view: %s", err)
		http.Error(w, "invalid volume mode", http.StatusBadRequest)
		return
	}

	handler.respondCached(w, r, cacheNoExpire, func() (interface{}, error) {
		return TrainingVolume(ctx, dataset, mode), nil
	})
}

func (handler *Handler) HandleFrequency(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.frequency")
	defer span.End()

	dataset, ok := handler.dataset(w)
	if !ok {
		return
	}

	handler.respondCached(w, r, frequencyCacheExpire, func() (interface{}, error) {
		return TrainingFrequency(ctx, dataset, time.Now()), nil
	})
}

func (handler *Handler) HandleRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.records")
	defer span.End()

	dataset, ok := handler.dataset(w)
	if !ok {
		return
	}

	handler.respondCached(w, r, cacheNoExpire, func() (interface{}, error) {
		return PersonalRecords(ctx, dataset), nil
	})
}

func (handler *Handler) HandleTable(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.table")
	defer span.End()

	dataset, ok := handler.dataset(w)
	if !ok {
		return
	}

	query, err := tableQueryFromRequest(r)
	if err != nil {
		log.Tracef("table view: %s", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tableResponse, err := FilterAndSort(ctx, dataset, query)
	if err != nil {
		log.Tracef("table view: %s", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tableJson, err := json.Marshal(tableResponse)
	if err != nil {
		log.Errorf("failed to marshal table response: %s", err)
		http.Error(w, "failed to marshal table response", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, tableJson, http.StatusOK)
}

// dataset resolves the working set, writing the terminal failure/empty
// response when there is nothing to render. The three conditions are
// deliberately distinct: load failure, no data, and normal operation.
func (handler *Handler) dataset(w http.ResponseWriter) (*workout.Dataset, bool) {
	switch handler.service.Status().State {
	case StateFailed:
		http.Error(w, "failed to load workout data", http.StatusServiceUnavailable)
		return nil, false
	case StateEmpty:
		http.Error(w, "no workout data", http.StatusNotFound)
		return nil, false
	}
	return handler.service.Dataset(), true
}

// respondCached serves the view response from freecache when possible, keyed
// by the full request URI.
func (handler *Handler) respondCached(
	w http.ResponseWriter,
	r *http.Request,
	expireSeconds int,
	compute func() (interface{}, error),
) {
	cacheKey := []byte(r.URL.RequestURI())

	if handler.cache != nil {
		if cached, err := handler.cache.Get(cacheKey); err == nil {
			if handler.metricsManager != nil {
				handler.metricsManager.CounterViewCacheHits.Inc()
			}
			pkg.WriteResponseBytes(w, pkg.ContentType.JSON, cached, http.StatusOK)
			return
		}
	}

	response, err := compute()
	if err != nil {
		log.Errorf("failed to compute dashboard view [%s]: %s", r.URL.Path, err)
		http.Error(w, "failed to compute dashboard view", http.StatusInternalServerError)
		return
	}

	responseJson, err := json.Marshal(response)
	if err != nil {
		log.Errorf("failed to marshal dashboard view [%s]: %s", r.URL.Path, err)
		http.Error(w, "failed to marshal dashboard view", http.StatusInternalServerError)
		return
	}

	if handler.cache != nil {
		if err := handler.cache.Set(cacheKey, responseJson, expireSeconds); err != nil {
			log.Warnf("failed to cache dashboard view [%s]: %s", r.URL.Path, err)
		}
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, responseJson, http.StatusOK)
}

func tableQueryFromRequest(r *http.Request) (TableQuery, error) {
	query := DefaultTableQuery()
	params := r.URL.Query()

	query.Exercise = params.Get("exercise")
	query.MuscleGroup = params.Get("group")

	if fromStr := params.Get("from"); fromStr != "" {
		from, err := time.ParseInLocation(workout.DateLayout, fromStr, time.UTC)
		if err != nil {
			return TableQuery{}, errInvalidDateParam("from")
		}
		query.From = &from
	}
	if toStr := params.Get("to"); toStr != "" {
		to, err := time.ParseInLocation(workout.DateLayout, toStr, time.UTC)
		if err != nil {
			return TableQuery{}, errInvalidDateParam("to")
		}
		query.To = &to
	}

	if sortParam := params.Get("sort"); sortParam != "" {
		query.SortBy = TableColumn(sortParam)
		// a fresh column selection sorts ascending, desc is explicit
		query.Descending = params.Get("dir") == "desc"
	}

	return query, nil
}

type errInvalidDateParam string

func (e errInvalidDateParam) Error() string {
	return "invalid date in parameter <" + string(e) + ">, use YYYY-MM-DD"
}
