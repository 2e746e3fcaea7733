package dashboard

import (
	"context"
	"time"

	"github.com/aperezm/liftlog/internal/workout"

	log "github.com/sirupsen/logrus"
)

type State string

const (
	StateReady  State = "ready"
	StateEmpty  State = "empty"
	StateFailed State = "failed"
)

type Status struct {
	State       State      `json:"state"`
	Entries     int        `json:"entries"`
	SkippedRows int        `json:"skippedRows"`
	LoadedAt    *time.Time `json:"loadedAt,omitempty"`
}

// Service owns the workout dataset for the lifetime of the process. The
// dataset is built exactly once, at startup; a failed or empty load is a
// terminal state until the service is restarted, which matches the
// hand-edit-and-redeploy lifecycle of the source CSV.
type Service struct {
	dataset *workout.Dataset
	loadErr error
}

func NewService(ctx context.Context, loader *workout.Loader) *Service {
	dataset, err := loader.Load(ctx, time.Now())
	if err != nil {
		log.Errorf("load workout dataset: %s", err)
		return &Service{loadErr: err}
	}

	if dataset.IsEmpty() {
		log.Warnf("workout dataset loaded but no entries survived normalization")
	} else {
		log.Infof("workout dataset loaded: %d entries, %d rows skipped", dataset.Len(), dataset.SkippedRows())
	}

	return &Service{dataset: dataset}
}

// NewServiceWithDataset skips the loading step, for wiring a prebuilt dataset.
func NewServiceWithDataset(dataset *workout.Dataset) *Service {
	return &Service{dataset: dataset}
}

func (s *Service) Dataset() *workout.Dataset {
	return s.dataset
}

func (s *Service) Status() Status {
	switch {
	case s.loadErr != nil:
		return Status{State: StateFailed}
	case s.dataset.IsEmpty():
		loadedAt := s.dataset.LoadedAt()
		return Status{
			State:       StateEmpty,
			SkippedRows: s.dataset.SkippedRows(),
			LoadedAt:    &loadedAt,
		}
	default:
		loadedAt := s.dataset.LoadedAt()
		return Status{
			State:       StateReady,
			Entries:     s.dataset.Len(),
			SkippedRows: s.dataset.SkippedRows(),
			LoadedAt:    &loadedAt,
		}
	}
}
