package workout

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aperezm/liftlog/internal/telemetry/metrics"
	"github.com/aperezm/liftlog/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

// Loader runs the full batch pipeline: fetch CSV -> parse rows -> normalize
// -> immutable Dataset. The whole working set is rebuilt from scratch on
// every load; there is no incremental path.
type Loader struct {
	source         Source
	metricsManager *metrics.Manager
}

func NewLoader(source Source, metricsManager *metrics.Manager) *Loader {
	return &Loader{
		source:         source,
		metricsManager: metricsManager,
	}
}

// Load fetches and normalizes the workouts CSV. A returned error means the
// resource was unreachable or fundamentally unparsable; a non-error empty
// Dataset means the file was fine but nothing survived validation - the two
// conditions get different user-visible outcomes.
func (l *Loader) Load(ctx context.Context, now time.Time) (_ *Dataset, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workout.loader.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	defer func(begin time.Time) {
		if l.metricsManager != nil {
			l.metricsManager.HistDatasetLoadDuration.Observe(time.Since(begin).Seconds())
		}
	}(time.Now())

	body, err := l.source.FetchCSV(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch workouts csv: %w", err)
	}
	defer func() {
		if closeErr := body.Close(); closeErr != nil {
			log.Warnf("close workouts csv: %s", closeErr)
		}
	}()

	records, rowErrors, err := readRecords(body)
	if err != nil {
		return nil, fmt.Errorf("read workouts csv: %w", err)
	}

	result, err := Normalize(records, now)
	if err != nil {
		return nil, fmt.Errorf("normalize workouts: %w", err)
	}
	skipped := result.Skipped + rowErrors

	log.Debugf("workouts csv loaded: %d entries, %d rows skipped", len(result.Entries), skipped)

	if l.metricsManager != nil {
		l.metricsManager.CounterDatasetLoads.Inc()
		l.metricsManager.CounterSkippedCsvRows.Add(float64(skipped))
		l.metricsManager.GaugeWorkoutEntries.Set(float64(len(result.Entries)))
	}

	return NewDataset(result.Entries, skipped, now), nil
}

// readRecords reads all CSV rows, dropping (and counting) rows that are
// malformed at the CSV level, e.g. a stray quote or a wrong field count.
// Only an I/O level failure aborts the whole read.
func readRecords(r io.Reader) (records [][]string, rowErrors int, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // the header check handles short rows

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			rowErrors++
			continue
		}
		if err != nil {
			return nil, 0, err
		}

		records = append(records, record)
	}

	return records, rowErrors, nil
}
