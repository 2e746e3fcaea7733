package dashboard

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aperezm/liftlog/internal/telemetry/tracing"
	"github.com/aperezm/liftlog/internal/workout"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type TableColumn string

const (
	ColumnDate        TableColumn = "date"
	ColumnWorkoutDay  TableColumn = "workoutDay"
	ColumnMuscleGroup TableColumn = "muscleGroup"
	ColumnExercise    TableColumn = "exercise"
	ColumnSetNumber   TableColumn = "setNumber"
	ColumnWeight      TableColumn = "weightKg"
	ColumnReps        TableColumn = "reps"
	ColumnToFailure   TableColumn = "toFailure"
	ColumnNotes       TableColumn = "notes"
	ColumnVolume      TableColumn = "volume"
)

// GroupFilterAll is the muscle group wildcard: no group filtering.
const GroupFilterAll = "all"

// TableQuery describes the raw table filters and sort. Filters compose with
// logical AND; empty values mean "no filter".
type TableQuery struct {
	// Exercise filters by case-insensitive substring match
	Exercise string
	// MuscleGroup filters by exact match; "" or "all" disables the filter
	MuscleGroup string
	// From / To bound the date range, inclusive, either side optional
	From *time.Time
	To   *time.Time

	SortBy     TableColumn
	Descending bool
}

// DefaultTableQuery - no filters, sorted by date descending.
func DefaultTableQuery() TableQuery {
	return TableQuery{
		SortBy:     ColumnDate,
		Descending: true,
	}
}

type TableRow struct {
	workout.Entry
	WeightDisplay string `json:"weightDisplay"`
}

type TableResponse struct {
	Rows []TableRow `json:"rows"`
	// Total is the full dataset size, Filtered how many rows matched; the UI
	// uses the pair to render "showing all N" vs "showing M of N"
	Total    int `json:"total"`
	Filtered int `json:"filtered"`
}

// FilterAndSort produces the raw data table view: every normalized entry that
// matches all active filters, sorted by a single column.
func FilterAndSort(
	ctx context.Context,
	dataset *workout.Dataset,
	query TableQuery,
) (*TableResponse, error) {
	_, span := tracing.GlobalTracer.Start(ctx, "dashboard.tableFilterAndSort")
	defer span.End()

	var matched []workout.Entry
	for _, e := range dataset.Entries() {
		if matchesTableQuery(e, query) {
			matched = append(matched, e)
		}
	}

	if err := sortEntries(matched, query.SortBy, query.Descending); err != nil {
		return nil, err
	}

	rows := make([]TableRow, 0, len(matched))
	for _, e := range matched {
		rows = append(rows, TableRow{
			Entry:         e,
			WeightDisplay: WeightDisplay(e.WeightKg),
		})
	}

	return &TableResponse{
		Rows:     rows,
		Total:    dataset.Len(),
		Filtered: len(rows),
	}, nil
}

func matchesTableQuery(e workout.Entry, query TableQuery) bool {
	if query.Exercise != "" &&
		!strings.Contains(strings.ToLower(e.Exercise), strings.ToLower(query.Exercise)) {
		return false
	}

	if query.MuscleGroup != "" && !strings.EqualFold(query.MuscleGroup, GroupFilterAll) &&
		string(e.MuscleGroup) != query.MuscleGroup {
		return false
	}

	day := e.Day()
	if query.From != nil && day.Before(*query.From) {
		return false
	}
	if query.To != nil && day.After(*query.To) {
		return false
	}

	return true
}

func sortEntries(entries []workout.Entry, column TableColumn, descending bool) error {
	var less func(a, b workout.Entry) bool

	switch column {
	case ColumnDate:
		less = func(a, b workout.Entry) bool { return a.Date.Before(b.Date) }
	case ColumnWorkoutDay:
		less = func(a, b workout.Entry) bool { return a.WorkoutDay < b.WorkoutDay }
	case ColumnSetNumber:
		less = func(a, b workout.Entry) bool { return a.SetNumber < b.SetNumber }
	case ColumnWeight:
		less = func(a, b workout.Entry) bool { return a.WeightKg < b.WeightKg }
	case ColumnReps:
		less = func(a, b workout.Entry) bool { return a.Reps < b.Reps }
	case ColumnVolume:
		less = func(a, b workout.Entry) bool { return a.Volume < b.Volume }
	case ColumnToFailure:
		less = func(a, b workout.Entry) bool { return !a.ToFailure && b.ToFailure }
	case ColumnMuscleGroup, ColumnExercise, ColumnNotes:
		// the site content is Spanish, so text columns collate accordingly;
		// collators are not safe for concurrent use, hence one per call
		collator := collate.New(language.Spanish, collate.IgnoreCase)
		text := textColumnValue(column)
		less = func(a, b workout.Entry) bool {
			return collator.CompareString(text(a), text(b)) < 0
		}
	default:
		return fmt.Errorf("unknown table column: %s", column)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if descending {
			return less(entries[j], entries[i])
		}
		return less(entries[i], entries[j])
	})

	return nil
}

func textColumnValue(column TableColumn) func(workout.Entry) string {
	switch column {
	case ColumnMuscleGroup:
		return func(e workout.Entry) string { return string(e.MuscleGroup) }
	case ColumnNotes:
		return func(e workout.Entry) string { return e.Notes }
	default:
		return func(e workout.Entry) string { return e.Exercise }
	}
}
