package workout

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const DateLayout = "2006-01-02"

// required CSV header columns, by name; the column order in the file is not
// fixed, the header row drives the field mapping
var requiredColumns = []string{"date", "exercise", "weight_kg", "reps"}

// NormalizeResult holds the normalized working set plus the number of input
// rows that did not survive validation. Invalid rows are dropped silently per
// row, the total is surfaced through metrics and the status endpoint.
type NormalizeResult struct {
	Entries []Entry
	Skipped int
}

// Normalize turns raw CSV records (header row first) into the canonical,
// ascending-by-date, immutable working set.
//
// A row is kept only if date, exercise, weight_kg and reps > 0 are all
// present and parseable; future-dated rows are excluded. Everything else
// (workout_day, set_number, to_failure, notes) is coerced leniently and never
// invalidates the row.
func Normalize(records [][]string, now time.Time) (*NormalizeResult, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no records, not even a header row")
	}

	col, err := headerIndex(records[0])
	if err != nil {
		return nil, err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	result := &NormalizeResult{}
	for _, record := range records[1:] {
		entry, ok := normalizeRow(record, col)
		if !ok {
			result.Skipped++
			continue
		}
		// no future workouts
		if entry.Day().After(today) {
			result.Skipped++
			continue
		}
		result.Entries = append(result.Entries, entry)
	}

	// stable: rows of the same day keep their file order, which is what the
	// personal records tie-break relies on
	sort.SliceStable(result.Entries, func(i, j int) bool {
		return result.Entries[i].Date.Before(result.Entries[j].Date)
	})

	if result.Skipped > 0 {
		log.Warnf("normalize workouts: %d invalid rows dropped", result.Skipped)
	}

	return result, nil
}

func headerIndex(header []string) (map[string]int, error) {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range requiredColumns {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("workouts csv header: missing column %q", required)
		}
	}
	return col, nil
}

func normalizeRow(record []string, col map[string]int) (Entry, bool) {
	field := func(name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	dateStr := strings.TrimSpace(field("date"))
	if dateStr == "" {
		return Entry{}, false
	}
	date, err := time.ParseInLocation(DateLayout, dateStr, time.UTC)
	if err != nil {
		return Entry{}, false
	}

	exercise := strings.TrimSpace(field("exercise"))
	if exercise == "" {
		return Entry{}, false
	}

	weightStr := strings.TrimSpace(field("weight_kg"))
	if weightStr == "" {
		return Entry{}, false
	}
	weightKg, err := strconv.ParseFloat(weightStr, 64)
	if err != nil || weightKg < 0 {
		return Entry{}, false
	}

	reps, err := strconv.Atoi(strings.TrimSpace(field("reps")))
	if err != nil || reps <= 0 {
		return Entry{}, false
	}

	// optional fields, a parse failure just leaves the zero value
	workoutDay, _ := strconv.Atoi(strings.TrimSpace(field("workout_day")))
	setNumber, _ := strconv.Atoi(strings.TrimSpace(field("set_number")))

	return Entry{
		Date:        date,
		WorkoutDay:  workoutDay,
		MuscleGroup: ParseMuscleGroup(field("muscle_group")),
		Exercise:    exercise,
		SetNumber:   setNumber,
		WeightKg:    weightKg,
		Reps:        reps,
		ToFailure:   strings.TrimSpace(field("to_failure")) == "Yes",
		Notes:       strings.TrimSpace(field("notes")),
		Volume:      weightKg * float64(reps),
	}, true
}
