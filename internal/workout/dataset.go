package workout

import (
	"sort"
	"time"
)

// Dataset is the immutable working set shared by all dashboard views. It is
// built once per load and only ever read afterwards, so no locking is needed.
type Dataset struct {
	entries  []Entry
	skipped  int
	loadedAt time.Time
}

func NewDataset(entries []Entry, skipped int, loadedAt time.Time) *Dataset {
	return &Dataset{
		entries:  entries,
		skipped:  skipped,
		loadedAt: loadedAt,
	}
}

// Entries returns the normalized entries, ascending by date.
// Callers must treat the returned slice as read-only.
func (d *Dataset) Entries() []Entry {
	return d.entries
}

func (d *Dataset) Len() int {
	return len(d.entries)
}

func (d *Dataset) IsEmpty() bool {
	return len(d.entries) == 0
}

// SkippedRows is the number of input rows dropped during normalization.
func (d *Dataset) SkippedRows() int {
	return d.skipped
}

func (d *Dataset) LoadedAt() time.Time {
	return d.loadedAt
}

// Exercises returns the distinct exercise names, sorted alphabetically.
// Exercise identity is case- and whitespace-sensitive: "press banca" and
// "Press Banca" are two different exercises.
func (d *Dataset) Exercises() []string {
	seen := make(map[string]struct{})
	var exercises []string
	for _, e := range d.entries {
		if _, ok := seen[e.Exercise]; ok {
			continue
		}
		seen[e.Exercise] = struct{}{}
		exercises = append(exercises, e.Exercise)
	}
	sort.Strings(exercises)
	return exercises
}

// Days returns the distinct workout days, ascending. This is the common
// x-axis domain for all time series views.
func (d *Dataset) Days() []time.Time {
	seen := make(map[time.Time]struct{})
	var days []time.Time
	for _, e := range d.entries {
		day := e.Day()
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	// entries are sorted ascending, so the distinct days already are too
	return days
}

// MuscleGroups returns the distinct muscle groups present in the dataset, in
// the fixed display order, with any group outside the closed set appended
// alphabetically at the end.
func (d *Dataset) MuscleGroups() []MuscleGroup {
	present := make(map[MuscleGroup]struct{})
	for _, e := range d.entries {
		present[e.MuscleGroup] = struct{}{}
	}

	var groups []MuscleGroup
	for _, mg := range DisplayOrder {
		if _, ok := present[mg]; ok {
			groups = append(groups, mg)
			delete(present, mg)
		}
	}

	var unknown []MuscleGroup
	for mg := range present {
		unknown = append(unknown, mg)
	}
	sort.Slice(unknown, func(i, j int) bool { return unknown[i] < unknown[j] })

	return append(groups, unknown...)
}

// ExerciseGroup returns the muscle group of the given exercise, taken from
// its first entry.
func (d *Dataset) ExerciseGroup(exercise string) MuscleGroup {
	for _, e := range d.entries {
		if e.Exercise == exercise {
			return e.MuscleGroup
		}
	}
	return ""
}
