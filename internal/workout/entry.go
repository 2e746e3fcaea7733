package workout

import (
	"strings"
	"time"
)

// MuscleGroup is one of the six fixed training-target categories used for
// grouping and coloring. Values coming from the CSV that are not part of the
// closed set are kept as-is and fall back to the default color.
type MuscleGroup string

const (
	GroupPecho   MuscleGroup = "Pecho"
	GroupEspalda MuscleGroup = "Espalda"
	GroupPierna  MuscleGroup = "Pierna"
	GroupHombro  MuscleGroup = "Hombro"
	GroupBiceps  MuscleGroup = "Biceps"
	GroupTriceps MuscleGroup = "Triceps"
)

// DisplayOrder is the fixed order in which muscle groups appear in the
// personal records listing and in grouped series.
var DisplayOrder = []MuscleGroup{
	GroupPecho,
	GroupEspalda,
	GroupPierna,
	GroupHombro,
	GroupBiceps,
	GroupTriceps,
}

const DefaultSeriesColor = "#9e9e9e"

var muscleGroupColors = map[MuscleGroup]string{
	GroupPecho:   "#e53935",
	GroupEspalda: "#1e88e5",
	GroupPierna:  "#43a047",
	GroupHombro:  "#fb8c00",
	GroupBiceps:  "#8e24aa",
	GroupTriceps: "#00acc1",
}

// Color returns the fixed series color for the group, or the default color
// for groups outside the closed set.
func (mg MuscleGroup) Color() string {
	if c, ok := muscleGroupColors[mg]; ok {
		return c
	}
	return DefaultSeriesColor
}

// Known reports whether the group belongs to the closed six-value set.
func (mg MuscleGroup) Known() bool {
	_, ok := muscleGroupColors[mg]
	return ok
}

func ParseMuscleGroup(s string) MuscleGroup {
	return MuscleGroup(strings.TrimSpace(s))
}

// Entry is one recorded set: one row of the workouts CSV.
// Entries are never mutated after normalization.
type Entry struct {
	Date        time.Time   `json:"date"`
	WorkoutDay  int         `json:"workoutDay"`
	MuscleGroup MuscleGroup `json:"muscleGroup"`
	Exercise    string      `json:"exercise"`
	SetNumber   int         `json:"setNumber"`
	WeightKg    float64     `json:"weightKg"`
	Reps        int         `json:"reps"`
	ToFailure   bool        `json:"toFailure"`
	Notes       string      `json:"notes,omitempty"`
	// Volume is weightKg * reps, derived during normalization
	Volume float64 `json:"volume"`
}

// Bodyweight reports whether the set was done with no added weight;
// a weight of exactly 0 is the bodyweight sentinel, not missing data.
func (e Entry) Bodyweight() bool {
	return e.WeightKg == 0
}

// Day returns the entry date truncated to day granularity.
func (e Entry) Day() time.Time {
	return time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), 0, 0, 0, 0, time.UTC)
}
