package dashboard

import (
	"context"
	"time"

	"github.com/aperezm/liftlog/internal/telemetry/tracing"
	"github.com/aperezm/liftlog/internal/workout"
)

// DefaultProgressionExercises is how many exercises the progression chart
// preselects when the client gives no explicit selection.
const DefaultProgressionExercises = 3

type ProgressionSeries struct {
	Exercise    string              `json:"exercise"`
	MuscleGroup workout.MuscleGroup `json:"muscleGroup"`
	Color       string              `json:"color"`
	// MaxKilos is aligned with the response dates; nil marks a day the
	// exercise was not trained, so the series renders with gaps
	MaxKilos []*float64 `json:"maxKilos"`
}

type ProgressionResponse struct {
	// Dates is the union of all workout dates in the whole dataset, not just
	// the selected exercises, so all series share a common timeline
	Dates  []string            `json:"dates"`
	Series []ProgressionSeries `json:"series"`
}

// DefaultProgressionSelection returns the first three exercises in
// alphabetical order, or fewer if less than three exist.
func DefaultProgressionSelection(dataset *workout.Dataset) []string {
	exercises := dataset.Exercises()
	if len(exercises) > DefaultProgressionExercises {
		exercises = exercises[:DefaultProgressionExercises]
	}
	return exercises
}

// WeightProgression produces one time series per selected exercise: for each
// calendar day the exercise was trained, the heaviest weight of that day.
func WeightProgression(
	ctx context.Context,
	dataset *workout.Dataset,
	selected []string,
) *ProgressionResponse {
	_, span := tracing.GlobalTracer.Start(ctx, "dashboard.weightProgression")
	defer span.End()

	days := dataset.Days()
	dayIndex := make(map[time.Time]int, len(days))
	dates := make([]string, len(days))
	for i, day := range days {
		dayIndex[day] = i
		dates[i] = day.Format(workout.DateLayout)
	}

	response := &ProgressionResponse{Dates: dates}
	for _, exercise := range selected {
		series := ProgressionSeries{
			Exercise:    exercise,
			MuscleGroup: dataset.ExerciseGroup(exercise),
			MaxKilos:    make([]*float64, len(days)),
		}
		series.Color = series.MuscleGroup.Color()

		for _, e := range dataset.Entries() {
			if e.Exercise != exercise {
				continue
			}
			i := dayIndex[e.Day()]
			if series.MaxKilos[i] == nil || e.WeightKg > *series.MaxKilos[i] {
				kilos := e.WeightKg
				series.MaxKilos[i] = &kilos
			}
		}

		response.Series = append(response.Series, series)
	}

	return response
}
