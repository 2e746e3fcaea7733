package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/aperezm/liftlog/internal/telemetry/tracing"
	"github.com/aperezm/liftlog/internal/workout"
)

type VolumeMode string

const (
	// VolumeModeGroups - one series per muscle group
	VolumeModeGroups VolumeMode = "groups"
	// VolumeModeTotal - a single series over all entries
	VolumeModeTotal VolumeMode = "total"
)

func ParseVolumeMode(s string) (VolumeMode, error) {
	switch VolumeMode(s) {
	case "":
		return VolumeModeGroups, nil
	case VolumeModeGroups:
		return VolumeModeGroups, nil
	case VolumeModeTotal:
		return VolumeModeTotal, nil
	default:
		return "", fmt.Errorf("unknown volume mode: %s", s)
	}
}

type VolumeSeries struct {
	Label  string    `json:"label"`
	Color  string    `json:"color"`
	Values []float64 `json:"values"`
}

type VolumeResponse struct {
	Mode   VolumeMode     `json:"mode"`
	Dates  []string       `json:"dates"`
	Series []VolumeSeries `json:"series"`
}

// TrainingVolume sums volume (weight x reps) per day, either split by muscle
// group or as one total series.
func TrainingVolume(
	ctx context.Context,
	dataset *workout.Dataset,
	mode VolumeMode,
) *VolumeResponse {
	_, span := tracing.GlobalTracer.Start(ctx, "dashboard.trainingVolume")
	defer span.End()

	days := dataset.Days()
	dayIndex := make(map[time.Time]int, len(days))
	dates := make([]string, len(days))
	for i, day := range days {
		dayIndex[day] = i
		dates[i] = day.Format(workout.DateLayout)
	}

	response := &VolumeResponse{
		Mode:  mode,
		Dates: dates,
	}

	if mode == VolumeModeTotal {
		values := make([]float64, len(days))
		for _, e := range dataset.Entries() {
			values[dayIndex[e.Day()]] += e.Volume
		}
		response.Series = append(response.Series, VolumeSeries{
			Label:  "Total",
			Color:  workout.DefaultSeriesColor,
			Values: values,
		})
		return response
	}

	for _, group := range dataset.MuscleGroups() {
		values := make([]float64, len(days))
		for _, e := range dataset.Entries() {
			if e.MuscleGroup != group {
				continue
			}
			values[dayIndex[e.Day()]] += e.Volume
		}
		response.Series = append(response.Series, VolumeSeries{
			Label:  string(group),
			Color:  group.Color(),
			Values: values,
		})
	}

	return response
}
