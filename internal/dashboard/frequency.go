package dashboard

import (
	"context"
	"sort"
	"time"

	"github.com/aperezm/liftlog/internal/telemetry/tracing"
	"github.com/aperezm/liftlog/internal/workout"
)

// FrequencyWindowDays is the fixed trailing window of the training calendar:
// 12 weeks, one cell per day, counted back from today inclusive.
const FrequencyWindowDays = 84

type FrequencyDay struct {
	Date         string   `json:"date"`
	Sets         int      `json:"sets"`
	Level        int      `json:"level"`
	MuscleGroups []string `json:"muscleGroups,omitempty"`
	RestDay      bool     `json:"restDay"`
}

type FrequencyLegendItem struct {
	Level int    `json:"level"`
	Label string `json:"label"`
}

type FrequencyResponse struct {
	Days   []FrequencyDay        `json:"days"`
	Legend []FrequencyLegendItem `json:"legend"`
}

// FrequencyLegend lists the intensity levels low to high.
var FrequencyLegend = []FrequencyLegendItem{
	{Level: 0, Label: "rest"},
	{Level: 1, Label: "light"},
	{Level: 2, Label: "moderate"},
	{Level: 3, Label: "hard"},
	{Level: 4, Label: "very hard"},
}

// TrainingFrequency renders the trailing 12 weeks as one cell per calendar
// day, regardless of whether the dataset covers that range. Days without any
// sets are rest days at level 0.
func TrainingFrequency(
	ctx context.Context,
	dataset *workout.Dataset,
	now time.Time,
) *FrequencyResponse {
	_, span := tracing.GlobalTracer.Start(ctx, "dashboard.trainingFrequency")
	defer span.End()

	type dayAggregate struct {
		sets   int
		groups map[workout.MuscleGroup]struct{}
	}

	perDay := make(map[time.Time]*dayAggregate)
	for _, e := range dataset.Entries() {
		day := e.Day()
		agg, ok := perDay[day]
		if !ok {
			agg = &dayAggregate{groups: make(map[workout.MuscleGroup]struct{})}
			perDay[day] = agg
		}
		agg.sets++
		agg.groups[e.MuscleGroup] = struct{}{}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := today.AddDate(0, 0, -(FrequencyWindowDays - 1))

	response := &FrequencyResponse{
		Days:   make([]FrequencyDay, 0, FrequencyWindowDays),
		Legend: FrequencyLegend,
	}

	for day := start; !day.After(today); day = day.AddDate(0, 0, 1) {
		cell := FrequencyDay{
			Date:    day.Format(workout.DateLayout),
			RestDay: true,
		}
		if agg, ok := perDay[day]; ok {
			cell.Sets = agg.sets
			cell.Level = levelForSets(agg.sets)
			cell.MuscleGroups = orderedGroupNames(agg.groups)
			cell.RestDay = agg.sets == 0
		}
		response.Days = append(response.Days, cell)
	}

	return response
}

// levelForSets maps a day's total set count to a discrete intensity level:
// 0 -> 0 (rest), 1-10 -> 1, 11-20 -> 2, 21-30 -> 3, 31+ -> 4.
func levelForSets(sets int) int {
	switch {
	case sets <= 0:
		return 0
	case sets <= 10:
		return 1
	case sets <= 20:
		return 2
	case sets <= 30:
		return 3
	default:
		return 4
	}
}

// orderedGroupNames lists the day's muscle groups in display order, with
// groups outside the closed set appended alphabetically.
func orderedGroupNames(groups map[workout.MuscleGroup]struct{}) []string {
	var names []string
	for _, mg := range workout.DisplayOrder {
		if _, ok := groups[mg]; ok {
			names = append(names, string(mg))
			delete(groups, mg)
		}
	}

	var unknown []string
	for mg := range groups {
		unknown = append(unknown, string(mg))
	}
	sort.Strings(unknown)

	return append(names, unknown...)
}
