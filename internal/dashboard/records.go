package dashboard

import (
	"context"
	"sort"
	"strconv"

	"github.com/aperezm/liftlog/internal/telemetry/tracing"
	"github.com/aperezm/liftlog/internal/workout"
)

// RankedRecords is how many records per muscle group get a rank badge.
const RankedRecords = 3

type PersonalRecord struct {
	Exercise      string  `json:"exercise"`
	WeightKg      float64 `json:"weightKg"`
	WeightDisplay string  `json:"weightDisplay"`
	Reps          int     `json:"reps"`
	Date          string  `json:"date"`
	Bodyweight    bool    `json:"bodyweight"`
	// Rank is 1..3 for the top records of the group, 0 otherwise
	Rank int `json:"rank,omitempty"`
}

type RecordsGroup struct {
	MuscleGroup workout.MuscleGroup `json:"muscleGroup"`
	Records     []PersonalRecord    `json:"records"`
}

type RecordsResponse struct {
	Groups []RecordsGroup `json:"groups"`
}

// PersonalRecords finds, for every distinct exercise, the single heaviest set
// ever recorded. Ties on weight keep the earliest-dated set. Results are
// grouped by muscle group in the fixed display order; groups with no records
// are omitted.
func PersonalRecords(ctx context.Context, dataset *workout.Dataset) *RecordsResponse {
	_, span := tracing.GlobalTracer.Start(ctx, "dashboard.personalRecords")
	defer span.End()

	// entries are ascending by date, so a strict > comparison keeps the
	// first (earliest) occurrence of the max weight
	best := make(map[string]workout.Entry)
	var exerciseOrder []string
	for _, e := range dataset.Entries() {
		current, ok := best[e.Exercise]
		if !ok {
			best[e.Exercise] = e
			exerciseOrder = append(exerciseOrder, e.Exercise)
			continue
		}
		if e.WeightKg > current.WeightKg {
			best[e.Exercise] = e
		}
	}

	perGroup := make(map[workout.MuscleGroup][]PersonalRecord)
	for _, exercise := range exerciseOrder {
		e := best[exercise]
		perGroup[e.MuscleGroup] = append(perGroup[e.MuscleGroup], PersonalRecord{
			Exercise:      e.Exercise,
			WeightKg:      e.WeightKg,
			WeightDisplay: WeightDisplay(e.WeightKg),
			Reps:          e.Reps,
			Date:          e.Day().Format(workout.DateLayout),
			Bodyweight:    e.Bodyweight(),
		})
	}

	response := &RecordsResponse{}
	for _, group := range dataset.MuscleGroups() {
		records, ok := perGroup[group]
		if !ok {
			continue
		}

		sortRecordsByWeightDesc(records)
		for i := range records {
			if i < RankedRecords {
				records[i].Rank = i + 1
			}
		}

		response.Groups = append(response.Groups, RecordsGroup{
			MuscleGroup: group,
			Records:     records,
		})
	}

	return response
}

func sortRecordsByWeightDesc(records []PersonalRecord) {
	// insertion-order (= first-achieved) is kept for equal weights
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].WeightKg > records[j].WeightKg
	})
}

// WeightDisplay renders a weight for the UI; exactly 0 is the bodyweight
// sentinel and never shows as "0 kg".
func WeightDisplay(weightKg float64) string {
	if weightKg == 0 {
		return "BW"
	}
	return strconv.FormatFloat(weightKg, 'f', -1, 64) + " kg"
}
