package dashboard_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aperezm/liftlog/internal/dashboard"
	"github.com/aperezm/liftlog/internal/workout"
)

func TestTrainingFrequency(t *testing.T) {
	now := day("2025-01-10").Add(15 * time.Hour) // mid-day, must truncate to the day
	dataset := sampleJanuaryDataset(t)

	response := dashboard.TrainingFrequency(context.Background(), dataset, now)

	require.Len(t, response.Days, dashboard.FrequencyWindowDays)
	assert.Equal(t, dashboard.FrequencyLegend, response.Legend)

	// window is 84 days counted back from today inclusive
	assert.Equal(t, "2024-10-19", response.Days[0].Date)
	assert.Equal(t, "2025-01-10", response.Days[len(response.Days)-1].Date)

	byDate := make(map[string]dashboard.FrequencyDay)
	for _, cell := range response.Days {
		byDate[cell.Date] = cell
	}

	jan5 := byDate["2025-01-05"]
	assert.Equal(t, 3, jan5.Sets)
	assert.Equal(t, 1, jan5.Level)
	assert.False(t, jan5.RestDay)
	assert.Equal(t, []string{"Espalda", "Biceps"}, jan5.MuscleGroups)

	jan2 := byDate["2025-01-02"]
	assert.Equal(t, 1, jan2.Sets)
	assert.False(t, jan2.RestDay)

	jan3 := byDate["2025-01-03"]
	assert.Equal(t, 0, jan3.Sets)
	assert.Equal(t, 0, jan3.Level)
	assert.True(t, jan3.RestDay)
	assert.Empty(t, jan3.MuscleGroups)
}

func TestTrainingFrequency_EntriesOutsideWindow(t *testing.T) {
	now := day("2025-06-01")
	dataset := sampleJanuaryDataset(t) // all of january, far before the window

	response := dashboard.TrainingFrequency(context.Background(), dataset, now)

	require.Len(t, response.Days, dashboard.FrequencyWindowDays)
	for _, cell := range response.Days {
		assert.True(t, cell.RestDay, "day %s should be a rest day", cell.Date)
	}
}

func TestTrainingFrequency_LevelThresholds(t *testing.T) {
	now := day("2025-01-31")

	// one workout day per set count, each on its own date
	setCounts := map[string]int{
		"2025-01-10": 1,
		"2025-01-11": 10,
		"2025-01-12": 11,
		"2025-01-13": 20,
		"2025-01-14": 21,
		"2025-01-15": 30,
		"2025-01-16": 31,
		"2025-01-17": 45,
	}
	wantLevels := map[string]int{
		"2025-01-10": 1,
		"2025-01-11": 1,
		"2025-01-12": 2,
		"2025-01-13": 2,
		"2025-01-14": 3,
		"2025-01-15": 3,
		"2025-01-16": 4,
		"2025-01-17": 4,
	}

	var entries []workout.Entry
	for _, date := range []string{
		"2025-01-10", "2025-01-11", "2025-01-12", "2025-01-13",
		"2025-01-14", "2025-01-15", "2025-01-16", "2025-01-17",
	} {
		for set := 1; set <= setCounts[date]; set++ {
			entries = append(entries, entry(date, workout.GroupPierna, "Sentadilla", set, 80, 5))
		}
	}
	dataset := newTestDataset(t, entries...)

	response := dashboard.TrainingFrequency(context.Background(), dataset, now)

	byDate := make(map[string]dashboard.FrequencyDay)
	for _, cell := range response.Days {
		byDate[cell.Date] = cell
	}
	for date, wantLevel := range wantLevels {
		cell := byDate[date]
		assert.Equal(t, setCounts[date], cell.Sets, "sets on %s", date)
		assert.Equal(t, wantLevel, cell.Level, "level on %s", date)
	}
}
