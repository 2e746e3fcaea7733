package dashboard_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aperezm/liftlog/internal/dashboard"
	"github.com/aperezm/liftlog/internal/workout"
)

func TestParseVolumeMode(t *testing.T) {
	mode, err := dashboard.ParseVolumeMode("")
	require.NoError(t, err)
	assert.Equal(t, dashboard.VolumeModeGroups, mode)

	mode, err = dashboard.ParseVolumeMode("groups")
	require.NoError(t, err)
	assert.Equal(t, dashboard.VolumeModeGroups, mode)

	mode, err = dashboard.ParseVolumeMode("total")
	require.NoError(t, err)
	assert.Equal(t, dashboard.VolumeModeTotal, mode)

	_, err = dashboard.ParseVolumeMode("weekly")
	assert.Error(t, err)
}

func TestTrainingVolume_Total(t *testing.T) {
	dataset := sampleJanuaryDataset(t)

	response := dashboard.TrainingVolume(
		context.Background(), dataset, dashboard.VolumeModeTotal,
	)

	assert.Equal(t, dashboard.VolumeModeTotal, response.Mode)
	assert.Equal(t, []string{"2025-01-02", "2025-01-05"}, response.Dates)
	require.Len(t, response.Series, 1)

	total := response.Series[0]
	assert.Equal(t, "Total", total.Label)
	assert.Equal(t, workout.DefaultSeriesColor, total.Color)
	// jan 5th: 40x12 + 42x12 + 10x12 = 1104
	assert.Equal(t, []float64{480, 1104}, total.Values)
}

func TestTrainingVolume_Groups(t *testing.T) {
	dataset := sampleJanuaryDataset(t)

	response := dashboard.TrainingVolume(
		context.Background(), dataset, dashboard.VolumeModeGroups,
	)

	assert.Equal(t, dashboard.VolumeModeGroups, response.Mode)
	require.Len(t, response.Series, 2)

	espalda := response.Series[0]
	assert.Equal(t, "Espalda", espalda.Label)
	assert.Equal(t, workout.GroupEspalda.Color(), espalda.Color)
	assert.Equal(t, []float64{480, 984}, espalda.Values)

	biceps := response.Series[1]
	assert.Equal(t, "Biceps", biceps.Label)
	assert.Equal(t, workout.GroupBiceps.Color(), biceps.Color)
	assert.Equal(t, []float64{0, 120}, biceps.Values)
}

func TestTrainingVolume_GroupSeriesFollowDisplayOrder(t *testing.T) {
	dataset := newTestDataset(t,
		entry("2025-03-01", workout.GroupTriceps, "Fondos", 1, 0, 10),
		entry("2025-03-02", workout.GroupPecho, "Press Banca", 1, 60, 8),
	)

	response := dashboard.TrainingVolume(
		context.Background(), dataset, dashboard.VolumeModeGroups,
	)

	require.Len(t, response.Series, 2)
	assert.Equal(t, "Pecho", response.Series[0].Label)
	assert.Equal(t, "Triceps", response.Series[1].Label)
}
