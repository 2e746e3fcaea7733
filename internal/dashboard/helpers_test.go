package dashboard_test

import (
	"testing"
	"time"

	"github.com/aperezm/liftlog/internal/workout"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func day(date string) time.Time {
	d, err := time.ParseInLocation(workout.DateLayout, date, time.UTC)
	if err != nil {
		panic(err)
	}
	return d
}

// entry builds a normalized-looking entry; dataset entries must stay in
// ascending date order, same as the normalizer leaves them.
func entry(
	date string,
	group workout.MuscleGroup,
	exercise string,
	setNumber int,
	weightKg float64,
	reps int,
) workout.Entry {
	return workout.Entry{
		Date:        day(date),
		MuscleGroup: group,
		Exercise:    exercise,
		SetNumber:   setNumber,
		WeightKg:    weightKg,
		Reps:        reps,
		Volume:      weightKg * float64(reps),
	}
}

func newTestDataset(t *testing.T, entries ...workout.Entry) *workout.Dataset {
	t.Helper()
	return workout.NewDataset(entries, 0, time.Now())
}

// sampleJanuaryDataset is the small two-workout scenario used across the view
// tests: Remo progresses from 40 to 42 kilos, Curl Martillo shows up once.
func sampleJanuaryDataset(t *testing.T) *workout.Dataset {
	t.Helper()
	return newTestDataset(t,
		entry("2025-01-02", workout.GroupEspalda, "Remo", 1, 40, 12),
		entry("2025-01-05", workout.GroupEspalda, "Remo", 1, 40, 12),
		entry("2025-01-05", workout.GroupEspalda, "Remo", 2, 42, 12),
		entry("2025-01-05", workout.GroupBiceps, "Curl Martillo", 1, 10, 12),
	)
}
