package analytics

import (
	"testing"

	"github.com/JonnyWalker81/checkin/backend/internal/models"
)

var testToday = models.NewDate(2026, 10, 19)

func intPtr(v int) *int {
	return &v
}

// checkin builds a record for day with the given scores
func checkin(day models.Date, mood, craving, stress int, energy *int, coping ...string) models.Checkin {
	return models.Checkin{
		UserID:           "user-1",
		Mood:             mood,
		Craving:          craving,
		Stress:           stress,
		Energy:           energy,
		CopingActivities: coping,
		Date:             day.Start(nil),
	}
}

// mustSeries aggregates records and builds the series over [from, to]
func mustSeries(t *testing.T, from, to models.Date, records ...models.Checkin) Series {
	t.Helper()
	series, err := BuildSeries(from, to, Aggregate(records, nil))
	if err != nil {
		t.Fatalf("BuildSeries() error = %v", err)
	}
	return series
}

func assertFloatPtr(t *testing.T, name string, got *float64, want *float64) {
	t.Helper()
	switch {
	case got == nil && want == nil:
	case got == nil || want == nil:
		t.Errorf("%s = %v, want %v", name, fmtPtr(got), fmtPtr(want))
	case *got != *want:
		t.Errorf("%s = %v, want %v", name, *got, *want)
	}
}

func fmtPtr(v *float64) any {
	if v == nil {
		return "nil"
	}
	return *v
}

func f(v float64) *float64 {
	return &v
}
