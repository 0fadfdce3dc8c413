package analytics

import (
	"reflect"
	"testing"

	"github.com/JonnyWalker81/checkin/backend/internal/models"
)

func TestPeriodAverages_AreRecordLevel(t *testing.T) {
	series := mustSeries(t, testToday.AddDays(-6), testToday,
		checkin(testToday.AddDays(-1), 2, 6, 4, nil),
		checkin(testToday.AddDays(-1), 4, 6, 4, nil),
		checkin(testToday, 9, 3, 1, intPtr(8)),
	)

	averages, total := PeriodAverages(series)
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	// day-level averaging would give 6.0
	assertFloatPtr(t, "mood", averages.Mood, f(5))
	assertFloatPtr(t, "craving", averages.Craving, f(5))
	assertFloatPtr(t, "stress", averages.Stress, f(3))
	assertFloatPtr(t, "energy", averages.Energy, f(6))
}

func TestPeriodAverages_Empty(t *testing.T) {
	averages, total := PeriodAverages(mustSeries(t, testToday, testToday))
	if total != 0 {
		t.Errorf("total = %d, want 0", total)
	}
	if averages != (models.Averages{}) {
		t.Errorf("expected nil averages, got %+v", averages)
	}
}

func TestBestWorstDays(t *testing.T) {
	from := testToday.AddDays(-4)
	series := mustSeries(t, from, testToday,
		checkin(from, 5, 5, 5, nil),
		checkin(from.AddDays(1), 8, 5, 5, nil),
		checkin(from.AddDays(2), 8, 5, 5, nil),
		checkin(from.AddDays(3), 3, 5, 5, nil),
		checkin(testToday, 3, 5, 5, nil),
	)

	best, worst := BestWorstDays(series)
	if best == nil || worst == nil {
		t.Fatal("expected best and worst days")
	}
	if want := from.AddDays(1); !best.Date.Equal(want) || best.AvgMood != 8 {
		t.Errorf("best = %s (%v), want %s (8)", best.Date, best.AvgMood, want)
	}
	if want := from.AddDays(3); !worst.Date.Equal(want) || worst.AvgMood != 3 {
		t.Errorf("worst = %s (%v), want %s (3)", worst.Date, worst.AvgMood, want)
	}
}

func TestBestWorstDays_UsesUnroundedMeans(t *testing.T) {
	// 7.04 and 7.0 both round to 7.0 but the first is higher
	from := testToday.AddDays(-1)
	records := []models.Checkin{checkin(testToday, 7, 5, 5, nil)}
	for i := 0; i < 24; i++ {
		records = append(records, checkin(from, 7, 5, 5, nil))
	}
	records = append(records, checkin(from, 8, 5, 5, nil))
	series := mustSeries(t, from, testToday, records...)

	best, worst := BestWorstDays(series)
	if !best.Date.Equal(from) {
		t.Errorf("best = %s, want %s", best.Date, from)
	}
	if !worst.Date.Equal(testToday) {
		t.Errorf("worst = %s, want %s", worst.Date, testToday)
	}
}

func TestBestWorstDays_NoData(t *testing.T) {
	best, worst := BestWorstDays(mustSeries(t, testToday.AddDays(-6), testToday))
	if best != nil || worst != nil {
		t.Errorf("expected nil highlights, got %v %v", best, worst)
	}
}

func TestImprovementOf(t *testing.T) {
	tests := []struct {
		name        string
		moods       []int
		wantNil     bool
		wantAbs     float64
		wantPercent *float64
	}{
		{"single day", []int{5}, true, 0, nil},
		{"even split", []int{4, 4, 4, 4, 4, 6, 6, 6, 6, 6}, false, 2, f(50)},
		{"odd count puts extra day in first half", []int{4, 4, 8, 6, 6}, false, 0.7, f(13.1)},
		{"decline", []int{8, 6}, false, -2, f(-25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var records []models.Checkin
			from := testToday.AddDays(-len(tt.moods) + 1)
			for i, m := range tt.moods {
				records = append(records, checkin(from.AddDays(i), m, 5, 5, nil))
			}

			got := ImprovementOf(mustSeries(t, from, testToday, records...))
			if tt.wantNil {
				if got != nil {
					t.Errorf("expected nil improvement, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatal("expected improvement")
			}
			if got.Absolute != tt.wantAbs {
				t.Errorf("Absolute = %v, want %v", got.Absolute, tt.wantAbs)
			}
			assertFloatPtr(t, "percent", got.Percent, tt.wantPercent)
		})
	}
}

func TestImprovementOf_SkipsGaps(t *testing.T) {
	from := testToday.AddDays(-9)
	series := mustSeries(t, from, testToday,
		checkin(from, 4, 5, 5, nil),
		checkin(testToday, 6, 5, 5, nil),
	)

	got := ImprovementOf(series)
	if got == nil || got.Absolute != 2 {
		t.Fatalf("expected improvement of 2, got %+v", got)
	}
}

func TestCorrelations(t *testing.T) {
	tests := []struct {
		name            string
		moods           []int
		cravings        []int
		stresses        []int
		wantMoodCraving *float64
		wantMoodStress  *float64
	}{
		{
			name:            "perfect negative and positive",
			moods:           []int{2, 4, 6},
			cravings:        []int{8, 6, 4},
			stresses:        []int{1, 2, 3},
			wantMoodCraving: f(-1),
			wantMoodStress:  f(1),
		},
		{
			name:            "constant mood is undefined",
			moods:           []int{5, 5},
			cravings:        []int{2, 9},
			stresses:        []int{3, 7},
			wantMoodCraving: nil,
			wantMoodStress:  nil,
		},
		{
			name:            "constant craving is undefined",
			moods:           []int{3, 7},
			cravings:        []int{4, 4},
			stresses:        []int{3, 7},
			wantMoodCraving: nil,
			wantMoodStress:  f(1),
		},
		{
			name:            "single day",
			moods:           []int{5},
			cravings:        []int{5},
			stresses:        []int{5},
			wantMoodCraving: nil,
			wantMoodStress:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from := testToday.AddDays(-len(tt.moods) + 1)
			var records []models.Checkin
			for i := range tt.moods {
				records = append(records, checkin(from.AddDays(i), tt.moods[i], tt.cravings[i], tt.stresses[i], nil))
			}

			got := Correlations(mustSeries(t, from, testToday, records...))
			assertFloatPtr(t, "mood_craving", got.MoodCraving, tt.wantMoodCraving)
			assertFloatPtr(t, "mood_stress", got.MoodStress, tt.wantMoodStress)
		})
	}
}

func TestCorrelations_ConstantAveragedMood(t *testing.T) {
	// three records a day averaging 5/3 each day, so daily mood never varies
	for days := 2; days <= 12; days++ {
		from := testToday.AddDays(-days + 1)
		var records []models.Checkin
		for i := 0; i < days; i++ {
			d := from.AddDays(i)
			craving := 1 + i%9
			records = append(records,
				checkin(d, 1, craving, 2+i%5, nil),
				checkin(d, 1, craving, 2+i%5, nil),
				checkin(d, 3, craving, 2+i%5, nil),
			)
		}

		got := Correlations(mustSeries(t, from, testToday, records...))
		if got.MoodCraving != nil || got.MoodStress != nil {
			t.Errorf("days=%d: mood_craving=%v mood_stress=%v, want nil for constant daily mood",
				days, fmtPtr(got.MoodCraving), fmtPtr(got.MoodStress))
		}
	}
}

func TestPearson_ConstantSeries(t *testing.T) {
	v := 22.0 / 3
	xs := []float64{v, v, v, v, v, v, v}
	ys := []float64{1, 2, 3, 4, 5, 6, 7}

	if got := Pearson(xs, ys); got != nil {
		t.Errorf("Pearson(constant, ys) = %v, want nil", *got)
	}
	if got := Pearson(ys, xs); got != nil {
		t.Errorf("Pearson(ys, constant) = %v, want nil", *got)
	}
}

func TestPearson_Bounded(t *testing.T) {
	tests := []struct {
		name   string
		xs, ys []float64
	}{
		{"near identical", []float64{1, 2, 3, 4}, []float64{1.0000001, 2, 3, 4}},
		{"noisy", []float64{3, 9, 1, 7, 4}, []float64{2, 8, 3, 6, 6}},
		{"inverse", []float64{10, 1}, []float64{1, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Pearson(tt.xs, tt.ys)
			if r == nil {
				t.Fatal("expected a coefficient")
			}
			if *r < -1 || *r > 1 {
				t.Errorf("Pearson() = %v, out of [-1, 1]", *r)
			}
		})
	}

	if r := Pearson([]float64{1, 2}, []float64{1}); r != nil {
		t.Errorf("mismatched lengths should be nil, got %v", *r)
	}
}

func TestTrendDirection(t *testing.T) {
	tests := []struct {
		name    string
		offsets []int
		moods   []int
		want    string
	}{
		{"no data", nil, nil, models.TrendStable},
		{"single day", []int{0}, []int{5}, models.TrendStable},
		{"rising", []int{0, 1, 2}, []int{2, 4, 6}, models.TrendIncreasing},
		{"falling", []int{0, 1, 2}, []int{8, 5, 3}, models.TrendDecreasing},
		{"flat", []int{0, 3, 6}, []int{5, 5, 5}, models.TrendStable},
		{"flat across gap", []int{0, 6}, []int{5, 5}, models.TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from := testToday.AddDays(-6)
			var records []models.Checkin
			for i, off := range tt.offsets {
				records = append(records, checkin(from.AddDays(off), tt.moods[i], 5, 5, nil))
			}

			if got := TrendDirection(mustSeries(t, from, testToday, records...)); got != tt.want {
				t.Errorf("TrendDirection() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMoodTrend(t *testing.T) {
	from := testToday.AddDays(-2)
	trend := MoodTrend(mustSeries(t, from, testToday,
		checkin(from, 4, 5, 5, nil),
		checkin(from, 5, 5, 5, nil),
		checkin(testToday, 9, 5, 5, nil),
	))

	if len(trend) != 3 {
		t.Fatalf("expected 3 points, got %d", len(trend))
	}
	assertFloatPtr(t, "day 0", trend[0].Mood, f(4.5))
	assertFloatPtr(t, "day 1", trend[1].Mood, nil)
	assertFloatPtr(t, "day 2", trend[2].Mood, f(9))
}

func TestSummaryText(t *testing.T) {
	t.Run("no data", func(t *testing.T) {
		got := Window(mustSeries(t, testToday.AddDays(-6), testToday))
		if got.SummaryText != NoDataSummary {
			t.Errorf("SummaryText = %q, want %q", got.SummaryText, NoDataSummary)
		}
	})

	t.Run("single check-in", func(t *testing.T) {
		got := Window(mustSeries(t, testToday.AddDays(-6), testToday,
			checkin(testToday, 8, 3, 2, intPtr(7)),
		))
		want := "Over the selected period you recorded 1 check-in(s). " +
			"Average mood: 8, craving: 3, stress: 2. " +
			"Best day: 2026-10-19 (mood 8). Worst day: 2026-10-19 (mood 8)."
		if got.SummaryText != want {
			t.Errorf("SummaryText =\n%q\nwant\n%q", got.SummaryText, want)
		}
	})

	t.Run("with improvement", func(t *testing.T) {
		got := Window(mustSeries(t, testToday.AddDays(-6), testToday,
			checkin(testToday.AddDays(-1), 4, 6, 5, nil),
			checkin(testToday, 7, 3, 4, nil),
		))
		want := "Over the selected period you recorded 2 check-in(s). " +
			"Average mood: 5.5, craving: 4.5, stress: 4.5. " +
			"Best day: 2026-10-19 (mood 7). Worst day: 2026-10-18 (mood 4). " +
			"Mood change (first→second half): +3."
		if got.SummaryText != want {
			t.Errorf("SummaryText =\n%q\nwant\n%q", got.SummaryText, want)
		}
	})

	t.Run("negative improvement has no plus sign", func(t *testing.T) {
		text := SummaryText(models.WindowInsights{
			TotalCheckins: 2,
			Improvement:   &models.Improvement{Absolute: -1.5},
		})
		want := "Over the selected period you recorded 2 check-in(s). " +
			"Average mood: -, craving: -, stress: -. " +
			"Best day: N/A. Worst day: N/A. " +
			"Mood change (first→second half): -1.5."
		if text != want {
			t.Errorf("SummaryText =\n%q\nwant\n%q", text, want)
		}
	})
}

func TestWindow_Idempotent(t *testing.T) {
	from := testToday.AddDays(-29)
	records := []models.Checkin{
		checkin(from, 3, 8, 7, nil, "walk"),
		checkin(from.AddDays(3), 5, 6, 5, intPtr(4)),
		checkin(from.AddDays(3), 6, 5, 4, nil),
		checkin(from.AddDays(10), 7, 3, 2, intPtr(9), "breathing"),
		checkin(testToday, 8, 2, 2, nil),
	}

	first := Window(mustSeries(t, from, testToday, records...))
	second := Window(mustSeries(t, from, testToday, records...))
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Window() not idempotent:\n%+v\n%+v", first, second)
	}

	dashFirst := Dashboard(mustSeries(t, from, testToday, records...), testToday)
	dashSecond := Dashboard(mustSeries(t, from, testToday, records...), testToday)
	if !reflect.DeepEqual(dashFirst, dashSecond) {
		t.Error("Dashboard() not idempotent")
	}
}
