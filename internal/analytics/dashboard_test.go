package analytics

import (
	"testing"

	"github.com/JonnyWalker81/checkin/backend/internal/models"
)

func TestDashboard_NoCheckins(t *testing.T) {
	series := mustSeries(t, testToday.AddDays(-29), testToday)
	stats := Dashboard(series, testToday)

	if len(stats.DailySeries) != 30 {
		t.Fatalf("expected 30 daily points, got %d", len(stats.DailySeries))
	}
	for _, p := range stats.DailySeries {
		if p.HasData {
			t.Errorf("point %s has data, want none", p.Date)
		}
	}

	totals := stats.Totals
	if totals.TotalDaysWithCheckin != 0 || totals.GoodDays != 0 || totals.BadDays != 0 ||
		totals.CurrentStreak != 0 || totals.BestStreak != 0 {
		t.Errorf("expected zero totals, got %+v", totals)
	}
	assertFloatPtr(t, "quality", totals.AvgCheckinQualityScore, nil)
	assertFloatPtr(t, "high craving", stats.Patterns.AvgMoodOnHighCraving, nil)
	assertFloatPtr(t, "low craving", stats.Patterns.AvgMoodOnLowCraving, nil)
	assertFloatPtr(t, "high stress", stats.Patterns.AvgCravingOnHighStress, nil)
	if stats.AdvancedMetrics.MoodStabilityIndex != nil {
		t.Errorf("stability = %d, want nil", *stats.AdvancedMetrics.MoodStabilityIndex)
	}
	coping := stats.AdvancedMetrics.CopingEffectiveness
	assertFloatPtr(t, "with coping", coping.AvgMoodWithCoping, nil)
	assertFloatPtr(t, "without coping", coping.AvgMoodWithoutCoping, nil)
	assertFloatPtr(t, "difference", coping.Difference, nil)
}

func TestDashboard_SingleGoodDay(t *testing.T) {
	series := mustSeries(t, testToday.AddDays(-29), testToday,
		checkin(testToday, 8, 3, 2, intPtr(7), "breathing"),
	)
	stats := Dashboard(series, testToday)

	totals := stats.Totals
	if totals.GoodDays != 1 || totals.BadDays != 0 || totals.TotalDaysWithCheckin != 1 {
		t.Errorf("expected one good day, got %+v", totals)
	}
	if totals.CurrentStreak != 1 || totals.BestStreak != 1 {
		t.Errorf("streaks = %d/%d, want 1/1", totals.CurrentStreak, totals.BestStreak)
	}
	assertFloatPtr(t, "quality", totals.AvgCheckinQualityScore, f(7.7))
	if stats.AdvancedMetrics.MoodStabilityIndex != nil {
		t.Errorf("stability = %d, want nil with one day", *stats.AdvancedMetrics.MoodStabilityIndex)
	}
	assertFloatPtr(t, "with coping", stats.AdvancedMetrics.CopingEffectiveness.AvgMoodWithCoping, f(8))
	assertFloatPtr(t, "difference", stats.AdvancedMetrics.CopingEffectiveness.Difference, nil)
}

func TestIsGoodDay(t *testing.T) {
	tests := []struct {
		name                  string
		mood, craving, stress float64
		want                  bool
	}{
		{"all thresholds met", 7, 4, 4, true},
		{"mood too low", 6.9, 1, 1, false},
		{"craving too high", 9, 4.1, 1, false},
		{"stress too high", 9, 1, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.SeriesPoint{Mood: f(tt.mood), Craving: f(tt.craving), Stress: f(tt.stress), HasData: true}
			if got := IsGoodDay(p); got != tt.want {
				t.Errorf("IsGoodDay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStreaks(t *testing.T) {
	day := func(n int) models.Date { return testToday.AddDays(n - 5) }

	tests := []struct {
		name        string
		days        []int // day numbers with data, day 5 is today
		wantCurrent int
		wantBest    int
	}{
		{"no data", nil, 0, 0},
		{"run then gap then today", []int{1, 2, 3, 5}, 1, 3},
		{"run ending yesterday", []int{2, 3, 4}, 3, 3},
		{"run ending two days ago", []int{1, 2, 3}, 0, 3},
		{"unbroken through today", []int{1, 2, 3, 4, 5}, 5, 5},
		{"later run is best", []int{1, 3, 4, 5}, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var records []models.Checkin
			for _, n := range tt.days {
				records = append(records, checkin(day(n), 5, 5, 5, nil))
			}
			series := mustSeries(t, day(1), testToday, records...)

			current, best := Streaks(series.Points(), testToday)
			if current != tt.wantCurrent {
				t.Errorf("current = %d, want %d", current, tt.wantCurrent)
			}
			if best != tt.wantBest {
				t.Errorf("best = %d, want %d", best, tt.wantBest)
			}
			if current > best {
				t.Errorf("current %d exceeds best %d", current, best)
			}
		})
	}
}

func TestStreaks_AddingDayNeverLowersBest(t *testing.T) {
	from := testToday.AddDays(-9)
	records := []models.Checkin{
		checkin(from, 5, 5, 5, nil),
		checkin(from.AddDays(1), 5, 5, 5, nil),
		checkin(from.AddDays(4), 5, 5, 5, nil),
	}

	_, before := Streaks(mustSeries(t, from, testToday, records...).Points(), testToday)

	for offset := 0; offset < 10; offset++ {
		extended := append(append([]models.Checkin{}, records...), checkin(from.AddDays(offset), 5, 5, 5, nil))
		_, after := Streaks(mustSeries(t, from, testToday, extended...).Points(), testToday)
		if after < before {
			t.Errorf("adding day %d lowered best streak from %d to %d", offset, before, after)
		}
	}
}

func TestQualityScore(t *testing.T) {
	series := mustSeries(t, testToday.AddDays(-1), testToday,
		checkin(testToday.AddDays(-1), 5, 6, 5, nil), // (5 + 5 + 5) / 3 = 5
		checkin(testToday, 9, 1, 1, intPtr(10)),      // (9 + 10 + 10) / 3 = 9.67
	)
	assertFloatPtr(t, "quality", QualityScore(series.Points()), f(7.3))
}

func TestMoodStability(t *testing.T) {
	tests := []struct {
		name  string
		moods []int
		want  *int
	}{
		{"single day", []int{6}, nil},
		{"constant mood", []int{6, 6, 6}, intPtr(100)},
		{"std dev at practical max", []int{2, 8}, intPtr(0)},
		{"beyond practical max clamps", []int{1, 10}, intPtr(0)},
		{"moderate spread", []int{5, 6}, intPtr(83)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var records []models.Checkin
			for i, m := range tt.moods {
				records = append(records, checkin(testToday.AddDays(-i), m, 5, 5, nil))
			}
			series := mustSeries(t, testToday.AddDays(-len(tt.moods)), testToday, records...)

			got := MoodStability(series.Points())
			switch {
			case got == nil && tt.want == nil:
			case got == nil || tt.want == nil:
				t.Errorf("MoodStability() = %v, want %v", got, tt.want)
			case *got != *tt.want:
				t.Errorf("MoodStability() = %d, want %d", *got, *tt.want)
			}
			if got != nil && (*got < 0 || *got > 100) {
				t.Errorf("MoodStability() = %d out of [0, 100]", *got)
			}
		})
	}
}

func TestCoping(t *testing.T) {
	series := mustSeries(t, testToday.AddDays(-2), testToday,
		checkin(testToday.AddDays(-2), 8, 5, 5, nil, "walk"),
		checkin(testToday.AddDays(-1), 7, 5, 5, nil, "journaling"),
		checkin(testToday, 5, 5, 5, nil),
	)

	got := Coping(series.Points())
	assertFloatPtr(t, "with", got.AvgMoodWithCoping, f(7.5))
	assertFloatPtr(t, "without", got.AvgMoodWithoutCoping, f(5))
	assertFloatPtr(t, "difference", got.Difference, f(2.5))
}

func TestPatterns(t *testing.T) {
	series := mustSeries(t, testToday.AddDays(-3), testToday,
		checkin(testToday.AddDays(-3), 3, 8, 9, nil),
		checkin(testToday.AddDays(-2), 4, 7, 5, nil),
		checkin(testToday.AddDays(-1), 9, 2, 1, nil),
		checkin(testToday, 6, 5, 5, nil),
	)

	got := Patterns(series.Points())
	assertFloatPtr(t, "mood on high craving", got.AvgMoodOnHighCraving, f(3.5))
	assertFloatPtr(t, "mood on low craving", got.AvgMoodOnLowCraving, f(9))
	assertFloatPtr(t, "craving on high stress", got.AvgCravingOnHighStress, f(8))
}
