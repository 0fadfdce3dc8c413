package analytics

import (
	"math"

	"github.com/JonnyWalker81/checkin/backend/internal/models"
)

const (
	// Good day thresholds: mood >= GoodMoodMin AND craving, stress <= GoodLoadMax
	GoodMoodMin = 7.0
	GoodLoadMax = 4.0

	// Pattern partitions
	HighThreshold = 7.0
	LowThreshold  = 4.0

	// MaxPracticalStdDev is the assumed practical maximum mood standard
	// deviation on a 1-10 scale; it maps to a stability index of 0.
	MaxPracticalStdDev = 3.0
)

// present filters a series' points down to the days with data
func present(points []models.SeriesPoint) []models.SeriesPoint {
	out := make([]models.SeriesPoint, 0, len(points))
	for _, p := range points {
		if p.HasData && p.Mood != nil && p.Craving != nil && p.Stress != nil {
			out = append(out, p)
		}
	}
	return out
}

// IsGoodDay reports whether a day with data counts as a good day
func IsGoodDay(p models.SeriesPoint) bool {
	return *p.Mood >= GoodMoodMin && *p.Craving <= GoodLoadMax && *p.Stress <= GoodLoadMax
}

// ClassifyDays counts good and bad days among the days with data.
func ClassifyDays(points []models.SeriesPoint) (good, bad int) {
	for _, p := range present(points) {
		if IsGoodDay(p) {
			good++
		} else {
			bad++
		}
	}
	return good, bad
}

// Streaks returns the current and best runs of consecutive days with data.
// The trailing run only counts as current when it ends today or yesterday.
func Streaks(points []models.SeriesPoint, today models.Date) (current, best int) {
	days := present(points)
	if len(days) == 0 {
		return 0, 0
	}

	run := 1
	for i := 1; i < len(days); i++ {
		if days[i].Date.DaysSince(days[i-1].Date) == 1 {
			run++
		} else {
			best = max(best, run)
			run = 1
		}
	}
	best = max(best, run)

	switch today.DaysSince(days[len(days)-1].Date) {
	case 0, 1:
		current = run
	}

	return current, best
}

// QualityScore averages (mood + (11 - craving) + energy) / 3 over the days
// with data, rounded to one decimal. Nil when there are no such days.
func QualityScore(points []models.SeriesPoint) *float64 {
	days := present(points)
	scores := make([]float64, 0, len(days))
	for _, p := range days {
		energy := float64(models.DefaultEnergy)
		if p.Energy != nil {
			energy = *p.Energy
		}
		scores = append(scores, (*p.Mood+(11-*p.Craving)+energy)/3)
	}
	return roundedMean(scores)
}

// MoodStability maps the population standard deviation of daily mood onto a
// 0-100 index (higher is steadier). Nil with fewer than two days of data.
func MoodStability(points []models.SeriesPoint) *int {
	days := present(points)
	if len(days) < 2 {
		return nil
	}

	moods := make([]float64, len(days))
	for i, p := range days {
		moods[i] = *p.Mood
	}

	stdDev, _ := populationStdDev(moods)
	index := math.Max(0, 100-(stdDev/MaxPracticalStdDev)*100)
	return ptr(int(math.Round(index)))
}

// Coping compares average mood on days with and without coping activities.
func Coping(points []models.SeriesPoint) models.CopingEffectiveness {
	var with, without []float64
	for _, p := range present(points) {
		if p.HasCoping {
			with = append(with, *p.Mood)
		} else {
			without = append(without, *p.Mood)
		}
	}

	result := models.CopingEffectiveness{
		AvgMoodWithCoping:    roundedMean(with),
		AvgMoodWithoutCoping: roundedMean(without),
	}
	if result.AvgMoodWithCoping != nil && result.AvgMoodWithoutCoping != nil {
		result.Difference = ptr(Round1(*result.AvgMoodWithCoping - *result.AvgMoodWithoutCoping))
	}
	return result
}

// Patterns reports mood under high and low craving, and craving under high stress.
func Patterns(points []models.SeriesPoint) models.PatternMetrics {
	var moodHighCraving, moodLowCraving, cravingHighStress []float64
	for _, p := range present(points) {
		if *p.Craving >= HighThreshold {
			moodHighCraving = append(moodHighCraving, *p.Mood)
		}
		if *p.Craving <= LowThreshold {
			moodLowCraving = append(moodLowCraving, *p.Mood)
		}
		if *p.Stress >= HighThreshold {
			cravingHighStress = append(cravingHighStress, *p.Craving)
		}
	}

	return models.PatternMetrics{
		AvgMoodOnHighCraving:   roundedMean(moodHighCraving),
		AvgMoodOnLowCraving:    roundedMean(moodLowCraving),
		AvgCravingOnHighStress: roundedMean(cravingHighStress),
	}
}

// Dashboard computes the dashboard stats for a series. Streaks are judged
// against today.
func Dashboard(series Series, today models.Date) models.DashboardStats {
	points := series.Points()
	good, bad := ClassifyDays(points)
	current, best := Streaks(points, today)

	return models.DashboardStats{
		From:        series.From,
		To:          series.To,
		DailySeries: points,
		Totals: models.DashboardTotals{
			TotalDaysWithCheckin:   good + bad,
			GoodDays:               good,
			BadDays:                bad,
			CurrentStreak:          current,
			BestStreak:             best,
			AvgCheckinQualityScore: QualityScore(points),
		},
		Patterns: Patterns(points),
		AdvancedMetrics: models.AdvancedMetrics{
			MoodStabilityIndex:  MoodStability(points),
			CopingEffectiveness: Coping(points),
		},
	}
}
