package analytics

import (
	"math"

	"github.com/JonnyWalker81/checkin/backend/internal/models"
)

// TrendSlopeThreshold is the minimum daily change in mood, in points per day,
// for a window to be reported as increasing or decreasing.
const TrendSlopeThreshold = 0.05

// PeriodAverages returns record-level means over the series (each check-in
// weighs the same regardless of how many share a day) and the record count.
func PeriodAverages(series Series) (models.Averages, int) {
	var sums [numMetrics]float64
	total := 0
	for _, b := range series.Present() {
		total += b.Count
		for m := Metric(0); m < numMetrics; m++ {
			sums[m] += b.sums[m]
		}
	}

	if total == 0 {
		return models.Averages{}, 0
	}

	avg := func(m Metric) *float64 {
		return ptr(Round1(sums[m] / float64(total)))
	}
	return models.Averages{
		Mood:    avg(Mood),
		Craving: avg(Craving),
		Stress:  avg(Stress),
		Energy:  avg(Energy),
	}, total
}

// MoodTrend returns the average mood of every day in the series, nil on gaps.
func MoodTrend(series Series) []models.MoodTrendPoint {
	trend := make([]models.MoodTrendPoint, 0, series.Len())
	for _, d := range series.Days {
		p := models.MoodTrendPoint{Date: d.Date}
		if d.Bucket != nil {
			p.Mood = ptr(d.Bucket.Avg(Mood))
		}
		trend = append(trend, p)
	}
	return trend
}

// TrendDirection fits a least-squares line through daily mood and reports its
// direction. Fewer than two days of data is stable.
func TrendDirection(series Series) string {
	days := series.Present()
	if len(days) < 2 {
		return models.TrendStable
	}

	xs := make([]float64, len(days))
	ys := make([]float64, len(days))
	for i, b := range days {
		xs[i] = float64(b.Date.DaysSince(series.From))
		ys[i] = b.Mean(Mood)
	}

	s := slope(xs, ys)
	switch {
	case math.Abs(s) < TrendSlopeThreshold:
		return models.TrendStable
	case s > 0:
		return models.TrendIncreasing
	default:
		return models.TrendDecreasing
	}
}

// BestWorstDays returns the days with the highest and lowest average mood.
// On ties the earliest such day wins.
func BestWorstDays(series Series) (best, worst *models.DayHighlight) {
	days := series.Present()
	if len(days) == 0 {
		return nil, nil
	}

	bestDay, worstDay := days[0], days[0]
	for _, b := range days[1:] {
		if !(bestDay.Mean(Mood) >= b.Mean(Mood)) {
			bestDay = b
		}
		if !(worstDay.Mean(Mood) <= b.Mean(Mood)) {
			worstDay = b
		}
	}

	return &models.DayHighlight{Date: bestDay.Date, AvgMood: bestDay.Avg(Mood)},
		&models.DayHighlight{Date: worstDay.Date, AvgMood: worstDay.Avg(Mood)}
}

// ImprovementOf compares mean daily mood in the second half of the days with
// data against the first half. The first half takes the extra day on odd
// counts. Nil with fewer than two days of data.
func ImprovementOf(series Series) *models.Improvement {
	days := series.Present()
	if len(days) < 2 {
		return nil
	}

	half := (len(days) + 1) / 2
	firstMoods := make([]float64, 0, half)
	secondMoods := make([]float64, 0, len(days)-half)
	for i, b := range days {
		if i < half {
			firstMoods = append(firstMoods, b.Mean(Mood))
		} else {
			secondMoods = append(secondMoods, b.Mean(Mood))
		}
	}

	avgFirst, _ := mean(firstMoods)
	avgSecond, _ := mean(secondMoods)

	imp := &models.Improvement{Absolute: Round1(avgSecond - avgFirst)}
	if avgFirst != 0 {
		imp.Percent = ptr(Round1(imp.Absolute / avgFirst * 100))
	}
	return imp
}

// Correlations computes Pearson coefficients of daily mood against daily
// craving and stress, using unrounded day means.
func Correlations(series Series) models.PatternCorrelations {
	days := series.Present()
	moods := make([]float64, len(days))
	cravings := make([]float64, len(days))
	stresses := make([]float64, len(days))
	for i, b := range days {
		moods[i] = b.Mean(Mood)
		cravings[i] = b.Mean(Craving)
		stresses[i] = b.Mean(Stress)
	}

	return models.PatternCorrelations{
		MoodCraving: Pearson(moods, cravings),
		MoodStress:  Pearson(moods, stresses),
	}
}

// Window computes the full insight set for a series.
func Window(series Series) models.WindowInsights {
	averages, total := PeriodAverages(series)
	best, worst := BestWorstDays(series)

	insights := models.WindowInsights{
		Period:              models.Period{From: series.From, To: series.To},
		TotalCheckins:       total,
		Averages:            averages,
		MoodTrend:           MoodTrend(series),
		Trend:               TrendDirection(series),
		BestDay:             best,
		WorstDay:            worst,
		Improvement:         ImprovementOf(series),
		PatternCorrelations: Correlations(series),
	}
	insights.SummaryText = SummaryText(insights)

	return insights
}
