package models

// InsightWindow names one of the fixed insight windows
type InsightWindow string

const (
	WindowWeekly  InsightWindow = "weekly"
	WindowMonthly InsightWindow = "monthly"
	WindowAllTime InsightWindow = "alltime"
)

// Valid reports whether w is a known window
func (w InsightWindow) Valid() bool {
	switch w {
	case WindowWeekly, WindowMonthly, WindowAllTime:
		return true
	}
	return false
}

// Trend directions reported for a window's daily mood
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// SeriesPoint is one calendar day of a daily series. Numeric fields are nil on
// days without data.
type SeriesPoint struct {
	Date      Date     `json:"date"`
	Mood      *float64 `json:"mood"`
	Craving   *float64 `json:"craving"`
	Stress    *float64 `json:"stress"`
	Energy    *float64 `json:"energy"`
	HasCoping bool     `json:"has_coping"`
	HasData   bool     `json:"has_data"`
}

// DailySeries is the gap-filled response for an arbitrary date range
type DailySeries struct {
	From   Date          `json:"from"`
	To     Date          `json:"to"`
	Points []SeriesPoint `json:"points"`
}

// DashboardTotals holds counts and streaks for the dashboard window
type DashboardTotals struct {
	TotalDaysWithCheckin   int      `json:"total_days_with_checkin"`
	GoodDays               int      `json:"good_days"`
	BadDays                int      `json:"bad_days"`
	CurrentStreak          int      `json:"current_streak"`
	BestStreak             int      `json:"best_streak"`
	AvgCheckinQualityScore *float64 `json:"avg_checkin_quality_score"`
}

// PatternMetrics relates mood and craving under high/low craving and stress
type PatternMetrics struct {
	AvgMoodOnHighCraving   *float64 `json:"avg_mood_on_high_craving"`
	AvgMoodOnLowCraving    *float64 `json:"avg_mood_on_low_craving"`
	AvgCravingOnHighStress *float64 `json:"avg_craving_on_high_stress"`
}

// CopingEffectiveness compares mood on days with and without coping activities
type CopingEffectiveness struct {
	AvgMoodWithCoping    *float64 `json:"avg_mood_with_coping"`
	AvgMoodWithoutCoping *float64 `json:"avg_mood_without_coping"`
	Difference           *float64 `json:"difference"`
}

// AdvancedMetrics groups stability and coping metrics
type AdvancedMetrics struct {
	MoodStabilityIndex  *int                `json:"mood_stability_index"`
	CopingEffectiveness CopingEffectiveness `json:"coping_effectiveness"`
}

// DashboardStats is the 30-day dashboard response
type DashboardStats struct {
	From            Date            `json:"from"`
	To              Date            `json:"to"`
	DailySeries     []SeriesPoint   `json:"daily_series"`
	Totals          DashboardTotals `json:"totals"`
	Patterns        PatternMetrics  `json:"patterns"`
	AdvancedMetrics AdvancedMetrics `json:"advanced_metrics"`
}

// Period is an inclusive calendar range
type Period struct {
	From Date `json:"from"`
	To   Date `json:"to"`
}

// Averages holds record-level means over a period
type Averages struct {
	Mood    *float64 `json:"mood"`
	Craving *float64 `json:"craving"`
	Stress  *float64 `json:"stress"`
	Energy  *float64 `json:"energy"`
}

// MoodTrendPoint is the average mood of one calendar day
type MoodTrendPoint struct {
	Date Date     `json:"date"`
	Mood *float64 `json:"mood"`
}

// DayHighlight identifies the best or worst day of a period
type DayHighlight struct {
	Date    Date    `json:"date"`
	AvgMood float64 `json:"avg_mood"`
}

// Improvement compares mood between the first and second half of a period
type Improvement struct {
	Absolute float64  `json:"absolute"`
	Percent  *float64 `json:"percent"`
}

// PatternCorrelations holds Pearson coefficients against daily mood
type PatternCorrelations struct {
	MoodCraving *float64 `json:"mood_craving"`
	MoodStress  *float64 `json:"mood_stress"`
}

// WindowInsights is the response for a weekly, monthly or all-time window
type WindowInsights struct {
	Window              InsightWindow       `json:"window,omitempty"`
	Period              Period              `json:"period"`
	TotalCheckins       int                 `json:"total_checkins"`
	Averages            Averages            `json:"averages"`
	MoodTrend           []MoodTrendPoint    `json:"mood_trend"`
	Trend               string              `json:"trend"`
	BestDay             *DayHighlight       `json:"best_day"`
	WorstDay            *DayHighlight       `json:"worst_day"`
	Improvement         *Improvement        `json:"improvement"`
	PatternCorrelations PatternCorrelations `json:"pattern_correlations"`
	SummaryText         string              `json:"summary_text"`
}
