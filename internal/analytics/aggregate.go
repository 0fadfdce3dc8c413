// Package analytics turns raw check-ins into gap-filled daily series and the
// metrics derived from them. Everything here is pure and deterministic.
package analytics

import (
	"time"

	"github.com/JonnyWalker81/checkin/backend/internal/models"
)

// Metric identifies one of the numeric check-in scores
type Metric int

const (
	Mood Metric = iota
	Craving
	Stress
	Energy

	numMetrics
)

// String returns the metric's name
func (m Metric) String() string {
	switch m {
	case Mood:
		return "mood"
	case Craving:
		return "craving"
	case Stress:
		return "stress"
	case Energy:
		return "energy"
	default:
		return "unknown"
	}
}

// DayBucket is the same-day aggregate of one or more check-ins.
// Same-day records are averaged, never ranked or overwritten.
type DayBucket struct {
	Date      models.Date
	Count     int
	HasCoping bool

	sums [numMetrics]float64
}

// Mean returns the unrounded mean of metric m over the day's records.
func (b DayBucket) Mean(m Metric) float64 {
	if b.Count == 0 {
		return 0
	}
	return b.sums[m] / float64(b.Count)
}

// Avg returns the day's mean of metric m rounded to one decimal.
func (b DayBucket) Avg(m Metric) float64 {
	return Round1(b.Mean(m))
}

func (b *DayBucket) add(c models.Checkin) {
	b.Count++
	b.sums[Mood] += float64(c.Mood)
	b.sums[Craving] += float64(c.Craving)
	b.sums[Stress] += float64(c.Stress)
	b.sums[Energy] += float64(c.EnergyOrDefault())
	if c.HasCoping() {
		b.HasCoping = true
	}
}

// Buckets maps a calendar day to its aggregate
type Buckets map[models.Date]DayBucket

// Usable reports whether a record can take part in aggregation. Records whose
// mood, craving or stress fall outside the score bounds (including a missing
// zero value) are skipped instead of failing the computation.
func Usable(c models.Checkin) bool {
	return models.InScoreRange(c.Mood) &&
		models.InScoreRange(c.Craving) &&
		models.InScoreRange(c.Stress)
}

// Aggregate groups records by the calendar day their date falls on in loc.
// Records that are not Usable are ignored. An empty input yields an empty map.
func Aggregate(records []models.Checkin, loc *time.Location) Buckets {
	buckets := make(Buckets)

	for _, c := range records {
		if !Usable(c) {
			continue
		}

		day := models.DateOf(c.Date, loc)
		b, exists := buckets[day]
		if !exists {
			b = DayBucket{Date: day}
		}
		b.add(c)
		buckets[day] = b
	}

	return buckets
}

// Earliest returns the first day present in the buckets, or false if empty.
func (bs Buckets) Earliest() (models.Date, bool) {
	var first models.Date
	found := false
	for d := range bs {
		if !found || d.Before(first) {
			first = d
			found = true
		}
	}
	return first, found
}
