package analytics

import (
	"errors"
	"fmt"

	"github.com/JonnyWalker81/checkin/backend/internal/models"
)

// ErrInvalidRange is returned when a series is requested with from after to
var ErrInvalidRange = errors.New("from date is after to date")

// Day is one calendar day of a Series. Bucket is nil when the day has no data.
type Day struct {
	Date   models.Date
	Bucket *DayBucket
}

// HasData reports whether at least one check-in exists for the day
func (d Day) HasData() bool {
	return d.Bucket != nil
}

// Series is a contiguous daily sequence over [From, To], one entry per day,
// ascending, with gaps kept as empty days rather than zeros.
type Series struct {
	From models.Date
	To   models.Date
	Days []Day
}

// BuildSeries expands [from, to] into a Series, taking day-level detail from
// buckets. Buckets outside the range are ignored.
func BuildSeries(from, to models.Date, buckets Buckets) (Series, error) {
	if from.After(to) {
		return Series{}, fmt.Errorf("%w: %s > %s", ErrInvalidRange, from, to)
	}

	days := make([]Day, 0, to.DaysSince(from)+1)
	for d := from; !d.After(to); d = d.AddDays(1) {
		day := Day{Date: d}
		if b, ok := buckets[d]; ok {
			bucket := b
			day.Bucket = &bucket
		}
		days = append(days, day)
	}

	return Series{From: from, To: to, Days: days}, nil
}

// Len returns the number of days in the series
func (s Series) Len() int {
	return len(s.Days)
}

// Present returns the buckets of days with data, in date order.
func (s Series) Present() []DayBucket {
	present := make([]DayBucket, 0, len(s.Days))
	for _, d := range s.Days {
		if d.Bucket != nil {
			present = append(present, *d.Bucket)
		}
	}
	return present
}

// Points renders the series as rounded, gap-filled points.
func (s Series) Points() []models.SeriesPoint {
	points := make([]models.SeriesPoint, 0, len(s.Days))
	for _, d := range s.Days {
		p := models.SeriesPoint{Date: d.Date}
		if b := d.Bucket; b != nil {
			p.Mood = ptr(b.Avg(Mood))
			p.Craving = ptr(b.Avg(Craving))
			p.Stress = ptr(b.Avg(Stress))
			p.Energy = ptr(b.Avg(Energy))
			p.HasCoping = b.HasCoping
			p.HasData = true
		}
		points = append(points, p)
	}
	return points
}
