package stats

import (
	"math"
	"time"
)

const (
	TrendDays  = 14
	dateLayout = "2006-01-02"
)

type TrendPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// StartOfDay truncates t to midnight in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// TrendStart is midnight of the first day of a trend ending today.
func TrendStart(now time.Time, loc *time.Location, days int) time.Time {
	return StartOfDay(now, loc).AddDate(0, 0, -(days - 1))
}

// FillTrend returns exactly days points ending today, oldest first. Days
// missing from counts are zero.
func FillTrend(counts map[string]int, now time.Time, loc *time.Location, days int) []TrendPoint {
	start := TrendStart(now, loc, days)

	points := make([]TrendPoint, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i).Format(dateLayout)
		points = append(points, TrendPoint{Date: day, Count: counts[day]})
	}
	return points
}

// AveragePerDay divides total by span days, rounded to two decimals.
func AveragePerDay(total, span int) float64 {
	if total == 0 || span <= 0 {
		return 0
	}
	return math.Round(float64(total)/float64(span)*100) / 100
}

// SpanDays counts calendar days from first to now in loc, both included.
func SpanDays(first, now time.Time, loc *time.Location) int {
	a := StartOfDay(first, loc)
	b := StartOfDay(now, loc)
	// calendar arithmetic keeps DST days at one day each
	days := 1
	for d := a; d.Before(b); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}
