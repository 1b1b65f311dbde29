package stats

import (
	"errors"
	"testing"
	"time"

	"github.com/KwnLnrd/Gallopin/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paris(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	return loc
}

func TestParsePeriod(t *testing.T) {
	for in, want := range map[string]Period{"": PeriodAll, "7days": Period7Days, " 30DAYS ": Period30Days, "all": PeriodAll} {
		got, err := ParsePeriod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParsePeriod("yesterday")
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))
}

func TestPeriodSince(t *testing.T) {
	now := time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC)

	assert.Nil(t, PeriodAll.Since(now))
	assert.Equal(t, now.AddDate(0, 0, -7), *Period7Days.Since(now))
}

func TestFillTrend_ZeroFilledAscending(t *testing.T) {
	loc := paris(t)
	// spans the spring DST change on 2024-03-31
	now := time.Date(2024, 4, 5, 9, 30, 0, 0, loc)

	points := FillTrend(map[string]int{"2024-03-31": 2, "2024-04-05": 1, "2024-01-01": 9}, now, loc, TrendDays)

	require.Len(t, points, TrendDays)
	assert.Equal(t, "2024-03-23", points[0].Date)
	assert.Equal(t, "2024-04-05", points[13].Date)

	total := 0
	for i, p := range points {
		total += p.Count
		if i > 0 {
			assert.Less(t, points[i-1].Date, p.Date)
		}
	}
	assert.Equal(t, 3, total)
}

func TestFillTrend_UsesLocalDay(t *testing.T) {
	loc := paris(t)
	// 23:30 UTC is already the next day in Paris
	now := time.Date(2024, 6, 1, 23, 30, 0, 0, time.UTC)

	points := FillTrend(nil, now, loc, TrendDays)
	assert.Equal(t, "2024-06-02", points[len(points)-1].Date)
}

func TestAveragePerDay(t *testing.T) {
	assert.Equal(t, 0.0, AveragePerDay(0, 0))
	assert.Equal(t, 0.0, AveragePerDay(0, 30))
	assert.Equal(t, 0.43, AveragePerDay(3, 7))
	assert.Equal(t, 2.0, AveragePerDay(14, 7))
}

func TestSpanDays(t *testing.T) {
	loc := paris(t)
	now := time.Date(2024, 4, 5, 9, 0, 0, 0, loc)

	assert.Equal(t, 1, SpanDays(now.Add(-time.Hour), now, loc))
	assert.Equal(t, 14, SpanDays(time.Date(2024, 3, 23, 22, 0, 0, 0, loc), now, loc))
}
