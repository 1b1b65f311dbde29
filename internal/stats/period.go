package stats

import (
	"fmt"
	"strings"
	"time"

	"github.com/KwnLnrd/Gallopin/internal/apperr"
)

type Period string

const (
	Period7Days  Period = "7days"
	Period30Days Period = "30days"
	PeriodAll    Period = "all"
)

// ParsePeriod reads the ?period= parameter. Empty means all.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PeriodAll, nil
	case Period7Days, Period30Days, PeriodAll:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown period %q", apperr.ErrInvalidInput, s)
	}
}

// Days is the window length, 0 for all.
func (p Period) Days() int {
	switch p {
	case Period7Days:
		return 7
	case Period30Days:
		return 30
	}
	return 0
}

// Since returns the lower bound of the window, nil for all.
func (p Period) Since(now time.Time) *time.Time {
	days := p.Days()
	if days == 0 {
		return nil
	}
	since := now.AddDate(0, 0, -days)
	return &since
}
