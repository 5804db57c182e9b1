package producer

import (
	"time"

	"github.com/storely/mission-engine/pkg/common"
)

// WindowFunc resolves the reporting window for a producer cycle.
// Windows are half-open: [start, end).
type WindowFunc func(now time.Time, loc *time.Location) (start, end time.Time)

// PreviousWeek returns the last completed calendar week in loc: the 7 days
// ending at the most recent Monday 00:00 boundary.
func PreviousWeek(now time.Time, loc *time.Location) (time.Time, time.Time) {
	weekStart := common.StartOfWeek(now, loc)
	return weekStart.AddDate(0, 0, -7), weekStart
}

// PreviousMonth returns the last completed calendar month in loc.
func PreviousMonth(now time.Time, loc *time.Location) (time.Time, time.Time) {
	monthStart := common.StartOfMonth(now, loc)
	return monthStart.AddDate(0, -1, 0), monthStart
}
