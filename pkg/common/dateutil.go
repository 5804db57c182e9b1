package common

import "time"

// TruncateToDate returns midnight of t's calendar day in loc.
// This matches PostgreSQL's DATE() function evaluated in that timezone.
func TruncateToDate(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// StartOfWeek returns midnight of the Monday of t's week in loc.
// Weeks are Monday-based, matching ISO 8601.
func StartOfWeek(t time.Time, loc *time.Location) time.Time {
	midnight := TruncateToDate(t, loc)
	daysSinceMonday := (int(midnight.Weekday()) + 6) % 7
	return midnight.AddDate(0, 0, -daysSinceMonday)
}

// StartOfMonth returns midnight of the first day of t's month in loc.
func StartOfMonth(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
}
