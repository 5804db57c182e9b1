package producer

import (
	"testing"
	"time"
)

func TestPreviousWeek(t *testing.T) {
	testcases := []struct {
		name      string
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "monday morning returns last full week",
			now:       time.Date(2025, 6, 16, 9, 30, 0, 0, time.UTC),
			wantStart: time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "midweek still returns last full week",
			now:       time.Date(2025, 6, 19, 23, 59, 0, 0, time.UTC),
			wantStart: time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "sunday belongs to the running week",
			now:       time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
			wantStart: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "window crossing a month boundary",
			now:       time.Date(2025, 7, 2, 8, 0, 0, 0, time.UTC),
			wantStart: time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := PreviousWeek(tc.now, time.UTC)
			if !start.Equal(tc.wantStart) {
				t.Errorf("start = %v, want %v", start, tc.wantStart)
			}
			if !end.Equal(tc.wantEnd) {
				t.Errorf("end = %v, want %v", end, tc.wantEnd)
			}
		})
	}
}

func TestPreviousMonth(t *testing.T) {
	testcases := []struct {
		name      string
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "first of month returns last full month",
			now:       time.Date(2025, 7, 1, 0, 5, 0, 0, time.UTC),
			wantStart: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "mid month returns last full month",
			now:       time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC),
			wantStart: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "january returns december of previous year",
			now:       time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
			wantStart: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := PreviousMonth(tc.now, time.UTC)
			if !start.Equal(tc.wantStart) {
				t.Errorf("start = %v, want %v", start, tc.wantStart)
			}
			if !end.Equal(tc.wantEnd) {
				t.Errorf("end = %v, want %v", end, tc.wantEnd)
			}
		})
	}
}

func TestPreviousWeek_RespectsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)

	// 01:00 UTC Monday is already 08:00 Monday in UTC+7, so the local week
	// boundary has passed even though the UTC date just started.
	now := time.Date(2025, 6, 16, 1, 0, 0, 0, time.UTC)
	start, end := PreviousWeek(now, loc)

	wantStart := time.Date(2025, 6, 9, 0, 0, 0, 0, loc)
	wantEnd := time.Date(2025, 6, 16, 0, 0, 0, 0, loc)

	if !start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", start, wantStart)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", end, wantEnd)
	}
}
