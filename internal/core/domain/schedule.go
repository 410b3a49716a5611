package domain

import (
	"time"
)

// DaypartingSchedule is a recurring weekly active window for a campaign.
// DayOfWeek follows time.Weekday numbering starting at Monday = 0 (so
// Sunday = 6). Start and End are minutes since midnight; windows never
// wrap around midnight, so Start < End always holds for a valid schedule.
type DaypartingSchedule struct {
	ID         int64
	CampaignID int64
	DayOfWeek  int
	Start      ClockTime
	End        ClockTime
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ClockTime is a time of day with minute precision, stored as minutes
// since midnight.
type ClockTime int

// NewClockTime builds a ClockTime from hour and minute.
func NewClockTime(hour, minute int) ClockTime {
	return ClockTime(hour*60 + minute)
}

func (t ClockTime) Hour() int   { return int(t) / 60 }
func (t ClockTime) Minute() int { return int(t) % 60 }

func (t ClockTime) String() string {
	return time.Date(0, 1, 1, t.Hour(), t.Minute(), 0, 0, time.UTC).Format("15:04")
}

// ParseClockTime parses "HH:MM".
func ParseClockTime(s string) (ClockTime, error) {
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return 0, &ValidationError{Field: "time", Msg: "must be HH:MM"}
	}
	return NewClockTime(parsed.Hour(), parsed.Minute()), nil
}

// Weekday converts a time.Weekday into the Monday-based numbering used by
// DayOfWeek.
func Weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// Validate checks the write-time constraints on a schedule.
func (s DaypartingSchedule) Validate() error {
	if s.DayOfWeek < 0 || s.DayOfWeek > 6 {
		return &ValidationError{Field: "day_of_week", Msg: "must be in 0..6"}
	}
	if s.Start >= s.End {
		return &ValidationError{Field: "start_time", Msg: "must be before end time"}
	}
	return nil
}

// Overlaps reports whether two windows on the same weekday intersect,
// using the half-open interval test.
func (s DaypartingSchedule) Overlaps(o DaypartingSchedule) bool {
	return s.DayOfWeek == o.DayOfWeek && s.Start < o.End && s.End > o.Start
}

// CheckOverlap validates a candidate schedule against the campaign's
// existing ones. Inactive schedules and other weekdays never conflict.
func CheckOverlap(candidate DaypartingSchedule, existing []DaypartingSchedule) error {
	if !candidate.IsActive {
		return nil
	}
	for _, e := range existing {
		if e.ID == candidate.ID || !e.IsActive {
			continue
		}
		if candidate.Overlaps(e) {
			return &ValidationError{Field: "schedule", Msg: "overlaps with an existing active window"}
		}
	}
	return nil
}

// WithinHours decides whether now falls inside the campaign's active hours.
// Schedules for other weekdays are ignored. A day with no active schedule
// is unrestricted. Window bounds are inclusive on both ends, so a campaign
// scheduled 09:00-17:00 is in hours at exactly 09:00 and at exactly 17:00.
// Evaluation happens on the UTC clock, the same calendar Day keys spend
// rows on, so the dayparting weekday and the spend date never disagree.
func WithinHours(schedules []DaypartingSchedule, now time.Time) bool {
	now = now.UTC()
	day := Weekday(now)
	tod := NewClockTime(now.Hour(), now.Minute())

	restricted := false
	for _, s := range schedules {
		if !s.IsActive || s.DayOfWeek != day {
			continue
		}
		restricted = true
		if s.Start <= tod && tod <= s.End {
			return true
		}
	}
	return !restricted
}
