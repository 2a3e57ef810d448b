package aggregation

import (
	"strings"
	"time"
)

// Windows holds the nested dashboard boundaries derived from a single
// captured instant. All boundaries live in Now's location.
type Windows struct {
	Now            time.Time
	Today          time.Time
	Tomorrow       time.Time
	WeekStart      time.Time // Sunday
	MonthStart     time.Time
	NextMonthStart time.Time
	YearStart      time.Time
}

// WindowsAt derives every window from now. Callers capture now once per
// request so that all windows agree on the same instant.
func WindowsAt(now time.Time) Windows {
	today := StartOfDay(now)
	month := StartOfMonth(now)
	return Windows{
		Now:            now,
		Today:          today,
		Tomorrow:       today.AddDate(0, 0, 1),
		WeekStart:      StartOfWeek(now),
		MonthStart:     month,
		NextMonthStart: month.AddDate(0, 1, 0),
		YearStart:      StartOfYear(now),
	}
}

// InToday reports whether t falls on the current calendar date.
func (w Windows) InToday(t time.Time) bool {
	return !t.Before(w.Today) && t.Before(w.Tomorrow)
}

// Since reports whether t is at or after start.
func Since(t, start time.Time) bool {
	return !t.Before(start)
}

// Earliest is the oldest window boundary. The week can start in the
// previous month or year, so it is not always YearStart.
func (w Windows) Earliest() time.Time {
	if w.WeekStart.Before(w.YearStart) {
		return w.WeekStart
	}
	return w.YearStart
}

// MonthRange returns the inclusive bounds of the current calendar month.
func (w Windows) MonthRange() (time.Time, time.Time) {
	return w.MonthStart, w.NextMonthStart.Add(-time.Nanosecond)
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// Granularity is the calendar unit of a trend bucket.
type Granularity string

const (
	Day   Granularity = "day"
	Week  Granularity = "week"
	Month Granularity = "month"
)

// ParseGranularity accepts day/week/month (and 1w/1mo aliases); anything
// else is Day.
func ParseGranularity(s string) Granularity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "week", "weekly", "1w":
		return Week
	case "month", "monthly", "1mo":
		return Month
	default:
		return Day
	}
}

// BucketFor truncates t to the start of its calendar bucket in t's location.
// Example: BucketFor(Wed 10:35, Week) → the preceding Sunday 00:00.
func BucketFor(t time.Time, g Granularity) time.Time {
	switch g {
	case Week:
		return StartOfWeek(t)
	case Month:
		return StartOfMonth(t)
	default:
		return StartOfDay(t)
	}
}

// Next returns the start of the bucket following start.
func (g Granularity) Next(start time.Time) time.Time {
	switch g {
	case Week:
		return start.AddDate(0, 0, 7)
	case Month:
		return start.AddDate(0, 1, 0)
	default:
		return start.AddDate(0, 0, 1)
	}
}
