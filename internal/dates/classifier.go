package dates

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// DayKind classifies an event's start relative to "today" in the reference timezone.
type DayKind string

const (
	Today            DayKind = "TODAY"
	LateNightSameDay DayKind = "LATE_NIGHT_SAME_DAY"
	Tomorrow         DayKind = "TOMORROW"
	Yesterday        DayKind = "YESTERDAY"
	Invalid          DayKind = "INVALID"
)

// Classification is the result of classifying one start instant. Computed fresh
// per refresh; never persisted.
type Classification struct {
	Kind                 DayKind `json:"kind"`
	LocalToday           string  `json:"localToday"`
	EventLocalDate       string  `json:"eventLocalDate,omitempty"`
	EligibleForTodayPick bool    `json:"eligibleForTodayPick"`
}

// Classify converts a start instant to a calendar classification relative to
// "today" in the reference timezone. This is the only place day-eligibility is
// decided; no other component may infer "is this today" from a raw date field.
//
// A zero start instant classifies as Invalid and is never pick-eligible.
func Classify(start, now time.Time, loc *time.Location) Classification {
	if loc == nil {
		loc = time.UTC
	}
	localToday := now.In(loc).Format(DateLayout)
	if start.IsZero() {
		return Classification{
			Kind:                 Invalid,
			LocalToday:           localToday,
			EligibleForTodayPick: false,
		}
	}

	eventLocal := start.In(loc)
	diff := dayDiff(now.In(loc), eventLocal)

	c := Classification{
		LocalToday:     localToday,
		EventLocalDate: eventLocal.Format(DateLayout),
	}
	switch {
	case diff == 0:
		c.Kind = Today
		c.EligibleForTodayPick = true
		// UTC rollover with a local date still on today's calendar day.
		if start.UTC().Format(DateLayout) != localToday {
			c.Kind = LateNightSameDay
		}
	case diff == -1:
		c.Kind = Yesterday
	case diff >= 1:
		c.Kind = Tomorrow
	default:
		c.Kind = Yesterday
	}
	return c
}

// dayDiff returns the whole-day difference between two instants already in the
// same location, computed on calendar dates rather than elapsed hours.
func dayDiff(ref, other time.Time) int {
	refDay := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	otherDay := time.Date(other.Year(), other.Month(), other.Day(), 0, 0, 0, 0, time.UTC)
	return int(otherDay.Sub(refDay).Hours() / 24)
}
