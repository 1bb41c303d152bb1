package calculation

import (
	"time"

	"github.com/planwise/forecast/internal/domain"
	"github.com/planwise/forecast/pkg/dateutil"
)

// Schedule lazily expands a recurring event into concrete occurrence dates.
// It is a pure function of the event: iterating, resetting, and re-iterating
// always yields the same sequence.
type Schedule struct {
	event   domain.RecurringEvent
	current time.Time
	done    bool
}

// NewSchedule creates a schedule positioned at the event's first occurrence
func NewSchedule(event domain.RecurringEvent) *Schedule {
	s := &Schedule{event: event}
	s.Reset()
	return s
}

// Reset rewinds the schedule to the first occurrence
func (s *Schedule) Reset() {
	s.current = s.first()
	s.done = false
	if s.event.EndDate != nil && s.current.After(dateutil.MidnightUTC(*s.event.EndDate)) {
		s.done = true
	}
}

// first computes the initial occurrence from the anchor date.
func (s *Schedule) first() time.Time {
	start := dateutil.MidnightUTC(s.event.StartDate)

	if s.event.Frequency.DayStep() > 0 {
		if s.event.DayOfWeek != nil {
			return dateutil.NextWeekday(start, *s.event.DayOfWeek)
		}
		return start
	}

	// Month-based: land on the anchor day within the start month, clamped.
	day := s.event.AnchorDay()
	first := time.Date(start.Year(), start.Month(),
		dateutil.ClampDay(start.Year(), start.Month(), day), 0, 0, 0, 0, time.UTC)
	if first.Before(start) {
		first = dateutil.AddMonthsClamped(first, s.event.Frequency.MonthStep(), day)
	}
	return first
}

// Next returns the next occurrence date, and false once the schedule is
// exhausted (past the event's end date).
func (s *Schedule) Next() (time.Time, bool) {
	if s.done {
		return time.Time{}, false
	}
	occurrence := s.current

	if step := s.event.Frequency.DayStep(); step > 0 {
		s.current = s.current.AddDate(0, 0, step)
	} else {
		s.current = dateutil.AddMonthsClamped(s.current, s.event.Frequency.MonthStep(), s.event.AnchorDay())
	}
	if s.event.EndDate != nil && s.current.After(dateutil.MidnightUTC(*s.event.EndDate)) {
		s.done = true
	}
	return occurrence, true
}

// Occurrences returns every occurrence date within [from, to], inclusive on
// both ends. The result is empty when the window and the event's active
// range do not overlap.
func (s *Schedule) Occurrences(from, to time.Time) []time.Time {
	from = dateutil.MidnightUTC(from)
	to = dateutil.MidnightUTC(to)
	if to.Before(from) {
		return nil
	}
	if dateutil.MidnightUTC(s.event.StartDate).After(to) {
		return nil
	}
	if s.event.EndDate != nil && dateutil.MidnightUTC(*s.event.EndDate).Before(from) {
		return nil
	}

	s.Reset()
	var dates []time.Time
	for {
		date, ok := s.Next()
		if !ok || date.After(to) {
			break
		}
		if !date.Before(from) {
			dates = append(dates, date)
		}
	}
	return dates
}

// OccursOn reports whether the event occurs on the given calendar day
func (s *Schedule) OccursOn(date time.Time) bool {
	day := dateutil.MidnightUTC(date)
	return len(s.Occurrences(day, day)) == 1
}
