package dashboard

import (
	"errors"
	"regexp"
	"time"
)

// MaxRangeDays is the widest window the dashboard accepts, in whole days.
const MaxRangeDays = 30

var (
	ErrBadFormat      = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidDate    = errors.New("invalid calendar date")
	ErrEndBeforeStart = errors.New("end date precedes start date")
	ErrRangeTooLong   = errors.New("date range exceeds 30 days")
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseDate parses free-text date input. The 4-2-2 digit shape is checked
// before calendar validity so the two failure modes stay distinguishable.
func ParseDate(s string) (time.Time, error) {
	if !datePattern.MatchString(s) {
		return time.Time{}, ErrBadFormat
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// ValidateRange applies the text-input policy: inverted ranges and spans
// beyond MaxRangeDays are rejected outright. A span of exactly MaxRangeDays
// is accepted.
func ValidateRange(start, end time.Time) error {
	if end.Before(start) {
		return ErrEndBeforeStart
	}
	if spanDays(start, end) > MaxRangeDays {
		return ErrRangeTooLong
	}
	return nil
}

// Bound identifies which end of the range the user edited last.
type Bound int

const (
	BoundStart Bound = iota
	BoundEnd
)

// AdjustRange applies the picker policy: instead of rejecting an inverted
// range, the bound the user did not touch is moved onto the edited one so
// the span stays non-negative. Span length is not corrected here; callers
// still run ValidateRange afterwards.
func AdjustRange(start, end time.Time, changed Bound) (time.Time, time.Time) {
	if end.Before(start) {
		if changed == BoundStart {
			end = start
		} else {
			start = end
		}
	}
	return start, end
}

// spanDays counts calendar days between the two dates. Both are pinned to
// UTC midnight before subtracting so a DST transition inside the window
// cannot shorten the count below a whole day.
func spanDays(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours() / 24)
}
