package todo

import "time"

// CombineDueDate merges a calendar date with an optional time of day.
// The hour and minute of clock replace those of date; seconds are cleared.
// A nil date means no due date at all, whatever clock holds.
func CombineDueDate(date, clock *time.Time) *time.Time {
	if date == nil {
		return nil
	}

	combined := *date
	if clock != nil {
		combined = time.Date(
			date.Year(), date.Month(), date.Day(),
			clock.Hour(), clock.Minute(), 0, 0,
			date.Location(),
		)
	}
	return &combined
}

// ParseDueDate parses the date and time strings accepted on the command line
// (YYYY-MM-DD and HH:MM in loc) and combines them. A date without a time is due
// at 23:59 that day. An empty date yields nil; a time without a date is an error.
func ParseDueDate(date, clock string, loc *time.Location) (*time.Time, error) {
	if date == "" {
		if clock != "" {
			return nil, ErrTimeWithoutDate
		}
		return nil, nil
	}

	d, err := time.ParseInLocation(time.DateOnly, date, loc)
	if err != nil {
		return nil, err
	}

	if clock == "" {
		endOfDay := time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 0, 0, loc)
		return CombineDueDate(&d, &endOfDay), nil
	}

	c, err := time.ParseInLocation("15:04", clock, loc)
	if err != nil {
		return nil, err
	}
	return CombineDueDate(&d, &c), nil
}
