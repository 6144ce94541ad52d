// Package slot classifies meetup time slots against a location's operating
// hours, the minimum lead time and the slots already taken.
package slot

import (
	"fmt"
	"time"

	"github.com/stpnv0/SafeMeet/internal/domain"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"

	MinLeadTime = 2 * time.Hour
	DefaultStep = 30 * time.Minute
)

type Classification string

const (
	Available    Classification = "available"
	Booked       Classification = "booked"
	OutsideHours Classification = "outside_hours"
	TooSoon      Classification = "too_soon"
)

// Classify decides whether clock on date can be booked at loc. Rules apply
// in order: operating hours, lead time, capacity. It has no side effects
// and depends only on its arguments.
func Classify(loc *domain.Location, date, clock string, booked map[string]int, now time.Time, lead time.Duration) (Classification, error) {
	day, err := ParseDate(date, loc.Zone())
	if err != nil {
		return "", err
	}
	minutes, err := ParseClock(clock)
	if err != nil {
		return "", err
	}

	if !withinHours(loc.OperatingHours[day.Weekday()], minutes) {
		return OutsideHours, nil
	}

	if startAt(day, minutes).Before(now.Add(lead)) {
		return TooSoon, nil
	}

	if booked[FormatClock(minutes)] >= loc.Capacity() {
		return Booked, nil
	}

	return Available, nil
}

// Start returns the wall-clock start of clock on date in the location's zone.
func Start(loc *domain.Location, date, clock string) (time.Time, error) {
	day, err := ParseDate(date, loc.Zone())
	if err != nil {
		return time.Time{}, err
	}
	minutes, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return startAt(day, minutes), nil
}

// startAt keeps the wall-clock time on DST change days.
func startAt(day time.Time, minutes int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, day.Location())
}

// Err maps a non-available classification to the matching domain error.
func Err(c Classification) error {
	switch c {
	case Available:
		return nil
	case OutsideHours:
		return domain.ErrOutsideOperatingHours
	case TooSoon:
		return domain.ErrLeadTimeTooShort
	case Booked:
		return domain.ErrSlotNoLongerAvailable
	default:
		return fmt.Errorf("%w: unknown slot classification %q", domain.ErrValidation, c)
	}
}

// Candidates lists every slot start on the step grid inside the location's
// operating hours for date.
func Candidates(loc *domain.Location, date string, step time.Duration) ([]string, error) {
	day, err := ParseDate(date, loc.Zone())
	if err != nil {
		return nil, err
	}
	if step <= 0 {
		step = DefaultStep
	}
	stepMin := int(step / time.Minute)

	var out []string
	seen := make(map[int]struct{})
	for _, w := range loc.OperatingHours[day.Weekday()] {
		from, to, err := parseWindow(w)
		if err != nil {
			return nil, err
		}
		first := ((from + stepMin - 1) / stepMin) * stepMin
		for m := first; m < to; m += stepMin {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, FormatClock(m))
		}
	}
	return out, nil
}

// OnGrid reports whether clock is aligned to the step grid.
func OnGrid(clock string, step time.Duration) bool {
	m, err := ParseClock(clock)
	if err != nil {
		return false
	}
	if step <= 0 {
		step = DefaultStep
	}
	return m%int(step/time.Minute) == 0
}

// ParseDate parses "YYYY-MM-DD" as midnight in tz.
func ParseDate(date string, tz *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, date, tz)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", domain.ErrValidation, date)
	}
	return d, nil
}

// ParseClock parses "HH:MM" into minutes since midnight.
func ParseClock(clock string) (int, error) {
	t, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid time %q, expected HH:MM", domain.ErrValidation, clock)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// NormalizeClock rewrites clock in canonical "HH:MM" form.
func NormalizeClock(clock string) (string, error) {
	m, err := ParseClock(clock)
	if err != nil {
		return "", err
	}
	return FormatClock(m), nil
}

// ValidateHours checks that every window parses and is non-empty.
func ValidateHours(hours map[time.Weekday][]domain.TimeWindow) error {
	for wd, windows := range hours {
		for _, w := range windows {
			from, to, err := parseWindow(w)
			if err != nil {
				return err
			}
			if from >= to {
				return fmt.Errorf("%w: empty window %s-%s on %s", domain.ErrValidation, w.Start, w.End, wd)
			}
		}
	}
	return nil
}

func withinHours(windows []domain.TimeWindow, minutes int) bool {
	for _, w := range windows {
		from, to, err := parseWindow(w)
		if err != nil {
			continue
		}
		if minutes >= from && minutes < to {
			return true
		}
	}
	return false
}

func parseWindow(w domain.TimeWindow) (int, int, error) {
	from, err := ParseClock(w.Start)
	if err != nil {
		return 0, 0, err
	}
	to, err := ParseClock(w.End)
	if err != nil {
		return 0, 0, err
	}
	return from, to, nil
}
