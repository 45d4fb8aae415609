package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MaxWeeksPerMonth bounds the week selector: no Gregorian month spans more
// than six Monday-start weeks.
const MaxWeeksPerMonth = 6

// ParseMonth parses a "YYYY/MM" month string (month zero-padded) into the
// first day of that month at UTC midnight.
func ParseMonth(value string) (time.Time, error) {
	yearStr, monthStr, ok := strings.Cut(value, "/")
	if !ok || len(yearStr) != 4 || len(monthStr) != 2 {
		return time.Time{}, fmt.Errorf("%w: month must be in YYYY/MM format", ErrInvalidInput)
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: month must be in YYYY/MM format", ErrInvalidInput)
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("%w: month must be in YYYY/MM format", ErrInvalidInput)
	}
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), nil
}

// MonthLastDay returns the last calendar day of the month containing first.
func MonthLastDay(first time.Time) time.Time {
	return first.AddDate(0, 1, 0).AddDate(0, 0, -1)
}

// DatesBetween returns every date from start to end inclusive. Returns nil
// when start is after end.
func DatesBetween(start, end time.Time) []time.Time {
	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// WeekStart returns the Monday on or before the given date.
func WeekStart(date time.Time) time.Time {
	offset := (int(date.Weekday()) + 6) % 7
	return date.AddDate(0, 0, -offset)
}

// WeekRange returns the Monday..Sunday window for the given 1-based week of
// the month starting at first. Week 1 is the window containing the month's
// 1st, so it may begin in the previous month; the last valid week may end
// in the next month. A week outside 1..MaxWeeksPerMonth or starting past
// the month's last day yields ErrInvalidRange.
func WeekRange(first time.Time, week int) (time.Time, time.Time, error) {
	if week < 1 || week > MaxWeeksPerMonth {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: week must be between 1 and %d", ErrInvalidRange, MaxWeeksPerMonth)
	}
	start := WeekStart(first).AddDate(0, 0, (week-1)*7)
	end := start.AddDate(0, 0, 6)
	if start.After(MonthLastDay(first)) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: week %d is out of range for the month", ErrInvalidRange, week)
	}
	return start, end, nil
}

// WeekCount returns the number of Monday-start week rows covering the
// month starting at first.
func WeekCount(first time.Time) int {
	last := MonthLastDay(first)
	days := int(last.Sub(WeekStart(first)).Hours()/24) + 1
	return (days + 6) / 7
}
