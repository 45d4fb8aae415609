package session

import (
	"time"

	"github.com/masaishi/wakalyze/internal/domain"
)

// PartitionWeeks buckets days-with-sessions into the Monday-start week rows
// of the month beginning at first. Week rows whose window holds no day with
// sessions are omitted, as are days with empty session lists. Days outside
// every window (from a wider fetch range) are ignored.
func PartitionWeeks(first time.Time, days []domain.DaySessions) []domain.WeekSessions {
	var weeks []domain.WeekSessions
	for week := 1; week <= domain.WeekCount(first); week++ {
		start, end, err := domain.WeekRange(first, week)
		if err != nil {
			break
		}
		row := domain.WeekSessions{Number: week, Start: start, End: end}
		for _, day := range days {
			if len(day.Sessions) == 0 {
				continue
			}
			if !day.Date.Before(start) && !day.Date.After(end) {
				row.Days = append(row.Days, day)
			}
		}
		if len(row.Days) > 0 {
			weeks = append(weeks, row)
		}
	}
	return weeks
}

// SelectWeek is PartitionWeeks restricted to a single requested week row.
// The week number is validated against the month even when the row itself
// ends up empty and is omitted.
func SelectWeek(first time.Time, days []domain.DaySessions, week int) ([]domain.WeekSessions, error) {
	start, end, err := domain.WeekRange(first, week)
	if err != nil {
		return nil, err
	}
	row := domain.WeekSessions{Number: week, Start: start, End: end}
	for _, day := range days {
		if len(day.Sessions) == 0 {
			continue
		}
		if !day.Date.Before(start) && !day.Date.After(end) {
			row.Days = append(row.Days, day)
		}
	}
	if len(row.Days) == 0 {
		return nil, nil
	}
	return []domain.WeekSessions{row}, nil
}
