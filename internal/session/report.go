package session

import (
	"fmt"
	"time"

	"github.com/masaishi/wakalyze/internal/domain"
)

// DayHeartbeats pairs a calendar date with the raw heartbeats reported for
// it, the shape the Wakapi API hands back per day.
type DayHeartbeats struct {
	Date       time.Time
	Heartbeats []domain.RawHeartbeat
}

// BuildReport is the single entry point of the core: it turns per-day raw
// heartbeats into the ordered week rows of the month beginning at first.
// week == 0 reports the whole month; otherwise only that week row is
// produced (validated against the month). filter applies the
// comma-separated project substring filter; maxGapSeconds must be positive.
func BuildReport(days []DayHeartbeats, first time.Time, week int, filter string, maxGapSeconds int64) ([]domain.WeekSessions, error) {
	if maxGapSeconds <= 0 {
		return nil, fmt.Errorf("%w: max gap must be greater than 0", domain.ErrInvalidInput)
	}

	built := make([]domain.DaySessions, 0, len(days))
	for _, day := range days {
		built = append(built, domain.DaySessions{
			Date:     day.Date,
			Sessions: BuildSessions(day.Heartbeats, maxGapSeconds),
		})
	}
	built = FilterDays(built, filter)

	if week > 0 {
		return SelectWeek(first, built, week)
	}
	return PartitionWeeks(first, built), nil
}
