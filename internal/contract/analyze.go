package contract

import (
	"time"

	"github.com/masaishi/wakalyze/internal/domain"
)

// AnalyzeRequest carries everything the analyze pipeline needs for one run.
type AnalyzeRequest struct {
	// First day of the target month, UTC midnight.
	Month time.Time

	// Week restricts the report to one week row; 0 means the whole month.
	Week int

	// Filter holds comma-separated project substring terms (OR semantics);
	// empty means no filtering.
	Filter string

	// MaxGapSeconds is the session gap threshold. Must be positive.
	MaxGapSeconds int64

	// User is the Wakapi user whose heartbeats are analyzed. Used as the
	// cache key alongside the date.
	User string
}

// AnalyzeResponse is the finished report structure handed to the renderer.
type AnalyzeResponse struct {
	Label string
	Weeks []domain.WeekSessions

	// DaysFetched counts the days retrieved from the network rather than
	// the cache, for diagnostics.
	DaysFetched int
}
