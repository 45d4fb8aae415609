package repository

import (
	"context"
	"time"

	"github.com/masaishi/wakalyze/internal/domain"
)

// HeartbeatCacheRepo stores fetched per-day heartbeat payloads so repeated
// analyzes of the same range do not refetch completed days.
type HeartbeatCacheRepo interface {
	// Get returns the cached heartbeats for one user and date, or
	// ErrNotFound when the day has never been cached.
	Get(ctx context.Context, user string, date time.Time) ([]domain.RawHeartbeat, error)

	// Put stores (or replaces) the heartbeats for one user and date.
	Put(ctx context.Context, user string, date time.Time, heartbeats []domain.RawHeartbeat) error

	// Purge removes cache entries for dates before the cutoff and reports
	// how many rows were deleted.
	Purge(ctx context.Context, before time.Time) (int64, error)
}
