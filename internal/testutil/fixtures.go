package testutil

import "github.com/masaishi/wakalyze/internal/domain"

// NewHeartbeat builds a RawHeartbeat with both fields set, the common case
// in fixtures.
func NewHeartbeat(ts float64, project string) domain.RawHeartbeat {
	return domain.RawHeartbeat{Time: &ts, Project: &project}
}

// NewHeartbeats builds one heartbeat per timestamp, all for the same
// project.
func NewHeartbeats(project string, times ...float64) []domain.RawHeartbeat {
	heartbeats := make([]domain.RawHeartbeat, 0, len(times))
	for _, ts := range times {
		heartbeats = append(heartbeats, NewHeartbeat(ts, project))
	}
	return heartbeats
}
