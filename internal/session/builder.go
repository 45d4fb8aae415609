package session

import (
	"sort"
	"strings"

	"github.com/masaishi/wakalyze/internal/domain"
)

// DefaultMaxGapSeconds is the default gap threshold: heartbeats further
// apart than this start a new session.
const DefaultMaxGapSeconds int64 = 15 * 60

// ExtractHeartbeats validates and normalizes raw heartbeats: rows without a
// timestamp are dropped, fractional timestamps are truncated to whole
// seconds, and blank project names collapse to "". The result is sorted by
// timestamp (stable on ties).
func ExtractHeartbeats(raw []domain.RawHeartbeat) []domain.Heartbeat {
	entries := make([]domain.Heartbeat, 0, len(raw))
	for _, hb := range raw {
		if hb.Time == nil {
			continue
		}
		project := ""
		if hb.Project != nil {
			project = strings.TrimSpace(*hb.Project)
		}
		entries = append(entries, domain.Heartbeat{
			Time:    int64(*hb.Time),
			Project: project,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time < entries[j].Time
	})
	return entries
}

// EstimateSeconds sums the gaps between consecutive unique timestamps that
// are within maxGap. For timestamps that all belong to one session this
// equals last-first; duplicates contribute nothing.
func EstimateSeconds(times []int64, maxGap int64) int64 {
	unique := make([]int64, len(times))
	copy(unique, times)
	sort.Slice(unique, func(i, j int) bool { return unique[i] < unique[j] })

	var total int64
	for i := 1; i < len(unique); i++ {
		gap := unique[i] - unique[i-1]
		if gap > 0 && gap <= maxGap {
			total += gap
		}
	}
	return total
}

// BuildSessions clusters raw heartbeats into sessions. Consecutive
// heartbeats merge into the current session when the gap is at most
// maxGapSeconds (inclusive) and the project is unchanged; a project change
// splits even at gap zero. Duplicate timestamps within a project extend
// nothing and are skipped. Sessions come back in start-time order.
func BuildSessions(raw []domain.RawHeartbeat, maxGapSeconds int64) []domain.Session {
	entries := ExtractHeartbeats(raw)
	if len(entries) == 0 {
		return nil
	}

	var sessions []domain.Session
	times := []int64{entries[0].Time}
	project := entries[0].Project
	prev := entries[0].Time

	for _, entry := range entries[1:] {
		if entry.Time == prev {
			continue
		}
		if entry.Time-prev <= maxGapSeconds && entry.Project == project {
			times = append(times, entry.Time)
		} else {
			sessions = append(sessions, makeSession(times, project, maxGapSeconds))
			times = []int64{entry.Time}
			project = entry.Project
		}
		prev = entry.Time
	}

	return append(sessions, makeSession(times, project, maxGapSeconds))
}

func makeSession(times []int64, project string, maxGap int64) domain.Session {
	return domain.Session{
		Start:   times[0],
		End:     times[len(times)-1],
		Seconds: EstimateSeconds(times, maxGap),
		Project: project,
	}
}
