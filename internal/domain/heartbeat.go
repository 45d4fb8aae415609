package domain

import "time"

// RawHeartbeat is a single heartbeat record as delivered by the Wakapi
// compat API. Both fields are optional in the wire format: trackers may
// omit the project, and malformed rows may lack a timestamp entirely.
type RawHeartbeat struct {
	Time    *float64 `json:"time"`
	Project *string  `json:"project"`
}

// Heartbeat is a validated heartbeat: a unix timestamp (seconds) plus the
// project name, empty when the tracker reported none.
type Heartbeat struct {
	Time    int64
	Project string
}

// Session is a contiguous block of activity inferred by merging heartbeats
// closer together than the gap threshold. Start <= End always holds; a
// session built from a single heartbeat has Seconds == 0.
type Session struct {
	Start   int64
	End     int64
	Seconds int64
	Project string
}

// DaySessions holds the sessions attributed to one calendar date, ordered
// by start time.
type DaySessions struct {
	Date     time.Time
	Sessions []Session
}

// WeekSessions is one Monday-start week row of a month report. Number is
// the week's ordinal within the month under the "contains the 1st" rule,
// so Start may fall in the previous month and End in the next.
type WeekSessions struct {
	Number int
	Start  time.Time
	End    time.Time
	Days   []DaySessions
}
