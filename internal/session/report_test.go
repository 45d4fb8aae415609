package session

import (
	"testing"
	"time"

	"github.com/masaishi/wakalyze/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReport_MonthEndToEnd(t *testing.T) {
	first := date(2026, time.February, 1)
	feb3 := date(2026, time.February, 3)
	feb10 := date(2026, time.February, 10)

	days := []DayHeartbeats{
		{Date: feb3, Heartbeats: []domain.RawHeartbeat{
			hb(float64(feb3.Add(9*time.Hour).Unix()), "wakalyze"),
			hb(float64(feb3.Add(9*time.Hour+10*time.Minute).Unix()), "wakalyze"),
			hb(float64(feb3.Add(9*time.Hour+12*time.Minute).Unix()), "other"),
		}},
		{Date: feb10, Heartbeats: []domain.RawHeartbeat{
			hb(float64(feb10.Add(14*time.Hour).Unix()), "wakalyze"),
		}},
	}

	weeks, err := BuildReport(days, first, 0, "", DefaultMaxGapSeconds)
	require.NoError(t, err)

	require.Len(t, weeks, 2)
	assert.Equal(t, 2, weeks[0].Number)
	assert.Equal(t, 3, weeks[1].Number)
	require.Len(t, weeks[0].Days, 1)
	require.Len(t, weeks[0].Days[0].Sessions, 2, "project change must split the stream")
}

func TestBuildReport_WeekFilter(t *testing.T) {
	first := date(2026, time.February, 1)
	feb3 := date(2026, time.February, 3)

	days := []DayHeartbeats{
		{Date: feb3, Heartbeats: []domain.RawHeartbeat{
			hb(float64(feb3.Add(9*time.Hour).Unix()), "wakalyze"),
		}},
	}

	weeks, err := BuildReport(days, first, 2, "", DefaultMaxGapSeconds)
	require.NoError(t, err)
	require.Len(t, weeks, 1)
	assert.Equal(t, 2, weeks[0].Number)
}

func TestBuildReport_WeekOutOfRange(t *testing.T) {
	_, err := BuildReport(nil, date(2026, time.February, 1), 6, "", DefaultMaxGapSeconds)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestBuildReport_ProjectFilterApplied(t *testing.T) {
	first := date(2026, time.February, 1)
	feb3 := date(2026, time.February, 3)

	days := []DayHeartbeats{
		{Date: feb3, Heartbeats: []domain.RawHeartbeat{
			hb(float64(feb3.Add(9*time.Hour).Unix()), "wakalyze"),
			hb(float64(feb3.Add(11*time.Hour).Unix()), "other"),
		}},
	}

	weeks, err := BuildReport(days, first, 0, "waka", DefaultMaxGapSeconds)
	require.NoError(t, err)
	require.Len(t, weeks, 1)
	require.Len(t, weeks[0].Days[0].Sessions, 1)
	assert.Equal(t, "wakalyze", weeks[0].Days[0].Sessions[0].Project)
}

func TestBuildReport_InvalidGap(t *testing.T) {
	_, err := BuildReport(nil, date(2026, time.February, 1), 0, "", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBuildReport_EmptyInputYieldsEmptyReport(t *testing.T) {
	weeks, err := BuildReport(nil, date(2026, time.February, 1), 0, "", DefaultMaxGapSeconds)
	require.NoError(t, err)
	assert.Empty(t, weeks)
}
