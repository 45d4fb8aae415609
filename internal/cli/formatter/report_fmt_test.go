package formatter

import (
	"testing"
	"time"

	"github.com/masaishi/wakalyze/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func localUnix(y int, m time.Month, d, hour, min int) int64 {
	return time.Date(y, m, d, hour, min, 0, 0, time.Local).Unix()
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		seconds int64
		want    string
	}{
		{0, "0h00m"},
		{300, "0h05m"},
		{88 * 60, "1h28m"},
		{3600, "1h00m"},
		{3661, "1h01m"},
		{5400, "1h30m"},
		{36000, "10h00m"},
	}
	for _, tc := range cases {
		got, err := FormatDuration(tc.seconds)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%d seconds", tc.seconds)
	}
}

func TestFormatDuration_NegativeFails(t *testing.T) {
	_, err := FormatDuration(-1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "9:30am", FormatClock(localUnix(2026, time.February, 1, 9, 30)))
	assert.Equal(t, "2:05pm", FormatClock(localUnix(2026, time.February, 1, 14, 5)))
	assert.Equal(t, "12:00pm", FormatClock(localUnix(2026, time.February, 1, 12, 0)))
	assert.Equal(t, "12:00am", FormatClock(localUnix(2026, time.February, 1, 0, 0)))
}

func TestFormatDateShort(t *testing.T) {
	assert.Equal(t, "2/1", FormatDateShort(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "12/25", FormatDateShort(time.Date(2026, time.December, 25, 0, 0, 0, 0, time.UTC)))
}

func TestMonthLabel(t *testing.T) {
	first := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026/02", MonthLabel(first, 0))
	assert.Equal(t, "2026/02 week 3", MonthLabel(first, 3))
}

func reportWeeks() []domain.WeekSessions {
	return []domain.WeekSessions{
		{
			Number: 2,
			Start:  time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC),
			End:    time.Date(2026, time.February, 8, 0, 0, 0, 0, time.UTC),
			Days: []domain.DaySessions{
				{
					Date: time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC),
					Sessions: []domain.Session{
						{
							Start:   localUnix(2026, time.February, 3, 9, 0),
							End:     localUnix(2026, time.February, 3, 10, 0),
							Seconds: 3600,
							Project: "wakalyze",
						},
						{
							Start:   localUnix(2026, time.February, 3, 11, 0),
							End:     localUnix(2026, time.February, 3, 11, 0),
							Seconds: 0,
							Project: "",
						},
					},
				},
			},
		},
		{
			Number: 3,
			Start:  time.Date(2026, time.February, 9, 0, 0, 0, 0, time.UTC),
			End:    time.Date(2026, time.February, 15, 0, 0, 0, 0, time.UTC),
			Days: []domain.DaySessions{
				{
					Date: time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC),
					Sessions: []domain.Session{
						{
							Start:   localUnix(2026, time.February, 10, 14, 2),
							End:     localUnix(2026, time.February, 10, 14, 31),
							Seconds: 29 * 60,
							Project: "project-a",
						},
					},
				},
			},
		},
	}
}

func TestBuildReportLines(t *testing.T) {
	lines, err := BuildReportLines("2026/02", reportWeeks())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"2026/02",
		"week 2 (2/2 ~ 2/8)",
		"- 2/3",
		"  - 9:00am ~ 10:00am (1h00m) wakalyze",
		"  - 11:00am ~ 11:00am (0h00m) unknown",
		"",
		"week 3 (2/9 ~ 2/15)",
		"- 2/10",
		"  - 2:02pm ~ 2:31pm (0h29m) project-a",
	}, lines)
}

func TestBuildReportLines_EmptyWeeks(t *testing.T) {
	lines, err := BuildReportLines("2026/02", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026/02"}, lines)
}

func TestBuildReportLines_NegativeDurationFails(t *testing.T) {
	weeks := reportWeeks()
	weeks[0].Days[0].Sessions[0].Seconds = -5

	_, err := BuildReportLines("2026/02", weeks)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRenderReport_ContainsReportContent(t *testing.T) {
	out, err := RenderReport("2026/02", reportWeeks())
	require.NoError(t, err)

	assert.Contains(t, out, "2026/02")
	assert.Contains(t, out, "week 2")
	assert.Contains(t, out, "- 2/3")
	assert.Contains(t, out, "1h00m")
	assert.Contains(t, out, "project-a")
	assert.Contains(t, out, "unknown")
}

func TestRenderFetchProgress(t *testing.T) {
	half := RenderFetchProgress(14, 28, 10)
	assert.Contains(t, half, "14/28")

	done := RenderFetchProgress(28, 28, 10)
	assert.Contains(t, done, "28/28")
	assert.NotContains(t, done, emptyBlock)

	over := RenderFetchProgress(30, 28, 10)
	assert.Contains(t, over, "28/28")
}
