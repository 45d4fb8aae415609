package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/masaishi/wakalyze/internal/domain"
)

// FormatDuration converts a span of elapsed seconds into the "HhMMm" label
// used on session lines: hours unpadded, minutes zero-padded. Negative
// durations are invalid input.
func FormatDuration(seconds int64) (string, error) {
	if seconds < 0 {
		return "", fmt.Errorf("%w: negative duration", domain.ErrInvalidInput)
	}
	return fmt.Sprintf("%dh%02dm", seconds/3600, (seconds%3600)/60), nil
}

// FormatClock renders a unix timestamp as a local 12-hour clock label such
// as "9:30am" or "2:05pm".
func FormatClock(ts int64) string {
	return strings.ToLower(time.Unix(ts, 0).Format("3:04PM"))
}

// FormatDateShort renders a date as "M/D" without zero padding.
func FormatDateShort(date time.Time) string {
	return fmt.Sprintf("%d/%d", int(date.Month()), date.Day())
}

// MonthLabel renders the report label line: "2026/02", with the week number
// appended when a single week was requested.
func MonthLabel(first time.Time, week int) string {
	label := first.Format("2006/01")
	if week > 0 {
		label = fmt.Sprintf("%s week %d", label, week)
	}
	return label
}

// BuildReportLines produces the plain-text report: the label line, then per
// week row a "week N" header with its date window, day bullets, and one
// session line each. Week blocks are separated by a blank line. Sessions
// without a project render as "unknown".
func BuildReportLines(label string, weeks []domain.WeekSessions) ([]string, error) {
	lines := []string{label}
	for i, week := range weeks {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, fmt.Sprintf("week %d (%s ~ %s)",
			week.Number, FormatDateShort(week.Start), FormatDateShort(week.End)))
		for _, day := range week.Days {
			lines = append(lines, fmt.Sprintf("- %s", FormatDateShort(day.Date)))
			for _, s := range day.Sessions {
				duration, err := FormatDuration(s.Seconds)
				if err != nil {
					return nil, err
				}
				project := s.Project
				if project == "" {
					project = "unknown"
				}
				lines = append(lines, fmt.Sprintf("  - %s ~ %s (%s) %s",
					FormatClock(s.Start), FormatClock(s.End), duration, project))
			}
		}
	}
	return lines, nil
}

// RenderReport is BuildReportLines with terminal styling applied per line
// class: label in the header style, week rows bold, session metadata dimmed.
func RenderReport(label string, weeks []domain.WeekSessions) (string, error) {
	var b strings.Builder
	b.WriteString(Header(label))
	b.WriteString("\n")
	for i, week := range weeks {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Bold(fmt.Sprintf("week %d", week.Number)))
		b.WriteString(Dim(fmt.Sprintf(" (%s ~ %s)", FormatDateShort(week.Start), FormatDateShort(week.End))))
		b.WriteString("\n")
		for _, day := range week.Days {
			b.WriteString(StyleBlue.Render(fmt.Sprintf("- %s", FormatDateShort(day.Date))))
			b.WriteString("\n")
			for _, s := range day.Sessions {
				duration, err := FormatDuration(s.Seconds)
				if err != nil {
					return "", err
				}
				project := s.Project
				if project == "" {
					project = "unknown"
				}
				b.WriteString(fmt.Sprintf("  - %s ~ %s %s %s\n",
					FormatClock(s.Start), FormatClock(s.End),
					Dim(fmt.Sprintf("(%s)", duration)), StyleFg.Render(project)))
			}
		}
	}
	return b.String(), nil
}
