package session

import (
	"strings"

	"github.com/masaishi/wakalyze/internal/domain"
)

// FilterDays keeps only sessions whose project contains at least one of the
// comma-separated filter terms as a case-insensitive substring. An empty
// filter (or one that is all commas/whitespace) returns the input
// unchanged. Days left with no sessions are dropped.
func FilterDays(days []domain.DaySessions, filter string) []domain.DaySessions {
	needles := splitTerms(filter)
	if len(needles) == 0 {
		return days
	}

	var out []domain.DaySessions
	for _, day := range days {
		var kept []domain.Session
		for _, s := range day.Sessions {
			if matchesAny(s.Project, needles) {
				kept = append(kept, s)
			}
		}
		if len(kept) > 0 {
			out = append(out, domain.DaySessions{Date: day.Date, Sessions: kept})
		}
	}
	return out
}

func splitTerms(filter string) []string {
	var terms []string
	for _, part := range strings.Split(filter, ",") {
		term := strings.ToLower(strings.TrimSpace(part))
		if term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}

func matchesAny(project string, needles []string) bool {
	proj := strings.ToLower(project)
	for _, needle := range needles {
		if strings.Contains(proj, needle) {
			return true
		}
	}
	return false
}
