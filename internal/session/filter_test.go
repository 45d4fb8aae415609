package session

import (
	"testing"
	"time"

	"github.com/masaishi/wakalyze/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayWith(date time.Time, projects ...string) domain.DaySessions {
	day := domain.DaySessions{Date: date}
	for i, p := range projects {
		start := int64(i * 1000)
		day.Sessions = append(day.Sessions, domain.Session{
			Start: start, End: start + 100, Seconds: 100, Project: p,
		})
	}
	return day
}

var filterDate = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

func TestFilterDays_EmptyFilterReturnsAll(t *testing.T) {
	days := []domain.DaySessions{dayWith(filterDate, "foo")}

	assert.Equal(t, days, FilterDays(days, ""))
	assert.Equal(t, days, FilterDays(days, " , , "))
}

func TestFilterDays_SubstringMatch(t *testing.T) {
	days := []domain.DaySessions{dayWith(filterDate, "my-project", "other")}

	result := FilterDays(days, "proj")

	require.Len(t, result, 1)
	require.Len(t, result[0].Sessions, 1)
	assert.Equal(t, "my-project", result[0].Sessions[0].Project)
}

func TestFilterDays_CaseInsensitive(t *testing.T) {
	days := []domain.DaySessions{dayWith(filterDate, "MyProject")}

	result := FilterDays(days, "myproject")

	require.Len(t, result, 1)
}

func TestFilterDays_CommaSeparatedMatchesAny(t *testing.T) {
	days := []domain.DaySessions{dayWith(filterDate, "foo", "bar", "baz")}

	result := FilterDays(days, "foo,bar")

	require.Len(t, result, 1)
	require.Len(t, result[0].Sessions, 2)
	assert.Equal(t, "foo", result[0].Sessions[0].Project)
	assert.Equal(t, "bar", result[0].Sessions[1].Project)
}

func TestFilterDays_TermsTrimmed(t *testing.T) {
	days := []domain.DaySessions{dayWith(filterDate, "bar")}

	result := FilterDays(days, " , bar , ")

	require.Len(t, result, 1)
}

func TestFilterDays_DropsEmptiedDays(t *testing.T) {
	days := []domain.DaySessions{dayWith(filterDate, "foo")}

	assert.Empty(t, FilterDays(days, "bar"))
}

func TestFilterDays_PreservesOrder(t *testing.T) {
	d1 := dayWith(filterDate, "alpha", "beta")
	d2 := dayWith(filterDate.AddDate(0, 0, 1), "beta", "alpha")
	result := FilterDays([]domain.DaySessions{d1, d2}, "alpha,beta")

	require.Len(t, result, 2)
	assert.Equal(t, "alpha", result[0].Sessions[0].Project)
	assert.Equal(t, "beta", result[1].Sessions[0].Project)
}
