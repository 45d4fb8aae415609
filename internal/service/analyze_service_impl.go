package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/masaishi/wakalyze/internal/cli/formatter"
	"github.com/masaishi/wakalyze/internal/contract"
	"github.com/masaishi/wakalyze/internal/domain"
	"github.com/masaishi/wakalyze/internal/repository"
	"github.com/masaishi/wakalyze/internal/session"
)

// analyzeServiceImpl implements AnalyzeService on top of a heartbeat source
// and an optional local cache.
type analyzeServiceImpl struct {
	source   HeartbeatSource
	cache    repository.HeartbeatCacheRepo // nil disables caching
	now      func() time.Time
	progress func(done, total int) // nil disables progress reporting
}

// NewAnalyzeService creates an AnalyzeService. cache may be nil to disable
// the local heartbeat cache; progress may be nil when no progress reporting
// is wanted.
func NewAnalyzeService(source HeartbeatSource, cache repository.HeartbeatCacheRepo, progress func(done, total int)) AnalyzeService {
	return &analyzeServiceImpl{
		source:   source,
		cache:    cache,
		now:      time.Now,
		progress: progress,
	}
}

func (s *analyzeServiceImpl) Analyze(ctx context.Context, req contract.AnalyzeRequest) (*contract.AnalyzeResponse, error) {
	if req.MaxGapSeconds <= 0 {
		return nil, fmt.Errorf("%w: max gap must be greater than 0", domain.ErrInvalidInput)
	}

	start, end := req.Month, domain.MonthLastDay(req.Month)
	if req.Week > 0 {
		var err error
		start, end, err = domain.WeekRange(req.Month, req.Week)
		if err != nil {
			return nil, err
		}
	}

	dates := domain.DatesBetween(start, end)
	days := make([]session.DayHeartbeats, 0, len(dates))
	fetched := 0
	for i, date := range dates {
		heartbeats, fromNetwork, err := s.dayHeartbeats(ctx, req.User, date)
		if err != nil {
			return nil, err
		}
		if fromNetwork {
			fetched++
		}
		days = append(days, session.DayHeartbeats{Date: date, Heartbeats: heartbeats})
		if s.progress != nil {
			s.progress(i+1, len(dates))
		}
	}

	weeks, err := session.BuildReport(days, req.Month, req.Week, req.Filter, req.MaxGapSeconds)
	if err != nil {
		return nil, err
	}

	return &contract.AnalyzeResponse{
		Label:       formatter.MonthLabel(req.Month, req.Week),
		Weeks:       weeks,
		DaysFetched: fetched,
	}, nil
}

// dayHeartbeats returns one day's heartbeats, preferring the cache for days
// that are already over. Today and future days are always fetched fresh,
// and only completed days are written back, so a partially-reported day
// never sticks.
func (s *analyzeServiceImpl) dayHeartbeats(ctx context.Context, user string, date time.Time) ([]domain.RawHeartbeat, bool, error) {
	cacheable := s.cache != nil && user != "" && date.Before(s.today())

	if cacheable {
		heartbeats, err := s.cache.Get(ctx, user, date)
		if err == nil {
			return heartbeats, false, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, false, err
		}
	}

	heartbeats, err := s.source.FetchHeartbeats(ctx, date)
	if err != nil {
		return nil, false, err
	}

	if cacheable {
		if err := s.cache.Put(ctx, user, date, heartbeats); err != nil {
			return nil, false, err
		}
	}
	return heartbeats, true, nil
}

func (s *analyzeServiceImpl) today() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
