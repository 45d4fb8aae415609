package service

import (
	"context"
	"time"

	"github.com/masaishi/wakalyze/internal/contract"
	"github.com/masaishi/wakalyze/internal/domain"
)

// HeartbeatSource provides the raw heartbeats for one calendar day,
// typically backed by the Wakapi compat API.
type HeartbeatSource interface {
	FetchHeartbeats(ctx context.Context, date time.Time) ([]domain.RawHeartbeat, error)
}

// AnalyzeService turns a month (or week) of heartbeats into the session
// report consumed by the renderer.
type AnalyzeService interface {
	Analyze(ctx context.Context, req contract.AnalyzeRequest) (*contract.AnalyzeResponse, error)
}
