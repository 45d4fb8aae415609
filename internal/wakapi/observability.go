package wakapi

import (
	"fmt"
	"io"
	"sync"
)

// FetchEvent records one completed heartbeat fetch for observability.
type FetchEvent struct {
	Date      string
	Count     int
	LatencyMs int64
	Success   bool
	Error     string
}

// Observer receives fetch completion events.
type Observer interface {
	OnFetchComplete(event FetchEvent)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnFetchComplete(FetchEvent) {}

// LogObserver writes one line per fetch to the given writer, typically
// stderr. Enabled via WAKALYZE_LOG_CALLS.
type LogObserver struct {
	mu sync.Mutex
	w  io.Writer
}

// NewLogObserver creates a LogObserver writing to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnFetchComplete(event FetchEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if event.Success {
		fmt.Fprintf(o.w, "[wakapi] %s: %d heartbeats in %dms\n", event.Date, event.Count, event.LatencyMs)
		return
	}
	fmt.Fprintf(o.w, "[wakapi] %s: FAILED after %dms: %s\n", event.Date, event.LatencyMs, event.Error)
}
