package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderFetchProgress renders the heartbeat-loading progress line shown on
// stderr while per-day fetches run, like "Loading heartbeats [████░░] 12/28".
// The bar colors green as it approaches completion.
func RenderFetchProgress(done, total, width int) string {
	if width < 2 {
		width = 2
	}
	pct := 0.0
	if total > 0 {
		if done > total {
			done = total
		}
		if done < 0 {
			done = 0
		}
		pct = float64(done) / float64(total)
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleYellow
	if pct >= 1 {
		style = StyleGreen
	}
	return fmt.Sprintf("%s [%s] %d/%d", Dim("Loading heartbeats"), style.Render(bar), done, total)
}
