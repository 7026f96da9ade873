package rowan

import (
	"fmt"
	"os"
	"time"
)

// frameStats holds per-frame sampling metrics. Only populated while the
// debug overlay is enabled.
type frameStats struct {
	sampleTime    time.Duration
	cellsSampled  int
	cellsCleared  int
	cellsDrawn    int
	actorsVisible int
}

// logFrameStats prints sampling metrics to stderr. Debug-gated; the
// release path never formats anything.
func (b *Board) logFrameStats() {
	win := b.viewport.Window()
	_, _ = fmt.Fprintf(os.Stderr,
		"[rowan] turn %d | window (%d,%d)-(%d,%d) | sample: %v | cells set/cleared/drawn: %d/%d/%d | actors visible: %d\n",
		b.turnsTaken, win.XMin, win.YMin, win.XMax, win.YMax,
		b.stats.sampleTime, b.stats.cellsSampled, b.stats.cellsCleared,
		b.stats.cellsDrawn, b.stats.actorsVisible)
}
