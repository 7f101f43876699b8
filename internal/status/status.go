// Package status implements the search's time-throttled progress report:
// prune counters printed at most once every ten seconds, with a running
// "total time" banner every sixth tick.
package status

import (
	"log/slog"
	"time"

	"github.com/haldun/bellman/search"
)

// Printer throttles status reports the way original_source/bellman.c's
// bellman_recurse did at the top of every frame: at most once per Interval,
// and the very first throttled tick reports nothing (it only starts the
// clock) — reports begin on the second tick onward.
type Printer struct {
	Interval    time.Duration
	BannerEvery int
	Logger      *slog.Logger

	last  time.Time
	ticks int
}

// NewPrinter returns a Printer configured with the original's defaults: a
// ten-second interval and a banner every sixth tick (one per minute).
func NewPrinter(logger *slog.Logger) *Printer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Printer{Interval: 10 * time.Second, BannerEvery: 6, Logger: logger}
}

// Tick reports counters if Interval has elapsed since the last report and
// returns whether it did. now is supplied by the caller, rather than read
// from time.Now internally, so callers can drive it deterministically in
// tests and so the search loop only pays for one clock read per frame.
func (p *Printer) Tick(now time.Time, counters search.Counters) bool {
	if !p.last.IsZero() && now.Sub(p.last) < p.Interval {
		return false
	}
	p.last = now

	if p.ticks > 0 {
		p.report(counters)
	}
	p.ticks++
	if p.BannerEvery > 0 && p.ticks%p.BannerEvery == 0 {
		p.Logger.Info("total time", "minutes", p.ticks/p.BannerEvery)
	}
	return true
}

func (p *Printer) report(counters search.Counters) {
	snapshot := counters.Snapshot()
	args := make([]any, 0, 2*len(snapshot)+2)
	args = append(args, "accepted", counters.Accepted)
	for _, c := range snapshot {
		args = append(args, c.Reason.String(), c.Count)
	}
	p.Logger.Info("search status", args...)
}
