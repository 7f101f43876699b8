package status_test

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/haldun/bellman/internal/status"
	"github.com/haldun/bellman/search"
)

func TestPrinterSkipsFirstTickAndThrottles(t *testing.T) {
	var buf bytes.Buffer
	p := status.NewPrinter(slog.New(slog.NewTextHandler(&buf, nil)))

	start := time.Unix(1000, 0)
	counters := search.Counters{}

	if !p.Tick(start, counters) {
		t.Fatal("first Tick should fire (it starts the clock)")
	}
	if buf.Len() != 0 {
		t.Fatalf("first Tick should report nothing, got %q", buf.String())
	}

	if p.Tick(start.Add(5*time.Second), counters) {
		t.Fatal("Tick within the interval should be throttled")
	}
	if buf.Len() != 0 {
		t.Fatal("throttled Tick should not log")
	}

	if !p.Tick(start.Add(11*time.Second), counters) {
		t.Fatal("Tick past the interval should fire")
	}
	if buf.Len() == 0 {
		t.Fatal("second real tick should report")
	}
}

func TestPrinterBannerEverySixthTick(t *testing.T) {
	var buf bytes.Buffer
	p := status.NewPrinter(slog.New(slog.NewTextHandler(&buf, nil)))
	p.Interval = time.Second

	now := time.Unix(0, 0)
	for i := 0; i < 6; i++ {
		now = now.Add(time.Second)
		p.Tick(now, search.Counters{})
	}
	if !bytes.Contains(buf.Bytes(), []byte("total time")) {
		t.Fatalf("expected a total-time banner after six ticks, got:\n%s", buf.String())
	}
}
