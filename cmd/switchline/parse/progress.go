package parse

import (
	"fmt"
	"io"
	"sync"
	"time"
)

const defaultProgressIntervalMs = 500

type progressReporter struct {
	enabled  bool
	interval time.Duration
	w        io.Writer

	mu        sync.Mutex
	processed int
	failed    int
}

func newProgressReporter(enabled bool, intervalMs int, w io.Writer) *progressReporter {
	if !enabled {
		return &progressReporter{enabled: false}
	}
	if intervalMs <= 0 {
		intervalMs = defaultProgressIntervalMs
	}
	return &progressReporter{
		enabled:  true,
		interval: time.Duration(intervalMs) * time.Millisecond,
		w:        w,
	}
}

// start emits a snapshot every interval until the returned stop func is
// called; stop emits the final snapshot.
func (p *progressReporter) start() (stop func()) {
	if p == nil || !p.enabled {
		return func() {}
	}
	p.emit()
	ticker := time.NewTicker(p.interval)
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		for {
			select {
			case <-ticker.C:
				p.emit()
			case <-done:
				return
			}
		}
	}()
	return func() {
		ticker.Stop()
		close(done)
		<-finished
		p.emit()
	}
}

func (p *progressReporter) observe(r batchResult) {
	if p == nil || !p.enabled {
		return
	}
	p.mu.Lock()
	p.processed = r.total
	p.failed = r.failed
	p.mu.Unlock()
}

func (p *progressReporter) emit() {
	if p == nil || !p.enabled || p.w == nil {
		return
	}
	p.mu.Lock()
	processed := p.processed
	failed := p.failed
	_, _ = fmt.Fprintf(p.w, "progress parsed=%d failed=%d\n", processed, failed)
	p.mu.Unlock()
}
