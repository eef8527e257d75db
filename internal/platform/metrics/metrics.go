package metrics

import (
	"sync/atomic"
	"time"
)

// Collector keeps in-process request counters. Cheap enough to always be on.
type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	clientErrors    uint64
	assignRequests  uint64
	totalDurationMs uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration, assignment bool) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	if status >= 400 && status < 500 {
		atomic.AddUint64(&c.clientErrors, 1)
	}
	if assignment {
		atomic.AddUint64(&c.assignRequests, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	clientErrs := atomic.LoadUint64(&c.clientErrors)
	assigns := atomic.LoadUint64(&c.assignRequests)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":       total,
		"errorsTotal":         errs,
		"clientErrorsTotal":   clientErrs,
		"assignRequestsTotal": assigns,
		"avgDurationMs":       avg,
		"totalDurationMs":     totalMs,
	}
}
