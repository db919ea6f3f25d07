package metrics

import (
	"sync/atomic"
	"time"
)

type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	totalDurationMs uint64
	runsGenerated   uint64
	linesCalculated uint64
	linesSkipped    uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) RecordRun(calculatedLines, skippedLines int) {
	atomic.AddUint64(&c.runsGenerated, 1)
	atomic.AddUint64(&c.linesCalculated, uint64(calculatedLines))
	atomic.AddUint64(&c.linesSkipped, uint64(skippedLines))
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":        total,
		"errorsTotal":          errs,
		"avgDurationMs":        avg,
		"runsGeneratedTotal":   atomic.LoadUint64(&c.runsGenerated),
		"linesCalculatedTotal": atomic.LoadUint64(&c.linesCalculated),
		"linesSkippedTotal":    atomic.LoadUint64(&c.linesSkipped),
	}
}
