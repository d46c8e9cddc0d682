package monitor

import (
	"sync/atomic"
	"time"
)

// QueryStats accumulates per-leg search timings across the life of an
// engine. Counters are atomic so the stats endpoint can read them while
// a query is being served.
type QueryStats struct {
	SortCount   uint64
	SearchCount uint64
	TreeNanos   uint64
	StackNanos  uint64
	QueueNanos  uint64
}

func NewQueryStats() *QueryStats {
	return &QueryStats{}
}

func (qs *QueryStats) RecordSort() {
	atomic.AddUint64(&qs.SortCount, 1)
}

func (qs *QueryStats) RecordSearch(tree, stack, queue time.Duration) {
	atomic.AddUint64(&qs.SearchCount, 1)
	atomic.AddUint64(&qs.TreeNanos, uint64(tree.Nanoseconds()))
	atomic.AddUint64(&qs.StackNanos, uint64(stack.Nanoseconds()))
	atomic.AddUint64(&qs.QueueNanos, uint64(queue.Nanoseconds()))
}

// TreeSpeedup is the ratio of accumulated linear-scan time (stack and
// queue averaged) to accumulated tree time. Zero until the tree has
// been timed at least once.
func (qs *QueryStats) TreeSpeedup() float64 {
	tree := atomic.LoadUint64(&qs.TreeNanos)
	if tree == 0 {
		return 0.0
	}
	linear := (atomic.LoadUint64(&qs.StackNanos) + atomic.LoadUint64(&qs.QueueNanos)) / 2
	return float64(linear) / float64(tree)
}

func (qs *QueryStats) Snapshot() map[string]interface{} {
	return map[string]interface{}{
		"sorts_total":       atomic.LoadUint64(&qs.SortCount),
		"searches_total":    atomic.LoadUint64(&qs.SearchCount),
		"tree_nanos_total":  atomic.LoadUint64(&qs.TreeNanos),
		"stack_nanos_total": atomic.LoadUint64(&qs.StackNanos),
		"queue_nanos_total": atomic.LoadUint64(&qs.QueueNanos),
		"tree_speedup":      qs.TreeSpeedup(),
	}
}
