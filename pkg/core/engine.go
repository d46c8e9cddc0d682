package core

import (
	"fmt"
	"log"
	"strings"
	"time"

	"custdb/pkg/common"
	"custdb/pkg/core/structure"
	"custdb/pkg/monitor"
)

// Comparison is the result of one search executed three ways: against
// the AVL index, a freshly populated stack and a freshly populated
// queue. Records carries the matches; the three durations are wall
// clock per leg.
type Comparison struct {
	Records       []common.Record
	TreeDuration  time.Duration
	StackDuration time.Duration
	QueueDuration time.Duration
}

// CountryCount is one row of the per-country statistics.
type CountryCount struct {
	Country string
	Count   int
}

// Statistics is the aggregate view over the whole dataset.
type Statistics struct {
	Records   int
	Countries int
	Counts    []CountryCount // descending by count
	Earliest  common.Date
	Latest    common.Date
}

// Engine owns the canonical record list and the secondary AVL index.
// It is a state machine over the last applied sort key: sorting relinks
// the list in place, rebuilds the index on the new key and moves the
// state; tree-backed searches are refused until the first sort.
//
// The engine is not safe for concurrent use; callers serialize access.
type Engine struct {
	list    *structure.List[common.Record]
	index   *structure.Tree[common.Key, common.Record]
	active  common.SortKey
	idBloom *structure.BloomFilter
	stats   *monitor.QueryStats
}

func NewEngine() *Engine {
	return &Engine{
		list:  structure.NewList[common.Record](),
		stats: monitor.NewQueryStats(),
	}
}

// Load ingests raw field tuples in input order, replacing any previous
// dataset. Short rows are padded with empty fields; a bad date becomes
// the no-date marker inside NewRecord. Loading drops the active index.
func (e *Engine) Load(rows [][]string) int {
	e.list.Clear()
	e.index = nil
	e.active = common.KeyNone

	for _, row := range rows {
		for len(row) < 9 {
			row = append(row, "")
		}
		rec := common.NewRecord(row[0], row[1], row[2], row[3], row[4], row[5], row[6], row[7], row[8])
		e.list.Append(rec)
	}

	n := e.list.Len()
	e.idBloom = structure.NewBloomFilter(uint(max(n, 16)), 0.01)
	for rec := range e.list.All() {
		e.idBloom.Add(strings.ToLower(rec.CustomerID))
	}
	log.Printf("[Engine] Loaded %d records.", n)
	return n
}

func (e *Engine) Len() int                  { return e.list.Len() }
func (e *Engine) ActiveKey() common.SortKey { return e.active }

// SortBy reorders the list by the given key and rebuilds the AVL index
// on it. Merge sort serves the string keys; quicksort serves the date
// key, where no-date records compare greater and end up last.
func (e *Engine) SortBy(kind common.SortKey) error {
	if kind == common.KeyNone {
		return fmt.Errorf("sort: invalid key %q", kind)
	}

	cmp := common.RecordComparator(kind)
	start := time.Now()
	if kind == common.KeyDate {
		e.list.QuickSort(cmp)
	} else {
		e.list.MergeSort(cmp)
	}

	tree := structure.NewTree[common.Key, common.Record](common.CompareKeys)
	for rec := range e.list.All() {
		tree.Insert(common.KeyOf(kind, rec), rec)
	}
	e.index = tree
	e.active = kind
	e.stats.RecordSort()
	log.Printf("[Engine] Sorted %d records by %s and rebuilt index (%d keys, height %d) in %v.",
		e.list.Len(), kind, tree.Keys(), tree.Height(), time.Since(start))
	return nil
}

// Search answers an exact-field query three ways and times each leg.
// The field may be any record field; when it matches the active sort
// key the tree leg descends in O(log n), otherwise the tree leg is an
// in-order predicate traversal. Before any sort the whole comparison
// fails with ErrNoIndex; use LinearSearch then.
func (e *Engine) Search(field, value string) (*Comparison, error) {
	pred, err := matchPred(field, value)
	if err != nil {
		return nil, err
	}
	if e.active == common.KeyNone {
		return nil, common.ErrNoIndex
	}

	kind, isSortField := common.ParseSortKey(field)
	tree := treeLeg{run: func() []common.Record {
		if isSortField && kind == e.active {
			key := common.KeyFor(e.active, value)
			if e.active == common.KeyID && !e.idBloom.Contains(key.Str) {
				return nil
			}
			return e.index.Find(key)
		}
		return e.scanIndex(pred)
	}}

	return e.compare(tree, pred), nil
}

// SearchPred answers an arbitrary predicate query three ways. The tree
// leg is always an in-order traversal since a bare predicate cannot
// steer the descent; it still requires an index so the comparison is
// against the same indexed state as the other search forms.
func (e *Engine) SearchPred(pred func(common.Record) bool) (*Comparison, error) {
	if e.active == common.KeyNone {
		return nil, common.ErrNoIndex
	}
	tree := treeLeg{run: func() []common.Record {
		return e.scanIndex(pred)
	}}
	return e.compare(tree, pred), nil
}

// SearchRange answers an inclusive subscription-date interval query
// three ways. The tree leg uses the pruned range traversal when the
// active key is the date, and a predicate traversal for any other
// indexed key.
func (e *Engine) SearchRange(lo, hi common.Date) (*Comparison, error) {
	if e.active == common.KeyNone {
		return nil, common.ErrNoIndex
	}

	pred := func(r common.Record) bool {
		if !r.Subscribed.Valid {
			return false
		}
		return r.Subscribed.Compare(lo) >= 0 && r.Subscribed.Compare(hi) <= 0
	}
	tree := treeLeg{run: func() []common.Record {
		if e.active == common.KeyDate {
			return e.index.Range(common.Key{Kind: common.KeyDate, Date: lo}, common.Key{Kind: common.KeyDate, Date: hi})
		}
		return e.scanIndex(pred)
	}}

	return e.compare(tree, pred), nil
}

// LinearSearch runs only the stack and queue legs. It needs no index
// and so works in any state; the tree duration stays zero.
func (e *Engine) LinearSearch(field, value string) (*Comparison, error) {
	pred, err := matchPred(field, value)
	if err != nil {
		return nil, err
	}
	return e.LinearSearchPred(pred), nil
}

// LinearSearchPred is LinearSearch for an arbitrary predicate.
func (e *Engine) LinearSearchPred(pred func(common.Record) bool) *Comparison {
	stack, queue := e.populateLinear()
	result := &Comparison{}
	_, result.StackDuration = timeLeg(stackLeg{stack: stack, pred: pred})
	result.Records, result.QueueDuration = timeLeg(queueLeg{queue: queue, pred: pred})
	return result
}

// compare runs the tree leg plus fresh stack and queue legs over the
// same predicate. The tree answer is authoritative; the linear legs
// exist for the timing comparison.
func (e *Engine) compare(tree treeLeg, pred func(common.Record) bool) *Comparison {
	stack, queue := e.populateLinear()

	result := &Comparison{}
	result.Records, result.TreeDuration = timeLeg(tree)
	_, result.StackDuration = timeLeg(stackLeg{stack: stack, pred: pred})
	_, result.QueueDuration = timeLeg(queueLeg{queue: queue, pred: pred})

	e.stats.RecordSearch(result.TreeDuration, result.StackDuration, result.QueueDuration)
	return result
}

// populateLinear builds the single-use stack and queue for one search.
// Both are discarded when the comparison returns.
func (e *Engine) populateLinear() (*structure.Stack[common.Record], *structure.Queue[common.Record]) {
	stack := structure.NewStack[common.Record]()
	queue := structure.NewQueue[common.Record]()
	for rec := range e.list.All() {
		stack.Push(rec)
		queue.Enqueue(rec)
	}
	return stack, queue
}

func (e *Engine) scanIndex(pred func(common.Record) bool) []common.Record {
	var out []common.Record
	for _, bucket := range e.index.InOrder() {
		for _, rec := range bucket {
			if pred(rec) {
				out = append(out, rec)
			}
		}
	}
	return out
}

func timeLeg(s Searcher) ([]common.Record, time.Duration) {
	start := time.Now()
	records := s.Run()
	return records, time.Since(start)
}

func matchPred(field, value string) (func(common.Record) bool, error) {
	if _, ok := (common.Record{}).Field(field); !ok {
		return nil, fmt.Errorf("search: unknown field %q", field)
	}
	want := strings.TrimSpace(value)
	return func(r common.Record) bool {
		got, _ := r.Field(field)
		return strings.EqualFold(got, want)
	}, nil
}

// First returns up to n records in current list order; n < 0 means all.
func (e *Engine) First(n int) []common.Record {
	if n < 0 || n > e.list.Len() {
		n = e.list.Len()
	}
	out := make([]common.Record, 0, n)
	for rec := range e.list.All() {
		if len(out) >= n {
			break
		}
		out = append(out, rec)
	}
	return out
}

// Levels dumps the active index breadth first as (depth, key, bucket
// size) entries, root first.
func (e *Engine) Levels() ([]structure.LevelEntry[common.Key], error) {
	if e.active == common.KeyNone {
		return nil, common.ErrNoIndex
	}
	var out []structure.LevelEntry[common.Key]
	for entry := range e.index.Levels() {
		out = append(out, entry)
	}
	return out, nil
}

// Statistics aggregates the dataset: distinct countries with their
// record counts (descending), and the earliest and latest subscription
// dates. Counting goes through a country-keyed AVL tree and the
// ordering through the list's own merge sort, so the operation stays on
// the engine's structures.
func (e *Engine) Statistics() Statistics {
	byCountry := structure.NewTree[string, common.Record](strings.Compare)
	var earliest, latest common.Date
	for rec := range e.list.All() {
		byCountry.Insert(strings.ToLower(rec.Country), rec)
		if !rec.Subscribed.Valid {
			continue
		}
		if !earliest.Valid || rec.Subscribed.Before(earliest) {
			earliest = rec.Subscribed
		}
		if !latest.Valid || latest.Before(rec.Subscribed) {
			latest = rec.Subscribed
		}
	}

	pairs := structure.NewList[CountryCount]()
	for _, bucket := range byCountry.InOrder() {
		pairs.Append(CountryCount{Country: bucket[0].Country, Count: len(bucket)})
	}
	pairs.MergeSort(func(a, b CountryCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Country, b.Country)
	})

	counts := make([]CountryCount, 0, pairs.Len())
	for cc := range pairs.All() {
		counts = append(counts, cc)
	}

	return Statistics{
		Records:   e.list.Len(),
		Countries: byCountry.Keys(),
		Counts:    counts,
		Earliest:  earliest,
		Latest:    latest,
	}
}

// Stats reports engine and index counters for the stats endpoint.
func (e *Engine) Stats() map[string]interface{} {
	out := map[string]interface{}{
		"record_count": e.list.Len(),
		"active_key":   e.active.String(),
	}
	if e.index != nil {
		out["index_keys"] = e.index.Keys()
		out["index_height"] = e.index.Height()
	}
	if e.idBloom != nil {
		for k, v := range e.idBloom.Stats() {
			out[k] = v
		}
	}
	for k, v := range e.stats.Snapshot() {
		out[k] = v
	}
	return out
}
