package metrics

import (
	"sync"
	"time"
)

type fileStats struct {
	loads           int
	errors          int
	rows            int
	lastLoadLatency time.Duration
}

type queryStats struct {
	calls       int
	rows        int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about dataset loads
// and queries. It is intentionally simple so it can be swapped for a
// real backend later.
type Recorder struct {
	mu      sync.Mutex
	files   map[string]*fileStats
	queries map[string]*queryStats
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		files:   make(map[string]*fileStats),
		queries: make(map[string]*queryStats),
		otel:    otel,
	}
}

// RecordFileLoad increments counters for one source file read and
// stores the last observed latency.
func (r *Recorder) RecordFileLoad(file string, rows int, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureFile(file)
	r.mu.Lock()
	stats.loads++
	stats.lastLoadLatency = duration
	if err != nil {
		stats.errors++
	} else {
		stats.rows += rows
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFileLoad(file, rows, duration, err)
	}
}

// RecordQuery tracks one query call and the number of rows it returned.
func (r *Recorder) RecordQuery(query string, rows int, duration time.Duration) {
	if r == nil {
		return
	}

	stats := r.ensureQuery(query)
	r.mu.Lock()
	stats.calls++
	stats.rows += rows
	stats.lastLatency = duration
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordQuery(query, rows, duration)
	}
}

// FileSnapshot is a copy of the current stats for one source file.
type FileSnapshot struct {
	Loads           int
	Errors          int
	Rows            int
	LastLoadLatency time.Duration
}

// QuerySnapshot is a copy of the current stats for one query.
type QuerySnapshot struct {
	Calls       int
	Rows        int
	LastLatency time.Duration
}

// FileLoads returns the total load attempts recorded for a file.
func (r *Recorder) FileLoads(file string) int {
	return r.FileSnapshot(file).Loads
}

// FileErrors returns the total failed loads recorded for a file.
func (r *Recorder) FileErrors(file string) int {
	return r.FileSnapshot(file).Errors
}

// FileRows returns the total rows successfully loaded from a file.
func (r *Recorder) FileRows(file string) int {
	return r.FileSnapshot(file).Rows
}

// QueryCalls returns the total calls recorded for a query.
func (r *Recorder) QueryCalls(query string) int {
	return r.QuerySnapshot(query).Calls
}

// QueryRows returns the total rows returned by a query.
func (r *Recorder) QueryRows(query string) int {
	return r.QuerySnapshot(query).Rows
}

// FileSnapshot returns a copy of the current stats for the file.
func (r *Recorder) FileSnapshot(file string) FileSnapshot {
	if r == nil {
		return FileSnapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.files[file]; ok && stats != nil {
		return FileSnapshot{
			Loads:           stats.loads,
			Errors:          stats.errors,
			Rows:            stats.rows,
			LastLoadLatency: stats.lastLoadLatency,
		}
	}
	return FileSnapshot{}
}

// QuerySnapshot returns a copy of the current stats for the query.
func (r *Recorder) QuerySnapshot(query string) QuerySnapshot {
	if r == nil {
		return QuerySnapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.queries[query]; ok && stats != nil {
		return QuerySnapshot{
			Calls:       stats.calls,
			Rows:        stats.rows,
			LastLatency: stats.lastLatency,
		}
	}
	return QuerySnapshot{}
}

func (r *Recorder) ensureFile(file string) *fileStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.files[file]
	if !ok {
		stats = &fileStats{}
		r.files[file] = stats
	}
	return stats
}

func (r *Recorder) ensureQuery(query string) *queryStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.queries[query]
	if !ok {
		stats = &queryStats{}
		r.queries[query] = stats
	}
	return stats
}
