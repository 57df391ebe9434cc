package store

import (
	"sync"
	"time"

	"github.com/joaquinbejar/deribit-fix/message"
)

// Tick is one market data entry recorded off a snapshot or
// incremental refresh, flattened for storage independent of which
// message carried it.
type Tick struct {
	Timestamp  time.Time
	Symbol     string
	EntryType  string
	Px         string
	Size       string
	MDReqID    string
	IsSnapshot bool
}

// TickStore is a fixed-capacity ring buffer of recent market data
// entries per symbol, trading unbounded growth for O(1) inserts. It
// is intended to back a local view of recent book/trade activity
// between snapshots, not as the system of record — that is
// SQLiteStore's job.
type TickStore struct {
	mu      sync.RWMutex
	ticks   []Tick
	head    int
	count   int
	maxSize int
}

// NewTickStore returns a TickStore with its ring buffer pre-allocated
// to maxSize entries.
func NewTickStore(maxSize int) *TickStore {
	return &TickStore{
		ticks:   make([]Tick, maxSize),
		maxSize: maxSize,
	}
}

// AddSnapshot records every entry of a full refresh.
func (ts *TickStore) AddSnapshot(s *message.MarketDataSnapshotFullRefresh) {
	ts.add(s.Symbol, s.MDReqID, s.Entries, true)
}

// AddIncrementalForSymbol records every entry of an incremental refresh
// under symbol. The symbol is carried per-entry in upstream FIX but our
// flattened Tick needs one, so the caller passes it explicitly.
func (ts *TickStore) AddIncrementalForSymbol(symbol string, r *message.MarketDataIncrementalRefresh) {
	ts.add(symbol, r.MDReqID, r.Entries, false)
}

func (ts *TickStore) add(symbol, mdReqID string, entries []message.MDEntry, isSnapshot bool) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	now := time.Now()
	for _, e := range entries {
		tick := Tick{
			Timestamp:  now,
			Symbol:     symbol,
			EntryType:  string(e.EntryType),
			Px:         e.Px,
			Size:       e.Size,
			MDReqID:    mdReqID,
			IsSnapshot: isSnapshot,
		}

		writeIdx := (ts.head + ts.count) % ts.maxSize
		ts.ticks[writeIdx] = tick

		if ts.count < ts.maxSize {
			ts.count++
		} else {
			ts.head = (ts.head + 1) % ts.maxSize
		}
	}
}

// GetRecent returns up to limit most recent ticks for symbol, oldest
// first.
func (ts *TickStore) GetRecent(symbol string, limit int) []Tick {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	if ts.count == 0 {
		return nil
	}

	matchCount := 0
	for i := 0; i < ts.count && matchCount < limit; i++ {
		idx := (ts.head + ts.count - 1 - i) % ts.maxSize
		if ts.ticks[idx].Symbol == symbol {
			matchCount++
		}
	}
	if matchCount == 0 {
		return nil
	}

	recent := make([]Tick, matchCount)
	resultIdx := matchCount - 1
	for i := 0; i < ts.count && resultIdx >= 0; i++ {
		idx := (ts.head + ts.count - 1 - i) % ts.maxSize
		if ts.ticks[idx].Symbol == symbol {
			recent[resultIdx] = ts.ticks[idx]
			resultIdx--
		}
	}
	return recent
}

// GetAll returns a copy of every tick currently buffered, oldest
// first.
func (ts *TickStore) GetAll() []Tick {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	if ts.count == 0 {
		return nil
	}
	result := make([]Tick, ts.count)
	for i := 0; i < ts.count; i++ {
		idx := (ts.head + i) % ts.maxSize
		result[i] = ts.ticks[idx]
	}
	return result
}
