// Package hsep maintains the horizon size estimation table: aggregate
// counts of reachable nodes, shared files and shared data per hop
// distance.
package hsep

import (
	"fmt"
	"sync"

	"github.com/dustin/go-humanize"
)

// MaxDepth bounds the hop distances tracked.
const MaxDepth = 7

// Row aggregates what is reachable at exactly one hop distance.
type Row struct {
	Nodes uint64
	Files uint64
	KiB   uint64
}

// ListenerID identifies a registered table-change listener so it can be
// removed at shutdown.
type ListenerID int

// Table is the global horizon table. Rows are indexed by hop distance
// starting at 1; the table grows as deeper hops report in, up to
// MaxDepth.
type Table struct {
	mu        sync.Mutex
	rows      []Row
	listeners map[ListenerID]func()
	nextID    ListenerID
}

// NewTable returns an empty horizon table.
func NewTable() *Table {
	return &Table{listeners: make(map[ListenerID]func())}
}

// AddListener registers cb to run after every table change. The returned
// id must be passed to RemoveListener at shutdown, otherwise the callback
// leaks.
func (t *Table) AddListener(cb func()) ListenerID {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nextID++
	id := t.nextID
	t.listeners[id] = cb
	return id
}

// RemoveListener deregisters a listener.
func (t *Table) RemoveListener(id ListenerID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.listeners, id)
}

// Add accumulates a delta for the given hop distance, growing the table
// if that distance was not seen before, then notifies listeners.
func (t *Table) Add(hops int, nodes, files, kib uint64) {
	if hops < 1 {
		return
	}
	if hops > MaxDepth {
		hops = MaxDepth
	}

	t.mu.Lock()
	for len(t.rows) < hops {
		t.rows = append(t.rows, Row{})
	}
	r := &t.rows[hops-1]
	r.Nodes += nodes
	r.Files += files
	r.KiB += kib
	cbs := make([]func(), 0, len(t.listeners))
	for _, cb := range t.listeners {
		cbs = append(cbs, cb)
	}
	t.mu.Unlock()

	for _, cb := range cbs {
		cb()
	}
}

// TableSize returns the current number of rows.
func (t *Table) TableSize() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.rows)
}

// HopLabel returns the row label for a hop distance.
func HopLabel(row int) string {
	if row == 1 {
		return "1 hop"
	}
	return fmt.Sprintf("%d hops", row)
}

// CellStr renders one horizon cell. row is a hop distance in [1..N];
// col 0 is the hop label, 1 the node count, 2 the file count, 3 the
// shared data size. Out-of-range coordinates and zero measurements
// yield "-".
func (t *Table) CellStr(row, col int) string {
	if col == 0 {
		return HopLabel(row)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if row < 1 || row > len(t.rows) {
		return "-"
	}
	r := t.rows[row-1]

	switch col {
	case 1:
		if r.Nodes == 0 {
			return "-"
		}
		return humanize.Comma(int64(r.Nodes))
	case 2:
		if r.Files == 0 {
			return "-"
		}
		return humanize.Comma(int64(r.Files))
	case 3:
		if r.KiB == 0 {
			return "-"
		}
		return humanize.IBytes(r.KiB << 10)
	}
	return "-"
}
