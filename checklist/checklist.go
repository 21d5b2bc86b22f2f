// Package checklist manages the ordered, reorderable list of document
// checklist rows reviewed before a case is submitted. Rows carry a
// found/not-found flag, an editable value, and a mandatory-row protection
// for the items every case must track.
package checklist

import (
	"context"
	"strings"
)

// Item is one requested piece of information located (or not) in the case
// documents. ID is stable across reorders; position is presentation only.
type Item struct {
	ID         int
	Label      string
	Found      bool
	Value      string
	Source     string
	Confidence float64
}

// Row is an item together with its review state. Keeping the trio in one
// struct makes every structural edit atomic: an operation cannot move or
// delete an item without its checked flag and edited value following.
type Row struct {
	Item    Item
	Checked bool
	Value   string
}

// MandatoryLabels lists the rows that cannot be deleted regardless of
// position.
var MandatoryLabels = map[string]struct{}{
	"Partner":                 {},
	"Client name":             {},
	"Client DOB":              {},
	"SJP SRA":                 {},
	"Recommended Fund Choice": {},
	"Provider":                {},
}

// List is the checklist engine. Disallowed operations (toggling an unfound
// item, deleting a mandatory row, adding a blank label) are silent no-ops;
// every mutator reports whether it applied so callers can test the contract
// without the engine ever surfacing an error to the user.
type List struct {
	rows     []Row
	nextID   int
	searcher DocumentSearcher
}

// ListOption mutates list configuration.
type ListOption func(*List)

// WithSearcher injects the document-search capability used by Add. The
// default is the simulated searcher.
func WithSearcher(s DocumentSearcher) ListOption {
	return func(l *List) {
		if s != nil {
			l.searcher = s
		}
	}
}

// NewList seeds the engine from located items. Each seeded row starts
// unchecked with its edit value taken from the item.
func NewList(items []Item, opts ...ListOption) *List {
	l := &List{searcher: NewSimulatedSearcher()}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	maxID := 0
	for _, item := range items {
		if item.ID > maxID {
			maxID = item.ID
		}
		l.rows = append(l.rows, Row{Item: item, Value: item.Value})
	}
	l.nextID = maxID + 1
	return l
}

// Rows returns a copy of the current rows in display order.
func (l *List) Rows() []Row {
	return append([]Row(nil), l.rows...)
}

// Len returns the row count.
func (l *List) Len() int {
	return len(l.rows)
}

// Toggle flips the reviewed flag at idx. An item that was never found cannot
// be marked reviewed; the call is ignored.
func (l *List) Toggle(idx int) bool {
	if idx < 0 || idx >= len(l.rows) {
		return false
	}
	if !l.rows[idx].Item.Found {
		return false
	}
	l.rows[idx].Checked = !l.rows[idx].Checked
	return true
}

// Reorder moves the row at from to position to, shifting the rows between.
// The whole row travels, so checked flags and edited values stay with their
// items.
func (l *List) Reorder(from, to int) bool {
	if from < 0 || from >= len(l.rows) || to < 0 || to >= len(l.rows) || from == to {
		return false
	}
	row := l.rows[from]
	rest := append(l.rows[:from:from], l.rows[from+1:]...)
	l.rows = append(rest[:to:to], append([]Row{row}, rest[to:]...)...)
	return true
}

// Delete removes the row at idx unless its label is mandatory.
func (l *List) Delete(idx int) bool {
	if idx < 0 || idx >= len(l.rows) {
		return false
	}
	if _, mandatory := MandatoryLabels[l.rows[idx].Item.Label]; mandatory {
		return false
	}
	l.rows = append(l.rows[:idx], l.rows[idx+1:]...)
	return true
}

// Add appends a new row for name, resolving its found state through the
// injected document searcher. Blank names are rejected without touching the
// list; a searcher failure appends nothing and returns the error.
func (l *List) Add(ctx context.Context, name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, nil
	}
	result, err := l.searcher.Search(ctx, name)
	if err != nil {
		return false, err
	}
	item := Item{
		ID:         l.nextID,
		Label:      name,
		Found:      result.Found,
		Value:      result.Value,
		Source:     result.Source,
		Confidence: result.Confidence,
	}
	l.nextID++
	l.rows = append(l.rows, Row{Item: item, Value: item.Value})
	return true, nil
}

// SetValue commits a trimmed edit to the row at idx. The presentation layer
// owns the enter/blur/escape mechanics; by the time a value reaches the
// engine it is a commit.
func (l *List) SetValue(idx int, value string) bool {
	if idx < 0 || idx >= len(l.rows) {
		return false
	}
	l.rows[idx].Value = strings.TrimSpace(value)
	return true
}

// Completed counts the reviewed rows.
func (l *List) Completed() int {
	count := 0
	for _, row := range l.rows {
		if row.Checked {
			count++
		}
	}
	return count
}
