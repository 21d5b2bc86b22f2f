package forms

import "github.com/adviceworks/casedesk/utils/moneyfmt"

// FundCharge is one fund row on the Existing Plans stage: the fund name, the
// amount invested, and its annual charge as a percentage string.
type FundCharge struct {
	Name   string
	Value  string
	Charge string
}

// FundChargeList owns the growable fund rows for the Existing Plans stage.
// The list always holds at least one row; an empty list is reseeded with a
// blank row so the stage always has something to render.
type FundChargeList struct {
	rows []FundCharge
}

// NewFundChargeList seeds the list, auto-seeding a single blank row when the
// seed is empty.
func NewFundChargeList(seed []FundCharge) *FundChargeList {
	l := &FundChargeList{rows: append([]FundCharge(nil), seed...)}
	l.ensureSeeded()
	return l
}

func (l *FundChargeList) ensureSeeded() {
	if len(l.rows) == 0 {
		l.rows = []FundCharge{{}}
	}
}

// Rows returns a copy of the current rows.
func (l *FundChargeList) Rows() []FundCharge {
	return append([]FundCharge(nil), l.rows...)
}

// Len returns the row count.
func (l *FundChargeList) Len() int {
	return len(l.rows)
}

// Add appends exactly one blank row, leaving prior rows untouched.
func (l *FundChargeList) Add() {
	l.rows = append(l.rows, FundCharge{})
}

// Delete removes the row at idx. Deleting the last remaining row leaves a
// blank row behind so the at-least-one invariant holds.
func (l *FundChargeList) Delete(idx int) error {
	if idx < 0 || idx >= len(l.rows) {
		return RowBoundsError{Index: idx, Len: len(l.rows)}
	}
	l.rows = append(l.rows[:idx], l.rows[idx+1:]...)
	l.ensureSeeded()
	return nil
}

// Set replaces the row at idx.
func (l *FundChargeList) Set(idx int, row FundCharge) error {
	if idx < 0 || idx >= len(l.rows) {
		return RowBoundsError{Index: idx, Len: len(l.rows)}
	}
	l.rows[idx] = row
	return nil
}

// AverageChargeRate recomputes the mean charge across rows with a parseable
// charge. The second return is false when no row contributes.
func (l *FundChargeList) AverageChargeRate() (float64, bool) {
	charges := make([]string, 0, len(l.rows))
	for _, row := range l.rows {
		charges = append(charges, row.Charge)
	}
	return moneyfmt.Mean(charges)
}
