// Package engine turns UI events into growth store mutations. It is the
// single place that decides what an event does and what the user is told.
package engine

import (
	"context"

	"crescita/internal/core"
	"crescita/internal/metrics"
	"crescita/internal/store"
)

// Status messages shown to the user. These are the full per-event report;
// there is no finer-grained error surface.
const (
	MsgRecordAdded  = "Record added successfully!"
	MsgChangesSaved = "Changes saved successfully!"
	MsgNoChanges    = "No changes made."
)

// Event is a tagged UI event. Exactly one reducer branch fires per event.
type Event interface {
	isEvent()
}

// AddRequested is the add-record form submission. Pointer fields distinguish
// "absent" from a value; an event with any nil field is a no-op.
type AddRequested struct {
	DateOfBirth *core.Date
	Date        *core.Date
	WeightKg    *float64
}

// TableSaved is an explicit press of the save button with the table's current
// rows.
type TableSaved struct {
	Rows []core.GrowthRecord
}

// TableEdited is an in-place cell edit or row deletion; it carries the same
// payload as TableSaved and is applied identically.
type TableEdited struct {
	Rows []core.GrowthRecord
}

func (AddRequested) isEvent() {}
func (TableSaved) isEvent()   {}
func (TableEdited) isEvent()  {}

// Outcome is what the UI renders after an event.
type Outcome struct {
	Message string
}

// Engine applies events to the growth store.
type Engine struct {
	store *store.GrowthStore
}

// New creates an engine owning mutations of s.
func New(s *store.GrowthStore) *Engine {
	return &Engine{store: s}
}

// Apply dispatches one event. An incomplete add mutates nothing and reports
// MsgNoChanges; a persistence failure propagates as an error and is fatal for
// the request (no retry, no rollback).
func (e *Engine) Apply(ctx context.Context, ev Event) (Outcome, error) {
	switch ev := ev.(type) {
	case AddRequested:
		if ev.DateOfBirth == nil || ev.Date == nil || ev.WeightKg == nil {
			return Outcome{Message: MsgNoChanges}, nil
		}
		if _, err := e.store.Add(ctx, *ev.DateOfBirth, *ev.Date, *ev.WeightKg); err != nil {
			return Outcome{}, err
		}
		metrics.RecordsAdded.Inc()
		return Outcome{Message: MsgRecordAdded}, nil

	case TableSaved:
		return e.replaceAll(ctx, ev.Rows)

	case TableEdited:
		return e.replaceAll(ctx, ev.Rows)

	default:
		return Outcome{Message: MsgNoChanges}, nil
	}
}

func (e *Engine) replaceAll(ctx context.Context, rows []core.GrowthRecord) (Outcome, error) {
	if err := e.store.ReplaceAll(ctx, rows); err != nil {
		return Outcome{}, err
	}
	metrics.TableSaves.Inc()
	return Outcome{Message: MsgChangesSaved}, nil
}
