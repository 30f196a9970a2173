package model

import "time"

// ViewRow is an activity reshaped into presentation roles. The rename is
// lossless: Task, Start, Finish and Resource carry the source task
// description, start, end and assigned person unchanged.
type ViewRow struct {
	Task     string
	Start    time.Time
	Finish   time.Time
	Resource string
	Priority Priority
}

// View is the per-selection projection of the table: all activities of
// one equipment, sorted ascending by (Resource, Start). It is built
// fresh on every selection event and discarded after chart construction.
type View struct {
	Equipment string
	Rows      []ViewRow
}

// Empty reports whether the view has no rows.
func (v View) Empty() bool { return len(v.Rows) == 0 }
