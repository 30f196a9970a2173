package model

import "time"

// Priority is the urgency label attached to a maintenance activity.
// The source data uses Spanish labels. Labels outside the three known
// values are kept verbatim; the chart layer flags them when it has to
// fall back to the default color.
type Priority string

const (
	PriorityHigh   Priority = "ALTA"
	PriorityMedium Priority = "MEDIA"
	PriorityLow    Priority = "BAJA"
)

// Known reports whether p is one of the three defined labels.
func (p Priority) Known() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// Activity is one row of the maintenance schedule.
type Activity struct {
	Equipment string
	Task      string
	Person    string
	Priority  Priority
	Start     time.Time
	End       time.Time
}

// Table holds the full activity schedule. It is loaded once at startup
// and never mutated afterwards, so it can be shared without locking.
type Table struct {
	Rows []Activity
}

// Empty reports whether the table has no rows.
func (t Table) Empty() bool { return len(t.Rows) == 0 }

// Equipments returns the distinct non-empty equipment identifiers in
// first-seen order. These are the selector options.
func (t Table) Equipments() []string {
	seen := make(map[string]bool, len(t.Rows))
	var out []string
	for _, a := range t.Rows {
		if a.Equipment == "" || seen[a.Equipment] {
			continue
		}
		seen[a.Equipment] = true
		out = append(out, a.Equipment)
	}
	return out
}

// ColorMap maps priority labels to display colors (hex).
type ColorMap map[Priority]string

// DefaultBarColor is assigned to bars whose priority has no entry in the
// color map.
const DefaultBarColor = "#6272A4"

// DefaultColors returns the standard priority palette.
func DefaultColors() ColorMap {
	return ColorMap{
		PriorityHigh:   "#FF5555",
		PriorityMedium: "#FFB86C",
		PriorityLow:    "#50FA7B",
	}
}
