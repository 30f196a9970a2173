package engine

import "github.com/jriverag/ganttop/model"

// Engine holds the process-wide activity table and priority color map
// and answers selection events from the UI layer. Both inputs are
// immutable after construction, so a single Engine can serve any number
// of selection events without locking.
type Engine struct {
	table  model.Table
	colors model.ColorMap
}

// NewEngine creates an engine over a loaded table. A nil color map
// falls back to the standard palette.
func NewEngine(table model.Table, colors model.ColorMap) *Engine {
	if colors == nil {
		colors = model.DefaultColors()
	}
	return &Engine{table: table, colors: colors}
}

// Equipments returns the selector options: distinct equipment
// identifiers in first-seen order.
func (e *Engine) Equipments() []string { return e.table.Equipments() }

// Len returns the total number of loaded activities.
func (e *Engine) Len() int { return len(e.table.Rows) }

// OnSelectionChanged recomputes the chart for the newly selected
// equipment. This is the single entry point the UI layer calls per
// selection event; it sequences Filter then BuildChart against the
// immutable table, so the same key always yields the same spec.
func (e *Engine) OnSelectionChanged(equipment string) model.ChartSpec {
	return BuildChart(Filter(e.table, equipment), e.colors)
}
