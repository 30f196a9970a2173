package model

import "time"

// HoverTimeLayout formats the timestamps embedded in bar hover text.
const HoverTimeLayout = "2006-01-02 15:04"

// Bar is one activity span on the timeline.
type Bar struct {
	Task     string
	Resource string
	Start    time.Time
	Finish   time.Time
	Priority Priority

	// Color is the bar fill. DefaultColor marks bars whose priority had
	// no entry in the color map and received DefaultBarColor instead.
	Color        string
	DefaultColor bool

	// Label is rendered inside the bar; Hover is the full tooltip line.
	Label string
	Hover string
}

// ChartSpec describes a timeline chart: one horizontal bar per activity,
// lanes keyed by resource. Renderers consume it as-is and never reach
// back into the table.
type ChartSpec struct {
	Title      string
	XAxisTitle string
	YAxisTitle string

	// CategoryOrder lists resources by ascending total task count; ties
	// keep first-appearance order. Renderers must apply it themselves,
	// it is a display contract, not a cosmetic hint.
	CategoryOrder []string

	Bars []Bar
}

// Empty reports whether the chart has no bars. An empty spec is the
// defined result for "no equipment selected", not an error state.
func (s ChartSpec) Empty() bool { return len(s.Bars) == 0 }

// Span returns the earliest start and latest finish across all bars.
// ok is false for an empty chart.
func (s ChartSpec) Span() (start, end time.Time, ok bool) {
	if s.Empty() {
		return time.Time{}, time.Time{}, false
	}
	start, end = s.Bars[0].Start, s.Bars[0].Finish
	for _, b := range s.Bars[1:] {
		if b.Start.Before(start) {
			start = b.Start
		}
		if b.Finish.After(end) {
			end = b.Finish
		}
	}
	return start, end, true
}

// BarsFor returns the bars belonging to one resource lane, in spec order.
func (s ChartSpec) BarsFor(resource string) []Bar {
	var out []Bar
	for _, b := range s.Bars {
		if b.Resource == resource {
			out = append(out, b)
		}
	}
	return out
}
