package engine

import (
	"fmt"
	"sort"

	"github.com/jriverag/ganttop/model"
)

// BuildChart maps a view onto a timeline chart spec: one bar per row,
// fill color looked up by priority, resources ordered by ascending task
// count. An empty view produces a valid empty spec with the usual axis
// titles, which is the defined result for "no equipment selected".
//
// Priorities missing from colors get model.DefaultBarColor and the bar's
// DefaultColor flag set, so renderers can surface the fallback instead
// of silently blending unknown labels into the palette.
func BuildChart(v model.View, colors model.ColorMap) model.ChartSpec {
	spec := model.ChartSpec{
		Title:      "Maintenance Gantt",
		XAxisTitle: "Time",
		YAxisTitle: "Assigned person",
	}
	if v.Equipment != "" {
		spec.Title = fmt.Sprintf("Maintenance Gantt — %s (by person)", v.Equipment)
	}

	counts := make(map[string]int)
	var firstSeen []string
	for _, r := range v.Rows {
		color, ok := colors[r.Priority]
		if !ok {
			color = model.DefaultBarColor
		}
		spec.Bars = append(spec.Bars, model.Bar{
			Task:         r.Task,
			Resource:     r.Resource,
			Start:        r.Start,
			Finish:       r.Finish,
			Priority:     r.Priority,
			Color:        color,
			DefaultColor: !ok,
			Label:        r.Task,
			Hover:        hoverText(r),
		})
		if _, seen := counts[r.Resource]; !seen {
			firstSeen = append(firstSeen, r.Resource)
		}
		counts[r.Resource]++
	}

	// Total ascending: fewest tasks first, ties by first appearance.
	order := append([]string(nil), firstSeen...)
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] < counts[order[j]]
	})
	spec.CategoryOrder = order

	return spec
}

func hoverText(r model.ViewRow) string {
	return fmt.Sprintf("Task: %s | Person: %s | Start: %s | Finish: %s | Priority: %s",
		r.Task,
		r.Resource,
		r.Start.Format(model.HoverTimeLayout),
		r.Finish.Format(model.HoverTimeLayout),
		r.Priority)
}
