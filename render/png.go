package render

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/jriverag/ganttop/model"
)

// WritePNG renders the per-person workload behind the chart's category
// ordering: one bar per resource, task counts, fewest first. An empty
// spec has nothing to draw and returns an error naming the condition.
func WritePNG(path string, spec model.ChartSpec) error {
	if spec.Empty() {
		return fmt.Errorf("nothing to render: chart has no activities")
	}

	counts := make(map[string]int)
	for _, b := range spec.Bars {
		counts[b.Resource]++
	}

	bars := make([]chart.Value, 0, len(spec.CategoryOrder))
	for _, resource := range spec.CategoryOrder {
		bars = append(bars, chart.Value{
			Value: float64(counts[resource]),
			Label: resource,
		})
	}

	graph := chart.BarChart{
		Title:    spec.Title,
		Height:   512,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 48},
		},
		Bars: bars,
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return nil
}
