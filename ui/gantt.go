package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/jriverag/ganttop/model"
	"github.com/jriverag/ganttop/util"
)

// Lane label column and cursor marker widths.
const (
	laneW   = 14
	markerW = 2
)

// displayBars flattens the chart into render order: lanes follow
// CategoryOrder top to bottom, bars keep spec order within a lane.
func displayBars(spec model.ChartSpec) []model.Bar {
	var out []model.Bar
	for _, resource := range spec.CategoryOrder {
		out = append(out, spec.BarsFor(resource)...)
	}
	return out
}

// renderGantt draws the chart spec as one bar line per activity with a
// shared time axis, e.g.:
//
//	Ann        ▶ ████ Replace filter ████
//	             ██ Clean ██
//	Bob               ███ Inspect seals ███
//	           └──────────────────────────────
//	           2024-01-01 07:00    2024-01-01 11:00
//
// cursor indexes displayBars(spec); cursor < 0 highlights nothing.
func renderGantt(spec model.ChartSpec, width int, cursor int) string {
	if spec.Empty() {
		return renderBox([]string{
			dimStyle.Render("no activities for this selection"),
		}, 36)
	}

	chartW := width - laneW - markerW
	if chartW < 20 {
		chartW = 20
	}

	start, end, _ := spec.Span()
	total := end.Sub(start)
	if total <= 0 {
		total = time.Minute
	}
	scale := func(t time.Time) int {
		x := int(float64(chartW) * float64(t.Sub(start)) / float64(total))
		if x < 0 {
			x = 0
		}
		if x > chartW {
			x = chartW
		}
		return x
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(spec.Title))
	sb.WriteString("\n\n")

	bars := displayBars(spec)
	lastResource := ""
	for i, b := range bars {
		// Lane label only on the lane's first row.
		label := ""
		if b.Resource != lastResource {
			label = b.Resource
			lastResource = b.Resource
		}
		sb.WriteString(valueStyle.Render(util.PadRight(label, laneW)))

		if i == cursor {
			sb.WriteString(headerStyle.Render("▶ "))
		} else {
			sb.WriteString("  ")
		}

		x0 := scale(b.Start)
		x1 := scale(b.Finish)
		if x1 <= x0 {
			x1 = x0 + 1
		}
		if x1 > chartW {
			x0, x1 = chartW-1, chartW
		}
		fill := util.PadRight(" "+b.Label, x1-x0)
		sb.WriteString(strings.Repeat(" ", x0))
		sb.WriteString(barStyle(b.Color).Render(fill))
		sb.WriteString("\n")
	}

	// X-axis with span endpoints.
	pad := strings.Repeat(" ", laneW+markerW-1)
	sb.WriteString(pad + dimStyle.Render("└"+strings.Repeat("─", chartW)) + "\n")
	left := start.Format(model.HoverTimeLayout)
	right := end.Format(model.HoverTimeLayout)
	gap := chartW - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	sb.WriteString(pad + dimStyle.Render(" "+left+strings.Repeat(" ", gap)+right) + "\n")

	// Detail line for the highlighted bar.
	if cursor >= 0 && cursor < len(bars) {
		sb.WriteString("\n" + helpStyle.Render(util.Truncate(bars[cursor].Hover, width)) + "\n")
	}

	sb.WriteString("\n" + renderLegend(spec))
	return sb.String()
}

// renderLegend lists the priorities present in the chart with their
// colors. Bars on the fallback color show up as "other".
func renderLegend(spec model.ChartSpec) string {
	seen := make(map[model.Priority]bool)
	var parts []string
	hasFallback := false
	for _, b := range spec.Bars {
		if b.DefaultColor {
			hasFallback = true
			continue
		}
		if seen[b.Priority] {
			continue
		}
		seen[b.Priority] = true
		parts = append(parts, fmt.Sprintf("%s %s", swatchStyle(b.Color).Render("■"), b.Priority))
	}
	if hasFallback {
		parts = append(parts, fmt.Sprintf("%s other", swatchStyle(model.DefaultBarColor).Render("■")))
	}
	return helpStyle.Render("Priority: ") + strings.Join(parts, "  ")
}
