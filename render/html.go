// HTML export: a standalone timeline page for one chart spec, bars
// absolutely positioned per lane, tooltips in the title attribute.
package render

import (
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/jriverag/ganttop/model"
)

const tmplGantt = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:'JetBrains Mono',monospace,sans-serif;background:#0d1117;color:#c9d1d9;font-size:13px;line-height:1.5;padding:16px}
h1{font-size:16px;font-weight:700;color:#f0f6fc;margin-bottom:12px}
.axis{display:flex;justify-content:space-between;color:#8b949e;font-size:11px;margin:4px 0 12px}
.tl-row{display:flex;align-items:center;gap:8px;padding:3px 0;border-bottom:1px solid #161b22;font-size:11px}
.tl-label{min-width:150px;flex-shrink:0;overflow:hidden;text-overflow:ellipsis;white-space:nowrap;color:#8b949e}
.tl-bar-area{flex:1;position:relative;height:18px}
.tl-bar{position:absolute;height:16px;border-radius:3px;top:1px;font-size:10px;line-height:16px;padding:0 4px;white-space:nowrap;overflow:hidden;text-overflow:ellipsis;color:#0d1117;font-weight:600}
.legend{margin-top:16px;color:#8b949e;font-size:11px}
.legend span{margin-right:12px}
.sw{display:inline-block;width:10px;height:10px;border-radius:2px;margin-right:4px;vertical-align:middle}
.empty{color:#8b949e;padding:24px 0}
footer{margin-top:24px;color:#484f58;font-size:10px}
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{if .Lanes}}
<div class="axis"><span>{{.Start}}</span><span>{{.XAxisTitle}}</span><span>{{.End}}</span></div>
{{range .Lanes}}
<div class="tl-row">
  <div class="tl-label">{{.Resource}}</div>
  <div class="tl-bar-area">
  {{range .Bars}}<div class="tl-bar" style="left:{{.Left}}%;width:{{.Width}}%;background:{{.Color}}" title="{{.Tooltip}}">{{.Label}}</div>{{end}}
  </div>
</div>
{{end}}
<div class="legend">{{.YAxisTitle}} lanes, fewest tasks first.
{{range .Legend}}<span><i class="sw" style="background:{{.Color}}"></i>{{.Label}}</span>{{end}}
</div>
{{else}}
<div class="empty">No activities for this selection.</div>
{{end}}
<footer>generated {{.Generated}} by ganttop</footer>
</body>
</html>
`

var ganttTemplate = template.Must(template.New("gantt").Parse(tmplGantt))

type htmlBar struct {
	Left    float64
	Width   float64
	Color   template.CSS
	Label   string
	Tooltip string
}

type htmlLane struct {
	Resource string
	Bars     []htmlBar
}

type htmlLegend struct {
	Color template.CSS
	Label string
}

type htmlView struct {
	Title      string
	XAxisTitle string
	YAxisTitle string
	Start, End string
	Lanes      []htmlLane
	Legend     []htmlLegend
	Generated  string
}

// WriteHTML writes a standalone HTML rendering of the chart spec. An
// empty spec produces a valid page with a placeholder note.
func WriteHTML(path string, spec model.ChartSpec) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := ganttTemplate.Execute(f, buildHTMLView(spec)); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return nil
}

func buildHTMLView(spec model.ChartSpec) htmlView {
	v := htmlView{
		Title:      spec.Title,
		XAxisTitle: spec.XAxisTitle,
		YAxisTitle: spec.YAxisTitle,
		Generated:  time.Now().Format(time.RFC3339),
	}
	start, end, ok := spec.Span()
	if !ok {
		return v
	}
	v.Start = start.Format(model.HoverTimeLayout)
	v.End = end.Format(model.HoverTimeLayout)

	total := end.Sub(start)
	if total <= 0 {
		total = time.Minute
	}
	pct := func(t time.Time) float64 {
		return 100 * float64(t.Sub(start)) / float64(total)
	}

	seen := make(map[model.Priority]bool)
	hasFallback := false
	for _, resource := range spec.CategoryOrder {
		lane := htmlLane{Resource: resource}
		for _, b := range spec.BarsFor(resource) {
			left := pct(b.Start)
			width := pct(b.Finish) - left
			if width < 0.5 {
				width = 0.5
			}
			lane.Bars = append(lane.Bars, htmlBar{
				Left:    left,
				Width:   width,
				Color:   template.CSS(b.Color),
				Label:   b.Label,
				Tooltip: b.Hover,
			})
			if b.DefaultColor {
				hasFallback = true
			} else if !seen[b.Priority] {
				seen[b.Priority] = true
				v.Legend = append(v.Legend, htmlLegend{Color: template.CSS(b.Color), Label: string(b.Priority)})
			}
		}
		v.Lanes = append(v.Lanes, lane)
	}
	if hasFallback {
		v.Legend = append(v.Legend, htmlLegend{Color: model.DefaultBarColor, Label: "other"})
	}
	return v
}
