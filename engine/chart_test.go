package engine

import (
	"strings"
	"testing"

	"github.com/jriverag/ganttop/model"
)

func TestBuildChartEmptyView(t *testing.T) {
	spec := BuildChart(model.View{}, model.DefaultColors())
	if !spec.Empty() {
		t.Fatalf("expected empty spec, got %d bars", len(spec.Bars))
	}
	if spec.XAxisTitle != "Time" || spec.YAxisTitle != "Assigned person" {
		t.Errorf("empty spec should keep axis conventions, got %q/%q", spec.XAxisTitle, spec.YAxisTitle)
	}
	if len(spec.CategoryOrder) != 0 {
		t.Errorf("empty spec should have no categories")
	}
	if _, _, ok := spec.Span(); ok {
		t.Error("Span() on empty spec should report ok=false")
	}
}

func TestBuildChartColorsByPriority(t *testing.T) {
	v := Filter(testTable(), "A")
	spec := BuildChart(v, model.DefaultColors())
	if len(spec.Bars) != 3 {
		t.Fatalf("expected 3 bars, got %d", len(spec.Bars))
	}
	colors := model.DefaultColors()
	for i, b := range spec.Bars {
		if b.DefaultColor {
			t.Errorf("bar %d: known priority %q flagged as fallback", i, b.Priority)
		}
		if b.Color != colors[b.Priority] {
			t.Errorf("bar %d: color %q, want %q for %q", i, b.Color, colors[b.Priority], b.Priority)
		}
	}
}

func TestBuildChartUnknownPriorityFallsBack(t *testing.T) {
	v := model.View{Equipment: "A", Rows: []model.ViewRow{
		{Task: "Mystery", Resource: "Ann", Start: ts(1, 8), Finish: ts(1, 9), Priority: "URGENTE"},
	}}
	spec := BuildChart(v, model.DefaultColors())
	b := spec.Bars[0]
	if !b.DefaultColor {
		t.Error("unknown priority should set DefaultColor")
	}
	if b.Color != model.DefaultBarColor {
		t.Errorf("color = %q, want %q", b.Color, model.DefaultBarColor)
	}
}

func TestBuildChartCategoryOrderTotalAscending(t *testing.T) {
	// Ann has 2 tasks, Bob 1: Bob first.
	spec := BuildChart(Filter(testTable(), "A"), nil)
	want := []string{"Bob", "Ann"}
	if len(spec.CategoryOrder) != len(want) {
		t.Fatalf("CategoryOrder = %v, want %v", spec.CategoryOrder, want)
	}
	for i := range want {
		if spec.CategoryOrder[i] != want[i] {
			t.Fatalf("CategoryOrder = %v, want %v", spec.CategoryOrder, want)
		}
	}
}

func TestBuildChartCategoryOrderTieKeepsFirstAppearance(t *testing.T) {
	v := model.View{Equipment: "A", Rows: []model.ViewRow{
		{Task: "t1", Resource: "Cid", Start: ts(1, 8), Finish: ts(1, 9)},
		{Task: "t2", Resource: "Ann", Start: ts(1, 9), Finish: ts(1, 10)},
	}}
	spec := BuildChart(v, nil)
	if spec.CategoryOrder[0] != "Cid" || spec.CategoryOrder[1] != "Ann" {
		t.Errorf("tie should keep first appearance: got %v", spec.CategoryOrder)
	}
}

func TestBuildChartHoverFormat(t *testing.T) {
	spec := BuildChart(Filter(testTable(), "B"), model.DefaultColors())
	hover := spec.Bars[0].Hover
	for _, part := range []string{
		"Task: Calibrate",
		"Person: Cid",
		"Start: 2024-01-02 08:00",
		"Finish: 2024-01-02 09:00",
		"Priority: BAJA",
	} {
		if !strings.Contains(hover, part) {
			t.Errorf("hover %q missing %q", hover, part)
		}
	}
}

func TestBuildChartLabelIsTask(t *testing.T) {
	spec := BuildChart(Filter(testTable(), "B"), nil)
	if spec.Bars[0].Label != "Calibrate" {
		t.Errorf("label = %q, want task description", spec.Bars[0].Label)
	}
}

func TestBuildChartTitle(t *testing.T) {
	spec := BuildChart(Filter(testTable(), "A"), nil)
	if !strings.Contains(spec.Title, "A") {
		t.Errorf("title %q should name the equipment", spec.Title)
	}
}

func TestEngineOnSelectionChanged(t *testing.T) {
	eng := NewEngine(testTable(), nil)

	spec := eng.OnSelectionChanged("A")
	if len(spec.Bars) != 3 {
		t.Errorf("selection A: %d bars, want 3", len(spec.Bars))
	}
	if got := eng.OnSelectionChanged("Z"); !got.Empty() {
		t.Errorf("unknown key should yield empty chart, got %d bars", len(got.Bars))
	}
	if got := eng.OnSelectionChanged(""); !got.Empty() {
		t.Errorf("empty key should yield empty chart, got %d bars", len(got.Bars))
	}
}

func TestEngineEquipmentsFirstSeenOrder(t *testing.T) {
	eng := NewEngine(testTable(), nil)
	got := eng.Equipments()
	want := []string{"A", "B"}
	if len(got) != len(want) {
		t.Fatalf("Equipments = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Equipments = %v, want %v", got, want)
		}
	}
}
