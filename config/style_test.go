package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jriverag/ganttop/model"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.CSVPath == "" {
		t.Error("default CSV path should be set")
	}
	if cfg.Equipment != "" {
		t.Error("default equipment should be empty (first available wins)")
	}
}

func TestLoadStyleOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	content := `colors:
  ALTA: "#CC0000"
  URGENTE: "#FF00FF"
columns:
  equipment: machine
  start: from
time_layouts:
  - "02/01/2006 15:04"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	s, err := LoadStyle(path)
	if err != nil {
		t.Fatalf("LoadStyle: %v", err)
	}

	colors := s.ColorMap()
	if colors[model.PriorityHigh] != "#CC0000" {
		t.Errorf("ALTA override not applied: %q", colors[model.PriorityHigh])
	}
	if colors[model.PriorityMedium] != model.DefaultColors()[model.PriorityMedium] {
		t.Error("untouched priorities should keep defaults")
	}
	if colors["URGENTE"] != "#FF00FF" {
		t.Error("extra priority labels should extend the map")
	}

	m := s.Mapping()
	if m.Equipment != "machine" || m.Start != "from" {
		t.Errorf("column overrides not applied: %+v", m)
	}
	if m.Task != "ACTIVIDAD A EJECUTAR" {
		t.Errorf("untouched columns should keep defaults, got %q", m.Task)
	}
	if m.TimeLayouts[0] != "02/01/2006 15:04" {
		t.Errorf("extra layouts should be tried first, got %v", m.TimeLayouts[0])
	}
}

func TestLoadStyleMissingFile(t *testing.T) {
	if _, err := LoadStyle(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Fatal("expected error for missing style file")
	}
}

func TestLoadStyleBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	if err := os.WriteFile(path, []byte("colors: [not a map"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadStyle(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestEmptyStyleKeepsDefaults(t *testing.T) {
	var s Style
	if s.Mapping().Equipment != "EQUIPO" {
		t.Error("zero style should keep default mapping")
	}
	colors := s.ColorMap()
	if len(colors) != 3 {
		t.Errorf("zero style should keep the 3 default colors, got %d", len(colors))
	}
}
