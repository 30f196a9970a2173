package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jriverag/ganttop/loader"
	"github.com/jriverag/ganttop/model"
)

// Style customizes chart colors and CSV column names. All fields are
// optional; zero values keep the built-in defaults. Color keys beyond
// the three standard priorities are allowed and extend the map, which
// keeps custom priority labels out of the fallback bucket.
type Style struct {
	Colors      map[string]string `yaml:"colors"`
	Columns     ColumnNames       `yaml:"columns"`
	TimeLayouts []string          `yaml:"time_layouts"`
}

// ColumnNames overrides the CSV header names for each activity field.
type ColumnNames struct {
	Equipment string `yaml:"equipment"`
	Task      string `yaml:"task"`
	Person    string `yaml:"person"`
	Priority  string `yaml:"priority"`
	Start     string `yaml:"start"`
	End       string `yaml:"end"`
}

// LoadStyle reads a style YAML file.
func LoadStyle(path string) (Style, error) {
	var s Style
	data, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse style %s: %w", path, err)
	}
	return s, nil
}

// ColorMap builds the priority color map: the standard palette with the
// style's overrides applied on top.
func (s Style) ColorMap() model.ColorMap {
	colors := model.DefaultColors()
	for label, color := range s.Colors {
		colors[model.Priority(label)] = color
	}
	return colors
}

// Mapping builds the loader column mapping: defaults with the style's
// non-empty overrides applied, and any extra time layouts tried first.
func (s Style) Mapping() loader.Mapping {
	m := loader.DefaultMapping()
	if s.Columns.Equipment != "" {
		m.Equipment = s.Columns.Equipment
	}
	if s.Columns.Task != "" {
		m.Task = s.Columns.Task
	}
	if s.Columns.Person != "" {
		m.Person = s.Columns.Person
	}
	if s.Columns.Priority != "" {
		m.Priority = s.Columns.Priority
	}
	if s.Columns.Start != "" {
		m.Start = s.Columns.Start
	}
	if s.Columns.End != "" {
		m.End = s.Columns.End
	}
	if len(s.TimeLayouts) > 0 {
		m.TimeLayouts = append(append([]string(nil), s.TimeLayouts...), m.TimeLayouts...)
	}
	return m
}
