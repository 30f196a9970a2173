package cmd

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jriverag/ganttop/config"
	"github.com/jriverag/ganttop/engine"
	"github.com/jriverag/ganttop/loader"
	"github.com/jriverag/ganttop/model"
	"github.com/jriverag/ganttop/render"
	"github.com/jriverag/ganttop/ui"
)

// Version is set at build time via ldflags.
var Version = "0.3.1"

// Config holds CLI configuration.
type Config struct {
	CSVPath   string
	StylePath string
	Equipment string
	JSONMode  bool
	HTMLPath  string
	PNGPath   string
	SaveMode  bool
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `ganttop v%s — Terminal Gantt viewer for maintenance schedules

Usage:
  ganttop [OPTIONS] [CSV]

Modes:
  (default)         Interactive TUI (bubbletea, fullscreen)
  -json             Print the chart spec for one equipment as JSON, then exit
  -html FILE        Write a standalone HTML timeline, then exit
  -png FILE         Write a PNG of task count per person, then exit
  -save-defaults    Persist -csv/-style/-equipment as the user defaults, then exit
  -version          Print version and exit

Options:
  -csv PATH         Schedule CSV (default: config file, then unified_gantt_data.csv)
  -style PATH       YAML style file: priority colors, column names, time layouts
  -equipment NAME   Equipment to select (default: first found in the CSV)

Positional:
  CSV               First positional arg sets the schedule file: ganttop plan.csv

Examples:
  ganttop                                 Interactive TUI
  ganttop plan.csv                        TUI over plan.csv
  ganttop -equipment Compresor-01         TUI with an initial selection
  ganttop -json -equipment Bomba-02 | jq '.Bars[].Hover'
  ganttop -html gantt.html -style style.yaml
  ganttop -png workload.png plan.csv
  ganttop -save-defaults plan.csv -equipment Bomba-02
  ganttop -version
`, Version)
}

// Run parses flags and starts the application.
func Run() error {
	var cfg Config
	var showVersion bool

	flag.StringVar(&cfg.CSVPath, "csv", "", "Schedule CSV path")
	flag.StringVar(&cfg.StylePath, "style", "", "YAML style file")
	flag.StringVar(&cfg.Equipment, "equipment", "", "Equipment to select")
	flag.BoolVar(&cfg.JSONMode, "json", false, "Output the chart spec as JSON and exit")
	flag.StringVar(&cfg.HTMLPath, "html", "", "Write an HTML timeline to FILE and exit")
	flag.StringVar(&cfg.PNGPath, "png", "", "Write a PNG workload chart to FILE and exit")
	flag.BoolVar(&cfg.SaveMode, "save-defaults", false, "Persist -csv/-style/-equipment as user defaults and exit")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")

	flag.Usage = printUsage
	flag.Parse()

	if showVersion {
		fmt.Printf("ganttop v%s\n", Version)
		return nil
	}

	// Support positional arg for the schedule: `ganttop plan.csv`.
	if args := flag.Args(); len(args) > 0 && cfg.CSVPath == "" {
		cfg.CSVPath = args[0]
	}

	// User config fills whatever the flags left empty.
	user := config.Load()
	if cfg.CSVPath == "" {
		cfg.CSVPath = user.CSVPath
	}
	if cfg.StylePath == "" {
		cfg.StylePath = user.StylePath
	}
	if cfg.Equipment == "" {
		cfg.Equipment = user.Equipment
	}

	var style config.Style
	if cfg.StylePath != "" {
		var err error
		style, err = config.LoadStyle(cfg.StylePath)
		if err != nil {
			return err
		}
	}

	table, err := loader.Load(cfg.CSVPath, style.Mapping())
	if errors.Is(err, loader.ErrMissingFile) {
		// Degrade to an empty schedule instead of refusing to start.
		log.Printf("ganttop: %v", err)
		table = model.Table{}
	} else if err != nil {
		return err
	}

	eng := engine.NewEngine(table, style.ColorMap())

	// -save-defaults: persist the resolved settings (the CSV loaded, so
	// they are known-good) and exit.
	if cfg.SaveMode {
		user.CSVPath = cfg.CSVPath
		user.StylePath = cfg.StylePath
		user.Equipment = cfg.Equipment
		if err := config.Save(user); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", config.Path())
		return nil
	}

	selection := cfg.Equipment
	if selection == "" {
		if opts := eng.Equipments(); len(opts) > 0 {
			selection = opts[0]
		}
	}

	// -json mode: single chart spec to stdout
	if cfg.JSONMode {
		return runJSON(eng, selection)
	}

	// -html / -png modes: write the export and exit
	if cfg.HTMLPath != "" {
		if err := render.WriteHTML(cfg.HTMLPath, eng.OnSelectionChanged(selection)); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", cfg.HTMLPath)
		return nil
	}
	if cfg.PNGPath != "" {
		if err := render.WritePNG(cfg.PNGPath, eng.OnSelectionChanged(selection)); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", cfg.PNGPath)
		return nil
	}

	// Normal TUI mode
	m := ui.NewModel(eng, selection)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// runJSON outputs the chart spec for one equipment as JSON and exits.
func runJSON(eng *engine.Engine, selection string) error {
	spec := eng.OnSelectionChanged(selection)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(spec)
}
