package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/jriverag/ganttop/model"
	"github.com/jriverag/ganttop/util"
)

// ErrMissingFile reports that the schedule CSV does not exist. Callers
// recover by substituting an empty table and continuing startup.
var ErrMissingFile = errors.New("schedule file not found")

// Mapping names the CSV columns carrying each activity field and the
// timestamp layouts used for coercion.
type Mapping struct {
	Equipment string
	Task      string
	Person    string
	Priority  string
	Start     string
	End       string

	TimeLayouts []string
}

// DefaultMapping matches the unified maintenance export.
func DefaultMapping() Mapping {
	return Mapping{
		Equipment:   "EQUIPO",
		Task:        "ACTIVIDAD A EJECUTAR",
		Person:      "PERSONA ASIGNADA A LA ACTIVIDAD",
		Priority:    "PRIORIDAD",
		Start:       "start_time",
		End:         "end_time",
		TimeLayouts: util.DefaultTimeLayouts,
	}
}

type columnIndex struct {
	equipment, task, person, priority, start, end int
}

func indexColumns(header []string, m Mapping) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[strings.TrimSpace(name)] = i
	}
	idx := columnIndex{}
	for _, col := range []struct {
		name string
		dst  *int
	}{
		{m.Equipment, &idx.equipment},
		{m.Task, &idx.task},
		{m.Person, &idx.person},
		{m.Priority, &idx.priority},
		{m.Start, &idx.start},
		{m.End, &idx.end},
	} {
		i, ok := pos[col.name]
		if !ok {
			return idx, fmt.Errorf("missing column %q", col.name)
		}
		*col.dst = i
	}
	return idx, nil
}

// Load reads the schedule CSV at path into a Table. The two timestamp
// columns are coerced with m.TimeLayouts; any row that fails coercion
// fails the whole load. A missing file returns ErrMissingFile so the
// caller can degrade to an empty schedule instead of crashing.
func Load(path string, m Mapping) (model.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.Table{}, fmt.Errorf("%w: %s", ErrMissingFile, path)
		}
		return model.Table{}, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		log.Printf("ganttop: %s is empty, starting with no activities", path)
		return model.Table{}, nil
	}
	if err != nil {
		return model.Table{}, fmt.Errorf("read header of %s: %w", path, err)
	}

	idx, err := indexColumns(header, m)
	if err != nil {
		return model.Table{}, fmt.Errorf("%s: %w", path, err)
	}

	var table model.Table
	for row := 2; ; row++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return model.Table{}, fmt.Errorf("%s: row %d: %w", path, row, err)
		}
		start, err := util.ParseTimestamp(rec[idx.start], m.TimeLayouts)
		if err != nil {
			return model.Table{}, fmt.Errorf("%s: row %d: column %q: %w", path, row, m.Start, err)
		}
		end, err := util.ParseTimestamp(rec[idx.end], m.TimeLayouts)
		if err != nil {
			return model.Table{}, fmt.Errorf("%s: row %d: column %q: %w", path, row, m.End, err)
		}
		table.Rows = append(table.Rows, model.Activity{
			Equipment: strings.TrimSpace(rec[idx.equipment]),
			Task:      strings.TrimSpace(rec[idx.task]),
			Person:    strings.TrimSpace(rec[idx.person]),
			Priority:  model.Priority(strings.TrimSpace(rec[idx.priority])),
			Start:     start,
			End:       end,
		})
	}

	log.Printf("ganttop: loaded %d activities from %s", len(table.Rows), path)
	return table, nil
}
