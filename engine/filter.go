package engine

import (
	"sort"

	"github.com/jriverag/ganttop/model"
)

// Filter derives the presentation view for one equipment. An empty key
// selects nothing; a key matching no rows yields an empty view. Matching
// is exact and case-sensitive.
//
// The result is sorted ascending by (Resource, Start). Rows tying on
// both keep their source order — the stable sort is what keeps a
// person's bars grouped consistently between renders.
func Filter(t model.Table, equipment string) model.View {
	v := model.View{Equipment: equipment}
	if equipment == "" {
		return v
	}
	for _, a := range t.Rows {
		if a.Equipment != equipment {
			continue
		}
		v.Rows = append(v.Rows, model.ViewRow{
			Task:     a.Task,
			Start:    a.Start,
			Finish:   a.End,
			Resource: a.Person,
			Priority: a.Priority,
		})
	}
	sort.SliceStable(v.Rows, func(i, j int) bool {
		if v.Rows[i].Resource != v.Rows[j].Resource {
			return v.Rows[i].Resource < v.Rows[j].Resource
		}
		return v.Rows[i].Start.Before(v.Rows[j].Start)
	})
	return v
}
