package rides

import (
	"strconv"

	"github.com/mrdmnd/unicycle/pkg/dataset"
	"github.com/mrdmnd/unicycle/pkg/month"
	"github.com/mrdmnd/unicycle/pkg/providers"
)

// BuildTable counts rides for every provider over the given months and
// returns them as a frame with one row per provider: the agency (provider
// ID), its UZA label, and one column per month labeled like "JAN18". The
// columns deliberately mirror the NTD sheet so the two can be merged.
func BuildTable(counter *Counter, registry *providers.Registry, months []month.Month) (*dataset.Frame, error) {
	columns := []string{dataset.ColumnAgency, dataset.ColumnUZA}
	for _, m := range months {
		columns = append(columns, m.Label())
	}

	frame := dataset.New(columns...)
	for _, p := range registry.List() {
		row := make([]string, 0, len(columns))
		row = append(row, string(p.ID), p.UZA)
		for _, m := range months {
			count, err := counter.Count(p, m)
			if err != nil {
				return nil, err
			}
			row = append(row, strconv.Itoa(count))
		}
		frame.Append(row)
	}
	return frame, nil
}
