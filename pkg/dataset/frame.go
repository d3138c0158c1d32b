// Package dataset provides a minimal ordered tabular value used to carry
// both the NTD reference data and the generated bikeshare ride counts, and
// the column-intersecting merge that combines them.
package dataset

// Shared column names: every row of ridership data, whether it comes from
// the NTD or from counted trip logs, is keyed by agency and urbanized area.
const (
	ColumnAgency = "Agency"
	ColumnUZA    = "UZA Name"
)

// Frame is an ordered table: a header of column names and rows of cells.
// A cell holds the textual form of its value; all arithmetic happens
// before data enters a Frame.
type Frame struct {
	Columns []string
	Rows    [][]string
}

// New returns an empty Frame with the given columns.
func New(columns ...string) *Frame {
	return &Frame{Columns: columns}
}

// Append adds a row. Rows shorter than the header are padded with empty
// cells so every row has exactly one cell per column.
func (f *Frame) Append(row []string) {
	for len(row) < len(f.Columns) {
		row = append(row, "")
	}
	f.Rows = append(f.Rows, row[:len(f.Columns)])
}

// ColumnIndex returns the position of the named column, or -1.
func (f *Frame) ColumnIndex(name string) int {
	for i, c := range f.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Select returns a copy of f restricted to the named columns, in the
// given order. Unknown columns produce empty cells.
func (f *Frame) Select(columns []string) *Frame {
	out := New(columns...)
	idx := make([]int, len(columns))
	for i, c := range columns {
		idx[i] = f.ColumnIndex(c)
	}
	for _, row := range f.Rows {
		selected := make([]string, len(columns))
		for i, j := range idx {
			if j >= 0 && j < len(row) {
				selected[i] = row[j]
			}
		}
		out.Rows = append(out.Rows, selected)
	}
	return out
}

// Merge concatenates the rows of a and b, keeping only the columns present
// in both. Column order follows a. No row from either side is dropped;
// only columns are intersected.
func Merge(a, b *Frame) *Frame {
	var shared []string
	for _, c := range a.Columns {
		if b.ColumnIndex(c) >= 0 {
			shared = append(shared, c)
		}
	}

	out := a.Select(shared)
	rest := b.Select(shared)
	out.Rows = append(out.Rows, rest.Rows...)
	return out
}
