// Package export writes the merged ridership table out: a CSV file on
// disk and, best-effort, a tab-separated copy on the system clipboard for
// pasting into a spreadsheet.
package export

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/mrdmnd/unicycle/pkg/dataset"
	"github.com/mrdmnd/unicycle/pkg/errors"
)

// WriteCSV writes the frame to path as CSV, header first.
func WriteCSV(path string, frame *dataset.Frame) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(frame.Columns); err != nil {
		return errors.WrapIO("write", path, err)
	}
	for _, row := range frame.Rows {
		if err := w.Write(row); err != nil {
			return errors.WrapIO("write", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return f.Close()
}

// CopyTSV places the frame on the system clipboard as tab-separated text.
// Headless environments have no clipboard; callers treat failure as
// non-fatal.
func CopyTSV(frame *dataset.Frame) error {
	return clipboard.WriteAll(TSV(frame))
}

// TSV renders the frame as tab-separated text, header first.
func TSV(frame *dataset.Frame) string {
	var b strings.Builder
	b.WriteString(strings.Join(frame.Columns, "\t"))
	b.WriteByte('\n')
	for _, row := range frame.Rows {
		b.WriteString(strings.Join(row, "\t"))
		b.WriteByte('\n')
	}
	return b.String()
}
