// Package ntd downloads and reshapes the National Transit Database
// monthly ridership spreadsheet into a frame keyed by (agency, UZA).
package ntd

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mrdmnd/unicycle/internal/transport"
	"github.com/mrdmnd/unicycle/pkg/dataset"
	"github.com/mrdmnd/unicycle/pkg/errors"
	"github.com/mrdmnd/unicycle/pkg/logging"
)

// SheetName is the workbook sheet holding unlinked passenger trips.
const SheetName = "UPT"

// The raw database carries one column per month back to 1/2002. Columns
// in this index range (zero-based, inclusive) are months before 2018-01
// and are dropped before any other processing.
const (
	legacyFirst = 9
	legacyLast  = 200
)

// droppedColumns are identifier and metadata columns we don't analyze.
// Modes and TOS vary per row within an agency; the group-by-sum collapses
// them away rather than carrying them as phantom month columns.
var droppedColumns = map[string]struct{}{
	"5 digit NTD ID": {},
	"4 digit NTD ID": {},
	"Active":         {},
	"Reporter Type":  {},
	"UZA":            {},
	"Modes":          {},
	"TOS":            {},
}

// Load downloads the NTD workbook from the given URL and returns the UPT
// sheet reduced to one row per (agency, UZA): summary rows without an
// agency name are discarded, and trips are summed across the transit
// modes each agency reports separately.
func Load(ctx context.Context, client *transport.Client, url string) (*dataset.Frame, error) {
	logging.Ctx(ctx).Info().Str("url", url).Msg("Downloading NTD database")

	resp, err := client.Get(ctx, url)
	if err != nil {
		return nil, &errors.APIError{Provider: "ntd", Endpoint: url, Message: "download failed", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &errors.APIError{Provider: "ntd", Endpoint: url, StatusCode: resp.StatusCode, Message: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapIO("read", url, err)
	}
	return Parse(body)
}

// Parse reshapes the raw workbook bytes. Split from Load so tests can
// feed workbooks without a server.
func Parse(workbook []byte) (*dataset.Frame, error) {
	wb, err := excelize.OpenReader(bytes.NewReader(workbook))
	if err != nil {
		return nil, errors.WrapParse("xlsx", "NTD database", err)
	}
	defer func() { _ = wb.Close() }()

	rows, err := wb.GetRows(SheetName)
	if err != nil {
		return nil, errors.WrapParse("xlsx", "sheet "+SheetName, err)
	}
	if len(rows) == 0 {
		return nil, &errors.ParseError{Format: "xlsx", Source: "sheet " + SheetName, Message: "sheet is empty"}
	}

	header := rows[0]

	// Work out which columns survive: not a pre-2018 month, not metadata.
	var keep []int
	for i, name := range header {
		if i >= legacyFirst && i <= legacyLast {
			continue
		}
		if _, dropped := droppedColumns[name]; dropped {
			continue
		}
		keep = append(keep, i)
	}

	agencyCol, uzaCol := -1, -1
	var monthCols []int
	var monthNames []string
	for _, i := range keep {
		switch header[i] {
		case dataset.ColumnAgency:
			agencyCol = i
		case dataset.ColumnUZA:
			uzaCol = i
		default:
			monthCols = append(monthCols, i)
			monthNames = append(monthNames, header[i])
		}
	}
	if agencyCol < 0 || uzaCol < 0 {
		return nil, &errors.ParseError{
			Format:  "xlsx",
			Source:  "sheet " + SheetName,
			Message: "missing Agency or UZA Name column",
		}
	}

	// Group by (agency, UZA) in first-seen order, summing month columns
	// across the transit modes each agency reports as separate rows.
	type groupKey struct{ agency, uza string }
	sums := make(map[groupKey][]float64)
	var order []groupKey

	for _, row := range rows[1:] {
		agency := cell(row, agencyCol)
		if strings.TrimSpace(agency) == "" {
			// Summary rows at the bottom of the sheet have no agency.
			continue
		}
		key := groupKey{agency: agency, uza: cell(row, uzaCol)}
		totals, seen := sums[key]
		if !seen {
			totals = make([]float64, len(monthCols))
			sums[key] = totals
			order = append(order, key)
		}
		for j, col := range monthCols {
			totals[j] += numeric(cell(row, col))
		}
	}

	columns := append([]string{dataset.ColumnAgency, dataset.ColumnUZA}, monthNames...)
	frame := dataset.New(columns...)
	for _, key := range order {
		row := make([]string, 0, len(columns))
		row = append(row, key.agency, key.uza)
		for _, v := range sums[key] {
			row = append(row, strconv.FormatFloat(v, 'f', -1, 64))
		}
		frame.Append(row)
	}
	return frame, nil
}

// cell returns the i-th cell of a row; GetRows trims trailing empties.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// numeric parses a spreadsheet cell as a number; blanks and non-numeric
// cells count as zero.
func numeric(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
