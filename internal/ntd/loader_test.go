package ntd

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mrdmnd/unicycle/internal/transport"
	"github.com/mrdmnd/unicycle/pkg/errors"
)

// header builds a raw-database header: 9 metadata columns, the legacy
// month block at indices 9..200, then the given post-2018 month labels.
func header(monthLabels ...string) []interface{} {
	row := []interface{}{
		"5 digit NTD ID", "4 digit NTD ID", "Agency", "Active",
		"Reporter Type", "UZA", "UZA Name", "Modes", "TOS",
	}
	for i := legacyFirst; i <= legacyLast; i++ {
		row = append(row, fmt.Sprintf("LEG%03d", i))
	}
	for _, label := range monthLabels {
		row = append(row, label)
	}
	return row
}

// dataRow builds a row shaped like the header: metadata, legacy month
// cells (filled with junk that must be dropped), then month values.
func dataRow(agency, uza string, monthValues ...interface{}) []interface{} {
	row := []interface{}{"10001", "1001", agency, "Active", "Full Reporter", "1", uza, "MB", "DO"}
	for i := legacyFirst; i <= legacyLast; i++ {
		row = append(row, 999)
	}
	row = append(row, monthValues...)
	return row
}

func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	_, err := f.NewSheet(SheetName)
	require.NoError(t, err)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(SheetName, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return buf.Bytes()
}

func TestParseGroupsAndSums(t *testing.T) {
	workbook := buildWorkbook(t, [][]interface{}{
		header("JAN18", "FEB18"),
		// Same agency reported twice, once per mode: summed.
		dataRow("Metro Transit", "Alpha City, AA", 100, 200),
		dataRow("Metro Transit", "Alpha City, AA", 50, 60),
		dataRow("Beta Transit", "Beta City, BB", "", 5),
		// Summary row without an agency name: dropped.
		dataRow("", "", 12345, 67890),
	})

	frame, err := Parse(workbook)
	require.NoError(t, err)

	assert.Equal(t, []string{"Agency", "UZA Name", "JAN18", "FEB18"}, frame.Columns,
		"metadata and pre-2018 columns are dropped")
	assert.NotContains(t, frame.Columns, "Modes")
	assert.NotContains(t, frame.Columns, "TOS")
	require.Len(t, frame.Rows, 2)
	assert.Equal(t, []string{"Metro Transit", "Alpha City, AA", "150", "260"}, frame.Rows[0])
	assert.Equal(t, []string{"Beta Transit", "Beta City, BB", "0", "5"}, frame.Rows[1])
}

func TestParseMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	_, err = Parse(buf.Bytes())
	require.Error(t, err)
}

func TestParseNotAWorkbook(t *testing.T) {
	_, err := Parse([]byte("plain text"))
	require.Error(t, err)

	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestLoad(t *testing.T) {
	workbook := buildWorkbook(t, [][]interface{}{
		header("JAN18"),
		dataRow("Metro Transit", "Alpha City, AA", 7),
	})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(workbook)
	}))
	defer server.Close()

	frame, err := Load(context.Background(), transport.New(), server.URL)
	require.NoError(t, err)
	require.Len(t, frame.Rows, 1)
	assert.Equal(t, []string{"Metro Transit", "Alpha City, AA", "7"}, frame.Rows[0])
}

func TestLoadRemoteUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := Load(context.Background(), transport.New(), server.URL)
	require.Error(t, err)
	assert.True(t, errors.IsRemoteUnavailable(err))
}
