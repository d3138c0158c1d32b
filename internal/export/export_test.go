package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrdmnd/unicycle/pkg/dataset"
)

func sampleFrame() *dataset.Frame {
	f := dataset.New("Agency", "UZA Name", "JAN18")
	f.Append([]string{"divvy", "Chicago, IL", "100"})
	f.Append([]string{"baywheels", "San Francisco Bay Area, CA", "200"})
	return f
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.csv")
	require.NoError(t, WriteCSV(path, sampleFrame()))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"Agency,UZA Name,JAN18\n"+
			"divvy,\"Chicago, IL\",100\n"+
			"baywheels,\"San Francisco Bay Area, CA\",200\n",
		string(contents))
}

func TestTSV(t *testing.T) {
	got := TSV(sampleFrame())
	assert.Equal(t,
		"Agency\tUZA Name\tJAN18\n"+
			"divvy\tChicago, IL\t100\n"+
			"baywheels\tSan Francisco Bay Area, CA\t200\n",
		got)
}
