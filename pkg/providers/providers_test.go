package providers

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrdmnd/unicycle/pkg/errors"
	"github.com/mrdmnd/unicycle/pkg/month"
)

func TestDefaultRegistry(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)
	require.Equal(t, 4, r.Len())

	for _, id := range []ID{"baywheels", "nyc_citibike", "jc_citibike", "divvy"} {
		p, err := r.Get(id)
		require.NoError(t, err, "built-in provider %s", id)
		assert.NotEmpty(t, p.UZA)
		assert.NotEmpty(t, p.BaseURL)
		assert.NotEmpty(t, p.Template)
	}
}

func TestGetUnknownProvider(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)

	_, err = r.Get("boris_bikes")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestFilenameTemplates(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)
	m := month.New(2020, time.June)

	nyc, _ := r.Get("nyc_citibike")
	assert.Equal(t, "202006-citibike-tripdata.csv.zip", nyc.RemoteFilename(m))

	jc, _ := r.Get("jc_citibike")
	assert.Equal(t, "JC-202006-citibike-tripdata.csv.zip", jc.RemoteFilename(m))

	divvy, _ := r.Get("divvy")
	assert.Equal(t, "202006-divvy-tripdata.zip", divvy.RemoteFilename(m))
	assert.Equal(t, "https://divvy-tripdata.s3.amazonaws.com/202006-divvy-tripdata.zip", divvy.RemoteURL(m))
}

func TestRebrandOverrideBoundary(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)
	bw, err := r.Get("baywheels")
	require.NoError(t, err)

	before := month.New(2019, time.April)
	after := month.New(2019, time.May)

	// 2019-04 and earlier were published under the fordgobike name.
	assert.Equal(t, "201904-fordgobike-tripdata.csv.zip", bw.RemoteFilename(before))
	assert.Equal(t, "201812-fordgobike-tripdata.csv.zip", bw.RemoteFilename(month.New(2018, time.December)))

	// 2019-05 onward uses the current name.
	assert.Equal(t, "201905-baywheels-tripdata.csv.zip", bw.RemoteFilename(after))

	// The local cache always uses the current-era name on both sides of
	// the boundary, so lookups by current name succeed for every month.
	assert.Equal(t, "201904-baywheels-tripdata.csv.zip", bw.LocalFilename(before))
	assert.Equal(t, "201905-baywheels-tripdata.csv.zip", bw.LocalFilename(after))
}

func TestCachePath(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)
	divvy, err := r.Get("divvy")
	require.NoError(t, err)

	got := divvy.CachePath("data_cache", month.New(2020, time.June))
	assert.Equal(t, filepath.Join("data_cache", "divvy", "202006-divvy-tripdata.zip"), got)
}

func TestCachePathsDistinctPerKey(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)

	months := month.Range(month.New(2019, time.January), month.New(2019, time.December))
	seen := make(map[string]bool)
	for _, p := range r.List() {
		for _, m := range months {
			path := p.CachePath("data_cache", m)
			assert.False(t, seen[path], "duplicate cache path %s", path)
			seen[path] = true
		}
	}
}

func TestFromYAMLValidation(t *testing.T) {
	_, err := FromYAML([]byte("providers:\n  - id: incomplete\n"))
	require.Error(t, err)

	_, err = FromYAML([]byte("providers: ["))
	require.Error(t, err)
}

func TestFromYAMLDuplicateID(t *testing.T) {
	doc := `
providers:
  - id: example
    uza: "Example, XX"
    base_url: "https://example.com/"
    template: "%d%02d-example.csv.zip"
  - id: example
    uza: "Other, YY"
    base_url: "https://other.example.com/"
    template: "%d%02d-other.csv.zip"
`
	_, err := FromYAML([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate provider id")
}

func TestFromYAMLOverrideParsing(t *testing.T) {
	doc := `
providers:
  - id: example
    uza: "Example, XX"
    base_url: "https://example.com/"
    template: "%d%02d-example.csv.zip"
    overrides:
      - until: "2019-04"
        template: "%d%02d-oldname.csv.zip"
`
	r, err := FromYAML([]byte(doc))
	require.NoError(t, err)

	p, err := r.Get("example")
	require.NoError(t, err)
	require.Len(t, p.Overrides, 1)
	assert.Equal(t, month.New(2019, time.April), p.Overrides[0].Until)

	bad := `
providers:
  - id: example
    base_url: "https://example.com/"
    template: "%d%02d-example.csv.zip"
    overrides:
      - until: "April 2019"
        template: "%d%02d-oldname.csv.zip"
`
	_, err = FromYAML([]byte(bad))
	require.Error(t, err)
}
