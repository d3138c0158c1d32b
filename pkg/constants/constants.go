// Package constants provides shared constants used throughout the unicycle codebase.
package constants

import "time"

// Timeout constants define the timeout durations used for remote fetches.
const (
	// DefaultHTTPTimeout is the standard timeout for a single HTTP download.
	// Trip-log archives can run to hundreds of megabytes, so this is generous.
	DefaultHTTPTimeout = 5 * time.Minute
)

// File permission constants define standard Unix file permissions.
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x).
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--).
	FilePermissions = 0644
)

// Cache constants define the local data cache layout and fetch behavior.
const (
	// DefaultCacheDir is the root of the local trip-log cache, relative to
	// the working directory unless overridden.
	DefaultCacheDir = "data_cache"

	// DefaultConcurrency is the size of the download worker pool.
	DefaultConcurrency = 16
)

// Output constants define defaults for the exported table.
const (
	// DefaultOutputFile is where the merged ridership table is written.
	DefaultOutputFile = "output.csv"
)
