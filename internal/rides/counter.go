// Package rides counts trips from cached trip-log files and assembles the
// per-provider, per-month ridership table.
package rides

import (
	"bytes"
	"io"
	"os"

	"github.com/mrdmnd/unicycle/pkg/errors"
	"github.com/mrdmnd/unicycle/pkg/month"
	"github.com/mrdmnd/unicycle/pkg/providers"
)

// Counter counts rides from files under a cache root.
type Counter struct {
	Root string
}

// NewCounter creates a Counter reading from the given cache root.
func NewCounter(root string) *Counter {
	return &Counter{Root: root}
}

// Count returns the number of rides recorded for (provider, month): the
// number of data rows in the cached file, excluding its single header
// line. A missing cache entry is not an error; it means the system has no
// data for that month (not yet launched, or the fetch failed) and counts
// as zero.
func (c *Counter) Count(p *providers.Provider, m month.Month) (int, error) {
	path := p.CachePath(c.Root, m)
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.WrapIO("open", path, err)
	}
	defer func() { _ = f.Close() }()

	lines, err := countLines(f)
	if err != nil {
		return 0, errors.WrapIO("read", path, err)
	}
	if lines == 0 {
		return 0, nil
	}
	return lines - 1, nil
}

// countLines counts the lines in r, including a final line with no
// trailing newline. Trip logs hold one ride per row with no embedded
// newlines in fields, so a line count stands in for a record count; this
// is a known approximation, not a CSV parser, and is kept isolated here so
// real parsing can replace it without touching callers.
func countLines(r io.Reader) (int, error) {
	buf := make([]byte, 64*1024)
	lines := 0
	trailing := false

	for {
		n, err := r.Read(buf)
		if n > 0 {
			lines += bytes.Count(buf[:n], []byte{'\n'})
			trailing = buf[n-1] != '\n'
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
	}

	if trailing {
		lines++
	}
	return lines, nil
}
