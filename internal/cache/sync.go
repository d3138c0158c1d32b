// Package cache maintains the local trip-log cache: one file per
// (provider, month), fetched once and then treated as permanently valid.
package cache

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/mrdmnd/unicycle/internal/transport"
	"github.com/mrdmnd/unicycle/pkg/constants"
	"github.com/mrdmnd/unicycle/pkg/errors"
	"github.com/mrdmnd/unicycle/pkg/logging"
	"github.com/mrdmnd/unicycle/pkg/month"
	"github.com/mrdmnd/unicycle/pkg/providers"
)

// Status reports what Ensure did for a cache key.
type Status int

// Ensure outcomes.
const (
	StatusUnknown Status = iota
	StatusAlreadyPresent
	StatusFetched
)

// String returns a human-readable form of the status.
func (s Status) String() string {
	switch s {
	case StatusAlreadyPresent:
		return "already present"
	case StatusFetched:
		return "fetched"
	default:
		return "unknown"
	}
}

// Syncer downloads and persists trip-log files.
type Syncer struct {
	Root   string
	Client *transport.Client
}

// New creates a Syncer writing under the given cache root.
func New(root string, client *transport.Client) *Syncer {
	return &Syncer{Root: root, Client: client}
}

// Ensure makes the trip-log file for (provider, month) present in the
// local cache. If the file already exists it returns immediately with no
// network access; an existing entry is never re-fetched or rewritten.
// Otherwise it downloads the remote archive (using the historical filename
// variant where one applies), extracts the contained file, and writes it
// to the cache under the current-era filename.
func (s *Syncer) Ensure(ctx context.Context, p *providers.Provider, m month.Month) (Status, error) {
	path := p.CachePath(s.Root, m)
	if _, err := os.Stat(path); err == nil {
		return StatusAlreadyPresent, nil
	}

	// The context logger carries provider/month fields during bulk syncs.
	key := p.RemoteURL(m)
	logging.Ctx(ctx).Debug().
		Str("key", key).
		Msg("Downloading trip data")

	resp, err := s.Client.Get(ctx, key)
	if err != nil {
		return StatusUnknown, &errors.APIError{
			Provider: string(p.ID),
			Endpoint: key,
			Message:  "download failed",
			Err:      err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return StatusUnknown, &errors.APIError{
			Provider:   string(p.ID),
			Endpoint:   key,
			StatusCode: resp.StatusCode,
			Message:    resp.Status,
		}
	}

	// The zip reader needs random access, so the archive is buffered in
	// memory before extraction.
	archive, err := io.ReadAll(resp.Body)
	if err != nil {
		return StatusUnknown, errors.WrapIO("read", key, err)
	}

	contents, err := extractFirst(archive, key)
	if err != nil {
		return StatusUnknown, err
	}

	if err := s.write(path, contents); err != nil {
		return StatusUnknown, err
	}
	return StatusFetched, nil
}

// write persists the extracted file via a temp file and an atomic rename,
// so a crashed download never leaves a partial cache entry behind.
func (s *Syncer) write(path string, contents []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".download_*")
	if err != nil {
		return errors.WrapIO("create", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(contents); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return errors.WrapIO("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("close", path, err)
	}
	if err := os.Chmod(tmpPath, constants.FilePermissions); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("write", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("write", path, err)
	}
	return nil
}
