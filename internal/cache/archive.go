package cache

import (
	"archive/zip"
	"bytes"
	"io"

	"github.com/mrdmnd/unicycle/pkg/errors"
)

// extractFirst returns the contents of the first entry of a zip archive.
//
// Published trip-log archives are assumed to hold exactly one file. An
// empty archive fails loudly; an archive with extra entries silently
// yields its first entry only, which is a documented correctness risk of
// the current scope. Callers depend on this narrow contract, so a real
// multi-entry walker can replace this function without touching them.
func extractFirst(archive []byte, key string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, &errors.ArchiveError{Key: key, Err: err}
	}
	if len(zr.File) == 0 {
		return nil, &errors.ArchiveError{Key: key, Entries: 0}
	}

	rc, err := zr.File[0].Open()
	if err != nil {
		return nil, &errors.ArchiveError{Key: key, Err: err}
	}
	defer func() { _ = rc.Close() }()

	contents, err := io.ReadAll(rc)
	if err != nil {
		return nil, &errors.ArchiveError{Key: key, Err: err}
	}
	return contents, nil
}
