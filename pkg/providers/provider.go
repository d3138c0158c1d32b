// Package providers defines the bikeshare systems whose trip logs are
// tracked, and resolves (provider, month) pairs to remote object keys and
// local cache paths.
package providers

import (
	"fmt"
	"path/filepath"

	"github.com/mrdmnd/unicycle/pkg/month"
)

// ID identifies a bikeshare system, e.g. "divvy".
type ID string

// Override is a historical filename variant. Objects for months up to and
// including Until were published under Template instead of the provider's
// current template (typically the product name before a rebrand).
type Override struct {
	Until    month.Month
	Template string
}

// Provider holds the static metadata for one bikeshare system.
type Provider struct {
	ID  ID
	UZA string // urbanized-area label, matches the NTD "UZA Name" column

	// BaseURL is the public bucket the monthly archives live in.
	BaseURL string

	// Template produces the current-era archive filename. It takes the
	// year and the zero-padded month, in that order.
	Template string

	// Overrides lists historical filename variants, ordered oldest first.
	Overrides []Override
}

// RemoteFilename returns the archive filename as published for the given
// month, applying any historical override that covers it.
func (p *Provider) RemoteFilename(m month.Month) string {
	for _, o := range p.Overrides {
		if !m.After(o.Until) {
			return fmt.Sprintf(o.Template, m.Year, int(m.Month))
		}
	}
	return fmt.Sprintf(p.Template, m.Year, int(m.Month))
}

// LocalFilename returns the cache filename for the given month. It always
// uses the current-era template, regardless of which remote variant the
// bytes came from, so lookups by current name succeed for every month.
func (p *Provider) LocalFilename(m month.Month) string {
	return fmt.Sprintf(p.Template, m.Year, int(m.Month))
}

// RemoteURL returns the full download URL for the given month.
func (p *Provider) RemoteURL(m month.Month) string {
	return p.BaseURL + p.RemoteFilename(m)
}

// CachePath returns the local cache location for the given month under the
// given cache root: <root>/<id>/<current-era filename>. Distinct
// (provider, month) pairs always map to distinct paths.
func (p *Provider) CachePath(root string, m month.Month) string {
	return filepath.Join(root, string(p.ID), p.LocalFilename(m))
}
