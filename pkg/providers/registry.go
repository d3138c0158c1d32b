package providers

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/mrdmnd/unicycle/pkg/errors"
	"github.com/mrdmnd/unicycle/pkg/month"
)

// Registry is the immutable set of tracked providers. It is built once at
// startup and passed into every component that needs provider metadata.
type Registry struct {
	byID  map[ID]*Provider
	order []ID
}

// Get returns the provider with the given ID.
func (r *Registry) Get(id ID) (*Provider, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, errors.NewNotFoundError("provider", string(id))
	}
	return p, nil
}

// List returns all providers in their configured order.
func (r *Registry) List() []*Provider {
	out := make([]*Provider, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// Len returns the number of registered providers.
func (r *Registry) Len() int {
	return len(r.order)
}

// providerConfig is the YAML form of a Provider definition.
type providerConfig struct {
	ID        ID               `yaml:"id"`
	UZA       string           `yaml:"uza"`
	BaseURL   string           `yaml:"base_url"`
	Template  string           `yaml:"template"`
	Overrides []overrideConfig `yaml:"overrides"`
}

type overrideConfig struct {
	Until    string `yaml:"until"`
	Template string `yaml:"template"`
}

type registryConfig struct {
	Providers []providerConfig `yaml:"providers"`
}

// FromYAML builds a Registry from a YAML provider definition document.
func FromYAML(data []byte) (*Registry, error) {
	var config registryConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.WrapParse("yaml", "provider definitions", err)
	}

	r := &Registry{byID: make(map[ID]*Provider, len(config.Providers))}
	for _, pc := range config.Providers {
		if pc.ID == "" || pc.BaseURL == "" || pc.Template == "" {
			return nil, &errors.ParseError{
				Format:  "yaml",
				Source:  "provider definitions",
				Message: "provider entries need id, base_url and template",
			}
		}
		p := &Provider{
			ID:       pc.ID,
			UZA:      pc.UZA,
			BaseURL:  pc.BaseURL,
			Template: pc.Template,
		}
		for _, oc := range pc.Overrides {
			until, err := month.Parse(oc.Until)
			if err != nil {
				return nil, errors.WrapParse("yaml", "provider "+string(pc.ID), err)
			}
			p.Overrides = append(p.Overrides, Override{Until: until, Template: oc.Template})
		}
		if _, exists := r.byID[p.ID]; exists {
			return nil, &errors.ParseError{
				Format:  "yaml",
				Source:  "provider definitions",
				Message: "duplicate provider id " + string(p.ID),
			}
		}
		r.byID[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r, nil
}

// LoadFile builds a Registry from a YAML file on disk.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return FromYAML(data)
}
