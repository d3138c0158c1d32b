package providers

import _ "embed"

//go:embed providers.yaml
var defaultDefinitions []byte

// Default returns the built-in provider registry.
func Default() (*Registry, error) {
	return FromYAML(defaultDefinitions)
}
