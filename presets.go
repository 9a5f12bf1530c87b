package graintile

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/unkn0wn-root/graintile/tile"
)

// builtinPresets returns the default preset table. Options.Presets entries
// overlay these; the returned map is fresh so callers may mutate it.
func builtinPresets() map[string]string {
	return map[string]string{
		"subtle": "100,20,5",
		"medium": "128,50,5",
		"strong": "128,100,10",
	}
}

// LoadPresets reads a YAML preset table mapping names to
// "mean,stdDev,opacity" specs, e.g.:
//
//	subtle: "100,20,5"
//	paper:  "200,12,3"
//
// Every spec is validated eagerly so a bad table fails at load time, not at
// first request.
func LoadPresets(r io.Reader) (map[string]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("graintile: reading presets: %w", err)
	}
	var m map[string]string
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("graintile: parsing presets: %w", err)
	}
	for name, spec := range m {
		if _, err := tile.ParseParams(spec); err != nil {
			return nil, fmt.Errorf("graintile: preset %q: %w", name, err)
		}
	}
	return m, nil
}
