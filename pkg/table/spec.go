package table

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Spec is a truth table description loaded from a YAML file.
type Spec struct {
	// Name is the function name used by the code emitter.
	Name string `json:"name" mapstructure:"name"`
	// Params are positional names for the input variables.
	Params []string `json:"params" mapstructure:"params"`
	// DontCare overrides the reserved don't-care token (default "*").
	DontCare string `json:"dont_care" mapstructure:"dont_care"`
	// Values are the 2^k outputs in row-major order (row 0 = all true).
	Values []string `json:"values" mapstructure:"values"`
}

// LoadSpec reads a YAML table spec. The document is decoded into a generic
// map first and then mapped onto the struct, so unknown keys are tolerated
// and the file format can grow without breaking old files.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table spec: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse table spec %s: %w", path, err)
	}

	var spec Spec
	if err := mapstructure.Decode(raw, &spec); err != nil {
		return nil, fmt.Errorf("failed to decode table spec %s: %w", path, err)
	}
	if spec.DontCare == "" {
		spec.DontCare = DefaultDontCare
	}
	if len(spec.Values) == 0 {
		return nil, fmt.Errorf("table spec %s has no values", path)
	}
	return &spec, nil
}
