package shapeexpr

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Hints maps variable names to the concrete values used at guard time.
//
// The file format is a flat YAML mapping:
//
//	batch: 32
//	seq_len: 128
type Hints map[string]int64

// ParseHints decodes a hints document.
func ParseHints(data []byte) (Hints, error) {
	var h Hints
	if err := yaml.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("shapeexpr: parse hints: %w", err)
	}
	if h == nil {
		h = Hints{}
	}
	return h, nil
}

// LoadHints reads and decodes a hints file.
func LoadHints(path string) (Hints, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("shapeexpr: read hints: %w", err)
	}
	return ParseHints(data)
}

// ApplyHints installs every binding from h into the Env.
func (e *Env) ApplyHints(h Hints) {
	for name, v := range h {
		e.SetHint(name, v)
	}
}
