// Package config loads worksheet definitions: document metadata plus an
// ordered list of problem blocks, each naming a problem kind, a count, and
// kind-specific sampling parameters.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a worksheet definition fails validation.
var ErrInvalidConfig = errors.New("invalid worksheet definition")

// Kinds of problem blocks a worksheet may request.
const (
	KindNumerical  = "numerical"
	KindLinear     = "linear"
	KindQuadratic  = "quadratic"
	KindFactorable = "factorable"
	KindFracToDec  = "frac_to_dec"
	KindDecToFrac  = "dec_to_frac"
)

var validKinds = map[string]bool{
	KindNumerical:  true,
	KindLinear:     true,
	KindQuadratic:  true,
	KindFactorable: true,
	KindFracToDec:  true,
	KindDecToFrac:  true,
}

// Worksheet is a full worksheet definition.
type Worksheet struct {
	Title    string  `yaml:"title"`
	Author   string  `yaml:"author"`
	Message  string  `yaml:"message"`
	Shuffle  bool    `yaml:"shuffle"`
	Seed     uint64  `yaml:"seed"`
	Problems []Block `yaml:"problems"`
}

// Block requests Count problems of one Kind. Params carries the
// kind-specific sampling parameters, decoded on demand.
type Block struct {
	Kind   string         `yaml:"kind"`
	Count  int            `yaml:"count"`
	Params map[string]any `yaml:"params"`
}

// Decode maps the block's raw parameters onto a typed parameter struct.
func (b Block) Decode(out any) error {
	if b.Params == nil {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(b.Params); err != nil {
		return fmt.Errorf("%w: block %q: %v", ErrInvalidConfig, b.Kind, err)
	}
	return nil
}

// Load reads and parses a worksheet definition file.
func Load(path string) (*Worksheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet definition: %w", err)
	}
	return Parse(data)
}

// Parse parses a YAML worksheet definition and applies defaults.
func Parse(data []byte) (*Worksheet, error) {
	var ws Worksheet
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if ws.Title == "" {
		ws.Title = "Worksheet"
	}
	if len(ws.Problems) == 0 {
		return nil, fmt.Errorf("%w: no problem blocks", ErrInvalidConfig)
	}
	for i := range ws.Problems {
		b := &ws.Problems[i]
		if !validKinds[b.Kind] {
			return nil, fmt.Errorf("%w: unknown kind %q in block %d", ErrInvalidConfig, b.Kind, i)
		}
		if b.Count == 0 {
			b.Count = 1
		}
		if b.Count < 0 {
			return nil, fmt.Errorf("%w: negative count in block %d", ErrInvalidConfig, i)
		}
	}
	return &ws, nil
}
