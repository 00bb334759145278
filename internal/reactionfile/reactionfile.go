// internal/reactionfile/reactionfile.go
// Reaction input: YAML files and inline "name:coeff:enthalpy" specs.
package reactionfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"thermocalc/pkg/thermochem"
)

// File is the on-disk reaction document.
type File struct {
	// ReactionHeat is the total heat of reaction in kJ.
	ReactionHeat *float64 `yaml:"reaction_heat"`

	// Components lists every species with its coefficient and ΔHf.
	Components []Component `yaml:"components"`
}

// Component is one species of the reaction.
type Component struct {
	Name        string   `yaml:"name"`
	Coefficient float64  `yaml:"coefficient"`
	Enthalpy    Enthalpy `yaml:"enthalpy"`

	line int
}

// Enthalpy decodes either a number or an unknown marker ("unknown", "?", or null).
type Enthalpy struct {
	thermochem.Enthalpy
}

// UnmarshalYAML implements yaml.Unmarshaler. A null value never reaches it;
// Component.UnmarshalYAML handles that case.
func (e *Enthalpy) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: enthalpy must be a number or 'unknown'", n.Line)
	}
	if IsUnknownMarker(n.Value) {
		e.Enthalpy = thermochem.Unknown()
		return nil
	}
	var v float64
	if err := n.Decode(&v); err != nil {
		return fmt.Errorf("line %d: bad enthalpy %q (kJ/mol or 'unknown')", n.Line, n.Value)
	}
	e.Enthalpy = thermochem.Known(v)
	return nil
}

var componentKeys = map[string]bool{"name": true, "coefficient": true, "enthalpy": true}

// UnmarshalYAML rejects unknown keys and a missing enthalpy, and records the
// node line for later validation messages. Node.Decode does not inherit the
// decoder's KnownFields setting, so keys are checked here.
func (c *Component) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: component must be a mapping", n.Line)
	}
	var enthalpy *yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i]
		if !componentKeys[k.Value] {
			return fmt.Errorf("line %d: unknown component field %q (want name, coefficient, enthalpy)", k.Line, k.Value)
		}
		if k.Value == "enthalpy" {
			enthalpy = n.Content[i+1]
		}
	}
	if enthalpy == nil {
		return fmt.Errorf("line %d: enthalpy is required (kJ/mol or 'unknown')", n.Line)
	}

	type plain Component
	var p plain
	if err := n.Decode(&p); err != nil {
		return err
	}
	*c = Component(p)
	if enthalpy.ShortTag() == "!!null" {
		c.Enthalpy.Enthalpy = thermochem.Unknown()
	}
	c.line = n.Line
	return nil
}

// IsUnknownMarker reports whether s marks an unknown enthalpy.
// A blank string is not a marker.
func IsUnknownMarker(s string) bool {
	s = strings.TrimSpace(s)
	return strings.EqualFold(s, "unknown") || s == "?"
}

// Load reads and validates a reaction file.
func Load(path string) (thermochem.Reaction, float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("reading reaction file: %w", err)
	}
	r, heat, err := Parse(data)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	return r, heat, nil
}

// Parse decodes a reaction document from YAML bytes. Unknown keys are errors.
func Parse(data []byte) (thermochem.Reaction, float64, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, 0, fmt.Errorf("parsing reaction YAML: %w", err)
	}
	if f.ReactionHeat == nil {
		return nil, 0, errors.New("reaction_heat is required")
	}
	if len(f.Components) == 0 {
		return nil, 0, errors.New("at least one component is required")
	}
	r := make(thermochem.Reaction, len(f.Components))
	for _, c := range f.Components {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, 0, fmt.Errorf("line %d: component name is empty", c.line)
		}
		if _, dup := r[name]; dup {
			return nil, 0, fmt.Errorf("line %d: duplicate component %q", c.line, name)
		}
		r[name] = thermochem.Term{Coefficient: c.Coefficient, Enthalpy: c.Enthalpy.Enthalpy}
	}
	return r, *f.ReactionHeat, nil
}

// ParseInline parses "name:coeff:enthalpy", where enthalpy may be "unknown" or "?".
func ParseInline(spec string) (string, thermochem.Term, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return "", thermochem.Term{}, fmt.Errorf("component %q: want name:coefficient:enthalpy", spec)
	}
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return "", thermochem.Term{}, fmt.Errorf("component %q: empty name", spec)
	}
	coeff, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return "", thermochem.Term{}, fmt.Errorf("component %q: bad coefficient %q", spec, parts[1])
	}
	en, err := ParseEnthalpy(parts[2])
	if err != nil {
		return "", thermochem.Term{}, fmt.Errorf("component %q: %v", spec, err)
	}
	return name, thermochem.Term{Coefficient: coeff, Enthalpy: en}, nil
}

// ParseEnthalpy parses a kJ/mol value or an unknown marker.
func ParseEnthalpy(s string) (thermochem.Enthalpy, error) {
	if IsUnknownMarker(s) {
		return thermochem.Unknown(), nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return thermochem.Enthalpy{}, fmt.Errorf("bad enthalpy %q (kJ/mol or 'unknown')", strings.TrimSpace(s))
	}
	return thermochem.Known(v), nil
}

// FromInline builds a reaction from repeated inline specs.
func FromInline(specs []string) (thermochem.Reaction, error) {
	r := make(thermochem.Reaction, len(specs))
	for _, s := range specs {
		name, term, err := ParseInline(s)
		if err != nil {
			return nil, err
		}
		if _, dup := r[name]; dup {
			return nil, fmt.Errorf("duplicate component %q", name)
		}
		r[name] = term
	}
	return r, nil
}
