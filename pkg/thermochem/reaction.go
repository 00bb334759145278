package thermochem

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Enthalpy is a standard enthalpy of formation (kJ/mol) that may be unknown.
// The zero value is a known 0.
type Enthalpy struct {
	value   float64
	unknown bool
}

// Known returns a known enthalpy of v kJ/mol.
func Known(v float64) Enthalpy { return Enthalpy{value: v} }

// Unknown returns the enthalpy to solve for.
func Unknown() Enthalpy { return Enthalpy{unknown: true} }

// IsKnown reports whether e carries a value.
func (e Enthalpy) IsKnown() bool { return !e.unknown }

// Value returns the enthalpy and whether it is known.
func (e Enthalpy) Value() (float64, bool) { return e.value, !e.unknown }

func (e Enthalpy) String() string {
	if e.unknown {
		return "unknown"
	}
	return strconv.FormatFloat(e.value, 'g', -1, 64)
}

// Term is one component of a reaction: its stoichiometric coefficient and
// enthalpy of formation.
type Term struct {
	Coefficient float64
	Enthalpy    Enthalpy
}

// Reaction maps component name → term. Order is irrelevant.
type Reaction map[string]Term

// Formation is a solved enthalpy of formation for one component.
type Formation struct {
	Component        string
	EnthalpyKJPerMol float64
}

// Unknown returns the single component whose enthalpy is unknown.
// Zero unknowns yields ErrNothingToCompute, more than one ErrAmbiguousReaction.
func (r Reaction) Unknown() (string, error) {
	var names []string
	for name, t := range r {
		if !t.Enthalpy.IsKnown() {
			names = append(names, name)
		}
	}
	switch len(names) {
	case 0:
		return "", ErrNothingToCompute
	case 1:
		return names[0], nil
	default:
		sort.Strings(names)
		return "", fmt.Errorf("%w: %d unknown components (%s); exactly one is required",
			ErrAmbiguousReaction, len(names), strings.Join(names, ", "))
	}
}

// KnownSum returns Σ coefficient×enthalpy over components with a known enthalpy (kJ).
func (r Reaction) KnownSum() float64 {
	sum := 0.0
	for _, t := range r {
		if v, ok := t.Enthalpy.Value(); ok {
			sum += t.Coefficient * v
		}
	}
	return sum
}

// Heat substitutes f into r and returns Σ coefficient×enthalpy (kJ).
// Components other than f.Component that are still unknown contribute nothing.
func (r Reaction) Heat(f Formation) float64 {
	sum := 0.0
	for name, t := range r {
		if name == f.Component {
			sum += t.Coefficient * f.EnthalpyKJPerMol
			continue
		}
		if v, ok := t.Enthalpy.Value(); ok {
			sum += t.Coefficient * v
		}
	}
	return sum
}
