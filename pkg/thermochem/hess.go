// pkg/thermochem/hess.go
// Hess's law for a single unknown enthalpy of formation.
// Units: reaction heat in kJ, enthalpies in kJ/mol.
//
//   ΔH_rxn = Σ c_i·ΔHf_i   ⇒   ΔHf_x = (ΔH_rxn − Σ_{i≠x} c_i·ΔHf_i) / c_x

package thermochem

import (
	"fmt"
	"math"
)

// minDenominator is the smallest |coefficient| accepted for the unknown term.
const minDenominator = 1e-12

// HeatOfReaction solves r for its one unknown enthalpy of formation given the
// total reaction heat (kJ).
func HeatOfReaction(r Reaction, totalReactionHeatKJ float64) (Formation, error) {
	var out Formation

	if !finite(totalReactionHeatKJ) {
		return out, fmt.Errorf("HeatOfReaction: reaction heat %v: %w", totalReactionHeatKJ, ErrInvalidInput)
	}
	for name, t := range r {
		if !finite(t.Coefficient) {
			return out, fmt.Errorf("HeatOfReaction: coefficient of %q is %v: %w", name, t.Coefficient, ErrInvalidInput)
		}
		if v, ok := t.Enthalpy.Value(); ok && !finite(v) {
			return out, fmt.Errorf("HeatOfReaction: enthalpy of %q is %v: %w", name, v, ErrInvalidInput)
		}
	}

	name, err := r.Unknown()
	if err != nil {
		return out, fmt.Errorf("HeatOfReaction: %w", err)
	}
	coeff := r[name].Coefficient
	if math.Abs(coeff) < minDenominator {
		return out, fmt.Errorf("HeatOfReaction: coefficient of unknown %q must be non-zero: %w", name, ErrInvalidInput)
	}

	v := (totalReactionHeatKJ - r.KnownSum()) / coeff
	if !finite(v) {
		return out, fmt.Errorf("HeatOfReaction: result for %q overflows: %w", name, ErrInvalidInput)
	}
	out.Component = name
	out.EnthalpyKJPerMol = v
	return out, nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

func checkFinite(fn string, names []string, vals ...float64) error {
	for i, v := range vals {
		if !finite(v) {
			return fmt.Errorf("%s: %s is %v: %w", fn, names[i], v, ErrInvalidInput)
		}
	}
	return nil
}
