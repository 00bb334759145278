// pkg/thermochem/work.go
// Expansion/compression work of a gas. Work done ON the system is positive,
// so an expansion (V_final > V_initial) gives a negative value.

package thermochem

import (
	"fmt"
	"math"

	"thermocalc/pkg/units"
)

// WorkExternalPressure returns w = −P_ext·ΔV in kJ for a pressure in atm and
// volumes in L.
func WorkExternalPressure(pressureAtm, vInitialL, vFinalL float64) (float64, error) {
	if err := checkFinite("WorkExternalPressure",
		[]string{"pressure", "initial volume", "final volume"},
		pressureAtm, vInitialL, vFinalL); err != nil {
		return 0, err
	}
	dv := vFinalL - vInitialL
	workJ := -pressureAtm * dv * units.LiterAtmToJoules
	return result("WorkExternalPressure", workJ*units.JoulesToKJ)
}

// ReversibleWork returns w = −nRT·ln(V_final/V_initial) in kJ for an ideal gas
// at constant temperature. Both volumes must be > 0.
func ReversibleWork(nMoles, temperatureK, vInitialL, vFinalL float64) (float64, error) {
	if err := checkFinite("ReversibleWork",
		[]string{"moles", "temperature", "initial volume", "final volume"},
		nMoles, temperatureK, vInitialL, vFinalL); err != nil {
		return 0, err
	}
	if vInitialL <= 0 || vFinalL <= 0 {
		return 0, fmt.Errorf("ReversibleWork: volumes must be > 0 (initial=%v, final=%v): %w",
			vInitialL, vFinalL, ErrInvalidInput)
	}
	workJ := -nMoles * units.GasConstant * temperatureK * math.Log(vFinalL/vInitialL)
	return result("ReversibleWork", workJ*units.JoulesToKJ)
}

func result(fn string, v float64) (float64, error) {
	if !finite(v) {
		return 0, fmt.Errorf("%s: result is %v: %w", fn, v, ErrInvalidInput)
	}
	// Normalize -0 so callers never print "-0.00".
	if v == 0 {
		return 0, nil
	}
	return v, nil
}
