package thermochem

import (
	"fmt"
	"math"

	"thermocalc/pkg/units"
)

// SensibleHeatConstantPressure returns ΔH = ΔU + q in kJ, with both inputs in J.
func SensibleHeatConstantPressure(heatReleasedJ, internalEnergyChangeJ float64) (float64, error) {
	if err := checkFinite("SensibleHeatConstantPressure",
		[]string{"heat released", "internal energy change"},
		heatReleasedJ, internalEnergyChangeJ); err != nil {
		return 0, err
	}
	dH := internalEnergyChangeJ + heatReleasedJ
	return result("SensibleHeatConstantPressure", dH*units.JoulesToKJ)
}

// PercentDecreaseHeat returns (initial − absorbed)/initial × 100, rounded to
// two decimals. Any unit works as long as both arguments share it.
func PercentDecreaseHeat(initialHeat, absorbedHeat float64) (float64, error) {
	if err := checkFinite("PercentDecreaseHeat",
		[]string{"initial heat", "absorbed heat"},
		initialHeat, absorbedHeat); err != nil {
		return 0, err
	}
	if initialHeat == 0 {
		return 0, fmt.Errorf("PercentDecreaseHeat: initial heat must be non-zero: %w", ErrInvalidInput)
	}
	pct := (initialHeat - absorbedHeat) / initialHeat * units.Percent
	return result("PercentDecreaseHeat", Round(pct, 2))
}

// Round rounds x half away from zero to the given number of decimal places.
func Round(x float64, places int) float64 {
	if places < 0 {
		places = 0
	}
	p := math.Pow(10, float64(places))
	r := math.Round(x*p) / p
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return x
	}
	return r
}
