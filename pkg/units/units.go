// pkg/units/units.go
// Fixed conversion factors used by the formula library.
// Nothing here is ever reassigned; keep everything a const.

package units

const (
	JoulesToKJ       = 0.001   // J → kJ
	LiterAtmToJoules = 101.325 // L·atm → J
	GasConstant      = 8.314   // J/(mol·K)
	Percent          = 100
)
