// pkg/api/result_v1.go
package api

// ResultV1 is the stable JSON schema for one formula evaluation.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ResultV1 struct {
	Formula   string             `json:"formula"` // hess | pv-work | rev-work | enthalpy | percent
	Label     string             `json:"label"`
	Component string             `json:"component,omitempty"` // hess only
	Value     float64            `json:"value"`
	Unit      string             `json:"unit"`
	Inputs    map[string]float64 `json:"inputs,omitempty"`
	Check     *float64           `json:"check_reaction_heat,omitempty"` // hess only: Σ c·ΔHf with the solved value
}
