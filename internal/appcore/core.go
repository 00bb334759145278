// internal/appcore/core.go
// Shared evaluation core for the one-shot CLI and the interactive shell.
package appcore

import (
	"fmt"
	"sort"

	"thermocalc/internal/output"
	"thermocalc/pkg/api"
	"thermocalc/pkg/thermochem"
)

// Field is one scalar input of a formula.
type Field struct {
	Key    string // JSON "inputs" key
	Flag   string // CLI flag name
	Prompt string // interactive prompt
}

// Input keys.
const (
	KeyReactionHeat   = "reaction_heat_kJ"
	KeyPressure       = "pressure_atm"
	KeyVInitial       = "v_initial_L"
	KeyVFinal         = "v_final_L"
	KeyMoles          = "moles"
	KeyTemperature    = "temperature_K"
	KeyHeatReleased   = "heat_released_J"
	KeyInternalEnergy = "internal_energy_change_J"
	KeyInitialHeat    = "initial_heat"
	KeyAbsorbedHeat   = "absorbed_heat"
)

var (
	fReactionHeat = Field{KeyReactionHeat, "reaction-heat", "Enter heat of reaction (kJ): "}
	fPressure     = Field{KeyPressure, "pressure", "Enter external pressure (atm): "}
	fVInitial     = Field{KeyVInitial, "v-initial", "Enter initial volume (L): "}
	fVFinal       = Field{KeyVFinal, "v-final", "Enter final volume (L): "}
	fMoles        = Field{KeyMoles, "moles", "Enter number of moles of gas: "}
	fTemperature  = Field{KeyTemperature, "temp", "Enter temperature (K): "}
	fHeatReleased = Field{KeyHeatReleased, "heat-released", "Enter heat released (J): "}
	fInternalE    = Field{KeyInternalEnergy, "internal-energy", "Enter change in internal energy (J): "}
	fInitialHeat  = Field{KeyInitialHeat, "initial-heat", "Enter initial heat of combustion (kJ): "}
	fAbsorbedHeat = Field{KeyAbsorbedHeat, "absorbed-heat", "Enter absorbed heat (kJ): "}
)

var fields = map[thermochem.Kind][]Field{
	thermochem.KindHess:     {fReactionHeat},
	thermochem.KindPVWork:   {fPressure, fVInitial, fVFinal},
	thermochem.KindRevWork:  {fMoles, fTemperature, fVInitial, fVFinal},
	thermochem.KindEnthalpy: {fHeatReleased, fInternalE},
	thermochem.KindPercent:  {fInitialHeat, fAbsorbedHeat},
}

// Fields returns the scalar inputs of k in prompt order.
func Fields(k thermochem.Kind) []Field {
	return append([]Field(nil), fields[k]...)
}

// AllFields returns every distinct scalar field, sorted by flag name.
func AllFields() []Field {
	seen := map[string]bool{}
	var out []Field
	for _, list := range fields {
		for _, f := range list {
			if !seen[f.Key] {
				seen[f.Key] = true
				out = append(out, f)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Flag < out[j].Flag })
	return out
}

// Request is one formula evaluation. Values is keyed by Field.Key.
// Reaction is only read for thermochem.KindHess.
type Request struct {
	Kind     thermochem.Kind
	Values   map[string]float64
	Reaction thermochem.Reaction
}

// Evaluate runs the formula named by req.Kind and converts the result to the
// wire schema. Library errors are returned unchanged.
func Evaluate(req Request) (api.ResultV1, error) {
	list, ok := fields[req.Kind]
	if !ok {
		return api.ResultV1{}, fmt.Errorf("unknown formula %q", req.Kind)
	}
	for _, f := range list {
		if _, ok := req.Values[f.Key]; !ok {
			return api.ResultV1{}, fmt.Errorf("%s: missing input %s", req.Kind, f.Key)
		}
	}
	v := req.Values

	var (
		val       float64
		component string
		err       error
	)
	switch req.Kind {
	case thermochem.KindHess:
		var f thermochem.Formation
		f, err = thermochem.HeatOfReaction(req.Reaction, v[KeyReactionHeat])
		val, component = f.EnthalpyKJPerMol, f.Component
	case thermochem.KindPVWork:
		val, err = thermochem.WorkExternalPressure(v[KeyPressure], v[KeyVInitial], v[KeyVFinal])
	case thermochem.KindRevWork:
		val, err = thermochem.ReversibleWork(v[KeyMoles], v[KeyTemperature], v[KeyVInitial], v[KeyVFinal])
	case thermochem.KindEnthalpy:
		val, err = thermochem.SensibleHeatConstantPressure(v[KeyHeatReleased], v[KeyInternalEnergy])
	case thermochem.KindPercent:
		val, err = thermochem.PercentDecreaseHeat(v[KeyInitialHeat], v[KeyAbsorbedHeat])
	}
	if err != nil {
		return api.ResultV1{}, err
	}

	inputs := make(map[string]float64, len(list))
	for _, f := range list {
		inputs[f.Key] = v[f.Key]
	}
	res := output.ToAPI(req.Kind, component, val, inputs)
	if req.Kind == thermochem.KindHess {
		check := req.Reaction.Heat(thermochem.Formation{Component: component, EnthalpyKJPerMol: val})
		res.Check = &check
	}
	return res, nil
}
