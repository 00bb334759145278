// internal/output/result.go
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"thermocalc/pkg/api"
	"thermocalc/pkg/thermochem"
)

// ToAPI converts a computed value to the stable wire schema (v1).
// component is only meaningful for thermochem.KindHess.
func ToAPI(kind thermochem.Kind, component string, value float64, inputs map[string]float64) api.ResultV1 {
	info, _ := thermochem.Lookup(kind)
	v := api.ResultV1{
		Formula: string(kind),
		Label:   info.LabelFor(component),
		Value:   value,
		Unit:    info.Unit,
	}
	if kind == thermochem.KindHess {
		v.Component = component
	}
	if len(inputs) > 0 {
		v.Inputs = make(map[string]float64, len(inputs))
		for k, x := range inputs {
			v.Inputs[k] = x
		}
	}
	return v
}

// FormatValue renders v with a fixed number of decimals and its unit,
// e.g. "-0.41 kJ" or "75.00%".
func FormatValue(v float64, unit string, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if s == "-"+strconv.FormatFloat(0, 'f', precision, 64) {
		s = s[1:]
	}
	switch unit {
	case "":
		return s
	case "%":
		return s + unit
	default:
		return s + " " + unit
	}
}

// WriteText writes "<label>: <value> <unit>" followed by a newline.
func WriteText(w io.Writer, r api.ResultV1, precision int) error {
	_, err := fmt.Fprintf(w, "%s: %s\n", r.Label, FormatValue(r.Value, r.Unit, precision))
	return err
}

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r api.ResultV1) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// Write dispatches on format ("text" or "json").
func Write(w io.Writer, format string, r api.ResultV1, precision int) error {
	switch format {
	case "json":
		return WriteJSON(w, r)
	case "text", "":
		return WriteText(w, r, precision)
	default:
		return fmt.Errorf("invalid output format %q", format)
	}
}
