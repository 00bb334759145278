package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"thermocalc/pkg/api"
	"thermocalc/pkg/thermochem"
)

func TestFormatValue(t *testing.T) {
	cases := []struct {
		v         float64
		unit      string
		precision int
		want      string
	}{
		{-0.4053, "kJ", 2, "-0.41 kJ"},
		{75, "%", 2, "75.00%"},
		{50, "kJ/mol", 2, "50.00 kJ/mol"},
		{-0.001, "kJ", 2, "0.00 kJ"},
		{1.5, "", 0, "2"},
	}
	for _, c := range cases {
		if got := FormatValue(c.v, c.unit, c.precision); got != c.want {
			t.Errorf("FormatValue(%v,%q,%d)=%q want %q", c.v, c.unit, c.precision, got, c.want)
		}
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	r := ToAPI(thermochem.KindHess, "B", 50, nil)
	if err := WriteText(&buf, r, 2); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if got, want := buf.String(), "Heat of formation for B: 50.00 kJ/mol\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}

	buf.Reset()
	r = ToAPI(thermochem.KindPercent, "", 75, nil)
	if err := Write(&buf, "text", r, 2); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got, want := buf.String(), "Percent decrease in heat: 75.00%\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestWriteJSON_Schema(t *testing.T) {
	var buf bytes.Buffer
	r := ToAPI(thermochem.KindPVWork, "ignored", -0.4053, map[string]float64{"pressure_atm": 2})
	if err := Write(&buf, "json", r, 2); err != nil {
		t.Fatalf("Write: %v", err)
	}
	var got api.ResultV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, buf.String())
	}
	want := api.ResultV1{
		Formula: "pv-work",
		Label:   "Work done",
		Value:   -0.4053,
		Unit:    "kJ",
		Inputs:  map[string]float64{"pressure_atm": 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
	if bytes.Contains(buf.Bytes(), []byte(`"component"`)) {
		t.Fatalf("component must be omitted for non-hess results:\n%s", buf.String())
	}
}

func TestWrite_BadFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, "xml", api.ResultV1{}, 2); err == nil {
		t.Fatalf("expected error")
	}
}
