package thermochem

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind names one of the five formulas.
type Kind string

const (
	KindHess     Kind = "hess"
	KindPVWork   Kind = "pv-work"
	KindRevWork  Kind = "rev-work"
	KindEnthalpy Kind = "enthalpy"
	KindPercent  Kind = "percent"
)

// Info describes a formula for menus and result labels.
type Info struct {
	Kind  Kind
	Menu  int    // 1-based menu position
	Title string // menu line
	Label string // result label; for KindHess the component name is appended
	Unit  string
}

var infos = []Info{
	{KindHess, 1, "Heat of Reaction (Unknown Heat of Formation)", "Heat of formation", "kJ/mol"},
	{KindPVWork, 2, "Work Done (Constant External Pressure)", "Work done", "kJ"},
	{KindRevWork, 3, "Work Done (Reversible Expansion/Compression)", "Reversible work done", "kJ"},
	{KindEnthalpy, 4, "Sensible Heat at Constant Pressure", "Change in enthalpy", "kJ"},
	{KindPercent, 5, "Percent Decrease in Heat", "Percent decrease in heat", "%"},
}

// Kinds returns every formula in menu order.
func Kinds() []Info {
	return append([]Info(nil), infos...)
}

// Lookup returns the Info for k.
func Lookup(k Kind) (Info, bool) {
	for _, in := range infos {
		if in.Kind == k {
			return in, true
		}
	}
	return Info{}, false
}

// ParseKind accepts a formula name (case-insensitive) or its menu number.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		for _, in := range infos {
			if in.Menu == n {
				return in.Kind, nil
			}
		}
		return "", fmt.Errorf("unknown formula %q (menu numbers are 1-%d)", s, len(infos))
	}
	if _, ok := Lookup(Kind(s)); ok {
		return Kind(s), nil
	}
	names := make([]string, 0, len(infos))
	for _, in := range infos {
		names = append(names, string(in.Kind))
	}
	return "", fmt.Errorf("unknown formula %q (want one of: %s)", s, strings.Join(names, ", "))
}

// LabelFor returns the human result label, e.g. "Heat of formation for B".
func (in Info) LabelFor(component string) string {
	if in.Kind == KindHess && component != "" {
		return in.Label + " for " + component
	}
	return in.Label
}
