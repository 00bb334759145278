package thermochem

import (
	"errors"
	"math"
	"testing"
)

func TestSensibleHeatConstantPressure(t *testing.T) {
	cases := []struct {
		q, dU, want float64
	}{
		{1000, 500, 1.5},
		{-2500, 1000, -1.5},
		{0, 0, 0},
	}
	for _, c := range cases {
		got, err := SensibleHeatConstantPressure(c.q, c.dU)
		if err != nil {
			t.Fatalf("q=%v dU=%v: %v", c.q, c.dU, err)
		}
		if !approx(got, c.want, 1e-12) {
			t.Fatalf("q=%v dU=%v: got %v want %v", c.q, c.dU, got, c.want)
		}
	}
	if _, err := SensibleHeatConstantPressure(math.NaN(), 1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput for NaN, got %v", err)
	}
}

func TestPercentDecreaseHeat(t *testing.T) {
	cases := []struct {
		initial, absorbed, want float64
	}{
		{100, 25, 75},
		{3, 1, 66.67},
		{-890, -445, 50},
		{50, 75, -50},
		{100, 100, 0},
	}
	for _, c := range cases {
		got, err := PercentDecreaseHeat(c.initial, c.absorbed)
		if err != nil {
			t.Fatalf("(%v,%v): %v", c.initial, c.absorbed, err)
		}
		if got != c.want {
			t.Fatalf("(%v,%v): got %v want %v", c.initial, c.absorbed, got, c.want)
		}
	}
}

func TestPercentDecreaseHeat_ZeroInitial(t *testing.T) {
	for _, x := range []float64{0, 1, -5, 1e9} {
		_, err := PercentDecreaseHeat(0, x)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("absorbed=%v: want ErrInvalidInput, got %v", x, err)
		}
	}
}

func TestRound(t *testing.T) {
	cases := []struct {
		x      float64
		places int
		want   float64
	}{
		{-0.4053, 2, -0.41},
		{1.005, 0, 1},
		{2.5, 0, 3},
		{-2.5, 0, -3},
		{66.666666, 2, 66.67},
		{12.345, -1, 12},
	}
	for _, c := range cases {
		if got := Round(c.x, c.places); got != c.want {
			t.Fatalf("Round(%v,%d)=%v want %v", c.x, c.places, got, c.want)
		}
	}
}
