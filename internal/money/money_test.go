package money

import (
	"errors"
	"math"
	"testing"
)

func TestToMinorUnits_RoundsHalfAwayFromZero(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{25.995, 2600},
		{2699, 269900},
		{0.005, 1},
		{19.99, 1999},
		{0.1 + 0.2, 30},
		{-1.005, -101},
	}
	for _, tc := range cases {
		got, err := ToMinorUnits(tc.amount)
		if err != nil {
			t.Fatalf("ToMinorUnits(%v): %v", tc.amount, err)
		}
		if got != tc.want {
			t.Fatalf("ToMinorUnits(%v) = %d, want %d", tc.amount, got, tc.want)
		}
	}
}

func TestToMinorUnits_RejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := ToMinorUnits(v); !errors.Is(err, ErrNotFinite) {
			t.Fatalf("expected ErrNotFinite for %v, got %v", v, err)
		}
	}
}

func TestSumAndEqual(t *testing.T) {
	if got := Sum(0.1, 0.2); got != 0.3 {
		t.Fatalf("expected 0.3, got %v", got)
	}
	if got := Sum(); got != 0 {
		t.Fatalf("expected 0 for empty sum, got %v", got)
	}
	if !Equal(2699, 2699.004) {
		t.Fatalf("expected sub-cent difference to be equal")
	}
	if Equal(2699, 2699.01) {
		t.Fatalf("expected one cent difference to be unequal")
	}
}

func TestRoundCents(t *testing.T) {
	cases := map[float64]float64{2699.999: 2700, 25.995: 26, 0.004: 0, 19.99: 19.99}
	for in, want := range cases {
		if got := RoundCents(in); got != want {
			t.Fatalf("RoundCents(%v) = %v, want %v", in, got, want)
		}
	}
}
