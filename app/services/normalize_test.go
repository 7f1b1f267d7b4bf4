package services

import (
	"math"
	"testing"
)

func TestReverseInvolution(t *testing.T) {
	bounds := [][2]float64{{1, 5}, {1, 7}, {0, 10}, {1, 4}}
	for _, b := range bounds {
		for v := b[0]; v <= b[1]; v++ {
			if got := Reverse(Reverse(v, b[0], b[1]), b[0], b[1]); got != v {
				t.Errorf("Reverse twice on %v within [%v,%v] = %v, want %v", v, b[0], b[1], got, v)
			}
		}
	}
}

func TestReverse(t *testing.T) {
	if got := Reverse(2, 1, 5); got != 4 {
		t.Fatalf("Reverse(2,1,5) = %v, want 4", got)
	}
	if got := Reverse(3, 1, 5); got != 3 {
		t.Fatalf("Reverse(3,1,5) = %v, want 3 (midpoint is fixed)", got)
	}
}

func TestNormalizeEndpoints(t *testing.T) {
	if got := Normalize(3, 3, 15); got != 0 {
		t.Fatalf("Normalize at min = %v, want 0", got)
	}
	if got := Normalize(15, 3, 15); got != 100 {
		t.Fatalf("Normalize at max = %v, want 100", got)
	}
}

func TestNormalizeMonotonic(t *testing.T) {
	prev := math.Inf(-1)
	for raw := 3.0; raw <= 15.0; raw += 0.5 {
		got := Normalize(raw, 3, 15)
		if got < prev {
			t.Fatalf("Normalize(%v) = %v decreased from %v", raw, got, prev)
		}
		prev = got
	}
}

func TestNormalizeDegenerateRange(t *testing.T) {
	if got := Normalize(7, 7, 7); got != 50 {
		t.Fatalf("degenerate range should map to midpoint 50, got %v", got)
	}
}

func TestPercentileMidpoint(t *testing.T) {
	if got := Percentile(50); got != 50 {
		t.Fatalf("Percentile(50) = %v, want exactly 50", got)
	}
}

func TestPercentileSymmetry(t *testing.T) {
	for _, x := range []float64{0, 10, 25, 35, 42.5, 49} {
		sum := Percentile(x) + Percentile(100-x)
		if math.Abs(sum-100) > 1e-6 {
			t.Errorf("Percentile(%v)+Percentile(%v) = %v, want 100", x, 100-x, sum)
		}
	}
}

func TestPercentileMonotonic(t *testing.T) {
	prev := math.Inf(-1)
	for score := -25.0; score <= 125.0; score += 0.25 {
		got := Percentile(score)
		if got < prev {
			t.Fatalf("Percentile(%v) = %v decreased from %v", score, got, prev)
		}
		prev = got
	}
}

// The approximation must stay within 0.1 percentile point of the exact
// normal CDF for |z| <= 6, i.e. scores in [-40, 140] on the mean-50 sd-15
// scale.
func TestPercentileAccuracy(t *testing.T) {
	for score := -40.0; score <= 140.0; score += 0.5 {
		z := (score - 50) / 15
		exact := 0.5 * math.Erfc(-z/math.Sqrt2) * 100
		got := Percentile(score)
		if math.Abs(got-exact) > 0.1 {
			t.Fatalf("Percentile(%v) = %v, exact CDF gives %v", score, got, exact)
		}
	}
}
