package core

import (
	"math"
	"testing"
)

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestDBConversions(t *testing.T) {
	linear := DBToLinear(-6)
	db := LinearToDB(linear)
	if !NearlyEqual(db, -6, 1e-10) {
		t.Fatalf("LinearToDB(DBToLinear(-6)) = %v, want -6", db)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}

func TestLinearToDBMonotonic(t *testing.T) {
	levels := []float64{1e-9, 1e-4, 0.01, 0.5, 0.707, 1, 1.414, 10}
	for i := 1; i < len(levels); i++ {
		lo := LinearToDB(levels[i-1])
		hi := LinearToDB(levels[i])
		if lo >= hi {
			t.Fatalf("LinearToDB not monotonic: f(%v)=%v >= f(%v)=%v",
				levels[i-1], lo, levels[i], hi)
		}
	}
}
