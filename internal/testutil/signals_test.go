package testutil

import (
	"math"
	"testing"
)

func TestRamp(t *testing.T) {
	r := Ramp(-2, 2, 5)
	want := []float64{-2, -1, 0, 1, 2}
	RequireSliceNearlyEqual(t, r, want, 1e-15)

	if r[0] != -2 || r[4] != 2 {
		t.Fatalf("end points not exact: %v", r)
	}
}

func TestRampShort(t *testing.T) {
	if got := Ramp(0, 1, 0); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}

	if got := Ramp(3, 7, 1); len(got) != 1 || got[0] != 3 {
		t.Fatalf("Ramp(3, 7, 1) = %v, want [3]", got)
	}
}

func TestDeterministicUniform(t *testing.T) {
	a := DeterministicUniform(42, -5, 5, 64)
	b := DeterministicUniform(42, -5, 5, 64)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("not deterministic at index %d", i)
		}

		if a[i] < -5 || a[i] >= 5 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestDC(t *testing.T) {
	for i, v := range DC(0.5, 8) {
		if v != 0.5 {
			t.Fatalf("index %d: got %v, want 0.5", i, v)
		}
	}
}

func TestInjectNonFinite(t *testing.T) {
	src := Ramp(0, 1, 7)
	got := InjectNonFinite(src, 3)

	if !math.IsNaN(got[0]) || !math.IsInf(got[3], 1) || !math.IsInf(got[6], -1) {
		t.Fatalf("unexpected injection pattern: %v", got)
	}

	if got[1] != src[1] || got[5] != src[5] {
		t.Fatalf("regular samples modified: %v", got)
	}

	if math.IsNaN(src[0]) {
		t.Fatal("source buffer modified")
	}
}
