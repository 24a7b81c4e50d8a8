package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-waveprops/dsp/core"
)

func TestSineLength(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(48000))
	s, err := g.Sine(1000, 1, 64)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	if len(s) != 64 {
		t.Fatalf("len = %d, want 64", len(s))
	}
}

func TestSineInvalidSampleRate(t *testing.T) {
	g := NewGenerator()
	if _, err := g.Sine(1000, 1, 64); err == nil {
		t.Fatal("expected error for unset sample rate")
	}
}

func TestSquare(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(48000))
	s, err := g.Square(1000, 1, 96)
	if err != nil {
		t.Fatalf("Square() error = %v", err)
	}
	// 48 samples per period: first 24 high, next 24 low.
	if s[0] != 1 || s[23] != 1 {
		t.Fatalf("first half-period: s[0]=%v s[23]=%v, want 1", s[0], s[23])
	}
	if s[24] != -1 || s[47] != -1 {
		t.Fatalf("second half-period: s[24]=%v s[47]=%v, want -1", s[24], s[47])
	}
	// Full-scale square has unity RMS and peak.
	for i, v := range s {
		if math.Abs(v) != 1 {
			t.Fatalf("s[%d]=%v, want magnitude 1", i, v)
		}
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	g1 := NewGeneratorWithOptions(nil, WithSeed(42))
	g2 := NewGeneratorWithOptions(nil, WithSeed(42))

	n1, err := g1.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	n2, err := g2.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	for i := range n1 {
		if n1[i] != n2[i] {
			t.Fatalf("noise mismatch at %d: %v != %v", i, n1[i], n2[i])
		}
	}
}

func TestSetSeed(t *testing.T) {
	g := NewGenerator()
	g.SetSeed(99)
	if g.Seed() != 99 {
		t.Fatalf("Seed()=%d, want 99", g.Seed())
	}

	a, err := g.WhiteNoise(1, 8)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	g.SetSeed(100)
	b, err := g.WhiteNoise(1, 8)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected different seeds to produce different noise")
	}
}

func TestImpulse(t *testing.T) {
	g := NewGenerator()
	out, err := g.Impulse(0.75, 8, 3)
	if err != nil {
		t.Fatalf("Impulse() error = %v", err)
	}
	for i, v := range out {
		want := 0.0
		if i == 3 {
			want = 0.75
		}
		if v != want {
			t.Fatalf("out[%d]=%v, want %v", i, v, want)
		}
	}
}

func TestImpulseOutOfRange(t *testing.T) {
	g := NewGenerator()
	if _, err := g.Impulse(1, 4, 10); err == nil {
		t.Fatal("expected error for out-of-range position")
	}
}

func TestDC(t *testing.T) {
	g := NewGenerator()
	out, err := g.DC(0.5, 4)
	if err != nil {
		t.Fatalf("DC() error = %v", err)
	}
	for i, v := range out {
		if v != 0.5 {
			t.Fatalf("out[%d]=%v, want 0.5", i, v)
		}
	}
}

func TestNormalize(t *testing.T) {
	out, err := Normalize([]float64{-0.5, 1.0, -0.25}, 0.5)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if out[1] != 0.5 {
		t.Fatalf("peak = %v, want 0.5", out[1])
	}
}

func TestAddOffset(t *testing.T) {
	out := AddOffset([]float64{-1, 0, 1}, 0.25)
	want := []float64{-0.75, 0.25, 1.25}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out[%d]=%v, want %v", i, out[i], want[i])
		}
	}
}

func TestRemoveDC(t *testing.T) {
	out, err := RemoveDC([]float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("RemoveDC() error = %v", err)
	}
	sum := 0.0
	for _, v := range out {
		sum += v
	}
	if math.Abs(sum) > 1e-12 {
		t.Fatalf("sum=%v, want near 0", sum)
	}
}
