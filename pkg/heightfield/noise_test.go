package heightfield

import (
	"math"
	"testing"
)

func TestNoiseDeterministic(t *testing.T) {
	a := DefaultNoise()
	b := DefaultNoise()
	for i := range 100 {
		x, y := float64(i)*0.37, float64(i)*-0.91
		if a.Height(x, y) != b.Height(x, y) {
			t.Fatalf("Height(%v, %v) differs between identical generators", x, y)
		}
	}
}

func TestNoiseRange(t *testing.T) {
	n := DefaultNoise()
	n.Amplitude = 2.5
	for i := range 50 {
		for j := range 50 {
			h := n.Height(float64(i)*0.13-3, float64(j)*0.29-7)
			if math.IsNaN(h) || math.Abs(h) > n.Amplitude {
				t.Fatalf("Height() = %v, want within ±%v", h, n.Amplitude)
			}
		}
	}
}

func TestNoiseSeedChangesTerrain(t *testing.T) {
	a := DefaultNoise()
	b := DefaultNoise()
	b.Seed = 99

	differ := false
	for i := range 20 {
		x := float64(i)*0.41 + 0.5
		if a.Height(x, x) != b.Height(x, x) {
			differ = true
			break
		}
	}
	if !differ {
		t.Error("different seeds produced identical heights")
	}
}

func TestNoiseContinuousAcrossLattice(t *testing.T) {
	n := Noise{Seed: 7, Octaves: 1, Frequency: 1, Persistence: 0.5, Lacunarity: 2, Amplitude: 1}
	const eps = 1e-9
	for _, x := range []float64{1, 2, -3} {
		below := n.Height(x-eps, 0.5)
		above := n.Height(x+eps, 0.5)
		if math.Abs(below-above) > 1e-6 {
			t.Errorf("noise jumps at x=%v: %v vs %v", x, below, above)
		}
	}
}

func TestNoiseZeroOctaves(t *testing.T) {
	n := DefaultNoise()
	n.Octaves = 0
	if h := n.Height(0.3, 0.7); math.IsNaN(h) {
		t.Error("Height() with zero octaves returned NaN")
	}
}

func TestFieldMatchesHeight(t *testing.T) {
	n := DefaultNoise()
	n.Seed = 11
	f := n.Field()
	for i := range 30 {
		x, y := float64(i)*0.23-2, float64(i)*0.17+1
		if got, want := f.Height(x, y), n.Height(x, y); got != want {
			t.Errorf("Field().Height(%v, %v) = %v, want %v", x, y, got, want)
		}
	}
}

func TestFieldOctaves(t *testing.T) {
	n := DefaultNoise()
	if got := len(n.Field().octaves); got != 4 {
		t.Errorf("Field() built %d octaves, want 4", got)
	}
	n.Octaves = 0
	if got := len(n.Field().octaves); got != 1 {
		t.Errorf("Field() with zero octaves built %d octaves, want 1", got)
	}
}

func TestFieldNotConstant(t *testing.T) {
	f := DefaultNoise().Field()
	first := f.Height(0.1, 0.2)
	for i := range 20 {
		if f.Height(float64(i)*0.37+0.1, float64(i)*0.53+0.2) != first {
			return
		}
	}
	t.Error("noise field is constant")
}
