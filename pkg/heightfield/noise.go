// Package heightfield provides height sources for mesh.HeightField: seeded fractal
// OpenSimplex noise and grayscale height-map images.
package heightfield

import "github.com/ojrac/opensimplex-go"

// Noise configures deterministic fractal (fBm) OpenSimplex noise. The same settings always
// produce the same terrain.
type Noise struct {
	Seed        int64   `yaml:"seed"`
	Octaves     int     `yaml:"octaves"`
	Frequency   float64 `yaml:"frequency"`   // base lattice frequency
	Persistence float64 `yaml:"persistence"` // amplitude falloff per octave
	Lacunarity  float64 `yaml:"lacunarity"`  // frequency growth per octave
	Amplitude   float64 `yaml:"amplitude"`
}

// DefaultNoise returns four octaves of unit-amplitude noise.
func DefaultNoise() Noise {
	return Noise{
		Seed:        1,
		Octaves:     4,
		Frequency:   1,
		Persistence: 0.5,
		Lacunarity:  2,
		Amplitude:   1,
	}
}

// Field builds the octave generators for these settings. A Field is safe for
// concurrent use.
func (n Noise) Field() *Field {
	f := &Field{settings: n}
	for o := range max(n.Octaves, 1) {
		f.octaves = append(f.octaves, opensimplex.NewNormalized(n.Seed+int64(o)))
	}
	return f
}

// Height returns the noise value at (x, y). It builds a Field on every call;
// use Field when sampling many points.
func (n Noise) Height(x, y float64) float64 {
	return n.Field().Height(x, y)
}

// Field is fractal noise ready for sampling.
type Field struct {
	settings Noise
	octaves  []opensimplex.Noise
}

// Height returns the noise value at (x, y), in [-Amplitude, Amplitude].
func (f *Field) Height(x, y float64) float64 {
	var sum, total float64
	frequency := f.settings.Frequency
	amplitude := 1.0
	for _, src := range f.octaves {
		v := 2*src.Eval2(x*frequency, y*frequency) - 1
		sum += clampf(v, -1, 1) * amplitude
		total += amplitude
		frequency *= f.settings.Lacunarity
		amplitude *= f.settings.Persistence
	}
	if total == 0 {
		return 0
	}
	return sum / total * f.settings.Amplitude
}
