package random

import "math"

// field holds a shuffled permutation table, the classic Ken Perlin approach
// to turning integer lattice coordinates into a repeatable pseudo-random
// gradient direction. Generalized from the single-purpose terrain sampler
// in the teacher's generation package into a reusable building block.
type field struct {
	permutation [256]int
}

func newField(seed int64) *field {
	f := &field{}
	for i := range f.permutation {
		f.permutation[i] = i
	}
	rng := New(seed)
	rng.Shuffle(len(f.permutation), func(i, j int) {
		f.permutation[i], f.permutation[j] = f.permutation[j], f.permutation[i]
	})
	return f
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// grad reproduces the 2D gradient selection from the teacher's
// PerlinNoise.grad: with h the low nibble of the hash, u is x for h < 4 and
// y otherwise, v is y for h < 12 and x otherwise, and bits 0 and 1 of h
// choose the signs of u and v in the sum.
func grad(hash int, x, y float64) float64 {
	h := hash & 15

	u := y
	if h < 4 {
		u = x
	}

	v := x
	if h < 12 {
		v = y
	}

	result := u
	if h&1 != 0 {
		result = -u
	}

	if h&2 != 0 {
		result -= v
	} else {
		result += v
	}

	return result
}

// noise2D evaluates single-octave Perlin noise at (x, y), returning a value
// in roughly [-1, 1].
func (f *field) noise2D(x, y float64) float64 {
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255
	xf := x - math.Floor(x)
	yf := y - math.Floor(y)

	u := fade(xf)
	v := fade(yf)

	perm := f.permutation
	aa := perm[(perm[xi]+yi)&255]
	ab := perm[(perm[xi]+yi+1)&255]
	ba := perm[(perm[(xi+1)&255]+yi)&255]
	bb := perm[(perm[(xi+1)&255]+yi+1)&255]

	return lerp(
		lerp(grad(aa, xf, yf), grad(ba, xf-1, yf), u),
		lerp(grad(ab, xf, yf-1), grad(bb, xf-1, yf-1), u),
		v,
	)
}

// Perlin generates an h-by-w grid (row-major, [y][x]) of fractal gradient
// noise normalized to [0, 1]. octaves sums that many layers of noise at
// doubling frequency and halving amplitude before normalizing, matching
// spec §4.A. The result is a pure function of (w, h, seed, scale, octaves):
// calling it twice with the same arguments yields bit-identical output.
func Perlin(w, h int, seed int64, scale float64, octaves int) [][]float32 {
	if octaves < 1 {
		octaves = 1
	}
	f := newField(seed)
	out := make([][]float32, h)
	for y := 0; y < h; y++ {
		row := make([]float32, w)
		for x := 0; x < w; x++ {
			row[x] = float32(sampleOctaves(f, float64(x), float64(y), scale, octaves))
		}
		out[y] = row
	}
	return out
}

func sampleOctaves(f *field, x, y, scale float64, octaves int) float64 {
	var sum, amplitude, frequency, maxValue float64
	amplitude = 1
	frequency = 1
	for i := 0; i < octaves; i++ {
		nx := x / scale * frequency
		ny := y / scale * frequency
		sum += f.noise2D(nx, ny) * amplitude
		maxValue += amplitude
		amplitude *= 0.5
		frequency *= 2
	}
	raw := sum / maxValue // in [-1, 1]
	return (raw + 1) / 2  // normalize to [0, 1]
}

// DoublePerlin samples two independent Perlin fields at distinct scales and
// returns their pointwise mean, renormalized to [0, 1]. Useful for blending
// a coarse elevation field with a finer moisture field, as the teacher's
// biome selection does with two differently-scaled noise samples.
func DoublePerlin(w, h int, seed int64, scale1, scale2 float64) [][]float32 {
	a := Perlin(w, h, seed, scale1, 1)
	b := Perlin(w, h, seed+1, scale2, 1)
	out := make([][]float32, h)
	for y := 0; y < h; y++ {
		row := make([]float32, w)
		for x := 0; x < w; x++ {
			row[x] = (a[y][x] + b[y][x]) / 2
		}
		out[y] = row
	}
	return out
}
