package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Clamp returns a copy of m with every element limited to [lo, hi].
func (m *Matrix) Clamp(lo, hi float64) *Matrix {
	out := m.Clone()
	for i, v := range out.data {
		out.data[i] = math.Min(math.Max(v, lo), hi)
	}
	return out
}

// Rescale linearly maps the range [Min, Max] of m onto [lo, hi].
// A constant matrix maps to lo everywhere.
func (m *Matrix) Rescale(lo, hi float64) *Matrix {
	minV, maxV := m.Min(), m.Max()
	out := m.Clone()
	if maxV == minV {
		for i := range out.data {
			out.data[i] = lo
		}
		return out
	}
	floats.AddConst(-minV, out.data)
	floats.Scale((hi-lo)/(maxV-minV), out.data)
	floats.AddConst(lo, out.data)
	return out
}
