package kernel

import (
	"fmt"
	"math"

	"github.com/born-ml/convscope/internal/matrix"
)

// synthFunc builds a preset's kernel at a size other than its natural one.
type synthFunc func(size int) *matrix.Matrix

var synthesizers = [numPresets]synthFunc{
	Identity:   identity,
	BoxBlur:    boxBlur,
	Gaussian:   gaussian,
	Sharpen:    sharpen,
	EdgeDetect: edgeDetect,
	SobelX:     sobelX,
	SobelY:     sobelY,
	Emboss:     emboss,
}

// Synthesize returns a size x size kernel for preset p.
//
// At the preset's natural size the canonical kernel is returned. Other sizes
// use a per-preset generator that keeps the kernel's character:
//   - box_blur, gaussian and sharpen sum to 1
//   - edge_detect sums to 0
//   - sobel and emboss keep their direction
//
// size must be odd and >= 1; Synthesize panics otherwise.
// Out-of-range presets return the identity kernel.
func Synthesize(p Preset, size int) *matrix.Matrix {
	if size < 1 || size%2 == 0 {
		panic(fmt.Sprintf("kernel: size must be odd and >= 1, got %d", size))
	}
	if !p.valid() || size == p.NaturalSize() {
		return Canonical(p)
	}
	return synthesizers[p](size)
}

// fill builds a size x size matrix from f(distance-from-centre row, col).
func fill(size int, f func(dr, dc int) float64) *matrix.Matrix {
	m := matrix.New(size, size)
	c := size / 2
	for r := 0; r < size; r++ {
		for col := 0; col < size; col++ {
			m.Set(r, col, f(r-c, col-c))
		}
	}
	return m
}

func chebyshev(dr, dc int) int {
	return max(abs(dr), abs(dc))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func identity(size int) *matrix.Matrix {
	return fill(size, func(dr, dc int) float64 {
		if dr == 0 && dc == 0 {
			return 1
		}
		return 0
	})
}

func boxBlur(size int) *matrix.Matrix {
	v := 1 / float64(size*size)
	return fill(size, func(_, _ int) float64 { return v })
}

// edgeDetect is a Laplacian-style kernel that always sums to 0.
func edgeDetect(size int) *matrix.Matrix {
	center := float64(size*size - 1)
	if size <= 3 {
		return fill(size, func(dr, dc int) float64 {
			if dr == 0 && dc == 0 {
				return center
			}
			return -1
		})
	}

	m := fill(size, func(dr, dc int) float64 {
		if dr == 0 && dc == 0 {
			return center
		}
		return -1 / float64(chebyshev(dr, dc))
	})
	// Rescale the ring weights so they cancel the centre exactly.
	negSum := m.Sum() - center
	k := size / 2
	scaled := m.Scale(-center / negSum)
	scaled.Set(k, k, center)
	return scaled
}

// sharpen always sums to 1.
func sharpen(size int) *matrix.Matrix {
	if size <= 3 {
		center := float64(size * size)
		return fill(size, func(dr, dc int) float64 {
			if dr == 0 && dc == 0 {
				return center
			}
			return -1
		})
	}

	m := fill(size, func(dr, dc int) float64 {
		d := chebyshev(dr, dc)
		switch {
		case d == 0:
			return float64(2 * size)
		case d <= 2:
			return -1 / float64(d)
		default:
			return 0
		}
	})
	k := size / 2
	m.Set(k, k, m.At(k, k)+1-m.Sum())
	return m
}

// gaussianTables are integer approximations of a Gaussian at the sizes where
// they are commonly tabulated. They are normalised on use.
var gaussianTables = map[int][][]float64{
	5: {
		{1, 4, 7, 4, 1},
		{4, 16, 26, 16, 4},
		{7, 26, 41, 26, 7},
		{4, 16, 26, 16, 4},
		{1, 4, 7, 4, 1},
	},
	7: {
		{0, 0, 1, 2, 1, 0, 0},
		{0, 3, 13, 22, 13, 3, 0},
		{1, 13, 59, 97, 59, 13, 1},
		{2, 22, 97, 159, 97, 22, 2},
		{1, 13, 59, 97, 59, 13, 1},
		{0, 3, 13, 22, 13, 3, 0},
		{0, 0, 1, 2, 1, 0, 0},
	},
	9: binomialTable([]float64{1, 8, 28, 56, 70, 56, 28, 8, 1}),
}

func binomialTable(row []float64) [][]float64 {
	out := make([][]float64, len(row))
	for i, a := range row {
		out[i] = make([]float64, len(row))
		for j, b := range row {
			out[i][j] = a * b
		}
	}
	return out
}

func gaussian(size int) *matrix.Matrix {
	if size == 1 {
		return matrix.MustFromRows([][]float64{{1}})
	}
	if table, ok := gaussianTables[size]; ok {
		return normalize(matrix.MustFromRows(table))
	}

	sigma := float64(size) / 6
	twoSigmaSq := 2 * sigma * sigma
	return normalize(fill(size, func(dr, dc int) float64 {
		d2 := float64(dr*dr + dc*dc)
		return math.Exp(-d2 / twoSigmaSq)
	}))
}

func normalize(m *matrix.Matrix) *matrix.Matrix {
	return m.Scale(1 / m.Sum())
}

func sobelX(size int) *matrix.Matrix {
	return fill(size, func(_, dc int) float64 { return float64(sign(dc)) })
}

func sobelY(size int) *matrix.Matrix {
	return fill(size, func(dr, _ int) float64 { return float64(sign(dr)) })
}

// emboss is +1 below the main diagonal, -1 above it and 0 on it.
func emboss(size int) *matrix.Matrix {
	return fill(size, func(dr, dc int) float64 { return float64(sign(dr - dc)) })
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
