package kernel

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

var oddSizes = []int{1, 3, 5, 7, 9, 11, 13, 15}

func TestSynthesize_NaturalSizeIsCanonical(t *testing.T) {
	for _, p := range Presets() {
		t.Run(p.String(), func(t *testing.T) {
			k := Synthesize(p, p.NaturalSize())
			assert.True(t, k.Equal(Canonical(p)))
		})
	}
}

func TestSynthesize_Shape(t *testing.T) {
	for _, p := range Presets() {
		for _, n := range oddSizes {
			k := Synthesize(p, n)
			rows, cols := k.Shape()
			assert.Equal(t, n, rows, "%s size %d", p, n)
			assert.Equal(t, n, cols, "%s size %d", p, n)
		}
	}
}

func TestSynthesize_SumInvariants(t *testing.T) {
	for _, n := range oddSizes {
		t.Run(fmt.Sprintf("size%d", n), func(t *testing.T) {
			assert.InDelta(t, 1.0, Synthesize(BoxBlur, n).Sum(), eps, "box_blur")
			assert.InDelta(t, 1.0, Synthesize(Sharpen, n).Sum(), eps, "sharpen")
			assert.InDelta(t, 0.0, Synthesize(EdgeDetect, n).Sum(), eps, "edge_detect")
			assert.InDelta(t, 1.0, Synthesize(Gaussian, n).Sum(), eps, "gaussian")
			assert.InDelta(t, 1.0, Synthesize(Identity, n).Sum(), eps, "identity")
		})
	}
}

func TestSynthesize_InvalidSizePanics(t *testing.T) {
	for _, n := range []int{0, -1, 2, 4} {
		assert.Panics(t, func() { Synthesize(BoxBlur, n) }, "size %d", n)
	}
}

func TestSynthesize_UnknownPresetFallsBack(t *testing.T) {
	k := Synthesize(Preset(99), 5)
	assert.True(t, k.Equal(Canonical(Identity)))
	assert.Equal(t, "Preset(99)", Preset(99).String())
}

func TestIdentity(t *testing.T) {
	k := Synthesize(Identity, 5)
	assert.Equal(t, 1.0, k.At(2, 2))
	assert.Equal(t, 1.0, k.Sum())
	assert.Equal(t, 0.0, k.At(0, 0))
}

func TestBoxBlur(t *testing.T) {
	k := Synthesize(BoxBlur, 5)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			assert.Equal(t, 1.0/25, k.At(r, c))
		}
	}
}

func TestEdgeDetect(t *testing.T) {
	t.Run("size1", func(t *testing.T) {
		assert.Equal(t, [][]float64{{0}}, Synthesize(EdgeDetect, 1).ToRows())
	})

	t.Run("size5", func(t *testing.T) {
		k := Synthesize(EdgeDetect, 5)
		assert.Equal(t, 24.0, k.At(2, 2))

		// Ring weights are -1/d before rescaling, so distance-1 cells are
		// twice as heavy as distance-2 cells.
		assert.InDelta(t, 2.0, k.At(1, 1)/k.At(0, 0), eps)
		assert.InDelta(t, k.At(1, 2), k.At(2, 3), eps)

		neg := 0.0
		for r := 0; r < 5; r++ {
			for c := 0; c < 5; c++ {
				if r == 2 && c == 2 {
					continue
				}
				require.Less(t, k.At(r, c), 0.0)
				neg += k.At(r, c)
			}
		}
		assert.InDelta(t, -24.0, neg, eps)
	})
}

func TestSharpen(t *testing.T) {
	t.Run("size1", func(t *testing.T) {
		assert.Equal(t, [][]float64{{1}}, Synthesize(Sharpen, 1).ToRows())
	})

	t.Run("size7", func(t *testing.T) {
		k := Synthesize(Sharpen, 7)
		assert.Equal(t, -1.0, k.At(2, 3))
		assert.Equal(t, -0.5, k.At(1, 1))
		assert.Equal(t, 0.0, k.At(0, 0))
		assert.Equal(t, 0.0, k.At(3, 6))

		// 8 cells at d=1, 16 cells at d=2: ring sum = -8 - 8 = -16.
		assert.InDelta(t, 17.0, k.At(3, 3), eps)
	})
}

func TestGaussian(t *testing.T) {
	assert.Equal(t, [][]float64{{1}}, Synthesize(Gaussian, 1).ToRows())

	t.Run("table5", func(t *testing.T) {
		k := Synthesize(Gaussian, 5)
		assert.InDelta(t, 41.0/273, k.At(2, 2), eps)
		assert.InDelta(t, 1.0/273, k.At(0, 0), eps)
	})

	t.Run("table7", func(t *testing.T) {
		k := Synthesize(Gaussian, 7)
		assert.InDelta(t, 159.0/1003, k.At(3, 3), eps)
		assert.Equal(t, 0.0, k.At(0, 0))
	})

	t.Run("table9", func(t *testing.T) {
		k := Synthesize(Gaussian, 9)
		assert.InDelta(t, 70.0*70/65536, k.At(4, 4), eps)
	})

	t.Run("continuous", func(t *testing.T) {
		k := Synthesize(Gaussian, 11)
		center := k.At(5, 5)
		for r := 0; r < 11; r++ {
			for c := 0; c < 11; c++ {
				assert.LessOrEqual(t, k.At(r, c), center)
				assert.Greater(t, k.At(r, c), 0.0)
			}
		}
		assert.InDelta(t, k.At(0, 3), k.At(3, 0), eps)
		assert.InDelta(t, k.At(0, 3), k.At(10, 7), eps)
	})
}

func TestSobelFallback(t *testing.T) {
	x := Synthesize(SobelX, 5)
	y := Synthesize(SobelY, 5)
	for i := 0; i < 5; i++ {
		assert.Equal(t, []float64{-1, -1, 0, 1, 1}, x.Row(i))
	}
	assert.Equal(t, []float64{-1, -1, -1, -1, -1}, y.Row(0))
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, y.Row(2))
	assert.Equal(t, []float64{1, 1, 1, 1, 1}, y.Row(4))

	assert.Equal(t, [][]float64{{0}}, Synthesize(SobelX, 1).ToRows())
}

func TestEmbossFallback(t *testing.T) {
	k := Synthesize(Emboss, 5)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			switch {
			case r > c:
				assert.Equal(t, 1.0, k.At(r, c))
			case r < c:
				assert.Equal(t, -1.0, k.At(r, c))
			default:
				assert.Equal(t, 0.0, k.At(r, c))
			}
		}
	}
}

func TestParsePreset(t *testing.T) {
	for _, p := range Presets() {
		got, err := ParsePreset(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	got, err := ParsePreset("Box-Blur")
	require.NoError(t, err)
	assert.Equal(t, BoxBlur, got)

	_, err = ParsePreset("laplacian")
	assert.True(t, errors.Is(err, ErrUnknownPreset))
}

func TestCanonicalIsFreshCopy(t *testing.T) {
	a := Canonical(Sharpen)
	a.Set(1, 1, 0)
	assert.Equal(t, 5.0, Canonical(Sharpen).At(1, 1))
}
