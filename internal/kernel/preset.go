// Package kernel synthesizes square convolution kernels from named presets at any odd size.
package kernel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/born-ml/convscope/internal/matrix"
)

// ErrUnknownPreset is returned by ParsePreset for unrecognised names.
var ErrUnknownPreset = errors.New("unknown kernel preset")

// Preset identifies a family of kernels.
type Preset int

// Available presets.
const (
	Identity Preset = iota
	BoxBlur
	Gaussian
	Sharpen
	EdgeDetect
	SobelX
	SobelY
	Emboss

	numPresets
)

var presetNames = [numPresets]string{
	Identity:   "identity",
	BoxBlur:    "box_blur",
	Gaussian:   "gaussian",
	Sharpen:    "sharpen",
	EdgeDetect: "edge_detect",
	SobelX:     "sobel_x",
	SobelY:     "sobel_y",
	Emboss:     "emboss",
}

// canonical holds each preset at its natural size.
var canonical = [numPresets][][]float64{
	Identity: {{1}},
	BoxBlur: {
		{1.0 / 9, 1.0 / 9, 1.0 / 9},
		{1.0 / 9, 1.0 / 9, 1.0 / 9},
		{1.0 / 9, 1.0 / 9, 1.0 / 9},
	},
	Gaussian: {
		{1.0 / 16, 2.0 / 16, 1.0 / 16},
		{2.0 / 16, 4.0 / 16, 2.0 / 16},
		{1.0 / 16, 2.0 / 16, 1.0 / 16},
	},
	Sharpen: {
		{0, -1, 0},
		{-1, 5, -1},
		{0, -1, 0},
	},
	EdgeDetect: {
		{-1, -1, -1},
		{-1, 8, -1},
		{-1, -1, -1},
	},
	SobelX: {
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	},
	SobelY: {
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	},
	Emboss: {
		{-2, -1, 0},
		{-1, 1, 1},
		{0, 1, 2},
	},
}

// String returns the snake_case preset name.
func (p Preset) String() string {
	if !p.valid() {
		return fmt.Sprintf("Preset(%d)", int(p))
	}
	return presetNames[p]
}

func (p Preset) valid() bool {
	return p >= 0 && p < numPresets
}

// NaturalSize is the side length of the preset's canonical kernel.
func (p Preset) NaturalSize() int {
	if !p.valid() {
		return 1
	}
	return len(canonical[p])
}

// Presets returns all presets in declaration order.
func Presets() []Preset {
	out := make([]Preset, numPresets)
	for i := range out {
		out[i] = Preset(i)
	}
	return out
}

// ParsePreset converts a preset name such as "box_blur" (case-insensitive,
// '-' accepted for '_') to a Preset.
func ParsePreset(name string) (Preset, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for i, n := range presetNames {
		if n == key {
			return Preset(i), nil
		}
	}
	return Identity, fmt.Errorf("parse preset %q: %w", name, ErrUnknownPreset)
}

// Canonical returns a fresh copy of the preset's kernel at its natural size.
// Out-of-range presets yield the identity kernel.
func Canonical(p Preset) *matrix.Matrix {
	if !p.valid() {
		p = Identity
	}
	return matrix.MustFromRows(canonical[p])
}
