// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package convolution

import (
	"github.com/born-ml/convscope/internal/conv"
	"github.com/born-ml/convscope/internal/kernel"
	"github.com/born-ml/convscope/internal/matrix"
	"github.com/born-ml/convscope/internal/padding"
	"github.com/born-ml/convscope/internal/parallel"
)

// Matrix is a rectangular row-major float64 matrix.
type Matrix = matrix.Matrix

// PaddingMode selects how the input border is extended.
type PaddingMode = padding.Mode

// PaddingAmounts holds per-side padding in pixels.
type PaddingAmounts = padding.Amounts

// Preset names a kernel family.
type Preset = kernel.Preset

// Step records one window position of a convolution.
type Step = conv.Step

// Result holds the output matrix and the ordered step trace.
type Result = conv.Result

// Config controls tracing and parallelism of ConvolveWithConfig.
type Config = conv.Config

// ParallelConfig controls the worker fan-out over output rows.
type ParallelConfig = parallel.Config

// Padding modes.
const (
	Valid     = padding.Valid
	Zero      = padding.Zero
	Reflect   = padding.Reflect
	Replicate = padding.Replicate
	Same      = padding.Same
)

// Kernel presets.
const (
	Identity   = kernel.Identity
	BoxBlur    = kernel.BoxBlur
	Gaussian   = kernel.Gaussian
	Sharpen    = kernel.Sharpen
	EdgeDetect = kernel.EdgeDetect
	SobelX     = kernel.SobelX
	SobelY     = kernel.SobelY
	Emboss     = kernel.Emboss
)

// Errors returned by constructors and parsers.
var (
	ErrEmptyMatrix   = matrix.ErrEmpty
	ErrJaggedMatrix  = matrix.ErrJagged
	ErrUnknownMode   = padding.ErrUnknownMode
	ErrUnknownPreset = kernel.ErrUnknownPreset
)

// NewMatrix creates a zero-filled rows x cols matrix. Panics on non-positive dimensions.
func NewMatrix(rows, cols int) *Matrix {
	return matrix.New(rows, cols)
}

// MatrixFromRows copies rows into a new Matrix, rejecting empty or jagged input.
func MatrixFromRows(rows [][]float64) (*Matrix, error) {
	return matrix.FromRows(rows)
}

// ParseMode converts a name such as "reflect" to a PaddingMode.
func ParseMode(name string) (PaddingMode, error) {
	return padding.ParseMode(name)
}

// ParsePreset converts a name such as "edge_detect" to a Preset.
func ParsePreset(name string) (Preset, error) {
	return kernel.ParsePreset(name)
}

// Presets lists every kernel preset.
func Presets() []Preset {
	return kernel.Presets()
}

// ResolvePadding computes per-side padding for the given shapes, strides and mode.
func ResolvePadding(inputH, inputW, kernelH, kernelW, strideH, strideW int, mode PaddingMode) PaddingAmounts {
	return padding.Resolve(inputH, inputW, kernelH, kernelW, strideH, strideW, mode)
}

// ApplyPadding returns m padded by amounts, filled according to mode.
func ApplyPadding(m *Matrix, amounts PaddingAmounts, mode PaddingMode) *Matrix {
	return padding.Apply(m, amounts, mode)
}

// SynthesizeKernel returns preset at the given odd size.
func SynthesizeKernel(preset Preset, size int) *Matrix {
	return kernel.Synthesize(preset, size)
}

// OutputSize returns the output shape Convolve would produce.
func OutputSize(inputH, inputW, kernelH, kernelW, stride int, mode PaddingMode) (rows, cols int) {
	return conv.OutputSize(inputH, inputW, kernelH, kernelW, stride, mode)
}

// Convolve slides k over m and returns the output and step trace.
func Convolve(m, k *Matrix, stride int, mode PaddingMode) *Result {
	return conv.Convolve(m, k, stride, mode)
}

// DefaultConfig returns the settings Convolve uses.
func DefaultConfig() Config {
	return conv.DefaultConfig()
}

// ConvolveWithConfig is Convolve with explicit tracing and parallelism settings.
func ConvolveWithConfig(m, k *Matrix, stride int, mode PaddingMode, cfg Config) *Result {
	return conv.ConvolveWithConfig(m, k, stride, mode, cfg)
}
