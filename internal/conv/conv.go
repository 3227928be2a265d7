// Package conv implements a single-channel 2D convolution that records every
// window it visits, for step-by-step visualisation.
package conv

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/born-ml/convscope/internal/matrix"
	"github.com/born-ml/convscope/internal/padding"
	"github.com/born-ml/convscope/internal/parallel"
)

// Step records one window position of a convolution.
//
// Row and Col locate the window's top-left corner in the coordinates of the
// unpadded input; they are negative (or past the far edge) when the window
// covers padding. The window is always the full kernel size.
type Step struct {
	Row, Col       int
	Patch          *matrix.Matrix // Input values under the kernel.
	Kernel         *matrix.Matrix
	Products       *matrix.Matrix // Patch * Kernel, element-wise.
	Sum            float64
	OutRow, OutCol int
}

// Result is the outcome of one Convolve call. Nothing in it is shared with
// the arguments or with other results.
type Result struct {
	Output  *matrix.Matrix
	Steps   []Step // Row-major by (OutRow, OutCol); nil when tracing is off.
	OutRows int
	OutCols int
	Padding padding.Amounts
	Mode    padding.Mode
	Stride  int
}

// Config controls how Convolve runs.
type Config struct {
	Parallel parallel.Config
	Trace    bool // Record a Step for every window.
}

// DefaultConfig traces every window and spreads output rows across CPUs.
func DefaultConfig() Config {
	return Config{
		Parallel: parallel.DefaultConfig(),
		Trace:    true,
	}
}

// Convolve slides kernel over input with the given stride on both axes,
// after padding input according to mode. It uses DefaultConfig.
//
// Algorithm:
//  1. Resolve padding amounts from the input and kernel shapes.
//  2. Pad the input.
//  3. out = floor((padded - kernel) / stride) + 1 per axis, at least 1.
//  4. For each output cell in row-major order, multiply the window by the
//     kernel element-wise and sum. Windows that would leave the padded input
//     (possible only after clamping in step 3) are skipped: their output stays
//     0 and no Step is recorded.
//
// Panics if input or kernel is nil or stride < 1.
func Convolve(input, kernel *matrix.Matrix, stride int, mode padding.Mode) *Result {
	return ConvolveWithConfig(input, kernel, stride, mode, DefaultConfig())
}

// ConvolveWithConfig is Convolve with explicit execution settings.
// Output and Steps do not depend on cfg.Parallel.
func ConvolveWithConfig(input, kernel *matrix.Matrix, stride int, mode padding.Mode, cfg Config) *Result {
	if input == nil || kernel == nil {
		panic("conv: input and kernel must not be nil")
	}
	if stride < 1 {
		panic(fmt.Sprintf("conv: stride must be >= 1, got %d", stride))
	}

	H, W := input.Shape()
	KH, KW := kernel.Shape()

	amounts := padding.Resolve(H, W, KH, KW, stride, stride, mode)
	padded := padding.Apply(input, amounts, mode)
	PH, PW := padded.Shape()
	HOut, WOut := OutputDims(PH, PW, KH, KW, stride, stride)

	output := matrix.New(HOut, WOut)

	// Each output row owns its slots, so rows can run in any order and the
	// trace still comes out row-major.
	var slots []Step
	var filled []bool
	if cfg.Trace {
		slots = make([]Step, HOut*WOut)
		filled = make([]bool, HOut*WOut)
	}

	parallel.For(HOut, func(i int) {
		r0 := i * stride
		if r0+KH > PH {
			return
		}
		for j := 0; j < WOut; j++ {
			c0 := j * stride
			if c0+KW > PW {
				break
			}
			patch := padded.Window(r0, c0, KH, KW)
			products := patch.MulElem(kernel)
			sum := products.Sum()
			output.Set(i, j, sum)

			if cfg.Trace {
				idx := i*WOut + j
				slots[idx] = Step{
					Row:      r0 - amounts.Top,
					Col:      c0 - amounts.Left,
					Patch:    patch,
					Kernel:   kernel.Clone(),
					Products: products,
					Sum:      sum,
					OutRow:   i,
					OutCol:   j,
				}
				filled[idx] = true
			}
		}
	}, cfg.Parallel)

	var steps []Step
	if cfg.Trace {
		steps = make([]Step, 0, len(slots))
		for idx, ok := range filled {
			if ok {
				steps = append(steps, slots[idx])
			}
		}
	}

	glog.V(2).Infof("conv: input=%dx%d kernel=%dx%d stride=%d mode=%s padding=%+v output=%dx%d steps=%d",
		H, W, KH, KW, stride, mode, amounts, HOut, WOut, len(steps))

	return &Result{
		Output:  output,
		Steps:   steps,
		OutRows: HOut,
		OutCols: WOut,
		Padding: amounts,
		Mode:    mode,
		Stride:  stride,
	}
}
