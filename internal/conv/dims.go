package conv

import "github.com/born-ml/convscope/internal/padding"

// OutputDims returns the number of window positions along each axis of a
// paddedH x paddedW input:
//
//	out = floor((padded - kernel) / stride) + 1
//
// Each dimension is clamped to at least 1, which keeps a kernel larger than
// the padded input from producing an empty or negative shape.
func OutputDims(paddedH, paddedW, kernelH, kernelW, strideH, strideW int) (rows, cols int) {
	rows = max(floorDiv(paddedH-kernelH, strideH)+1, 1)
	cols = max(floorDiv(paddedW-kernelW, strideW)+1, 1)
	return rows, cols
}

// OutputSize returns the shape Convolve produces for an inputH x inputW image,
// a kernelH x kernelW kernel, the given stride on both axes and padding mode.
func OutputSize(inputH, inputW, kernelH, kernelW, stride int, mode padding.Mode) (rows, cols int) {
	a := padding.Resolve(inputH, inputW, kernelH, kernelW, stride, stride, mode)
	return OutputDims(inputH+a.Top+a.Bottom, inputW+a.Left+a.Right, kernelH, kernelW, stride, stride)
}

// floorDiv rounds toward negative infinity; b must be positive.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
