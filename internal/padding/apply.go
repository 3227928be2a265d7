package padding

import (
	"fmt"

	"github.com/born-ml/convscope/internal/matrix"
)

// Apply returns input surrounded by the given amounts of border, filled
// according to mode. The result has shape
// (H+Top+Bottom) x (W+Left+Right) and is never the input itself.
//
// Valid and Same fill the border with zeros.
func Apply(input *matrix.Matrix, a Amounts, mode Mode) *matrix.Matrix {
	if a.Top < 0 || a.Bottom < 0 || a.Left < 0 || a.Right < 0 {
		panic(fmt.Sprintf("padding: negative amounts %+v", a))
	}
	if a.IsZero() {
		return input.Clone()
	}

	h, w := input.Shape()
	out := matrix.New(h+a.Top+a.Bottom, w+a.Left+a.Right)
	out.Paste(input, a.Top, a.Left)

	switch mode {
	case Reflect:
		fillReflect(out, h, w, a)
	case Replicate:
		fillReplicate(out, input, a)
	}
	return out
}

// fillReflect fills the border of out, whose interior already holds the input.
// Rows are done first over the interior columns, then columns over the full
// height, so corners come out reflected along both axes.
func fillReflect(out *matrix.Matrix, h, w int, a Amounts) {
	rows, cols := out.Shape()
	for r := 0; r < rows; r++ {
		if r >= a.Top && r < a.Top+h {
			continue
		}
		src := a.Top + reflectIndex(r-a.Top, h)
		for c := a.Left; c < a.Left+w; c++ {
			out.Set(r, c, out.At(src, c))
		}
	}
	for c := 0; c < cols; c++ {
		if c >= a.Left && c < a.Left+w {
			continue
		}
		src := a.Left + reflectIndex(c-a.Left, w)
		for r := 0; r < rows; r++ {
			out.Set(r, c, out.At(r, src))
		}
	}
}

// fillReplicate copies the nearest edge pixel of the original input into
// every border cell.
func fillReplicate(out, input *matrix.Matrix, a Amounts) {
	h, w := input.Shape()
	rows, cols := out.Shape()
	for r := 0; r < rows; r++ {
		inside := r >= a.Top && r < a.Top+h
		sr := clampIndex(r-a.Top, h)
		for c := 0; c < cols; c++ {
			if inside && c >= a.Left && c < a.Left+w {
				continue
			}
			out.Set(r, c, input.At(sr, clampIndex(c-a.Left, w)))
		}
	}
}

// reflectIndex maps i onto [0, n) by mirroring about the first and last
// element without repeating them: for n=3, -1 -> 1 and 3 -> 1.
// Offsets wider than n-1 keep folding with period 2(n-1).
func reflectIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * (n - 1)
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - i
	}
	return i
}

func clampIndex(i, n int) int {
	return min(max(i, 0), n-1)
}
