package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/golang/glog"

	"github.com/born-ml/convscope/convolution"
)

// options holds the parameters of the run command.
type options struct {
	Preset  string
	Size    int
	Stride  int
	Padding string
	Height  int
	Width   int
	Pattern string
	Trace   int
	Workers int
}

func (o options) validate() error {
	switch {
	case o.Size < 1 || o.Size%2 == 0:
		return fmt.Errorf("kernel size must be odd and >= 1, got %d", o.Size)
	case o.Stride < 1:
		return fmt.Errorf("stride must be >= 1, got %d", o.Stride)
	case o.Height < 1 || o.Width < 1:
		return fmt.Errorf("image must be at least 1x1, got %dx%d", o.Height, o.Width)
	}
	return nil
}

func parseKernel(preset string, size int) (*convolution.Matrix, error) {
	if size < 1 || size%2 == 0 {
		return nil, fmt.Errorf("kernel size must be odd and >= 1, got %d", size)
	}
	p, err := convolution.ParsePreset(preset)
	if err != nil {
		return nil, err
	}
	return convolution.SynthesizeKernel(p, size), nil
}

func runKernel(w io.Writer, preset string, size int) error {
	k, err := parseKernel(preset, size)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s %dx%d (sum %.4g)\n", preset, size, size, k.Sum())
	writeMatrix(w, k, "%8.4f")
	return nil
}

func runConvolution(w io.Writer, o options) error {
	if err := o.validate(); err != nil {
		return err
	}
	k, err := parseKernel(o.Preset, o.Size)
	if err != nil {
		return err
	}
	mode, err := convolution.ParseMode(o.Padding)
	if err != nil {
		return err
	}
	img, err := syntheticImage(o.Pattern, o.Height, o.Width)
	if err != nil {
		return err
	}

	cfg := convolution.DefaultConfig()
	if o.Workers > 0 {
		cfg.Parallel.NumWorkers = o.Workers
		cfg.Parallel.Enabled = o.Workers > 1
	}
	cfg.Trace = o.Trace != 0

	glog.Infof("Convolving %dx%d %s image with %s %dx%d, stride %d, %s padding",
		o.Height, o.Width, o.Pattern, o.Preset, o.Size, o.Size, o.Stride, mode)
	res := convolution.ConvolveWithConfig(img, k, o.Stride, mode, cfg)

	fmt.Fprintf(w, "padding: top=%d bottom=%d left=%d right=%d\n",
		res.Padding.Top, res.Padding.Bottom, res.Padding.Left, res.Padding.Right)
	fmt.Fprintf(w, "output: %dx%d, %d steps\n", res.OutRows, res.OutCols, len(res.Steps))
	writeMatrix(w, res.Output, "%8.2f")

	fmt.Fprintln(w, "display (0-255):")
	writeMatrix(w, res.Output.Rescale(0, 255), "%4.0f")

	n := len(res.Steps)
	if o.Trace >= 0 {
		n = min(n, o.Trace)
	}
	for _, s := range res.Steps[:n] {
		fmt.Fprintf(w, "step out=(%d,%d) window=(%d,%d) sum=%.4f\n", s.OutRow, s.OutCol, s.Row, s.Col, s.Sum)
		writeMatrix(w, s.Products, "%8.3f")
	}
	return nil
}

// syntheticImage builds a small grayscale test image in [0, 255].
func syntheticImage(pattern string, h, w int) (*convolution.Matrix, error) {
	m := convolution.NewMatrix(h, w)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			var v float64
			switch strings.ToLower(pattern) {
			case "ramp":
				v = 255 * float64(r*w+c) / float64(max(h*w-1, 1))
			case "checker":
				if (r+c)%2 == 0 {
					v = 255
				}
			case "square":
				if r >= h/4 && r < h-h/4 && c >= w/4 && c < w-w/4 {
					v = 255
				}
			default:
				return nil, fmt.Errorf("unknown pattern %q", pattern)
			}
			m.Set(r, c, v)
		}
	}
	return m, nil
}

func writeMatrix(w io.Writer, m *convolution.Matrix, format string) {
	rows, cols := m.Shape()
	for r := 0; r < rows; r++ {
		var b strings.Builder
		for c := 0; c < cols; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, format, m.At(r, c))
		}
		fmt.Fprintln(w, b.String())
	}
}
