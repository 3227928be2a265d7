// Package main provides the convscope CLI: it prints synthesized kernels and
// walks a convolution over a synthetic image, step by step.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"

	"github.com/born-ml/convscope/convolution"
)

const version = "v0.1.0-dev"

var (
	flagPreset  = flag.String("preset", "edge_detect", "Kernel preset: identity, box_blur, gaussian, sharpen, edge_detect, sobel_x, sobel_y, emboss.")
	flagSize    = flag.Int("size", 3, "Kernel size (odd, >= 1).")
	flagStride  = flag.Int("stride", 1, "Stride on both axes (>= 1).")
	flagPadding = flag.String("padding", "zero", "Padding mode: valid, zero, reflect, replicate, same.")
	flagHeight  = flag.Int("height", 8, "Height of the synthetic input image.")
	flagWidth   = flag.Int("width", 8, "Width of the synthetic input image.")
	flagPattern = flag.String("pattern", "ramp", "Synthetic input: ramp, checker or square.")
	flagTrace   = flag.Int("trace", 3, "Number of steps to print; -1 prints all.")
	flagWorkers = flag.Int("workers", 0, "Worker goroutines over output rows; 0 uses all CPUs, 1 runs sequentially.")
)

func usage() {
	fmt.Println("convscope - step-by-step 2D convolution")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Usage: convscope <command> [flags]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  presets    List kernel presets")
	fmt.Println("  kernel     Print a synthesized kernel (-preset, -size)")
	fmt.Println("  run        Convolve a synthetic image and print output and trace")
	fmt.Println("")
	fmt.Println("Flags:")
	flag.PrintDefaults()
}

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}
	cmd := os.Args[1]
	if err := flag.CommandLine.Parse(os.Args[2:]); err != nil {
		glog.Exitf("Failed to parse flags: %v", err)
	}
	defer glog.Flush()

	var err error
	switch cmd {
	case "version":
		fmt.Printf("convscope %s\n", version)
	case "presets":
		printPresets(os.Stdout)
	case "kernel":
		err = runKernel(os.Stdout, *flagPreset, *flagSize)
	case "run":
		err = runConvolution(os.Stdout, options{
			Preset:  *flagPreset,
			Size:    *flagSize,
			Stride:  *flagStride,
			Padding: *flagPadding,
			Height:  *flagHeight,
			Width:   *flagWidth,
			Pattern: *flagPattern,
			Trace:   *flagTrace,
			Workers: *flagWorkers,
		})
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		glog.Exitf("%s: %v", cmd, err)
	}
}

func printPresets(w io.Writer) {
	for _, p := range convolution.Presets() {
		fmt.Fprintf(w, "%-12s natural size %d\n", p, p.NaturalSize())
	}
}
