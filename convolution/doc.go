// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package convolution exposes the convscope engine: a single-channel 2D
// convolution that records every window it visits, so a visualiser can
// replay the computation one step at a time.
//
// # Overview
//
// The package offers four pure functions:
//   - ResolvePadding computes per-side padding for a padding mode
//   - ApplyPadding pads a matrix (zero, reflect, replicate)
//   - SynthesizeKernel builds a preset kernel at any odd size
//   - Convolve runs the convolution and returns output plus trace
//
// # Basic Usage
//
//	import "github.com/born-ml/convscope/convolution"
//
//	func main() {
//	    img, err := convolution.MatrixFromRows(pixels) // grayscale [][]float64
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    k := convolution.SynthesizeKernel(convolution.Gaussian, 5)
//	    res := convolution.Convolve(img, k, 1, convolution.Reflect)
//
//	    for _, step := range res.Steps {
//	        // highlight step.Row, step.Col (unpadded coordinates, may be negative)
//	        // show step.Patch, step.Products and step.Sum
//	    }
//	}
//
// # Padding Modes
//
//   - Valid: no padding, output shrinks by kernel-1
//   - Zero, Reflect, Replicate: floor(k/2) per side, output keeps the input size at stride 1
//   - Same: output is ceil(input/stride), extra pixel goes bottom/right
//
// Reflect mirrors without repeating the edge: [a b c] padded by one is [b a b c b].
//
// # Results
//
// Every call returns a fresh Result. Steps are ordered row-major by output
// cell, and each Step owns its matrices. Nothing is cached between calls, so
// concurrent calls are safe.
package convolution
