package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultOptions() options {
	return options{
		Preset:  "box_blur",
		Size:    3,
		Stride:  1,
		Padding: "zero",
		Height:  4,
		Width:   4,
		Pattern: "checker",
		Trace:   2,
		Workers: 1,
	}
}

func TestRunConvolution(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runConvolution(&buf, defaultOptions()))

	out := buf.String()
	assert.Contains(t, out, "padding: top=1 bottom=1 left=1 right=1")
	assert.Contains(t, out, "output: 4x4, 16 steps")
	assert.Equal(t, 2, strings.Count(out, "step out="))
	assert.Contains(t, out, "step out=(0,0) window=(-1,-1)")
}

func TestRunConvolution_NoTrace(t *testing.T) {
	o := defaultOptions()
	o.Trace = 0
	o.Padding = "valid"

	var buf bytes.Buffer
	require.NoError(t, runConvolution(&buf, o))
	assert.Contains(t, buf.String(), "output: 2x2, 0 steps")
	assert.NotContains(t, buf.String(), "step out=")
}

func TestRunConvolution_AllSteps(t *testing.T) {
	o := defaultOptions()
	o.Trace = -1
	o.Stride = 2
	o.Padding = "same"

	var buf bytes.Buffer
	require.NoError(t, runConvolution(&buf, o))
	assert.Equal(t, 4, strings.Count(buf.String(), "step out="))
}

func TestRunConvolution_Errors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(o *options)
		want   string
	}{
		{"even size", func(o *options) { o.Size = 4 }, "odd"},
		{"stride", func(o *options) { o.Stride = 0 }, "stride"},
		{"image", func(o *options) { o.Height = 0 }, "image"},
		{"preset", func(o *options) { o.Preset = "blur" }, "unknown kernel preset"},
		{"padding", func(o *options) { o.Padding = "wrap" }, "unknown padding mode"},
		{"pattern", func(o *options) { o.Pattern = "noise" }, "unknown pattern"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			tt.modify(&o)
			err := runConvolution(&bytes.Buffer{}, o)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRunKernel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runKernel(&buf, "sharpen", 3))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "sharpen 3x3 (sum 1)", lines[0])
	assert.Contains(t, lines[2], "5.0000")

	assert.Error(t, runKernel(&buf, "sharpen", 2))
}

func TestPrintPresets(t *testing.T) {
	var buf bytes.Buffer
	printPresets(&buf)
	assert.Contains(t, buf.String(), "identity     natural size 1")
	assert.Contains(t, buf.String(), "emboss       natural size 3")
}

func TestSyntheticImage(t *testing.T) {
	m, err := syntheticImage("ramp", 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, m.At(0, 0))
	assert.Equal(t, 255.0, m.At(1, 2))

	m, err = syntheticImage("square", 4, 4)
	require.NoError(t, err)
	assert.Equal(t, 0.0, m.At(0, 0))
	assert.Equal(t, 255.0, m.At(1, 1))
}
