// Package padding resolves and applies the border padding used before a 2D convolution.
package padding

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned by ParseMode for names that are not a Mode.
var ErrUnknownMode = errors.New("unknown padding mode")

// Mode selects how many border pixels are added and how they are filled.
type Mode int

const (
	// Valid adds no padding.
	Valid Mode = iota
	// Zero pads floor(k/2) per side with 0.
	Zero
	// Reflect pads floor(k/2) per side, mirroring without repeating the edge.
	Reflect
	// Replicate pads floor(k/2) per side with the nearest edge pixel.
	Replicate
	// Same pads (possibly asymmetrically) so the output is ceil(input/stride).
	Same
)

var modeNames = [...]string{
	Valid:     "valid",
	Zero:      "zero",
	Reflect:   "reflect",
	Replicate: "replicate",
	Same:      "same",
}

// String returns the lower-case mode name.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Modes returns every padding mode in declaration order.
func Modes() []Mode {
	return []Mode{Valid, Zero, Reflect, Replicate, Same}
}

// ParseMode converts a case-insensitive mode name to a Mode.
func ParseMode(name string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range modeNames {
		if n == key {
			return Mode(i), nil
		}
	}
	return Valid, fmt.Errorf("parse mode %q: %w", name, ErrUnknownMode)
}

// Amounts holds the per-side padding, in pixels.
type Amounts struct {
	Top, Bottom, Left, Right int
}

// IsZero reports whether no padding is applied on any side.
func (a Amounts) IsZero() bool {
	return a == Amounts{}
}

// Resolve computes the padding for an inputH x inputW image convolved with a
// kernelH x kernelW kernel at the given strides.
//
// Inputs are assumed positive; Resolve does no validation.
func Resolve(inputH, inputW, kernelH, kernelW, strideH, strideW int, mode Mode) Amounts {
	switch mode {
	case Zero, Reflect, Replicate:
		return Amounts{
			Top:    kernelH / 2,
			Bottom: kernelH / 2,
			Left:   kernelW / 2,
			Right:  kernelW / 2,
		}
	case Same:
		top, bottom := samePad(inputH, kernelH, strideH)
		left, right := samePad(inputW, kernelW, strideW)
		return Amounts{Top: top, Bottom: bottom, Left: left, Right: right}
	default:
		return Amounts{}
	}
}

// samePad splits the total padding needed along one axis so that the output
// length is ceil(n/stride). The odd pixel goes to the trailing side.
func samePad(n, k, stride int) (lead, trail int) {
	out := (n + stride - 1) / stride
	total := max((out-1)*stride+k-n, 0)
	lead = total / 2
	return lead, total - lead
}
