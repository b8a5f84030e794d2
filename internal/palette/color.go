package palette

import (
	"fmt"
	"math"
	"math/rand"
)

// Color is an RGB triple. Channels are always held in [0,255]; every
// constructor and deriving operation clamps before storing.
type Color struct {
	R, G, B int
}

func New(r, g, b int) Color {
	return Color{R: clamp(r), G: clamp(g), B: clamp(b)}
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Jitter returns a copy of c with each channel independently perturbed by a
// uniform amount up to ±percent of the full channel range. A percent of 0
// returns a color equal to c.
func (c Color) Jitter(rng *rand.Rand, percent float64) Color {
	if percent == 0 {
		return New(c.R, c.G, c.B)
	}
	amp := percent / 100 * 255
	return New(
		c.R+jitterDelta(rng, amp),
		c.G+jitterDelta(rng, amp),
		c.B+jitterDelta(rng, amp),
	)
}

func jitterDelta(rng *rand.Rand, amp float64) int {
	return int(math.Round((rng.Float64()*2 - 1) * amp))
}

// JitterChannel perturbs a single channel value, clamped to the valid range.
func JitterChannel(rng *rand.Rand, v int, percent float64) int {
	if percent == 0 {
		return clamp(v)
	}
	return clamp(v + jitterDelta(rng, percent/100*255))
}

// Blend pulls c toward base by the given opacity weight:
// (c + base*opacity) / (1 + opacity) per channel.
func (c Color) Blend(base Color, opacity float64) Color {
	d := 1 + opacity
	return New(
		int(math.Round((float64(c.R)+float64(base.R)*opacity)/d)),
		int(math.Round((float64(c.G)+float64(base.G)*opacity)/d)),
		int(math.Round((float64(c.B)+float64(base.B)*opacity)/d)),
	)
}
