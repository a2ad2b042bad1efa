package engine

import (
	"math"

	"github.com/ftahirops/ledstat/model"
)

// Brightness converts a normalized metric to a single LED channel byte.
func Brightness(v float64) uint8 {
	return uint8(math.Floor(255 * Clamp01(v)))
}

// EncodeChannel spreads metrics over numLEDs positions. Each metric gets
// numLEDs/len(metrics) consecutive LEDs; the remainder at the end of the
// strip stays dark, and so does the whole channel when there are more
// metrics than LEDs.
func EncodeChannel(metrics []float64, numLEDs int) []uint8 {
	if numLEDs <= 0 {
		return nil
	}
	out := make([]uint8, numLEDs)
	if len(metrics) == 0 {
		return out
	}
	share := numLEDs / len(metrics)
	for i, m := range metrics {
		b := Brightness(m)
		for j := 0; j < share; j++ {
			out[i*share+j] = b
		}
	}
	return out
}

// Encode interleaves three channels into a frame of numLEDs colours.
// A nil channel is dark everywhere.
func Encode(red, green, blue []float64, numLEDs int) model.Frame {
	if numLEDs <= 0 {
		return model.Frame{}
	}
	r := EncodeChannel(red, numLEDs)
	g := EncodeChannel(green, numLEDs)
	b := EncodeChannel(blue, numLEDs)

	f := make(model.Frame, numLEDs)
	for i := range f {
		f[i] = model.RGB{R: r[i], G: g[i], B: b[i]}
	}
	return f
}
