package model

// NumLEDs is the strip length the firmware expects.
const NumLEDs = 12

// Default USB ids of the strip's microcontroller.
const (
	DefaultVendorID  uint16 = 0x16c0
	DefaultProductID uint16 = 0x0486
)

// ReportID is the HID output report id prefixed to every frame.
const ReportID byte = 0

// RGB is one LED's colour.
type RGB struct {
	R, G, B uint8
}

// Frame is the colour of every LED on the strip, first LED first.
type Frame []RGB

// Bytes flattens the frame into R,G,B triplets.
func (f Frame) Bytes() []byte {
	out := make([]byte, 0, len(f)*3)
	for _, c := range f {
		out = append(out, c.R, c.G, c.B)
	}
	return out
}

// Subsystem names a counter family.
type Subsystem string

const (
	SubsystemCPU     Subsystem = "cpu"
	SubsystemNetwork Subsystem = "net"
	SubsystemDisk    Subsystem = "disk"
)

// Channel is one colour component of the strip.
type Channel int

const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
)

func (c Channel) String() string {
	switch c {
	case ChannelRed:
		return "red"
	case ChannelGreen:
		return "green"
	case ChannelBlue:
		return "blue"
	default:
		return "unknown"
	}
}

// Reading is everything one tick derived from the counters, kept for
// diagnostics and the preview UI.
type Reading struct {
	CPU []float64 // busy fraction per unit

	NetDelta  CounterPair // bytes received, sent during the tick
	DiskDelta CounterPair // bytes read, written during the tick

	Net  [2]float64 // normalized received, sent
	Disk [2]float64 // normalized read, written

	Frame Frame
}

// Metrics returns the normalized metric sequence for a subsystem.
func (r Reading) Metrics(s Subsystem) []float64 {
	switch s {
	case SubsystemCPU:
		return r.CPU
	case SubsystemNetwork:
		return r.Net[:]
	case SubsystemDisk:
		return r.Disk[:]
	default:
		return nil
	}
}
