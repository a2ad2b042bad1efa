package model

// CounterPair is a pair of cumulative counters for one unit: (busy, total)
// ticks for a CPU core, (received, sent) bytes for an interface, or
// (read, written) bytes for a disk.
type CounterPair struct {
	A uint64
	B uint64
}

// Add returns the element-wise sum.
func (p CounterPair) Add(o CounterPair) CounterPair {
	return CounterPair{A: p.A + o.A, B: p.B + o.B}
}

// Sample holds one CounterPair per unit, in source order.
type Sample []CounterPair

// Sum folds every unit into a single pair.
func (s Sample) Sum() CounterPair {
	var total CounterPair
	for _, p := range s {
		total = total.Add(p)
	}
	return total
}

// CPUTimes holds CPU time counters from /proc/stat (in jiffies/ticks).
type CPUTimes struct {
	User      uint64
	Nice      uint64
	System    uint64
	Idle      uint64
	IOWait    uint64
	IRQ       uint64
	SoftIRQ   uint64
	Steal     uint64
	Guest     uint64
	GuestNice uint64
}

// Total returns total jiffies. Guest time is already accounted in user and
// nice, so it is not added again.
func (c CPUTimes) Total() uint64 {
	return c.User + c.Nice + c.System + c.Idle + c.IOWait +
		c.IRQ + c.SoftIRQ + c.Steal
}

// Busy returns non-idle jiffies.
func (c CPUTimes) Busy() uint64 {
	return c.Total() - c.Idle - c.IOWait
}

// Pair returns the (busy, total) counter pair for this core.
func (c CPUTimes) Pair() CounterPair {
	return CounterPair{A: c.Busy(), B: c.Total()}
}
