package util

// Delta returns curr - prev, or 0 if curr < prev (counter wrap or reset).
func Delta(prev, curr uint64) uint64 {
	if curr < prev {
		return 0
	}
	return curr - prev
}

// Ratio computes the busy fraction between two (busy, total) readings.
// A zero elapsed total yields 0 rather than NaN.
func Ratio(prevBusy, currBusy, prevTotal, currTotal uint64) float64 {
	dtotal := Delta(prevTotal, currTotal)
	if dtotal == 0 {
		return 0
	}
	dbusy := Delta(prevBusy, currBusy)
	if dbusy > dtotal {
		return 1
	}
	return float64(dbusy) / float64(dtotal)
}
