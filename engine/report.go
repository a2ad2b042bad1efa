package engine

import "github.com/ftahirops/ledstat/model"

// BuildReport prefixes the frame with the HID report id. The result is
// always 1 + 3*len(f) bytes.
func BuildReport(f model.Frame) []byte {
	out := make([]byte, 0, 1+len(f)*3)
	out = append(out, model.ReportID)
	return append(out, f.Bytes()...)
}

// DarkReport is the report that switches every LED off.
func DarkReport(numLEDs int) []byte {
	if numLEDs < 0 {
		numLEDs = 0
	}
	return BuildReport(make(model.Frame, numLEDs))
}
