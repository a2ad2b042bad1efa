package ui

import (
	"errors"
	"fmt"
	"io"

	"github.com/ftahirops/ledstat/model"
)

// ErrMalformedReport is returned by Preview for a buffer that is not a
// report id followed by whole RGB triplets.
var ErrMalformedReport = errors.New("malformed report")

// Preview is a stand-in for the device: every report written to it is
// printed as one line of colour swatches.
type Preview struct {
	w     io.Writer
	width int
}

// NewPreview returns a Preview printing to w.
func NewPreview(w io.Writer) *Preview {
	return &Preview{w: w, width: 3}
}

// Write decodes report and prints it. It returns len(report) on success so
// the scheduler treats it like a device that took the whole report.
func (p *Preview) Write(report []byte) (int, error) {
	f, err := DecodeReport(report)
	if err != nil {
		return 0, err
	}
	if _, err := fmt.Fprintln(p.w, Strip(f, p.width)); err != nil {
		return 0, err
	}
	return len(report), nil
}

// DecodeReport is the inverse of engine.BuildReport.
func DecodeReport(report []byte) (model.Frame, error) {
	if len(report) == 0 || report[0] != model.ReportID {
		return nil, fmt.Errorf("missing report id: %w", ErrMalformedReport)
	}
	body := report[1:]
	if len(body)%3 != 0 {
		return nil, fmt.Errorf("%d payload bytes: %w", len(body), ErrMalformedReport)
	}
	f := make(model.Frame, len(body)/3)
	for i := range f {
		f[i] = model.RGB{R: body[3*i], G: body[3*i+1], B: body[3*i+2]}
	}
	return f, nil
}
