package engine

import "github.com/ftahirops/ledstat/model"

// Ticker produces one HID report per call. *Pipeline is the real
// implementation; tests and the preview UI can substitute their own.
type Ticker interface {
	Tick() ([]byte, model.Reading, error)
	Off() []byte
}

var _ Ticker = (*Pipeline)(nil)
