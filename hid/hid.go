// Package hid talks to the LED strip as a raw USB HID device through hidapi.
package hid

import (
	"errors"
	"fmt"

	gohid "github.com/sstallion/go-hid"
)

// ErrNotFound is returned when no device with the requested ids is attached.
var ErrNotFound = errors.New("device not found")

// Info describes an attached HID device.
type Info struct {
	Path         string
	VendorID     uint16
	ProductID    uint16
	Manufacturer string
	Product      string
	Serial       string
}

// Device is an open HID device. Writes block until the report is accepted.
type Device struct {
	dev     *gohid.Device
	Product string
}

// Open opens the first device matching vid:pid. The handle is exclusive to
// the caller until Close.
func Open(vid, pid uint16) (*Device, error) {
	if err := gohid.Init(); err != nil {
		return nil, fmt.Errorf("hid init: %w", err)
	}
	infos, err := enumerate(vid, pid)
	if err != nil {
		gohid.Exit()
		return nil, err
	}
	if len(infos) == 0 {
		gohid.Exit()
		return nil, fmt.Errorf("open %04x:%04x: %w", vid, pid, ErrNotFound)
	}

	dev, err := gohid.OpenFirst(vid, pid)
	if err != nil {
		gohid.Exit()
		return nil, fmt.Errorf("open %04x:%04x: %w", vid, pid, err)
	}
	product, err := dev.GetProductStr()
	if err != nil || product == "" {
		product = "NONAME"
	}
	return &Device{dev: dev, Product: product}, nil
}

// Write sends one output report. The first byte is the report id.
func (d *Device) Write(report []byte) (int, error) {
	return d.dev.Write(report)
}

// Close releases the device and the hidapi library.
func (d *Device) Close() error {
	err := d.dev.Close()
	if exitErr := gohid.Exit(); err == nil {
		err = exitErr
	}
	return err
}

// List returns every attached device matching vid:pid. Zero ids match any.
func List(vid, pid uint16) ([]Info, error) {
	if err := gohid.Init(); err != nil {
		return nil, fmt.Errorf("hid init: %w", err)
	}
	defer gohid.Exit()
	return enumerate(vid, pid)
}

func enumerate(vid, pid uint16) ([]Info, error) {
	var infos []Info
	err := gohid.Enumerate(vid, pid, func(d *gohid.DeviceInfo) error {
		infos = append(infos, Info{
			Path:         d.Path,
			VendorID:     d.VendorID,
			ProductID:    d.ProductID,
			Manufacturer: d.MfrStr,
			Product:      d.ProductStr,
			Serial:       d.SerialNbr,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("enumerate %04x:%04x: %w", vid, pid, err)
	}
	return infos, nil
}
