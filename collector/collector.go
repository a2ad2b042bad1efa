package collector

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/ftahirops/ledstat/model"
)

var (
	// ErrParse is returned when a counter file has an unexpected layout.
	ErrParse = errors.New("unexpected counter format")
	// ErrUnknownSource is returned by New for an unrecognized kind.
	ErrUnknownSource = errors.New("unknown metrics source")
)

// Source kinds accepted by New.
const (
	KindAuto     = "auto"
	KindProcfs   = "procfs"
	KindGopsutil = "gopsutil"
	KindStub     = "stub"
)

// Source returns the current cumulative counters of the host.
// Every call is a fresh read; a Source keeps no history.
type Source interface {
	Name() string
	// CPU returns one (busy, total) tick pair per logical core.
	CPU() (model.Sample, error)
	// Network returns one (received, sent) byte pair per matched interface.
	Network() (model.Sample, error)
	// Disk returns one (read, written) byte pair per matched disk.
	Disk() (model.Sample, error)
}

// Match selects which interfaces and disks contribute to the aggregate.
type Match struct {
	// InterfacePrefixes matches network interfaces by name prefix.
	InterfacePrefixes []string
	// Devices matches disks by "major:minor" (procfs only) or by name.
	Devices []string
}

// DefaultMatch covers wired and wireless interfaces and the first SCSI/SATA
// disk (8:0), plus the first disk on macOS.
func DefaultMatch() Match {
	return Match{
		InterfacePrefixes: []string{"en", "wl"},
		Devices:           []string{"8:0", "disk0"},
	}
}

func (m Match) device(majMin, name string) bool {
	for _, d := range m.Devices {
		if d == majMin || d == name {
			return true
		}
	}
	return false
}

// New returns the Source for kind. KindAuto picks procfs on Linux and
// gopsutil everywhere else.
func New(kind string, m Match) (Source, error) {
	switch kind {
	case KindAuto, "":
		if runtime.GOOS == "linux" {
			return NewProcfs("/proc", m), nil
		}
		return NewGopsutil(m), nil
	case KindProcfs:
		return NewProcfs("/proc", m), nil
	case KindGopsutil:
		return NewGopsutil(m), nil
	case KindStub:
		return Stub{}, nil
	default:
		return nil, fmt.Errorf("%q: %w", kind, ErrUnknownSource)
	}
}

// Stub is a Source for hosts without usable counters. Every subsystem
// reports a single idle unit.
type Stub struct{}

func (Stub) Name() string { return KindStub }

func (Stub) CPU() (model.Sample, error) { return model.Sample{{}}, nil }

func (Stub) Network() (model.Sample, error) { return model.Sample{{}}, nil }

func (Stub) Disk() (model.Sample, error) { return model.Sample{{}}, nil }
