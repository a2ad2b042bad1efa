package collector

import (
	"fmt"
	"strings"

	"github.com/ftahirops/ledstat/model"
	"github.com/ftahirops/ledstat/util"
)

// Disk reads /proc/diskstats and returns (read, written) bytes for every
// matched device.
func (p *Procfs) Disk() (model.Sample, error) {
	path := p.path("diskstats")
	lines, err := util.ReadFileLines(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var s model.Sample
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 10 {
			return nil, fmt.Errorf("parse %s: %d columns: %w", path, len(fields), ErrParse)
		}
		if !p.match.device(fields[0]+":"+fields[1], fields[2]) {
			continue
		}
		pair, err := parseDiskstatFields(fields)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		s = append(s, pair)
	}
	return s, nil
}

// parseDiskstatFields converts sectors read (column 5) and sectors written
// (column 9) to bytes.
// Format: major minor name reads_completed reads_merged sectors_read read_time
// writes_completed writes_merged sectors_written ...
func parseDiskstatFields(fields []string) (model.CounterPair, error) {
	read, err := util.ParseUint64(fields[5])
	if err != nil {
		return model.CounterPair{}, fmt.Errorf("%s sectors_read: %v: %w", fields[2], err, ErrParse)
	}
	written, err := util.ParseUint64(fields[9])
	if err != nil {
		return model.CounterPair{}, fmt.Errorf("%s sectors_written: %v: %w", fields[2], err, ErrParse)
	}
	return model.CounterPair{A: read * SectorSize, B: written * SectorSize}, nil
}
