package collector

import (
	"fmt"
	"strings"

	"github.com/ftahirops/ledstat/model"
	"github.com/ftahirops/ledstat/util"
)

// Network reads /proc/net/dev and returns (received, sent) bytes for every
// interface whose name matches one of the configured prefixes.
func (p *Procfs) Network() (model.Sample, error) {
	path := p.path("net/dev")
	lines, err := util.ReadFileLines(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var s model.Sample
	for _, line := range lines {
		if strings.Contains(line, "|") || strings.TrimSpace(line) == "" {
			continue
		}
		name, pair, err := parseNetDevLine(line)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if !util.HasAnyPrefix(name, p.match.InterfacePrefixes) {
			continue
		}
		s = append(s, pair)
	}
	return s, nil
}

// parseNetDevLine splits "  eth0: rx_bytes rx_packets ... tx_bytes ..." into
// the interface name and its byte counters (columns 0 and 8).
func parseNetDevLine(line string) (string, model.CounterPair, error) {
	name, rest, ok := strings.Cut(line, ":")
	if !ok {
		return "", model.CounterPair{}, fmt.Errorf("missing ':' in %q: %w", line, ErrParse)
	}
	name = strings.TrimSpace(name)
	fields := strings.Fields(rest)
	if len(fields) < 9 {
		return "", model.CounterPair{}, fmt.Errorf("%s: %d columns: %w", name, len(fields), ErrParse)
	}
	rx, err := util.ParseUint64(fields[0])
	if err != nil {
		return "", model.CounterPair{}, fmt.Errorf("%s rx_bytes: %v: %w", name, err, ErrParse)
	}
	tx, err := util.ParseUint64(fields[8])
	if err != nil {
		return "", model.CounterPair{}, fmt.Errorf("%s tx_bytes: %v: %w", name, err, ErrParse)
	}
	return name, model.CounterPair{A: rx, B: tx}, nil
}
