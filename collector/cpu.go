package collector

import (
	"fmt"
	"strings"

	"github.com/ftahirops/ledstat/model"
	"github.com/ftahirops/ledstat/util"
)

// CPU reads the per-core rows of /proc/stat, skipping the aggregate
// "cpu " row.
func (p *Procfs) CPU() (model.Sample, error) {
	path := p.path("stat")
	lines, err := util.ReadFileLines(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var perCPU []model.CPUTimes
	for _, line := range lines {
		if !strings.HasPrefix(line, "cpu") || strings.HasPrefix(line, "cpu ") {
			continue
		}
		ct, err := parseCPULine(line)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		perCPU = append(perCPU, ct)
	}
	if len(perCPU) == 0 {
		return nil, fmt.Errorf("parse %s: no per-cpu rows: %w", path, ErrParse)
	}
	return pairs(perCPU, model.CPUTimes.Pair), nil
}

// parseCPULine parses "cpuN user nice system idle [iowait irq softirq steal guest guest_nice]".
// Kernels before 2.6 stop after idle; missing columns read as zero.
func parseCPULine(line string) (model.CPUTimes, error) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return model.CPUTimes{}, fmt.Errorf("%q: %w", fields[0], ErrParse)
	}
	nums, err := util.ParseFields(fields[1:])
	if err != nil {
		return model.CPUTimes{}, fmt.Errorf("%s: %v: %w", fields[0], err, ErrParse)
	}
	for len(nums) < 10 {
		nums = append(nums, 0)
	}
	return model.CPUTimes{
		User:      nums[0],
		Nice:      nums[1],
		System:    nums[2],
		Idle:      nums[3],
		IOWait:    nums[4],
		IRQ:       nums[5],
		SoftIRQ:   nums[6],
		Steal:     nums[7],
		Guest:     nums[8],
		GuestNice: nums[9],
	}, nil
}
