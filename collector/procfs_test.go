package collector

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ftahirops/ledstat/model"
)

const procStat = `cpu  400 20 200 3000 100 10 10 0 0 0
cpu0 100 10 50 800 20 5 5 0 7 0
cpu1 300 10 150 2200 80 5 5 0 0 0
intr 12345 0 0
ctxt 999
btime 1700000000
`

const procNetDev = `Inter-|   Receive                                                |  Transmit
 face |bytes    packets errs drop fifo frame compressed multicast|bytes    packets errs drop fifo colls carrier compressed
    lo: 5000      50    0    0    0     0          0         0     5000      50    0    0    0     0       0          0
enp3s0: 1000      10    0    0    0     0          0         0     2000      20    0    0    0     0       0          0
wlp2s0:  300       3    0    0    0     0          0         0      400       4    0    0    0     0       0          0
docker0: 7777      7    0    0    0     0          0         0     8888       8    0    0    0     0       0          0
`

const procDiskstats = `   8       0 sda 100 0 2000 50 200 0 4000 80 0 100 130 0 0 0 0
   8       1 sda1 90 0 1800 40 190 0 3800 70 0 90 110 0 0 0 0
 259       0 nvme0n1 10 0 30 5 20 0 60 8 0 10 13 0 0 0 0
`

func writeProc(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestProcfsCPU(t *testing.T) {
	root := writeProc(t, map[string]string{"stat": procStat})
	got, err := NewProcfs(root, DefaultMatch()).CPU()
	if err != nil {
		t.Fatalf("CPU: %v", err)
	}
	// cpu0: total = 100+10+50+800+20+5+5+0 = 990, busy = 990-800-20 = 170
	// cpu1: total = 300+10+150+2200+80+5+5+0 = 2750, busy = 2750-2200-80 = 470
	want := model.Sample{{A: 170, B: 990}, {A: 470, B: 2750}}
	if len(got) != len(want) {
		t.Fatalf("got %d units, want %d (aggregate row must be skipped)", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("unit %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestProcfsCPUShortRow(t *testing.T) {
	// Pre-2.6 kernels stop after idle.
	root := writeProc(t, map[string]string{"stat": "cpu  1 2 3 4\ncpu0 1 2 3 4\n"})
	got, err := NewProcfs(root, DefaultMatch()).CPU()
	if err != nil {
		t.Fatalf("CPU: %v", err)
	}
	if len(got) != 1 || got[0] != (model.CounterPair{A: 6, B: 10}) {
		t.Errorf("got %+v, want [{6 10}]", got)
	}
}

func TestProcfsCPUErrors(t *testing.T) {
	tests := []struct {
		name    string
		stat    string
		isParse bool
	}{
		{"non-numeric column", "cpu0 1 2 x 4 5\n", true},
		{"too few columns", "cpu0 1 2 3\n", true},
		{"no per-cpu rows", "cpu  1 2 3 4 5\nintr 1\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := writeProc(t, map[string]string{"stat": tt.stat})
			_, err := NewProcfs(root, DefaultMatch()).CPU()
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.isParse && !errors.Is(err, ErrParse) {
				t.Errorf("err = %v, want ErrParse", err)
			}
		})
	}
}

func TestProcfsMissingFiles(t *testing.T) {
	p := NewProcfs(t.TempDir(), DefaultMatch())
	if _, err := p.CPU(); err == nil {
		t.Error("CPU: expected error for missing stat")
	}
	if _, err := p.Network(); err == nil {
		t.Error("Network: expected error for missing net/dev")
	}
	if _, err := p.Disk(); err == nil {
		t.Error("Disk: expected error for missing diskstats")
	}
}

func TestProcfsNetwork(t *testing.T) {
	root := writeProc(t, map[string]string{"net/dev": procNetDev})
	got, err := NewProcfs(root, DefaultMatch()).Network()
	if err != nil {
		t.Fatalf("Network: %v", err)
	}
	want := model.Sample{{A: 1000, B: 2000}, {A: 300, B: 400}}
	if len(got) != len(want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("iface %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestProcfsNetworkCustomPrefixes(t *testing.T) {
	root := writeProc(t, map[string]string{"net/dev": procNetDev})
	got, err := NewProcfs(root, Match{InterfacePrefixes: []string{"docker"}}).Network()
	if err != nil {
		t.Fatalf("Network: %v", err)
	}
	if len(got) != 1 || got[0] != (model.CounterPair{A: 7777, B: 8888}) {
		t.Errorf("got %+v", got)
	}

	none, err := NewProcfs(root, Match{}).Network()
	if err != nil {
		t.Fatalf("Network: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("no prefixes should match no interfaces, got %+v", none)
	}
}

func TestProcfsNetworkMalformed(t *testing.T) {
	root := writeProc(t, map[string]string{"net/dev": "enp3s0: 1 2 3\n"})
	_, err := NewProcfs(root, DefaultMatch()).Network()
	if !errors.Is(err, ErrParse) {
		t.Errorf("err = %v, want ErrParse", err)
	}
}

func TestProcfsDisk(t *testing.T) {
	root := writeProc(t, map[string]string{"diskstats": procDiskstats})

	got, err := NewProcfs(root, DefaultMatch()).Disk()
	if err != nil {
		t.Fatalf("Disk: %v", err)
	}
	// sda only (8:0): 2000 and 4000 sectors of 512 bytes; the partition is skipped.
	want := model.CounterPair{A: 2000 * 512, B: 4000 * 512}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("got %+v, want [%+v]", got, want)
	}

	byName, err := NewProcfs(root, Match{Devices: []string{"nvme0n1", "sda"}}).Disk()
	if err != nil {
		t.Fatalf("Disk: %v", err)
	}
	if len(byName) != 2 || byName[1] != (model.CounterPair{A: 30 * 512, B: 60 * 512}) {
		t.Errorf("byName = %+v", byName)
	}
}

func TestProcfsDiskMalformed(t *testing.T) {
	root := writeProc(t, map[string]string{"diskstats": "8 0 sda 1 2 x 4 5 6 7\n"})
	_, err := NewProcfs(root, DefaultMatch()).Disk()
	if !errors.Is(err, ErrParse) {
		t.Errorf("err = %v, want ErrParse", err)
	}
}
