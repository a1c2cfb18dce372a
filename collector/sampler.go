package collector

import (
	"context"
	"strings"
	"time"
)

// DefaultInterval is the wait between the two readings of a sample.
const DefaultInterval = 500 * time.Millisecond

const (
	kib = 1024.0
	mib = 1024.0 * 1024
	gib = 1024.0 * 1024 * 1024
)

// Rates is the outcome of one delta sample.
type Rates struct {
	Upload    float64 // KiB/s
	Download  float64 // KiB/s
	DiskRead  float64 // MiB/s
	DiskWrite float64 // MiB/s
	CPUUsage  float64
}

// Sampler turns monotonically increasing counters into per-second rates by
// reading them twice, interval apart.
type Sampler struct {
	hw       Hardware
	iface    string
	interval time.Duration

	// wait blocks for d; swapped out in tests.
	wait func(ctx context.Context, d time.Duration) error
}

func NewSampler(hw Hardware, iface string, interval time.Duration) *Sampler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Sampler{
		hw:       hw,
		iface:    iface,
		interval: interval,
		wait:     sleep,
	}
}

type byteSnapshot struct {
	sent, recv    uint64
	read, written uint64
}

// Sample blocks the calling goroutine for the sampling interval. Any failed
// read aborts the whole sample.
func (s *Sampler) Sample(ctx context.Context) (Rates, error) {
	before, err := s.readBytes(ctx)
	if err != nil {
		return Rates{}, err
	}
	ticks, err := s.hw.CPUTicks(ctx)
	if err != nil {
		return Rates{}, accessorErr("cpu ticks", err)
	}

	if err := s.wait(ctx, s.interval); err != nil {
		return Rates{}, err
	}

	after, err := s.readBytes(ctx)
	if err != nil {
		return Rates{}, err
	}
	current, err := s.hw.CPUTicks(ctx)
	if err != nil {
		return Rates{}, accessorErr("cpu ticks", err)
	}

	seconds := s.interval.Seconds()
	return Rates{
		Upload:    rate(before.sent, after.sent, seconds) / kib,
		Download:  rate(before.recv, after.recv, seconds) / kib,
		DiskRead:  rate(before.read, after.read, seconds) / mib,
		DiskWrite: rate(before.written, after.written, seconds) / mib,
		CPUUsage:  CPUUsage(ticks, current),
	}, nil
}

// readBytes resolves the interface afresh on every call so a NIC list that
// changed during the wait is picked up.
func (s *Sampler) readBytes(ctx context.Context) (byteSnapshot, error) {
	ifaces, err := s.hw.NetworkInterfaces(ctx)
	if err != nil {
		return byteSnapshot{}, accessorErr("network interfaces", err)
	}
	nic, err := FindInterface(s.iface, ifaces)
	if err != nil {
		return byteSnapshot{}, err
	}
	stores, err := s.hw.DiskStores(ctx)
	if err != nil {
		return byteSnapshot{}, accessorErr("disk stores", err)
	}
	read, written := sumDiskBytes(stores)
	return byteSnapshot{
		sent:    nic.BytesSent,
		recv:    nic.BytesRecv,
		read:    read,
		written: written,
	}, nil
}

// rate is bytes per second between two counter readings. A counter that
// went backwards (reset or wrap) yields 0.
func rate(before, after uint64, seconds float64) float64 {
	if seconds <= 0 {
		return 0
	}
	return float64(delta(before, after)) / seconds
}

// sumDiskBytes totals I/O over whole devices. Loop and ram devices are
// skipped, as is any partition whose parent device is also listed.
func sumDiskBytes(stores []DiskStore) (read, written uint64) {
	for _, st := range stores {
		if strings.HasPrefix(st.Name, "loop") || strings.HasPrefix(st.Name, "ram") {
			continue
		}
		if hasParent(st.Name, stores) {
			continue
		}
		read += st.ReadBytes
		written += st.WriteBytes
	}
	return read, written
}

func hasParent(name string, stores []DiskStore) bool {
	for _, other := range stores {
		if other.Name == "" || other.Name == name || !strings.HasPrefix(name, other.Name) {
			continue
		}
		if isPartitionSuffix(other.Name, strings.TrimPrefix(name, other.Name)) {
			return true
		}
	}
	return false
}

// isPartitionSuffix matches "1" after "sda" and "p1" after "nvme0n1".
func isPartitionSuffix(parent, suffix string) bool {
	last := parent[len(parent)-1]
	if last >= '0' && last <= '9' {
		if !strings.HasPrefix(suffix, "p") {
			return false
		}
		suffix = suffix[1:]
	}
	if suffix == "" {
		return false
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
