package collector

import "context"

// Hardware is the host introspection surface the collector reads from.
// Implementations need not be safe for concurrent use; callers sharing one
// across goroutines must serialize access themselves.
type Hardware interface {
	Host(ctx context.Context) (HostInfo, error)
	Processor(ctx context.Context) (Processor, error)
	CPUTicks(ctx context.Context) (Ticks, error)
	Memory(ctx context.Context) (Memory, error)
	Filesystems(ctx context.Context) ([]Filesystem, error)
	DiskStores(ctx context.Context) ([]DiskStore, error)
	NetworkInterfaces(ctx context.Context) ([]NetworkInterface, error)
}

// HostInfo describes the operating system.
type HostInfo struct {
	Arch    string
	Family  string
	Version string
	Bitness int
}

// Processor identifies the CPU package.
type Processor struct {
	Name         string
	LogicalCores int
}

// Memory holds physical memory totals in bytes.
type Memory struct {
	Total     uint64
	Available uint64
}

// Filesystem is one mounted root with its capacity in bytes.
type Filesystem struct {
	Mountpoint string
	Total      uint64
	Free       uint64
}

// DiskStore carries cumulative I/O byte counters of one block device.
type DiskStore struct {
	Name       string
	ReadBytes  uint64
	WriteBytes uint64
}

// NetworkInterface is a NIC with its addresses and cumulative byte counters.
type NetworkInterface struct {
	Name      string
	IPv4      []string
	BytesSent uint64
	BytesRecv uint64
}
