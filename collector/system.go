package collector

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/netip"
	"runtime"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	gopsnet "github.com/shirou/gopsutil/v3/net"
)

// HostHardware reads the local machine through gopsutil.
type HostHardware struct{}

func NewHostHardware() *HostHardware {
	return &HostHardware{}
}

func (h *HostHardware) Host(ctx context.Context) (HostInfo, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return HostInfo{}, err
	}

	family := info.Platform
	if family == "" {
		family = info.OS
	}
	version := info.PlatformVersion
	if version == "" {
		version = info.KernelVersion
	}

	return HostInfo{
		Arch:    runtime.GOARCH,
		Family:  family,
		Version: version,
		Bitness: bitness(info.KernelArch),
	}, nil
}

func (h *HostHardware) Processor(ctx context.Context) (Processor, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return Processor{}, err
	}
	if len(infos) == 0 {
		return Processor{}, errors.New("no cpu reported")
	}
	cores, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return Processor{}, err
	}
	return Processor{
		Name:         strings.TrimSpace(infos[0].ModelName),
		LogicalCores: cores,
	}, nil
}

// CPUTicks reports aggregate CPU time in milliseconds per category.
func (h *HostHardware) CPUTicks(ctx context.Context) (Ticks, error) {
	times, err := cpu.TimesWithContext(ctx, false)
	if err != nil {
		return Ticks{}, err
	}
	if len(times) == 0 {
		return Ticks{}, errors.New("no cpu times reported")
	}
	t := times[0]
	return Ticks{
		User:    millis(t.User),
		Nice:    millis(t.Nice),
		System:  millis(t.System),
		Idle:    millis(t.Idle),
		Iowait:  millis(t.Iowait),
		Irq:     millis(t.Irq),
		Softirq: millis(t.Softirq),
		Steal:   millis(t.Steal),
	}, nil
}

func (h *HostHardware) Memory(ctx context.Context) (Memory, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return Memory{}, err
	}
	return Memory{Total: vm.Total, Available: vm.Available}, nil
}

// Filesystems returns one entry per mounted device. Mounts whose usage
// cannot be read (stale network shares, permission) are left out.
func (h *HostHardware) Filesystems(ctx context.Context) ([]Filesystem, error) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(parts))
	var result []Filesystem
	for _, p := range parts {
		if seen[p.Device] {
			continue
		}
		usage, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil {
			continue
		}
		seen[p.Device] = true
		result = append(result, Filesystem{
			Mountpoint: p.Mountpoint,
			Total:      usage.Total,
			Free:       usage.Free,
		})
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("no readable filesystem among %d partitions", len(parts))
	}
	return result, nil
}

func (h *HostHardware) DiskStores(ctx context.Context) ([]DiskStore, error) {
	counters, err := disk.IOCountersWithContext(ctx)
	if err != nil {
		return nil, err
	}
	stores := make([]DiskStore, 0, len(counters))
	for name, c := range counters {
		stores = append(stores, DiskStore{
			Name:       name,
			ReadBytes:  c.ReadBytes,
			WriteBytes: c.WriteBytes,
		})
	}
	return stores, nil
}

// NetworkInterfaces joins the interface list with per-NIC counters. The
// order is the order the OS enumerates interfaces in.
func (h *HostHardware) NetworkInterfaces(ctx context.Context) ([]NetworkInterface, error) {
	ifaces, err := gopsnet.InterfacesWithContext(ctx)
	if err != nil {
		return nil, err
	}
	counters, err := gopsnet.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]gopsnet.IOCountersStat, len(counters))
	for _, c := range counters {
		byName[c.Name] = c
	}

	result := make([]NetworkInterface, 0, len(ifaces))
	for _, iface := range ifaces {
		nic := NetworkInterface{Name: iface.Name}
		for _, addr := range iface.Addrs {
			if ip, ok := parseIPv4(addr.Addr); ok {
				nic.IPv4 = append(nic.IPv4, ip)
			}
		}
		if c, ok := byName[iface.Name]; ok {
			nic.BytesSent = c.BytesSent
			nic.BytesRecv = c.BytesRecv
		}
		result = append(result, nic)
	}
	return result, nil
}

// parseIPv4 accepts "192.168.1.1/24" or a bare address.
func parseIPv4(s string) (string, bool) {
	if prefix, err := netip.ParsePrefix(s); err == nil {
		if prefix.Addr().Is4() {
			return prefix.Addr().String(), true
		}
		return "", false
	}
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is4() {
		return "", false
	}
	return addr.String(), true
}

func bitness(kernelArch string) int {
	switch {
	case kernelArch == "":
		return strconv.IntSize
	case strings.Contains(kernelArch, "64"), kernelArch == "s390x":
		return 64
	default:
		return 32
	}
}

func millis(seconds float64) uint64 {
	if seconds <= 0 {
		return 0
	}
	return uint64(math.Round(seconds * 1000))
}
