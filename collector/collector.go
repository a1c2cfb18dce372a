package collector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"monitor-agent/models"
)

// Options configures a Monitor.
type Options struct {
	// Interface is the NIC used for the reported IP and throughput.
	Interface string
	// Interval between the two readings of a runtime sample.
	// Zero means DefaultInterval.
	Interval time.Duration
}

// Monitor builds BaseDetail and RuntimeDetail records from a Hardware
// accessor. It keeps no state between calls.
type Monitor struct {
	hw      Hardware
	iface   string
	sampler *Sampler
	now     func() time.Time
}

func New(hw Hardware, opts Options) (*Monitor, error) {
	if hw == nil {
		return nil, errors.New("collector: nil hardware accessor")
	}
	if opts.Interface == "" {
		return nil, ErrInterfaceNameRequired
	}
	return &Monitor{
		hw:      hw,
		iface:   opts.Interface,
		sampler: NewSampler(hw, opts.Interface, opts.Interval),
		now:     time.Now,
	}, nil
}

// BaseDetail collects the static inventory. Either every field is filled or
// an error is returned.
func (m *Monitor) BaseDetail(ctx context.Context) (models.BaseDetail, error) {
	ifaces, err := m.hw.NetworkInterfaces(ctx)
	if err != nil {
		return models.BaseDetail{}, accessorErr("network interfaces", err)
	}
	nic, err := FindInterface(m.iface, ifaces)
	if err != nil {
		return models.BaseDetail{}, err
	}
	if len(nic.IPv4) == 0 {
		return models.BaseDetail{}, fmt.Errorf("%w: %s", ErrNoIPv4Address, nic.Name)
	}

	hostInfo, err := m.hw.Host(ctx)
	if err != nil {
		return models.BaseDetail{}, accessorErr("host", err)
	}
	proc, err := m.hw.Processor(ctx)
	if err != nil {
		return models.BaseDetail{}, accessorErr("processor", err)
	}
	memInfo, err := m.hw.Memory(ctx)
	if err != nil {
		return models.BaseDetail{}, accessorErr("memory", err)
	}
	filesystems, err := m.hw.Filesystems(ctx)
	if err != nil {
		return models.BaseDetail{}, accessorErr("filesystems", err)
	}

	var diskTotal uint64
	for _, fs := range filesystems {
		diskTotal += fs.Total
	}

	return models.BaseDetail{
		OSArch:    hostInfo.Arch,
		OSName:    hostInfo.Family,
		OSVersion: hostInfo.Version,
		OSBit:     hostInfo.Bitness,
		CPUName:   proc.Name,
		CPUCore:   proc.LogicalCores,
		Memory:    float64(memInfo.Total) / gib,
		Disk:      float64(diskTotal) / gib,
		IP:        nic.IPv4[0],
	}, nil
}

// RuntimeDetail takes one utilization reading. It blocks for the sampling
// interval; the timestamp is taken once sampling has finished.
func (m *Monitor) RuntimeDetail(ctx context.Context) (models.RuntimeDetail, error) {
	rates, err := m.sampler.Sample(ctx)
	if err != nil {
		return models.RuntimeDetail{}, err
	}

	memInfo, err := m.hw.Memory(ctx)
	if err != nil {
		return models.RuntimeDetail{}, accessorErr("memory", err)
	}
	filesystems, err := m.hw.Filesystems(ctx)
	if err != nil {
		return models.RuntimeDetail{}, accessorErr("filesystems", err)
	}

	var diskUsed uint64
	for _, fs := range filesystems {
		diskUsed += delta(fs.Free, fs.Total)
	}

	return models.RuntimeDetail{
		CPUUsage:        rates.CPUUsage,
		MemoryUsage:     float64(delta(memInfo.Available, memInfo.Total)) / gib,
		DiskUsage:       float64(diskUsed) / gib,
		NetworkUpload:   rates.Upload,
		NetworkDownload: rates.Download,
		DiskRead:        rates.DiskRead,
		DiskWrite:       rates.DiskWrite,
		Timestamp:       m.now().UnixMilli(),
	}, nil
}

// NetworkInterfaceNames lists every interface the host reports, in
// enumeration order. It never fails; an unreadable host yields an empty list.
func (m *Monitor) NetworkInterfaceNames(ctx context.Context) []string {
	return ListInterfaceNames(ctx, m.hw)
}
