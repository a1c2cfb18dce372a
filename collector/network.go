package collector

import (
	"context"
	"fmt"
	"time"

	"monitor-agent/models"

	probing "github.com/prometheus-community/pro-bing"
)

// FindInterface returns the first interface named exactly name, in
// enumeration order.
func FindInterface(name string, ifaces []NetworkInterface) (NetworkInterface, error) {
	if name == "" {
		return NetworkInterface{}, ErrInterfaceNameRequired
	}
	for _, iface := range ifaces {
		if iface.Name == name {
			return iface, nil
		}
	}
	return NetworkInterface{}, fmt.Errorf("%w: %s", ErrInterfaceNotFound, name)
}

// ListInterfaceNames returns the name of every interface hw reports, in
// enumeration order. An accessor failure yields an empty list.
func ListInterfaceNames(ctx context.Context, hw Hardware) []string {
	ifaces, err := hw.NetworkInterfaces(ctx)
	if err != nil {
		return []string{}
	}
	names := make([]string, 0, len(ifaces))
	for _, iface := range ifaces {
		names = append(names, iface.Name)
	}
	return names
}

// ProbeLatency pings host a few times over ICMP and reports the average
// round trip. Unprivileged (UDP) pings are used unless privileged is set.
func ProbeLatency(ctx context.Context, host string, privileged bool) models.LatencyInfo {
	info := models.LatencyInfo{Target: host}

	pinger, err := probing.NewPinger(host)
	if err != nil {
		return info
	}
	pinger.Count = 3
	pinger.Interval = 200 * time.Millisecond
	pinger.Timeout = 2 * time.Second
	pinger.SetPrivileged(privileged)

	if err := pinger.RunWithContext(ctx); err != nil {
		return info
	}

	stats := pinger.Statistics()
	info.PacketLoss = stats.PacketLoss
	if stats.PacketsRecv > 0 {
		info.Latency = float64(stats.AvgRtt) / float64(time.Millisecond)
		info.Success = true
	}
	return info
}
