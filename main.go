package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"monitor-agent/api"
	"monitor-agent/collector"
	"monitor-agent/config"
	"monitor-agent/models"

	"github.com/spf13/pflag"
)

// Build info
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cfg := config.Load()

	listInterfaces := pflag.Bool("interfaces", false, "print network interface names and exit")
	once := pflag.Bool("once", false, "print one base and runtime detail as JSON and exit")
	pflag.StringVar(&cfg.NetworkInterface, "interface", cfg.NetworkInterface, "network interface to report")
	pflag.DurationVar(&cfg.SampleInterval, "interval", cfg.SampleInterval, "wait between the two readings of a sample")
	pflag.Parse()

	hw := collector.NewHostHardware()
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if *listInterfaces {
		for _, name := range collector.ListInterfaceNames(ctx, hw) {
			fmt.Println(name)
		}
		return
	}

	monitor, err := collector.New(hw, collector.Options{
		Interface: cfg.NetworkInterface,
		Interval:  cfg.SampleInterval,
	})
	if err != nil {
		log.Fatalf("NETWORK_INTERFACE invalid: %v (available: %v)", err, collector.ListInterfaceNames(ctx, hw))
	}

	if *once {
		if err := printOnce(ctx, monitor); err != nil {
			log.Fatal(err)
		}
		return
	}

	if cfg.ServerAddress == "" {
		log.Fatal("SERVER_ADDRESS required")
	}
	if cfg.Token == "" {
		log.Fatal("TOKEN required")
	}

	log.Printf("Monitor agent %s (%s) built on %s", version, commit, date)
	log.Printf("Server: %s", cfg.ServerAddress)
	log.Printf("Interface: %s, interval: %v", cfg.NetworkInterface, cfg.SendInterval)

	sender := api.NewSender(cfg.ServerAddress, cfg.Token)

	base, err := monitor.BaseDetail(ctx)
	if err != nil {
		log.Fatalf("Base detail failed: %v", err)
	}
	if err := sender.SendBaseDetail(ctx, base); err != nil {
		log.Printf("Send base detail failed: %v", err)
	}

	runCollector(ctx, cfg, monitor, sender)
	log.Println("Shutting down...")
}

func printOnce(ctx context.Context, monitor *collector.Monitor) error {
	base, err := monitor.BaseDetail(ctx)
	if err != nil {
		return err
	}
	runtimeDetail, err := monitor.RuntimeDetail(ctx)
	if err != nil {
		return err
	}
	out := json.NewEncoder(os.Stdout)
	out.SetIndent("", "  ")
	return out.Encode(struct {
		Base    models.BaseDetail    `json:"base"`
		Runtime models.RuntimeDetail `json:"runtime"`
	}{base, runtimeDetail})
}

// runCollector reports on every tick until ctx is cancelled.
func runCollector(ctx context.Context, cfg *config.Config, monitor *collector.Monitor, sender *api.Sender) {
	ticker := time.NewTicker(cfg.SendInterval)
	defer ticker.Stop()

	sendRuntime(ctx, cfg, monitor, sender)
	for {
		select {
		case <-ticker.C:
			sendRuntime(ctx, cfg, monitor, sender)
		case <-ctx.Done():
			return
		}
	}
}

// sendRuntime takes one reading and posts it. Failures are logged and the
// tick is skipped.
func sendRuntime(ctx context.Context, cfg *config.Config, monitor *collector.Monitor, sender *api.Sender) {
	detail, err := monitor.RuntimeDetail(ctx)
	if err != nil {
		log.Printf("Collection failed: %v", err)
		return
	}

	report := models.Report{RuntimeDetail: detail}
	if cfg.PingEnabled {
		if host := serverHost(cfg.ServerAddress); host != "" {
			latency := collector.ProbeLatency(ctx, host, cfg.PingPrivileged)
			report.Latency = &latency
		}
	}
	if cfg.DockerEnabled && collector.DockerAvailable() {
		containers, err := collector.CollectContainers(ctx)
		if err != nil {
			log.Printf("Container listing failed: %v", err)
		}
		report.Containers = containers
	}

	if err := sender.SendRuntimeDetail(ctx, report); err != nil {
		log.Printf("Send failed: %v", err)
	}
}

func serverHost(address string) string {
	u, err := url.Parse(address)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
