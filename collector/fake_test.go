package collector

import (
	"context"
	"time"
)

// fakeHardware replays scripted readings. Sequences advance one step per
// call and repeat their last element once exhausted.
type fakeHardware struct {
	host  HostInfo
	proc  Processor
	mem   Memory
	fs    []Filesystem
	nics  [][]NetworkInterface
	disks [][]DiskStore
	ticks []Ticks

	errs map[string]error

	nicCalls, diskCalls, tickCalls int
}

func step[T any](seq []T, i int) T {
	var zero T
	if len(seq) == 0 {
		return zero
	}
	if i >= len(seq) {
		i = len(seq) - 1
	}
	return seq[i]
}

func (f *fakeHardware) Host(context.Context) (HostInfo, error) {
	return f.host, f.errs["host"]
}

func (f *fakeHardware) Processor(context.Context) (Processor, error) {
	return f.proc, f.errs["processor"]
}

func (f *fakeHardware) CPUTicks(context.Context) (Ticks, error) {
	t := step(f.ticks, f.tickCalls)
	f.tickCalls++
	return t, f.errs["ticks"]
}

func (f *fakeHardware) Memory(context.Context) (Memory, error) {
	return f.mem, f.errs["memory"]
}

func (f *fakeHardware) Filesystems(context.Context) ([]Filesystem, error) {
	return f.fs, f.errs["filesystems"]
}

func (f *fakeHardware) DiskStores(context.Context) ([]DiskStore, error) {
	d := step(f.disks, f.diskCalls)
	f.diskCalls++
	return d, f.errs["disks"]
}

func (f *fakeHardware) NetworkInterfaces(context.Context) ([]NetworkInterface, error) {
	n := step(f.nics, f.nicCalls)
	f.nicCalls++
	return n, f.errs["nics"]
}

// noWait records requested waits without sleeping.
type noWait struct {
	waits []time.Duration
}

func (w *noWait) wait(_ context.Context, d time.Duration) error {
	w.waits = append(w.waits, d)
	return nil
}
