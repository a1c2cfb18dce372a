package collector

// Ticks is cumulative CPU time per accounting category.
type Ticks struct {
	User    uint64
	Nice    uint64
	System  uint64
	Idle    uint64
	Iowait  uint64
	Irq     uint64
	Softirq uint64
	Steal   uint64
}

// CPUUsage returns the busy ratio between two tick readings. Only user and
// system time count as busy; nice, irq, softirq, steal, iowait and idle do
// not. Returns 0 when no CPU time elapsed between the readings.
func CPUUsage(prev, cur Ticks) float64 {
	user := delta(prev.User, cur.User)
	system := delta(prev.System, cur.System)
	total := user + system +
		delta(prev.Nice, cur.Nice) +
		delta(prev.Idle, cur.Idle) +
		delta(prev.Iowait, cur.Iowait) +
		delta(prev.Irq, cur.Irq) +
		delta(prev.Softirq, cur.Softirq) +
		delta(prev.Steal, cur.Steal)
	if total == 0 {
		return 0
	}
	return float64(user+system) / float64(total)
}

// delta is cur-prev, or 0 if the counter went backwards.
func delta(prev, cur uint64) uint64 {
	if cur < prev {
		return 0
	}
	return cur - prev
}
