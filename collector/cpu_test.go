package collector

import "testing"

func TestCPUUsage(t *testing.T) {
	prev := Ticks{User: 100, Nice: 10, System: 50, Idle: 800, Iowait: 20, Irq: 5, Softirq: 5, Steal: 10}

	tests := []struct {
		name string
		cur  Ticks
		want float64
	}{
		{
			name: "busy is user plus system",
			cur:  Ticks{User: 200, Nice: 20, System: 100, Idle: 1600, Iowait: 40, Irq: 10, Softirq: 10, Steal: 20},
			want: 0.15,
		},
		{
			name: "fully busy",
			cur:  Ticks{User: 600, Nice: 10, System: 550, Idle: 800, Iowait: 20, Irq: 5, Softirq: 5, Steal: 10},
			want: 1,
		},
		{
			name: "nice irq and steal are not busy",
			cur:  Ticks{User: 100, Nice: 110, System: 50, Idle: 800, Iowait: 20, Irq: 105, Softirq: 105, Steal: 110},
			want: 0,
		},
		{
			name: "no elapsed time",
			cur:  prev,
			want: 0,
		},
		{
			name: "reset counter ignored",
			cur:  Ticks{User: 50, Nice: 10, System: 150, Idle: 1100, Iowait: 20, Irq: 5, Softirq: 5, Steal: 10},
			want: 0.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CPUUsage(prev, tt.cur)
			if got != tt.want {
				t.Errorf("CPUUsage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCPUUsageBounds(t *testing.T) {
	prev := Ticks{User: 7, System: 3, Idle: 90}
	for i := uint64(0); i < 50; i++ {
		cur := Ticks{
			User:    prev.User + i*3,
			Nice:    i % 4,
			System:  prev.System + i*i%17,
			Idle:    prev.Idle + (50-i)*2,
			Iowait:  i % 5,
			Irq:     i % 2,
			Softirq: i % 3,
			Steal:   i % 7,
		}
		got := CPUUsage(prev, cur)
		if got < 0 || got > 1 {
			t.Fatalf("step %d: CPUUsage() = %v, outside [0,1]", i, got)
		}
	}
}

func TestCPUUsageScaleInvariant(t *testing.T) {
	var prev Ticks
	short := Ticks{User: 30, Nice: 2, System: 12, Idle: 140, Iowait: 6, Irq: 1, Softirq: 4, Steal: 5}
	long := Ticks{User: 300, Nice: 20, System: 120, Idle: 1400, Iowait: 60, Irq: 10, Softirq: 40, Steal: 50}

	if a, b := CPUUsage(prev, short), CPUUsage(prev, long); a != b {
		t.Errorf("usage changed with interval length: %v vs %v", a, b)
	}
}
