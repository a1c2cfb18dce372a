package models

// BaseDetail is the static inventory of the host, built once.
type BaseDetail struct {
	OSArch    string  `json:"osArch"`
	OSName    string  `json:"osName"`
	OSVersion string  `json:"osVersion"`
	OSBit     int     `json:"osBit"`
	CPUName   string  `json:"cpuName"`
	CPUCore   int     `json:"cpuCore"`
	Memory    float64 `json:"memory"` // GiB
	Disk      float64 `json:"disk"`   // GiB
	IP        string  `json:"ip"`
}

// RuntimeDetail is one utilization reading over a single sampling window.
type RuntimeDetail struct {
	CPUUsage        float64 `json:"cpuUsage"`        // ratio 0-1
	MemoryUsage     float64 `json:"memoryUsage"`     // GiB
	DiskUsage       float64 `json:"diskUsage"`       // GiB
	NetworkUpload   float64 `json:"networkUpload"`   // KiB/s
	NetworkDownload float64 `json:"networkDownload"` // KiB/s
	DiskRead        float64 `json:"diskRead"`        // MiB/s
	DiskWrite       float64 `json:"diskWrite"`       // MiB/s
	Timestamp       int64   `json:"timestamp"`       // unix millis
}

// Report is the payload posted to the server on every tick.
type Report struct {
	RuntimeDetail
	Latency    *LatencyInfo    `json:"latency,omitempty"`
	Containers []ContainerInfo `json:"containers,omitempty"`
}
