package models

type LatencyInfo struct {
	Target     string  `json:"target"`
	Latency    float64 `json:"latency"` // ms
	PacketLoss float64 `json:"packetLoss"`
	Success    bool    `json:"success"`
}
