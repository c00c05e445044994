package dto

// HealthResponse reports liveness and runtime information
type HealthResponse struct {
	Status           string `json:"status"`
	Version          string `json:"version"`
	Uptime           string `json:"uptime"`
	UptimeSeconds    int64  `json:"uptime_seconds"`
	Database         string `json:"database"`
	GoVersion        string `json:"go_version"`
	Goroutines       int    `json:"goroutines"`
	NumCPU           int    `json:"num_cpu"`
	WebsocketClients int    `json:"websocket_clients"`
}
