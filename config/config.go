package config

import "time"

const (
	BackendPlaceholder = "placeholder"
	BackendRpc         = "rpc"

	DefaultVideoUrl         = "https://test-videos.co.uk/vids/bigbuckbunny/mp4/h264/360/Big_Buck_Bunny_360_10s_1MB.mp4"
	DefaultSimulatedLatency = 3000
)

type Config struct {
	Api        ApiConfig        `yaml:"api"`
	Generation GenerationConfig `yaml:"generation"`
	Rpc        RpcConfig        `yaml:"rpc"`
	Log        LogConfig        `yaml:"log"`
}

type ApiConfig struct {
	Port           string `yaml:"port"`
	AllowedOrigins string `yaml:"allowedOrigins"`
	BodyLimitMB    int    `yaml:"bodyLimitMB"`
}

type GenerationConfig struct {
	// Backend is "placeholder" (default) or "rpc".
	Backend string `yaml:"backend"`
	// SimulatedLatencyMs is the placeholder's artificial delay (SIMULATED_LATENCY_MS).
	SimulatedLatencyMs int    `yaml:"simulatedLatencyMs"`
	VideoUrl           string `yaml:"videoUrl"`
}

type RpcConfig struct {
	Peer           string `yaml:"peer"`
	Port           string `yaml:"port"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// SimulatedLatency is zero for a negative SimulatedLatencyMs.
func (g GenerationConfig) SimulatedLatency() time.Duration {
	if g.SimulatedLatencyMs < 0 {
		return 0
	}
	return time.Duration(g.SimulatedLatencyMs) * time.Millisecond
}

func (r RpcConfig) Timeout() time.Duration {
	return time.Duration(r.TimeoutSeconds) * time.Second
}

// ApplyDefaults fills every zero value that has a sensible default.
// A zero latency becomes DefaultSimulatedLatency; a negative one disables the wait.
// Calling it more than once is harmless.
func (c *Config) ApplyDefaults() {
	if c.Api.Port == "" {
		c.Api.Port = "8080"
	}
	if c.Api.AllowedOrigins == "" {
		c.Api.AllowedOrigins = "*"
	}
	if c.Api.BodyLimitMB <= 0 {
		c.Api.BodyLimitMB = 10
	}

	if c.Generation.Backend == "" {
		c.Generation.Backend = BackendPlaceholder
	}
	if c.Generation.SimulatedLatencyMs == 0 {
		c.Generation.SimulatedLatencyMs = DefaultSimulatedLatency
	}
	if c.Generation.VideoUrl == "" {
		c.Generation.VideoUrl = DefaultVideoUrl
	}

	if c.Rpc.TimeoutSeconds <= 0 {
		c.Rpc.TimeoutSeconds = 240
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
