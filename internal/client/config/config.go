package config

import "time"

// Config holds runtime settings for the accountdesk client.
//
// Fields:
//   - ServerEndpointAddr: host:port of the account server.
//   - SessionDBPath: SQLite file that keeps the logged-in session.
//   - RequestTimeout: upper bound on a single server call.
//   - OnlineCheckInterval: how often the client pings the server to update
//     the online/offline marker in the prompt.
type Config struct {
	ServerEndpointAddr  string
	SessionDBPath       string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.SessionDBPath = "session.db"
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
