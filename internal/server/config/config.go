// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the accountdesk server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - ResponseDelay: artificial latency applied to every directory request.
//   - TokenMode: "mock" for mock-jwt-token-<id> tokens, "jwt" for HS256 tokens.
//   - SecretKey: HMAC secret used in "jwt" mode. Do not use test defaults in prod.
type Config struct {
	EndpointAddrGRPC string
	ResponseDelay    time.Duration
	TokenMode        string
	SecretKey        string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.ResponseDelay = 1 * time.Second
	c.TokenMode = "mock"
	c.SecretKey = "secretKey"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
