package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/accountdesk/internal/flagx"
	"github.com/dmitrijs2005/accountdesk/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration. Durations
// use timex.Duration so both "1s" and integer nanoseconds are accepted.
type JsonConfig struct {
	EndpointAddrGRPC string         `json:"endpoint_addr_grpc"`
	ResponseDelay    timex.Duration `json:"response_delay"`
	TokenMode        string         `json:"token_mode"`
	SecretKey        string         `json:"secret_key"`
}

// parseJson loads configuration values from the JSON file named by the
// -c or -config flag. Without the flag nothing is loaded. An unreadable
// file or invalid JSON panics. Keys absent from the file keep their
// current values.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{
		EndpointAddrGRPC: config.EndpointAddrGRPC,
		ResponseDelay:    timex.Duration{Duration: config.ResponseDelay},
		TokenMode:        config.TokenMode,
		SecretKey:        config.SecretKey,
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.ResponseDelay = c.ResponseDelay.Duration
	config.TokenMode = c.TokenMode
	config.SecretKey = c.SecretKey
}
