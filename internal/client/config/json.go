package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/accountdesk/internal/flagx"
	"github.com/dmitrijs2005/accountdesk/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	SessionDBPath       string         `json:"session_db_path"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
}

// parseJson overlays cfg with the JSON file named by -c or -config. Keys
// missing from the file leave cfg untouched. Read or decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	jc := JsonConfig{
		ServerEndpointAddr:  cfg.ServerEndpointAddr,
		SessionDBPath:       cfg.SessionDBPath,
		RequestTimeout:      timex.Duration{Duration: cfg.RequestTimeout},
		OnlineCheckInterval: timex.Duration{Duration: cfg.OnlineCheckInterval},
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	cfg.SessionDBPath = jc.SessionDBPath
	cfg.RequestTimeout = jc.RequestTimeout.Duration
	cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
}
