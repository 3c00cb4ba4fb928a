// Package config loads runtime configuration for the accountdesk client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the account server
//	-f string   path of the local session database
//	-t int      per-request timeout (seconds)
//	-i int      online status check interval (seconds)
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "session_db_path": "session.db",
//	  "request_timeout": "10s",
//	  "online_check_interval": "3s"
//	}
//
// Both durations are timex.Duration values, so integer nanoseconds work as
// well. The -t and -i flags only count whole seconds and leave the JSON value
// alone unless they are given.
package config
