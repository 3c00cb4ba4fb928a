package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/accountdesk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// Unknown flags are filtered out with flagx.FilterArgs. Duration flags are
// whole seconds and only replace the current value when given, so a
// sub-second value from JSON survives a run without -t or -i.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f", "-t", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port of the account server")
	fs.StringVar(&cfg.SessionDBPath, "f", cfg.SessionDBPath, "session database file")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		case "i":
			cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
		}
	})
}
