package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/accountdesk/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-l int      response delay, milliseconds
//	-m string   token mode ("mock" or "jwt")
//	-s string   JWT HMAC secret key
//
// The delay is accepted as an integer number of milliseconds and only
// replaces the current value when -l is given.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-l", "-m", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	responseDelay := fs.Int64("l", config.ResponseDelay.Milliseconds(), "response delay (in milliseconds)")
	fs.StringVar(&config.TokenMode, "m", config.TokenMode, "token mode: mock or jwt")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "l" {
			config.ResponseDelay = time.Duration(*responseDelay) * time.Millisecond
		}
	})
}
