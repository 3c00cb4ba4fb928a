// Command server runs the mock account directory behind a gRPC endpoint.
package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/accountdesk/internal/buildinfo"
	"github.com/dmitrijs2005/accountdesk/internal/server"
	"github.com/dmitrijs2005/accountdesk/internal/server/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	app, err := server.NewApp(config.LoadConfig())
	if err != nil {
		log.Fatalf("accountdesk server: %v", err)
	}

	app.Run(context.Background())
}
