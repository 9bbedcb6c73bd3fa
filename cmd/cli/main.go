package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/A-PollyMer/blogsite-cli/internal/buildinfo"
	"github.com/A-PollyMer/blogsite-cli/internal/client/cli"
	"github.com/A-PollyMer/blogsite-cli/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
