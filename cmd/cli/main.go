package main

import (
	"context"
	"log"
	"os"

	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/buildinfo"
	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/cli"
	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
