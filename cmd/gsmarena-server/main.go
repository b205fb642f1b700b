package main

import (
	"flag"
	"log/slog"

	"gsmarena-backend/internal/components/telemetry"
	"gsmarena-backend/internal/gsmarena"
	"gsmarena-backend/internal/service"
	"gsmarena-backend/lib/serviceutil"

	"github.com/gin-gonic/gin"
)

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	flag.Parse()

	ctx := serviceutil.SignalContext()

	output := InitTelemetry(ctx, *verbose)
	if !*verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	cfg, err := LoadConfig()
	if err != nil {
		serviceutil.Fatal("read config", err)
	}

	opts := cfg.ClientOptions()
	opts.InstrumentOutput = output
	client, err := gsmarena.NewClient(opts, telemetry.SlogAPI{})
	if err != nil {
		serviceutil.Fatal("create upstream client", err)
	}
	scraper := gsmarena.NewScraper(client, client.BaseUrl())

	slog.Info("serving gsmarena actions", "upstream", cfg.BaseUrl)
	serviceutil.StartHttpServer(ctx, cfg.Port, service.NewService(scraper).Handler())
}
